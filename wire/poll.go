package wire

// PollMedia is the text/emoji pair shown for a question or answer.
type PollMedia struct {
	Text  string        `json:"text,omitempty"`
	Emoji *PartialEmoji `json:"emoji,omitempty"`
}

// PollAnswer is an answer as it appears on an existing poll.
type PollAnswer struct {
	AnswerID int       `json:"answer_id"`
	Media    PollMedia `json:"poll_media"`
}

// PollAnswerCreate is an answer in a creation request; the server assigns
// answer IDs positionally.
type PollAnswerCreate struct {
	Media PollMedia `json:"poll_media"`
}

// PollAnswerCount is the server-confirmed tally for one answer.
type PollAnswerCount struct {
	ID      int  `json:"id"`
	Count   int  `json:"count"`
	MeVoted bool `json:"me_voted"`
}

// PollResults carries the finalization flag and per-answer tallies.
type PollResults struct {
	IsFinalized  bool              `json:"is_finalized"`
	AnswerCounts []PollAnswerCount `json:"answer_counts"`
}

// Poll is a poll attached to a message.
type Poll struct {
	Question         PollMedia    `json:"question"`
	Answers          []PollAnswer `json:"answers"`
	Expiry           string       `json:"expiry"`
	AllowMultiselect bool         `json:"allow_multiselect"`
	LayoutType       int          `json:"layout_type"`
	Results          PollResults  `json:"results"`
}

// PollCreate is the body of a poll creation request. Duration is whole hours.
type PollCreate struct {
	Question         PollMedia          `json:"question"`
	Answers          []PollAnswerCreate `json:"answers"`
	Duration         int                `json:"duration"`
	AllowMultiselect bool               `json:"allow_multiselect"`
	LayoutType       int                `json:"layout_type,omitempty"`
}
