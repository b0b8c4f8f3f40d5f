package poll

import (
	"github.com/aura-chat/guildsdk/wire"
)

// Answer is one answer of a poll. Built locally for a poll that has not
// been sent yet, or injected from a payload once the poll is attached to a
// message. ID, vote count and the me-voted flag stay zero until attachment.
type Answer struct {
	id        int
	text      string
	emoji     *wire.PartialEmoji
	voteCount int
	me        bool
	poll      *Poll
}

// NewAnswer builds an answer for an unsent poll. Emoji may be nil.
func NewAnswer(text string, emoji *wire.PartialEmoji) *Answer {
	return &Answer{text: text, emoji: emoji}
}

// ID returns the server-assigned answer ID, zero until attached.
func (a *Answer) ID() int { return a.id }

// Text returns the answer text.
func (a *Answer) Text() string { return a.text }

// Emoji returns the answer emoji, nil when absent.
func (a *Answer) Emoji() *wire.PartialEmoji { return a.emoji }

// VoteCount returns the current vote tally.
func (a *Answer) VoteCount() int { return a.voteCount }

// MeVoted reports whether the current user voted for this answer.
func (a *Answer) MeVoted() bool { return a.me }

// Poll returns the owning poll, nil until the answer is added to one.
func (a *Answer) Poll() *Poll { return a.poll }

// applyVote adjusts the tally optimistically from a live vote event, ahead
// of server confirmation. It is not idempotent; the event delivery path
// must not double-apply.
func (a *Answer) applyVote(added, me bool) {
	if added {
		a.voteCount++
		if me {
			a.me = true
		}
		return
	}
	if a.voteCount > 0 {
		a.voteCount--
	}
	if me {
		a.me = false
	}
}

// injectState fills the server-assigned identity and tally during
// attachment.
func (a *Answer) injectState(p wire.PollAnswer, count wire.PollAnswerCount) {
	a.id = p.AnswerID
	a.voteCount = count.Count
	a.me = count.MeVoted
}

// answerFromPayload builds an answer straight from an attached poll's
// payload, with the count entry matched by answer ID (absent counts mean
// zero votes).
func answerFromPayload(p *Poll, data wire.PollAnswer, count *wire.PollAnswerCount) *Answer {
	a := &Answer{
		id:    data.AnswerID,
		text:  data.Media.Text,
		emoji: data.Media.Emoji,
		poll:  p,
	}
	if count != nil {
		a.voteCount = count.Count
		a.me = count.MeVoted
	}
	return a
}

// payloadCreate converts the answer to its creation-request form; the
// server assigns IDs positionally.
func (a *Answer) payloadCreate() wire.PollAnswerCreate {
	return wire.PollAnswerCreate{Media: wire.PollMedia{Text: a.text, Emoji: a.emoji}}
}
