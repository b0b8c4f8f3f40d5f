// Package poll models message polls in their two lifecycle states: a
// builder constructed locally before sending, and an attached poll
// mirroring server state for an existing message.
package poll

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aura-chat/guildsdk/state"
	"github.com/aura-chat/guildsdk/wire"
)

// LayoutType is the enumerated poll layout tag.
type LayoutType int

// LayoutDefault is the only layout the server currently defines.
const LayoutDefault LayoutType = 1

// Poll is a multi-answer voting construct. Answer order is significant: it
// is the display order, and on creation the server assigns answer IDs by
// position.
type Poll struct {
	st  *state.State
	msg state.Message

	question       string
	answers        []*Answer
	duration       time.Duration
	hasDuration    bool
	allowsMultiple bool
	layout         LayoutType

	attached  bool
	expiresAt time.Time
	isFinal   bool
}

// Option configures a poll builder.
type Option func(*Poll) error

// WithDuration sets how long the poll runs once sent. Required before the
// poll can serialize as a creation request; mutually exclusive with the
// attached expiry.
func WithDuration(d time.Duration) Option {
	return func(p *Poll) error {
		p.duration = d
		p.hasDuration = true
		return nil
	}
}

// WithAnswers adds pre-built answers in display order.
func WithAnswers(answers ...*Answer) Option {
	return func(p *Poll) error {
		for _, a := range answers {
			if err := p.adopt(a); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithMultipleAnswers lets voters pick more than one answer.
func WithMultipleAnswers() Option {
	return func(p *Poll) error {
		p.allowsMultiple = true
		return nil
	}
}

// WithLayout sets the layout tag.
func WithLayout(l LayoutType) Option {
	return func(p *Poll) error {
		p.layout = l
		return nil
	}
}

// New constructs an unattached poll. Supplying an answer that already
// belongs to another poll fails before any later answer is processed.
func New(question string, opts ...Option) (*Poll, error) {
	p := &Poll{question: question, layout: LayoutDefault}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			// Release the answers bound so far; the abandoned poll must
			// not consume them.
			for _, a := range p.answers {
				a.poll = nil
			}
			return nil, err
		}
	}
	return p, nil
}

// adopt binds an answer to this poll; reuse across polls is rejected.
func (p *Poll) adopt(a *Answer) error {
	if a.poll != nil {
		return &state.ValidationError{
			Reason: fmt.Sprintf("answer %q already belongs to another poll", a.text),
		}
	}
	a.poll = p
	p.answers = append(p.answers, a)
	return nil
}

// AddAnswer appends a text answer to an unsent poll and returns it.
func (p *Poll) AddAnswer(text string, emoji *wire.PartialEmoji) (*Answer, error) {
	if p.attached {
		return nil, &state.StateError{Reason: "cannot add answers to an attached poll"}
	}
	a := NewAnswer(text, emoji)
	if err := p.adopt(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Question returns the poll question text.
func (p *Poll) Question() string { return p.question }

// Answers returns the answers in display order.
func (p *Poll) Answers() []*Answer { return p.answers }

// AllowsMultipleAnswers reports whether voters may pick several answers.
func (p *Poll) AllowsMultipleAnswers() bool { return p.allowsMultiple }

// Layout returns the layout tag.
func (p *Poll) Layout() LayoutType { return p.layout }

// Duration returns the builder duration; absent once attached.
func (p *Poll) Duration() (time.Duration, bool) {
	if p.attached || !p.hasDuration {
		return 0, false
	}
	return p.duration, true
}

// Attached reports whether the poll is bound to a message.
func (p *Poll) Attached() bool { return p.attached }

// Message returns the message the poll is attached to, nil before then.
func (p *Poll) Message() state.Message { return p.msg }

// ExpiresAt returns the server-confirmed expiry; absent until attached.
func (p *Poll) ExpiresAt() (time.Time, bool) {
	if !p.attached {
		return time.Time{}, false
	}
	return p.expiresAt, true
}

// IsFinal reports whether the poll is finished; false until attached.
func (p *Poll) IsFinal() bool { return p.attached && p.isFinal }

// FromMessage parses an attached poll from a message payload. Vote counts
// are matched to answers by answer ID; answers without a count entry hold
// zero votes.
func FromMessage(s *state.State, msg state.Message, data wire.Poll) (*Poll, error) {
	p := &Poll{
		st:             s,
		msg:            msg,
		question:       data.Question.Text,
		allowsMultiple: data.AllowMultiselect,
		layout:         LayoutType(data.LayoutType),
		attached:       true,
		isFinal:        data.Results.IsFinalized,
	}
	expiry, err := time.Parse(time.RFC3339, data.Expiry)
	if err != nil {
		return nil, fmt.Errorf("poll: parse expiry: %w", err)
	}
	p.expiresAt = expiry

	counts := make(map[int]*wire.PollAnswerCount, len(data.Results.AnswerCounts))
	for i := range data.Results.AnswerCounts {
		counts[data.Results.AnswerCounts[i].ID] = &data.Results.AnswerCounts[i]
	}
	p.answers = make([]*Answer, len(data.Answers))
	for i, ap := range data.Answers {
		p.answers[i] = answerFromPayload(p, ap, counts[ap.AnswerID])
	}
	return p, nil
}

// AttachMessage transitions a builder poll to the attached state after the
// server acknowledged it: exactly once, no reverse transition. The payload
// answers and answer_counts must match the local answers pairwise by
// position; the message-parsing caller guarantees the shape.
func (p *Poll) AttachMessage(s *state.State, msg state.Message, data wire.Poll) error {
	if p.attached {
		return &state.StateError{Reason: "poll is already attached to a message"}
	}
	expiry, err := time.Parse(time.RFC3339, data.Expiry)
	if err != nil {
		return fmt.Errorf("poll: parse expiry: %w", err)
	}
	p.st = s
	p.msg = msg
	p.expiresAt = expiry
	p.isFinal = data.Results.IsFinalized
	p.hasDuration = false
	p.attached = true
	for i, a := range p.answers {
		a.injectState(data.Answers[i], data.Results.AnswerCounts[i])
	}
	return nil
}

// ApplyVoteEvent routes a live vote add/remove event to the matching
// answer's optimistic tally. Unknown answer IDs are logged and dropped.
func (p *Poll) ApplyVoteEvent(answerID int, added, me bool) {
	for _, a := range p.answers {
		if a.id == answerID {
			a.applyVote(added, me)
			return
		}
	}
	if p.st != nil {
		p.st.Logger().Warn("vote event for unknown answer",
			zap.Int("answer_id", answerID),
			zap.String("question", p.question),
		)
	}
}

// Stop asks the server to end the poll. The local state does not change on
// success; the confirmed final state arrives through the normal
// message-update channel.
func (p *Poll) Stop(ctx context.Context) error {
	if !p.attached {
		return &state.StateError{Reason: "cannot stop a poll that is not attached to a message"}
	}
	return p.st.ExpirePoll(ctx, p.msg.ChannelID(), p.msg.ID())
}

// CreateRequest serializes an unattached poll as a creation request.
// Duration converts to whole hours, truncated. A missing duration is a
// caller error, never silently defaulted.
func (p *Poll) CreateRequest() (wire.PollCreate, error) {
	if p.attached || !p.hasDuration {
		return wire.PollCreate{}, &state.ValidationError{
			Reason: "poll duration must be set to build a creation request",
		}
	}
	answers := make([]wire.PollAnswerCreate, len(p.answers))
	for i, a := range p.answers {
		answers[i] = a.payloadCreate()
	}
	hours := int(p.duration/time.Second) / 3600
	return wire.PollCreate{
		Question:         wire.PollMedia{Text: p.question},
		Answers:          answers,
		Duration:         hours,
		AllowMultiselect: p.allowsMultiple,
		LayoutType:       int(p.layout),
	}, nil
}
