package poll

import (
	"context"
	"iter"

	"github.com/aura-chat/guildsdk/pkg/snowflake"
	"github.com/aura-chat/guildsdk/state"
)

// VoterOptions controls voter pagination.
type VoterOptions struct {
	// Limit caps the number of voters yielded; zero means the answer's
	// vote count at call time.
	Limit int
	// After resumes pagination past the given user ID.
	After snowflake.ID
}

// Voters returns a lazy, forward-only sequence of the users who voted for
// this answer, in ascending user ID order. Members are yielded where the
// message's guild can resolve them, bare users otherwise. The sequence is
// not restartable and may be abandoned mid-pagination; in-flight state is a
// single page request, so nothing needs cleanup.
//
// Requires the answer to be attached to a poll that is attached to a
// message; otherwise a StateError is yielded before any request is issued.
func (a *Answer) Voters(ctx context.Context, opts VoterOptions) iter.Seq2[state.UserLike, error] {
	return func(yield func(state.UserLike, error) bool) {
		if a.poll == nil || !a.poll.attached {
			yield(nil, &state.StateError{
				Reason: "cannot list voters for an answer that is not attached to a sent poll",
			})
			return
		}

		st := a.poll.st
		msg := a.poll.msg
		guild := msg.Guild()

		limit := opts.Limit
		if limit <= 0 {
			limit = a.voteCount
		}
		after := opts.After

		for limit > 0 {
			retrieve := limit
			if retrieve > st.VoterPageSize() {
				retrieve = st.VoterPageSize()
			}

			data, err := st.AnswerVoters(ctx, msg.ChannelID(), msg.ID(), a.id, retrieve, after)
			if err != nil {
				yield(nil, err)
				return
			}
			if len(data) == 0 {
				return
			}
			limit -= len(data)
			after = data[len(data)-1].ID

			// The server returns pages in descending user ID order;
			// consumers need ascending, so each page is walked backwards.
			for i := len(data) - 1; i >= 0; i-- {
				raw := data[i]
				var voter state.UserLike
				if guild != nil {
					if member, ok := guild.Member(raw.ID); ok {
						voter = member
					}
				}
				if voter == nil {
					voter = state.NewUser(raw)
				}
				if !yield(voter, nil) {
					return
				}
			}
		}
	}
}
