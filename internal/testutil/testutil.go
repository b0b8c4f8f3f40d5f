// Package testutil provides the scripted transport fake and entity stubs
// shared by package tests.
package testutil

import (
	"context"

	"github.com/aura-chat/guildsdk/pkg/snowflake"
	"github.com/aura-chat/guildsdk/state"
	"github.com/aura-chat/guildsdk/wire"
)

// Transport is a scripted state.Transport. Each method records its call and
// delegates to the matching func field; a nil field returns zero values.
type Transport struct {
	GetFormFunc    func(ctx context.Context, guildID snowflake.ID) (wire.ScreeningForm, error)
	UpdateFormFunc func(ctx context.Context, guildID snowflake.ID, changes wire.ScreeningFormUpdate) (wire.ScreeningForm, error)
	VotersFunc     func(ctx context.Context, channelID, messageID snowflake.ID, answerID, limit int, after snowflake.ID) ([]wire.User, error)
	ExpireFunc     func(ctx context.Context, channelID, messageID snowflake.ID) error

	// Calls lists the operation names in invocation order.
	Calls []string
}

var _ state.Transport = (*Transport)(nil)

// GetMemberVerification implements state.Transport.
func (t *Transport) GetMemberVerification(ctx context.Context, guildID snowflake.ID) (wire.ScreeningForm, error) {
	t.Calls = append(t.Calls, "get_member_verification")
	if t.GetFormFunc == nil {
		return wire.ScreeningForm{}, nil
	}
	return t.GetFormFunc(ctx, guildID)
}

// UpdateMemberVerification implements state.Transport.
func (t *Transport) UpdateMemberVerification(ctx context.Context, guildID snowflake.ID, changes wire.ScreeningFormUpdate) (wire.ScreeningForm, error) {
	t.Calls = append(t.Calls, "update_member_verification")
	if t.UpdateFormFunc == nil {
		return wire.ScreeningForm{}, nil
	}
	return t.UpdateFormFunc(ctx, guildID, changes)
}

// GetAnswerVoters implements state.Transport.
func (t *Transport) GetAnswerVoters(ctx context.Context, channelID, messageID snowflake.ID, answerID, limit int, after snowflake.ID) ([]wire.User, error) {
	t.Calls = append(t.Calls, "get_answer_voters")
	if t.VotersFunc == nil {
		return nil, nil
	}
	return t.VotersFunc(ctx, channelID, messageID, answerID, limit, after)
}

// ExpirePoll implements state.Transport.
func (t *Transport) ExpirePoll(ctx context.Context, channelID, messageID snowflake.ID) error {
	t.Calls = append(t.Calls, "expire_poll")
	if t.ExpireFunc == nil {
		return nil
	}
	return t.ExpireFunc(ctx, channelID, messageID)
}

// Guild is a stub state.Guild.
type Guild struct {
	GID      snowflake.ID
	Features []string
	Members  map[snowflake.ID]*state.Member
}

var _ state.Guild = (*Guild)(nil)

// ID implements state.Guild.
func (g *Guild) ID() snowflake.ID { return g.GID }

// HasFeature implements state.Guild.
func (g *Guild) HasFeature(feature string) bool {
	for _, f := range g.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// Member implements state.Guild.
func (g *Guild) Member(id snowflake.ID) (*state.Member, bool) {
	m, ok := g.Members[id]
	return m, ok
}

// Message is a stub state.Message.
type Message struct {
	MID snowflake.ID
	CID snowflake.ID
	G   *Guild
}

var _ state.Message = (*Message)(nil)

// ID implements state.Message.
func (m *Message) ID() snowflake.ID { return m.MID }

// ChannelID implements state.Message.
func (m *Message) ChannelID() snowflake.ID { return m.CID }

// Guild implements state.Message; a nil stub guild means a DM context.
func (m *Message) Guild() state.Guild {
	if m.G == nil {
		return nil
	}
	return m.G
}

// DescendingUsers builds a user page in descending ID order starting at
// high, the order the server returns voter pages in.
func DescendingUsers(high snowflake.ID, n int) []wire.User {
	users := make([]wire.User, n)
	for i := 0; i < n; i++ {
		users[i] = wire.User{
			ID:       high - snowflake.ID(i),
			Username: "voter-" + (high - snowflake.ID(i)).String(),
		}
	}
	return users
}
