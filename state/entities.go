package state

import (
	"github.com/aura-chat/guildsdk/pkg/snowflake"
	"github.com/aura-chat/guildsdk/wire"
)

// Guild is a non-owning handle to the guild an entity belongs to. The
// broader guild graph lives with the embedding application; this layer only
// needs identity, the feature flag set, and member resolution.
type Guild interface {
	ID() snowflake.ID
	HasFeature(feature string) bool
	Member(id snowflake.ID) (*Member, bool)
}

// Message is a non-owning handle to the message a poll is attached to.
// Guild may return nil outside a guild context.
type Message interface {
	ID() snowflake.ID
	ChannelID() snowflake.ID
	Guild() Guild
}

// UserLike is either a bare User or a guild Member.
type UserLike interface {
	UserID() snowflake.ID
	DisplayName() string
}

// User is a platform user.
type User struct {
	ID         snowflake.ID
	Username   string
	GlobalName string
	Bot        bool
}

// NewUser builds a User from its payload.
func NewUser(p wire.User) *User {
	u := &User{ID: p.ID, Username: p.Username, Bot: p.Bot}
	if p.GlobalName != nil {
		u.GlobalName = *p.GlobalName
	}
	return u
}

// UserID returns the user's ID.
func (u *User) UserID() snowflake.ID { return u.ID }

// DisplayName returns the global display name, falling back to the username.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// Member is a user within a guild.
type Member struct {
	User
	GuildID snowflake.ID
	Nick    string
}

// DisplayName prefers the guild nickname.
func (m *Member) DisplayName() string {
	if m.Nick != "" {
		return m.Nick
	}
	return m.User.DisplayName()
}
