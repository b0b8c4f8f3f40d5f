package wire

import "github.com/aura-chat/guildsdk/pkg/snowflake"

// User is the minimal user payload this layer consumes.
type User struct {
	ID            snowflake.ID `json:"id"`
	Username      string       `json:"username"`
	Discriminator string       `json:"discriminator,omitempty"`
	GlobalName    *string      `json:"global_name,omitempty"`
	Avatar        *string      `json:"avatar,omitempty"`
	Bot           bool         `json:"bot,omitempty"`
}

// PartialEmoji is an emoji reference: unicode (ID absent) or custom.
type PartialEmoji struct {
	Name     string       `json:"name"`
	ID       snowflake.ID `json:"id,omitempty"`
	Animated bool         `json:"animated,omitempty"`
}
