package wire

import (
	"encoding/json"

	"github.com/aura-chat/guildsdk/pkg/snowflake"
)

// AuditLogChange is a single before/after pair on an audit log entry. The
// key set is open; values stay raw so unknown keys pass through untouched.
type AuditLogChange struct {
	Key      string          `json:"key"`
	OldValue json.RawMessage `json:"old_value,omitempty"`
	NewValue json.RawMessage `json:"new_value,omitempty"`
}

// AuditEntryInfo carries action-specific extras on an entry.
type AuditEntryInfo struct {
	DeleteMemberDays string       `json:"delete_member_days,omitempty"`
	MembersRemoved   string       `json:"members_removed,omitempty"`
	ChannelID        snowflake.ID `json:"channel_id,omitempty"`
	MessageID        snowflake.ID `json:"message_id,omitempty"`
	Count            string       `json:"count,omitempty"`
	ID               snowflake.ID `json:"id,omitempty"`
	Type             string       `json:"type,omitempty"`
	RoleName         string       `json:"role_name,omitempty"`
}

// AuditLogEntry is one recorded moderation action.
type AuditLogEntry struct {
	ID         snowflake.ID     `json:"id"`
	ActionType int              `json:"action_type"`
	UserID     *snowflake.ID    `json:"user_id"`
	TargetID   *string          `json:"target_id"`
	Reason     string           `json:"reason,omitempty"`
	Changes    []AuditLogChange `json:"changes,omitempty"`
	Options    *AuditEntryInfo  `json:"options,omitempty"`
}

// AuditLog is a fetched page of the guild audit log.
type AuditLog struct {
	Entries []AuditLogEntry `json:"audit_log_entries"`
	Users   []User          `json:"users"`
}
