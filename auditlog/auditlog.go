// Package auditlog models guild audit log change records: who changed
// what, when, and the before/after values. The change key set is open;
// unknown keys are kept raw rather than dropped.
package auditlog

import (
	"encoding/json"
	"time"

	"github.com/aura-chat/guildsdk/pkg/snowflake"
	"github.com/aura-chat/guildsdk/state"
	"github.com/aura-chat/guildsdk/wire"
)

// Event is an audit log action code.
type Event int

// Audit log action codes.
const (
	EventGuildUpdate          Event = 1
	EventChannelCreate        Event = 10
	EventChannelUpdate        Event = 11
	EventChannelDelete        Event = 12
	EventOverwriteCreate      Event = 13
	EventOverwriteUpdate      Event = 14
	EventOverwriteDelete      Event = 15
	EventMemberKick           Event = 20
	EventMemberPrune          Event = 21
	EventMemberBanAdd         Event = 22
	EventMemberBanRemove      Event = 23
	EventMemberUpdate         Event = 24
	EventMemberRoleUpdate     Event = 25
	EventMemberMove           Event = 26
	EventMemberDisconnect     Event = 27
	EventBotAdd               Event = 28
	EventRoleCreate           Event = 30
	EventRoleUpdate           Event = 31
	EventRoleDelete           Event = 32
	EventInviteCreate         Event = 40
	EventInviteUpdate         Event = 41
	EventInviteDelete         Event = 42
	EventWebhookCreate        Event = 50
	EventWebhookUpdate        Event = 51
	EventWebhookDelete        Event = 52
	EventEmojiCreate          Event = 60
	EventEmojiUpdate          Event = 61
	EventEmojiDelete          Event = 62
	EventMessageDelete        Event = 72
	EventMessageBulkDelete    Event = 73
	EventMessagePin           Event = 74
	EventMessageUnpin         Event = 75
	EventIntegrationCreate    Event = 80
	EventIntegrationUpdate    Event = 81
	EventIntegrationDelete    Event = 82
	EventStageInstanceCreate  Event = 83
	EventStageInstanceUpdate  Event = 84
	EventStageInstanceDelete  Event = 85
	EventStickerCreate        Event = 90
	EventStickerUpdate        Event = 91
	EventStickerDelete        Event = 92
	EventScheduledEventCreate Event = 100
	EventScheduledEventUpdate Event = 101
	EventScheduledEventDelete Event = 102
	EventThreadCreate         Event = 110
	EventThreadUpdate         Event = 111
	EventThreadDelete         Event = 112
)

// Change is one before/after pair on an entry.
type Change struct {
	// Key names the changed attribute, e.g. "description".
	Key      string
	oldValue json.RawMessage
	newValue json.RawMessage
}

// OldString decodes the previous value as a string.
func (c Change) OldString() (string, bool) { return decodeString(c.oldValue) }

// NewString decodes the new value as a string.
func (c Change) NewString() (string, bool) { return decodeString(c.newValue) }

// OldRaw returns the previous value undecoded, nil when absent.
func (c Change) OldRaw() json.RawMessage { return c.oldValue }

// NewRaw returns the new value undecoded, nil when absent.
func (c Change) NewRaw() json.RawMessage { return c.newValue }

func decodeString(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Entry is one recorded action.
type Entry struct {
	ID       snowflake.ID
	Action   Event
	UserID   snowflake.ID
	TargetID string
	Reason   string
	Changes  []Change
	// Options carries action-specific extras, nil when absent.
	Options *wire.AuditEntryInfo
}

// CreatedAt returns when the action happened, from the entry ID's
// timestamp bits.
func (e *Entry) CreatedAt() time.Time { return e.ID.Time() }

// Log is a parsed audit log page.
type Log struct {
	Entries []Entry
	// Users indexes the users referenced by the entries.
	Users map[snowflake.ID]*state.User
}

// FromPayload parses an audit log page.
func FromPayload(p wire.AuditLog) *Log {
	log := &Log{
		Entries: make([]Entry, len(p.Entries)),
		Users:   make(map[snowflake.ID]*state.User, len(p.Users)),
	}
	for _, up := range p.Users {
		log.Users[up.ID] = state.NewUser(up)
	}
	for i, ep := range p.Entries {
		log.Entries[i] = entryFromPayload(ep)
	}
	return log
}

func entryFromPayload(p wire.AuditLogEntry) Entry {
	e := Entry{
		ID:      p.ID,
		Action:  Event(p.ActionType),
		Reason:  p.Reason,
		Options: p.Options,
	}
	if p.UserID != nil {
		e.UserID = *p.UserID
	}
	if p.TargetID != nil {
		e.TargetID = *p.TargetID
	}
	e.Changes = make([]Change, len(p.Changes))
	for i, cp := range p.Changes {
		e.Changes[i] = Change{Key: cp.Key, oldValue: cp.OldValue, newValue: cp.NewValue}
	}
	return e
}
