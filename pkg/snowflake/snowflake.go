// Package snowflake provides the platform's 64-bit entity identifier.
package snowflake

import (
	"fmt"
	"strconv"
	"time"
)

// epoch is the platform epoch (first second of 2015) in Unix milliseconds.
const epoch = 1420070400000

// ID is a platform snowflake. The zero value means "no ID".
type ID uint64

// Null is the absent ID.
const Null ID = 0

// Parse converts the wire string form of an ID.
func Parse(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Null, fmt.Errorf("snowflake: parse %q: %w", s, err)
	}
	return ID(n), nil
}

// IsNull reports whether the ID is absent.
func (id ID) IsNull() bool { return id == Null }

// String returns the canonical decimal form used on the wire.
func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Time returns the creation time encoded in the ID's timestamp bits.
func (id ID) Time() time.Time {
	ms := int64(id>>22) + epoch
	return time.UnixMilli(ms).UTC()
}

// MarshalJSON encodes the ID as a decimal string, matching the wire contract.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare number; the server uses
// strings but some payloads carry numeric IDs.
func (id *ID) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" || s == "" {
		*id = Null
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
