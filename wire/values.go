package wire

import (
	"encoding/json"
	"fmt"
)

type valuesKind int

const (
	valuesUnset valuesKind = iota
	valuesEmpty
	valuesList
)

// FieldValues is the three-state value list of a screening form field:
// unset (key absent from the payload), explicitly empty, or a list of
// strings. The distinction between unset and empty survives a round trip.
type FieldValues struct {
	kind  valuesKind
	items []string
}

// UnsetValues returns the "never set" state.
func UnsetValues() FieldValues { return FieldValues{} }

// EmptyValues returns the explicitly-empty state, distinct from both unset
// and a zero-length list.
func EmptyValues() FieldValues { return FieldValues{kind: valuesEmpty} }

// Values returns the populated state holding items. The list is kept
// non-nil so a zero-length list still encodes as an array, not as the
// explicit-empty null.
func Values(items ...string) FieldValues {
	copied := make([]string, len(items))
	copy(copied, items)
	return FieldValues{kind: valuesList, items: copied}
}

// IsSet reports whether the values were ever set (empty or populated).
func (v FieldValues) IsSet() bool { return v.kind != valuesUnset }

// IsEmpty reports whether the values are the explicit empty state.
func (v FieldValues) IsEmpty() bool { return v.kind == valuesEmpty }

// Items returns the value list and whether the populated state holds.
func (v FieldValues) Items() ([]string, bool) {
	if v.kind != valuesList {
		return nil, false
	}
	return append([]string(nil), v.items...), true
}

// Equal reports state and item equality.
func (v FieldValues) Equal(o FieldValues) bool {
	if v.kind != o.kind || len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if v.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

// ValueTypeError reports a values payload of the wrong JSON type.
type ValueTypeError struct {
	// Got names the offending JSON type, e.g. "number" or "object".
	Got string
	// Index is the offending element index, or -1 when the whole value is
	// the wrong shape.
	Index int
}

func (e *ValueTypeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("wire: field values[%d] must be a string, got %s", e.Index, e.Got)
	}
	return fmt.Sprintf("wire: field values must be an array of strings or null, got %s", e.Got)
}

// MarshalJSON encodes empty as null and populated as a string array. The
// unset state encodes as null too; callers that must omit the key entirely
// go through ScreeningFormField's codec, which skips unset values.
func (v FieldValues) MarshalJSON() ([]byte, error) {
	if v.kind != valuesList {
		return []byte("null"), nil
	}
	return json.Marshal(v.items)
}

// UnmarshalJSON accepts null (explicit empty) or an array of strings. Any
// other shape fails with a ValueTypeError and leaves the receiver unchanged.
func (v *FieldValues) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = EmptyValues()
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return &ValueTypeError{Got: jsonTypeName(b), Index: -1}
	}
	items := make([]string, len(raw))
	for i, el := range raw {
		if err := json.Unmarshal(el, &items[i]); err != nil {
			return &ValueTypeError{Got: jsonTypeName(el), Index: i}
		}
	}
	*v = FieldValues{kind: valuesList, items: items}
	return nil
}

// jsonTypeName names the JSON type of an encoded value for error messages.
func jsonTypeName(b []byte) string {
	if len(b) == 0 {
		return "empty"
	}
	switch b[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
