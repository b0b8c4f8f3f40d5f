package screening

import (
	"fmt"

	"github.com/aura-chat/guildsdk/wire"
)

// FieldType is the enumerated tag of a screening form field. Unknown tags
// round-trip through payloads untouched, so a client built against an older
// tag table keeps working.
type FieldType int

// FieldTypeServerRules marks the server-rules field variant.
const FieldTypeServerRules FieldType = 1

func (t FieldType) String() string {
	if t == FieldTypeServerRules {
		return "server_rules"
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// Field is one entry of a screening form. Concrete variants are selected by
// the type tag; see FieldFromPayload.
type Field interface {
	Type() FieldType
	Label() string
	Required() bool
	Values() wire.FieldValues
	// Payload converts the field to its wire form.
	Payload() wire.ScreeningFormField
	// Copy clones the field by round-tripping through its payload form, so
	// the clone always has exactly the shape the server would accept.
	Copy() Field
}

// FormField is the generic screening form field.
type FormField struct {
	typ      FieldType
	label    string
	required bool
	values   wire.FieldValues
}

// NewFormField constructs a field with unset values.
func NewFormField(typ FieldType, label string, required bool) *FormField {
	return &FormField{typ: typ, label: label, required: required}
}

// Type returns the field's type tag.
func (f *FormField) Type() FieldType { return f.typ }

// Label returns the field's label text.
func (f *FormField) Label() string { return f.label }

// Required reports whether the field must be answered.
func (f *FormField) Required() bool { return f.required }

// Values returns the field's three-state value list.
func (f *FormField) Values() wire.FieldValues { return f.values }

// SetValues replaces the value list.
func (f *FormField) SetValues(items ...string) { f.values = wire.Values(items...) }

// SetValuesEmpty marks the values explicitly empty, distinct from unset.
func (f *FormField) SetValuesEmpty() { f.values = wire.EmptyValues() }

// ClearValues returns the values to the never-set state.
func (f *FormField) ClearValues() { f.values = wire.UnsetValues() }

// Payload converts the field to its wire form.
func (f *FormField) Payload() wire.ScreeningFormField {
	return wire.ScreeningFormField{
		FieldType: int(f.typ),
		Label:     f.label,
		Required:  f.required,
		Values:    f.values,
	}
}

// Copy clones the field through a payload round trip.
func (f *FormField) Copy() Field { return FieldFromPayload(f.Payload()) }

// ServerRules is the server-rules field variant: identical in shape to
// FormField, distinguished by its tag so behavior can attach to it later
// without changing call sites.
type ServerRules struct {
	FormField
}

// NewServerRules constructs a server-rules field holding the given rules.
func NewServerRules(label string, required bool, rules ...string) *ServerRules {
	sr := &ServerRules{FormField{typ: FieldTypeServerRules, label: label, required: required}}
	sr.SetValues(rules...)
	return sr
}

// Rules returns the rule list, nil when unset or explicitly empty.
func (s *ServerRules) Rules() []string {
	items, _ := s.values.Items()
	return items
}

// fieldForType selects the concrete variant for a type tag. Call sites
// never switch on the tag themselves.
func fieldForType(typ FieldType) (Field, *FormField) {
	switch typ {
	case FieldTypeServerRules:
		sr := &ServerRules{}
		return sr, &sr.FormField
	default:
		f := &FormField{}
		return f, f
	}
}

// FieldFromPayload hydrates a field from a trusted wire payload. Unlike the
// constructors, it performs no validation: the payload already passed the
// wire codec. An absent values key stays in the never-set state.
func FieldFromPayload(p wire.ScreeningFormField) Field {
	field, base := fieldForType(FieldType(p.FieldType))
	base.typ = FieldType(p.FieldType)
	base.label = p.Label
	base.required = p.Required
	base.values = p.Values
	return field
}
