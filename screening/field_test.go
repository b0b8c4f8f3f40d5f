package screening

import (
	"testing"

	"github.com/aura-chat/guildsdk/wire"
)

func fieldsEqual(a, b Field) bool {
	return a.Type() == b.Type() &&
		a.Label() == b.Label() &&
		a.Required() == b.Required() &&
		a.Values().Equal(b.Values())
}

func TestFieldFactorySelectsVariant(t *testing.T) {
	t.Parallel()

	rules := FieldFromPayload(wire.ScreeningFormField{
		FieldType: int(FieldTypeServerRules),
		Label:     "Server Rules",
		Required:  true,
		Values:    wire.Values("no spam"),
	})
	sr, ok := rules.(*ServerRules)
	if !ok {
		t.Fatalf("expected *ServerRules, got %T", rules)
	}
	if got := sr.Rules(); len(got) != 1 || got[0] != "no spam" {
		t.Fatalf("Rules: %v", got)
	}

	generic := FieldFromPayload(wire.ScreeningFormField{FieldType: 99, Label: "Future", Required: false})
	if _, ok := generic.(*FormField); !ok {
		t.Fatalf("expected *FormField for unknown tag, got %T", generic)
	}
	// The unknown tag passes through untouched.
	if generic.Payload().FieldType != 99 {
		t.Fatalf("tag changed: %d", generic.Payload().FieldType)
	}
}

func TestFieldPayloadRoundTripStability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload wire.ScreeningFormField
	}{
		{"server_rules", wire.ScreeningFormField{FieldType: 1, Label: "Rules", Required: true, Values: wire.Values("a", "b")}},
		{"values_unset", wire.ScreeningFormField{FieldType: 1, Label: "Rules", Required: true}},
		{"values_empty", wire.ScreeningFormField{FieldType: 1, Label: "Rules", Required: false, Values: wire.EmptyValues()}},
		{"unknown_tag", wire.ScreeningFormField{FieldType: 42, Label: "X", Required: false, Values: wire.Values()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := FieldFromPayload(tt.payload)
			second := FieldFromPayload(first.Payload())
			if !fieldsEqual(first, second) {
				t.Fatalf("round trip changed attributes: %+v vs %+v", first, second)
			}
		})
	}
}

func TestFieldCopyIsIndependent(t *testing.T) {
	t.Parallel()

	orig := NewFormField(FieldTypeServerRules, "Rules", true)
	orig.SetValues("one")

	clone := orig.Copy()
	if !fieldsEqual(orig, clone) {
		t.Fatal("copy must match the original")
	}

	orig.SetValues("one", "two")
	if clone.Values().Equal(orig.Values()) {
		t.Fatal("mutating the original must not touch the copy")
	}
}

func TestFieldValueSetters(t *testing.T) {
	t.Parallel()

	f := NewFormField(FieldTypeServerRules, "Rules", true)
	if f.Values().IsSet() {
		t.Fatal("new field must start unset")
	}

	f.SetValuesEmpty()
	if !f.Values().IsEmpty() {
		t.Fatal("expected explicit empty")
	}

	f.SetValues("v")
	if items, ok := f.Values().Items(); !ok || len(items) != 1 {
		t.Fatalf("items: %v ok=%v", items, ok)
	}

	f.ClearValues()
	if f.Values().IsSet() {
		t.Fatal("clear must return to unset")
	}
}
