package screening

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aura-chat/guildsdk/internal/testutil"
	"github.com/aura-chat/guildsdk/pkg/snowflake"
	"github.com/aura-chat/guildsdk/state"
	"github.com/aura-chat/guildsdk/wire"
)

func formPayload(description string, labels ...string) wire.ScreeningForm {
	fields := make([]wire.ScreeningFormField, len(labels))
	for i, l := range labels {
		fields[i] = wire.ScreeningFormField{FieldType: 1, Label: l, Required: true}
	}
	return wire.ScreeningForm{
		Version:     "2021-01-15T02:33:44.857000+00:00",
		Description: &description,
		FormFields:  fields,
	}
}

func TestFormFromPayload(t *testing.T) {
	t.Parallel()

	s := state.New(&testutil.Transport{})
	guild := &testutil.Guild{GID: 1}

	form, err := FormFromPayload(s, guild, formPayload("welcome", "Rules"))
	if err != nil {
		t.Fatalf("FormFromPayload: %v", err)
	}
	want := time.Date(2021, 1, 15, 2, 33, 44, 857e6, time.UTC)
	if !form.Version.Equal(want) {
		t.Fatalf("version: got %v want %v", form.Version, want)
	}
	if form.Description == nil || *form.Description != "welcome" {
		t.Fatalf("description: %v", form.Description)
	}
	if len(form.Fields) != 1 || form.Fields[0].Label() != "Rules" {
		t.Fatalf("fields: %+v", form.Fields)
	}

	if _, err := FormFromPayload(s, guild, wire.ScreeningForm{Version: "yesterday"}); err == nil {
		t.Fatal("expected version parse error")
	}
}

func TestFormEnabledIsDerived(t *testing.T) {
	t.Parallel()

	s := state.New(&testutil.Transport{})
	guild := &testutil.Guild{GID: 1}
	form, err := FormFromPayload(s, guild, formPayload("d"))
	if err != nil {
		t.Fatalf("FormFromPayload: %v", err)
	}

	if form.Enabled() {
		t.Fatal("no feature flag, must be disabled")
	}
	// Flag appears after construction; Enabled must see it immediately.
	guild.Features = append(guild.Features, FeatureMemberVerificationGate)
	if !form.Enabled() {
		t.Fatal("feature flag present, must be enabled")
	}
}

func TestFormUpdateNoOp(t *testing.T) {
	t.Parallel()

	transport := &testutil.Transport{}
	s := state.New(transport)
	guild := &testutil.Guild{GID: 1}
	form, err := FormFromPayload(s, guild, formPayload("d"))
	if err != nil {
		t.Fatalf("FormFromPayload: %v", err)
	}

	if err := form.Update(context.Background(), UpdateOptions{}); err != nil {
		t.Fatalf("no-op update: %v", err)
	}
	if len(transport.Calls) != 0 {
		t.Fatalf("no-op update must issue zero calls, got %v", transport.Calls)
	}
}

func TestFormUpdateReplacesState(t *testing.T) {
	t.Parallel()

	var gotChanges wire.ScreeningFormUpdate
	transport := &testutil.Transport{
		UpdateFormFunc: func(_ context.Context, _ snowflake.ID, changes wire.ScreeningFormUpdate) (wire.ScreeningForm, error) {
			gotChanges = changes
			return formPayload("after", "New A", "New B"), nil
		},
	}
	s := state.New(transport)
	guild := &testutil.Guild{GID: 1}
	form, err := FormFromPayload(s, guild, formPayload("before", "Old"))
	if err != nil {
		t.Fatalf("FormFromPayload: %v", err)
	}

	enabled := true
	desc := "after"
	opts := UpdateOptions{
		Enabled:     &enabled,
		Description: &desc,
		Fields: []Field{
			NewServerRules("New A", true, "rule one"),
			NewFormField(FieldTypeServerRules, "New B", true),
		},
	}
	if err := form.Update(context.Background(), opts); err != nil {
		t.Fatalf("update: %v", err)
	}

	// The change-set carries structured field payloads.
	if gotChanges.Enabled == nil || !*gotChanges.Enabled {
		t.Fatal("enabled not transmitted")
	}
	if len(gotChanges.FormFields) != 2 || gotChanges.FormFields[0].Label != "New A" {
		t.Fatalf("form_fields: %+v", gotChanges.FormFields)
	}
	if _, ok := gotChanges.FormFields[0].Values.Items(); !ok {
		t.Fatal("field values not transmitted")
	}

	// The whole local state is replaced from the response, no field merge.
	if len(form.Fields) != 2 || form.Fields[0].Label() != "New A" || form.Fields[1].Label() != "New B" {
		t.Fatalf("fields after update: %+v", form.Fields)
	}
	if form.Description == nil || *form.Description != "after" {
		t.Fatalf("description after update: %v", form.Description)
	}
}

func TestFormUpdateForbidden(t *testing.T) {
	t.Parallel()

	transport := &testutil.Transport{
		UpdateFormFunc: func(context.Context, snowflake.ID, wire.ScreeningFormUpdate) (wire.ScreeningForm, error) {
			return wire.ScreeningForm{}, &state.RequestError{Status: 403, Body: "missing permission"}
		},
	}
	s := state.New(transport)
	guild := &testutil.Guild{GID: 1}
	form, err := FormFromPayload(s, guild, formPayload("before", "Old"))
	if err != nil {
		t.Fatalf("FormFromPayload: %v", err)
	}

	desc := "new"
	err = form.Update(context.Background(), UpdateOptions{Description: &desc})
	if !errors.Is(err, state.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	// No local mutation on failure.
	if *form.Description != "before" {
		t.Fatalf("description mutated on failure: %q", *form.Description)
	}
}

func TestPartialForm(t *testing.T) {
	t.Parallel()

	transport := &testutil.Transport{
		GetFormFunc: func(context.Context, snowflake.ID) (wire.ScreeningForm, error) {
			return formPayload("fetched", "Rules"), nil
		},
		UpdateFormFunc: func(context.Context, snowflake.ID, wire.ScreeningFormUpdate) (wire.ScreeningForm, error) {
			return formPayload("updated", "Rules"), nil
		},
	}
	s := state.New(transport)
	guild := &testutil.Guild{GID: 1, Features: []string{FeatureMemberVerificationGate}}
	partial := NewPartialForm(s, guild)

	if !partial.Enabled() {
		t.Fatal("partial must derive enabled from the guild features")
	}

	// No recognized option: no request, nil form.
	form, err := partial.Update(context.Background(), UpdateOptions{})
	if err != nil || form != nil {
		t.Fatalf("no-op update: form=%v err=%v", form, err)
	}
	if len(transport.Calls) != 0 {
		t.Fatalf("no-op update must issue zero calls, got %v", transport.Calls)
	}

	form, err = partial.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if *form.Description != "fetched" {
		t.Fatalf("fetched description: %q", *form.Description)
	}

	desc := "updated"
	form, err = partial.Update(context.Background(), UpdateOptions{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if form == nil || *form.Description != "updated" {
		t.Fatalf("update must return a brand-new full form, got %+v", form)
	}
}
