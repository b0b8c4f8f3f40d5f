// Package screening models a guild's membership screening form: the
// questionnaire shown to joining members before full access.
package screening

import (
	"context"
	"fmt"
	"time"

	"github.com/aura-chat/guildsdk/state"
	"github.com/aura-chat/guildsdk/wire"
)

// FeatureMemberVerificationGate is the guild feature flag that enables
// membership screening.
const FeatureMemberVerificationGate = "MEMBER_VERIFICATION_GATE_ENABLED"

// versionLayout is the server's form version timestamp format.
const versionLayout = "2006-01-02T15:04:05.000000+00:00"

// Form is a guild's full membership screening form.
//
// The guild reference is a non-owning handle; the guild owns the form
// through the facade, never the other way around.
type Form struct {
	state *state.State
	guild state.Guild

	// Version is when the form was last set.
	Version time.Time
	// Description is the short blurb shown to joining members, if any.
	Description *string
	// Fields is the ordered field list.
	Fields []Field
}

// FormFromPayload builds a full form from its wire payload.
func FormFromPayload(s *state.State, guild state.Guild, p wire.ScreeningForm) (*Form, error) {
	f := &Form{state: s, guild: guild}
	if err := f.fromPayload(p); err != nil {
		return nil, err
	}
	return f, nil
}

// fromPayload replaces the form's entire local state from a payload.
func (f *Form) fromPayload(p wire.ScreeningForm) error {
	version, err := time.Parse(versionLayout, p.Version)
	if err != nil {
		return fmt.Errorf("screening: parse form version: %w", err)
	}
	fields := make([]Field, len(p.FormFields))
	for i, fp := range p.FormFields {
		fields[i] = FieldFromPayload(fp)
	}
	f.Version = version
	f.Description = p.Description
	f.Fields = fields
	return nil
}

// Guild returns the guild handle the form belongs to.
func (f *Form) Guild() state.Guild { return f.guild }

// Enabled reports whether the guild has membership screening enabled. It is
// derived from the guild's feature flags on every call, never cached.
func (f *Form) Enabled() bool { return f.guild.HasFeature(FeatureMemberVerificationGate) }

// UpdateOptions is the change-set for a form update. Nil members are left
// unchanged on the server; a zero UpdateOptions makes Update a no-op.
type UpdateOptions struct {
	// Enabled toggles the screening feature flag.
	Enabled *bool
	// Fields replaces the whole field list. Distinguish nil (leave
	// unchanged) from an empty non-nil slice (clear the fields).
	Fields []Field
	// Description replaces the form description.
	Description *string
}

func (o UpdateOptions) empty() bool {
	return o.Enabled == nil && o.Fields == nil && o.Description == nil
}

func (o UpdateOptions) payload() wire.ScreeningFormUpdate {
	changes := wire.ScreeningFormUpdate{
		Enabled:     o.Enabled,
		Description: o.Description,
	}
	if o.Fields != nil {
		changes.FormFields = make([]wire.ScreeningFormField, len(o.Fields))
		for i, field := range o.Fields {
			changes.FormFields[i] = field.Payload()
		}
	}
	return changes
}

// Update submits the change-set and replaces the form's entire local state
// from the response. With no recognized option set, no request is issued.
// Fails with state.ErrForbidden (wrapped) when lacking permission.
func (f *Form) Update(ctx context.Context, opts UpdateOptions) error {
	if opts.empty() {
		return nil
	}
	data, err := f.state.UpdateMemberVerification(ctx, f.guild.ID(), opts.payload())
	if err != nil {
		return err
	}
	return f.fromPayload(data)
}

// PartialForm is a screening form known only by its guild; fetch it to get
// fields and description.
type PartialForm struct {
	state *state.State
	guild state.Guild
}

// NewPartialForm returns the deferred form handle for a guild.
func NewPartialForm(s *state.State, guild state.Guild) *PartialForm {
	return &PartialForm{state: s, guild: guild}
}

// Guild returns the guild handle the form belongs to.
func (p *PartialForm) Guild() state.Guild { return p.guild }

// Enabled reports whether the guild has membership screening enabled.
func (p *PartialForm) Enabled() bool { return p.guild.HasFeature(FeatureMemberVerificationGate) }

// Fetch retrieves the full form.
func (p *PartialForm) Fetch(ctx context.Context) (*Form, error) {
	data, err := p.state.MemberVerification(ctx, p.guild.ID())
	if err != nil {
		return nil, err
	}
	return FormFromPayload(p.state, p.guild, data)
}

// Update submits the change-set and returns the resulting full form. With
// no recognized option set, no request is issued and the form is nil.
func (p *PartialForm) Update(ctx context.Context, opts UpdateOptions) (*Form, error) {
	if opts.empty() {
		return nil, nil
	}
	data, err := p.state.UpdateMemberVerification(ctx, p.guild.ID(), opts.payload())
	if err != nil {
		return nil, err
	}
	return FormFromPayload(p.state, p.guild, data)
}
