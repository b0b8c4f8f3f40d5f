package wire

import "encoding/json"

// ScreeningForm is the membership screening form payload.
type ScreeningForm struct {
	Version     string               `json:"version"`
	Description *string              `json:"description,omitempty"`
	FormFields  []ScreeningFormField `json:"form_fields"`
}

// ScreeningFormField is a single form field payload. Values distinguishes
// an absent key from an explicitly empty value; see FieldValues.
type ScreeningFormField struct {
	FieldType int
	Label     string
	Required  bool
	Values    FieldValues
}

// screeningFormFieldJSON is the encoded form; Values is raw so the unset
// state can omit the key.
type screeningFormFieldJSON struct {
	FieldType int             `json:"field_type"`
	Label     string          `json:"label"`
	Required  bool            `json:"required"`
	Values    json.RawMessage `json:"values,omitempty"`
}

// MarshalJSON omits the values key entirely when it was never set.
func (f ScreeningFormField) MarshalJSON() ([]byte, error) {
	enc := screeningFormFieldJSON{
		FieldType: f.FieldType,
		Label:     f.Label,
		Required:  f.Required,
	}
	if f.Values.IsSet() {
		raw, err := f.Values.MarshalJSON()
		if err != nil {
			return nil, err
		}
		enc.Values = raw
	}
	return json.Marshal(enc)
}

// UnmarshalJSON preserves an absent values key as the unset state.
func (f *ScreeningFormField) UnmarshalJSON(b []byte) error {
	var dec screeningFormFieldJSON
	if err := json.Unmarshal(b, &dec); err != nil {
		return err
	}
	values := UnsetValues()
	if dec.Values != nil {
		if err := values.UnmarshalJSON(dec.Values); err != nil {
			return err
		}
	}
	*f = ScreeningFormField{
		FieldType: dec.FieldType,
		Label:     dec.Label,
		Required:  dec.Required,
		Values:    values,
	}
	return nil
}

// ScreeningFormUpdate is the change-set body of an update request. Absent
// options are omitted so the server leaves them untouched.
type ScreeningFormUpdate struct {
	Enabled     *bool                `json:"enabled,omitempty"`
	Description *string              `json:"description,omitempty"`
	FormFields  []ScreeningFormField `json:"form_fields,omitempty"`
}
