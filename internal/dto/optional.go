package dto

import "encoding/json"

// OptString is a JSON field with three states: absent, explicit null, and a
// string value. A plain *string cannot tell "not supplied" from "clear to
// null", which matters for patch requests (e.g. clearing a transaction note).
type OptString struct {
	Value *string
	Set   bool
}

// UnmarshalJSON records that the field was present, keeping Value nil for an
// explicit null. Absent fields never reach UnmarshalJSON, leaving Set false.
func (o *OptString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// MarshalJSON renders the value, with null both for absent and cleared.
func (o OptString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
