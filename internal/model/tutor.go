package model

import (
	"bytes"
	"encoding/json"
)

// TutorRequest is the body of POST /api/tutor.  Message is a pointer so a
// missing key can be told apart from an empty string; Level is a pointer
// so an explicit null survives decoding.
type TutorRequest struct {
	Message *string `json:"message" validate:"required"`
	Level   *string `json:"level"`

	nullFields []string
}

// UnmarshalJSON decodes the request and remembers required keys that were
// sent as an explicit null.
func (r *TutorRequest) UnmarshalJSON(b []byte) error {
	type plain TutorRequest
	if err := json.Unmarshal(b, (*plain)(r)); err != nil {
		return err
	}
	r.nullFields = nil
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	if v, ok := raw["message"]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		r.nullFields = append(r.nullFields, "message")
	}
	return nil
}

// NullFields lists required keys that were present but null.
func (r *TutorRequest) NullFields() []string { return r.nullFields }

// TutorResponse is returned by POST /api/tutor.
type TutorResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
	Prompt      *string  `json:"prompt"`
}

// Message is a one-field greeting payload.
type Message struct {
	Message string `json:"message"`
}
