package types

// ErrorEnvelope is the JSON body of every failed request. Code and Details are
// additive to the plain {"error": "..."} shape clients already read.
type ErrorEnvelope struct {
	Error        string `json:"error"`
	Code         string `json:"code,omitempty"`
	Details      any    `json:"details,omitempty"`
	IsDuplicate  bool   `json:"isDuplicate,omitempty"`
	ExistingItem any    `json:"existingItem,omitempty"`
}

// Duplicate is carried as error details when a write collides with an
// existing record; the record is returned so the caller can edit it instead.
type Duplicate struct {
	ExistingItem any
}
