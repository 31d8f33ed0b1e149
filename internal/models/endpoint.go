package models

import "encoding/json"

// Endpoint represents one HTTP operation extracted from a Swagger/OpenAPI
// document. Parameters and RequestBody carry the raw JSON from the source
// document; nothing downstream reinterprets them.
type Endpoint struct {
	Path        string            `json:"path"`
	Method      string            `json:"method"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags"`
	Parameters  []json.RawMessage `json:"parameters,omitempty"`
	RequestBody json.RawMessage   `json:"requestBody,omitempty"`
}

// Label is the display name used for the endpoint, "<METHOD> <path>".
func (e Endpoint) Label() string {
	return e.Method + " " + e.Path
}
