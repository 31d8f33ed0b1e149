// Package openapi parses Swagger 2.0 and OpenAPI 3.x JSON documents just far
// enough to extract their HTTP operations. It deliberately performs no schema
// validation: unknown fields are ignored, missing fields default, and
// malformed sub-structures are skipped rather than rejected.
package openapi

import (
	"encoding/json"
	"strings"

	orderedmap "github.com/pb33f/ordered-map/v2"
)

// PathItem maps lowercase HTTP method names to raw operation objects. The
// ordered map keeps the method keys in document order.
type PathItem = orderedmap.OrderedMap[string, json.RawMessage]

// Server is one entry of an OpenAPI v3 servers list.
type Server struct {
	URL string `json:"url"`
}

// Document is the lenient view of a Swagger/OpenAPI document. Only the
// fields the extractor and base-URL resolver care about are modelled; every
// one of them is optional.
type Document struct {
	// Version markers. OpenAPI is set for v3 documents ("3.0.1", ...),
	// Swagger for v2 ("2.0").
	OpenAPI string `json:"openapi"`
	Swagger string `json:"swagger"`

	// v3 server list.
	Servers []Server `json:"servers"`

	// v2 equivalents.
	Host     string   `json:"host"`
	BasePath string   `json:"basePath"`
	Schemes  []string `json:"schemes"`

	Paths *orderedmap.OrderedMap[string, *PathItem] `json:"paths"`
}

// IsV3 reports whether the document declares itself as OpenAPI 3.x.
// Anything else is treated as Swagger v2.
func (d *Document) IsV3() bool {
	return d != nil && strings.HasPrefix(d.OpenAPI, "3")
}

// operation models the subset of an operation object the extractor reads.
// Parameters and RequestBody stay raw.
type operation struct {
	Summary     string            `json:"summary"`
	Description string            `json:"description"`
	OperationID string            `json:"operationId"`
	Tags        []string          `json:"tags"`
	Parameters  []json.RawMessage `json:"parameters"`
	RequestBody json.RawMessage   `json:"requestBody"`
}

// isObject reports whether raw holds a JSON object. Path items also carry
// non-operation keys (path-level summary, parameters, servers) whose values
// are strings or arrays; those must not become endpoints.
func isObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
