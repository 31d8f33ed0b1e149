package openapi

import (
	"encoding/json"
	"strings"

	"github.com/sudoDevesh/swagger2jmeter/internal/models"
)

// Extract normalizes a document into one endpoint per (path, method) pair,
// in document order: paths in insertion order, then methods within each
// path. Method entries whose value is absent or not an object are skipped.
// A nil document or a document without paths yields an empty slice.
func Extract(doc *Document) []models.Endpoint {
	endpoints := []models.Endpoint{}
	if doc == nil || doc.Paths == nil {
		return endpoints
	}

	v3 := doc.IsV3()
	for pair := doc.Paths.Oldest(); pair != nil; pair = pair.Next() {
		path := pair.Key
		item := pair.Value
		if item == nil {
			continue
		}
		for op := item.Oldest(); op != nil; op = op.Next() {
			raw := op.Value
			if len(raw) == 0 || !isObject(raw) {
				continue
			}
			var o operation
			if err := json.Unmarshal(raw, &o); err != nil {
				continue
			}

			summary := o.Summary
			if summary == "" {
				summary = o.OperationID
			}
			tags := []string{}
			tags = append(tags, o.Tags...)

			ep := models.Endpoint{
				Path:        path,
				Method:      strings.ToUpper(op.Key),
				Summary:     summary,
				Description: o.Description,
				Tags:        tags,
				Parameters:  o.Parameters,
			}
			// v2 has no request body at this level; body parameters stay
			// inside the parameters pass-through.
			if v3 {
				ep.RequestBody = o.RequestBody
			}
			endpoints = append(endpoints, ep)
		}
	}
	return endpoints
}
