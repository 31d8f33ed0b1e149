package openapi

import "github.com/sudoDevesh/swagger2jmeter/internal/models"

// DefaultGroup is the group name for endpoints without tags.
const DefaultGroup = "default"

// TagGroup is a set of endpoints sharing the same first tag.
type TagGroup struct {
	Name      string            `json:"name"`
	Endpoints []models.Endpoint `json:"endpoints"`
}

// GroupByTag groups endpoints by their first tag, preserving both the order
// in which groups first appear and the endpoint order within each group.
func GroupByTag(endpoints []models.Endpoint) []TagGroup {
	groups := []TagGroup{}
	index := map[string]int{}

	for _, ep := range endpoints {
		name := DefaultGroup
		if len(ep.Tags) > 0 {
			name = ep.Tags[0]
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, TagGroup{Name: name})
		}
		groups[i].Endpoints = append(groups[i].Endpoints, ep)
	}
	return groups
}
