// Package snapshot captures the normalized state of one container side
// of a comparison: entities grouped by category and keyed by name.
package snapshot

import "gtmdiff/internal/entity"

// Category is the grouping bucket an entity belongs to. The diff logic
// never interprets it; it is a label and nothing more.
type Category string

// Default categories, matching the workspace listing endpoints.
const (
	CategoryTags      Category = "tags"
	CategoryTriggers  Category = "triggers"
	CategoryVariables Category = "variables"
)

// EntityMap maps entity keys to normalized entity trees within one category.
type EntityMap map[string]entity.Value

// Snapshot is the full normalized state of one side of a comparison.
// Constructed once, read-only thereafter. A category absent from the map
// is treated as empty everywhere, never as an error.
type Snapshot map[Category]EntityMap

// Count returns the total number of entities across all categories.
func (s Snapshot) Count() int {
	n := 0
	for _, m := range s {
		n += len(m)
	}
	return n
}
