// Package compare computes field-level differences between two container
// snapshots. Output order is fully deterministic: the same inputs always
// produce the same records in the same order, so a report can serve as an
// audit trail.
package compare

import "gtmdiff/internal/snapshot"

// ChangeKind classifies one diff record
type ChangeKind string

const (
	// OnlyInA means the entity exists only in the first snapshot
	OnlyInA ChangeKind = "only_in_a"
	// OnlyInB means the entity exists only in the second snapshot
	OnlyInB ChangeKind = "only_in_b"
	// Modified means a field holds different values on the two sides
	Modified ChangeKind = "modified"
)

// EntitySentinel is the field path reserved for whole-entity
// presence/absence records.
const EntitySentinel = "__entity__"

// presenceMarker renders the existing side of a presence/absence record
const presenceMarker = "present"

// Record is one reported difference between two snapshots. Values are
// already rendered for output; an absent field renders as the empty string.
type Record struct {
	Category  snapshot.Category
	EntityKey string
	FieldPath string
	ValueA    string
	ValueB    string
	LabelA    string
	LabelB    string
	Kind      ChangeKind
}
