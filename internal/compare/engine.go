package compare

import (
	"sort"

	"gtmdiff/internal/entity"
	"gtmdiff/internal/snapshot"
)

// Diff compares two snapshots and returns the ordered list of differences.
// Categories are walked in the given order; within a category, entity keys
// are walked in sorted order, and within an entity, field paths in sorted
// order. Fields equal on both sides produce no record. If categories is
// nil, the sorted union of both snapshots' categories is used.
//
// Diff is a total function: it never fails, and treats a missing category
// as an empty entity map.
func Diff(a, b snapshot.Snapshot, labelA, labelB string, categories []snapshot.Category) []Record {
	if categories == nil {
		categories = categoryUnion(a, b)
	}

	var records []Record
	for _, category := range categories {
		mapA := a[category]
		mapB := b[category]

		for _, key := range keyUnion(mapA, mapB) {
			entA, inA := mapA[key]
			entB, inB := mapB[key]

			switch {
			case !inA:
				records = append(records, Record{
					Category:  category,
					EntityKey: key,
					FieldPath: EntitySentinel,
					ValueB:    presenceMarker,
					LabelA:    labelA,
					LabelB:    labelB,
					Kind:      OnlyInB,
				})
			case !inB:
				records = append(records, Record{
					Category:  category,
					EntityKey: key,
					FieldPath: EntitySentinel,
					ValueA:    presenceMarker,
					LabelA:    labelA,
					LabelB:    labelB,
					Kind:      OnlyInA,
				})
			default:
				records = append(records, diffFields(category, key, entA, entB, labelA, labelB)...)
			}
		}
	}
	return records
}

// diffFields compares two entities field by field. A path missing on one
// side is never equal to any present value, including the empty string.
func diffFields(category snapshot.Category, key string, entA, entB entity.Value, labelA, labelB string) []Record {
	flatA := entity.Flatten(entA)
	flatB := entity.Flatten(entB)

	var records []Record
	for _, path := range pathUnion(flatA, flatB) {
		valA, inA := flatA[path]
		valB, inB := flatB[path]
		if inA && inB && valA.Equal(valB) {
			continue
		}

		rec := Record{
			Category:  category,
			EntityKey: key,
			FieldPath: path,
			LabelA:    labelA,
			LabelB:    labelB,
			Kind:      Modified,
		}
		if inA {
			rec.ValueA = valA.Render()
		}
		if inB {
			rec.ValueB = valB.Render()
		}
		records = append(records, rec)
	}
	return records
}

func categoryUnion(a, b snapshot.Snapshot) []snapshot.Category {
	seen := make(map[snapshot.Category]bool, len(a)+len(b))
	for c := range a {
		seen[c] = true
	}
	for c := range b {
		seen[c] = true
	}
	union := make([]snapshot.Category, 0, len(seen))
	for c := range seen {
		union = append(union, c)
	}
	sort.Slice(union, func(i, j int) bool { return union[i] < union[j] })
	return union
}

func keyUnion(a, b snapshot.EntityMap) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for k := range a {
		seen[k] = true
	}
	for k := range b {
		seen[k] = true
	}
	return sorted(seen)
}

func pathUnion(a, b entity.Flat) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for p := range a {
		seen[p] = true
	}
	for p := range b {
		seen[p] = true
	}
	return sorted(seen)
}

func sorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
