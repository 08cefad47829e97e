package snapshot

import "gtmdiff/internal/entity"

// Index builds an EntityMap from an ordered collection of entity trees.
// The key is the entity's "name" field when present and non-empty,
// otherwise the first present field from fallbackIDs. Entities with no
// usable key are skipped. When two entities resolve to the same key the
// later one wins; the returned count says how many earlier entities were
// overwritten that way, so callers can surface the data loss.
//
// Index expects trees that have already been through entity.Strip.
func Index(items []entity.Value, fallbackIDs []string) (EntityMap, int) {
	out := make(EntityMap, len(items))
	overwritten := 0

	for _, item := range items {
		key := entity.StringField(item, "name")
		if key == "" {
			for _, field := range fallbackIDs {
				if key = entity.StringField(item, field); key != "" {
					break
				}
			}
		}
		if key == "" {
			continue
		}
		if _, exists := out[key]; exists {
			overwritten++
		}
		out[key] = item
	}

	return out, overwritten
}
