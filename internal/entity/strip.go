package entity

// KeySet is a set of mapping keys.
type KeySet map[string]bool

// NewKeySet builds a KeySet from a list of key names.
func NewKeySet(keys []string) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// Strip returns a copy of the tree with every mapping entry whose key is
// in the noise set removed, at every depth. Sequences recurse element-wise
// and scalars pass through unchanged. The input is never mutated; the
// operation is idempotent.
func Strip(v Value, noise KeySet) Value {
	switch v := v.(type) {
	case Mapping:
		out := make(Mapping, len(v))
		for key, child := range v {
			if noise[key] {
				continue
			}
			out[key] = Strip(child, noise)
		}
		return out
	case Sequence:
		out := make(Sequence, len(v))
		for i, child := range v {
			out[i] = Strip(child, noise)
		}
		return out
	default:
		return v
	}
}
