package entity

import "strconv"

// Flat maps field paths to the scalar leaves they address.
// A field path descends mappings with "." and sequences with "[i]",
// e.g. "parameter[0].value".
type Flat map[string]Scalar

// Flatten projects a value tree into a Flat covering every scalar leaf
// exactly once. Empty mappings and sequences contribute no leaves. The
// function is pure: it never modifies its input and identical inputs
// produce identical outputs.
//
//	{"a": {"b": [1, 2]}}  ->  {"a.b[0]": 1, "a.b[1]": 2}
func Flatten(root Value) Flat {
	out := make(Flat)
	flattenInto(root, "", out)
	return out
}

func flattenInto(v Value, prefix string, out Flat) {
	switch v := v.(type) {
	case Mapping:
		for key, child := range v {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			flattenInto(child, path, out)
		}
	case Sequence:
		for i, child := range v {
			flattenInto(child, prefix+"["+strconv.Itoa(i)+"]", out)
		}
	case Scalar:
		out[prefix] = v
	}
}
