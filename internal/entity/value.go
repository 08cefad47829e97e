// Package entity models Tag Manager entities as generic value trees.
// An entity is an arbitrary nesting of mappings, sequences and scalars;
// the package makes no assumptions about what the entity means.
package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is one node of an entity tree. Exactly three concrete types
// implement it: Scalar, Sequence and Mapping. Code walking a tree
// switches over these and nothing else.
type Value interface {
	isValue()
}

// Scalar is a leaf value: string, float64, bool or nil (the JSON scalars).
type Scalar struct {
	V interface{}
}

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping is a string-keyed object of values.
type Mapping map[string]Value

func (Scalar) isValue()   {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// Equal reports whether two scalars hold the same value.
func (s Scalar) Equal(o Scalar) bool {
	return s.V == o.V
}

// Render returns the scalar as a string for report output.
// Numbers render without a trailing ".0", nil renders as the empty string.
func (s Scalar) Render() string {
	switch v := s.V.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// MarshalJSON encodes the scalar as its underlying value.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.V)
}

// MarshalYAML encodes the scalar as its underlying value.
func (s Scalar) MarshalYAML() (interface{}, error) {
	return s.V, nil
}

// FromJSON decodes a JSON document into a value tree.
func FromJSON(data []byte) (Value, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode entity: %w", err)
	}
	return FromAny(raw), nil
}

// FromAny converts a decoded JSON value (map[string]interface{},
// []interface{} or scalar) into a value tree. Anything that is not a
// map or slice becomes a Scalar as-is.
func FromAny(raw interface{}) Value {
	switch v := raw.(type) {
	case map[string]interface{}:
		m := make(Mapping, len(v))
		for k, child := range v {
			m[k] = FromAny(child)
		}
		return m
	case []interface{}:
		seq := make(Sequence, len(v))
		for i, child := range v {
			seq[i] = FromAny(child)
		}
		return seq
	default:
		return Scalar{V: v}
	}
}

// StringField returns the named top-level field of a mapping as a
// non-empty string, or "" if the value is not a mapping, the field is
// absent, or it does not hold a non-empty string scalar.
func StringField(v Value, key string) string {
	m, ok := v.(Mapping)
	if !ok {
		return ""
	}
	s, ok := m[key].(Scalar)
	if !ok {
		return ""
	}
	str, ok := s.V.(string)
	if !ok {
		return ""
	}
	return str
}
