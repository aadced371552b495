// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import "strings"

// Kind classifies one schema tree node.
type Kind int

const (
	// KindNull is an explicit null scalar.
	KindNull Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindNumber is an integer or float scalar.
	KindNumber
	// KindString is a text scalar.
	KindString
	// KindMapping is a key/value container with insertion-ordered keys.
	KindMapping
	// KindSequence is an ordered list container.
	KindSequence
)

// String returns a display name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// IsContainer reports whether the kind holds child nodes.
func (k Kind) IsContainer() bool {
	return k == KindMapping || k == KindSequence
}

// Schema is one node of a loaded schema tree.
//
// Mapping nodes keep key insertion order because key order drives the
// rendered output order. Scalar nodes keep the literal source text so
// values render exactly as written.
type Schema struct {
	Kind Kind

	// Value holds the literal scalar text for scalar kinds.
	Value string

	keys   []string
	values map[string]*Schema

	// Items holds sequence children in order.
	Items []*Schema
}

// NewMapping returns an empty ordered mapping node.
func NewMapping() *Schema {
	return &Schema{Kind: KindMapping, values: make(map[string]*Schema)}
}

// NewSequence returns an empty sequence node.
func NewSequence() *Schema {
	return &Schema{Kind: KindSequence}
}

// NewScalar returns a scalar node with literal text.
func NewScalar(kind Kind, value string) *Schema {
	return &Schema{Kind: kind, Value: value}
}

// StringNode returns a string scalar node.
func StringNode(value string) *Schema {
	return NewScalar(KindString, value)
}

// Keys returns mapping keys in insertion order.
func (s *Schema) Keys() []string {
	if s == nil || s.Kind != KindMapping {
		return nil
	}

	return s.keys
}

// Get returns the mapping value for key.
func (s *Schema) Get(key string) (*Schema, bool) {
	if s == nil || s.Kind != KindMapping {
		return nil, false
	}

	value, ok := s.values[key]
	return value, ok
}

// Has reports whether the mapping contains key.
func (s *Schema) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Set stores a mapping value, appending the key when it is new.
func (s *Schema) Set(key string, value *Schema) {
	if s == nil || s.Kind != KindMapping {
		return
	}

	if s.values == nil {
		s.values = make(map[string]*Schema)
	}

	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}

	s.values[key] = value
}

// Delete removes a mapping key while preserving the order of the rest.
func (s *Schema) Delete(key string) bool {
	if s == nil || s.Kind != KindMapping {
		return false
	}

	if _, exists := s.values[key]; !exists {
		return false
	}

	delete(s.values, key)
	for i, existing := range s.keys {
		if existing == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}

	return true
}

// Append adds one sequence item.
func (s *Schema) Append(item *Schema) {
	if s == nil || s.Kind != KindSequence {
		return
	}

	s.Items = append(s.Items, item)
}

// RemoveItem deletes one sequence item by index.
func (s *Schema) RemoveItem(index int) bool {
	if s == nil || s.Kind != KindSequence {
		return false
	}

	if index < 0 || index >= len(s.Items) {
		return false
	}

	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	return true
}

// Len returns the child count for containers and zero for scalars.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}

	switch s.Kind {
	case KindMapping:
		return len(s.keys)
	case KindSequence:
		return len(s.Items)
	default:
		return 0
	}
}

// Bool returns the scalar boolean value.
func (s *Schema) Bool() (value, ok bool) {
	if s == nil || s.Kind != KindBool {
		return false, false
	}

	return strings.EqualFold(s.Value, "true"), true
}

// Text returns the literal scalar text and an empty string for containers.
func (s *Schema) Text() string {
	if s == nil || s.Kind.IsContainer() {
		return ""
	}

	return s.Value
}

// Clone returns a deep order-preserving copy of the node.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	out := &Schema{Kind: s.Kind, Value: s.Value}
	switch s.Kind {
	case KindMapping:
		out.values = make(map[string]*Schema, len(s.keys))
		out.keys = make([]string, len(s.keys))
		copy(out.keys, s.keys)
		for key, value := range s.values {
			out.values[key] = value.Clone()
		}
	case KindSequence:
		out.Items = make([]*Schema, len(s.Items))
		for i, item := range s.Items {
			out.Items[i] = item.Clone()
		}
	}

	return out
}

// Equal reports deep equality including mapping key order.
func (s *Schema) Equal(other *Schema) bool {
	if s == nil || other == nil {
		return s == other
	}

	if s.Kind != other.Kind {
		return false
	}

	switch s.Kind {
	case KindMapping:
		if len(s.keys) != len(other.keys) {
			return false
		}

		for i, key := range s.keys {
			if other.keys[i] != key {
				return false
			}

			if !s.values[key].Equal(other.values[key]) {
				return false
			}
		}

		return true
	case KindSequence:
		if len(s.Items) != len(other.Items) {
			return false
		}

		for i, item := range s.Items {
			if !item.Equal(other.Items[i]) {
				return false
			}
		}

		return true
	default:
		return s.Value == other.Value
	}
}
