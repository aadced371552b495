// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"fmt"
	"strconv"
	"strings"
)

// Pointer is a parsed path identifying one location inside a schema tree.
//
// The wire syntax is standard pointer notation: segments separated by "/",
// with "~1" escaping "/" and "~0" escaping "~". The empty pointer addresses
// the whole document.
type Pointer struct {
	segments []string
}

// ParsePointer parses pointer text into segments.
func ParsePointer(text string) (Pointer, error) {
	if text == "" {
		return Pointer{}, nil
	}

	if !strings.HasPrefix(text, "/") {
		return Pointer{}, fmt.Errorf("%w: pointer %q must start with '/'", ErrPointer, text)
	}

	parts := strings.Split(text[1:], "/")
	segments := make([]string, len(parts))
	for i, part := range parts {
		segments[i] = unescapeSegment(part)
	}

	return Pointer{segments: segments}, nil
}

// unescapeSegment decodes the ~1 and ~0 escapes in order.
func unescapeSegment(segment string) string {
	segment = strings.ReplaceAll(segment, "~1", "/")
	return strings.ReplaceAll(segment, "~0", "~")
}

// escapeSegment encodes one raw segment for display.
func escapeSegment(segment string) string {
	segment = strings.ReplaceAll(segment, "~", "~0")
	return strings.ReplaceAll(segment, "/", "~1")
}

// String renders the pointer back to wire syntax.
func (p Pointer) String() string {
	if len(p.segments) == 0 {
		return ""
	}

	var out strings.Builder
	for _, segment := range p.segments {
		out.WriteByte('/')
		out.WriteString(escapeSegment(segment))
	}

	return out.String()
}

// IsRoot reports whether the pointer addresses the whole document.
func (p Pointer) IsRoot() bool {
	return len(p.segments) == 0
}

// Segments returns the decoded pointer segments.
func (p Pointer) Segments() []string {
	return p.segments
}

// Resolve walks the pointer against a schema tree without mutating it.
func (p Pointer) Resolve(schema *Schema) (*Schema, error) {
	current := schema
	for i, segment := range p.segments {
		next, err := walkSegment(current, segment)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at segment %d: %w", ErrPointer, p.String(), i, err)
		}

		current = next
	}

	return current, nil
}

// ToLast resolves the pointer up to its parent container and returns the final segment.
func (p Pointer) ToLast(schema *Schema) (*Schema, string, error) {
	if p.IsRoot() {
		return nil, "", fmt.Errorf("%w: empty pointer has no parent", ErrPointer)
	}

	parent := Pointer{segments: p.segments[:len(p.segments)-1]}
	resolved, err := parent.Resolve(schema)
	if err != nil {
		return nil, "", err
	}

	return resolved, p.segments[len(p.segments)-1], nil
}

// walkSegment descends one pointer segment into a container node.
func walkSegment(node *Schema, segment string) (*Schema, error) {
	if node == nil {
		return nil, fmt.Errorf("missing node")
	}

	switch node.Kind {
	case KindMapping:
		value, ok := node.Get(segment)
		if !ok {
			return nil, fmt.Errorf("missing key %q", segment)
		}

		return value, nil
	case KindSequence:
		index, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("segment %q is not a sequence index", segment)
		}

		if index < 0 || index >= len(node.Items) {
			return nil, fmt.Errorf("index %d out of range (len %d)", index, len(node.Items))
		}

		return node.Items[index], nil
	default:
		return nil, fmt.Errorf("cannot descend into %s node", node.Kind)
	}
}

// parsePointerList splits a whitespace-separated option value into pointers.
func parsePointerList(option string) ([]Pointer, error) {
	fields := strings.Fields(option)
	if len(fields) == 0 {
		return nil, nil
	}

	out := make([]Pointer, 0, len(fields))
	for _, field := range fields {
		pointer, err := ParsePointer(field)
		if err != nil {
			return nil, err
		}

		out = append(out, pointer)
	}

	return out, nil
}
