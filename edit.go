// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"fmt"
	"strconv"
)

// ApplyVisibility deletes every hidden path and then restores every shown
// path from a snapshot taken before any deletion.
//
// Shown paths always restore original content even when an ancestor was
// hidden: missing ancestor containers are recreated with the container kind
// the snapshot has at the same depth, so a sequence stays a sequence after
// the round trip.
func ApplyVisibility(schema *Schema, hidden, shown []Pointer) error {
	if len(hidden) == 0 && len(shown) == 0 {
		return nil
	}

	snapshot := schema.Clone()

	for _, pointer := range hidden {
		if err := deleteAt(schema, pointer); err != nil {
			return err
		}
	}

	for _, pointer := range shown {
		if err := restoreAt(schema, snapshot, pointer); err != nil {
			return err
		}
	}

	return nil
}

// deleteAt removes the entry a pointer addresses from its parent container.
func deleteAt(schema *Schema, pointer Pointer) error {
	parent, name, err := pointer.ToLast(schema)
	if err != nil {
		return err
	}

	switch parent.Kind {
	case KindMapping:
		if !parent.Delete(name) {
			return fmt.Errorf("%w: %q: missing key %q", ErrPointer, pointer.String(), name)
		}

		return nil
	case KindSequence:
		index, err := strconv.Atoi(name)
		if err != nil {
			return fmt.Errorf("%w: %q: segment %q is not a sequence index", ErrPointer, pointer.String(), name)
		}

		if !parent.RemoveItem(index) {
			return fmt.Errorf("%w: %q: index %d out of range", ErrPointer, pointer.String(), index)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s at %q", ErrUnsupportedContainer, parent.Kind, pointer.String())
	}
}

// restoreAt re-inserts the snapshot value a pointer addresses, recreating
// missing ancestors with the snapshot's container kind at each level.
func restoreAt(schema, snapshot *Schema, pointer Pointer) error {
	segments := pointer.Segments()
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty pointer cannot be shown", ErrPointer)
	}

	origParent := snapshot
	current := schema

	for _, segment := range segments[:len(segments)-1] {
		next, err := walkSegment(origParent, segment)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrPointer, pointer.String(), err)
		}

		origParent = next

		existing, err := walkSegment(current, segment)
		if err == nil {
			current = existing
			continue
		}

		entry, err := emptyContainerLike(origParent)
		if err != nil {
			return fmt.Errorf("%w at %q", err, pointer.String())
		}

		if err := insertEntry(current, segment, entry); err != nil {
			return fmt.Errorf("%w at %q", err, pointer.String())
		}

		current = entry
	}

	value, err := pointer.Resolve(snapshot)
	if err != nil {
		return err
	}

	if err := insertEntry(current, segments[len(segments)-1], value.Clone()); err != nil {
		return fmt.Errorf("%w at %q", err, pointer.String())
	}

	return nil
}

// emptyContainerLike returns a fresh container matching the snapshot node kind.
func emptyContainerLike(original *Schema) (*Schema, error) {
	switch original.Kind {
	case KindSequence:
		return NewSequence(), nil
	case KindMapping:
		return NewMapping(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContainer, original.Kind)
	}
}

// insertEntry stores a value in a container with the container's access mode.
func insertEntry(parent *Schema, segment string, value *Schema) error {
	switch parent.Kind {
	case KindSequence:
		parent.Append(value)
		return nil
	case KindMapping:
		parent.Set(segment, value)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedContainer, parent.Kind)
	}
}
