// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"errors"
	"testing"
)

func TestApplyVisibilityNoOpWhenEmpty(t *testing.T) {
	t.Parallel()

	schema := mustParse(t, `{"type": "object", "properties": {"id": {"type": "string"}}}`)
	snapshot := schema.Clone()

	if err := ApplyVisibility(schema, nil, nil); err != nil {
		t.Fatalf("ApplyVisibility: %v", err)
	}

	if !schema.Equal(snapshot) {
		t.Fatal("empty visibility edit changed the schema")
	}
}

func TestApplyVisibilityHidesMappingKey(t *testing.T) {
	t.Parallel()

	schema := mustParse(t, `{"properties": {"id": {"type": "string"}, "secret": {"type": "string"}}}`)

	hidden := []Pointer{mustPointer(t, "/properties/secret")}
	if err := ApplyVisibility(schema, hidden, nil); err != nil {
		t.Fatalf("ApplyVisibility: %v", err)
	}

	properties, _ := schema.Get("properties")
	if properties.Has("secret") {
		t.Fatal("hidden key still present")
	}

	if !properties.Has("id") {
		t.Fatal("sibling key removed")
	}
}

func TestApplyVisibilityHidesSequenceItem(t *testing.T) {
	t.Parallel()

	schema := mustParse(t, `{"enum": ["a", "b", "c"]}`)

	hidden := []Pointer{mustPointer(t, "/enum/1")}
	if err := ApplyVisibility(schema, hidden, nil); err != nil {
		t.Fatalf("ApplyVisibility: %v", err)
	}

	enum, _ := schema.Get("enum")
	if enum.Len() != 2 {
		t.Fatalf("sequence length = %d, want 2", enum.Len())
	}

	if enum.Items[0].Text() != "a" || enum.Items[1].Text() != "c" {
		t.Fatalf("remaining items = %q, %q", enum.Items[0].Text(), enum.Items[1].Text())
	}
}

func TestApplyVisibilityHideThenShowRestoresOriginal(t *testing.T) {
	t.Parallel()

	schema := mustParse(t, `{"properties": {"id": {"type": "string"}, "name": {"type": "string"}}}`)
	snapshot := schema.Clone()

	pointer := mustPointer(t, "/properties/id")
	if err := ApplyVisibility(schema, []Pointer{pointer}, []Pointer{pointer}); err != nil {
		t.Fatalf("ApplyVisibility: %v", err)
	}

	restored, ok := schema.Get("properties")
	if !ok || !restored.Has("id") {
		t.Fatal("shown path was not restored")
	}

	original, _ := snapshot.Get("properties")
	want, _ := original.Get("id")
	got, _ := restored.Get("id")
	if !got.Equal(want) {
		t.Fatal("restored value differs from snapshot")
	}
}

func TestApplyVisibilityRecreatesAncestorsWithSnapshotKind(t *testing.T) {
	t.Parallel()

	schema := mustParse(t, `{"a": [{"x": 1, "y": 2}]}`)

	hidden := []Pointer{mustPointer(t, "/a")}
	shown := []Pointer{mustPointer(t, "/a/0/x")}
	if err := ApplyVisibility(schema, hidden, shown); err != nil {
		t.Fatalf("ApplyVisibility: %v", err)
	}

	recreated, ok := schema.Get("a")
	if !ok {
		t.Fatal("ancestor was not recreated")
	}

	if recreated.Kind != KindSequence {
		t.Fatalf("recreated kind = %s, want sequence", recreated.Kind)
	}

	if recreated.Len() != 1 {
		t.Fatalf("recreated length = %d, want 1", recreated.Len())
	}

	item := recreated.Items[0]
	if item.Kind != KindMapping {
		t.Fatalf("item kind = %s, want mapping", item.Kind)
	}

	value, ok := item.Get("x")
	if !ok || value.Text() != "1" {
		t.Fatal("shown leaf was not restored")
	}

	if item.Has("y") {
		t.Fatal("sibling of shown leaf reappeared")
	}
}

func TestApplyVisibilityMissingHiddenPathFails(t *testing.T) {
	t.Parallel()

	schema := mustParse(t, `{"properties": {"id": {"type": "string"}}}`)
	snapshot := schema.Clone()

	hidden := []Pointer{mustPointer(t, "/properties/missing")}
	if err := ApplyVisibility(schema, hidden, nil); !errors.Is(err, ErrPointer) {
		t.Fatalf("err = %v, want ErrPointer", err)
	}

	if !schema.Equal(snapshot) {
		t.Fatal("failed hide mutated the schema")
	}
}

func TestApplyVisibilityMissingShownPathFails(t *testing.T) {
	t.Parallel()

	schema := mustParse(t, `{"properties": {"id": {"type": "string"}}}`)

	shown := []Pointer{mustPointer(t, "/definitions/missing")}
	if err := ApplyVisibility(schema, nil, shown); !errors.Is(err, ErrPointer) {
		t.Fatalf("err = %v, want ErrPointer", err)
	}
}

func TestApplyVisibilityScalarContainerUnsupported(t *testing.T) {
	t.Parallel()

	schema := mustParse(t, `{"title": "Config"}`)

	hidden := []Pointer{mustPointer(t, "/title/0")}
	if err := ApplyVisibility(schema, hidden, nil); !errors.Is(err, ErrUnsupportedContainer) {
		t.Fatalf("err = %v, want ErrUnsupportedContainer", err)
	}
}
