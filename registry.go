// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"fmt"
	"strings"
	"unicode"
)

// LabelEntry records where one anchor resolves to.
type LabelEntry struct {
	// Doc is the document identity the anchor lives in.
	Doc string
	// ID is the generated anchor id inside the document.
	ID string
	// Display is the link text, the node title when present or the anchor
	// name itself.
	Display string
}

// LabelRegistry maps normalized anchor names to their targets for one build.
//
// The registry lifetime is one documentation build. The host serializes
// directive processing, so the registry does no internal locking.
type LabelRegistry struct {
	labels map[string]LabelEntry
	anon   map[string]LabelEntry
}

// NewLabelRegistry returns an empty registry for one build pass.
func NewLabelRegistry() *LabelRegistry {
	return &LabelRegistry{
		labels: make(map[string]LabelEntry),
		anon:   make(map[string]LabelEntry),
	}
}

// Register stores one explicit anchor. Two distinct anchors normalizing to
// the same name within a build collide and fail; re-registering an identical
// entry is a no-op so one node can appear as both anchor and field.
func (r *LabelRegistry) Register(name string, entry LabelEntry) error {
	normalized := NormalizeLabel(name)
	if existing, ok := r.labels[normalized]; ok {
		if existing == entry {
			return nil
		}

		return fmt.Errorf("%w: %q already registered in %s", ErrDuplicateLabel, normalized, existing.Doc)
	}

	r.labels[normalized] = entry
	r.anon[normalized] = LabelEntry{Doc: entry.Doc, ID: entry.ID}
	return nil
}

// RegisterImplicit stores a section label derived from a title. Implicit
// labels never collide: the first registration wins and later duplicates are
// dropped, matching implicit-target semantics in documentation hosts.
func (r *LabelRegistry) RegisterImplicit(name string, entry LabelEntry) {
	normalized := NormalizeLabel(name)
	if _, ok := r.labels[normalized]; ok {
		return
	}

	r.labels[normalized] = entry
}

// Lookup resolves a normalized anchor name.
func (r *LabelRegistry) Lookup(name string) (LabelEntry, bool) {
	entry, ok := r.labels[NormalizeLabel(name)]
	return entry, ok
}

// Len returns the number of registered labels.
func (r *LabelRegistry) Len() int {
	return len(r.labels)
}

// NormalizeLabel lowercases a label and collapses interior whitespace.
func NormalizeLabel(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// AnchorID converts an anchor name into a document-safe id slug.
func AnchorID(name string) string {
	trimmed := strings.TrimSpace(strings.ToLower(name))
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '.', r == '/':
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}
