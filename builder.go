// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import "strings"

// Node is one host-native document node. The concrete type is owned by the
// Builder that produced it; the formatter treats nodes as opaque values.
type Node = any

// Builder constructs host document nodes for the formatter.
//
// Hosts with native node types implement this interface as a thin adapter;
// TreeBuilder is the generic in-memory implementation used by tests and the
// CLI.
type Builder interface {
	// Section wraps children in a titled section at the given nesting level.
	Section(title string, names []string, level int, children ...Node) Node
	// FieldList groups label/value fields.
	FieldList(fields ...Node) Node
	// Field is one labeled entry with a style class tag and body nodes.
	Field(label, class string, body ...Node) Node
	// BulletList groups list items.
	BulletList(items ...Node) Node
	// ListItem wraps one bullet entry.
	ListItem(children ...Node) Node
	// Paragraph holds literal text.
	Paragraph(text string) Node
	// Target is a named anchor visible to cross-reference resolution only.
	Target(ids, names []string, line int) Node
	// Reference is a cross-reference to a registered anchor name.
	Reference(target string) Node
	// RichText parses prose in the host's structured-prose syntax and may
	// produce nested nodes (inline markup, embedded cross-references).
	RichText(text string) []Node
}

// DocType classifies one generic document node.
type DocType int

const (
	// DocSection is a titled section wrapper.
	DocSection DocType = iota
	// DocFieldList groups fields.
	DocFieldList
	// DocField is one labeled field.
	DocField
	// DocBulletList groups list items.
	DocBulletList
	// DocListItem is one bullet entry.
	DocListItem
	// DocParagraph holds text.
	DocParagraph
	// DocTarget is an anchor node.
	DocTarget
	// DocReference is a cross-reference node.
	DocReference
)

// String returns a display name for the node type.
func (t DocType) String() string {
	switch t {
	case DocSection:
		return "section"
	case DocFieldList:
		return "field-list"
	case DocField:
		return "field"
	case DocBulletList:
		return "bullet-list"
	case DocListItem:
		return "list-item"
	case DocParagraph:
		return "paragraph"
	case DocTarget:
		return "target"
	case DocReference:
		return "reference"
	default:
		return "unknown"
	}
}

// DocNode is the generic document node produced by TreeBuilder.
type DocNode struct {
	Type     DocType
	Label    string
	Class    string
	Text     string
	IDs      []string
	Names    []string
	Level    int
	Line     int
	Children []*DocNode
}

// TreeBuilder builds generic DocNode trees without a host runtime.
type TreeBuilder struct{}

// Section implements Builder.
func (TreeBuilder) Section(title string, names []string, level int, children ...Node) Node {
	return &DocNode{Type: DocSection, Label: title, Names: names, Level: level, Children: asDocNodes(children)}
}

// FieldList implements Builder.
func (TreeBuilder) FieldList(fields ...Node) Node {
	return &DocNode{Type: DocFieldList, Children: asDocNodes(fields)}
}

// Field implements Builder.
func (TreeBuilder) Field(label, class string, body ...Node) Node {
	return &DocNode{Type: DocField, Label: label, Class: class, Children: asDocNodes(body)}
}

// BulletList implements Builder.
func (TreeBuilder) BulletList(items ...Node) Node {
	return &DocNode{Type: DocBulletList, Children: asDocNodes(items)}
}

// ListItem implements Builder.
func (TreeBuilder) ListItem(children ...Node) Node {
	return &DocNode{Type: DocListItem, Children: asDocNodes(children)}
}

// Paragraph implements Builder.
func (TreeBuilder) Paragraph(text string) Node {
	return &DocNode{Type: DocParagraph, Text: text}
}

// Target implements Builder.
func (TreeBuilder) Target(ids, names []string, line int) Node {
	return &DocNode{Type: DocTarget, IDs: ids, Names: names, Line: line}
}

// Reference implements Builder.
func (TreeBuilder) Reference(target string) Node {
	return &DocNode{Type: DocReference, Text: target}
}

// RichText implements Builder. The generic builder has no prose syntax and
// renders one paragraph per text block.
func (TreeBuilder) RichText(text string) []Node {
	blocks := strings.Split(strings.TrimSpace(text), "\n\n")
	out := make([]Node, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		out = append(out, &DocNode{Type: DocParagraph, Text: strings.Join(strings.Fields(block), " ")})
	}

	return out
}

// asDocNodes narrows opaque builder nodes back to DocNode children.
func asDocNodes(nodes []Node) []*DocNode {
	out := make([]*DocNode, 0, len(nodes))
	for _, node := range nodes {
		if typed, ok := node.(*DocNode); ok && typed != nil {
			out = append(out, typed)
		}
	}

	return out
}
