// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import "strings"

// Outline renders generic document nodes as deterministic indented text.
//
// The outline is the plain-text presentation used by the CLI and by tests;
// hosts with native nodes render through their own writers instead.
func Outline(nodes []Node) string {
	var out strings.Builder
	for _, node := range nodes {
		if typed, ok := node.(*DocNode); ok {
			writeOutline(&out, typed, 0)
		}
	}

	return out.String()
}

// writeOutline appends one node and its children at the given indent depth.
func writeOutline(out *strings.Builder, node *DocNode, depth int) {
	switch node.Type {
	case DocSection:
		writeLine(out, depth, strings.Repeat("#", max(node.Level, 1))+" "+node.Label)
		writeChildren(out, node.Children, depth)
	case DocFieldList:
		writeChildren(out, node.Children, depth)
	case DocField:
		if text, ok := inlineFieldText(node); ok {
			writeLine(out, depth, node.Label+": "+text)
			return
		}

		writeLine(out, depth, node.Label+":")
		writeChildren(out, node.Children, depth+1)
	case DocBulletList:
		for _, item := range node.Children {
			writeListItem(out, item, depth)
		}
	case DocListItem:
		writeListItem(out, node, depth)
	case DocParagraph:
		writeLine(out, depth, node.Text)
	case DocTarget:
		writeLine(out, depth, "(target: "+strings.Join(node.Names, " ")+")")
	case DocReference:
		writeLine(out, depth, "-> "+node.Text)
	}
}

// inlineFieldText returns the field body text when it fits on the label line.
func inlineFieldText(node *DocNode) (string, bool) {
	if len(node.Children) != 1 {
		return "", false
	}

	child := node.Children[0]
	switch child.Type {
	case DocParagraph:
		return child.Text, true
	case DocReference:
		return "-> " + child.Text, true
	default:
		return "", false
	}
}

// writeListItem renders one bullet entry with a marker on its first line.
func writeListItem(out *strings.Builder, item *DocNode, depth int) {
	var body strings.Builder
	writeChildren(&body, item.Children, 0)

	lines := strings.Split(strings.TrimRight(body.String(), "\n"), "\n")
	for i, line := range lines {
		if i == 0 {
			writeLine(out, depth, "* "+line)
			continue
		}

		writeLine(out, depth+1, line)
	}
}

// writeChildren appends every child node at the given depth.
func writeChildren(out *strings.Builder, children []*DocNode, depth int) {
	for _, child := range children {
		writeOutline(out, child, depth)
	}
}

// writeLine appends one indented outline line.
func writeLine(out *strings.Builder, depth int, text string) {
	out.WriteString(strings.Repeat("  ", depth))
	out.WriteString(text)
	out.WriteByte('\n')
}
