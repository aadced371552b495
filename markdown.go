// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"strings"
	"unicode/utf8"
)

const (
	defaultWrapWidth  = 80
	defaultListMarker = "-"
)

// MarkdownOptions controls CommonMark rendering of generic document trees.
type MarkdownOptions struct {
	// WrapWidth is the maximum paragraph line width in runes; zero or
	// negative selects the default.
	WrapWidth int
	// ListMarker is the unordered list marker, "-" or "*".
	ListMarker string
}

// Markdown renders generic document nodes as CommonMark text.
//
// The markdown form is the publishable presentation used by the CLI; hosts
// with native nodes render through their own writers instead.
func Markdown(nodes []Node, options MarkdownOptions) string {
	writer := &markdownWriter{
		wrapWidth:  normalizeWrapWidth(options.WrapWidth),
		listMarker: normalizeListMarker(options.ListMarker),
	}

	for _, node := range nodes {
		if typed, ok := node.(*DocNode); ok {
			writer.writeNode(typed, 0)
		}
	}

	return ensureTrailingNewline(normalizeMarkdownOutput(writer.out.String()))
}

// markdownWriter accumulates markdown lines with list-aware indentation.
type markdownWriter struct {
	out        strings.Builder
	wrapWidth  int
	listMarker string
}

// writeNode appends one node at the given list indent depth.
func (w *markdownWriter) writeNode(node *DocNode, depth int) {
	switch node.Type {
	case DocSection:
		w.blankLine()
		w.writeLine(0, strings.Repeat("#", max(node.Level, 1))+" "+node.Label)
		w.blankLine()
		w.writeChildren(node.Children, depth)
	case DocFieldList:
		w.writeChildren(node.Children, depth)
	case DocField:
		if text, ok := inlineFieldText(node); ok {
			line := w.listMarker + " **" + node.Label + ":** " + w.inlineText(node, text)
			if node.Children[0].Type == DocReference || utf8.RuneCountInString(line)+2*depth <= w.wrapWidth {
				w.writeLine(depth, line)
				return
			}
		}

		w.writeLine(depth, w.listMarker+" **"+node.Label+":**")
		w.writeChildren(node.Children, depth+1)
	case DocBulletList:
		for _, item := range node.Children {
			w.writeNode(item, depth)
		}
	case DocListItem:
		w.writeListItem(node, depth)
	case DocParagraph:
		for _, line := range wrapParagraph(node.Text, w.wrapWidth-2*depth) {
			w.writeLine(depth, line)
		}
	case DocTarget:
		if id := firstOf(node.IDs); id != "" {
			w.writeLine(depth, `<a id="`+id+`"></a>`)
		}
	case DocReference:
		w.writeLine(depth, referenceLink(node.Text))
	}
}

// inlineText renders a field body that fits on the label line.
func (w *markdownWriter) inlineText(node *DocNode, text string) string {
	child := node.Children[0]
	if child.Type == DocReference {
		return referenceLink(child.Text)
	}

	return text
}

// writeListItem renders one bullet entry; the marker goes on the first line
// and continuation lines indent under it.
func (w *markdownWriter) writeListItem(item *DocNode, depth int) {
	var body markdownWriter
	body.wrapWidth = w.wrapWidth
	body.listMarker = w.listMarker
	body.writeChildren(item.Children, 0)

	lines := strings.Split(strings.TrimRight(body.out.String(), "\n"), "\n")
	for i, line := range lines {
		if i == 0 {
			first := strings.TrimSpace(line)
			if !strings.HasPrefix(first, w.listMarker+" ") {
				first = w.listMarker + " " + first
			}

			w.writeLine(depth, first)
			continue
		}

		w.writeLine(depth+1, line)
	}
}

// writeChildren appends every child node at the given depth.
func (w *markdownWriter) writeChildren(children []*DocNode, depth int) {
	for _, child := range children {
		w.writeNode(child, depth)
	}
}

// writeLine appends one indented markdown line.
func (w *markdownWriter) writeLine(depth int, text string) {
	w.out.WriteString(strings.Repeat("  ", depth))
	w.out.WriteString(text)
	w.out.WriteByte('\n')
}

// blankLine separates block structures.
func (w *markdownWriter) blankLine() {
	w.out.WriteByte('\n')
}

// referenceLink renders a cross-reference as a local anchor link.
func referenceLink(target string) string {
	return "[" + escapeInline(target) + "](#" + AnchorID(target) + ")"
}

// normalizeWrapWidth validates wrap width and falls back to the default.
func normalizeWrapWidth(value int) int {
	if value <= 0 {
		return defaultWrapWidth
	}

	return value
}

// normalizeListMarker validates the list marker and falls back to the default.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "*":
		return "*"
	case "-":
		return "-"
	default:
		return defaultListMarker
	}
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	out = append(out, current)
	return out
}

// normalizeMarkdownOutput collapses extra blank lines.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	blankCount := 0
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		if strings.TrimSpace(line) == "" {
			if blankCount == 0 && len(out) > 0 {
				out = append(out, "")
			}

			blankCount++
			continue
		}

		blankCount = 0
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes markdown control characters in link text.
func escapeInline(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, "`", "\\`")
	value = strings.ReplaceAll(value, "[", `\[`)
	return strings.ReplaceAll(value, "]", `\]`)
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	if value == "" {
		return ""
	}

	return value + "\n"
}
