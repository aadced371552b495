// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import "testing"

func TestTreeBuilderRichTextSplitsParagraphs(t *testing.T) {
	t.Parallel()

	builder := TreeBuilder{}
	nodes := builder.RichText("First block\nwith a wrapped line.\n\nSecond block.\n\n\n")

	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %d, want 2", len(nodes))
	}

	first := nodes[0].(*DocNode)
	if first.Type != DocParagraph || first.Text != "First block with a wrapped line." {
		t.Fatalf("first paragraph = %+v", first)
	}

	second := nodes[1].(*DocNode)
	if second.Text != "Second block." {
		t.Fatalf("second paragraph = %+v", second)
	}
}

func TestTreeBuilderRichTextEmptyInput(t *testing.T) {
	t.Parallel()

	builder := TreeBuilder{}
	if nodes := builder.RichText("  \n\n  "); len(nodes) != 0 {
		t.Fatalf("len(nodes) = %d, want 0", len(nodes))
	}
}

func TestAsDocNodesDropsForeignNodes(t *testing.T) {
	t.Parallel()

	builder := TreeBuilder{}
	list := builder.FieldList(builder.Paragraph("kept"), "foreign", nil).(*DocNode)

	if len(list.Children) != 1 {
		t.Fatalf("len(children) = %d, want 1", len(list.Children))
	}

	if list.Children[0].Text != "kept" {
		t.Fatalf("child = %+v", list.Children[0])
	}
}
