// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

/*
Package schematree renders JSON Schema documents as trees of documentation
nodes for a host documentation build.

The package has two collaborating parts. The Loader resolves a schema from
inline text, a local file or an HTTP URL with order-preserving parsing
(structured format first, strict JSON fallback), optional pointer narrowing
and hide/show visibility editing. The Formatter recursively maps the loaded
schema onto generic document constructs (sections, field lists, bullet
lists, paragraphs, anchors) through an injected Builder, so any host node
model can be produced.

Render an inline schema to the generic node tree:

	registry := schematree.NewLabelRegistry()
	directive := &schematree.Directive{
		Content:  `{"type": "object", "properties": {"id": {"type": "string"}}}`,
		Location: schematree.Location{Doc: "api/config", Line: 12},
	}

	nodes, err := directive.Run(&schematree.Loader{}, schematree.TreeBuilder{}, registry)
	if err != nil {
		return err
	}

	fmt.Print(schematree.Outline(nodes))

Load from a file relative to the invoking document, narrowed by a pointer:

	directive := &schematree.Directive{
		Argument: "schemas/service.yaml#/definitions/Endpoint",
		BaseDir:  "/docs/api",
		Location: schematree.Location{Doc: "api/endpoints", Line: 40},
	}

Hide a property and restore another from the pre-edit snapshot:

	directive := &schematree.Directive{
		Argument: "schema.json",
		Hide:     "/properties/secret /properties/internal",
		Show:     "/properties/internal",
	}

Hosts with native document nodes implement the Builder interface and receive
their own node type back from Transform. Hosts without one can render the
generic tree with Outline (plain text) or Markdown (CommonMark). The
LabelRegistry collects anchors for cross-reference resolution and lives for
exactly one build pass.
*/
package schematree
