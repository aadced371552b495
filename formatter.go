// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"strings"

	"github.com/goccy/go-json"
)

// shapeKind tags the documentation shape of one schema node. The classifier
// inspects the available keys once; rendering dispatches on the tag.
type shapeKind int

const (
	shapeEmpty shapeKind = iota
	shapeReference
	shapeTyped
	shapeCombinator
	shapeNegation
	shapeDefinitions
)

// keyLabel pairs a schema keyword with its rendered field label. Slices of
// keyLabel keep the rendering order of known keywords stable.
type keyLabel struct {
	Key   string
	Label string
}

var (
	kvSimple = []keyLabel{
		{"multipleOf", "Multiple of"},
		{"maximum", "Maximum"},
		{"exclusiveMaximum", "Exclusive Maximum"},
		{"minimum", "Minimum"},
		{"exclusiveMinimum", "Exclusive Minimum"},
		{"maxLength", "Maximum length"},
		{"minLength", "Minimum length"},
		{"pattern", "Pattern"},
		{"default", "Default"},
		{"format", "Format"},
	}

	kvArray = []keyLabel{
		{"maxItems", "Maximum number of items"},
		{"minItems", "Minimum number of items"},
		{"uniqueItems", "Unique items"},
	}

	kvObject = []keyLabel{
		{"maxProperties", "Maximum number of properties"},
		{"minProperties", "Minimum number of properties"},
	}

	combinators = []keyLabel{
		{"allOf", "All of"},
		{"anyOf", "Any of"},
		{"oneOf", "One of"},
	}

	negations = []keyLabel{
		{"not", "Not"},
	}
)

// Formatter maps one loaded schema tree to host document nodes.
//
// A formatter carries no state between Transform calls except the injected
// builder and label registry; the nesting counter is used transiently inside
// one call.
type Formatter struct {
	builder  Builder
	registry *LabelRegistry
	location Location
	nesting  int
}

// NewFormatter returns a formatter bound to one builder, one per-build label
// registry and the invoking directive location.
func NewFormatter(builder Builder, registry *LabelRegistry, location Location) *Formatter {
	return &Formatter{builder: builder, registry: registry, location: location}
}

// Transform renders one schema into an ordered list of document nodes.
func (f *Formatter) Transform(schema *Schema) ([]Node, error) {
	body, err := f.dispatch(schema)
	if err != nil {
		return nil, err
	}

	return f.wrapInSection(schema, body)
}

// dispatch classifies the schema shape and renders it.
func (f *Formatter) dispatch(schema *Schema) ([]Node, error) {
	kind, key := classify(schema)
	switch kind {
	case shapeReference:
		return f.formatReference(schema)
	case shapeTyped:
		return f.formatTyped(schema)
	case shapeCombinator:
		alternatives, _ := schema.Get(key)
		return f.formatCombinator(combinatorLabel(combinators, key), alternatives)
	case shapeNegation:
		child, _ := schema.Get(key)
		return f.formatNegation(combinatorLabel(negations, key), child)
	case shapeDefinitions:
		definitions, _ := schema.Get("definitions")
		nodes, err := f.formatDefinitions(definitions)
		if err != nil {
			return nil, err
		}

		return []Node{nodes}, nil
	default:
		return nil, nil
	}
}

// classify produces the shape tag for one schema node, first match wins.
func classify(schema *Schema) (shapeKind, string) {
	if schema == nil || schema.Kind != KindMapping {
		return shapeEmpty, ""
	}

	if schema.Has("$ref") {
		return shapeReference, "$ref"
	}

	if schema.Has("type") {
		return shapeTyped, "type"
	}

	for _, combinator := range combinators {
		if schema.Has(combinator.Key) {
			return shapeCombinator, combinator.Key
		}
	}

	for _, negation := range negations {
		if schema.Has(negation.Key) {
			return shapeNegation, negation.Key
		}
	}

	if schema.Has("definitions") {
		return shapeDefinitions, "definitions"
	}

	return shapeEmpty, ""
}

// combinatorLabel resolves the display label for a combinator keyword.
func combinatorLabel(table []keyLabel, key string) string {
	for _, entry := range table {
		if entry.Key == key {
			return entry.Label
		}
	}

	return key
}

// formatReference renders a cross-reference to another schema instead of
// inlining the referenced content.
func (f *Formatter) formatReference(schema *Schema) ([]Node, error) {
	fields := make([]Node, 0, 3)

	if description, ok := schema.Get("description"); ok {
		fields = append(fields, f.builder.Field("Description", "jsonschema-description", f.builder.RichText(description.Text())...))
	}

	ref, _ := schema.Get("$ref")
	fields = append(fields, f.builder.Field("Reference", "jsonschema-reference", f.builder.Reference(ref.Text())))

	if definitions, ok := schema.Get("definitions"); ok {
		list, err := f.formatDefinitions(definitions)
		if err != nil {
			return nil, err
		}

		fields = append(fields, f.builder.Field("Definitions", "jsonschema-definitions", list))
	}

	return []Node{f.builder.FieldList(fields...)}, nil
}

// formatTyped renders a node carrying an explicit type keyword.
func (f *Formatter) formatTyped(schema *Schema) ([]Node, error) {
	fields := make([]Node, 0, 8)

	if targets, ok := schema.Get("$$target"); ok {
		target, err := f.createTarget(schema)
		if err != nil {
			return nil, err
		}

		fields = append(fields, f.builder.Field("Id", "jsonschema-description", target, f.builder.Paragraph(targetDisplay(targets))))
	}

	if description, ok := schema.Get("description"); ok {
		fields = append(fields, f.builder.Field("Description", "jsonschema-description", f.builder.RichText(description.Text())...))
	}

	typeNode, _ := schema.Get("type")
	typeText := typeDisplay(typeNode)
	fields = append(fields, f.builder.Field("Type", "jsonschema-description", f.builder.Paragraph(typeText)))

	var err error
	switch typeText {
	case "object":
		fields, err = f.appendObjectFields(fields, schema)
	case "array":
		fields, err = f.appendArrayFields(fields, schema)
	default:
		fields = f.appendScalarFields(fields, schema)
	}

	if err != nil {
		return nil, err
	}

	return []Node{f.builder.FieldList(fields...)}, nil
}

// appendObjectFields renders properties, pattern properties, additional
// properties and object count constraints.
func (f *Formatter) appendObjectFields(fields []Node, schema *Schema) ([]Node, error) {
	if schema.Has("properties") {
		list, err := f.formatObjectProperties(schema, "properties")
		if err != nil {
			return nil, err
		}

		fields = append(fields, f.builder.Field("Properties", "jsonschema-properties", list))
	}

	if schema.Has("patternProperties") {
		list, err := f.formatObjectProperties(schema, "patternProperties")
		if err != nil {
			return nil, err
		}

		fields = append(fields, f.builder.Field("Properties", "jsonschema-pattern-properties", list))
	}

	if additional, ok := schema.Get("additionalProperties"); ok {
		nodes, err := f.boolOrSchema(additional, "Additional Properties", "jsonschema-additional-properties")
		if err != nil {
			return nil, err
		}

		fields = append(fields, nodes...)
	}

	return append(fields, f.keyValueFields(schema, kvObject)...), nil
}

// appendArrayFields renders item schemas, additional items and array count
// constraints.
func (f *Formatter) appendArrayFields(fields []Node, schema *Schema) ([]Node, error) {
	if items, ok := schema.Get("items"); ok {
		if items.Kind == KindSequence {
			entries := make([]Node, 0, len(items.Items))
			for _, item := range items.Items {
				body, err := f.dispatch(item)
				if err != nil {
					return nil, err
				}

				entries = append(entries, f.builder.ListItem(body...))
			}

			fields = append(fields, f.builder.Field("Items", "jsonschema-items", f.builder.BulletList(entries...)))
		} else {
			body, err := f.dispatch(items)
			if err != nil {
				return nil, err
			}

			fields = append(fields, f.builder.Field("Item", "jsonschema-item-template", body...))
		}
	}

	if additional, ok := schema.Get("additionalItems"); ok {
		nodes, err := f.boolOrSchema(additional, "Additional Items", "jsonschema-additional-items")
		if err != nil {
			return nil, err
		}

		fields = append(fields, nodes...)
	}

	return append(fields, f.keyValueFields(schema, kvArray)...), nil
}

// appendScalarFields renders enum values and scalar constraints.
func (f *Formatter) appendScalarFields(fields []Node, schema *Schema) []Node {
	if enum, ok := schema.Get("enum"); ok && enum.Kind == KindSequence {
		entries := make([]Node, 0, len(enum.Items))
		for _, item := range enum.Items {
			entries = append(entries, f.builder.ListItem(f.builder.Paragraph(literalText(item))))
		}

		fields = append(fields, f.builder.Field("Valid values", "enum", f.builder.BulletList(entries...)))
	}

	return append(fields, f.keyValueFields(schema, kvSimple)...)
}

// formatObjectProperties renders one field per declared property with its
// required marker and recursively formatted schema, in declaration order.
func (f *Formatter) formatObjectProperties(schema *Schema, key string) (Node, error) {
	properties, _ := schema.Get(key)
	if properties == nil || properties.Kind != KindMapping {
		return f.builder.FieldList(), nil
	}

	required := requiredSet(schema)

	fields := make([]Node, 0, properties.Len())
	for _, name := range properties.Keys() {
		property, _ := properties.Get(name)

		requiredText := "No"
		class := "jsonschema-property"
		if required[name] {
			requiredText = "Yes"
			class += " jsonschema-required"
		}

		body, err := f.dispatch(property)
		if err != nil {
			return nil, err
		}

		inner := f.builder.FieldList(
			f.builder.Field("Required", "jsonschema-required", f.builder.Paragraph(requiredText)),
			f.builder.Field("Type", "jsonschema-type", body...),
		)

		fields = append(fields, f.builder.Field(name, class, inner))
	}

	return f.builder.FieldList(fields...), nil
}

// formatCombinator renders alternation/conjunction among sub-schemas as a
// labeled bullet list.
func (f *Formatter) formatCombinator(label string, alternatives *Schema) ([]Node, error) {
	entries := make([]Node, 0, alternatives.Len())
	if alternatives != nil && alternatives.Kind == KindSequence {
		for _, alternative := range alternatives.Items {
			body, err := f.dispatch(alternative)
			if err != nil {
				return nil, err
			}

			entries = append(entries, f.builder.ListItem(body...))
		}
	}

	list := f.builder.FieldList(
		f.builder.Field("Combination", "json-combinatortype", f.builder.Paragraph(label)),
		f.builder.Field("Types", "jsonschema-combinedtypes", f.builder.BulletList(entries...)),
	)

	return []Node{list}, nil
}

// formatNegation renders a single-object combinator without a list wrapper.
func (f *Formatter) formatNegation(label string, child *Schema) ([]Node, error) {
	body, err := f.dispatch(child)
	if err != nil {
		return nil, err
	}

	list := f.builder.FieldList(
		f.builder.Field("Combination", "json-combinatortype", f.builder.Paragraph(label)),
		f.builder.Field("Types", "jsonschema-combinedtypes", body...),
	)

	return []Node{list}, nil
}

// formatDefinitions renders one field per definition name in order.
func (f *Formatter) formatDefinitions(definitions *Schema) (Node, error) {
	if definitions == nil || definitions.Kind != KindMapping {
		return f.builder.FieldList(), nil
	}

	fields := make([]Node, 0, definitions.Len())
	for _, name := range definitions.Keys() {
		definition, _ := definitions.Get(name)
		body, err := f.dispatch(definition)
		if err != nil {
			return nil, err
		}

		fields = append(fields, f.builder.Field(name, "jsonschema-definition", body...))
	}

	return f.builder.FieldList(fields...), nil
}

// boolOrSchema renders keywords that accept either a boolean or a schema.
func (f *Formatter) boolOrSchema(value *Schema, label, class string) ([]Node, error) {
	if allowed, ok := value.Bool(); ok {
		text := "Not allowed"
		if allowed {
			text = "Allowed"
		}

		return []Node{f.builder.Field(label, class, f.builder.Paragraph(text))}, nil
	}

	return f.dispatch(value)
}

// keyValueFields renders the known key/value keywords present on the node in
// table order, each value as literal text.
func (f *Formatter) keyValueFields(schema *Schema, table []keyLabel) []Node {
	out := make([]Node, 0, len(table))
	for _, entry := range table {
		value, ok := schema.Get(entry.Key)
		if !ok {
			continue
		}

		out = append(out, f.builder.Field(entry.Label, "jsonschema-"+entry.Key, f.builder.Paragraph(literalText(value))))
	}

	return out
}

// wrapInSection prepends the anchor target and wraps the body in a titled
// section when the node carries $$target or title keywords.
func (f *Formatter) wrapInSection(schema *Schema, body []Node) ([]Node, error) {
	result := make([]Node, 0, len(body)+1)

	if schema != nil && schema.Has("$$target") {
		target, err := f.createTarget(schema)
		if err != nil {
			return nil, err
		}

		result = append(result, target)
	}

	title, hasTitle := titleOf(schema)
	if !hasTitle {
		return append(result, body...), nil
	}

	level := f.nesting
	f.nesting++
	name := NormalizeLabel(title)
	section := f.builder.Section(title, []string{name}, f.nesting, body...)
	f.nesting = level

	f.registry.RegisterImplicit(title, LabelEntry{
		Doc:     f.location.Doc,
		ID:      AnchorID(title),
		Display: title,
	})

	return append(result, section), nil
}

// createTarget builds the anchor node for a schema and registers every
// target name in the label registry.
func (f *Formatter) createTarget(schema *Schema) (Node, error) {
	targets, _ := schema.Get("$$target")
	names := targetNames(targets)

	ids := make([]string, 0, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, AnchorID(name))
		normalized = append(normalized, NormalizeLabel(name))
	}

	display := ""
	if title, ok := titleOf(schema); ok {
		display = title
	}

	for i, name := range names {
		label := display
		if label == "" {
			label = normalized[i]
		}

		entry := LabelEntry{Doc: f.location.Doc, ID: firstOf(ids), Display: label}
		if err := f.registry.Register(name, entry); err != nil {
			return nil, err
		}
	}

	return f.builder.Target(ids, normalized, f.location.Line), nil
}

// targetNames collects the anchor names from a $$target scalar or sequence.
func targetNames(targets *Schema) []string {
	if targets == nil {
		return nil
	}

	if targets.Kind == KindSequence {
		out := make([]string, 0, len(targets.Items))
		for _, item := range targets.Items {
			if text := item.Text(); text != "" {
				out = append(out, text)
			}
		}

		return out
	}

	if text := targets.Text(); text != "" {
		return []string{text}
	}

	return nil
}

// targetDisplay renders the raw $$target value as display text.
func targetDisplay(targets *Schema) string {
	return strings.Join(targetNames(targets), ", ")
}

// titleOf returns the scalar title of a mapping node.
func titleOf(schema *Schema) (string, bool) {
	if schema == nil {
		return "", false
	}

	title, ok := schema.Get("title")
	if !ok || title.Kind.IsContainer() {
		return "", false
	}

	return title.Text(), true
}

// typeDisplay renders the type keyword, joining union type lists.
func typeDisplay(typeNode *Schema) string {
	if typeNode == nil {
		return ""
	}

	if typeNode.Kind == KindSequence {
		parts := make([]string, 0, len(typeNode.Items))
		for _, item := range typeNode.Items {
			parts = append(parts, item.Text())
		}

		return strings.Join(parts, ", ")
	}

	return typeNode.Text()
}

// requiredSet collects the required property names of an object schema.
func requiredSet(schema *Schema) map[string]bool {
	required, ok := schema.Get("required")
	if !ok || required.Kind != KindSequence {
		return nil
	}

	out := make(map[string]bool, len(required.Items))
	for _, item := range required.Items {
		out[item.Text()] = true
	}

	return out
}

// firstOf returns the first id for anchor entries, matching anchor grouping.
func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// literalText renders one schema value in its literal string form; container
// values render as compact single-line JSON.
func literalText(value *Schema) string {
	if value == nil {
		return ""
	}

	if !value.Kind.IsContainer() {
		return value.Value
	}

	return jsonInline(value)
}

// jsonInline renders a schema subtree as single-line JSON preserving key order.
func jsonInline(value *Schema) string {
	var out strings.Builder
	writeJSONInline(&out, value)
	return out.String()
}

// writeJSONInline appends one node's compact JSON form to the builder.
func writeJSONInline(out *strings.Builder, value *Schema) {
	switch value.Kind {
	case KindMapping:
		out.WriteByte('{')
		for i, key := range value.Keys() {
			if i > 0 {
				out.WriteByte(',')
			}

			out.WriteString(jsonQuote(key))
			out.WriteByte(':')
			child, _ := value.Get(key)
			writeJSONInline(out, child)
		}

		out.WriteByte('}')
	case KindSequence:
		out.WriteByte('[')
		for i, item := range value.Items {
			if i > 0 {
				out.WriteByte(',')
			}

			writeJSONInline(out, item)
		}

		out.WriteByte(']')
	case KindString:
		out.WriteString(jsonQuote(value.Value))
	default:
		out.WriteString(value.Value)
	}
}

// jsonQuote renders one JSON string literal.
func jsonQuote(value string) string {
	data, err := json.Marshal(value)
	if err != nil {
		return `"` + value + `"`
	}

	return string(data)
}
