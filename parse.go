// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parse decodes schema text into an order-preserving schema tree.
//
// The human-friendly structured format is attempted first; when that parser
// reports a syntax error the strict data-interchange format is retried. Both
// decoders keep mapping key insertion order.
func Parse(data []byte) (*Schema, error) {
	schema, yamlErr := parseYAML(data)
	if yamlErr == nil {
		return schema, nil
	}

	schema, jsonErr := parseJSON(data)
	if jsonErr == nil {
		return schema, nil
	}

	return nil, fmt.Errorf("%w: %w (strict retry: %w)", ErrParse, yamlErr, jsonErr)
}

// parseYAML decodes one YAML document into a schema tree.
func parseYAML(data []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("empty document")
		}

		doc = doc.Content[0]
	}

	if doc.Kind == 0 {
		return nil, fmt.Errorf("empty document")
	}

	return schemaFromYAMLNode(doc)
}

// schemaFromYAMLNode converts one decoded YAML node into a schema node.
func schemaFromYAMLNode(node *yaml.Node) (*Schema, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return schemaFromYAMLNode(node.Alias)
	case yaml.MappingNode:
		out := NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			value, err := schemaFromYAMLNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			out.Set(key, value)
		}

		return out, nil
	case yaml.SequenceNode:
		out := NewSequence()
		for _, item := range node.Content {
			value, err := schemaFromYAMLNode(item)
			if err != nil {
				return nil, err
			}

			out.Append(value)
		}

		return out, nil
	case yaml.ScalarNode:
		return scalarFromYAMLNode(node), nil
	default:
		return nil, fmt.Errorf("unexpected node kind %d", node.Kind)
	}
}

// scalarFromYAMLNode maps YAML scalar tags onto schema scalar kinds.
func scalarFromYAMLNode(node *yaml.Node) *Schema {
	switch node.Tag {
	case "!!null":
		return NewScalar(KindNull, "null")
	case "!!bool":
		value := "false"
		if strings.EqualFold(node.Value, "true") {
			value = "true"
		}

		return NewScalar(KindBool, value)
	case "!!int", "!!float":
		return NewScalar(KindNumber, node.Value)
	default:
		return NewScalar(KindString, node.Value)
	}
}

// parseJSON decodes strict JSON into a schema tree with ordered keys.
func parseJSON(data []byte) (*Schema, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	schema, err := schemaFromJSONToken(decoder)
	if err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after document")
	}

	return schema, nil
}

// schemaFromJSONToken consumes one JSON value from the decoder token stream.
func schemaFromJSONToken(decoder *json.Decoder) (*Schema, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	return schemaFromJSONValue(decoder, token)
}

// schemaFromJSONValue builds a schema node from one lead token.
func schemaFromJSONValue(decoder *json.Decoder, token json.Token) (*Schema, error) {
	switch typed := token.(type) {
	case json.Delim:
		switch typed {
		case '{':
			return schemaFromJSONObject(decoder)
		case '[':
			return schemaFromJSONArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", typed.String())
		}
	case string:
		return NewScalar(KindString, typed), nil
	case json.Number:
		return NewScalar(KindNumber, typed.String()), nil
	case bool:
		if typed {
			return NewScalar(KindBool, "true"), nil
		}

		return NewScalar(KindBool, "false"), nil
	case nil:
		return NewScalar(KindNull, "null"), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", token)
	}
}

// schemaFromJSONObject consumes object members until the closing delimiter.
func schemaFromJSONObject(decoder *json.Decoder) (*Schema, error) {
	out := NewMapping()
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		if delim, ok := token.(json.Delim); ok && delim == '}' {
			return out, nil
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", token)
		}

		value, err := schemaFromJSONToken(decoder)
		if err != nil {
			return nil, err
		}

		out.Set(key, value)
	}
}

// schemaFromJSONArray consumes array items until the closing delimiter.
func schemaFromJSONArray(decoder *json.Decoder) (*Schema, error) {
	out := NewSequence()
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		if delim, ok := token.(json.Delim); ok && delim == ']' {
			return out, nil
		}

		value, err := schemaFromJSONValue(decoder, token)
		if err != nil {
			return nil, err
		}

		out.Append(value)
	}
}
