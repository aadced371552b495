// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"embed"
	"strings"
)

// staticFS stores the presentation assets shipped with rendered schemas.
//
//go:embed static/schematree.css static/schematree.js
var staticFS embed.FS

// Asset is one static presentation file the host includes in its output.
type Asset struct {
	Name      string
	MediaType string
	Data      []byte
}

// Assets returns the stylesheet and script to register with the host. The
// registration itself is declarative and owned by the host setup hook.
func Assets() []Asset {
	return []Asset{
		mustAsset("static/schematree.css", "text/css"),
		mustAsset("static/schematree.js", "application/javascript"),
	}
}

// mustAsset loads one embedded asset; the files are compiled in.
func mustAsset(path, mediaType string) Asset {
	data, err := staticFS.ReadFile(path)
	if err != nil {
		panic("embedded asset missing: " + path)
	}

	return Asset{Name: path[strings.LastIndexByte(path, '/')+1:], MediaType: mediaType, Data: data}
}

// Directive is one host directive instance rendering a schema in place.
//
// The host supplies the raw invocation surface: an optional
// "location#pointer" argument, optional inline block content and the hide
// and show options as whitespace-separated pointer lists.
type Directive struct {
	// Argument is the optional source location with pointer suffix.
	Argument string
	// Content is the inline schema text used when Argument has no location.
	Content string
	// Hide lists pointer paths to delete before rendering.
	Hide string
	// Show lists pointer paths to restore from the pre-hide snapshot.
	Show string
	// BaseDir is the invoking document's directory for relative paths.
	BaseDir string
	// Location ties reported errors to the invoking document position.
	Location Location
}

// Run loads, edits and formats the schema for one directive instance. Every
// failure is reported against the directive location and aborts only this
// instance.
func (d *Directive) Run(loader *Loader, builder Builder, registry *LabelRegistry) ([]Node, error) {
	if strings.TrimSpace(d.Argument) == "" && strings.TrimSpace(d.Content) == "" {
		return nil, reportAt(d.Location, ErrEmptyContent)
	}

	schema, err := loader.Load(Source{
		Argument: d.Argument,
		Content:  d.Content,
		BaseDir:  d.BaseDir,
	})
	if err != nil {
		return nil, reportAt(d.Location, err)
	}

	hidden, err := parsePointerList(d.Hide)
	if err != nil {
		return nil, reportAt(d.Location, err)
	}

	shown, err := parsePointerList(d.Show)
	if err != nil {
		return nil, reportAt(d.Location, err)
	}

	if err := ApplyVisibility(schema, hidden, shown); err != nil {
		return nil, reportAt(d.Location, err)
	}

	formatter := NewFormatter(builder, registry, d.Location)
	nodes, err := formatter.Transform(schema)
	if err != nil {
		return nil, reportAt(d.Location, err)
	}

	return nodes, nil
}
