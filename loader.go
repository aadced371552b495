// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Source describes where one schema document comes from.
type Source struct {
	// Argument is the optional "location#pointer" directive argument. An
	// empty location means the schema is supplied as inline block content.
	Argument string
	// Content is the inline block content used when no location is given.
	Content string
	// BaseDir is the directory of the invoking document; relative file
	// paths are resolved against it, not against the process working
	// directory.
	BaseDir string
}

// Loader resolves schema sources into parsed schema trees.
type Loader struct {
	// HTTPClient fetches URL sources. A nil client means the http
	// capability is absent and URL sources fail with ErrSourceNotFound.
	HTTPClient *http.Client
}

// Load resolves, parses and optionally pointer-narrows one schema source.
func (l *Loader) Load(source Source) (*Schema, error) {
	location, pointerText := splitPointer(source.Argument)

	data, err := l.readSource(location, source)
	if err != nil {
		return nil, err
	}

	schema, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if pointerText == "" {
		return schema, nil
	}

	pointer, err := ParsePointer(pointerText)
	if err != nil {
		return nil, err
	}

	return pointer.Resolve(schema)
}

// readSource returns raw schema bytes for one resolved location.
func (l *Loader) readSource(location string, source Source) ([]byte, error) {
	if location == "" {
		if strings.TrimSpace(source.Content) == "" {
			return nil, ErrEmptyContent
		}

		return []byte(source.Content), nil
	}

	if isURL(location) {
		return l.fetch(location)
	}

	return readFileSource(location, source.BaseDir)
}

// readFileSource reads a schema file, resolving relative paths against the invoking document directory.
func readFileSource(path, baseDir string) ([]byte, error) {
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}

	return data, nil
}

// fetch downloads a schema document over HTTP.
func (l *Loader) fetch(url string) ([]byte, error) {
	if l == nil || l.HTTPClient == nil {
		return nil, fmt.Errorf("%w: loading %q requires an http client", ErrSourceNotFound, url)
	}

	response, err := l.HTTPClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %q: %w", ErrSourceNotFound, url, err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: fetch %q: unexpected status %s", ErrSourceNotFound, url, response.Status)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %q: %w", ErrSourceNotFound, url, err)
	}

	return data, nil
}

// isURL reports whether a location uses a recognized URL scheme prefix.
func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// splitPointer splits a directive argument into location and pointer suffix.
func splitPointer(argument string) (location, pointer string) {
	argument = strings.TrimSpace(argument)
	if argument == "" {
		return "", ""
	}

	location, pointer, found := strings.Cut(argument, "#")
	if !found {
		return argument, ""
	}

	return location, pointer
}
