// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInlineContent(t *testing.T) {
	t.Parallel()

	loader := &Loader{}
	schema, err := loader.Load(Source{Content: "type: object\ntitle: Config\n"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	title, _ := schema.Get("title")
	if title.Text() != "Config" {
		t.Fatalf("title = %q, want Config", title.Text())
	}
}

func TestLoadEmptyInlineContentFails(t *testing.T) {
	t.Parallel()

	loader := &Loader{}
	if _, err := loader.Load(Source{Content: "  \n\t "}); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}
}

func TestLoadFileRelativeToBaseDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.schema.json")
	if err := os.WriteFile(path, []byte(`{"type": "object"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loader := &Loader{}
	schema, err := loader.Load(Source{Argument: "config.schema.json", BaseDir: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	typeNode, _ := schema.Get("type")
	if typeNode.Text() != "object" {
		t.Fatalf("type = %q, want object", typeNode.Text())
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Parallel()

	loader := &Loader{}
	_, err := loader.Load(Source{Argument: "missing.schema.json", BaseDir: t.TempDir()})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestLoadURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type": "string", "title": "Remote"}`))
	}))
	defer server.Close()

	loader := &Loader{HTTPClient: server.Client()}
	schema, err := loader.Load(Source{Argument: server.URL})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	title, _ := schema.Get("title")
	if title.Text() != "Remote" {
		t.Fatalf("title = %q, want Remote", title.Text())
	}
}

func TestLoadURLStatusFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	loader := &Loader{HTTPClient: server.Client()}
	if _, err := loader.Load(Source{Argument: server.URL}); !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestLoadURLWithoutClientFails(t *testing.T) {
	t.Parallel()

	loader := &Loader{}
	_, err := loader.Load(Source{Argument: "https://example.com/schema.json"})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestLoadPointerNarrowsDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested.schema.json")
	document := `{"definitions": {"node": {"type": "string", "title": "Node"}}}`
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loader := &Loader{}
	schema, err := loader.Load(Source{Argument: "nested.schema.json#/definitions/node", BaseDir: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	title, _ := schema.Get("title")
	if title.Text() != "Node" {
		t.Fatalf("title = %q, want Node", title.Text())
	}
}

func TestLoadInlinePointer(t *testing.T) {
	t.Parallel()

	loader := &Loader{}
	source := Source{
		Argument: "#/properties/id",
		Content:  `{"properties": {"id": {"type": "string"}}}`,
	}

	schema, err := loader.Load(source)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	typeNode, _ := schema.Get("type")
	if typeNode.Text() != "string" {
		t.Fatalf("type = %q, want string", typeNode.Text())
	}
}

func TestLoadMissingPointerFails(t *testing.T) {
	t.Parallel()

	loader := &Loader{}
	source := Source{
		Argument: "#/definitions/missing",
		Content:  `{"type": "object"}`,
	}

	if _, err := loader.Load(source); !errors.Is(err, ErrPointer) {
		t.Fatalf("err = %v, want ErrPointer", err)
	}
}
