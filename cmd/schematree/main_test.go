// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSchemaFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.schema.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write schema fixture: %v", err)
	}

	return path
}

const configFixture = `{
  "title": "Config",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": { "type": "string" },
    "secret": { "type": "string" }
  },
  "definitions": {
    "port": { "type": "integer", "minimum": 1 }
  }
}`

func TestRunRenderWritesOutlineToStdout(t *testing.T) {
	t.Parallel()

	schemaPath := writeSchemaFixture(t, configFixture)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", schemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "# Config") {
		t.Fatalf("stdout does not contain title section: %s", stdout.String())
	}

	if !strings.Contains(stdout.String(), "Required: Yes") {
		t.Fatalf("stdout does not contain required marker: %s", stdout.String())
	}
}

func TestRunRenderFromStdin(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader("title: Inline\ntype: object\n")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "# Inline") {
		t.Fatalf("expected inline title section in output: %s", stdout.String())
	}
}

func TestRunRenderWritesOutlineToOutputFile(t *testing.T) {
	t.Parallel()

	schemaPath := writeSchemaFixture(t, configFixture)
	outPath := filepath.Join(t.TempDir(), "config.txt")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", schemaPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	if !strings.Contains(string(content), "# Config") {
		t.Fatalf("output file does not contain title section: %s", string(content))
	}
}

func TestRunRenderMarkdownFormat(t *testing.T) {
	t.Parallel()

	schemaPath := writeSchemaFixture(t, configFixture)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-f", "markdown", schemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "# Config") {
		t.Fatalf("markdown output missing heading: %s", stdout.String())
	}

	if !strings.Contains(stdout.String(), "- **Type:** object") {
		t.Fatalf("markdown output missing field line: %s", stdout.String())
	}
}

func TestRunRenderPointerNarrowsSchema(t *testing.T) {
	t.Parallel()

	schemaPath := writeSchemaFixture(t, configFixture)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-p", "/definitions/port", schemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "Type: integer") {
		t.Fatalf("expected narrowed schema output: %s", stdout.String())
	}

	if strings.Contains(stdout.String(), "# Config") {
		t.Fatalf("narrowed output should not contain the root title: %s", stdout.String())
	}
}

func TestRunRenderHidesPointerPaths(t *testing.T) {
	t.Parallel()

	schemaPath := writeSchemaFixture(t, configFixture)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-H", "/properties/secret", schemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if strings.Contains(stdout.String(), "secret") {
		t.Fatalf("hidden property still rendered: %s", stdout.String())
	}

	if !strings.Contains(stdout.String(), "name:") {
		t.Fatalf("sibling property missing: %s", stdout.String())
	}
}

func TestRunRenderMissingInputFails(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.schema.json")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", missing}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "render schema:") {
		t.Fatalf("stderr does not explain failure: %s", stderr.String())
	}
}

func TestRunRenderEmptyStdinFails(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render"}, strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "empty input") {
		t.Fatalf("stderr does not mention empty input: %s", stderr.String())
	}
}

func TestRunAssetsWritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"assets", dir}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	for _, name := range []string{"schematree.css", "schematree.js"} {
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read asset %s: %v", name, err)
		}

		if len(content) == 0 {
			t.Fatalf("asset %s is empty", name)
		}

		if !strings.Contains(stdout.String(), path) {
			t.Fatalf("stdout does not list written asset %s: %s", path, stdout.String())
		}
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "render") {
		t.Fatalf("help output does not list commands: %s", stdout.String())
	}
}

func TestRunUnknownFlagExitsTwo(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "--no-such-flag"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("run exit code = %d, want 2, stderr: %s", code, stderr.String())
	}
}
