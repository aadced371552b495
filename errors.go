// SPDX-License-Identifier: MIT
// Copyright (c) 2026 docnode
// Source: github.com/docnode/schematree

package schematree

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when a schema file path, URL fetch or HTTP capability is missing.
	ErrSourceNotFound = errors.New("schema source not found")
	// ErrParse is returned when both the structured and the strict parse attempts failed.
	ErrParse = errors.New("parse schema")
	// ErrPointer is returned when a pointer path segment is absent.
	ErrPointer = errors.New("resolve pointer")
	// ErrUnsupportedContainer is returned when a hide/show edit meets a non-container parent.
	ErrUnsupportedContainer = errors.New("unsupported parent container kind")
	// ErrEmptyContent is returned when neither a source argument nor block content was supplied.
	ErrEmptyContent = errors.New("schema requires a file path, an http url or inline content")
	// ErrDuplicateLabel is returned when two anchors normalize to the same registry label in one build.
	ErrDuplicateLabel = errors.New("duplicate anchor label")
)

// Location identifies the document position a directive instance was invoked from.
type Location struct {
	// Doc is the host document identity, usually a relative document path.
	Doc string
	// Line is the directive line number in the document.
	Line int
}

// String formats the location as doc:line.
func (l Location) String() string {
	if l.Doc == "" {
		return fmt.Sprintf("line %d", l.Line)
	}

	return fmt.Sprintf("%s:%d", l.Doc, l.Line)
}

// ReportedError ties a rendering failure to the directive location that caused it.
//
// A reported error aborts only the directive instance that produced it; the
// host continues building the rest of the document.
type ReportedError struct {
	Location Location
	Err      error
}

// Error renders the location-prefixed message.
func (e *ReportedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Location, e.Err)
}

// Unwrap exposes the underlying error for errors.Is checks.
func (e *ReportedError) Unwrap() error {
	return e.Err
}

// reportAt wraps an error with its directive location.
func reportAt(location Location, err error) error {
	if err == nil {
		return nil
	}

	return &ReportedError{Location: location, Err: err}
}
