// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks merge inputs before any PDF is opened.
// Validation is all-or-nothing: the first bad path stops the run.
package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// pdfExt is the only accepted input extension, compared case-insensitively.
const pdfExt = ".pdf"

// Kind identifies why an input path was rejected.
type Kind int

const (
	// MissingFile means the path does not exist on the filesystem.
	MissingFile Kind = iota + 1
	// WrongExtension means the path exists but does not end in .pdf.
	WrongExtension
)

func (k Kind) String() string {
	switch k {
	case MissingFile:
		return "missing file"
	case WrongExtension:
		return "wrong extension"
	default:
		return "unknown"
	}
}

var (
	// ErrNoInputs is returned when the input list is empty.
	ErrNoInputs = errors.New("no PDF files specified")

	// ErrMissingFile matches a ValidationError of kind MissingFile.
	ErrMissingFile = errors.New("file does not exist")
	// ErrWrongExtension matches a ValidationError of kind WrongExtension.
	ErrWrongExtension = errors.New("not a PDF file")
)

// ValidationError reports the first input path that failed validation.
type ValidationError struct {
	Path string
	Kind Kind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.sentinel())
}

// Is matches the sentinel for the error's kind.
func (e *ValidationError) Is(target error) bool {
	return target == e.sentinel()
}

// Message returns the user-facing line printed by the CLI.
func (e *ValidationError) Message() string {
	switch e.Kind {
	case MissingFile:
		return fmt.Sprintf("File '%s' does not exist.", e.Path)
	case WrongExtension:
		return fmt.Sprintf("'%s' is not a PDF file.", e.Path)
	default:
		return e.Error()
	}
}

func (e *ValidationError) sentinel() error {
	if e.Kind == WrongExtension {
		return ErrWrongExtension
	}
	return ErrMissingFile
}

// Validate checks paths in order. Each path must exist and carry a .pdf
// extension; existence is checked first. It returns ErrNoInputs for an
// empty list and a *ValidationError for the first failing path.
func Validate(paths []string) error {
	if len(paths) == 0 {
		return ErrNoInputs
	}
	for _, p := range paths {
		if err := Path(p); err != nil {
			return err
		}
	}
	return nil
}

// Path validates a single input path.
func Path(p string) error {
	// Any stat failure counts as absent, as a plain existence check would.
	if _, err := os.Stat(p); err != nil {
		return &ValidationError{Path: p, Kind: MissingFile}
	}
	if !HasPDFExtension(p) {
		return &ValidationError{Path: p, Kind: WrongExtension}
	}
	return nil
}

// HasPDFExtension reports whether p ends in .pdf, ignoring case.
func HasPDFExtension(p string) bool {
	return strings.EqualFold(filepath.Ext(p), pdfExt)
}
