// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"errors"
	"fmt"
)

// ErrMergeFailure matches every error returned by Engine.Merge.
var ErrMergeFailure = errors.New("merge failed")

// Op names the merge step that failed.
type Op string

const (
	// OpOpen is reading and validating an input.
	OpOpen Op = "open"
	// OpAppend is copying an input's pages into the output document.
	OpAppend Op = "append"
	// OpClose is releasing an input.
	OpClose Op = "close"
	// OpCreate is creating the output's temp file.
	OpCreate Op = "create"
	// OpWrite is serializing the output and moving it into place.
	OpWrite Op = "write"
)

// MergeError wraps any failure while opening, reading, appending or
// writing PDFs. Corrupt inputs, encrypted files and I/O errors all end up
// here with the underlying cause attached.
type MergeError struct {
	Op   Op
	Path string
	Err  error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *MergeError) Unwrap() error { return e.Err }

// Is reports true for ErrMergeFailure so callers can classify the error
// without knowing the cause.
func (e *MergeError) Is(target error) bool {
	return target == ErrMergeFailure
}
