// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge concatenates the pages of several PDF documents into one.
// PDF parsing and serialization are delegated to a Codec; the engine owns
// ordering, handle scoping, progress output and error classification.
package merge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bradhe/stopwatch"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InputResult records how many pages one input contributed.
type InputResult struct {
	Path  string
	Pages int
}

// Result holds the outcome of a successful merge.
type Result struct {
	Output string
	Pages  int
	Inputs []InputResult
}

// Engine merges inputs through a Codec, printing progress lines to out.
type Engine struct {
	codec Codec
	out   io.Writer
	log   logrus.FieldLogger
}

// NewEngine returns an engine. A nil log discards diagnostics.
func NewEngine(codec Codec, out io.Writer, log logrus.FieldLogger) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{codec: codec, out: out, log: log}
}

// Merge copies every page of every input, in listed order, into a new
// document and writes it to output. Inputs are expected to have passed
// validation. Any failure aborts the whole run and is returned as a
// *MergeError.
func (e *Engine) Merge(inputs []string, output string) (*Result, error) {
	if len(inputs) == 0 {
		return nil, &MergeError{Op: OpOpen, Path: output, Err: errors.New("no input files")}
	}

	fmt.Fprintln(e.out, "Merging PDF files...")

	doc := e.codec.NewDocument()
	result := &Result{Output: output, Inputs: make([]InputResult, 0, len(inputs))}

	for _, p := range inputs {
		fmt.Fprintf(e.out, "   Adding: %s\n", filepath.Base(p))

		pages, err := e.add(doc, p)
		if err != nil {
			e.log.WithError(err).WithField("path", p).Error("merge aborted")
			return nil, err
		}
		result.Inputs = append(result.Inputs, InputResult{Path: p, Pages: pages})
	}

	result.Pages = doc.PageCount()

	if err := e.write(doc, output); err != nil {
		e.log.WithError(err).WithField("output", output).Error("writing merged document failed")
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"output": output,
		"inputs": len(inputs),
		"pages":  result.Pages,
	}).Info("merge complete")

	return result, nil
}

// add opens one input, appends its pages to doc and releases the input
// before returning.
func (e *Engine) add(doc Document, path string) (pages int, err error) {
	watch := stopwatch.Start()

	src, err := e.codec.Open(path)
	if err != nil {
		return 0, &MergeError{Op: OpOpen, Path: path, Err: err}
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = &MergeError{Op: OpClose, Path: path, Err: cerr}
		}
	}()

	pages = src.PageCount()
	if aerr := doc.Append(src); aerr != nil {
		return 0, &MergeError{Op: OpAppend, Path: path, Err: aerr}
	}

	watch.Stop()
	e.log.WithFields(logrus.Fields{
		"path":       path,
		"pages":      pages,
		"elapsed_ms": watch.Milliseconds(),
	}).Debug("added input")

	return pages, nil
}

// write serializes doc into a temp file next to output and renames it
// into place, so a failed write never leaves a truncated output behind.
// An existing output that is a symlink is written through to its target,
// and an existing file keeps its permission bits.
func (e *Engine) write(doc Document, output string) error {
	target := output
	if resolved, err := filepath.EvalSymlinks(output); err == nil {
		target = resolved
	}
	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")

	f, err := os.Create(tmp)
	if err != nil {
		return &MergeError{Op: OpCreate, Path: output, Err: err}
	}
	fail := func(err error) error {
		os.Remove(tmp)
		return &MergeError{Op: OpWrite, Path: output, Err: err}
	}

	if fi, err := os.Stat(target); err == nil {
		if err := f.Chmod(fi.Mode().Perm()); err != nil {
			f.Close()
			return fail(err)
		}
	}
	if err := doc.Write(f); err != nil {
		f.Close()
		return fail(err)
	}
	if err := f.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fail(err)
	}
	return nil
}
