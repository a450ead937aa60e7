// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import "io"

// Codec is the PDF read/write capability the engine delegates to.
// PDFCPU is the production implementation.
type Codec interface {
	// Open reads the PDF at path and makes its pages available.
	Open(path string) (Source, error)

	// NewDocument returns an empty output document.
	NewDocument() Document
}

// Source is one open input document.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Close releases the handle. The engine closes each source before
	// opening the next one.
	Close() error
}

// Document accumulates pages for the output file.
type Document interface {
	// Append copies every page of src, in order, after the pages already
	// in the document.
	Append(src Source) error

	// PageCount returns the number of pages accumulated so far.
	PageCount() int

	// Write serializes the document to w. The engine calls it once.
	Write(w io.Writer) error
}
