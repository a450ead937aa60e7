// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// InputReport describes one input document's contribution to the output.
type InputReport struct {
	// Path is the input path as given on the command line.
	Path string `json:"path" yaml:"path"`

	// Pages is the number of pages copied from this input.
	Pages int `json:"pages" yaml:"pages"`

	// FirstPage and LastPage are the 1-based output page numbers this
	// input occupies. Both are zero for an input with no pages.
	FirstPage int `json:"first_page" yaml:"first_page"`
	LastPage  int `json:"last_page" yaml:"last_page"`
}

// Report is the YAML record written by --report after a successful merge.
type Report struct {
	Output   string        `json:"output" yaml:"output"`
	Pages    int           `json:"pages" yaml:"pages"`
	Inputs   []InputReport `json:"inputs" yaml:"inputs"`
	MergedAt time.Time     `json:"merged_at" yaml:"merged_at"`
}
