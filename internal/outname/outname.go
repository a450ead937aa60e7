// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outname derives the output filename for a merge run.
package outname

import (
	"path/filepath"
	"strings"
)

const (
	// suffix is appended to the first input's stem when no output is given.
	suffix = "_merged"
	pdfExt = ".pdf"
)

// Derive returns the output path. An explicit name is used as given apart
// from extension normalization. Otherwise the name is built from the first
// input's stem; the rule is the same for one input or many.
func Derive(inputs []string, explicit string) string {
	name := explicit
	if name == "" && len(inputs) > 0 {
		name = Stem(inputs[0]) + suffix + pdfExt
	}
	return EnsurePDFExtension(name)
}

// EnsurePDFExtension appends .pdf unless name already ends with it in any
// case. Casing is left as given.
func EnsurePDFExtension(name string) string {
	if strings.HasSuffix(strings.ToLower(name), pdfExt) {
		return name
	}
	return name + pdfExt
}

// Stem returns the base name of p without its last extension. A trailing
// dot on its own is not an extension.
func Stem(p string) string {
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		// Dotfiles like ".pdf" have no stem apart from the name itself.
		return base
	}
	return strings.TrimSuffix(base, ext)
}
