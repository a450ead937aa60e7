// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfmerge/pkg/types"
)

// NewReport converts a Result to its YAML record, assigning each input the
// 1-based output page range it occupies.
func NewReport(r *Result, at time.Time) types.Report {
	rep := types.Report{
		Output:   r.Output,
		Pages:    r.Pages,
		Inputs:   make([]types.InputReport, len(r.Inputs)),
		MergedAt: at.UTC(),
	}
	next := 1
	for i, in := range r.Inputs {
		ir := types.InputReport{Path: in.Path, Pages: in.Pages}
		if in.Pages > 0 {
			ir.FirstPage = next
			ir.LastPage = next + in.Pages - 1
			next += in.Pages
		}
		rep.Inputs[i] = ir
	}
	return rep
}

// WriteReport marshals a report for r to path as YAML, creating parent
// directories as needed.
func WriteReport(path string, r *Result) error {
	data, err := yaml.Marshal(NewReport(r, time.Now()))
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
