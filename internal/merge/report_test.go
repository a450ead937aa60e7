// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfmerge/pkg/types"
)

func TestNewReport_PageRanges(t *testing.T) {
	res := &Result{
		Output: "a_merged.pdf",
		Pages:  5,
		Inputs: []InputResult{
			{Path: "a.pdf", Pages: 2},
			{Path: "empty.pdf", Pages: 0},
			{Path: "b.pdf", Pages: 3},
		},
	}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rep := NewReport(res, at)

	assert.Equal(t, "a_merged.pdf", rep.Output)
	assert.Equal(t, 5, rep.Pages)
	assert.Equal(t, at, rep.MergedAt)
	assert.Equal(t, []types.InputReport{
		{Path: "a.pdf", Pages: 2, FirstPage: 1, LastPage: 2},
		{Path: "empty.pdf", Pages: 0},
		{Path: "b.pdf", Pages: 3, FirstPage: 3, LastPage: 5},
	}, rep.Inputs)
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "merge.yaml")
	res := &Result{
		Output: "out.pdf",
		Pages:  1,
		Inputs: []InputResult{{Path: "a.pdf", Pages: 1}},
	}

	require.NoError(t, WriteReport(path, res))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got types.Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "out.pdf", got.Output)
	require.Len(t, got.Inputs, 1)
	assert.Equal(t, 1, got.Inputs[0].LastPage)
	assert.Contains(t, string(data), "first_page: 1")
}
