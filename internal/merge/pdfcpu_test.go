// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfmerge/internal/pdftest"
	"github.com/pdiddy/pdfmerge/pkg/types"
)

func TestPDFCPU_MergePreservesPageOrderAndContent(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		pdftest.WriteFile(t, dir, "a.pdf", pdftest.Labels("a", 2)...),
		pdftest.WriteFile(t, dir, "b.pdf", pdftest.Labels("b", 3)...),
		pdftest.WriteFile(t, dir, "c.pdf", pdftest.Labels("c", 1)...),
	}
	out := filepath.Join(dir, "out.pdf")

	res, err := NewEngine(NewPDFCPU(types.ValidationRelaxed), io.Discard, nil).Merge(inputs, out)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Pages)

	assert.Equal(t, 6, pdftest.PageCount(t, out))
	assert.Equal(t, []string{"a-1", "a-2", "b-1", "b-2", "b-3", "c-1"}, pdftest.PageLabels(t, out))

	// Each output page carries the same content stream as its source page.
	var want []string
	for _, in := range inputs {
		want = append(want, pdftest.PageContents(t, in)...)
	}
	assert.Equal(t, want, pdftest.PageContents(t, out))
}

func TestPDFCPU_SingleInputIsContentPreservingCopy(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WriteFile(t, dir, "x.pdf", pdftest.Labels("x", 4)...)
	out := filepath.Join(dir, "x_merged.pdf")

	res, err := NewEngine(NewPDFCPU(types.ValidationRelaxed), io.Discard, nil).Merge([]string{in}, out)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Pages)
	assert.Equal(t, pdftest.PageContents(t, in), pdftest.PageContents(t, out))
}

func TestPDFCPU_SameFileTwice(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WriteFile(t, dir, "x.pdf", "x-1", "x-2")
	out := filepath.Join(dir, "twice.pdf")

	_, err := NewEngine(NewPDFCPU(types.ValidationRelaxed), io.Discard, nil).Merge([]string{in, in}, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"x-1", "x-2", "x-1", "x-2"}, pdftest.PageLabels(t, out))
}

func TestPDFCPU_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	good := pdftest.WriteFile(t, dir, "good.pdf", "g-1")
	bad := filepath.Join(dir, "bad.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("this is not a pdf"), 0o644))
	out := filepath.Join(dir, "out.pdf")

	_, err := NewEngine(NewPDFCPU(types.ValidationRelaxed), io.Discard, nil).Merge([]string{good, bad}, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMergeFailure))

	var merr *MergeError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, OpOpen, merr.Op)
	assert.Equal(t, bad, merr.Path)
	assert.NoFileExists(t, out)
}

func TestPDFCPU_V20OntoOlderBaseFails(t *testing.T) {
	dir := t.TempDir()
	a := pdftest.WriteFile(t, dir, "a.pdf", "a-1")
	v := pdftest.WriteFileVersion(t, dir, "v.pdf", "2.0", "v-1")
	out := filepath.Join(dir, "out.pdf")

	_, err := NewEngine(NewPDFCPU(types.ValidationRelaxed), io.Discard, nil).Merge([]string{a, v}, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMergeFailure))
	assert.True(t, errors.Is(err, pdfcpu.ErrUnsupportedVersion))

	var merr *MergeError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, OpAppend, merr.Op)
	assert.Equal(t, v, merr.Path)
	assert.NoFileExists(t, out)
}

func TestPDFCPU_V20BaseKeepsVersion(t *testing.T) {
	dir := t.TempDir()
	v := pdftest.WriteFileVersion(t, dir, "v.pdf", "2.0", "v-1")
	a := pdftest.WriteFile(t, dir, "a.pdf", "a-1")
	out := filepath.Join(dir, "out.pdf")

	_, err := NewEngine(NewPDFCPU(types.ValidationRelaxed), io.Discard, nil).Merge([]string{v, a}, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-2.0"))
	assert.Equal(t, []string{"v-1", "a-1"}, pdftest.PageLabels(t, out))
}

func TestPDFCPU_OlderBaseWrittenAs17(t *testing.T) {
	dir := t.TempDir()
	a := pdftest.WriteFile(t, dir, "a.pdf", "a-1")
	out := filepath.Join(dir, "out.pdf")

	_, err := NewEngine(NewPDFCPU(types.ValidationRelaxed), io.Discard, nil).Merge([]string{a}, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-1.7"))
}

func TestPDFDocument_WriteOptimizes(t *testing.T) {
	dir := t.TempDir()
	in := pdftest.WriteFile(t, dir, "x.pdf", "x-1")

	tests := []struct {
		name     string
		optimize bool
	}{
		{"optimize on", true},
		{"optimize off", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := NewPDFCPU(types.ValidationRelaxed)
			codec.conf.OptimizeBeforeWriting = tt.optimize

			doc := codec.NewDocument()
			for range 2 {
				src, err := codec.Open(in)
				require.NoError(t, err)
				require.NoError(t, doc.Append(src))
				require.NoError(t, src.Close())
			}
			require.NoError(t, doc.Write(io.Discard))
			assert.Equal(t, tt.optimize, doc.(*pdfDocument).ctx.Optimized)
		})
	}
}

func TestNewPDFCPU_ValidationMode(t *testing.T) {
	assert.Equal(t, model.ValidationRelaxed, NewPDFCPU(types.ValidationRelaxed).conf.ValidationMode)
	assert.Equal(t, model.ValidationStrict, NewPDFCPU(types.ValidationStrict).conf.ValidationMode)
	assert.False(t, NewPDFCPU("").conf.CreateBookmarks)
}

func TestPDFDocument_EmptyWrite(t *testing.T) {
	doc := NewPDFCPU(types.ValidationRelaxed).NewDocument()
	assert.Equal(t, 0, doc.PageCount())
	assert.Error(t, doc.Write(io.Discard))
}

func TestPDFDocument_ClosedSource(t *testing.T) {
	dir := t.TempDir()
	codec := NewPDFCPU(types.ValidationRelaxed)
	src, err := codec.Open(pdftest.WriteFile(t, dir, "a.pdf", "a-1"))
	require.NoError(t, err)
	assert.Equal(t, 1, src.PageCount())
	require.NoError(t, src.Close())

	assert.Error(t, codec.NewDocument().Append(src))
}
