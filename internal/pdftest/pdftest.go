// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest writes small valid PDF files for tests and reads page
// content back out of them. Each generated page carries a label in its
// content stream so tests can check page order after a merge.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/require"
)

// Content returns the content stream for a page labelled label.
func Content(label string) string {
	return fmt.Sprintf("%% %s\n0 0 m 100 100 l S\n", label)
}

// Build returns a PDF 1.4 document with one page per label.
func Build(labels ...string) []byte {
	return BuildVersion("1.4", labels...)
}

// BuildVersion returns a document with the given header version and one
// page per label. Object layout: 1 catalog, 2 page tree, then a page and
// its content stream for each label.
func BuildVersion(version string, labels ...string) []byte {
	var buf bytes.Buffer
	offsets := []int{0}

	begin := func() int {
		offsets = append(offsets, buf.Len())
		return len(offsets) - 1
	}

	fmt.Fprintf(&buf, "%%PDF-%s\n", version)

	kids := make([]string, len(labels))
	for i := range labels {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}

	n := begin()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n", n)
	n = begin()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		n, strings.Join(kids, " "), len(labels))

	for _, label := range labels {
		page := begin()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents %d 0 R >>\nendobj\n",
			page, page+1)
		content := Content(label)
		stream := begin()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			stream, len(content), content)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), xref)

	return buf.Bytes()
}

// WriteFile writes a PDF with one page per label to dir/name and returns
// its path.
func WriteFile(t testing.TB, dir, name string, labels ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, Build(labels...), 0o644))
	return p
}

// WriteFileVersion is WriteFile with an explicit header version.
func WriteFileVersion(t testing.TB, dir, name, version string, labels ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, BuildVersion(version, labels...), 0o644))
	return p
}

// Labels returns page labels "<prefix>-1" through "<prefix>-n".
func Labels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + "-" + strconv.Itoa(i+1)
	}
	return out
}

// PageCount reads the page count of the PDF at path with pdfcpu.
func PageCount(t testing.TB, path string) int {
	t.Helper()
	n, err := api.PageCountFile(path)
	require.NoError(t, err)
	return n
}

// PageContents extracts every page's content stream from the PDF at path,
// in page order.
func PageContents(t testing.TB, path string) []string {
	t.Helper()
	n := PageCount(t, path)

	outDir := t.TempDir()
	require.NoError(t, api.ExtractContentFile(path, outDir, nil, model.NewDefaultConfiguration()))

	contents := make([]string, n)
	for i := 1; i <= n; i++ {
		matches, err := filepath.Glob(filepath.Join(outDir, fmt.Sprintf("*_page_%d.txt", i)))
		require.NoError(t, err)
		require.Len(t, matches, 1, "content file for page %d", i)
		data, err := os.ReadFile(matches[0])
		require.NoError(t, err)
		contents[i-1] = string(data)
	}
	return contents
}

// PageLabels returns the label carried by each page of the PDF at path.
func PageLabels(t testing.TB, path string) []string {
	t.Helper()
	contents := PageContents(t, path)
	labels := make([]string, len(contents))
	for i, c := range contents {
		first, _, _ := strings.Cut(c, "\n")
		labels[i] = strings.TrimSpace(strings.TrimPrefix(first, "%"))
	}
	return labels
}
