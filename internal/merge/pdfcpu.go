// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdfmerge/pkg/types"
)

// PDFCPU is the Codec backed by github.com/pdfcpu/pdfcpu.
type PDFCPU struct {
	conf *model.Configuration
}

// NewPDFCPU returns a codec validating inputs with the given mode.
func NewPDFCPU(mode types.ValidationMode) *PDFCPU {
	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.MERGECREATE
	conf.ValidationMode = model.ValidationRelaxed
	if mode == types.ValidationStrict {
		conf.ValidationMode = model.ValidationStrict
	}
	// Merged output gets no outline entries per input file.
	conf.CreateBookmarks = false
	return &PDFCPU{conf: conf}
}

// Open reads and validates the PDF at path. The file itself is closed
// before Open returns; the Source holds the parsed document.
func (c *PDFCPU) Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ctx, err := api.ReadAndValidate(f, c.conf)
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	return &pdfSource{name: path, ctx: ctx}, nil
}

// NewDocument returns an empty output document.
func (c *PDFCPU) NewDocument() Document {
	return &pdfDocument{}
}

type pdfSource struct {
	name string
	ctx  *model.Context
}

func (s *pdfSource) PageCount() int {
	if s.ctx == nil {
		return 0
	}
	return s.ctx.PageCount
}

func (s *pdfSource) Close() error {
	s.ctx = nil
	return nil
}

// pdfDocument adopts the first appended source as its base context and
// merges every later source's page tree onto the end of it.
type pdfDocument struct {
	ctx   *model.Context
	pages int
}

func (d *pdfDocument) Append(src Source) error {
	s, ok := src.(*pdfSource)
	if !ok {
		return fmt.Errorf("unsupported source type %T", src)
	}
	if s.ctx == nil {
		return errors.New("source already closed")
	}

	n := s.ctx.PageCount
	if d.ctx == nil {
		d.ctx = s.ctx
		// A 2.0 base keeps its version; anything older is written as 1.7.
		if d.ctx.XRefTable.Version() < model.V20 {
			d.ctx.EnsureVersionForWriting()
		}
		d.pages += n
		return nil
	}

	// pdfcpu cannot merge a 2.0 page tree into an older document.
	if d.ctx.XRefTable.Version() < model.V20 && s.ctx.XRefTable.Version() == model.V20 {
		return pdfcpu.ErrUnsupportedVersion
	}
	if err := pdfcpu.MergeXRefTables(s.name, s.ctx, d.ctx, false, false); err != nil {
		return err
	}
	d.pages += n
	return nil
}

func (d *pdfDocument) PageCount() int { return d.pages }

func (d *pdfDocument) Write(w io.Writer) error {
	if d.ctx == nil {
		return errors.New("document has no pages")
	}
	if d.ctx.Configuration.OptimizeBeforeWriting {
		if err := api.OptimizeContext(d.ctx); err != nil {
			return fmt.Errorf("optimizing PDF: %w", err)
		}
	}
	return api.WriteContext(d.ctx, w)
}
