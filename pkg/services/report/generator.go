package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
	"github.com/rs/zerolog"
)

const DefaultProduct = "MindWell"

var ErrNilReport = errors.New("report data is nil")

type Options struct {
	Product string
	Theme   *layout.Theme  // DefaultTheme when nil
	Backend canvas.Factory // FPDF when nil
}

// Generator turns ReportData records into finished documents. It is safe for
// concurrent use: every Generate call gets its own canvas and cursor.
type Generator struct {
	product  string
	theme    layout.Theme
	backend  canvas.Factory
	composer *Composer
}

func NewGenerator(opts Options) (*Generator, error) {
	product := strings.TrimSpace(opts.Product)
	if product == "" {
		product = DefaultProduct
	}
	theme := layout.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	backend := opts.Backend
	if backend == nil {
		backend = canvas.FPDFFactory
	}

	w, h := backend().PageSize()
	if err := theme.Validate(w, h); err != nil {
		return nil, err
	}

	return &Generator{
		product:  product,
		theme:    theme,
		backend:  backend,
		composer: NewComposer(product, theme),
	}, nil
}

func (g *Generator) Product() string {
	return g.product
}

// Generate composes one document. It either returns a complete document or an
// error; a cancelled context never yields a partial result.
func (g *Generator) Generate(ctx context.Context, data *domain.ReportData) (*Document, error) {
	if data == nil {
		return nil, ErrNilReport
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("subject", data.Subject).Logger()
	started := time.Now()

	cv := g.backend()
	if err := g.composer.Compose(cv, data); err != nil {
		logger.Error().Err(err).Msg("failed to compose report")
		return nil, fmt.Errorf("compose report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := &Document{
		Filename:    Filename(g.product, data.Subject, data.GeneratedAt),
		Title:       DocumentTitle,
		Subject:     data.Subject,
		Pages:       cv.PageCount(),
		GeneratedAt: data.GeneratedAt,
		canvas:      cv,
	}
	logger.Debug().
		Str("filename", doc.Filename).
		Int("pages", doc.Pages).
		Dur("elapsed", time.Since(started)).
		Msg("report generated")

	return doc, nil
}

// Document is a finished report that has not necessarily been written
// anywhere yet.
type Document struct {
	Filename    string
	Title       string
	Subject     string
	Pages       int
	GeneratedAt time.Time

	canvas canvas.Canvas
}

// Run describes the document for the run history. location is where it was
// written or published, empty when it was only streamed.
func (d *Document) Run(location string) domain.ReportRun {
	return domain.ReportRun{
		Subject:     d.Subject,
		Filename:    d.Filename,
		Location:    location,
		Pages:       d.Pages,
		GeneratedAt: d.GeneratedAt,
	}
}

func (d *Document) Canvas() canvas.Canvas {
	return d.canvas
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.canvas.WriteTo(w)
}

func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the document into dir under its Filename and returns the path.
func (d *Document) Save(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, d.Filename)
	if err := d.canvas.Save(path); err != nil {
		return "", fmt.Errorf("save %s: %w", d.Filename, err)
	}
	return path, nil
}
