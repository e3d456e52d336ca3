package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator_Defaults(t *testing.T) {
	g, err := NewGenerator(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultProduct, g.Product())
}

func TestNewGenerator_RejectsInvalidTheme(t *testing.T) {
	th := layout.DefaultTheme()
	th.ContentTop = 1

	_, err := NewGenerator(Options{Theme: &th, Backend: canvas.RecorderFactory})
	assert.ErrorIs(t, err, layout.ErrInvalidTheme)
}

func TestGenerate_WithRecorder(t *testing.T) {
	var logs bytes.Buffer
	ctx := zerolog.New(&logs).Level(zerolog.DebugLevel).WithContext(context.Background())

	g, err := NewGenerator(Options{Product: "MindWell", Backend: canvas.RecorderFactory})
	require.NoError(t, err)

	doc, err := g.Generate(ctx, populatedReport())
	require.NoError(t, err)

	assert.Equal(t, "MindWell_Comprehensive_Report_Jane_Doe_2025-06-30.pdf", doc.Filename)
	assert.Equal(t, DocumentTitle, doc.Title)
	assert.Equal(t, doc.Canvas().PageCount(), doc.Pages)
	assert.GreaterOrEqual(t, doc.Pages, 2)
	assert.Contains(t, logs.String(), `"pages":`)
}

func TestGenerate_FPDF(t *testing.T) {
	g, err := NewGenerator(Options{})
	require.NoError(t, err)

	doc, err := g.Generate(context.Background(), populatedReport())
	require.NoError(t, err)

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	dir := filepath.Join(t.TempDir(), "out")
	path, err := doc.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, doc.Filename), path)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, saved)
}

func TestGenerate_Errors(t *testing.T) {
	g, err := NewGenerator(Options{Backend: canvas.RecorderFactory})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilReport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	doc, err := g.Generate(ctx, emptyReport())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, doc)
}

func TestGenerate_IndependentCanvases(t *testing.T) {
	g, err := NewGenerator(Options{Backend: canvas.RecorderFactory})
	require.NoError(t, err)

	first, err := g.Generate(context.Background(), emptyReport())
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), populatedReport())
	require.NoError(t, err)

	assert.NotSame(t, first.Canvas(), second.Canvas())
	assert.Equal(t, first.Pages, first.Canvas().PageCount())
}

func TestDocument_Run(t *testing.T) {
	g, err := NewGenerator(Options{Backend: canvas.RecorderFactory})
	require.NoError(t, err)
	data := populatedReport()

	doc, err := g.Generate(context.Background(), data)
	require.NoError(t, err)

	run := doc.Run("s3://bucket/reports/" + doc.Filename)
	assert.Empty(t, run.ID)
	assert.Equal(t, data.Subject, run.Subject)
	assert.Equal(t, doc.Filename, run.Filename)
	assert.Equal(t, doc.Pages, run.Pages)
	assert.Equal(t, data.GeneratedAt, run.GeneratedAt)
	assert.Equal(t, "s3://bucket/reports/"+doc.Filename, run.Location)

	batch, err := g.GenerateBatch(context.Background(), []*domain.ReportData{data}, t.TempDir(), 1)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, batch[0].Path, batch[0].Run().Location)
	assert.Equal(t, run.Pages, batch[0].Run().Pages)
}
