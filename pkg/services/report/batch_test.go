package report

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchRecords(subjects ...string) []*domain.ReportData {
	out := make([]*domain.ReportData, len(subjects))
	for i, s := range subjects {
		d := populatedReport()
		d.Subject = s
		out[i] = d
	}
	return out
}

func TestGenerateBatch_PreservesInputOrder(t *testing.T) {
	g, err := NewGenerator(Options{Backend: canvas.RecorderFactory})
	require.NoError(t, err)
	dir := t.TempDir()

	subjects := []string{"Ada", "Grace", "Linus", "Barbara", "Ken", "Margaret"}
	results, err := g.GenerateBatch(context.Background(), batchRecords(subjects...), dir, 2)
	require.NoError(t, err)
	require.Len(t, results, len(subjects))

	for i, r := range results {
		assert.Equal(t, subjects[i], r.Subject)
		assert.Equal(t, Filename(DefaultProduct, subjects[i], populatedReport().GeneratedAt), r.Filename)
		assert.Positive(t, r.Pages)
		_, err := os.Stat(r.Path)
		assert.NoError(t, err)
	}
}

func TestGenerateBatch_RejectsDuplicateFilenames(t *testing.T) {
	g, err := NewGenerator(Options{Backend: canvas.RecorderFactory})
	require.NoError(t, err)

	_, err = g.GenerateBatch(context.Background(), batchRecords("Jane Doe", "Jane  Doe"), t.TempDir(), 0)
	assert.ErrorContains(t, err, "both produce")
}

func TestGenerateBatch_NilRecord(t *testing.T) {
	g, err := NewGenerator(Options{Backend: canvas.RecorderFactory})
	require.NoError(t, err)

	_, err = g.GenerateBatch(context.Background(), []*domain.ReportData{emptyReport(), nil}, t.TempDir(), 1)
	assert.ErrorIs(t, err, ErrNilReport)
}

func TestGenerateBatch_CancelledContext(t *testing.T) {
	g, err := NewGenerator(Options{Backend: canvas.RecorderFactory})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.GenerateBatch(ctx, batchRecords("a", "b", "c"), t.TempDir(), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateBatch_OversizedRecords(t *testing.T) {
	g, err := NewGenerator(Options{Backend: canvas.RecorderFactory})
	require.NoError(t, err)

	records := batchRecords("Ada", "Grace")
	records[0].RiskFlags = []string{strings.Repeat("persistent low mood reported ", 300)}
	records[1].Journal.Themes = strings.Fields(strings.Repeat("sleep work ", 250))

	var results []BatchResult
	require.NotPanics(t, func() {
		results, err = g.GenerateBatch(context.Background(), records, t.TempDir(), 2)
	})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
