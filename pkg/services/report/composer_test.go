package report

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_EmptyInput(t *testing.T) {
	rec, _ := compose(t, emptyReport())

	require.GreaterOrEqual(t, rec.PageCount(), 2)
	texts := rec.AllTexts()

	// one placeholder per section plus the quick summary recommendations
	assert.Equal(t, len(sections)+1, countText(texts, NoDataText))
	assert.Equal(t, 1, countText(texts, NoRiskFlagsText))
	for _, s := range texts {
		assert.False(t, strings.HasPrefix(s, "Risk flags requiring"), s)
	}
	for _, title := range SectionTitles() {
		assert.Equal(t, 1, countText(texts, title), title)
	}
	assert.Contains(t, rec.Texts(1), SummaryTitle)
	assert.NotContains(t, rec.Texts(2), SummaryTitle)
}

func TestCompose_SectionOrder(t *testing.T) {
	rec, _ := compose(t, populatedReport())
	texts := rec.AllTexts()

	last := indexOf(texts, SummaryTitle)
	require.GreaterOrEqual(t, last, 0)
	for _, title := range SectionTitles() {
		i := indexOf(texts, title)
		require.Greater(t, i, last, title)
		last = i
	}
	assert.Greater(t, indexOf(texts, "Closing Notes"), last)
}

func TestCompose_ComprehensiveReportStartsOnFreshPage(t *testing.T) {
	rec, _ := compose(t, emptyReport())

	assert.Equal(t, 2, pageOf(rec, "Prepared for"))
}

func TestCompose_SummaryStaysOnOnePage(t *testing.T) {
	d := populatedReport()
	long := strings.Repeat("review sleep hygiene and schedule follow up ", 60)
	d.Recommendations = []string{long, long, long}

	rec, th := compose(t, d)

	assert.Equal(t, 2, pageOf(rec, "Prepared for"))
	assertNoOverflow(t, rec, th)
	var clipped int
	for _, s := range rec.Texts(1) {
		if strings.HasSuffix(s, "...") {
			clipped++
		}
	}
	assert.Equal(t, 3, clipped)
}

func TestCompose_UnknownCompletionRateUsesGoalCounts(t *testing.T) {
	d := populatedReport()
	d.Goals = domain.GoalSummary{Set: 3, Completed: 1, CompletionRate: math.NaN()}

	rec, _ := compose(t, d)

	assert.Contains(t, rec.Texts(1), "33.3%")
	assert.Equal(t, 2, countText(rec.AllTexts(), "33.3%"))
}

func TestCompose_LongThemesContinueOnNextPage(t *testing.T) {
	d := populatedReport()
	d.Journal.Themes = make([]string, 500)
	for i := range d.Journal.Themes {
		d.Journal.Themes[i] = fmt.Sprintf("theme%03d", i)
	}

	var rec *canvas.Recorder
	var th layout.Theme
	require.NotPanics(t, func() { rec, th = compose(t, d) })
	assertNoOverflow(t, rec, th)

	first, last := pageContaining(rec, "theme000"), pageContaining(rec, "theme499")
	require.Positive(t, first)
	assert.Greater(t, last, first)
}

func TestCompose_OversizedRiskFlagIsClipped(t *testing.T) {
	d := populatedReport()
	d.RiskFlags = []string{strings.Repeat("persistent low mood reported ", 300)}

	var rec *canvas.Recorder
	var th layout.Theme
	require.NotPanics(t, func() { rec, th = compose(t, d) })
	assertNoOverflow(t, rec, th)

	texts := rec.AllTexts()
	title := "Risk flags requiring clinical attention (1)"
	assert.Equal(t, 1, countText(texts, title))
	assert.NotContains(t, texts, title+" (continued)")
	page := pageOf(rec, title)
	require.Positive(t, page)
	var clipped bool
	for _, s := range rec.Texts(page) {
		clipped = clipped || strings.HasSuffix(s, "...")
	}
	assert.True(t, clipped)
}

func TestCompose_OversizedRecommendation(t *testing.T) {
	d := populatedReport()
	d.Recommendations = []string{strings.Repeat("schedule a follow up ", 1500)}

	var rec *canvas.Recorder
	var th layout.Theme
	require.NotPanics(t, func() { rec, th = compose(t, d) })
	assertNoOverflow(t, rec, th)
	assert.Equal(t, 2, pageOf(rec, "Prepared for"))
}

func TestCompose_MoodHistory(t *testing.T) {
	d := populatedReport()
	rec, _ := compose(t, d)
	texts := rec.AllTexts()

	assert.Contains(t, texts, "↓ Declining")

	items := recentMoodItems(d.Mood.Entries, moodHistoryLimit)
	require.Len(t, items, moodHistoryLimit)
	assert.True(t, strings.HasPrefix(items[0], "Jun 20, 2025"))
	assert.True(t, strings.HasPrefix(items[moodHistoryLimit-1], "Jun 7, 2025"))

	prev := -1
	for _, item := range items {
		i := indexOf(texts, item)
		require.Greater(t, i, prev, item)
		prev = i
	}
	assert.Equal(t, -1, indexOf(texts, "Jun 6, 2025: 5.5/10"))
}

func TestCompose_Formatting(t *testing.T) {
	rec, _ := compose(t, populatedReport())
	texts := rec.AllTexts()

	assert.Contains(t, texts, "33%")
	assert.NotContains(t, texts, "33.0%")
	assert.Contains(t, texts, "50%") // 15 journal entries over 30 days
	assert.Contains(t, texts, "12,450")
	assert.Contains(t, texts, "6.3/10")
}

func TestCompose_RiskBranching(t *testing.T) {
	t.Run("flags present", func(t *testing.T) {
		d := populatedReport()
		rec, th := compose(t, d)

		var boxes []canvas.Op
		for page := 1; page <= rec.PageCount(); page++ {
			for _, op := range rec.Ops(page) {
				if op.Kind == canvas.OpRoundedRect && op.Color == th.Colors.RiskFill {
					boxes = append(boxes, op)
				}
				if op.Kind == canvas.OpRoundedRect {
					assert.NotEqual(t, th.Colors.SafeFill, op.Color)
				}
			}
		}
		require.Len(t, boxes, 1)
		rows := float64(len(d.RiskFlags)) * (th.LineHeight + th.ItemGap)
		assert.InDelta(t, 2*th.CalloutPadding+th.CalloutTitle+rows, boxes[0].H, 1e-9)
		assert.Contains(t, rec.AllTexts(), "Risk flags requiring clinical attention (3)")
		assert.NotContains(t, rec.AllTexts(), NoRiskFlagsText)
	})

	t.Run("no flags", func(t *testing.T) {
		d := populatedReport()
		d.RiskFlags = nil
		rec, th := compose(t, d)

		var banners int
		for page := 1; page <= rec.PageCount(); page++ {
			for _, op := range rec.Ops(page) {
				if op.Kind != canvas.OpRoundedRect {
					continue
				}
				assert.NotEqual(t, th.Colors.RiskFill, op.Color)
				if op.Color == th.Colors.SafeFill {
					banners++
					assert.Equal(t, th.BannerHeight, op.H)
				}
			}
		}
		assert.Equal(t, 1, banners)
		assert.Contains(t, rec.AllTexts(), NoRiskFlagsText)
	})
}

func TestCompose_FooterOnEveryPage(t *testing.T) {
	rec, _ := compose(t, populatedReport())
	total := rec.PageCount()
	all := rec.AllTexts()
	for page, label := range pageLabels(total) {
		assert.Equal(t, 1, countText(all, label), label)
		assert.Contains(t, rec.Texts(page+1), label)
	}
}

// assertNoOverflow checks that everything except the footer stays above the
// bottom margin and that the footer stays inside its strip.
func assertNoOverflow(t *testing.T, rec *canvas.Recorder, th layout.Theme) {
	t.Helper()
	_, h := rec.PageSize()
	bottom := h - th.MarginBottom
	for page := 1; page <= rec.PageCount(); page++ {
		var footerTexts int
		for _, op := range rec.Ops(page) {
			switch op.Kind {
			case canvas.OpRect, canvas.OpRoundedRect:
				assert.LessOrEqual(t, op.Y+op.H, bottom+1e-6, "page %d box", page)
			case canvas.OpText:
				if op.Y > bottom {
					footerTexts++
					assert.Greater(t, op.Y, bottom+4, "page %d text %q", page, op.Text)
					assert.Less(t, op.Y, h, "page %d text %q", page, op.Text)
				}
			}
		}
		assert.GreaterOrEqual(t, footerTexts, 2, "page %d", page)
		assert.LessOrEqual(t, footerTexts, 4, "page %d", page)
	}
}

func TestCompose_NoOverflowOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	th := layout.DefaultTheme()

	for i := 0; i < 60; i++ {
		d := randomReport(rng)
		rec := canvas.NewRecorder()
		require.NotPanics(t, func() {
			assert.NoError(t, NewComposer(DefaultProduct, th).Compose(rec, d))
		}, "iteration %d", i)
		assertNoOverflow(t, rec, th)

		all := rec.AllTexts()
		for _, label := range pageLabels(rec.PageCount()) {
			assert.Equal(t, 1, countText(all, label), "iteration %d %s", i, label)
		}
	}
}

type failingCanvas struct {
	*canvas.Recorder
}

func (f failingCanvas) SelectPage(n int) error {
	if n > 1 {
		return canvas.ErrPageOutOfRange
	}
	return f.Recorder.SelectPage(n)
}

func TestCompose_FooterPassFailure(t *testing.T) {
	cv := failingCanvas{Recorder: canvas.NewRecorder()}

	err := NewComposer(DefaultProduct, layout.DefaultTheme()).Compose(cv, emptyReport())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFooterPass)
	assert.ErrorIs(t, err, canvas.ErrPageOutOfRange)
}

func TestStampFooters_NoPages(t *testing.T) {
	err := StampFooters(canvas.NewRecorder(), layout.DefaultTheme(), layout.Footer{Title: DocumentTitle})
	assert.ErrorIs(t, err, ErrFooterPass)
}

func TestCompose_NilData(t *testing.T) {
	err := NewComposer(DefaultProduct, layout.DefaultTheme()).Compose(canvas.NewRecorder(), nil)
	assert.ErrorIs(t, err, ErrNilReport)
}

func TestCompose_InvalidTheme(t *testing.T) {
	for _, margin := range []float64{400, 10} {
		th := layout.DefaultTheme()
		th.MarginBottom = margin

		rec := canvas.NewRecorder()
		err := NewComposer(DefaultProduct, th).Compose(rec, emptyReport())
		assert.ErrorIs(t, err, layout.ErrInvalidTheme, "margin %v", margin)
		assert.Zero(t, rec.PageCount())
	}
}
