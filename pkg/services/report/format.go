package report

import (
	"math"
	"strconv"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateLayout     = "Jan 2, 2006"
	longDateLayout = "January 2, 2006 at 15:04 MST"
	notAvailable   = "N/A"
)

// Indicator is the glyph, colour and label rendered for a trend direction.
type Indicator struct {
	Glyph string
	Color canvas.Color
	Label string
}

// TrendIndicator maps a trend to its indicator. Anything that is neither
// improving nor declining renders as the neutral arrow.
func TrendIndicator(t domain.Trend, palette layout.Palette) Indicator {
	switch t {
	case domain.TrendImproving:
		return Indicator{Glyph: "↑", Color: palette.Success, Label: "Improving"}
	case domain.TrendDeclining:
		return Indicator{Glyph: "↓", Color: palette.Danger, Label: "Declining"}
	default:
		return Indicator{Glyph: "→", Color: palette.Muted, Label: "Stable"}
	}
}

// finite maps NaN and infinities to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ratio returns n/d, or 0 when the denominator is zero.
func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// FormatPercent renders a value that is already a percentage, rounded to one
// decimal with a trailing ".0" dropped: 33 -> "33%", 33.33 -> "33.3%".
func FormatPercent(percent float64) string {
	rounded := math.Round(finite(percent)*10) / 10
	if rounded == 0 {
		rounded = 0 // normalises -0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}

// FormatRate renders a count-derived ratio scaled by 100 with no decimals.
func FormatRate(r float64) string {
	return strconv.FormatFloat(math.Round(finite(r)*100), 'f', 0, 64) + "%"
}

// FormatScore renders a raw score with at most one decimal.
func FormatScore(v float64) string {
	return strconv.FormatFloat(math.Round(finite(v)*10)/10, 'f', -1, 64)
}

// FormatMood renders a 0-10 mood value.
func FormatMood(v float64) string {
	return strconv.FormatFloat(finite(v), 'f', 1, 64) + "/10"
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.Format(dateLayout)
}

func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.Format(longDateLayout)
}

func FormatPeriod(p domain.TimePeriod) string {
	return FormatDate(p.Start) + " - " + FormatDate(p.End)
}

// CompletionRate prefers the stored percentage and falls back to the
// completed/set ratio when the stored value is not a number.
func CompletionRate(g domain.GoalSummary) float64 {
	if math.IsNaN(g.CompletionRate) || math.IsInf(g.CompletionRate, 0) {
		return ratio(g.Completed, g.Set) * 100
	}
	return g.CompletionRate
}

// counter formats integer counts with English digit grouping.
type counter struct {
	p *message.Printer
}

func newCounter() counter {
	return counter{p: message.NewPrinter(language.English)}
}

func (c counter) Int(n int) string {
	return c.p.Sprintf("%d", n)
}

func (c counter) Unit(n int, singular, plural string) string {
	if n == 1 {
		return c.p.Sprintf("%d %s", n, singular)
	}
	return c.p.Sprintf("%d %s", n, plural)
}
