package report

import (
	"fmt"

	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
)

// quickSummary fills the first page with the headline numbers a clinician
// needs before reading the detailed sections.
func (c *composition) quickSummary() {
	d := c.data
	cur := c.cur
	trend := TrendIndicator(d.Mood.Trend, c.th.Colors)

	cur.NewPage()
	layout.Title(cur, SummaryTitle, c.th.Colors.Primary)
	layout.KeyValueRow{Pairs: []layout.KeyValuePair{
		{Label: "Subject", Value: c.subject()},
		{Label: "Reporting period", Value: FormatPeriod(d.Period)},
		{Label: "Generated", Value: FormatDate(d.GeneratedAt)},
	}}.Draw(cur)

	layout.Subheading(cur, "Key Metrics")
	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Average Mood", Value: FormatMood(d.Mood.Average)},
		{Label: "Mood Trend", Value: trend.Glyph + " " + trend.Label, Color: trend.Color},
		{Label: "Activities", Value: c.count.Int(d.Activity.TotalCount)},
		{Label: "Journal Entries", Value: c.count.Int(d.Journal.EntryCount)},
	}}.Draw(cur)
	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Assessments", Value: c.count.Int(len(d.Assessments))},
		{Label: "Goal Completion", Value: FormatPercent(CompletionRate(d.Goals))},
		{Label: "Current Streak", Value: c.count.Unit(d.Streaks.Current, "day", "days")},
		{Label: "Total Points", Value: c.count.Int(d.Streaks.TotalPoints)},
	}}.Draw(cur)

	layout.Subheading(cur, "Risk Status")
	if n := len(d.RiskFlags); n > 0 {
		layout.Paragraph(cur, fmt.Sprintf(
			"%s require clinical review. See section 8 for details.", c.count.Unit(n, "risk flag", "risk flags")))
	} else {
		layout.Paragraph(cur, "No risk flags were identified during this period.")
	}

	layout.Subheading(cur, "Priority Recommendations")
	if len(d.Recommendations) == 0 {
		layout.Placeholder(cur, NoDataText)
		return
	}
	top, perItem := c.topRecommendations()
	layout.BulletList{Items: top, MaxLines: perItem}.Draw(cur)
}

// topRecommendations picks the leading recommendations and the line cap
// per item that keep them on the rest of the summary page.
func (c *composition) topRecommendations() ([]string, int) {
	top := c.data.Recommendations
	if len(top) > summaryRecommendations {
		top = top[:summaryRecommendations]
	}
	row := c.th.LineHeight + c.th.ItemGap
	for len(top) > 1 && c.cur.Remaining()/float64(len(top)) < row {
		top = top[:len(top)-1]
	}
	share := c.cur.Remaining() / float64(len(top))
	return top, layout.LinesFitting(c.cur, share, c.th.ItemGap)
}
