package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
)

func (c *composition) mood() {
	m := c.data.Mood
	trend := TrendIndicator(m.Trend, c.th.Colors)

	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Average Mood", Value: FormatMood(m.Average)},
		{Label: "Trend", Value: trend.Glyph + " " + trend.Label, Color: trend.Color},
		{Label: "Best Day", Value: moodDay(m.Best)},
		{Label: "Most Challenging Day", Value: moodDay(m.Worst)},
	}}.Draw(c.cur)

	layout.Subheading(c.cur, "Recent Mood Entries")
	if len(m.Entries) == 0 {
		layout.Placeholder(c.cur, NoDataText)
		return
	}
	layout.BulletList{Items: recentMoodItems(m.Entries, moodHistoryLimit)}.Draw(c.cur)
}

func moodDay(e domain.MoodEntry) string {
	if e.Date.IsZero() {
		return notAvailable
	}
	return FormatDate(e.Date)
}

// recentMoodItems returns at most limit entries, newest first. Entries arrive
// oldest first.
func recentMoodItems(entries []domain.MoodEntry, limit int) []string {
	start := 0
	if len(entries) > limit {
		start = len(entries) - limit
	}
	items := make([]string, 0, len(entries)-start)
	for i := len(entries) - 1; i >= start; i-- {
		e := entries[i]
		items = append(items, fmt.Sprintf("%s: %s", FormatDate(e.Date), FormatMood(e.Score)))
	}
	return items
}

func (c *composition) activity() {
	a := c.data.Activity
	mostUsed := strings.TrimSpace(a.MostUsed)
	if mostUsed == "" {
		mostUsed = notAvailable
	}

	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Total Activities", Value: c.count.Int(a.TotalCount)},
		{Label: "Total Minutes", Value: c.count.Int(a.TotalMinutes)},
		{Label: "Avg Minutes / Activity", Value: FormatScore(ratio(a.TotalMinutes, a.TotalCount))},
		{Label: "Most Used", Value: mostUsed},
	}}.Draw(c.cur)

	layout.Subheading(c.cur, "Activity Breakdown")
	if len(a.Breakdown) == 0 {
		layout.Placeholder(c.cur, NoDataText)
		return
	}
	items := make([]string, 0, len(a.Breakdown))
	for _, u := range a.Breakdown {
		items = append(items, fmt.Sprintf("%s: %s, %s",
			u.Name, c.count.Unit(u.Count, "session", "sessions"), c.count.Unit(u.Minutes, "min", "min")))
	}
	layout.BulletList{Items: items}.Draw(c.cur)
}

func (c *composition) journal() {
	j := c.data.Journal

	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Journal Entries", Value: c.count.Int(j.EntryCount)},
		{Label: "Current Streak", Value: c.count.Unit(j.CurrentStreak, "day", "days")},
		{Label: "Consistency", Value: FormatRate(ratio(j.EntryCount, c.data.Period.Days()))},
	}}.Draw(c.cur)

	layout.Subheading(c.cur, "Recurring Themes")
	if len(j.Themes) == 0 {
		layout.Placeholder(c.cur, NoDataText)
		return
	}
	layout.Paragraph(c.cur, strings.Join(j.Themes, ", "))
}

func (c *composition) assessments() {
	list := sortedAssessments(c.data.Assessments)
	latest := notAvailable
	severity := notAvailable
	if len(list) > 0 {
		latest = list[0].Type + " " + FormatScore(list[0].Score)
		if s := strings.TrimSpace(list[0].Severity); s != "" {
			severity = s
		}
	}

	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Assessments Taken", Value: c.count.Int(len(list))},
		{Label: "Latest Score", Value: latest},
		{Label: "Latest Severity", Value: severity},
	}}.Draw(c.cur)

	layout.Subheading(c.cur, "Assessment History")
	if len(list) == 0 {
		layout.Placeholder(c.cur, NoDataText)
		return
	}
	items := make([]string, 0, len(list))
	for _, a := range list {
		item := fmt.Sprintf("%s: %s", a.Type, FormatScore(a.Score))
		if a.Severity != "" {
			item += " (" + a.Severity + ")"
		}
		if !a.Date.IsZero() {
			item += " on " + FormatDate(a.Date)
		}
		items = append(items, item)
	}
	layout.BulletList{Items: items}.Draw(c.cur)
}

// sortedAssessments copies the input and orders it newest first. Ties keep
// their input order.
func sortedAssessments(in []domain.Assessment) []domain.Assessment {
	out := make([]domain.Assessment, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (c *composition) mindfulness() {
	m := c.data.Mindfulness

	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Meditation Sessions", Value: c.count.Int(m.MeditationSessions)},
		{Label: "Meditation Minutes", Value: c.count.Int(m.MeditationMinutes)},
		{Label: "Breathing Sessions", Value: c.count.Int(m.BreathingSessions)},
		{Label: "Breathing Minutes", Value: c.count.Int(m.BreathingMinutes)},
	}}.Draw(c.cur)

	if m.IsEmpty() {
		layout.Placeholder(c.cur, NoDataText)
		return
	}
	layout.Paragraph(c.cur, fmt.Sprintf(
		"%s practised %s of meditation across %s and %s of breathing exercises across %s.",
		c.subject(),
		c.count.Unit(m.MeditationMinutes, "minute", "minutes"),
		c.count.Unit(m.MeditationSessions, "session", "sessions"),
		c.count.Unit(m.BreathingMinutes, "minute", "minutes"),
		c.count.Unit(m.BreathingSessions, "session", "sessions")))
}

func (c *composition) goals() {
	g := c.data.Goals

	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Goals Set", Value: c.count.Int(g.Set)},
		{Label: "Goals Completed", Value: c.count.Int(g.Completed)},
		{Label: "Completion Rate", Value: FormatPercent(CompletionRate(g))},
	}}.Draw(c.cur)

	layout.Subheading(c.cur, "Achievements")
	if len(c.data.Achievements) == 0 {
		layout.Placeholder(c.cur, NoDataText)
		return
	}
	items := make([]string, 0, len(c.data.Achievements))
	for _, a := range c.data.Achievements {
		item := a.Title
		if !a.EarnedAt.IsZero() {
			item += " (" + FormatDate(a.EarnedAt) + ")"
		}
		items = append(items, item)
	}
	layout.BulletList{Items: items}.Draw(c.cur)
}

func (c *composition) support() {
	s := c.data.Support
	st := c.data.Streaks

	layout.TileRow{Tiles: []layout.Tile{
		{Label: "AI Conversations", Value: c.count.Int(s.AIConversations)},
		{Label: "AI Messages", Value: c.count.Int(s.AIMessages)},
		{Label: "Coaching Sessions", Value: c.count.Int(s.CoachingSessions)},
		{Label: "Therapy Requests", Value: c.count.Int(s.TherapyRequests)},
	}}.Draw(c.cur)
	layout.KeyValueRow{Pairs: []layout.KeyValuePair{
		{Label: "Current streak", Value: c.count.Unit(st.Current, "day", "days")},
		{Label: "Longest streak", Value: c.count.Unit(st.Longest, "day", "days")},
		{Label: "Total points", Value: c.count.Int(st.TotalPoints)},
	}}.Draw(c.cur)

	if s.IsEmpty() && st == (domain.StreakSummary{}) {
		layout.Placeholder(c.cur, NoDataText)
	}
}

func (c *composition) risk() {
	d := c.data
	riskColor := c.th.Colors.Success
	if len(d.RiskFlags) > 0 {
		riskColor = c.th.Colors.Danger
	}

	layout.TileRow{Tiles: []layout.Tile{
		{Label: "Risk Flags", Value: c.count.Int(len(d.RiskFlags)), Color: riskColor},
		{Label: "Recommendations", Value: c.count.Int(len(d.Recommendations))},
	}}.Draw(c.cur)

	if len(d.RiskFlags) > 0 {
		box := layout.Callout{
			Title:  fmt.Sprintf("Risk flags requiring clinical attention (%d)", len(d.RiskFlags)),
			Items:  d.RiskFlags,
			Fill:   c.th.Colors.RiskFill,
			Border: c.th.Colors.Danger,
			Accent: c.th.Colors.Danger,
		}
		for _, part := range box.Split(c.cur) {
			part.Draw(c.cur)
		}
	} else {
		layout.Banner{Text: NoRiskFlagsText, Fill: c.th.Colors.SafeFill, TextColor: c.th.Colors.Success}.Draw(c.cur)
	}

	layout.Subheading(c.cur, "Recommendations")
	if len(d.Recommendations) == 0 {
		layout.Placeholder(c.cur, NoDataText)
		return
	}
	layout.BulletList{Items: d.Recommendations}.Draw(c.cur)
}
