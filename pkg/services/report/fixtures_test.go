package report

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/domain"
	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/pdf/layout"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func emptyReport() *domain.ReportData {
	return &domain.ReportData{
		Subject:     "Jane Doe",
		GeneratedAt: time.Date(2025, time.June, 30, 9, 30, 0, 0, time.UTC),
		Period:      domain.TimePeriod{Start: day, End: day.AddDate(0, 0, 29)},
	}
}

func populatedReport() *domain.ReportData {
	d := emptyReport()
	for i := 0; i < 20; i++ {
		d.Mood.Entries = append(d.Mood.Entries, domain.MoodEntry{Date: day.AddDate(0, 0, i), Score: float64(i%10) + 0.5})
	}
	d.Mood.Average = 6.26
	d.Mood.Trend = domain.TrendDeclining
	d.Mood.Best = domain.MoodEntry{Date: day.AddDate(0, 0, 9), Score: 9.5}
	d.Mood.Worst = domain.MoodEntry{Date: day.AddDate(0, 0, 10), Score: 0.5}
	d.Activity = domain.ActivitySummary{
		TotalCount:   12,
		TotalMinutes: 185,
		MostUsed:     "breathing",
		Breakdown: []domain.ActivityUsage{
			{Name: "breathing", Count: 7, Minutes: 70},
			{Name: "walk", Count: 5, Minutes: 115},
		},
	}
	d.Journal = domain.JournalSummary{EntryCount: 15, CurrentStreak: 4, Themes: []string{"sleep", "work stress"}}
	d.Assessments = []domain.Assessment{
		{Type: "PHQ-9", Score: 11, Severity: "moderate", Date: day.AddDate(0, 0, 2)},
		{Type: "GAD-7", Score: 6, Severity: "mild", Date: day.AddDate(0, 0, 20)},
	}
	d.Mindfulness = domain.MindfulnessSummary{MeditationSessions: 6, MeditationMinutes: 60, BreathingSessions: 9, BreathingMinutes: 45}
	d.Goals = domain.GoalSummary{Set: 3, Completed: 1, CompletionRate: 33}
	d.Achievements = []domain.Achievement{{Title: "First journal entry", EarnedAt: day}}
	d.Support = domain.SupportSummary{AIConversations: 4, AIMessages: 38, CoachingSessions: 1}
	d.Streaks = domain.StreakSummary{Current: 4, Longest: 9, TotalPoints: 12450}
	d.RiskFlags = []string{"Low mood for 5 consecutive days", "PHQ-9 score in moderate range", "Reduced sleep reported"}
	d.Recommendations = []string{"Schedule a follow-up", "Continue breathing practice", "Review sleep hygiene", "Revisit goals"}
	return d
}

var words = strings.Fields("calm focus sleep walk breathing gratitude anxiety stress work family " +
	"exercise routine meditation journal reflection progress setback support coaching therapy")

func randomText(rng *rand.Rand, maxWords int) string {
	n := 1 + rng.Intn(maxWords)
	out := make([]string, n)
	for i := range out {
		out[i] = words[rng.Intn(len(words))]
	}
	return strings.Join(out, " ")
}

// longest usually returns n and now and then a length that wraps past a page.
func longest(rng *rand.Rand, n int) int {
	if rng.Intn(8) == 0 {
		return 1500
	}
	return n
}

func randomReport(rng *rand.Rand) *domain.ReportData {
	d := emptyReport()
	d.Period.Duration = rng.Intn(90)
	for i, n := 0, rng.Intn(40); i < n; i++ {
		d.Mood.Entries = append(d.Mood.Entries, domain.MoodEntry{Date: day.AddDate(0, 0, i), Score: rng.Float64() * 10})
	}
	d.Mood.Average = rng.Float64() * 10
	d.Mood.Trend = []domain.Trend{domain.TrendImproving, domain.TrendStable, domain.TrendDeclining, "unknown"}[rng.Intn(4)]
	for i, n := 0, rng.Intn(25); i < n; i++ {
		d.Activity.Breakdown = append(d.Activity.Breakdown, domain.ActivityUsage{
			Name: randomText(rng, 3), Count: rng.Intn(50), Minutes: rng.Intn(5000),
		})
	}
	d.Activity.TotalCount = rng.Intn(1000)
	d.Activity.TotalMinutes = rng.Intn(100000)
	d.Journal.EntryCount = rng.Intn(200)
	for i, n := 0, rng.Intn(600); i < n; i++ {
		d.Journal.Themes = append(d.Journal.Themes, randomText(rng, 2))
	}
	for i, n := 0, rng.Intn(25); i < n; i++ {
		d.Assessments = append(d.Assessments, domain.Assessment{
			Type: "PHQ-9", Score: rng.Float64() * 27, Severity: "mild", Date: day.AddDate(0, 0, rng.Intn(30)),
		})
	}
	if rng.Intn(2) == 0 {
		d.Mindfulness.MeditationSessions = rng.Intn(40)
	}
	d.Goals = domain.GoalSummary{Set: rng.Intn(20), Completed: rng.Intn(20), CompletionRate: rng.Float64() * 100}
	for i, n := 0, rng.Intn(25); i < n; i++ {
		d.Achievements = append(d.Achievements, domain.Achievement{Title: randomText(rng, 6), EarnedAt: day})
	}
	for i, n := 0, rng.Intn(60); i < n; i++ {
		d.RiskFlags = append(d.RiskFlags, randomText(rng, longest(rng, 30)))
	}
	for i, n := 0, rng.Intn(30); i < n; i++ {
		d.Recommendations = append(d.Recommendations, randomText(rng, longest(rng, 40)))
	}
	return d
}

func compose(t *testing.T, d *domain.ReportData) (*canvas.Recorder, layout.Theme) {
	t.Helper()
	rec := canvas.NewRecorder()
	th := layout.DefaultTheme()
	require.NoError(t, NewComposer(DefaultProduct, th).Compose(rec, d))
	return rec, th
}

func countText(texts []string, want string) int {
	var n int
	for _, s := range texts {
		if s == want {
			n++
		}
	}
	return n
}

func indexOf(texts []string, want string) int {
	for i, s := range texts {
		if s == want {
			return i
		}
	}
	return -1
}

// pageOf is the first page with a text equal to want, or 0.
func pageOf(rec *canvas.Recorder, want string) int {
	for page := 1; page <= rec.PageCount(); page++ {
		if indexOf(rec.Texts(page), want) >= 0 {
			return page
		}
	}
	return 0
}

func pageContaining(rec *canvas.Recorder, part string) int {
	for page := 1; page <= rec.PageCount(); page++ {
		for _, s := range rec.Texts(page) {
			if strings.Contains(s, part) {
				return page
			}
		}
	}
	return 0
}

func pageLabels(total int) []string {
	out := make([]string, total)
	for i := range out {
		out[i] = fmt.Sprintf("Page %d of %d", i+1, total)
	}
	return out
}
