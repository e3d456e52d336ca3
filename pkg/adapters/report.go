package adapters

import (
	"math"
	"time"

	"github.com/de-tools/wellness-atlas/pkg/models/api"
	"github.com/de-tools/wellness-atlas/pkg/models/domain"
)

func MapTrendApiToDomain(t string) domain.Trend {
	switch domain.Trend(t) {
	case domain.TrendImproving:
		return domain.TrendImproving
	case domain.TrendDeclining:
		return domain.TrendDeclining
	case domain.TrendStable:
		return domain.TrendStable
	default:
		// unknown values are kept so the renderer can fall back to neutral
		return domain.Trend(t)
	}
}

func MapTimePeriodApiToDomain(p api.TimePeriod) domain.TimePeriod {
	return domain.TimePeriod{
		Start:    p.Start.Time,
		End:      p.End.Time,
		Duration: p.Duration,
	}
}

func MapMoodEntryApiToDomain(e api.MoodEntry) domain.MoodEntry {
	return domain.MoodEntry{Date: e.Date.Time, Score: e.Score}
}

func mapOptionalMoodEntry(e *api.MoodEntry) domain.MoodEntry {
	if e == nil {
		return domain.MoodEntry{}
	}
	return MapMoodEntryApiToDomain(*e)
}

// completionRate maps a missing rate to NaN so the renderer derives it from
// the goal counts.
func completionRate(rate *float64) float64 {
	if rate == nil {
		return math.NaN()
	}
	return *rate
}

// MapReportDataApiToDomain converts the wire record into the engine input.
// A missing generation timestamp is filled with now.
func MapReportDataApiToDomain(r api.ReportData, now time.Time) domain.ReportData {
	generatedAt := now
	if r.GeneratedAt != nil && !r.GeneratedAt.IsZero() {
		generatedAt = *r.GeneratedAt
	}

	entries := make([]domain.MoodEntry, 0, len(r.Mood.Entries))
	for _, e := range r.Mood.Entries {
		entries = append(entries, MapMoodEntryApiToDomain(e))
	}

	breakdown := make([]domain.ActivityUsage, 0, len(r.Activity.Breakdown))
	for _, u := range r.Activity.Breakdown {
		breakdown = append(breakdown, domain.ActivityUsage{
			Name:    u.Name,
			Count:   u.Count,
			Minutes: u.Minutes,
		})
	}

	assessments := make([]domain.Assessment, 0, len(r.Assessments))
	for _, a := range r.Assessments {
		assessments = append(assessments, domain.Assessment{
			Type:     a.Type,
			Score:    a.Score,
			Severity: a.Severity,
			Date:     a.Date.Time,
		})
	}

	achievements := make([]domain.Achievement, 0, len(r.Achievements))
	for _, a := range r.Achievements {
		achievements = append(achievements, domain.Achievement{
			Title:    a.Title,
			EarnedAt: a.EarnedAt.Time,
		})
	}

	return domain.ReportData{
		Subject:     r.Subject,
		GeneratedAt: generatedAt,
		Period:      MapTimePeriodApiToDomain(r.Period),
		Mood: domain.MoodSummary{
			Entries: entries,
			Average: r.Mood.Average,
			Trend:   MapTrendApiToDomain(r.Mood.Trend),
			Best:    mapOptionalMoodEntry(r.Mood.Best),
			Worst:   mapOptionalMoodEntry(r.Mood.Worst),
		},
		Activity: domain.ActivitySummary{
			TotalCount:   r.Activity.TotalCount,
			TotalMinutes: r.Activity.TotalMinutes,
			Breakdown:    breakdown,
			MostUsed:     r.Activity.MostUsed,
		},
		Journal: domain.JournalSummary{
			EntryCount:    r.Journal.EntryCount,
			CurrentStreak: r.Journal.CurrentStreak,
			Themes:        append([]string(nil), r.Journal.Themes...),
		},
		Assessments: assessments,
		Mindfulness: domain.MindfulnessSummary{
			MeditationSessions: r.Mindfulness.MeditationSessions,
			MeditationMinutes:  r.Mindfulness.MeditationMinutes,
			BreathingSessions:  r.Mindfulness.BreathingSessions,
			BreathingMinutes:   r.Mindfulness.BreathingMinutes,
		},
		Goals: domain.GoalSummary{
			Set:            r.Goals.Set,
			Completed:      r.Goals.Completed,
			CompletionRate: completionRate(r.Goals.CompletionRate),
		},
		Achievements: achievements,
		Support: domain.SupportSummary{
			AIConversations:  r.Support.AIConversations,
			AIMessages:       r.Support.AIMessages,
			CoachingSessions: r.Support.CoachingSessions,
			TherapyRequests:  r.Support.TherapyRequests,
		},
		Streaks: domain.StreakSummary{
			Current:     r.Streaks.Current,
			Longest:     r.Streaks.Longest,
			TotalPoints: r.Streaks.TotalPoints,
		},
		RiskFlags:       append([]string(nil), r.RiskFlags...),
		Recommendations: append([]string(nil), r.Recommendations...),
	}
}
