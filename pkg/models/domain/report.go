package domain

import "time"

// ReportData is the single input record of the report engine. It is produced
// entirely by the aggregation layer and treated as read-only while a document
// is being composed.
type ReportData struct {
	Subject     string
	GeneratedAt time.Time
	Period      TimePeriod

	Mood            MoodSummary
	Activity        ActivitySummary
	Journal         JournalSummary
	Assessments     []Assessment
	Mindfulness     MindfulnessSummary
	Goals           GoalSummary
	Achievements    []Achievement
	Support         SupportSummary
	Streaks         StreakSummary
	RiskFlags       []string
	Recommendations []string
}

// TimePeriod represents a time range for the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// Days returns the inclusive number of calendar days covered by the period.
// An explicit Duration wins over the computed span.
func (p TimePeriod) Days() int {
	if p.Duration > 0 {
		return p.Duration
	}
	if p.Start.IsZero() || p.End.IsZero() || p.End.Before(p.Start) {
		return 0
	}
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

type MoodEntry struct {
	Date  time.Time
	Score float64 // 0..10
}

type MoodSummary struct {
	Entries []MoodEntry // oldest first
	Average float64     // 0..10
	Trend   Trend
	Best    MoodEntry
	Worst   MoodEntry
}

type ActivityUsage struct {
	Name    string // breathing, walk, music
	Count   int
	Minutes int
}

type ActivitySummary struct {
	TotalCount   int
	TotalMinutes int
	Breakdown    []ActivityUsage
	MostUsed     string
}

type JournalSummary struct {
	EntryCount    int
	CurrentStreak int // days
	Themes        []string
}

type Assessment struct {
	Type     string  // PHQ-9, GAD-7
	Score    float64 // raw instrument points
	Severity string  // minimal, mild, moderate
	Date     time.Time
}

type MindfulnessSummary struct {
	MeditationSessions int
	MeditationMinutes  int
	BreathingSessions  int
	BreathingMinutes   int
}

func (m MindfulnessSummary) IsEmpty() bool {
	return m.MeditationSessions == 0 && m.MeditationMinutes == 0 &&
		m.BreathingSessions == 0 && m.BreathingMinutes == 0
}

type GoalSummary struct {
	Set            int
	Completed      int
	CompletionRate float64 // percent, 0..100; NaN when unknown
}

type Achievement struct {
	Title    string
	EarnedAt time.Time
}

type SupportSummary struct {
	AIConversations  int
	AIMessages       int
	CoachingSessions int
	TherapyRequests  int
}

func (s SupportSummary) IsEmpty() bool {
	return s.AIConversations == 0 && s.AIMessages == 0 &&
		s.CoachingSessions == 0 && s.TherapyRequests == 0
}

type StreakSummary struct {
	Current     int
	Longest     int
	TotalPoints int
}
