package api

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date accepts both plain calendar dates and RFC 3339 timestamps.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q. Expected format: YYYY-MM-DD or RFC 3339", raw)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(dateLayout))
}

type TimePeriod struct {
	Start    Date `json:"start"`
	End      Date `json:"end"`
	Duration int  `json:"duration_days,omitempty"`
}

type MoodEntry struct {
	Date  Date    `json:"date"`
	Score float64 `json:"score"`
}

type Mood struct {
	Entries []MoodEntry `json:"entries"`
	Average float64     `json:"average"`
	Trend   string      `json:"trend"`
	Best    *MoodEntry  `json:"best_day,omitempty"`
	Worst   *MoodEntry  `json:"worst_day,omitempty"`
}

type ActivityUsage struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Minutes int    `json:"minutes"`
}

type Activity struct {
	TotalCount   int             `json:"total_count"`
	TotalMinutes int             `json:"total_minutes"`
	Breakdown    []ActivityUsage `json:"breakdown"`
	MostUsed     string          `json:"most_used"`
}

type Journal struct {
	EntryCount    int      `json:"entry_count"`
	CurrentStreak int      `json:"current_streak"`
	Themes        []string `json:"themes"`
}

type Assessment struct {
	Type     string  `json:"type"`
	Score    float64 `json:"score"`
	Severity string  `json:"severity"`
	Date     Date    `json:"date"`
}

type Mindfulness struct {
	MeditationSessions int `json:"meditation_sessions"`
	MeditationMinutes  int `json:"meditation_minutes"`
	BreathingSessions  int `json:"breathing_sessions"`
	BreathingMinutes   int `json:"breathing_minutes"`
}

// Goals.CompletionRate is nil when the sender left the rate out.
type Goals struct {
	Set            int      `json:"set"`
	Completed      int      `json:"completed"`
	CompletionRate *float64 `json:"completion_rate,omitempty"`
}

type Achievement struct {
	Title    string `json:"title"`
	EarnedAt Date   `json:"earned_at"`
}

type Support struct {
	AIConversations  int `json:"ai_conversations"`
	AIMessages       int `json:"ai_messages"`
	CoachingSessions int `json:"coaching_sessions"`
	TherapyRequests  int `json:"therapy_requests"`
}

type Streaks struct {
	Current     int `json:"current"`
	Longest     int `json:"longest"`
	TotalPoints int `json:"total_points"`
}

type ReportData struct {
	Subject         string        `json:"subject"`
	GeneratedAt     *time.Time    `json:"generated_at,omitempty"`
	Period          TimePeriod    `json:"period"`
	Mood            Mood          `json:"mood"`
	Activity        Activity      `json:"activity"`
	Journal         Journal       `json:"journal"`
	Assessments     []Assessment  `json:"assessments"`
	Mindfulness     Mindfulness   `json:"mindfulness"`
	Goals           Goals         `json:"goals"`
	Achievements    []Achievement `json:"achievements"`
	Support         Support       `json:"support"`
	Streaks         Streaks       `json:"streaks"`
	RiskFlags       []string      `json:"risk_flags"`
	Recommendations []string      `json:"recommendations"`
}

type ReportRun struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Filename    string    `json:"filename"`
	Location    string    `json:"location,omitempty"`
	Pages       int       `json:"pages"`
	GeneratedAt time.Time `json:"generated_at"`
	CreatedAt   time.Time `json:"created_at"`
}
