package model

import "time"

// MoodEntry represents a single mood record in the database. Entries are
// immutable once created; the only mutation is deletion by the owning user.
type MoodEntry struct {
	ID         string
	UserID     int64
	Mood       string
	Note       *string
	RecordedAt time.Time
	CreatedAt  time.Time
}

// CreateMoodRequest represents a request to record a mood.
type CreateMoodRequest struct {
	Mood string  `json:"mood"`
	Note *string `json:"note,omitempty"`
}

// MoodEntryResponse represents a mood entry in API responses, including the
// derived score and display glyph.
type MoodEntryResponse struct {
	ID         string    `json:"id"`
	Mood       string    `json:"mood"`
	Note       *string   `json:"note,omitempty"`
	Score      int       `json:"score"`
	Emoji      string    `json:"emoji"`
	RecordedAt time.Time `json:"recorded_at"`
}

// TrendSeriesResponse carries parallel label/score arrays for chart rendering.
type TrendSeriesResponse struct {
	Labels []string `json:"labels"`
	Scores []int    `json:"scores"`
}

// MoodCountResponse is one row of a frequency or distribution table.
type MoodCountResponse struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// MoodSummaryResponse aggregates a user's recent entries for the dashboard.
// All figures are computed over the same most-recent-50 window the list
// endpoint returns, so the average is an approximation of the lifetime mean.
type MoodSummaryResponse struct {
	TotalEntries int                 `json:"total_entries"`
	AverageScore float64             `json:"average_score"`
	Streak       int                 `json:"streak"`
	WeeklyTrend  string              `json:"weekly_trend"`
	Trend        TrendSeriesResponse `json:"trend"`
	Frequency    []MoodCountResponse `json:"frequency"`
	Distribution []MoodCountResponse `json:"distribution"`
}
