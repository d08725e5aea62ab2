package mood

import (
	"sort"
	"time"

	"github.com/moodlog/moodlog-go/internal/model"
)

// Trend directions reported by WeeklyTrend.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

const (
	trendWindow  = 30 * 24 * time.Hour
	weekWindow   = 7 * 24 * time.Hour
	maxStreakLen = 30
)

// Series holds parallel label/score arrays for chart rendering.
type Series struct {
	Labels []string
	Scores []int
}

// Count is one row of a frequency or distribution table.
type Count struct {
	Name  string
	Count int
}

// TrendSeries returns date labels and scores for entries recorded within the
// last 30 days (inclusive lower bound at exactly 30×24h before now), ordered
// ascending by timestamp. Empty input yields an empty series.
func TrendSeries(entries []model.MoodEntry, now time.Time) Series {
	cutoff := now.Add(-trendWindow)

	recent := make([]model.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if !e.RecordedAt.Before(cutoff) && !e.RecordedAt.After(now) {
			recent = append(recent, e)
		}
	}

	// recent is a fresh slice; sorting it leaves the caller's input alone.
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].RecordedAt.Before(recent[j].RecordedAt)
	})

	series := Series{
		Labels: make([]string, len(recent)),
		Scores: make([]int, len(recent)),
	}
	for i, e := range recent {
		series.Labels[i] = e.RecordedAt.Format("Jan 2")
		series.Scores[i] = ParseKind(e.Mood).Score()
	}
	return series
}

// Frequency groups entries by mood kind and returns rows sorted descending by
// count. Ties keep first-appearance order: stable, but not a contract across
// tied keys.
func Frequency(entries []model.MoodEntry) []Count {
	counts := groupByKind(entries)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Distribution groups entries by mood kind in first-appearance order, for
// proportion display.
func Distribution(entries []model.MoodEntry) []Count {
	return groupByKind(entries)
}

func groupByKind(entries []model.MoodEntry) []Count {
	index := make(map[string]int)
	counts := make([]Count, 0)
	for _, e := range entries {
		name := ParseKind(e.Mood).String()
		if i, ok := index[name]; ok {
			counts[i].Count++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, Count{Name: name, Count: 1})
	}
	return counts
}

// Streak counts consecutive calendar days with at least one entry, walking
// backward from today (the calendar day of now, not a rolling 24h window) for
// at most 30 days. A day with no entries ends the streak, so a user who has
// not recorded anything today has a streak of 0.
func Streak(entries []model.MoodEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.RecordedAt.In(now.Location()).Format("2006-01-02")] = true
	}

	streak := 0
	day := now
	for i := 0; i < maxStreakLen; i++ {
		if !days[day.Format("2006-01-02")] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyTrend compares the mean score of the last 7 days against the 7 days
// before that. An empty window contributes a mean of 0 rather than NaN, so a
// quiet week reads as a downturn against an active one.
func WeeklyTrend(entries []model.MoodEntry, now time.Time) string {
	weekAgo := now.Add(-weekWindow)
	twoWeeksAgo := now.Add(-2 * weekWindow)

	var thisWeek, lastWeek []int
	for _, e := range entries {
		if e.RecordedAt.After(now) {
			continue
		}
		score := ParseKind(e.Mood).Score()
		switch {
		case !e.RecordedAt.Before(weekAgo):
			thisWeek = append(thisWeek, score)
		case !e.RecordedAt.Before(twoWeeksAgo):
			lastWeek = append(lastWeek, score)
		}
	}

	current, previous := mean(thisWeek), mean(lastWeek)
	switch {
	case current > previous:
		return TrendUp
	case current < previous:
		return TrendDown
	}
	return TrendStable
}

// AverageScore returns the mean score over all given entries, 0 for none.
// Callers pass the store's most-recent-50 window, so the result covers only
// that window, not the lifetime history.
func AverageScore(entries []model.MoodEntry) float64 {
	scores := make([]int, len(entries))
	for i, e := range entries {
		scores[i] = ParseKind(e.Mood).Score()
	}
	return mean(scores)
}

func mean(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}
