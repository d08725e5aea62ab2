package mood

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlog/moodlog-go/internal/model"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func entry(mood string, at time.Time) model.MoodEntry {
	return model.MoodEntry{Mood: mood, RecordedAt: at}
}

func TestTrendSeriesEmpty(t *testing.T) {
	series := TrendSeries(nil, testNow)
	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Scores)
}

func TestTrendSeriesFiltersAndSorts(t *testing.T) {
	entries := []model.MoodEntry{
		entry("😊 Happy", testNow.Add(-2*time.Hour)),
		entry("😢 Sad", testNow.Add(-31*24*time.Hour)), // older than the window
		entry("🙂 Good", testNow.Add(-10*24*time.Hour)),
		entry("🤩 Amazing", testNow.Add(-30*24*time.Hour)), // exactly on the boundary
	}

	series := TrendSeries(entries, testNow)

	require.Len(t, series.Scores, 3)
	require.Len(t, series.Labels, 3)
	// Ascending by timestamp: boundary entry, then -10d, then -2h.
	assert.Equal(t, []int{5, 3, 4}, series.Scores)
	assert.Equal(t, testNow.Add(-30*24*time.Hour).Format("Jan 2"), series.Labels[0])
}

func TestTrendSeriesDoesNotMutateInput(t *testing.T) {
	entries := []model.MoodEntry{
		entry("😊 Happy", testNow.Add(-time.Hour)),
		entry("🙂 Good", testNow.Add(-48*time.Hour)),
		entry("😢 Sad", testNow.Add(-24*time.Hour)),
	}
	first, last := entries[0], entries[2]

	TrendSeries(entries, testNow)

	assert.Equal(t, first, entries[0])
	assert.Equal(t, last, entries[2])
}

func TestFrequencySortsByCountDescending(t *testing.T) {
	entries := []model.MoodEntry{
		entry("😢 Sad", testNow),
		entry("😊 Happy", testNow),
		entry("😊 Happy", testNow),
		entry("😴 Tired", testNow),
		entry("😊 Happy", testNow),
		entry("😴 Tired", testNow),
		entry("😢 Sad", testNow),
	}

	counts := Frequency(entries)

	require.Len(t, counts, 3)
	assert.Equal(t, Count{Name: "Happy", Count: 3}, counts[0])
	// Sad and Tired tie at 2; Sad appeared first so it stays first.
	assert.Equal(t, Count{Name: "Sad", Count: 2}, counts[1])
	assert.Equal(t, Count{Name: "Tired", Count: 2}, counts[2])
}

func TestFrequencyGroupsUnknownTogether(t *testing.T) {
	entries := []model.MoodEntry{
		entry("Meh", testNow),
		entry("Blah", testNow),
	}

	counts := Frequency(entries)

	require.Len(t, counts, 1)
	assert.Equal(t, Count{Name: "Unknown", Count: 2}, counts[0])
}

func TestDistributionKeepsInsertionOrder(t *testing.T) {
	entries := []model.MoodEntry{
		entry("😴 Tired", testNow),
		entry("😊 Happy", testNow),
		entry("😊 Happy", testNow),
		entry("😢 Sad", testNow),
	}

	counts := Distribution(entries)

	require.Len(t, counts, 3)
	assert.Equal(t, "Tired", counts[0].Name)
	assert.Equal(t, "Happy", counts[1].Name)
	assert.Equal(t, "Sad", counts[2].Name)
	assert.Equal(t, 2, counts[1].Count)
}

func TestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, Streak(nil, testNow))
}

func TestStreakConsecutiveDaysWithGap(t *testing.T) {
	// Entries today and the previous two calendar days, then a gap.
	entries := []model.MoodEntry{
		entry("😊 Happy", testNow.Add(-time.Hour)),
		entry("🙂 Good", testNow.AddDate(0, 0, -1)),
		entry("😐 Okay", testNow.AddDate(0, 0, -2)),
		entry("😢 Sad", testNow.AddDate(0, 0, -4)),
	}

	assert.Equal(t, 3, Streak(entries, testNow))
}

func TestStreakZeroWithoutEntryToday(t *testing.T) {
	entries := []model.MoodEntry{
		entry("😊 Happy", testNow.AddDate(0, 0, -1)),
		entry("🙂 Good", testNow.AddDate(0, 0, -2)),
	}

	assert.Equal(t, 0, Streak(entries, testNow))
}

func TestStreakCalendarDayNotRolling(t *testing.T) {
	// 11pm yesterday and 1am today are different calendar days even though
	// they are two hours apart.
	now := time.Date(2025, time.March, 15, 1, 0, 0, 0, time.UTC)
	entries := []model.MoodEntry{
		entry("😊 Happy", now),
		entry("🙂 Good", now.Add(-2*time.Hour)),
	}

	assert.Equal(t, 2, Streak(entries, now))
}

func TestStreakCappedAtThirtyDays(t *testing.T) {
	var entries []model.MoodEntry
	for i := 0; i < 45; i++ {
		entries = append(entries, entry("😊 Happy", testNow.AddDate(0, 0, -i)))
	}

	assert.Equal(t, 30, Streak(entries, testNow))
}

func TestWeeklyTrendUp(t *testing.T) {
	entries := []model.MoodEntry{
		entry("😊 Happy", testNow.Add(-24*time.Hour)),   // this week: 4
		entry("🙂 Good", testNow.Add(-10*24*time.Hour)), // prior week: 3
	}

	assert.Equal(t, TrendUp, WeeklyTrend(entries, testNow))
}

func TestWeeklyTrendDown(t *testing.T) {
	entries := []model.MoodEntry{
		entry("😢 Sad", testNow.Add(-24*time.Hour)),
		entry("🤩 Amazing", testNow.Add(-10*24*time.Hour)),
	}

	assert.Equal(t, TrendDown, WeeklyTrend(entries, testNow))
}

func TestWeeklyTrendStableOnEqualMeans(t *testing.T) {
	entries := []model.MoodEntry{
		entry("🙂 Good", testNow.Add(-24*time.Hour)),
		entry("🙂 Good", testNow.Add(-10*24*time.Hour)),
	}

	assert.Equal(t, TrendStable, WeeklyTrend(entries, testNow))
}

func TestWeeklyTrendEmptyCurrentWeekReadsDown(t *testing.T) {
	// This week has no entries, so its mean falls back to 0.
	entries := []model.MoodEntry{
		entry("🙂 Good", testNow.Add(-10*24*time.Hour)),
	}

	assert.Equal(t, TrendDown, WeeklyTrend(entries, testNow))
}

func TestWeeklyTrendNoEntries(t *testing.T) {
	assert.Equal(t, TrendStable, WeeklyTrend(nil, testNow))
}

func TestAverageScore(t *testing.T) {
	entries := []model.MoodEntry{
		entry("😊 Happy", testNow),   // 4
		entry("🤩 Amazing", testNow), // 5
		entry("😢 Sad", testNow),     // 1
	}

	assert.InDelta(t, 10.0/3.0, AverageScore(entries), 1e-9)
	assert.Zero(t, AverageScore(nil))
}
