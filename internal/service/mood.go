package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodlog/moodlog-go/internal/model"
	"github.com/moodlog/moodlog-go/internal/mood"
	"github.com/moodlog/moodlog-go/internal/repository"
)

var (
	ErrMoodRequired       = errors.New("mood is required")
	ErrEntryNotFound      = errors.New("mood entry not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// listLimit caps how many entries the read path retrieves. Every aggregate is
// computed over this window, so the dashboard average is an average of the
// most recent 50 entries, not a lifetime one.
const listLimit = 50

// MoodService handles mood entry business logic.
type MoodService struct {
	repo *repository.MoodRepository
}

// NewMoodService creates a new MoodService.
func NewMoodService(repo *repository.MoodRepository) *MoodService {
	return &MoodService{repo: repo}
}

// CreateEntry records a mood for a user, stamping the current time.
func (s *MoodService) CreateEntry(ctx context.Context, userID int64, req model.CreateMoodRequest) (model.MoodEntryResponse, error) {
	if strings.TrimSpace(req.Mood) == "" {
		return model.MoodEntryResponse{}, ErrMoodRequired
	}

	entry := &model.MoodEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		Mood:       req.Mood,
		Note:       req.Note,
		RecordedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		slog.Error("mood entry create failed", "user_id", userID, "error", err)
		return model.MoodEntryResponse{}, ErrStorageUnavailable
	}

	return entryToResponse(entry), nil
}

// ListRecent returns a user's entries, newest first, capped at 50. A storage
// failure degrades to an empty list instead of an error so the dashboard never
// hard-fails on a transient read problem. Do not change this to propagate the
// error: create and delete surface storage failures, the read path does not.
func (s *MoodService) ListRecent(ctx context.Context, userID int64) []model.MoodEntryResponse {
	entries, err := s.repo.ListRecent(ctx, userID, listLimit)
	if err != nil {
		slog.Warn("mood list read failed, returning empty set", "user_id", userID, "error", err)
		return []model.MoodEntryResponse{}
	}

	result := make([]model.MoodEntryResponse, len(entries))
	for i := range entries {
		result[i] = entryToResponse(&entries[i])
	}
	return result
}

// DeleteEntry removes an entry owned by userID. Another user's entry reports
// not-found rather than leaking its existence.
func (s *MoodService) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	if err := s.repo.DeleteByID(ctx, userID, entryID); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		slog.Error("mood entry delete failed", "user_id", userID, "error", err)
		return ErrStorageUnavailable
	}
	return nil
}

// Summary computes dashboard aggregates over the user's recent entries. Like
// ListRecent, a storage failure degrades to the empty-input aggregates.
func (s *MoodService) Summary(ctx context.Context, userID int64) model.MoodSummaryResponse {
	entries, err := s.repo.ListRecent(ctx, userID, listLimit)
	if err != nil {
		slog.Warn("mood summary read failed, aggregating empty set", "user_id", userID, "error", err)
		entries = nil
	}
	return buildSummary(entries, time.Now())
}

// buildSummary runs the aggregation engine over entries with an injected now.
func buildSummary(entries []model.MoodEntry, now time.Time) model.MoodSummaryResponse {
	series := mood.TrendSeries(entries, now)

	return model.MoodSummaryResponse{
		TotalEntries: len(entries),
		AverageScore: mood.AverageScore(entries),
		Streak:       mood.Streak(entries, now),
		WeeklyTrend:  mood.WeeklyTrend(entries, now),
		Trend: model.TrendSeriesResponse{
			Labels: series.Labels,
			Scores: series.Scores,
		},
		Frequency:    countsToResponse(mood.Frequency(entries)),
		Distribution: countsToResponse(mood.Distribution(entries)),
	}
}

func countsToResponse(counts []mood.Count) []model.MoodCountResponse {
	result := make([]model.MoodCountResponse, len(counts))
	for i, c := range counts {
		result[i] = model.MoodCountResponse{Mood: c.Name, Count: c.Count}
	}
	return result
}

func entryToResponse(entry *model.MoodEntry) model.MoodEntryResponse {
	kind := mood.ParseKind(entry.Mood)
	return model.MoodEntryResponse{
		ID:         entry.ID,
		Mood:       entry.Mood,
		Note:       entry.Note,
		Score:      kind.Score(),
		Emoji:      kind.Emoji(),
		RecordedAt: entry.RecordedAt,
	}
}
