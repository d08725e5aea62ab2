package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/moodlog/moodlog-go/internal/model"
)

var ErrEntryNotFound = errors.New("mood entry not found")

// MoodRepository handles mood entry persistence operations.
type MoodRepository struct {
	db *sql.DB
}

// NewMoodRepository creates a new MoodRepository.
func NewMoodRepository(db *sql.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Create inserts a new mood entry. The caller assigns the id and timestamp.
func (r *MoodRepository) Create(ctx context.Context, entry *model.MoodEntry) error {
	query := `INSERT INTO mood_entries (id, user_id, mood, note, recorded_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Mood, entry.Note, entry.RecordedAt,
	)
	return err
}

// ListRecent retrieves up to limit entries for a user, newest first.
func (r *MoodRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]model.MoodEntry, error) {
	query := `SELECT id, user_id, mood, note, recorded_at, created_at
		FROM mood_entries WHERE user_id = ? ORDER BY recorded_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.MoodEntry
	for rows.Next() {
		var e model.MoodEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Mood, &e.Note, &e.RecordedAt, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// DeleteByID deletes an entry only if it belongs to userID. A missing entry
// and another user's entry are indistinguishable: both report ErrEntryNotFound.
func (r *MoodRepository) DeleteByID(ctx context.Context, userID int64, entryID string) error {
	query := `DELETE FROM mood_entries WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, entryID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
