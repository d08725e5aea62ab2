package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/moodlog/moodlog-go/internal/model"
)

func newMoodRepoMock(t *testing.T) (*MoodRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewMoodRepository(db), mock
}

func TestMoodCreate(t *testing.T) {
	repo, mock := newMoodRepoMock(t)

	recorded := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mood_entries")).
		WithArgs("entry-1", int64(1), "😊 Happy", nil, recorded).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &model.MoodEntry{
		ID:         "entry-1",
		UserID:     1,
		Mood:       "😊 Happy",
		RecordedAt: recorded,
	}
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestMoodListRecent_ScopedToUserWithLimit(t *testing.T) {
	repo, mock := newMoodRepoMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "mood", "note", "recorded_at", "created_at"}).
		AddRow("e2", 1, "😢 Sad", nil, now, now).
		AddRow("e1", 1, "😊 Happy", "fine", now.Add(-time.Hour), now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(int64(1), 50).
		WillReturnRows(rows)

	entries, err := repo.ListRecent(context.Background(), 1, 50)
	if err != nil {
		t.Fatalf("ListRecent() unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "e2" {
		t.Errorf("first entry = %q, want newest first", entries[0].ID)
	}
	if entries[1].Note == nil || *entries[1].Note != "fine" {
		t.Errorf("note = %v, want %q", entries[1].Note, "fine")
	}
}

func TestMoodListRecent_EmptyResult(t *testing.T) {
	repo, mock := newMoodRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "mood", "note", "recorded_at", "created_at"}))

	entries, err := repo.ListRecent(context.Background(), 1, 50)
	if err != nil {
		t.Fatalf("ListRecent() unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestMoodDeleteByID_OwnedEntry(t *testing.T) {
	repo, mock := newMoodRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mood_entries")).
		WithArgs(int64(1), "entry-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByID(context.Background(), 1, "entry-1"); err != nil {
		t.Fatalf("DeleteByID() unexpected error: %v", err)
	}
}

func TestMoodDeleteByID_NotOwnedReportsNotFound(t *testing.T) {
	repo, mock := newMoodRepoMock(t)

	// User 2 deleting user 1's entry matches zero rows, indistinguishable
	// from a missing entry.
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mood_entries")).
		WithArgs(int64(2), "entry-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteByID(context.Background(), 2, "entry-1"); err != ErrEntryNotFound {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}
