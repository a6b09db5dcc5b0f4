package app

import (
	"context"
	"time"

	"sciquest-service/internal/domain"
)

// ProgressStore abstracts per-user progress persistence. Progress returns
// nil (not an error) when no record exists for the pair yet.
type ProgressStore interface {
	Progress(ctx context.Context, userID string, experimentID int64) (*domain.ExperimentProgress, error)
	AllProgressByUser(ctx context.Context, userID string) ([]domain.ExperimentProgress, error)
	UpsertProgress(ctx context.Context, upsert domain.ProgressUpsert) (domain.ExperimentProgress, error)
}

// ProgressService implements progress tracking with upsert semantics:
// created on first interaction, updated thereafter, last write wins.
type ProgressService struct {
	progress ProgressStore
	now      func() time.Time
}

func NewProgressService(progress ProgressStore) *ProgressService {
	return &ProgressService{progress: progress, now: time.Now}
}

// NewProgressServiceWithClock is test-only for deterministic timestamps.
func NewProgressServiceWithClock(progress ProgressStore, now func() time.Time) *ProgressService {
	return &ProgressService{progress: progress, now: now}
}

func (s *ProgressService) Get(ctx context.Context, userID string, experimentID int64) (*domain.ExperimentProgress, error) {
	return s.progress.Progress(ctx, userID, experimentID)
}

func (s *ProgressService) AllByUser(ctx context.Context, userID string) ([]domain.ExperimentProgress, error) {
	return s.progress.AllProgressByUser(ctx, userID)
}

func (s *ProgressService) Upsert(ctx context.Context, upsert domain.ProgressUpsert) (domain.ExperimentProgress, error) {
	return s.progress.UpsertProgress(ctx, upsert)
}

// Record applies a full client-supplied progress write, last write wins.
// Completing stamps the current time.
func (s *ProgressService) Record(ctx context.Context, userID string, experimentID int64, completed bool, notes *string) (domain.ExperimentProgress, error) {
	upsert := domain.ProgressUpsert{
		UserID:       userID,
		ExperimentID: experimentID,
		Completed:    completed,
		Notes:        notes,
	}
	if completed {
		now := s.now()
		upsert.CompletedAt = &now
	}
	return s.progress.UpsertProgress(ctx, upsert)
}

// UpdateNotes replaces the notes text, preserving completion state. An empty
// string is permitted and clears the notes.
func (s *ProgressService) UpdateNotes(ctx context.Context, userID string, experimentID int64, notes string) (domain.ExperimentProgress, error) {
	existing, err := s.progress.Progress(ctx, userID, experimentID)
	if err != nil {
		return domain.ExperimentProgress{}, err
	}

	upsert := domain.ProgressUpsert{
		UserID:       userID,
		ExperimentID: experimentID,
		Notes:        &notes,
	}
	if existing != nil {
		upsert.Completed = existing.Completed
		upsert.CompletedAt = existing.CompletedAt
	}
	return s.progress.UpsertProgress(ctx, upsert)
}

// SetCompleted toggles completion. Completing stamps the current time;
// un-completing clears the timestamp. Notes survive the toggle either way.
func (s *ProgressService) SetCompleted(ctx context.Context, userID string, experimentID int64, completed bool) (domain.ExperimentProgress, error) {
	existing, err := s.progress.Progress(ctx, userID, experimentID)
	if err != nil {
		return domain.ExperimentProgress{}, err
	}

	upsert := domain.ProgressUpsert{
		UserID:       userID,
		ExperimentID: experimentID,
		Completed:    completed,
	}
	if completed {
		now := s.now()
		upsert.CompletedAt = &now
	}
	if existing != nil {
		upsert.Notes = existing.Notes
	}
	return s.progress.UpsertProgress(ctx, upsert)
}
