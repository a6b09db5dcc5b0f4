package app_test

import (
	"context"
	"testing"
	"time"

	"sciquest-service/internal/app"
	"sciquest-service/internal/infra/memory"
)

func TestSetCompletedTogglesTimestampAndKeepsNotes(t *testing.T) {
	ctx := context.Background()
	when := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := memory.NewStoreWithClock(func() time.Time { return when })
	service := app.NewProgressServiceWithClock(store, func() time.Time { return when })

	if _, err := service.UpdateNotes(ctx, "u1", 1, "bean sprouted on day 4"); err != nil {
		t.Fatalf("update notes: %v", err)
	}

	completed, err := service.SetCompleted(ctx, "u1", 1, true)
	if err != nil {
		t.Fatalf("set completed: %v", err)
	}
	if !completed.Completed || completed.CompletedAt == nil {
		t.Fatalf("completing must stamp a timestamp, got %+v", completed)
	}
	if !completed.CompletedAt.Equal(when) {
		t.Fatalf("expected clock timestamp, got %v", completed.CompletedAt)
	}
	if completed.Notes == nil || *completed.Notes != "bean sprouted on day 4" {
		t.Fatalf("notes must survive the toggle, got %+v", completed.Notes)
	}

	reverted, err := service.SetCompleted(ctx, "u1", 1, false)
	if err != nil {
		t.Fatalf("unset completed: %v", err)
	}
	if reverted.Completed || reverted.CompletedAt != nil {
		t.Fatalf("un-completing must clear the timestamp, got %+v", reverted)
	}
	if reverted.Notes == nil || *reverted.Notes != "bean sprouted on day 4" {
		t.Fatalf("notes must survive both directions, got %+v", reverted.Notes)
	}
}

func TestUpdateNotesPreservesCompletion(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := app.NewProgressService(store)

	if _, err := service.SetCompleted(ctx, "u1", 1, true); err != nil {
		t.Fatalf("set completed: %v", err)
	}
	record, err := service.UpdateNotes(ctx, "u1", 1, "added more water")
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if !record.Completed || record.CompletedAt == nil {
		t.Fatalf("notes update must not clear completion, got %+v", record)
	}
}

func TestUpdateNotesEmptyStringClears(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	service := app.NewProgressService(store)

	if _, err := service.UpdateNotes(ctx, "u1", 1, "first note"); err != nil {
		t.Fatalf("update notes: %v", err)
	}
	record, err := service.UpdateNotes(ctx, "u1", 1, "")
	if err != nil {
		t.Fatalf("clear notes: %v", err)
	}
	if record.Notes == nil || *record.Notes != "" {
		t.Fatalf("empty string must clear notes, got %+v", record.Notes)
	}
}

func TestRecordStampsCompletion(t *testing.T) {
	ctx := context.Background()
	when := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := memory.NewStoreWithClock(func() time.Time { return when })
	service := app.NewProgressServiceWithClock(store, func() time.Time { return when })

	notes := "done in one sitting"
	record, err := service.Record(ctx, "u1", 2, true, &notes)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if record.CompletedAt == nil || !record.CompletedAt.Equal(when) {
		t.Fatalf("expected completion stamp, got %+v", record.CompletedAt)
	}

	again, err := service.Get(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again == nil || again.Notes == nil || *again.Notes != notes {
		t.Fatalf("expected persisted record with notes, got %+v", again)
	}
}
