package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"reelstudio/types"
)

func TestMemorySaveAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	job := types.Job{ID: "a", State: types.StateQueued, Prompt: "hello"}
	if err := m.Save(ctx, job); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := m.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Prompt != "hello" {
		t.Errorf("prompt: got %q", got.Prompt)
	}

	// Saving again overwrites the record
	job.State = types.StateComplete
	if err := m.Save(ctx, job); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = m.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != types.StateComplete {
		t.Errorf("state after overwrite: got %s", got.State)
	}
}

func TestMemoryGetUnknown(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRecentOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := m.Save(ctx, types.Job{ID: fmt.Sprintf("job-%d", i)}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	recent, err := m.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(recent))
	}
	// Newest first
	for i, want := range []string{"job-4", "job-3", "job-2"} {
		if recent[i].ID != want {
			t.Errorf("recent[%d]: got %s, want %s", i, recent[i].ID, want)
		}
	}

	// n larger than the store returns everything
	all, err := m.Recent(ctx, 100)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 jobs, got %d", len(all))
	}

	// Re-saving an existing job does not duplicate it in the order
	if err := m.Save(ctx, types.Job{ID: "job-0", State: types.StateComplete}); err != nil {
		t.Fatalf("save: %v", err)
	}
	all, _ = m.Recent(ctx, 100)
	if len(all) != 5 {
		t.Errorf("expected 5 jobs after overwrite, got %d", len(all))
	}
}
