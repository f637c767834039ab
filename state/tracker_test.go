package state

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"reelstudio/config"
	"reelstudio/store"
	"reelstudio/types"
)

func newTracker(t *testing.T) (*Tracker, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	job := types.Job{ID: "job-1", Kind: types.KindDirector, State: types.StateQueued}
	return NewTracker(job, st), st
}

func TestTrackerStateTransitions(t *testing.T) {
	tr, st := newTracker(t)

	tr.SetState(types.StateGenerating)

	if got := tr.Snapshot().State; got != types.StateGenerating {
		t.Errorf("snapshot state: got %s", got)
	}

	// Every change writes through to the store
	saved, err := st.Get(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("store get: %v", err)
	}
	if saved.State != types.StateGenerating {
		t.Errorf("stored state: got %s", saved.State)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set on flush")
	}
}

func TestTrackerSceneUpdates(t *testing.T) {
	tr, _ := newTracker(t)

	tr.SetScenes([]types.Scene{
		{Index: 0, Prompt: "a", State: types.ScenePending},
		{Index: 1, Prompt: "b", State: types.ScenePending},
	})

	tr.SceneGenerating(0)
	tr.SceneDone(0, "/tmp/scene-0.mp4")
	tr.SceneGenerating(1)
	tr.SceneFailed(1, "blocked")

	job := tr.Snapshot()
	if job.Scenes[0].State != types.SceneDone || job.Scenes[0].VideoPath != "/tmp/scene-0.mp4" {
		t.Errorf("scene 0: %+v", job.Scenes[0])
	}
	if job.Scenes[1].State != types.SceneFailed || job.Scenes[1].Error != "blocked" {
		t.Errorf("scene 1: %+v", job.Scenes[1])
	}

	// Out-of-range indexes are ignored
	tr.SceneDone(5, "nope")
	if len(tr.Snapshot().Scenes) != 2 {
		t.Error("out-of-range scene update changed the plan")
	}
}

func TestTrackerFail(t *testing.T) {
	tr, st := newTracker(t)

	tr.Fail(errors.New("the prompt may have been blocked"))

	job := tr.Snapshot()
	if job.State != types.StateError {
		t.Errorf("state: got %s", job.State)
	}
	if job.Error != "the prompt may have been blocked" {
		t.Errorf("error: got %q", job.Error)
	}
	if len(job.Logs) == 0 {
		t.Fatal("expected the failure to be logged")
	}

	saved, err := st.Get(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("store get: %v", err)
	}
	if saved.State != types.StateError {
		t.Errorf("stored state: got %s", saved.State)
	}
}

func TestTrackerLogRing(t *testing.T) {
	tr, _ := newTracker(t)

	for i := 0; i < config.MaxJobLogs+10; i++ {
		tr.Log(fmt.Sprintf("line %d", i))
	}

	job := tr.Snapshot()
	if len(job.Logs) != config.MaxJobLogs {
		t.Fatalf("expected %d logs, got %d", config.MaxJobLogs, len(job.Logs))
	}
	// Oldest entries dropped, newest kept
	if job.Logs[len(job.Logs)-1].Message != fmt.Sprintf("line %d", config.MaxJobLogs+9) {
		t.Errorf("last log: %q", job.Logs[len(job.Logs)-1].Message)
	}
	if job.Logs[0].Message != "line 10" {
		t.Errorf("first log: %q", job.Logs[0].Message)
	}
}

func TestTrackerSnapshotIsACopy(t *testing.T) {
	tr, _ := newTracker(t)
	tr.SetScenes([]types.Scene{{Index: 0, Prompt: "a", State: types.ScenePending}})

	snap := tr.Snapshot()
	snap.Scenes[0].State = types.SceneFailed
	snap.State = types.StateError

	job := tr.Snapshot()
	if job.Scenes[0].State != types.ScenePending {
		t.Error("mutating a snapshot leaked into the tracker")
	}
	if job.State == types.StateError {
		t.Error("mutating a snapshot changed tracker state")
	}
}
