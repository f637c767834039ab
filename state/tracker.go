package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"reelstudio/config"
	"reelstudio/logger"
	"reelstudio/store"
	"reelstudio/types"
)

// Tracker holds one job's live state with thread-safe access and writes
// every change through to the job store so polling clients see it.
type Tracker struct {
	mu      sync.Mutex
	job     types.Job
	maxLogs int
	store   store.JobStore
}

// NewTracker wraps a job record. The initial record is persisted by the
// caller; the tracker persists everything after that.
func NewTracker(job types.Job, st store.JobStore) *Tracker {
	return &Tracker{
		job:     job,
		maxLogs: config.MaxJobLogs,
		store:   st,
	}
}

// Log appends a progress line (ring-buffered) and persists.
func (t *Tracker) Log(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.appendLogLocked(message)
	t.flushLocked()
}

// SetState transitions the job and persists.
func (t *Tracker) SetState(s types.JobState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job.State = s
	t.flushLocked()
}

// SetScenes installs the scene plan of a director job.
func (t *Tracker) SetScenes(scenes []types.Scene) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job.Scenes = scenes
	t.flushLocked()
}

// SceneDone marks a scene finished with its clip path.
func (t *Tracker) SceneDone(index int, videoPath string) {
	t.setScene(index, types.SceneDone, videoPath, "")
}

// SceneGenerating marks a scene as the one currently being generated.
func (t *Tracker) SceneGenerating(index int) {
	t.setScene(index, types.SceneGenerating, "", "")
}

// SceneFailed marks a scene failed with its error message.
func (t *Tracker) SceneFailed(index int, errMsg string) {
	t.setScene(index, types.SceneFailed, "", errMsg)
}

func (t *Tracker) setScene(index int, s types.SceneState, videoPath, errMsg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if index < 0 || index >= len(t.job.Scenes) {
		return
	}
	t.job.Scenes[index].State = s
	if videoPath != "" {
		t.job.Scenes[index].VideoPath = videoPath
	}
	if errMsg != "" {
		t.job.Scenes[index].Error = errMsg
	}
	t.flushLocked()
}

// SetVideo records the finished video location.
func (t *Tracker) SetVideo(path, url string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job.VideoPath = path
	t.job.VideoURL = url
	t.flushLocked()
}

// Complete transitions to the terminal success state.
func (t *Tracker) Complete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job.State = types.StateComplete
	t.appendLogLocked("Job complete")
	t.flushLocked()
}

// Fail records the error, appends it to the log, and transitions to the
// terminal error state.
func (t *Tracker) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.job.State = types.StateError
	t.job.Error = err.Error()
	t.appendLogLocked(fmt.Sprintf("Error: %v", err))
	t.flushLocked()
}

// Snapshot returns a copy of the current job record.
func (t *Tracker) Snapshot() types.Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	job := t.job
	job.Logs = append([]types.LogEntry{}, t.job.Logs...)
	job.Scenes = append([]types.Scene{}, t.job.Scenes...)
	return job
}

// appendLogLocked must be called with the lock held.
func (t *Tracker) appendLogLocked(message string) {
	t.job.Logs = append(t.job.Logs, types.LogEntry{
		Timestamp: time.Now(),
		Message:   message,
	})
	if len(t.job.Logs) > t.maxLogs {
		t.job.Logs = t.job.Logs[len(t.job.Logs)-t.maxLogs:]
	}
}

// flushLocked persists the current record; must be called with the lock held.
func (t *Tracker) flushLocked() {
	t.job.UpdatedAt = time.Now()
	job := t.job
	job.Logs = append([]types.LogEntry{}, t.job.Logs...)
	job.Scenes = append([]types.Scene{}, t.job.Scenes...)

	if err := t.store.Save(context.Background(), job); err != nil {
		logger.Error().Err(err).Str("job", t.job.ID).Msg("failed to persist job state")
	}
}
