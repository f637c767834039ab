package store

import (
	"context"
	"errors"
	"sync"

	"reelstudio/types"
)

// ErrNotFound is returned when a job id is unknown.
var ErrNotFound = errors.New("job not found")

// JobStore persists job records for polling clients. Save is called on
// every state change, so implementations overwrite whole records.
type JobStore interface {
	Save(ctx context.Context, job types.Job) error
	Get(ctx context.Context, id string) (*types.Job, error)
	Recent(ctx context.Context, n int) ([]types.Job, error)
}

// Memory is the single-process store: a mutex-guarded map plus insertion
// order for Recent.
type Memory struct {
	mu    sync.RWMutex
	jobs  map[string]types.Job
	order []string
}

func NewMemory() *Memory {
	return &Memory{jobs: make(map[string]types.Job)}
}

// Save implements JobStore.
func (m *Memory) Save(ctx context.Context, job types.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, seen := m.jobs[job.ID]; !seen {
		m.order = append(m.order, job.ID)
	}
	m.jobs[job.ID] = job
	return nil
}

// Get implements JobStore.
func (m *Memory) Get(ctx context.Context, id string) (*types.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &job, nil
}

// Recent implements JobStore, newest first.
func (m *Memory) Recent(ctx context.Context, n int) ([]types.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n <= 0 || n > len(m.order) {
		n = len(m.order)
	}
	out := make([]types.Job, 0, n)
	for i := len(m.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.jobs[m.order[i]])
	}
	return out, nil
}
