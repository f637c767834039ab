package types

import "time"

// JobKind distinguishes single-prompt jobs from multi-scene director jobs.
type JobKind string

const (
	KindSingle   JobKind = "single"
	KindDirector JobKind = "director"
)

// JobState is the lifecycle state of a generation job.
type JobState string

const (
	StateQueued     JobState = "queued"
	StateSplitting  JobState = "splitting"
	StateGenerating JobState = "generating"
	StateStitching  JobState = "stitching"
	StateUploading  JobState = "uploading"
	StateComplete   JobState = "complete"
	StateError      JobState = "error"
)

// Terminal reports whether the state is final.
func (s JobState) Terminal() bool {
	return s == StateComplete || s == StateError
}

// SceneState is the per-scene status inside a director job.
type SceneState string

const (
	ScenePending    SceneState = "pending"
	SceneGenerating SceneState = "generating"
	SceneDone       SceneState = "done"
	SceneFailed     SceneState = "failed"
)

// Scene is one unit of a director job: its prompt and generation progress.
type Scene struct {
	Index     int        `json:"index"`
	Prompt    string     `json:"prompt"`
	State     SceneState `json:"state"`
	VideoPath string     `json:"video_path,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// LogEntry is a single progress line with timestamp.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Job is the full record of one generation job. Clients poll this shape
// via GET /api/jobs/:id until State is terminal.
type Job struct {
	ID        string     `json:"id"`
	Kind      JobKind    `json:"kind"`
	State     JobState   `json:"state"`
	Prompt    string     `json:"prompt,omitempty"`
	Script    string     `json:"script,omitempty"`
	Scenes    []Scene    `json:"scenes,omitempty"`
	VideoPath string     `json:"video_path,omitempty"`
	VideoURL  string     `json:"video_url,omitempty"`
	YouTubeID string     `json:"youtube_id,omitempty"`
	Error     string     `json:"error,omitempty"`
	Logs      []LogEntry `json:"logs,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
