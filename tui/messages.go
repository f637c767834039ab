package tui

import (
	"time"

	"reelstudio/types"
)

// Messages for the tea program (polling-based)

// SubmittedMsg is sent when the job has been submitted
type SubmittedMsg struct {
	JobID string
	Err   error
}

// JobUpdateMsg is sent when we receive a job snapshot from the server
type JobUpdateMsg struct {
	Job *types.Job
	Err error
}

// TickMsg is sent periodically to trigger polling
type TickMsg struct {
	Time time.Time
}
