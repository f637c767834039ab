package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"reelstudio/types"
)

// Model represents the TUI client state (thin client)
type Model struct {
	// Studio API client
	Client *StudioClient

	// What will be submitted on 'g'
	Prompt      string
	Script      string
	AspectRatio string

	// Local state (synced from the server)
	Submitted bool
	JobID     string
	Job       *types.Job
	Err       error
	Connected bool
}

// NewModel creates a new TUI model
func NewModel(serverURL, prompt, script, aspectRatio string) Model {
	return Model{
		Client:      NewStudioClient(serverURL),
		Prompt:      prompt,
		Script:      script,
		AspectRatio: aspectRatio,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	if m.Err != nil {
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	}
	if !m.Submitted {
		return HighlightStyle.Render("Ready") + "\n\n" +
			InfoStyle.Render("Press 'g' to submit the job")
	}
	if m.Job == nil {
		return StatusStyle.Render("Submitting job...")
	}

	switch m.Job.State {
	case types.StateQueued:
		return StatusStyle.Render("Queued...")
	case types.StateSplitting:
		return StatusStyle.Render("Splitting script into scenes...")
	case types.StateGenerating:
		return StatusStyle.Render("Generating video...")
	case types.StateStitching:
		return StatusStyle.Render("Stitching scenes...")
	case types.StateUploading:
		return StatusStyle.Render("Uploading video...")
	case types.StateComplete:
		return HighlightStyle.Render("COMPLETE")
	case types.StateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %s", m.Job.Error))
	default:
		return StatusStyle.Render(string(m.Job.State))
	}
}
