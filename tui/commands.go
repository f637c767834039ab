package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const pollEvery = 2 * time.Second

// submitJob creates a command that submits the prompt or script
func submitJob(client *StudioClient, prompt, script, aspectRatio string) tea.Cmd {
	return func() tea.Msg {
		var (
			jobID string
			err   error
		)
		if script != "" {
			jobID, err = client.SubmitScript(script, aspectRatio)
		} else {
			jobID, err = client.SubmitPrompt(prompt, aspectRatio)
		}
		return SubmittedMsg{JobID: jobID, Err: err}
	}
}

// pollJob creates a command to fetch the job snapshot
func pollJob(client *StudioClient, jobID string) tea.Cmd {
	return func() tea.Msg {
		job, err := client.GetJob(jobID)
		return JobUpdateMsg{Job: job, Err: err}
	}
}

// tickCmd creates a command that ticks for polling
func tickCmd() tea.Cmd {
	return tea.Tick(pollEvery, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
