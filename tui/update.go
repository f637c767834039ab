package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"reelstudio/types"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "g":
			if !m.Submitted {
				m.Submitted = true
				m.Err = nil
				return m, submitJob(m.Client, m.Prompt, m.Script, m.AspectRatio)
			}
		case "r":
			// Retry after a failed submit or job
			if m.Err != nil || (m.Job != nil && m.Job.State == types.StateError) {
				m.Submitted = true
				m.Err = nil
				m.JobID = ""
				m.Job = nil
				return m, submitJob(m.Client, m.Prompt, m.Script, m.AspectRatio)
			}
		}

	case SubmittedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			m.Submitted = false
			return m, nil
		}
		m.JobID = msg.JobID
		return m, pollJob(m.Client, m.JobID)

	case JobUpdateMsg:
		if msg.Err != nil {
			m.Connected = false
			return m, nil
		}
		m.Connected = true
		m.Job = msg.Job
		return m, nil

	case TickMsg:
		var cmds []tea.Cmd
		if m.JobID != "" && (m.Job == nil || !m.Job.State.Terminal()) {
			cmds = append(cmds, pollJob(m.Client, m.JobID))
		}
		cmds = append(cmds, tickCmd())
		return m, tea.Batch(cmds...)
	}

	return m, nil
}
