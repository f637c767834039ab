package tui

import (
	"fmt"
	"strings"

	"reelstudio/types"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🎬 ReelStudio"))
	b.WriteString("\n\n")

	// What will be (or was) submitted
	if m.Script != "" {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Script: %s", truncate(m.Script, 80))))
	} else {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Prompt: %s", truncate(m.Prompt, 80))))
	}
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	if m.JobID != "" {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Job: %s", m.JobID)))
		b.WriteString("\n")
		if !m.Connected && m.Job != nil {
			b.WriteString(ErrorStyle.Render("(lost contact with server, retrying)"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Scene progress for director jobs
	if m.Job != nil && len(m.Job.Scenes) > 0 {
		b.WriteString(InfoStyle.Render("🎞  Scenes:"))
		b.WriteString("\n")
		for _, scene := range m.Job.Scenes {
			line := fmt.Sprintf("   %d. [%s] %s", scene.Index+1, scene.State, truncate(scene.Prompt, 60))
			b.WriteString(InfoStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Logs
	if m.Job != nil && len(m.Job.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		logs := m.Job.Logs
		if len(logs) > 8 {
			logs = logs[len(logs)-8:]
		}
		for _, entry := range logs {
			b.WriteString(InfoStyle.Render("   " + entry.Message))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Result
	if m.Job != nil && m.Job.State == types.StateComplete {
		result := fmt.Sprintf("Video ready\n\nFile: %s", m.Job.VideoPath)
		if m.Job.VideoURL != "" {
			result += fmt.Sprintf("\nURL:  %s", m.Job.VideoURL)
		}
		b.WriteString(BoxStyle.Render(result))
		b.WriteString("\n\n")
	}

	// Help text
	if !m.Submitted {
		b.WriteString(InfoStyle.Render("Press 'g' to generate | Press 'q' or Ctrl+C to quit"))
	} else if m.Job != nil && m.Job.State == types.StateError {
		b.WriteString(InfoStyle.Render("Press 'r' to try again | Press 'q' or Ctrl+C to quit"))
	} else if m.Job != nil && m.Job.State == types.StateComplete {
		b.WriteString(HighlightStyle.Render("Press 'q' or Ctrl+C to exit"))
	} else {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
