// Package popup renders the modal panels the grid shows over the table:
// the read-only order detail and the delete confirmation. A popup renders
// nothing while hidden and is dismissed only by the owning model's key
// handling, never by itself.
package popup

import (
	"github.com/charmbracelet/lipgloss/v2"
)

type Model struct {
	Show    bool
	Message string
	// Content is the rich payload; when set it is rendered instead of the
	// bare message, which becomes the panel title.
	Content string
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

func (m Model) View() string {
	if !m.Show {
		return ""
	}
	body := m.Message
	if m.Content != "" {
		if m.Message != "" {
			body = titleStyle.Render(m.Message) + "\n\n" + m.Content
		} else {
			body = m.Content
		}
	}
	return panelStyle.Render(body)
}
