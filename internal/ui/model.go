// Package ui provides ephemeral notifications shown at the bottom of a terminal view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

// Model holds the notification currently on screen.
type Model struct {
	notification string
	id           int
}

// ClearNotificationMsg clears the notification with the matching id.
type ClearNotificationMsg struct {
	id int
}

var notificationStyle = lipgloss.NewStyle().Faint(true)

// Notify returns a command that shows text as a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return text
	}
}

// Update shows string messages as notifications and schedules their removal.
// A newer notification is not cleared by the timer of an older one.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		m.notification = msg
		m.id++
		id := m.id
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return ClearNotificationMsg{id: id}
		})
	case ClearNotificationMsg:
		if msg.id == m.id {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notification, empty when there is none.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + notificationStyle.Render(m.notification)
	return strings.Join(lines, "\n")
}
