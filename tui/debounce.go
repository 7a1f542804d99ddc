package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debouncer coalesces rapid changes: of the values scheduled within the quiet period only the last one fires.
type debouncer struct {
	delay      time.Duration
	generation int
}

type debounceMsg struct {
	generation int
	value      string
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// schedule returns a command delivering value after the quiet period, superseding earlier schedules.
func (d *debouncer) schedule(value string) tea.Cmd {
	d.generation++
	generation := d.generation

	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceMsg{generation: generation, value: value}
	})
}

// cancel drops every pending schedule.
func (d *debouncer) cancel() {
	d.generation++
}

// fire reports whether msg is the latest schedule and should be acted on.
func (d *debouncer) fire(msg debounceMsg) (string, bool) {
	return msg.value, msg.generation == d.generation
}
