// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/style"
	"github.com/vidshelf/vidshelf/video"
)

// listItem implements the list.Item interface for a video record.
type listItem struct {
	record *video.Record
}

func toItems(records []video.Record) []list.Item {
	items := make([]list.Item, len(records))
	for i := range records {
		items[i] = &listItem{record: &records[i]}
	}
	return items
}

// Title is the prompt preview, prefixed with the video icon.
func (t *listItem) Title() string {
	title := strings.Join(strings.Fields(t.record.Preview()), " ")
	if prefix := icon.Get(icon.Video); prefix != "" {
		return prefix + " " + title
	}
	return title
}

// Description lists resolution, quality and, when known, duration and sound.
func (t *listItem) Description() string {
	faint := lipgloss.NewStyle().Foreground(style.FaintColor)

	parts := []string{
		faint.Render(t.record.Resolution()),
		lipgloss.NewStyle().Foreground(style.AccentColor).Render(t.record.Quality),
	}

	if d := t.record.Duration; d != nil {
		parts = append(parts, faint.Render(fmt.Sprintf("%.0fs", *d)))
	}

	if s := t.record.HasSound; s != nil {
		if *s {
			parts = append(parts, faint.Render("sound"))
		} else {
			parts = append(parts, faint.Render("muted"))
		}
	}

	if !t.record.HasMedia() {
		parts = append(parts, lipgloss.NewStyle().Foreground(style.ErrorColor).Render("unavailable"))
	} else if viper.GetBool(key.TUIShowURLs) {
		parts = append(parts, faint.Render(t.record.MediaURL))
	}

	return strings.Join(parts, " • ")
}

// FilterValue returns the prompt, which is what searches match against.
func (t *listItem) FilterValue() string {
	return t.record.Prompt
}
