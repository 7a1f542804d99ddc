// Package style holds the lipgloss helpers shared by the command line and the gallery views.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vidshelf/vidshelf/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored is a style with both colors set. lipgloss.NoColor{} leaves either one unset.
func Colored(fg, bg lipgloss.TerminalColor) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer painting text in c.
func Fg(c lipgloss.TerminalColor) func(string) string {
	return func(s string) string { return Colored(c, lipgloss.NoColor{}).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a section banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag renders s as a padded label, used for the current page marker.
func Tag(fg, bg lipgloss.TerminalColor) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}
