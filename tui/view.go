// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/style"
)

// headerHeight is the number of lines rendered around the list in the gallery view.
const headerHeight = 6

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case galleryState, searchState, gotoState:
		output = b.viewGallery()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewGallery() string {
	lines := []string{
		style.Title("Videos") + "  " + style.Faint(b.stats()),
		b.viewSearchLine(),
		"",
	}

	if b.snapshot.Empty() {
		lines = append(lines, style.Fg(color.Yellow)(icon.Get(icon.Search)+" No videos found"))
	} else {
		lines = append(lines, b.galleryC.View())
	}

	if pager := b.viewPager(); pager != "" {
		lines = append(lines, "", pager)
	}

	return b.renderLines(true, lines)
}

// stats is the status line next to the title.
func (b *statefulBubble) stats() string {
	if !b.options.Infinite || b.snapshot.Empty() {
		return b.snapshot.Stats()
	}

	return fmt.Sprintf("Showing 1-%d of %d videos", len(b.feed.Items()), b.snapshot.TotalMatches)
}

func (b *statefulBubble) viewSearchLine() string {
	switch b.state {
	case searchState:
		line := b.inputC.View()
		if suggestion, ok := b.searchSuggestion.Get(); ok {
			line += "  " + style.Faint(fmt.Sprintf("tab: %s", suggestion))
		}
		return line
	case gotoState:
		return b.gotoC.View()
	}

	if b.snapshot.Term != "" {
		return style.Faint("search: ") + style.Fg(color.Purple)(b.snapshot.Term)
	}
	return ""
}

// viewPager renders first/previous, the page number window and next/last. It is hidden for a single page.
func (b *statefulBubble) viewPager() string {
	snapshot := b.snapshot
	if b.options.Infinite || !snapshot.ShowPager() {
		return ""
	}

	button := func(label string, enabled bool) string {
		if enabled {
			return label
		}
		return style.Faint(label)
	}

	parts := []string{
		button("« First", snapshot.CanFirst()),
		button("‹ Prev", snapshot.HasPrev()),
	}

	for _, page := range snapshot.PageWindow(constant.PageWindowSize) {
		label := strconv.Itoa(page)
		if page == snapshot.Page {
			label = style.Tag(style.Base, style.AccentColor)(label)
		}
		parts = append(parts, label)
	}

	parts = append(parts,
		button("Next ›", snapshot.HasNext()),
		button("Last »", snapshot.CanLast()),
		style.Faint(fmt.Sprintf("page %d/%d", snapshot.Page, snapshot.TotalPages)),
	)

	pager := strings.Join(parts, "  ")
	if b.width <= 0 {
		return pager
	}
	return truncate.StringWithTail(pager, uint(b.width), "…")
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " " + errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
