// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vidshelf/vidshelf/gallery"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/media"
	"github.com/vidshelf/vidshelf/query"
	"github.com/vidshelf/vidshelf/video"
	"github.com/vidshelf/vidshelf/where"
)

type (
	sessionOpenedMsg struct {
		session *library.Session
	}

	reloadedMsg struct {
		raws []video.Raw
	}

	reloadFailedMsg struct {
		err error
	}

	pageLoadedMsg struct {
		ticket gallery.Ticket
	}
)

func (b *statefulBubble) openLibrary() tea.Cmd {
	options := b.options.Library
	return func() tea.Msg {
		session, err := library.Open(context.Background(), options)
		if err != nil {
			return err
		}
		return sessionOpenedMsg{session: session}
	}
}

// reloadLibrary fetches the sources off the event loop; the records are applied when reloadedMsg arrives.
func (b *statefulBubble) reloadLibrary() tea.Cmd {
	session := b.session
	return func() tea.Msg {
		raws, err := session.Fetch(context.Background())
		if err != nil {
			return reloadFailedMsg{err: err}
		}
		return reloadedMsg{raws: raws}
	}
}

// loadNextPage claims the single page-load slot of the feed. It returns nil when a load is
// already in flight or there is nothing left to load.
func (b *statefulBubble) loadNextPage() tea.Cmd {
	ticket, ok := b.feed.Begin()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return pageLoadedMsg{ticket: ticket}
	}
}

// applySearch filters the gallery by term right away, dropping any pending debounced search.
func (b *statefulBubble) applySearch(term string) {
	b.debouncer.cancel()
	b.session.State.SetSearchTerm(term)

	if b.options.Infinite {
		b.resetFeed()
	}
}

// goToPage validates the go-to-page input. It returns the message to show, empty on success.
func (b *statefulBubble) goToPage(input string) string {
	page, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return (&gallery.PageRangeError{TotalPages: b.snapshot.TotalPages}).Error()
	}

	if err := b.session.State.SetPage(page); err != nil {
		return err.Error()
	}

	return ""
}

// cyclePageSize switches to the next configured page size.
func (b *statefulBubble) cyclePageSize() tea.Cmd {
	sizes := b.options.PageSizes
	if len(sizes) == 0 {
		return nil
	}

	next := sizes[0]
	for i, size := range sizes {
		if size == b.snapshot.PageSize {
			next = sizes[(i+1)%len(sizes)]
			break
		}
	}

	if err := b.session.State.SetPageSize(next); err != nil {
		return notify(icon.Fail, err.Error())
	}

	return notify(icon.Page, fmt.Sprintf("%d per page", next))
}

func (b *statefulBubble) selected() mo.Option[video.Record] {
	item, ok := b.galleryC.SelectedItem().(*listItem)
	if !ok {
		return mo.None[video.Record]()
	}
	return mo.Some(*item.record)
}

func (b *statefulBubble) play() tea.Cmd {
	record, ok := b.selected().Get()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		if err := media.Play(record); err != nil {
			return failure("Failed to play video", err)
		}
		return icon.Get(icon.Play) + " Playing"
	}
}

func (b *statefulBubble) download() tea.Cmd {
	record, ok := b.selected().Get()
	if !ok {
		return nil
	}

	return tea.Batch(
		notify(icon.Progress, "Downloading "+record.Filename()),
		func() tea.Msg {
			path, err := media.Download(context.Background(), record, where.Downloads())
			if err != nil {
				return failure("Download failed", err)
			}
			return icon.Get(icon.Download) + " Saved " + path
		},
	)
}

func (b *statefulBubble) share() tea.Cmd {
	record, ok := b.selected().Get()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		if err := media.Share(record); err != nil {
			return failure("Share failed", err)
		}
		return icon.Get(icon.Share) + " Link copied"
	}
}

// rememberSearch stores an applied term for future suggestions.
func rememberSearch(term string) tea.Cmd {
	return func() tea.Msg {
		_ = query.Remember(term, 1)
		return nil
	}
}

// failure renders an action error as a notification. Sentinel errors are shown as is.
func failure(action string, err error) string {
	if errors.Is(err, media.ErrUnavailable) || errors.Is(err, media.ErrShareUnsupported) {
		return icon.Get(icon.Fail) + " " + err.Error()
	}
	return fmt.Sprintf("%s %s: %v", icon.Get(icon.Fail), action, err)
}

func notify(i icon.Icon, text string) tea.Cmd {
	return func() tea.Msg {
		return icon.Get(i) + " " + text
	}
}
