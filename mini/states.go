package mini

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/gallery"
	"github.com/vidshelf/vidshelf/log"
	"github.com/vidshelf/vidshelf/media"
	"github.com/vidshelf/vidshelf/query"
	"github.com/vidshelf/vidshelf/video"
	"github.com/vidshelf/vidshelf/where"
)

type state int

const (
	pageState state = iota + 1
	searchState
	gotoState
	pageSizeState
	recordState
	quitState
)

// menu asks for one of the records or binds. Exactly one of the returned values is set.
func (m *mini) menu(message string, records []string, binds ...*bind) (int, *bind, error) {
	options := make([]string, 0, len(records)+len(binds))
	options = append(options, records...)
	for _, b := range binds {
		options = append(options, b.String())
	}

	i, err := m.prompt.Select(message, options)
	if err != nil {
		return -1, nil, err
	}

	if i < len(records) {
		return i, nil, nil
	}
	return -1, binds[i-len(records)], nil
}

// pager renders the page counter followed by the window of page numbers, the current one bracketed.
func pager(snapshot gallery.Snapshot) string {
	pages := lo.Map(snapshot.PageWindow(constant.PageWindowSize), func(p int, _ int) string {
		if p == snapshot.Page {
			return fmt.Sprintf("[%d]", p)
		}
		return strconv.Itoa(p)
	})

	return fmt.Sprintf("page %d/%d  %s", snapshot.Page, snapshot.TotalPages, strings.Join(pages, " "))
}

func (m *mini) handlePageState(ctx context.Context) error {
	snapshot := m.session.State.Snapshot()

	m.title("Videos")
	m.faint(snapshot.Stats())
	if snapshot.Term != "" {
		m.faint("search: " + snapshot.Term)
	}
	if snapshot.ShowPager() {
		m.faint(pager(snapshot))
	}

	records := lo.Map(snapshot.Visible, func(r video.Record, _ int) string {
		return m.truncate(strings.Join(strings.Fields(r.Preview()), " "))
	})

	var binds []*bind
	if snapshot.HasNext() {
		binds = append(binds, next)
	}
	if snapshot.HasPrev() {
		binds = append(binds, prev)
	}
	if snapshot.CanFirst() {
		binds = append(binds, first)
	}
	if snapshot.CanLast() {
		binds = append(binds, last)
	}
	if snapshot.ShowPager() {
		binds = append(binds, goTo)
	}
	binds = append(binds, search)
	if snapshot.Term != "" {
		binds = append(binds, clearSearch)
	}
	if len(m.pageSizes) > 0 {
		binds = append(binds, pageSize)
	}
	binds = append(binds, reload, quit)

	i, b, err := m.menu("Select a video", records, binds...)
	if err != nil {
		return err
	}

	if b == nil {
		m.selected = &snapshot.Visible[i]
		m.newState(recordState)
		return nil
	}

	g := m.session.State
	var navErr error
	switch b {
	case next:
		navErr = g.NextPage()
	case prev:
		navErr = g.PrevPage()
	case first:
		navErr = g.FirstPage()
	case last:
		navErr = g.LastPage()
	case goTo:
		m.newState(gotoState)
	case search:
		m.newState(searchState)
	case clearSearch:
		g.SetSearchTerm("")
	case pageSize:
		m.newState(pageSizeState)
	case reload:
		erase := m.progress("Reloading videos...")
		err := m.session.Reload(ctx)
		erase()
		if err != nil {
			log.WithError(err).Warn("reload failed")
			m.fail(errFailedToLoad.Error())
		}
	case quit:
		m.newState(quitState)
	}

	if navErr != nil {
		m.fail(navErr.Error())
	}

	return nil
}

func (m *mini) handleSearchState() error {
	term, err := m.prompt.Input(
		"Search videos",
		func(string) error { return nil },
		query.SuggestMany,
	)
	if err != nil {
		return err
	}

	m.session.State.SetSearchTerm(term)
	if strings.TrimSpace(term) != "" {
		if err := query.Remember(term, 1); err != nil {
			log.WithError(err).Warn("failed to remember search term")
		}
	}

	if m.session.State.Snapshot().Empty() {
		m.fail("No videos found")
	}

	m.previousState()
	return nil
}

func (m *mini) handleGotoState() error {
	g := m.session.State
	in, err := m.prompt.Input(
		fmt.Sprintf("Go to page (1-%d)", g.TotalPages()),
		func(s string) error {
			page, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || page < 1 || page > g.TotalPages() {
				return &gallery.PageRangeError{Page: page, TotalPages: g.TotalPages()}
			}
			return nil
		},
		nil,
	)
	if err != nil {
		return err
	}

	page := lo.Must(strconv.Atoi(strings.TrimSpace(in)))
	if err := g.SetPage(page); err != nil {
		m.fail(err.Error())
	}

	m.previousState()
	return nil
}

func (m *mini) handlePageSizeState() error {
	options := lo.Map(m.pageSizes, func(size int, _ int) string {
		return fmt.Sprintf("%d per page", size)
	})

	i, err := m.prompt.Select("Videos per page", options)
	if err != nil {
		return err
	}

	if err := m.session.State.SetPageSize(m.pageSizes[i]); err != nil {
		m.fail(err.Error())
	}

	m.previousState()
	return nil
}

func (m *mini) handleRecordState(ctx context.Context) error {
	record := m.selected

	m.title(m.truncate(strings.Join(strings.Fields(record.Preview()), " ")))
	details := []string{record.Resolution(), record.Quality}
	if record.Duration != nil {
		details = append(details, fmt.Sprintf("%.0fs", *record.Duration))
	}
	if record.HasSound != nil {
		details = append(details, lo.Ternary(*record.HasSound, "sound", "muted"))
	}
	m.faint(strings.Join(details, " • "))
	if record.HasMedia() {
		m.faint(record.MediaURL)
	}

	_, b, err := m.menu("Choose an action", nil, play, download, share, back, quit)
	if err != nil {
		return err
	}

	switch b {
	case play:
		if err := media.Play(*record); err != nil {
			m.fail(failure("play", err))
		}
	case download:
		erase := m.progress("Downloading...")
		path, err := media.Download(ctx, *record, where.Downloads())
		erase()
		if err != nil {
			m.fail(failure("download", err))
		} else {
			m.success("Saved to " + path)
		}
	case share:
		if err := media.Share(*record); err != nil {
			m.fail(failure("share", err))
		} else {
			m.success("Link copied to clipboard")
		}
	case back:
		m.selected = nil
		m.previousState()
	case quit:
		m.newState(quitState)
	}

	return nil
}

// failure is the message shown for a failed media action.
func failure(action string, err error) string {
	if errors.Is(err, media.ErrUnavailable) || errors.Is(err, media.ErrShareUnsupported) {
		return err.Error()
	}
	return fmt.Sprintf("%s failed: %s", action, err)
}
