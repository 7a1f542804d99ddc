// Package gallery owns the video list of a session and derives the visible page from
// the active search term, page number and page size.
package gallery

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vidshelf/vidshelf/video"
)

// State is the single owner of the master and filtered record lists.
// It is not safe for concurrent use; callers drive it from one event loop.
type State struct {
	master   []video.Record
	filtered []video.Record
	term     string
	page     int
	pageSize int

	observers []func(Snapshot)
}

// New creates an empty gallery showing pageSize records per page.
// Non-positive sizes fall back to DefaultPageSize.
func New(pageSize int) *State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return &State{
		page:     1,
		pageSize: pageSize,
	}
}

// DefaultPageSize is used when no valid page size is configured.
const DefaultPageSize = 40

// OnChange registers fn to receive a fresh snapshot after every state change.
func (s *State) OnChange(fn func(Snapshot)) {
	s.observers = append(s.observers, fn)
}

func (s *State) notify() {
	if len(s.observers) == 0 {
		return
	}

	snapshot := s.Snapshot()
	for _, fn := range s.observers {
		fn(snapshot)
	}
}

// Ingest normalizes raws into the master list, clears the search term and returns to page 1.
// An empty input yields an empty gallery, not an error.
func (s *State) Ingest(raws []video.Raw) {
	s.master = video.NormalizeAll(raws)
	s.filtered = s.master
	s.term = ""
	s.page = 1
	s.notify()
}

// Records returns the master list.
func (s *State) Records() []video.Record {
	return s.master
}

// Filtered returns every record matching the active search term, across all pages.
func (s *State) Filtered() []video.Record {
	return s.filtered
}

// Term returns the active, normalized search term.
func (s *State) Term() string {
	return s.term
}

// Page returns the current page number.
func (s *State) Page() int {
	return s.page
}

// PageSize returns the number of records per page.
func (s *State) PageSize() int {
	return s.pageSize
}

// TotalPages is the page count of the filtered list, 0 when nothing matches.
func (s *State) TotalPages() int {
	return totalPages(len(s.filtered), s.pageSize)
}

func totalPages(count, size int) int {
	return (count + size - 1) / size
}

// SetSearchTerm filters the master list down to records whose prompt contains term,
// ignoring case and surrounding whitespace, and returns to page 1.
// An empty term restores the full list.
func (s *State) SetSearchTerm(term string) {
	s.term = strings.ToLower(strings.TrimSpace(term))

	if s.term == "" {
		s.filtered = s.master
	} else {
		s.filtered = lo.Filter(s.master, func(r video.Record, _ int) bool {
			return strings.Contains(strings.ToLower(r.Prompt), s.term)
		})
	}

	s.page = 1
	s.notify()
}

// SetPage moves to page. Pages outside [1, TotalPages] are rejected with a
// *PageRangeError and the current page is kept.
func (s *State) SetPage(page int) error {
	total := s.TotalPages()
	if page < 1 || page > total {
		return &PageRangeError{Page: page, TotalPages: total}
	}

	if page != s.page {
		s.page = page
		s.notify()
	}

	return nil
}

// RestorePage applies a persisted page number when it is valid for the current list.
// It reports whether the page was applied; otherwise the gallery stays on page 1.
func (s *State) RestorePage(page int) bool {
	return s.SetPage(page) == nil
}

// SetPageSize changes the number of records per page and clamps the current page into range.
func (s *State) SetPageSize(size int) error {
	if size < 1 {
		return ErrInvalidPageSize
	}

	s.pageSize = size
	if total := s.TotalPages(); s.page > total {
		s.page = max(total, 1)
	}

	s.notify()
	return nil
}

// NextPage advances one page if there is one.
func (s *State) NextPage() error {
	return s.SetPage(s.page + 1)
}

// PrevPage goes back one page if there is one.
func (s *State) PrevPage() error {
	return s.SetPage(s.page - 1)
}

// FirstPage jumps to page 1.
func (s *State) FirstPage() error {
	return s.SetPage(1)
}

// LastPage jumps to the final page.
func (s *State) LastPage() error {
	return s.SetPage(s.TotalPages())
}

// Snapshot derives the visible slice and pagination metadata. It never mutates the state.
func (s *State) Snapshot() Snapshot {
	total := s.TotalPages()

	visible := []video.Record{}
	if total > 0 {
		start := (s.page - 1) * s.pageSize
		end := min(start+s.pageSize, len(s.filtered))
		visible = make([]video.Record, end-start)
		copy(visible, s.filtered[start:end])
	}

	return Snapshot{
		Visible:      visible,
		TotalMatches: len(s.filtered),
		Page:         s.page,
		PageSize:     s.pageSize,
		TotalPages:   total,
		Term:         s.term,
	}
}
