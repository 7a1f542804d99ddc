package gallery

import (
	"sync/atomic"

	"github.com/vidshelf/vidshelf/video"
)

// Feed pages through a State append-only, for infinite scrolling.
// At most one page load is in flight; triggers that arrive meanwhile are dropped, not queued.
type Feed struct {
	state      *State
	items      []video.Record
	loaded     int
	generation uint64
	inFlight   atomic.Bool
}

// Ticket identifies a claimed page load.
type Ticket struct {
	Page       int
	generation uint64
}

// NewFeed creates a feed over state. Call Reset before the first Begin.
func NewFeed(state *State) *Feed {
	return &Feed{state: state}
}

// Reset replaces the feed contents with page 1 of the current filtered list.
// Loads started before the reset are discarded when they complete.
func (f *Feed) Reset() []video.Record {
	f.generation++
	f.inFlight.Store(false)

	_ = f.state.FirstPage()
	snapshot := f.state.Snapshot()

	f.items = append([]video.Record(nil), snapshot.Visible...)
	f.loaded = min(1, snapshot.TotalPages)
	return f.items
}

// Begin claims the load slot for the next page. It returns false when a load is
// already in flight or every page has been appended.
func (f *Feed) Begin() (Ticket, bool) {
	if f.Exhausted() {
		return Ticket{}, false
	}

	if !f.inFlight.CompareAndSwap(false, true) {
		return Ticket{}, false
	}

	return Ticket{Page: f.loaded + 1, generation: f.generation}, true
}

// Complete appends the page claimed by t and releases the slot.
// It returns the appended records, or false for a ticket issued before the last Reset.
func (f *Feed) Complete(t Ticket) ([]video.Record, bool) {
	if t.generation != f.generation {
		return nil, false
	}
	defer f.inFlight.Store(false)

	if err := f.state.SetPage(t.Page); err != nil {
		return nil, false
	}

	page := f.state.Snapshot().Visible
	f.items = append(f.items, page...)
	f.loaded = t.Page
	return page, true
}

// Items returns everything appended so far.
func (f *Feed) Items() []video.Record {
	return f.items
}

// InFlight reports whether a page load is pending.
func (f *Feed) InFlight() bool {
	return f.inFlight.Load()
}

// Exhausted reports whether the last page has been appended.
func (f *Feed) Exhausted() bool {
	return f.loaded >= f.state.TotalPages()
}
