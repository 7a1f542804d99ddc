package gallery

import (
	"fmt"

	"github.com/vidshelf/vidshelf/video"
)

// Snapshot is the visible page plus pagination metadata at one point in time.
type Snapshot struct {
	Visible      []video.Record `json:"result"`
	TotalMatches int            `json:"total_matches"`
	Page         int            `json:"page"`
	PageSize     int            `json:"page_size"`
	TotalPages   int            `json:"total_pages"`
	Term         string         `json:"query"`
}

// Empty reports the "no results" state: there is nothing to page through.
func (s Snapshot) Empty() bool {
	return s.TotalPages == 0
}

func (s Snapshot) HasPrev() bool {
	return s.Page > 1
}

func (s Snapshot) HasNext() bool {
	return s.Page < s.TotalPages
}

// CanFirst and CanLast mirror the enabled state of the first/last pager buttons.
func (s Snapshot) CanFirst() bool {
	return s.HasPrev()
}

func (s Snapshot) CanLast() bool {
	return s.HasNext()
}

// ShowPager reports whether a pager is worth rendering.
func (s Snapshot) ShowPager() bool {
	return s.TotalPages > 1
}

// Range returns the 1-based positions of the first and last visible records.
// Both are 0 when nothing matches.
func (s Snapshot) Range() (start, end int) {
	if s.Empty() {
		return 0, 0
	}
	start = (s.Page-1)*s.PageSize + 1
	end = min(s.Page*s.PageSize, s.TotalMatches)
	return start, end
}

// Stats renders the status line shown next to the grid.
func (s Snapshot) Stats() string {
	if s.Empty() {
		return "No videos found"
	}
	start, end := s.Range()
	return fmt.Sprintf("Showing %d-%d of %d videos", start, end, s.TotalMatches)
}

// PageWindow lists up to size page numbers around the current page, for numbered pager buttons.
func (s Snapshot) PageWindow(size int) []int {
	if s.Empty() || size < 1 {
		return nil
	}

	start := max(1, s.Page-size/2)
	end := min(s.TotalPages, start+size-1)
	if end-start+1 < size {
		start = max(1, end-size+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
