package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidshelf/vidshelf/gallery"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/video"
)

type (
	// PageSelector picks the pages to print out of totalPages.
	PageSelector func(totalPages int) ([]int, error)
	// Picker narrows the selected records down to one.
	Picker func([]video.Record) mo.Option[video.Record]
)

type Options struct {
	Out      io.Writer
	Library  library.Options
	Json     bool
	Query    string
	PageSize int
	Pages    mo.Option[PageSelector]
	Picker   mo.Option[Picker]
}

// ParsePicker parses "first", "last" or a zero-based index, which is clamped to the last record.
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(records []video.Record) mo.Option[video.Record] {
			if len(records) == 0 {
				return mo.None[video.Record]()
			}
			return mo.Some(records[0])
		}, nil
	case "last":
		return func(records []video.Record) mo.Option[video.Record] {
			if len(records) == 0 {
				return mo.None[video.Record]()
			}
			return mo.Some(records[len(records)-1])
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid video selector: %s", description)
	}

	return func(records []video.Record) mo.Option[video.Record] {
		if len(records) == 0 {
			return mo.None[video.Record]()
		}
		return mo.Some(records[min(int(idx), len(records)-1)])
	}, nil
}

// ParsePages parses a page selector.
// Format: "first", "last", "all", "3" or "2-5". Ranges are clamped to the available pages.
func ParsePages(description string) (PageSelector, error) {
	switch description {
	case "first":
		return func(total int) ([]int, error) {
			return lo.Ternary(total > 0, []int{1}, nil), nil
		}, nil
	case "last":
		return func(total int) ([]int, error) {
			return lo.Ternary(total > 0, []int{total}, nil), nil
		}, nil
	case "all":
		return func(total int) ([]int, error) {
			return lo.RangeFrom(1, total), nil
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		a, err1 := strconv.Atoi(from)
		b, err2 := strconv.Atoi(to)
		if err1 != nil || err2 != nil || a < 1 || a > b {
			return nil, fmt.Errorf("invalid page range: %s", description)
		}

		return func(total int) ([]int, error) {
			end := min(b, total)
			if a > end {
				return nil, nil
			}
			return lo.RangeFrom(a, end-a+1), nil
		}, nil
	}

	page, err := strconv.Atoi(description)
	if err != nil {
		return nil, fmt.Errorf("invalid page selector: %s", description)
	}

	return func(total int) ([]int, error) {
		if total == 0 {
			return nil, nil
		}
		if page < 1 || page > total {
			return nil, &gallery.PageRangeError{Page: page, TotalPages: total}
		}
		return []int{page}, nil
	}, nil
}
