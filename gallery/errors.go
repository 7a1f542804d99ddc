package gallery

import (
	"errors"
	"fmt"
)

// ErrInvalidPageSize is returned for page sizes below 1.
var ErrInvalidPageSize = errors.New("page size must be at least 1")

// PageRangeError rejects a page outside the available range.
// Its message is meant to be shown to the user as is.
type PageRangeError struct {
	Page       int
	TotalPages int
}

func (e *PageRangeError) Error() string {
	if e.TotalPages == 0 {
		return "No pages available"
	}
	return fmt.Sprintf("Please enter a page between 1 and %d", e.TotalPages)
}
