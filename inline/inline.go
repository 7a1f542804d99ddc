// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/vidshelf/vidshelf/gallery"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/log"
	"github.com/vidshelf/vidshelf/video"
)

func Run(ctx context.Context, options *Options) (err error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	session, err := library.Open(ctx, options.Library)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, session.Close(ctx))
	}()

	output, err := collect(session.State, options)
	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(options.Out, output)
	}

	for _, record := range output.Result {
		if !record.HasMedia() {
			log.With(log.Fields{"video": record.ID}).Info("skipping video without media")
			continue
		}
		if _, err := fmt.Fprintln(options.Out, record.MediaURL); err != nil {
			return err
		}
	}

	return nil
}

// collect applies the query, page size and selectors to the gallery.
func collect(state *gallery.State, options *Options) (*Output, error) {
	if options.PageSize > 0 {
		if err := state.SetPageSize(options.PageSize); err != nil {
			return nil, err
		}
	}

	state.SetSearchTerm(options.Query)

	pages := []int{state.Page()}
	if selector, ok := options.Pages.Get(); ok {
		var err error
		if pages, err = selector(state.TotalPages()); err != nil {
			return nil, err
		}
	}

	snapshots := make([]gallery.Snapshot, 0, len(pages))
	for _, page := range pages {
		if err := state.SetPage(page); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, state.Snapshot())
	}

	current := state.Snapshot()
	output := &Output{
		Query:        current.Term,
		PageSize:     current.PageSize,
		TotalPages:   current.TotalPages,
		TotalMatches: current.TotalMatches,
		Stats:        stats(current, snapshots),
	}

	if current.Empty() {
		return output, nil
	}

	output.Pages = pages
	output.Result = lo.FlatMap(snapshots, func(s gallery.Snapshot, _ int) []video.Record {
		return s.Visible
	})

	if picker, ok := options.Picker.Get(); ok {
		picked, found := picker(output.Result).Get()
		output.Result = nil
		if found {
			output.Result = []video.Record{picked}
		}
	}

	return output, nil
}

// stats describes the span of records covered by the printed pages.
func stats(current gallery.Snapshot, printed []gallery.Snapshot) string {
	if current.Empty() {
		return current.Stats()
	}
	if len(printed) == 0 {
		return fmt.Sprintf("Showing 0 of %d videos", current.TotalMatches)
	}

	first, last := printed[0], printed[len(printed)-1]
	if len(printed) == 1 {
		return first.Stats()
	}

	start, _ := first.Range()
	_, end := last.Range()
	return fmt.Sprintf("Showing %d-%d of %d videos", start, end, current.TotalMatches)
}
