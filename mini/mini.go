// Package mini implements a lightweight, line-oriented interface for browsing the gallery.
package mini

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/loader"
	"github.com/vidshelf/vidshelf/util"
	"github.com/vidshelf/vidshelf/video"
)

var errFailedToLoad = errors.New("Failed to load videos. Please try again later.")

type Options struct {
	Library library.Options

	// PageSizes are offered by the page size menu.
	PageSizes []int
}

// OptionsFromConfig builds Options from the active configuration.
func OptionsFromConfig() Options {
	return Options{
		Library:   library.OptionsFromConfig(),
		PageSizes: viper.GetIntSlice(key.GalleryPageSizes),
	}
}

type mini struct {
	width, height int

	state         state
	statesHistory util.Stack[state]

	prompt prompter
	out    io.Writer

	session   *library.Session
	selected  *video.Record
	pageSizes []int
}

func newMini(prompt prompter, out io.Writer) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		prompt:        prompt,
		out:           out,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// prompts return to the page they were opened from, never to each other
	if !lo.Contains([]state{searchState, gotoState, pageSizeState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run opens the library and drives the prompts until the user quits.
func Run(ctx context.Context, options *Options) error {
	p := &surveyPrompter{pageSize: 15}
	m := newMini(p, os.Stdout)

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		p.pageSize = max(5, h-6)
	}

	return m.run(ctx, options)
}

func (m *mini) run(ctx context.Context, options *Options) (err error) {
	erase := m.progress("Loading videos...")
	session, err := library.Open(ctx, options.Library)
	erase()
	if err != nil {
		if errors.Is(err, loader.ErrNoRecords) {
			return errFailedToLoad
		}
		return err
	}

	m.session = session
	m.pageSizes = options.PageSizes
	defer func() {
		err = errors.Join(err, session.Close(ctx))
	}()

	if session.FromCache {
		m.success("Restored from cache")
	}

	m.state = pageState
	for m.state != quitState {
		if err := m.handleState(ctx); err != nil {
			if isInterrupt(err) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *mini) handleState(ctx context.Context) error {
	switch m.state {
	case pageState:
		return m.handlePageState(ctx)
	case searchState:
		return m.handleSearchState()
	case gotoState:
		return m.handleGotoState()
	case pageSizeState:
		return m.handlePageSizeState()
	case recordState:
		return m.handleRecordState(ctx)
	}

	return nil
}
