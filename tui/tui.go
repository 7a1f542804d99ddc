// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/log"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Library   library.Options
	Infinite  bool
	PageSizes []int
	Debounce  time.Duration
}

// OptionsFromConfig builds Options from the active configuration.
func OptionsFromConfig() *Options {
	return &Options{
		Library:   library.OptionsFromConfig(),
		Infinite:  viper.GetBool(key.GalleryInfiniteScroll),
		PageSizes: viper.GetIntSlice(key.GalleryPageSizes),
		Debounce:  time.Duration(viper.GetInt(key.SearchDebounceMs)) * time.Millisecond,
	}
}

// Run initializes and executes the primary Bubble Tea application loop.
// The session, if one was opened, is closed on exit so the current page is remembered.
func Run(options *Options) error {
	bubble := newBubble(options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()

	if bubble.session != nil {
		if closeErr := bubble.session.Close(context.Background()); closeErr != nil {
			log.WithError(closeErr).Warn("closing session")
		}
	}

	return err
}
