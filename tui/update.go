// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"errors"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/loader"
	"github.com/vidshelf/vidshelf/query"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Ephemeral notifications arrive as plain strings.
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd
	case spinner.TickMsg:
		if b.loading {
			var tick tea.Cmd
			b.spinnerC, tick = b.spinnerC.Update(msg)
			return b, tea.Batch(cmd, tick)
		}
		return b, cmd
	case debounceMsg:
		if term, ok := b.debouncer.fire(msg); ok && b.session != nil {
			b.applySearch(term)
		}
		return b, cmd
	case pageLoadedMsg:
		// the load slot is released whatever state the reply arrives in
		if b.feed != nil {
			if page, ok := b.feed.Complete(msg.ticket); ok {
				b.galleryC.SetItems(append(b.galleryC.Items(), toItems(page)...))
			}
		}
		if b.state == galleryState {
			return b, tea.Batch(cmd, b.maybeLoadMore())
		}
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var next tea.Cmd
	switch b.state {
	case loadingState:
		next = b.updateLoading(msg)
	case galleryState:
		next = b.updateGallery(msg)
	case searchState:
		next = b.updateSearch(msg)
	case gotoState:
		next = b.updateGoto(msg)
	case errorState:
		next = b.updateError(msg)
	}

	return b, tea.Batch(cmd, next)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case sessionOpenedMsg:
		b.stopLoading()
		b.attach(msg.session)
		b.setState(galleryState)

		if msg.session.FromCache {
			return notify(icon.Cache, "Restored from cache")
		}
	case reloadedMsg:
		b.stopLoading()
		b.session.Apply(context.Background(), msg.raws)
		if b.options.Infinite {
			b.resetFeed()
		}
		b.setState(galleryState)
		return notify(icon.Success, "Reloaded")
	case reloadFailedMsg:
		b.stopLoading()
		if b.options.Infinite {
			b.resetFeed()
		}
		b.setState(galleryState)
		return notify(icon.Fail, "Reload failed: "+msg.err.Error())
	case error:
		b.stopLoading()
		if errors.Is(msg, loader.ErrNoRecords) {
			msg = errFailedToLoad
		}
		b.raiseError(msg)
	}

	return nil
}

var errFailedToLoad = errors.New("Failed to load videos. Please try again later.")

func (b *statefulBubble) updateGallery(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		state := b.session.State

		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.search):
			b.inputC.SetValue(b.snapshot.Term)
			b.inputC.CursorEnd()
			b.setState(searchState)
			return b.inputC.Focus()
		case bubblesKey.Matches(msg, b.keymap.clearSearch) && b.snapshot.Term != "":
			b.inputC.SetValue("")
			b.applySearch("")
			return nil
		case bubblesKey.Matches(msg, b.keymap.play):
			return b.play()
		case bubblesKey.Matches(msg, b.keymap.download):
			return b.download()
		case bubblesKey.Matches(msg, b.keymap.share):
			return b.share()
		case bubblesKey.Matches(msg, b.keymap.reload):
			b.startLoading("Reloading sources...")
			return tea.Batch(b.spinnerC.Tick, b.reloadLibrary())
		}

		if !b.options.Infinite {
			switch {
			case bubblesKey.Matches(msg, b.keymap.nextPage):
				_ = state.NextPage()
				return nil
			case bubblesKey.Matches(msg, b.keymap.prevPage):
				_ = state.PrevPage()
				return nil
			case bubblesKey.Matches(msg, b.keymap.firstPage):
				_ = state.FirstPage()
				return nil
			case bubblesKey.Matches(msg, b.keymap.lastPage):
				_ = state.LastPage()
				return nil
			case bubblesKey.Matches(msg, b.keymap.gotoPage) && !b.snapshot.Empty():
				b.gotoC.SetValue("")
				b.setState(gotoState)
				return b.gotoC.Focus()
			case bubblesKey.Matches(msg, b.keymap.cyclePageSize):
				return b.cyclePageSize()
			}
		}
	}

	var cmd tea.Cmd
	b.galleryC, cmd = b.galleryC.Update(msg)
	return tea.Batch(cmd, b.maybeLoadMore())
}

// maybeLoadMore triggers the next infinite-scroll page once the cursor reaches the last item.
func (b *statefulBubble) maybeLoadMore() tea.Cmd {
	if !b.options.Infinite || len(b.galleryC.Items()) == 0 {
		return nil
	}

	if b.galleryC.Index() < len(b.galleryC.Items())-1 {
		return nil
	}

	return b.loadNextPage()
}

func (b *statefulBubble) updateSearch(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			term := b.inputC.Value()
			b.applySearch(term)
			b.inputC.Blur()
			b.searchSuggestion = mo.None[string]()
			b.setState(galleryState)
			return rememberSearch(term)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.inputC.CursorEnd()
			b.searchSuggestion = mo.None[string]()
			return b.debouncer.schedule(b.inputC.Value())
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.searchSuggestion = mo.None[string]()
			b.setState(galleryState)
			return nil
		}
	}

	before := b.inputC.Value()

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	value := b.inputC.Value()
	if value == before {
		return cmd
	}

	if value != "" {
		if suggestion, ok := query.Suggest(value).Get(); ok && suggestion != value {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else {
		b.searchSuggestion = mo.None[string]()
	}

	return tea.Batch(cmd, b.debouncer.schedule(value))
}

func (b *statefulBubble) updateGoto(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if problem := b.goToPage(b.gotoC.Value()); problem != "" {
				b.gotoC.SetValue("")
				return notify(icon.Fail, problem)
			}
			b.gotoC.Blur()
			b.setState(galleryState)
			return nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.gotoC.Blur()
			b.setState(galleryState)
			return nil
		}
	}

	var cmd tea.Cmd
	b.gotoC, cmd = b.gotoC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.retry):
			b.lastError = nil
			b.startLoading("Loading videos...")
			return tea.Batch(b.spinnerC.Tick, b.openLibrary())
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
	}
	return nil
}
