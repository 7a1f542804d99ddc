// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/style"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state    state
	infinite bool

	quit, forceQuit,
	confirm, back,
	play, download, share,
	search, clearSearch, acceptSearchSuggestion,
	nextPage, prevPage, firstPage, lastPage, gotoPage,
	cyclePageSize,
	reload, retry,
	up, down,
	top, bottom,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		play: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("play")),
		),
		download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		share: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		clearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept search suggestion"),
		),
		nextPage: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→", "next page"),
		),
		prevPage: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←", "prev page"),
		),
		firstPage: key.NewBinding(
			key.WithKeys("home", "<"),
			key.WithHelp("<", "first page"),
		),
		lastPage: key.NewBinding(
			key.WithKeys("end", ">"),
			key.WithHelp(">", "last page"),
		),
		gotoPage: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to page"),
		),
		cyclePageSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "page size"),
		),
		reload: key.NewBinding(
			key.WithKeys("R", "ctrl+r"),
			key.WithHelp("R", "reload"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case galleryState:
		if k.infinite {
			return h(k.play, k.search, k.download, k.share),
				h(k.play, k.download, k.share, k.search, k.clearSearch, k.reload, k.top, k.bottom, k.quit)
		}
		return h(k.play, k.search, k.nextPage, k.prevPage, k.gotoPage),
			h(k.play, k.download, k.share, k.search, k.clearSearch, k.nextPage, k.prevPage, k.firstPage, k.lastPage, k.gotoPage, k.cyclePageSize, k.reload, k.quit)
	case searchState:
		apply := withDescription(k.confirm, "apply")
		return to2(h(apply, k.acceptSearchSuggestion, k.back))
	case gotoState:
		return to2(h(withDescription(k.confirm, "go"), k.back))
	case errorState:
		return to2(h(k.retry, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

// forList keeps cursor movement in the list; paging belongs to the gallery.
func (k *statefulKeymap) forList() list.KeyMap {
	disabled := key.NewBinding(key.WithDisabled())

	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             disabled,
		PrevPage:             disabled,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		Filter:               disabled,
		ClearFilter:          disabled,
		CancelWhileFiltering: disabled,
		AcceptWhileFiltering: disabled,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
