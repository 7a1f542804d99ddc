// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/gallery"
	"github.com/vidshelf/vidshelf/internal/ui"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/style"
	"github.com/vidshelf/vidshelf/util"
)

// statefulBubble encapsulates the application state, its component models and the open gallery session.
type statefulBubble struct {
	state   state
	loading bool

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	gotoC     textinput.Model
	galleryC  list.Model
	helpC     help.Model
	debouncer *debouncer

	session  *library.Session
	feed     *gallery.Feed
	snapshot gallery.Snapshot

	progressStatus   string
	lastError        error
	searchSuggestion mo.Option[string]

	width, height int
	notifier      *ui.Model

	options *Options
}

// raiseError dispatches an error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

// setState performs a transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	listWidth := width - xx
	b.galleryC.SetSize(listWidth, max(height-yy-headerHeight, 1))
	b.galleryC.Help.Width = listWidth
	b.helpC.Width = listWidth
	b.inputC.Width = listWidth
}

// startLoading enters the loading state with the given status line.
func (b *statefulBubble) startLoading(status string) {
	b.loading = true
	b.progressStatus = status
	b.setState(loadingState)
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.progressStatus = ""
}

// attach binds an opened session to the bubble and renders its first snapshot.
func (b *statefulBubble) attach(session *library.Session) {
	b.session = session
	b.feed = gallery.NewFeed(session.State)
	session.State.OnChange(b.onChange)
	b.onChange(session.State.Snapshot())

	if b.options.Infinite {
		b.resetFeed()
	}
}

// onChange receives every new snapshot. In paged mode the list shows exactly the visible page;
// in infinite mode the feed owns the list contents.
func (b *statefulBubble) onChange(snapshot gallery.Snapshot) {
	b.snapshot = snapshot
	if b.options.Infinite {
		return
	}

	b.galleryC.SetItems(toItems(snapshot.Visible))
	b.galleryC.ResetSelected()
}

// resetFeed replaces the infinite feed with the first page of the current results.
func (b *statefulBubble) resetFeed() {
	b.galleryC.SetItems(toItems(b.feed.Reset()))
	b.galleryC.ResetSelected()
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	keymap.infinite = options.Infinite

	debounce := options.Debounce
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	bubble := statefulBubble{
		keymap:    keymap,
		notifier:  &ui.Model{},
		debouncer: newDebouncer(debounce),
		options:   options,
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.galleryC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.galleryC.KeyMap = keymap.forList()
	bubble.galleryC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.galleryC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.galleryC.SetShowTitle(false)
	bubble.galleryC.Styles.NoItems = paddingStyle
	bubble.galleryC.SetShowPagination(false)
	bubble.galleryC.SetShowStatusBar(false)
	bubble.galleryC.SetFilteringEnabled(false)
	bubble.galleryC.SetShowHelp(false)

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search videos (v%s)", constant.Version)
	bubble.inputC.CharLimit = 120
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.gotoC = textinput.New()
	bubble.gotoC.Placeholder = "page"
	bubble.gotoC.CharLimit = 9
	bubble.gotoC.Prompt = "Go to page: "

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.startLoading("Loading videos...")
	return &bubble
}
