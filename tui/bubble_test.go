package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/loader"
	"github.com/vidshelf/vidshelf/store"
)

// catalog serves a document of n records whose prompts alternate between cats and dogs.
func catalog(n int) loader.FetcherFunc {
	return func(context.Context, string) (io.ReadCloser, error) {
		items := make([]string, n)
		for i := range items {
			animal := "dog"
			if i%2 == 0 {
				animal = "cat"
			}
			items[i] = fmt.Sprintf(`{"video_id":"%d","prompt":"%s number %d","url":"https://cdn.example.com/%d.mp4"}`, i+1, animal, i+1, i+1)
		}
		return io.NopCloser(strings.NewReader("[" + strings.Join(items, ",") + "]")), nil
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(b *statefulBubble, text string) {
	for _, r := range text {
		b.Update(keyPress(string(r)))
	}
}

func openBubble(n int, infinite bool) *statefulBubble {
	filesystem.SetMemMapFs()

	b := newBubble(&Options{
		Library: library.Options{
			Sources:  []string{"mem://catalog"},
			PageSize: 10,
			Store:    store.NewFile("/cache/store.json"),
			Loader:   loader.New(loader.WithFetcher("mem", catalog(n))),
		},
		Infinite:  infinite,
		PageSizes: []int{10, 20, 40},
		Debounce:  time.Millisecond,
	})
	b.resize(120, 80)

	msg := b.openLibrary()()
	So(msg, ShouldHaveSameTypeAs, sessionOpenedMsg{})
	b.Update(msg)
	So(b.state, ShouldEqual, galleryState)

	return b
}

func TestPagedGallery(t *testing.T) {
	Convey("Given a paged gallery of 25 videos", t, func() {
		b := openBubble(25, false)

		So(b.galleryC.Items(), ShouldHaveLength, 10)
		So(b.stats(), ShouldEqual, "Showing 1-10 of 25 videos")

		Convey("Arrow keys move between pages", func() {
			b.Update(keyPress("right"))
			So(b.session.State.Page(), ShouldEqual, 2)
			So(b.stats(), ShouldEqual, "Showing 11-20 of 25 videos")

			b.Update(keyPress("left"))
			b.Update(keyPress("left"))
			So(b.session.State.Page(), ShouldEqual, 1)
		})

		Convey("The last page holds the remainder", func() {
			b.Update(keyPress(">"))
			So(b.session.State.Page(), ShouldEqual, 3)
			So(b.galleryC.Items(), ShouldHaveLength, 5)
		})

		Convey("Going to an out of range page is refused with a message", func() {
			b.Update(keyPress("right"))
			b.Update(keyPress(":"))
			So(b.state, ShouldEqual, gotoState)

			typeText(b, "9")
			_, cmd := b.Update(keyPress("enter"))
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldContainSubstring, "Please enter a page between 1 and 3")
			So(b.session.State.Page(), ShouldEqual, 2)
			So(b.state, ShouldEqual, gotoState)

			Convey("And a valid page is applied", func() {
				typeText(b, "3")
				b.Update(keyPress("enter"))
				So(b.session.State.Page(), ShouldEqual, 3)
				So(b.state, ShouldEqual, galleryState)
			})
		})

		Convey("The page size cycles and clamps the page", func() {
			b.Update(keyPress(">"))
			b.Update(keyPress("s"))
			So(b.session.State.PageSize(), ShouldEqual, 20)
			So(b.session.State.Page(), ShouldEqual, 2)
			So(b.galleryC.Items(), ShouldHaveLength, 5)
		})

		Convey("The pager lists the page window", func() {
			pager := b.viewPager()
			So(pager, ShouldContainSubstring, "First")
			So(pager, ShouldContainSubstring, "page 1/3")
		})
	})

	Convey("A gallery with a single page hides the pager", t, func() {
		b := openBubble(4, false)
		So(b.viewPager(), ShouldBeEmpty)
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a gallery of 25 videos on page 2", t, func() {
		b := openBubble(25, false)
		b.Update(keyPress("right"))

		b.Update(keyPress("/"))
		So(b.state, ShouldEqual, searchState)

		Convey("Typing is debounced", func() {
			typeText(b, "CAT")
			So(b.snapshot.Term, ShouldBeEmpty)

			b.Update(debounceMsg{generation: b.debouncer.generation - 1, value: "CA"})
			So(b.snapshot.Term, ShouldBeEmpty)

			b.Update(debounceMsg{generation: b.debouncer.generation, value: "CAT"})
			So(b.snapshot.Term, ShouldEqual, "cat")
			So(b.snapshot.TotalMatches, ShouldEqual, 13)
			So(b.session.State.Page(), ShouldEqual, 1)
		})

		Convey("Enter applies the search immediately", func() {
			typeText(b, "dog")
			b.Update(keyPress("enter"))
			So(b.state, ShouldEqual, galleryState)
			So(b.snapshot.TotalMatches, ShouldEqual, 12)

			Convey("And a late debounce does not override it", func() {
				b.Update(debounceMsg{generation: b.debouncer.generation - 1, value: "do"})
				So(b.snapshot.Term, ShouldEqual, "dog")
			})

			Convey("And escape clears it", func() {
				b.Update(keyPress("esc"))
				So(b.snapshot.Term, ShouldBeEmpty)
				So(b.snapshot.TotalMatches, ShouldEqual, 25)
			})
		})

		Convey("A search without matches shows the empty state", func() {
			typeText(b, "zebra")
			b.Update(keyPress("enter"))
			So(b.snapshot.Empty(), ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "No videos found")
		})
	})
}

func TestInfiniteGallery(t *testing.T) {
	Convey("Given an infinite gallery of 25 videos", t, func() {
		b := openBubble(25, true)
		So(b.galleryC.Items(), ShouldHaveLength, 10)

		Convey("Two triggers at the bottom append exactly one page", func() {
			b.galleryC.Select(9)

			first := b.maybeLoadMore()
			So(first, ShouldNotBeNil)
			So(b.maybeLoadMore(), ShouldBeNil)

			b.Update(first())
			So(b.galleryC.Items(), ShouldHaveLength, 20)
			So(b.stats(), ShouldEqual, "Showing 1-20 of 25 videos")
		})

		Convey("Loading stops after the last page", func() {
			for {
				b.galleryC.Select(len(b.galleryC.Items()) - 1)
				cmd := b.maybeLoadMore()
				if cmd == nil {
					break
				}
				b.Update(cmd())
			}
			So(b.galleryC.Items(), ShouldHaveLength, 25)
		})

		Convey("A new search replaces the feed", func() {
			b.galleryC.Select(9)
			pending := b.maybeLoadMore()

			b.Update(keyPress("/"))
			typeText(b, "dog")
			b.Update(keyPress("enter"))
			So(b.galleryC.Items(), ShouldHaveLength, 10)

			b.Update(pending())
			So(b.galleryC.Items(), ShouldHaveLength, 10)
		})

		Convey("A page arriving while searching still releases the load slot", func() {
			b.galleryC.Select(9)
			pending := b.maybeLoadMore()

			b.Update(keyPress("/"))
			So(b.state, ShouldEqual, searchState)
			b.Update(pending())
			So(b.feed.InFlight(), ShouldBeFalse)
			So(b.galleryC.Items(), ShouldHaveLength, 20)

			b.Update(keyPress("esc"))
			So(b.state, ShouldEqual, galleryState)

			b.galleryC.Select(19)
			next := b.maybeLoadMore()
			So(next, ShouldNotBeNil)
			b.Update(next())
			So(b.galleryC.Items(), ShouldHaveLength, 25)
		})

		Convey("A failed reload restarts the feed", func() {
			b.galleryC.Select(9)
			pending := b.maybeLoadMore()
			So(pending, ShouldNotBeNil)
			So(b.feed.InFlight(), ShouldBeTrue)

			b.Update(keyPress("R"))
			So(b.state, ShouldEqual, loadingState)
			b.Update(reloadFailedMsg{err: errors.New("offline")})
			So(b.state, ShouldEqual, galleryState)
			So(b.feed.InFlight(), ShouldBeFalse)
			So(b.galleryC.Items(), ShouldHaveLength, 10)

			b.Update(pending())
			So(b.galleryC.Items(), ShouldHaveLength, 10)

			b.galleryC.Select(9)
			So(b.maybeLoadMore(), ShouldNotBeNil)
		})
	})
}

func TestLoadFailure(t *testing.T) {
	Convey("Given sources without records", t, func() {
		filesystem.SetMemMapFs()

		b := newBubble(&Options{
			Library: library.Options{
				Sources: []string{"mem://empty"},
				Store:   store.NewFile("/cache/store.json"),
				Loader:  loader.New(loader.WithFetcher("mem", catalog(0))),
			},
		})
		b.resize(120, 80)

		b.Update(b.openLibrary()())
		So(b.state, ShouldEqual, errorState)
		So(b.View(), ShouldContainSubstring, "Failed to load videos")

		_, cmd := b.Update(keyPress("r"))
		So(cmd, ShouldNotBeNil)
		So(b.state, ShouldEqual, loadingState)
	})
}
