package gallery

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFeed(t *testing.T) {
	Convey("Given a feed over 25 records in pages of 10", t, func() {
		s := New(10)
		s.Ingest(raws(25))
		feed := NewFeed(s)

		first := feed.Reset()
		So(first, ShouldHaveLength, 10)

		Convey("Two rapid triggers append exactly one page", func() {
			ticket, ok := feed.Begin()
			So(ok, ShouldBeTrue)
			So(ticket.Page, ShouldEqual, 2)

			_, again := feed.Begin()
			So(again, ShouldBeFalse)
			So(feed.InFlight(), ShouldBeTrue)

			page, ok := feed.Complete(ticket)
			So(ok, ShouldBeTrue)
			So(page, ShouldHaveLength, 10)
			So(feed.Items(), ShouldHaveLength, 20)
			So(feed.InFlight(), ShouldBeFalse)
			So(s.Page(), ShouldEqual, 2)
		})

		Convey("Concurrent triggers claim the slot once", func() {
			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				claimed int
			)
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, ok := feed.Begin(); ok {
						mu.Lock()
						claimed++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()
			So(claimed, ShouldEqual, 1)
		})

		Convey("Triggers stop after the last page", func() {
			for {
				ticket, ok := feed.Begin()
				if !ok {
					break
				}
				_, done := feed.Complete(ticket)
				So(done, ShouldBeTrue)
			}
			So(feed.Items(), ShouldHaveLength, 25)
			So(feed.Exhausted(), ShouldBeTrue)
		})

		Convey("A new search replaces the items and discards pending loads", func() {
			ticket, ok := feed.Begin()
			So(ok, ShouldBeTrue)

			s.SetSearchTerm("number 1")
			items := feed.Reset()
			So(items, ShouldHaveLength, 10)
			So(items[0].Prompt, ShouldEqual, "video number 1")

			_, applied := feed.Complete(ticket)
			So(applied, ShouldBeFalse)
			So(feed.Items(), ShouldHaveLength, 10)
			So(feed.InFlight(), ShouldBeFalse)
		})
	})

	Convey("Given a feed with no matches", t, func() {
		s := New(10)
		s.Ingest(nil)
		feed := NewFeed(s)

		So(feed.Reset(), ShouldBeEmpty)
		So(feed.Exhausted(), ShouldBeTrue)
		_, ok := feed.Begin()
		So(ok, ShouldBeFalse)
	})
}
