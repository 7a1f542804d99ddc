package gallery

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSnapshot(t *testing.T) {
	Convey("Given a snapshot on page 2 of 3", t, func() {
		snapshot := Snapshot{TotalMatches: 25, Page: 2, PageSize: 10, TotalPages: 3}

		So(snapshot.Empty(), ShouldBeFalse)
		So(snapshot.CanFirst(), ShouldBeTrue)
		So(snapshot.CanLast(), ShouldBeTrue)
		So(snapshot.ShowPager(), ShouldBeTrue)
		So(snapshot.Stats(), ShouldEqual, "Showing 11-20 of 25 videos")
	})

	Convey("On the last page the range is cut to the match count", t, func() {
		snapshot := Snapshot{TotalMatches: 25, Page: 3, PageSize: 10, TotalPages: 3}
		start, end := snapshot.Range()
		So(start, ShouldEqual, 21)
		So(end, ShouldEqual, 25)
		So(snapshot.HasNext(), ShouldBeFalse)
	})

	Convey("A single page hides the pager", t, func() {
		So(Snapshot{TotalMatches: 4, Page: 1, PageSize: 10, TotalPages: 1}.ShowPager(), ShouldBeFalse)
	})

	Convey("PageWindow", t, func() {
		Convey("is centred on the current page", func() {
			snapshot := Snapshot{Page: 20, TotalPages: 50}
			So(snapshot.PageWindow(10), ShouldResemble, []int{15, 16, 17, 18, 19, 20, 21, 22, 23, 24})
		})

		Convey("is pinned to the start", func() {
			snapshot := Snapshot{Page: 2, TotalPages: 50}
			So(snapshot.PageWindow(10), ShouldResemble, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
		})

		Convey("shifts left near the end", func() {
			snapshot := Snapshot{Page: 49, TotalPages: 50}
			So(snapshot.PageWindow(10), ShouldResemble, []int{41, 42, 43, 44, 45, 46, 47, 48, 49, 50})
		})

		Convey("lists every page when there are few", func() {
			snapshot := Snapshot{Page: 2, TotalPages: 3}
			So(snapshot.PageWindow(10), ShouldResemble, []int{1, 2, 3})
		})

		Convey("is empty without results", func() {
			So(Snapshot{Page: 1}.PageWindow(10), ShouldBeEmpty)
		})
	})
}
