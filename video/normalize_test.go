package video

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidshelf/vidshelf/constant"
)

func TestNormalize(t *testing.T) {
	Convey("Given a snake_case record", t, func() {
		raws, err := Decode(strings.NewReader(`[{
			"video_id": "abc",
			"prompt": "A cat on a roof",
			"first_frame": "a.jpg",
			"last_frame": "b.jpg",
			"url": "https://cdn.example.com/abc.mp4",
			"output_width": 1280,
			"output_height": 720,
			"quality": "720p",
			"duration": 5,
			"is_sound": false
		}]`))
		So(err, ShouldBeNil)
		So(raws, ShouldHaveLength, 1)

		record := Normalize(raws[0])

		Convey("Every field is carried over", func() {
			So(record.ID, ShouldEqual, "abc")
			So(record.Prompt, ShouldEqual, "A cat on a roof")
			So(record.FirstFrameURL, ShouldEqual, "a.jpg")
			So(record.LastFrameURL, ShouldEqual, "b.jpg")
			So(record.MediaURL, ShouldEqual, "https://cdn.example.com/abc.mp4")
			So(record.Width, ShouldEqual, 1280)
			So(record.Height, ShouldEqual, 720)
			So(record.Quality, ShouldEqual, "720p")
			So(*record.Duration, ShouldEqual, 5.0)
			So(*record.HasSound, ShouldBeFalse)
		})
	})

	Convey("Given a PascalCase record", t, func() {
		raws, err := Decode(strings.NewReader(`[{
			"Id": 42,
			"Prompt": "Dog running",
			"FirstFrame": "f.jpg",
			"LastFrame": "l.jpg",
			"Url": "https://cdn.example.com/42.mp4",
			"OutputWidth": "1920",
			"OutputHeight": 1080,
			"Quality": "1080p"
		}]`))
		So(err, ShouldBeNil)

		record := Normalize(raws[0])

		Convey("The same logical fields are recognised", func() {
			So(record.ID, ShouldEqual, "42")
			So(record.Prompt, ShouldEqual, "Dog running")
			So(record.FirstFrameURL, ShouldEqual, "f.jpg")
			So(record.LastFrameURL, ShouldEqual, "l.jpg")
			So(record.MediaURL, ShouldEqual, "https://cdn.example.com/42.mp4")
			So(record.Width, ShouldEqual, 1920)
			So(record.Height, ShouldEqual, 1080)
			So(record.Quality, ShouldEqual, "1080p")
		})

		Convey("Optional fields stay absent", func() {
			So(record.Duration, ShouldBeNil)
			So(record.HasSound, ShouldBeNil)
		})
	})

	Convey("Given a record missing every field", t, func() {
		record := Normalize(Raw{})

		Convey("Documented defaults are applied", func() {
			_, err := uuid.Parse(record.ID)
			So(err, ShouldBeNil)
			So(record.Prompt, ShouldEqual, constant.DefaultPrompt)
			So(record.FirstFrameURL, ShouldEqual, constant.PlaceholderImage)
			So(record.LastFrameURL, ShouldEqual, constant.PlaceholderImage)
			So(record.MediaURL, ShouldEqual, constant.UnavailableMedia)
			So(record.Width, ShouldEqual, 0)
			So(record.Height, ShouldEqual, 0)
			So(record.Quality, ShouldEqual, constant.DefaultQuality)
			So(record.HasMedia(), ShouldBeFalse)
		})

		Convey("Generated identifiers differ per record", func() {
			So(Normalize(Raw{}).ID, ShouldNotEqual, record.ID)
		})
	})

	Convey("Given empty and zero values", t, func() {
		record := Normalize(Raw{
			"prompt":       "",
			"Prompt":       "fallback prompt",
			"output_width": 0,
			"OutputWidth":  640,
			"Url":          "",
			"height":       -5,
		})

		Convey("They fall through to the other spelling or the default", func() {
			So(record.Prompt, ShouldEqual, "fallback prompt")
			So(record.Width, ShouldEqual, 640)
			So(record.MediaURL, ShouldEqual, constant.UnavailableMedia)
			So(record.Height, ShouldEqual, 0)
		})
	})

	Convey("Given a nil record", t, func() {
		So(func() { Normalize(nil) }, ShouldNotPanic)
		So(Normalize(nil).Quality, ShouldEqual, constant.DefaultQuality)
	})

	Convey("Given a document that is not an array", t, func() {
		_, err := Decode(strings.NewReader(`{"video_id": "x"}`))
		So(err, ShouldNotBeNil)
	})
}

func TestNormalizeAll(t *testing.T) {
	Convey("NormalizeAll preserves order and count", t, func() {
		records := NormalizeAll([]Raw{{"video_id": "1"}, {"Id": "2"}, nil})
		So(records, ShouldHaveLength, 3)
		So(records[0].ID, ShouldEqual, "1")
		So(records[1].ID, ShouldEqual, "2")
		So(records[2].ID, ShouldNotBeEmpty)
	})
}

func TestRecord(t *testing.T) {
	Convey("Record helpers", t, func() {
		r := Record{ID: "7", Prompt: strings.Repeat("x", 120), MediaURL: "https://a/b.mp4", Width: 3, Height: 4}

		So(r.HasMedia(), ShouldBeTrue)
		So(r.Resolution(), ShouldEqual, "3x4")
		So(r.Filename(), ShouldEqual, "video_7.mp4")
		So(r.Preview(), ShouldEqual, strings.Repeat("x", 100)+"...")

		r.Prompt = "short"
		So(r.Preview(), ShouldEqual, "short")
	})
}
