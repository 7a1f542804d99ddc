package tui

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/video"
)

func TestListItem(t *testing.T) {
	Convey("Given a record with every field", t, func() {
		viper.Set(key.IconsVariant, "plain")
		record := video.Normalize(video.Raw{
			"video_id":      "1",
			"prompt":        "a cat\nchasing a laser",
			"url":           "https://cdn.example.com/1.mp4",
			"output_width":  1280,
			"output_height": 720,
			"quality":       "720p",
			"duration":      8,
			"is_sound":      true,
		})
		item := &listItem{record: &record}

		Convey("The title is a single line preview", func() {
			So(item.Title(), ShouldEqual, "> a cat chasing a laser")
		})

		Convey("The description lists the metadata", func() {
			description := item.Description()
			for _, part := range []string{"1280x720", "720p", "8s", "sound"} {
				So(description, ShouldContainSubstring, part)
			}
			So(description, ShouldNotContainSubstring, "unavailable")
		})

		Convey("Searches match the prompt", func() {
			So(item.FilterValue(), ShouldEqual, record.Prompt)
		})
	})

	Convey("A record without media is marked unavailable", t, func() {
		record := video.Normalize(video.Raw{})
		item := &listItem{record: &record}
		So(item.Description(), ShouldContainSubstring, "unavailable")
		So(strings.Count(item.Description(), "•"), ShouldEqual, 2)
	})
}
