package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/loader"
	"github.com/vidshelf/vidshelf/video"
)

// catalog is a document of n records whose prompts alternate between cats and dogs.
// Every fifth record has no media URL.
func catalog(n int) loader.FetcherFunc {
	return func(context.Context, string) (io.ReadCloser, error) {
		items := make([]string, n)
		for i := range items {
			animal := lo.Ternary(i%2 == 0, "cat", "dog")
			url := lo.Ternary(i%5 == 4, "", fmt.Sprintf("https://cdn.example.com/%d.mp4", i+1))
			items[i] = fmt.Sprintf(`{"video_id":"%d","prompt":"%s number %d","url":"%s"}`, i+1, animal, i+1, url)
		}
		return io.NopCloser(strings.NewReader("[" + strings.Join(items, ",") + "]")), nil
	}
}

func run(options *Options) (string, error) {
	filesystem.SetMemMapFs()

	var out bytes.Buffer
	options.Out = &out
	options.Library = library.Options{
		Sources:  []string{"mem://catalog"},
		PageSize: 10,
		Loader:   loader.New(loader.WithFetcher("mem", catalog(25))),
	}

	err := Run(context.Background(), options)
	return out.String(), err
}

func decode(s string) Output {
	var output Output
	So(json.Unmarshal([]byte(s), &output), ShouldBeNil)
	return output
}

func TestRunJson(t *testing.T) {
	Convey("Given 25 videos at 10 per page", t, func() {
		Convey("The first page is printed by default", func() {
			out, err := run(&Options{Json: true})
			So(err, ShouldBeNil)

			output := decode(out)
			So(output.Pages, ShouldResemble, []int{1})
			So(output.Result, ShouldHaveLength, 10)
			So(output.TotalPages, ShouldEqual, 3)
			So(output.Stats, ShouldEqual, "Showing 1-10 of 25 videos")
		})

		Convey("A query with every page selected returns all matches in order", func() {
			pages := lo.Must(ParsePages("all"))
			out, err := run(&Options{Json: true, Query: " Cat ", Pages: mo.Some(pages)})
			So(err, ShouldBeNil)

			output := decode(out)
			So(output.Query, ShouldEqual, "cat")
			So(output.Pages, ShouldResemble, []int{1, 2})
			So(output.TotalMatches, ShouldEqual, 13)
			So(output.Result, ShouldHaveLength, 13)
			So(output.Result[0].ID, ShouldEqual, "1")
			So(output.Result[12].ID, ShouldEqual, "25")
			So(output.Stats, ShouldEqual, "Showing 1-13 of 13 videos")
		})

		Convey("The page size can be overridden", func() {
			pages := lo.Must(ParsePages("last"))
			out, err := run(&Options{Json: true, PageSize: 20, Pages: mo.Some(pages)})
			So(err, ShouldBeNil)

			output := decode(out)
			So(output.Pages, ShouldResemble, []int{2})
			So(output.Result, ShouldHaveLength, 5)
			So(output.Stats, ShouldEqual, "Showing 21-25 of 25 videos")
		})

		Convey("No matches is an empty result, not an error", func() {
			pages := lo.Must(ParsePages("2"))
			out, err := run(&Options{Json: true, Query: "zebra", Pages: mo.Some(pages)})
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, `"result": []`)

			output := decode(out)
			So(output.Stats, ShouldEqual, "No videos found")
			So(output.Pages, ShouldBeEmpty)
		})

		Convey("A range past the last page prints nothing and says so", func() {
			pages := lo.Must(ParsePages("5-9"))
			out, err := run(&Options{Json: true, Pages: mo.Some(pages)})
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, `"result": []`)

			output := decode(out)
			So(output.Result, ShouldBeEmpty)
			So(output.Stats, ShouldEqual, "Showing 0 of 25 videos")
		})

		Convey("A page out of range is reported", func() {
			pages := lo.Must(ParsePages("5"))
			_, err := run(&Options{Json: true, Pages: mo.Some(pages)})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "Please enter a page between 1 and 3")
		})

		Convey("A picker keeps a single record", func() {
			picker := lo.Must(ParsePicker("last"))
			out, err := run(&Options{Json: true, Picker: mo.Some(picker)})
			So(err, ShouldBeNil)

			output := decode(out)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].ID, ShouldEqual, "10")
		})
	})
}

func TestRunText(t *testing.T) {
	Convey("Text mode prints one media URL per line and skips unavailable videos", t, func() {
		out, err := run(&Options{})
		So(err, ShouldBeNil)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		So(lines, ShouldHaveLength, 8)
		So(lines[0], ShouldEqual, "https://cdn.example.com/1.mp4")
		So(out, ShouldNotContainSubstring, "/5.mp4")
	})

	Convey("A picked record prints a single URL", t, func() {
		picker := lo.Must(ParsePicker("2"))
		out, err := run(&Options{Query: "dog", Picker: mo.Some(picker)})
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "https://cdn.example.com/6.mp4\n")
	})
}

func TestParsePages(t *testing.T) {
	Convey("ParsePages", t, func() {
		pages := func(description string, total int) []int {
			selector, err := ParsePages(description)
			So(err, ShouldBeNil)
			result, err := selector(total)
			So(err, ShouldBeNil)
			return result
		}

		So(pages("first", 4), ShouldResemble, []int{1})
		So(pages("last", 4), ShouldResemble, []int{4})
		So(pages("all", 3), ShouldResemble, []int{1, 2, 3})
		So(pages("2-3", 4), ShouldResemble, []int{2, 3})
		So(pages("2-9", 4), ShouldResemble, []int{2, 3, 4})
		So(pages("5-9", 4), ShouldBeEmpty)
		So(pages("first", 0), ShouldBeEmpty)
		So(pages("3", 0), ShouldBeEmpty)

		for _, invalid := range []string{"", "x", "3-1", "0-2", "a-b"} {
			_, err := ParsePages(invalid)
			So(err, ShouldNotBeNil)
		}
	})
}

func TestParsePicker(t *testing.T) {
	Convey("ParsePicker", t, func() {
		records := []video.Record{{ID: "a"}, {ID: "b"}, {ID: "c"}}
		pick := func(description string) string {
			picker, err := ParsePicker(description)
			So(err, ShouldBeNil)
			return picker(records).OrEmpty().ID
		}

		So(pick("first"), ShouldEqual, "a")
		So(pick("last"), ShouldEqual, "c")
		So(pick("1"), ShouldEqual, "b")
		So(pick("99"), ShouldEqual, "c")

		picker := lo.Must(ParsePicker("first"))
		So(picker(nil).IsAbsent(), ShouldBeTrue)

		_, err := ParsePicker("middle")
		So(err, ShouldNotBeNil)
	})
}

func TestSchema(t *testing.T) {
	Convey("The schema describes the output document", t, func() {
		data, err := json.Marshal(Schema())
		So(err, ShouldBeNil)

		schema := string(data)
		So(schema, ShouldContainSubstring, `"total_matches"`)
		So(schema, ShouldContainSubstring, `"video_id"`)
		So(schema, ShouldContainSubstring, "Free text description used for search")
	})
}
