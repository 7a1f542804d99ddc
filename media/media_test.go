package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/video"
)

func TestDownload(t *testing.T) {
	Convey("Given a media server", t, func() {
		filesystem.SetMemMapFs()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/clip.mp4" {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, "mp4 bytes")
		}))
		defer server.Close()

		ctx := context.Background()
		dir := "/downloads"

		Convey("The video is saved as video_<id>.mp4", func() {
			record := video.Normalize(video.Raw{"video_id": "42", "url": server.URL + "/clip.mp4"})

			path, err := Download(ctx, record, dir)
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join(dir, "video_42.mp4"))

			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "mp4 bytes")
		})

		Convey("A failed transfer leaves no file behind", func() {
			record := video.Normalize(video.Raw{"video_id": "7", "url": server.URL + "/gone.mp4"})

			_, err := Download(ctx, record, dir)
			So(err, ShouldNotBeNil)

			exists, _ := filesystem.API().Exists(filepath.Join(dir, "video_7.mp4"))
			So(exists, ShouldBeFalse)
		})

		Convey("Records without media are refused", func() {
			record := video.Normalize(video.Raw{"video_id": "1"})
			So(record.MediaURL, ShouldEqual, constant.UnavailableMedia)

			_, err := Download(ctx, record, dir)
			So(err, ShouldEqual, ErrUnavailable)
		})
	})
}

func TestShare(t *testing.T) {
	Convey("Given a stubbed clipboard", t, func() {
		var copied string
		unsupported := false

		defer func(u func() bool, w func(string) error) {
			clipboardUnsupported, writeClipboard = u, w
		}(clipboardUnsupported, writeClipboard)

		clipboardUnsupported = func() bool { return unsupported }
		writeClipboard = func(text string) error {
			copied = text
			return nil
		}

		record := video.Normalize(video.Raw{"url": "https://cdn.example.com/a.mp4"})

		Convey("The media URL is copied", func() {
			So(Share(record), ShouldBeNil)
			So(copied, ShouldEqual, "https://cdn.example.com/a.mp4")
		})

		Convey("Without a clipboard sharing is unsupported", func() {
			unsupported = true
			So(Share(record), ShouldEqual, ErrShareUnsupported)
			So(copied, ShouldBeEmpty)
		})

		Convey("A clipboard failure is reported as unsupported", func() {
			writeClipboard = func(string) error { return errors.New("no display") }
			err := Share(record)
			So(errors.Is(err, ErrShareUnsupported), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "no display")
		})

		Convey("Records without media are refused", func() {
			So(Share(video.Normalize(video.Raw{})), ShouldEqual, ErrUnavailable)
		})
	})
}

func TestPlay(t *testing.T) {
	Convey("Given a stubbed launcher", t, func() {
		var input, app string

		defer func(s func(string, string) error) { startWith = s }(startWith)
		startWith = func(i, a string) error {
			input, app = i, a
			return nil
		}

		record := video.Normalize(video.Raw{"url": "https://cdn.example.com/a.mp4"})

		Convey("The configured player is used", func() {
			viper.Set(key.Player, "mpv")
			defer viper.Set(key.Player, "")

			So(Play(record), ShouldBeNil)
			So(input, ShouldEqual, record.MediaURL)
			So(app, ShouldEqual, "mpv")
		})

		Convey("Records without media are refused", func() {
			So(Play(video.Normalize(video.Raw{})), ShouldEqual, ErrUnavailable)
			So(input, ShouldBeEmpty)
		})
	})
}
