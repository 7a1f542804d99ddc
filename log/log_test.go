package log

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLogging(t *testing.T) {
	Convey("Given logging disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Nothing is emitted", func() {
			var buf bytes.Buffer
			SetupWriter(&buf)
			enabled = false
			Info("hidden")
			So(buf.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given a writer sink", t, func() {
		var buf bytes.Buffer
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		SetupWriter(&buf)
		defer func() { enabled = false }()

		Convey("Structured fields are rendered", func() {
			With(Fields{"source": "a.json", "records": 3}).Info("source loaded")
			So(buf.String(), ShouldContainSubstring, "source loaded")
			So(buf.String(), ShouldContainSubstring, "source=a.json")
			So(buf.String(), ShouldContainSubstring, "records=3")
		})

		Convey("Errors are attached", func() {
			WithError(errors.New("quota")).Warn("cache write failed")
			So(buf.String(), ShouldContainSubstring, "error=quota")
		})

		Convey("An invalid level falls back to info", func() {
			viper.Set(key.LogsLevel, "loud")
			SetupWriter(&buf)
			Debug("not shown")
			So(buf.String(), ShouldNotContainSubstring, "not shown")
		})
	})
}
