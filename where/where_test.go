package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/key"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Store() lives in the cache directory", func() {
			So(filepath.Dir(Store()), ShouldEqual, Cache())
		})

		Convey("Downloads()", func() {
			Convey("defaults to the cache directory", func() {
				viper.Set(key.DownloadsPath, "")
				So(Downloads(), ShouldEqual, filepath.Join(Cache(), "downloads"))
			})

			Convey("honours the configured path", func() {
				custom := filepath.Join(Temp(), "videos")
				viper.Set(key.DownloadsPath, custom)
				defer viper.Set(key.DownloadsPath, "")

				So(Downloads(), ShouldEqual, custom)
				So(lo.Must(filesystem.API().IsDir(custom)), ShouldBeTrue)
			})
		})
	})
}
