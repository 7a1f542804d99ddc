package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetInt(key.GalleryPageSize), ShouldEqual, 40)
			So(viper.GetInt(key.SearchDebounceMs), ShouldEqual, 300)
			So(viper.GetStringSlice(key.SourcesPaths), ShouldResemble, []string{"data/master_video_data.json", "data/pixverse.json"})
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("gallery.page_size")
			So(result, ShouldEqual, "gallery_page_size")
		})

		Convey("Field.Env should carry the application prefix", func() {
			f := Default[key.GalleryPageSize]
			So(f.Env(), ShouldEqual, "VIDSHELF_GALLERY_PAGE_SIZE")
		})
	})
}

func TestLoadDotEnv(t *testing.T) {
	Convey("Given a dotenv file in the working directory", t, func() {
		dir := t.TempDir()
		wd, err := os.Getwd()
		So(err, ShouldBeNil)
		So(os.Chdir(dir), ShouldBeNil)
		defer func() { _ = os.Chdir(wd) }()

		So(os.WriteFile(filepath.Join(dir, ".env"), []byte("VIDSHELF_TEST_DOTENV=from-file\n"), 0o600), ShouldBeNil)
		defer os.Unsetenv("VIDSHELF_TEST_DOTENV")

		Convey("It loads variables that are not already set", func() {
			loaded := LoadDotEnv()
			So(loaded, ShouldResemble, []string{".env"})
			So(os.Getenv("VIDSHELF_TEST_DOTENV"), ShouldEqual, "from-file")
		})
	})
}
