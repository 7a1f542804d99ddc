package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidshelf/vidshelf/constant"
)

func TestCommand(t *testing.T) {
	const url = "https://cdn.example.com/v.mp4?a=1&b=2"

	Convey("The system handler is chosen per platform", t, func() {
		cmd, err := Command(constant.Linux, url, "")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"xdg-open", url})

		cmd, err = Command(constant.Darwin, url, "")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", url})
	})

	Convey("A configured player is launched directly", t, func() {
		cmd, err := Command(constant.Linux, url, "mpv")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"mpv", url})

		cmd, err = Command(constant.Darwin, url, "IINA")
		So(err, ShouldBeNil)
		So(cmd.Args, ShouldResemble, []string{"open", "-a", "IINA", url})
	})

	Convey("Ampersands are escaped for the Windows start command", t, func() {
		cmd, err := Command(constant.Windows, url, "vlc")
		So(err, ShouldBeNil)
		So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://cdn.example.com/v.mp4?a=1^&b=2")
	})

	Convey("Unknown platforms are rejected", t, func() {
		_, err := Command("plan9", url, "")
		So(err, ShouldNotBeNil)
	})
}
