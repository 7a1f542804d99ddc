package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/key"
)

func TestGet(t *testing.T) {
	Convey("Every registered icon renders in every variant", t, func() {
		for i := range icons {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("An unknown variant renders nothing", t, func() {
		viper.Set(key.IconsVariant, "")
		So(Get(Download), ShouldBeEmpty)
	})

	Convey("The plain variant is ASCII", t, func() {
		viper.Set(key.IconsVariant, "plain")
		for i := range icons {
			for _, r := range Get(i) {
				So(r, ShouldBeLessThan, 128)
			}
		}
	})
}
