package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/streamsift/streamsift/key"
)

func TestGet(t *testing.T) {
	Convey("Given every icon", t, func() {
		all := []Icon{Fail, Success, Warn, Visible, Hidden, Watch}

		for _, variant := range AvailableVariants() {
			Convey("variant="+variant, func() {
				viper.Set(key.IconsVariant, variant)
				for _, i := range all {
					So(Get(i), ShouldNotBeEmpty)
				}
			})
		}

		Convey("An unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "kaomoji")
			So(Get(Fail), ShouldBeEmpty)
		})

		Convey("An unknown icon renders nothing", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Icon(99)), ShouldBeEmpty)
		})
	})
}
