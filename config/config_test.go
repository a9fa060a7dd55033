package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/streamsift/streamsift/filesystem"
	"github.com/streamsift/streamsift/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Defaults are populated", func() {
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetDuration(key.AddonCacheTTL).Hours(), ShouldEqual, 1)
		})

		Convey("Env names carry the app prefix", func() {
			f := Default[key.AddonMetaURL]
			So(f.Env(), ShouldEqual, "STREAMSIFT_ADDON_META_URL")
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Field.Parse", t, func() {
		Convey("Booleans", func() {
			f := Default[key.LogsWrite]
			v, err := f.Parse([]string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = f.Parse([]string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("Strings", func() {
			f := Default[key.AddonURL]
			v, err := f.Parse([]string{"http://localhost:7000"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "http://localhost:7000")
		})

		Convey("Ints", func() {
			f := Field{Key: "x", Value: 1}
			v, err := f.Parse([]string{"42"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 42)
		})

		Convey("Missing values", func() {
			f := Default[key.AddonURL]
			_, err := f.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}
