package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsift/streamsift/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Directories are created on lookup", t, func() {
		for _, dir := range []func() string{Config, Cache, Logs} {
			path := dir()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		}
	})

	Convey("Files live under their directories", t, func() {
		So(filepath.Dir(ConfigFile()), ShouldEqual, Config())
		So(filepath.Base(ConfigFile()), ShouldEqual, "streamsift.toml")
		So(filepath.Dir(Streams()), ShouldEqual, Cache())
	})

	Convey("The config directory can be overridden", t, func() {
		So(os.Setenv(EnvConfigPath, "/custom/streamsift"), ShouldBeNil)
		defer os.Unsetenv(EnvConfigPath)

		So(Config(), ShouldEqual, "/custom/streamsift")
		So(Logs(), ShouldEqual, "/custom/streamsift/logs")
	})
}
