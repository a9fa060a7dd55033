package filesystem

import (
	"io"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Backend switching", t, func() {
		SetOsFs()
		So(API().Name(), ShouldEqual, "OsFs")

		SetMemMapFs()
		So(API().Name(), ShouldEqual, "MemMapFS")
	})

	Convey("Only the os backend is watchable", t, func() {
		SetMemMapFs()
		So(Watchable(), ShouldBeFalse)

		SetOsFs()
		So(Watchable(), ShouldBeTrue)
	})

	Convey("GacheFs creates the cache directory on demand", t, func() {
		SetMemMapFs()
		var fs GacheFs

		f, err := fs.OpenFile("/cache/streamsift/streams.json", os.O_CREATE|os.O_WRONLY, 0o644)
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		exists, err := API().DirExists("/cache/streamsift")
		So(err, ShouldBeNil)
		So(exists, ShouldBeTrue)
	})

	Convey("GacheFs writes through the active backend", t, func() {
		SetMemMapFs()
		var fs GacheFs

		So(fs.MkdirAll("/cache", os.ModePerm), ShouldBeNil)
		f, err := fs.OpenFile("/cache/x.json", os.O_CREATE|os.O_WRONLY, 0o644)
		So(err, ShouldBeNil)
		_, err = io.WriteString(f, "{}")
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		b, err := API().ReadFile("/cache/x.json")
		So(err, ShouldBeNil)
		So(string(b), ShouldEqual, "{}")
	})
}
