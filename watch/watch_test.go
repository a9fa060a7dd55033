package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsift/streamsift/filesystem"
	"github.com/streamsift/streamsift/stream"
)

func TestWatcher(t *testing.T) {
	Convey("Given a watched file", t, func() {
		path := filepath.Join(t.TempDir(), "streams.txt")
		So(os.WriteFile(path, []byte("one"), 0o644), ShouldBeNil)

		snapshots := make(chan stream.Snapshot, 8)
		w := New(path, 10*time.Millisecond).WithLoader(func(p string) (stream.Snapshot, error) {
			b, err := os.ReadFile(p)
			if err != nil {
				return stream.Snapshot{}, err
			}
			if len(b) == 0 {
				return stream.Snapshot{}, nil
			}
			return stream.Snapshot{Entries: []stream.Entry{{Description: string(b)}}}, nil
		})
		w.OnReady(func(s stream.Snapshot) { snapshots <- s })

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		next := func() (stream.Snapshot, bool) {
			select {
			case s := <-snapshots:
				return s, true
			case <-time.After(5 * time.Second):
				return stream.Snapshot{}, false
			}
		}

		Convey("It emits the current content, then every rewrite", func() {
			s, ok := next()
			So(ok, ShouldBeTrue)
			So(s.Entries[0].Description, ShouldEqual, "one")

			So(os.WriteFile(path, []byte("two"), 0o644), ShouldBeNil)
			s, ok = next()
			So(ok, ShouldBeTrue)
			So(s.Entries[0].Description, ShouldEqual, "two")
		})

		Reset(func() {
			cancel()
			<-done
		})
	})

	Convey("Watching an in-memory filesystem fails", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		w := New(filepath.Join(t.TempDir(), "streams.html"), time.Millisecond)
		So(w.Run(context.Background()), ShouldNotBeNil)
	})

	Convey("Watching a missing directory fails", t, func() {
		w := New(filepath.Join(t.TempDir(), "nope", "streams.html"), time.Millisecond)
		So(w.Run(context.Background()), ShouldNotBeNil)
	})
}
