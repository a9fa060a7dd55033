package board

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsift/streamsift/stream"
)

type fakeHost struct {
	fn func(stream.Snapshot)
}

func (h *fakeHost) OnReady(fn func(stream.Snapshot)) { h.fn = fn }

var first = stream.Snapshot{
	Year: "2025",
	Entries: []stream.Entry{
		{Name: "Torrentio\n4k", Description: "Happy.Gilmore.2.2025.2160p\n👤 27 💾 13.73 GB ⚙️ ThePirateBay\nMulti Audio / 🇷🇺 / 🇲🇽"},
		{Name: "Torrentio\n1080p", Description: "Happy.gilmore.2.2025.1080p\n👤 76 💾 2.1 GB ⚙️ Cinecalidad\nDual Audio / 🇲🇽"},
	},
}

var second = stream.Snapshot{
	Year: "2025",
	Entries: []stream.Entry{
		{Name: "Torrentio\n720p", Description: "Happy.Gilmore.2.2025.720p\n👤 5 💾 900 MB ⚙️ 1337x"},
	},
}

func TestBoard(t *testing.T) {
	Convey("Given a board attached to a host", t, func() {
		host := &fakeHost{}
		b := New()
		b.Attach(host)

		changes := 0
		b.OnChange(func(*Board) { changes++ })

		So(b.IsReady(), ShouldBeFalse)
		So(b.Selection(), ShouldResemble, stream.NewSelection())

		Convey("When the host becomes ready", func() {
			host.fn(first)

			So(b.IsReady(), ShouldBeTrue)
			So(b.Year(), ShouldEqual, "2025")
			So(b.Records(), ShouldHaveLength, 2)
			So(b.Facets().Origins, ShouldResemble, []string{"ThePirateBay", "Cinecalidad"})
			So(b.Visibility().Hidden, ShouldEqual, 0)
			So(changes, ShouldEqual, 1)

			Convey("Selecting a value filters immediately", func() {
				So(b.Select(stream.FacetQuality, "1080p"), ShouldBeNil)
				So(b.Visibility().Visible, ShouldResemble, []bool{false, true})
				So(changes, ShouldEqual, 2)
			})

			Convey("Unknown facets are rejected", func() {
				So(b.Select(stream.Facet("codec"), "HEVC"), ShouldNotBeNil)
				So(changes, ShouldEqual, 1)
			})

			Convey("A refresh keeps the first facet choices", func() {
				host.fn(second)
				So(b.Records(), ShouldHaveLength, 1)
				So(b.Facets().Origins, ShouldResemble, []string{"ThePirateBay", "Cinecalidad"})
			})

			Convey("The selection survives a refresh", func() {
				So(b.Select(stream.FacetOrigin, "Cinecalidad"), ShouldBeNil)
				host.fn(second)
				So(b.Visibility().Hidden, ShouldEqual, 1)
			})

			Convey("SelectAll fills empty facets with all", func() {
				b.SelectAll(stream.Selection{Language: "🇷🇺"})
				So(b.Selection().Quality, ShouldEqual, stream.All)
				So(b.Visibility().Visible, ShouldResemble, []bool{true, false})
			})
		})
	})
}
