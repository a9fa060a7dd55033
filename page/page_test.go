package page

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsift/streamsift/filesystem"
)

const markup = `<html><body>
<div class="meta-info"><div class="release-info-label-LPJMB">2025</div></div>
<div class="streams-list-Y1lCM streams-list-container-xYMJo">
  <div class="streams-container-bbSc4">
    <a href="#1">
      <div class="addon-name-tC8PX">Torrentio
4k</div>
      <div class="description-container-vW_De">
Happy.Gilmore.2.2025.2160p.NF.WEB-DL.SDR.LATINO.HINDI.RUS.UKR.Atmos.H265.MP4-BTM
👤 27 💾 13.73 GB ⚙️ ThePirateBay
Multi Audio / 🇷🇺 / 🇲🇽 / 🇮🇳 / 🇺🇦
      </div>
    </a>
    <a href="#2">
      <div class="addon-name-tC8PX">Torrentio
1080p</div>
      <div class="label-container-XOyzm description-container-vW_De">Happy.gilmore.2.2025.1080p-dual-lat-cinecalidad.rs.mp4
👤 76 💾 2.1 GB ⚙️ Cinecalidad
Dual Audio / 🇲🇽</div>
    </a>
    <a href="#3"><div class="addon-name-tC8PX">Broken</div></a>
  </div>
</div>
</body></html>`

func TestRead(t *testing.T) {
	Convey("Given rendered stream markup", t, func() {
		snapshot, err := Read(strings.NewReader(markup))
		So(err, ShouldBeNil)

		Convey("It reads the release year", func() {
			So(snapshot.Year, ShouldEqual, "2025")
		})

		Convey("It reads entries with a description", func() {
			So(snapshot.Entries, ShouldHaveLength, 2)
			So(snapshot.Entries[0].Name, ShouldEqual, "Torrentio\n4k")
			So(snapshot.Entries[0].Description, ShouldStartWith, "Happy.Gilmore.2.2025")
			So(snapshot.Entries[0].Description, ShouldEndWith, "🇺🇦")
			So(snapshot.Entries[1].Description, ShouldEndWith, "Dual Audio / 🇲🇽")
		})

		Convey("Its records parse like the live text", func() {
			records := snapshot.Records()
			So(records[0].Size.MustGet(), ShouldEqual, "13.73 GB")
			So(records[1].Languages.MustGet(), ShouldResemble, []string{"🇲🇽"})
		})
	})

	Convey("Markup without a stream list yields an empty snapshot", t, func() {
		snapshot, err := Read(strings.NewReader(`<p class="release-info-label-x">2019&ndash;</p>`))
		So(err, ShouldBeNil)
		So(snapshot.Entries, ShouldBeEmpty)
		So(snapshot.Year, ShouldEqual, "2019–")
	})
}

func TestReadFile(t *testing.T) {
	Convey("ReadFile", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/streams.html", []byte(markup), 0o644), ShouldBeNil)

		snapshot, err := ReadFile("/streams.html")
		So(err, ShouldBeNil)
		So(snapshot.Entries, ShouldHaveLength, 2)

		_, err = ReadFile("/missing.html")
		So(err, ShouldNotBeNil)
	})
}
