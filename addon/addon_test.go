package addon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/streamsift/streamsift/filesystem"
	"github.com/streamsift/streamsift/network"
)

const streamsBody = `{"streams":[
{"name":"Torrentio\n4k","title":"Happy.Gilmore.2.2025.2160p.NF.WEB-DL.H265\n👤 27 💾 13.73 GB ⚙️ ThePirateBay\nMulti Audio / 🇷🇺 / 🇲🇽","infoHash":"abc"},
{"name":"Torrentio\n1080p","description":"Happy.gilmore.2.2025.1080p\n👤 76 💾 2.1 GB ⚙️ Cinecalidad\nDual Audio / 🇲🇽\n"}
]}`

func newServer(hits *int32) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream/movie/tt123.json", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(streamsBody))
	})
	mux.HandleFunc("/meta/movie/tt123.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meta":{"releaseInfo":"2025","year":"2025"}}`))
	})
	mux.HandleFunc("/stream/series/tt777.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(streamsBody))
	})
	mux.HandleFunc("/meta/series/tt999.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meta":{"year":"2022"}}`))
	})
	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	Convey("Given a stream addon and a metadata addon", t, func() {
		var hits int32
		srv := newServer(&hits)
		defer srv.Close()

		client := New(Options{StreamsURL: srv.URL + "/", MetaURL: srv.URL, HTTP: srv.Client()})
		ctx := context.Background()

		Convey("Streams prefers description over title", func() {
			entries, err := client.Streams(ctx, "movie", "tt123")
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)
			So(entries[0].Name, ShouldEqual, "Torrentio\n4k")
			So(entries[0].Description, ShouldStartWith, "Happy.Gilmore.2.2025")
			So(entries[1].Description, ShouldEndWith, "Dual Audio / 🇲🇽")
		})

		Convey("Year reads the release label", func() {
			year, err := client.Year(ctx, "movie", "tt123")
			So(err, ShouldBeNil)
			So(year, ShouldEqual, "2025")
		})

		Convey("Year resolves episodes to their series and falls back to year", func() {
			year, err := client.Year(ctx, "series", "tt999:1:2")
			So(err, ShouldBeNil)
			So(year, ShouldEqual, "2022")
		})

		Convey("Snapshot combines streams and year", func() {
			snapshot, err := client.Snapshot(ctx, "movie", "tt123")
			So(err, ShouldBeNil)
			So(snapshot.Year, ShouldEqual, "2025")

			records := snapshot.Records()
			So(records[0].Title, ShouldEqual, "Happy.Gilmore.2.")
			So(records[0].Origin.MustGet(), ShouldEqual, "ThePirateBay")
		})

		Convey("Snapshot degrades when the year is unavailable", func() {
			snapshot, err := client.Snapshot(ctx, "series", "tt777")
			So(err, ShouldBeNil)
			So(snapshot.Year, ShouldBeEmpty)
			So(snapshot.Entries, ShouldHaveLength, 2)
			So(snapshot.Records()[0].Title, ShouldBeEmpty)
		})

		Convey("Missing content is an error", func() {
			_, err := client.Streams(ctx, "movie", "tt404")
			So(err, ShouldNotBeNil)

			var status *network.StatusError
			So(errors.As(err, &status), ShouldBeTrue)
			So(status.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("With a cache, repeated lookups skip the network", func() {
			filesystem.SetMemMapFs()
			cached := New(Options{
				StreamsURL: srv.URL,
				MetaURL:    srv.URL,
				HTTP:       srv.Client(),
				CachePath:  "/cache/streams.json",
				CacheTTL:   time.Hour,
			})

			_, err := cached.Streams(ctx, "movie", "tt123")
			So(err, ShouldBeNil)
			entries, err := cached.Streams(ctx, "movie", "tt123")
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)
			So(atomic.LoadInt32(&hits), ShouldEqual, 1)
		})
	})
}
