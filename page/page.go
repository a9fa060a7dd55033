// Package page reads a stream list out of the catalog's rendered markup.
//
// The catalog suffixes its class names with build hashes (streams-container-bbSc4), so
// elements are located by class prefix.
package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/streamsift/streamsift/filesystem"
	"github.com/streamsift/streamsift/log"
	"github.com/streamsift/streamsift/stream"
	"golang.org/x/net/html"
)

// Class prefixes of the elements a snapshot is read from.
const (
	ContainerClass   = "streams-container-"
	NameClass        = "addon-name-"
	DescriptionClass = "description-container-"
	YearClass        = "release-info-label-"
)

func byClass(prefix string) string {
	return fmt.Sprintf(`[class^=%q], [class*=" %s"]`, prefix, prefix)
}

// Read parses markup into a snapshot. Entries without a description are skipped.
func Read(r io.Reader) (stream.Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return stream.Snapshot{}, fmt.Errorf("parse markup: %w", err)
	}

	return FromDocument(doc), nil
}

// ReadFile parses the markup stored at path.
func ReadFile(path string) (stream.Snapshot, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return stream.Snapshot{}, err
	}
	defer f.Close()

	return Read(f)
}

// FromDocument extracts a snapshot from an already parsed document.
func FromDocument(doc *goquery.Document) stream.Snapshot {
	snapshot := stream.Snapshot{Year: year(doc)}

	doc.Find(byClass(ContainerClass)).First().Find("a").Each(func(i int, a *goquery.Selection) {
		desc := a.Find(byClass(DescriptionClass)).First()
		if desc.Length() == 0 {
			log.Debugf("stream %d has no description, skipping", i)
			return
		}

		snapshot.Entries = append(snapshot.Entries, stream.Entry{
			Name:        a.Find(byClass(NameClass)).First().Text(),
			Description: strings.TrimSpace(desc.Text()),
		})
	})

	log.Infof("read %d streams, year %q", len(snapshot.Entries), snapshot.Year)
	return snapshot
}

// year returns the unescaped inner markup of the release label.
func year(doc *goquery.Document) string {
	label := doc.Find(byClass(YearClass)).First()
	if label.Length() == 0 {
		return ""
	}

	inner, err := label.Html()
	if err != nil {
		return strings.TrimSpace(label.Text())
	}
	return strings.TrimSpace(html.UnescapeString(inner))
}
