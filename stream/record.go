// Package stream parses rendered stream results into structured records and filters them by facet.
package stream

import (
	"strings"

	"github.com/samber/mo"
)

// Entry is a single stream result as the host renders it.
type Entry struct {
	// Name is the addon label block, e.g. "Torrentio\n4k". Quality is read from it.
	Name string `json:"name"`
	// Description is the release block: title line, marker line and language line.
	Description string `json:"description"`
}

// Lines splits the description into lines.
func (e Entry) Lines() []string {
	return strings.Split(e.Description, "\n")
}

// Record is the structured form of an Entry.
// Fields whose marker is missing from the text are absent, never errors.
type Record struct {
	Title     string
	Remainder string
	Languages mo.Option[[]string]
	Quality   mo.Option[string]
	Size      mo.Option[string]
	Origin    mo.Option[string]
	Codecs    []string

	// Entry is the live text the record was built from.
	Entry Entry
}

// String returns the title, or the first description line when no title was found.
func (r Record) String() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Entry.Lines()[0]
}

// Snapshot is the rendered result list at one point in time.
type Snapshot struct {
	// Year is the page-level release token titles are split on.
	Year    string  `json:"year"`
	Entries []Entry `json:"entries"`
}

// Records extracts every entry of the snapshot.
func (s Snapshot) Records() []Record {
	return ExtractAll(s.Entries, s.Year)
}
