// Package inline implements the non-interactive filter mode: a stream list is loaded once,
// the selection is applied, and the result is written as a table or as JSON.
package inline

import (
	"context"
	"io"

	"github.com/samber/mo"
	"github.com/streamsift/streamsift/stream"
)

type (
	// Loader produces the stream list to filter.
	Loader func(context.Context) (stream.Snapshot, error)
	// Picker lets the user adjust the selection once the facet choices are known.
	Picker func(stream.Facets, stream.Selection) (stream.Selection, error)
)

type Options struct {
	Out io.Writer
	// Err receives selection warnings. Defaults to os.Stderr.
	Err       io.Writer
	Load      Loader
	Selection stream.Selection
	// Year replaces the release year of the loaded list.
	Year       mo.Option[string]
	Picker     mo.Option[Picker]
	Json       bool
	ShowHidden bool
	TitleWidth int
	Style      string
	// FacetsOnly writes the facet choices instead of the streams.
	FacetsOnly bool
	// Facet limits the facet choices written to one facet.
	Facet mo.Option[stream.Facet]
}
