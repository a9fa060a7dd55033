package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/streamsift/streamsift/board"
	"github.com/streamsift/streamsift/icon"
	"github.com/streamsift/streamsift/log"
	"github.com/streamsift/streamsift/stream"
)

// Run loads the stream list, applies the selection and writes the result.
func Run(ctx context.Context, options *Options) error {
	if options.Load == nil {
		return errors.New("no stream list to read")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Err == nil {
		options.Err = os.Stderr
	}

	snapshot, err := options.Load(ctx)
	if err != nil {
		return err
	}
	if year, ok := options.Year.Get(); ok {
		snapshot.Year = year
	}

	b := board.New()
	b.Ready(snapshot)

	if options.FacetsOnly {
		return writeFacets(options.Out, b.Facets(), options)
	}

	sel := options.Selection
	if picker, ok := options.Picker.Get(); ok {
		sel, err = picker(b.Facets(), sel)
		if err != nil {
			return err
		}
	}
	b.SelectAll(sel)

	for _, w := range Warnings(b.Records(), b.Facets(), b.Selection()) {
		log.Warn(w)
		fmt.Fprintf(options.Err, "%s %s\n", icon.Get(icon.Warn), w)
	}

	return Write(options.Out, b, options)
}

func writeFacets(w io.Writer, facets stream.Facets, options *Options) error {
	f, ok := options.Facet.Get()
	if !ok {
		if options.Json {
			return encodeJson(w, facets)
		}
		WriteFacets(w, facets)
		return nil
	}

	values := facets.Values(f)
	if values == nil {
		values = []string{}
	}
	if options.Json {
		return encodeJson(w, values)
	}
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	return nil
}

// Write renders the current state of b. Nothing is written before b holds a stream list.
func Write(w io.Writer, b *board.Board, options *Options) error {
	if !b.IsReady() {
		return errors.New("stream list is not ready")
	}

	if options.Json {
		return writeJson(w, b, options.ShowHidden)
	}

	writeTable(w, b, options)
	return nil
}
