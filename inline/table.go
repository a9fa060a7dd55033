package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/reflow/truncate"
	"github.com/streamsift/streamsift/board"
	"github.com/streamsift/streamsift/icon"
	"github.com/streamsift/streamsift/stream"
	"github.com/streamsift/streamsift/style"
	"github.com/streamsift/streamsift/util"
)

var tableStyles = map[string]table.Style{
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"ascii":   table.StyleDefault,
}

// TableStyles lists the accepted output.style values.
func TableStyles() []string {
	return []string{"light", "rounded", "ascii"}
}

func truncateTitle(title string, width int) string {
	if width <= 0 {
		return title
	}
	return truncate.StringWithTail(title, uint(width), "…")
}

func writeTable(w io.Writer, b *board.Board, opts *Options) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	st, ok := tableStyles[opts.Style]
	if !ok {
		st = table.StyleLight
	}
	st.Format.Footer = text.FormatDefault
	t.SetStyle(st)

	t.AppendHeader(table.Row{"", "Title", "Quality", "Size", "Origin", "Languages", "Codecs"})

	v := b.Visibility()
	for i, r := range b.Records() {
		visible := v.Visible[i]
		if !visible && !opts.ShowHidden {
			continue
		}

		mark := icon.Get(icon.Visible)
		render := func(s string) string { return s }
		if !visible {
			mark = icon.Get(icon.Hidden)
			render = style.Hidden
		}

		cells := []string{
			truncateTitle(r.String(), opts.TitleWidth),
			r.Quality.OrElse("-"),
			r.Size.OrElse("-"),
			r.Origin.OrElse("-"),
			strings.Join(r.Languages.OrEmpty(), " "),
			strings.Join(r.Codecs, " "),
		}

		row := table.Row{mark}
		for _, c := range cells {
			row = append(row, render(c))
		}
		t.AppendRow(row)
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d of %s shown", v.Total-v.Hidden, util.Quantify(v.Total, "stream", "streams"))})
	t.Render()
}

// WriteFacets lists the choices of every facet.
func WriteFacets(w io.Writer, facets stream.Facets) {
	for _, f := range stream.AllFacets() {
		values := facets.Values(f)
		fmt.Fprintf(w, "%s %s\n", style.Facet(string(f)), style.Faint(fmt.Sprintf("(%d)", len(values))))
		for _, v := range values {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}
}
