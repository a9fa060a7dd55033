package inline

import (
	"encoding/json"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/streamsift/streamsift/board"
	"github.com/streamsift/streamsift/stream"
)

// Stream is the structured output of one stream.
type Stream struct {
	Title     string   `json:"title"`
	Quality   string   `json:"quality,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Size      string   `json:"size,omitempty"`
	// SizeBytes is Size in bytes, omitted when Size is missing or unreadable.
	SizeBytes uint64       `json:"sizeBytes,omitempty"`
	Origin    string       `json:"origin,omitempty"`
	Codecs    []string     `json:"codecs"`
	Visible   bool         `json:"visible"`
	Entry     stream.Entry `json:"entry"`
}

// Output is the JSON document written in json mode.
type Output struct {
	Year      string           `json:"year"`
	Selection stream.Selection `json:"selection"`
	Facets    stream.Facets    `json:"facets"`
	Total     int              `json:"total"`
	Hidden    int              `json:"hidden"`
	Streams   []*Stream        `json:"streams"`
}

func newStream(r stream.Record, visible bool) *Stream {
	s := &Stream{
		Title:     r.String(),
		Quality:   r.Quality.OrEmpty(),
		Languages: r.Languages.OrEmpty(),
		Size:      r.Size.OrEmpty(),
		Origin:    r.Origin.OrEmpty(),
		Codecs:    r.Codecs,
		Visible:   visible,
		Entry:     r.Entry,
	}

	if s.Size != "" {
		if n, err := humanize.ParseBytes(s.Size); err == nil {
			s.SizeBytes = n
		}
	}
	return s
}

// NewOutput builds the document for the board's current state.
func NewOutput(b *board.Board, showHidden bool) *Output {
	v := b.Visibility()
	out := &Output{
		Year:      b.Year(),
		Selection: b.Selection(),
		Facets:    b.Facets(),
		Total:     v.Total,
		Hidden:    v.Hidden,
		Streams:   []*Stream{},
	}

	for i, r := range b.Records() {
		if !v.Visible[i] && !showHidden {
			continue
		}
		out.Streams = append(out.Streams, newStream(r, v.Visible[i]))
	}
	return out
}

func encodeJson(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeJson(w io.Writer, b *board.Board, showHidden bool) error {
	return encodeJson(w, NewOutput(b, showHidden))
}
