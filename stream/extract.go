package stream

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Marker begins the line carrying seeders, size and origin, e.g. "👤 27 💾 13.73 GB ⚙️ ThePirateBay".
const Marker = "👤"

// LanguageSeparator splits the trailing language line.
const LanguageSeparator = " / "

// categoryLabels lead a language line to describe its cardinality rather than name a language.
var categoryLabels = []string{"dual audio", "multi audio", "multi subs"}

var (
	codecPattern   = regexp.MustCompile(`(?i)\b(HEVC|HDR|HDR10|x265|x264|AV1|H\.?264|H\.?265)\b`)
	qualityPattern = regexp.MustCompile(`(?i)\b(4K|1080p|720p|576p|480p|BDRip|BRRip|HDRip|DVDRip|WEBRip|WEB-DL|BluRay)\b`)
)

// codecNames maps a lowercased, dot-less codec match to its vocabulary spelling.
var codecNames = map[string]string{
	"hevc":  "HEVC",
	"hdr":   "HDR",
	"hdr10": "HDR10",
	"x265":  "x265",
	"x264":  "x264",
	"av1":   "AV1",
	"h264":  "H.264",
	"h265":  "H.265",
}

// Extract parses a rendered entry. year is the page-level release token the title is split on.
func Extract(entry Entry, year string) Record {
	lines := entry.Lines()
	first := lines[0]

	record := Record{Entry: entry}
	record.Title, record.Remainder = splitTitle(first, year)
	record.Languages = parseLanguages(lines[len(lines)-1])
	record.Size, record.Origin = parseMarker(lines)
	record.Codecs = parseCodecs(first)
	if q := qualityPattern.FindString(entry.Name); q != "" {
		record.Quality = mo.Some(q)
	}

	return record
}

// ExtractAll parses every entry against the same year token.
func ExtractAll(entries []Entry, year string) []Record {
	return lo.Map(entries, func(e Entry, _ int) Record {
		return Extract(e, year)
	})
}

// splitTitle returns the text before the year and the text from the year onward.
// A missing or empty year leaves the title empty and the whole line as remainder.
func splitTitle(line, year string) (title, remainder string) {
	if year == "" {
		return "", line
	}

	i := strings.Index(line, year)
	if i < 0 {
		return "", line
	}
	return line[:i], line[i:]
}

func parseLanguages(line string) mo.Option[[]string] {
	segments := strings.Split(strings.TrimSpace(line), LanguageSeparator)
	if len(segments) < 2 {
		return mo.None[[]string]()
	}

	head := strings.ToLower(strings.TrimSpace(segments[0]))
	if lo.Contains(categoryLabels, head) {
		segments = segments[1:]
	}
	return mo.Some(segments)
}

// MarkerLine returns the first line of text starting with Marker.
func MarkerLine(text string) mo.Option[string] {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, Marker) {
			return mo.Some(line)
		}
	}
	return mo.None[string]()
}

// parseMarker reads tokens 4-5 as the size and token 7 as the origin of the marker line.
func parseMarker(lines []string) (size, origin mo.Option[string]) {
	size, origin = mo.None[string](), mo.None[string]()

	line, ok := MarkerLine(strings.Join(lines, "\n")).Get()
	if !ok {
		return
	}

	tokens := strings.Fields(line)
	if len(tokens) >= 5 {
		size = mo.Some(tokens[3] + " " + tokens[4])
	}
	if len(tokens) >= 7 {
		origin = mo.Some(tokens[6])
	}
	return
}

func parseCodecs(line string) []string {
	matches := codecPattern.FindAllString(line, -1)
	return lo.Map(matches, func(m string, _ int) string {
		return codecNames[strings.ToLower(strings.ReplaceAll(m, ".", ""))]
	})
}
