package stream

import "strings"

// All selects every value of a facet.
const All = "all"

// Selection holds the chosen value of each facet.
type Selection struct {
	Quality  string `json:"quality"`
	Language string `json:"language"`
	Origin   string `json:"origin"`
}

// NewSelection returns a selection with every facet set to All.
func NewSelection() Selection {
	return Selection{Quality: All, Language: All, Origin: All}
}

// IsAll reports whether a quality value selects every record. Quality accepts All in any case.
func IsAll(value string) bool {
	return value == "" || strings.EqualFold(value, All)
}

// isExactAll is the language and origin rule: only the exact All, or an unset value.
func isExactAll(value string) bool {
	return value == "" || value == All
}

// Get returns the selected value of facet.
func (s Selection) Get(facet Facet) string {
	switch facet {
	case FacetQuality:
		return s.Quality
	case FacetLanguage:
		return s.Language
	case FacetOrigin:
		return s.Origin
	default:
		return All
	}
}

// With returns a copy of s with facet set to value. An empty value resets the facet to All.
func (s Selection) With(facet Facet, value string) Selection {
	if value == "" {
		value = All
	}

	switch facet {
	case FacetQuality:
		s.Quality = value
	case FacetLanguage:
		s.Language = value
	case FacetOrigin:
		s.Origin = value
	}
	return s
}
