package stream

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Facet names a filterable dimension of a record.
type Facet string

const (
	FacetQuality  Facet = "quality"
	FacetLanguage Facet = "language"
	FacetOrigin   Facet = "origin"
)

// AllFacets lists every facet in prompt order.
func AllFacets() []Facet {
	return []Facet{FacetQuality, FacetLanguage, FacetOrigin}
}

// ParseFacet resolves a facet by name, case-insensitively.
func ParseFacet(name string) (Facet, error) {
	f := Facet(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(AllFacets(), f) {
		return "", fmt.Errorf("unknown facet: %s", name)
	}
	return f, nil
}

// Facets holds the distinct values observed per facet, in first-seen order.
type Facets struct {
	Qualities []string `json:"qualities"`
	Languages []string `json:"languages"`
	Origins   []string `json:"origins"`
}

// Values returns the choice set of f.
func (f Facets) Values(facet Facet) []string {
	switch facet {
	case FacetQuality:
		return f.Qualities
	case FacetLanguage:
		return f.Languages
	case FacetOrigin:
		return f.Origins
	default:
		return nil
	}
}

// CollectFacets gathers the deduplicated facet values of records. Absent fields are skipped.
func CollectFacets(records []Record) Facets {
	return Facets{
		Qualities: lo.Uniq(lo.FilterMap(records, func(r Record, _ int) (string, bool) {
			return r.Quality.Get()
		})),
		Languages: lo.Uniq(lo.FlatMap(records, func(r Record, _ int) []string {
			return r.Languages.OrEmpty()
		})),
		Origins: lo.Uniq(lo.FilterMap(records, func(r Record, _ int) (string, bool) {
			return r.Origin.Get()
		})),
	}
}
