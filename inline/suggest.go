package inline

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/streamsift/streamsift/stream"
)

// Closest returns the choice nearest to value by edit distance.
func Closest(value string, choices []string) mo.Option[string] {
	if len(choices) == 0 {
		return mo.None[string]()
	}

	lower := strings.ToLower(value)
	return mo.Some(lo.MinBy(choices, func(a, b string) bool {
		return levenshtein.Distance(lower, strings.ToLower(a)) <
			levenshtein.Distance(lower, strings.ToLower(b))
	}))
}

// Warnings describes every selected value that on its own keeps no stream visible. Values are
// matched by containment, so a partial value such as "1080" is not warned about while a
// stream mentions it.
func Warnings(records []stream.Record, facets stream.Facets, sel stream.Selection) []string {
	var warnings []string
	for _, f := range stream.AllFacets() {
		value := sel.Get(f)
		if value == stream.All {
			continue
		}

		alone := stream.NewSelection().With(f, value)
		if len(stream.Apply(records, alone).Shown(records)) > 0 {
			continue
		}

		msg := fmt.Sprintf("no stream offers %s %q", f, value)
		if closest, ok := Closest(value, facets.Values(f)).Get(); ok {
			msg += fmt.Sprintf(", did you mean %q?", closest)
		}
		warnings = append(warnings, msg)
	}
	return warnings
}
