// Package prompt asks the user for a facet selection, one dropdown per facet.
package prompt

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/streamsift/streamsift/stream"
	"github.com/streamsift/streamsift/util"
)

// AllOption leads every dropdown and selects stream.All.
const AllOption = "All"

var ask = survey.AskOne

// fuzzyFilter narrows options as the user types.
func fuzzyFilter(filter, value string, _ int) bool {
	return fuzzy.MatchFold(filter, value)
}

// Choose asks for one value of facet. Facets with fewer than two discovered values offer
// no choice and are not asked.
func Choose(facet stream.Facet, values []string) (string, error) {
	if len(values) < 2 {
		return stream.All, nil
	}

	q := &survey.Select{
		Message: fmt.Sprintf("%s (%s)", facet, util.Quantify(len(values), "choice", "choices")),
		Options: append([]string{AllOption}, values...),
		Default: AllOption,
	}

	var answer string
	if err := ask(q, &answer, survey.WithFilter(fuzzyFilter)); err != nil {
		return "", fmt.Errorf("choose %s: %w", facet, err)
	}

	if answer == AllOption || answer == "" {
		return stream.All, nil
	}
	return answer, nil
}

// Select asks for every facet in order, starting from sel.
func Select(facets stream.Facets, sel stream.Selection) (stream.Selection, error) {
	for _, f := range stream.AllFacets() {
		value, err := Choose(f, facets.Values(f))
		if err != nil {
			return sel, err
		}
		sel = sel.With(f, value)
	}
	return sel, nil
}
