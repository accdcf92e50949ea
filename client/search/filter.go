// Package search implements the dashboard's client-side text filter: one
// shared search term applied over already-fetched lists, with a section-title
// short-circuit and a cascading industry/demo match for the demos section.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"laraigo_backend/client"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lower-cases and strips diacritics, so "Gráficos" matches
// "graficos".
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Matches reports whether the normalized haystack contains the normalized term.
func Matches(haystack, term string) bool {
	return strings.Contains(Normalize(haystack), Normalize(term))
}

// Filter applies the section filter to a fetched list:
//   - empty term → everything passes;
//   - the section title containing the term → everything passes;
//   - otherwise only items whose own title contains the term.
//
// titleOf extracts the searchable title of an item.
func Filter[T any](sectionTitle, term string, items []T, titleOf func(T) string) []T {
	if term == "" || Matches(sectionTitle, term) {
		return items
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(titleOf(item), term) {
			kept = append(kept, item)
		}
	}
	return kept
}

// Visible reports whether a section should render at all: with an active term
// and nothing passing the filter, the whole section disappears (headers and
// add-buttons included).
func Visible(term string, filteredCount int) bool {
	return term == "" || filteredCount > 0
}

// IndustryGroup is one accordion of the demos section: an industry and the
// demos shown under it after filtering.
type IndustryGroup struct {
	Industry client.Industry
	Demos    []client.Demo
}

// FilterIndustryGroups applies the cascading demos-section match. A group is
// kept when the section title matches, the industry name matches, or any of
// its demos' titles match. Within a kept group the demos are filtered by their
// own titles, unless the section or the industry name matched — then all of
// the group's demos show, even zero of them.
func FilterIndustryGroups(sectionTitle, term string, industries []client.Industry, demos []client.Demo) []IndustryGroup {
	byIndustry := make(map[string][]client.Demo, len(industries))
	for _, d := range demos {
		byIndustry[d.IndustryID] = append(byIndustry[d.IndustryID], d)
	}

	sectionMatch := term == "" || Matches(sectionTitle, term)

	groups := make([]IndustryGroup, 0, len(industries))
	for _, ind := range industries {
		own := byIndustry[ind.ID]
		if own == nil {
			own = []client.Demo{}
		}

		if sectionMatch {
			groups = append(groups, IndustryGroup{Industry: ind, Demos: own})
			continue
		}

		if Matches(ind.Name, term) {
			// name match keeps the group with all its demos, even none
			groups = append(groups, IndustryGroup{Industry: ind, Demos: own})
			continue
		}

		matching := make([]client.Demo, 0, len(own))
		for _, d := range own {
			if Matches(d.Title, term) {
				matching = append(matching, d)
			}
		}
		if len(matching) > 0 {
			groups = append(groups, IndustryGroup{Industry: ind, Demos: matching})
		}
	}
	return groups
}
