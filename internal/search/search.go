package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/tabdeck/internal/model"
)

// Filter returns the links whose title or URL contains query, ignoring case.
// The query is trimmed first; an empty query returns all unchanged.
// Order is preserved and the function is idempotent.
func Filter(all []model.Link, query string) []model.Link {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	result := []model.Link{}
	for _, l := range all {
		if strings.Contains(strings.ToLower(l.Title), q) ||
			strings.Contains(strings.ToLower(l.URL), q) {
			result = append(result, l)
		}
	}
	return result
}

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Link           model.Link
	MatchedIndexes []int
	Score          int
}

// linkTargets implements fuzzy.Source over "title url" strings.
type linkTargets []model.Link

func (lt linkTargets) String(i int) string {
	return lt[i].Title + " " + lt[i].URL
}

func (lt linkTargets) Len() int {
	return len(lt)
}

// FuzzyLinks ranks links against query using fuzzy matching on title and URL.
// Returns results sorted by match score (best first).
func FuzzyLinks(links []model.Link, query string) []SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, linkTargets(links))

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Link:           links[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// Lookup finds links for a quick-open query: substring matches first, in
// bookmark order, falling back to fuzzy ranking when nothing contains the
// query verbatim.
func Lookup(links []model.Link, query string) []SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	exact := Filter(links, query)
	if len(exact) == 0 {
		return FuzzyLinks(links, query)
	}

	results := make([]SearchResult, len(exact))
	for i, l := range exact {
		results[i] = SearchResult{Link: l}
	}
	return results
}
