// Package catalog locates a gift inside a marketplace catalog by id, by name or by a fuzzy
// name match.
package catalog

import (
	"fmt"
	"giftprice-backend/internal/marketplace"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

// FuzzyThreshold is the token sort ratio a candidate must exceed to count as a match.
const FuzzyThreshold = 70

type Query struct {
	ID   string
	Name string
}

func (q Query) String() string {
	switch {
	case q.ID != "" && q.Name != "":
		return fmt.Sprintf("%s (%s)", q.Name, q.ID)
	case q.ID != "":
		return q.ID
	default:
		return q.Name
	}
}

// Find returns the item matching `query`, trying in order:
//  1. exact external id
//  2. case-insensitive display name
//  3. the highest token sort ratio above FuzzyThreshold
//
// Ties are broken by the lexicographically smallest external id.
func Find(items []marketplace.CatalogItem, query Query) (marketplace.CatalogItem, error) {
	id := strings.TrimSpace(query.ID)
	name := strings.TrimSpace(query.Name)

	if id != "" {
		if item, ok := best(items, func(item marketplace.CatalogItem) int {
			if item.ExternalID == id {
				return 1
			}
			return 0
		}); ok {
			return item, nil
		}
	}
	if name == "" {
		return marketplace.CatalogItem{}, fmt.Errorf("find %s: %w", query, marketplace.ErrNotFound)
	}

	if item, ok := best(items, func(item marketplace.CatalogItem) int {
		if strings.EqualFold(strings.TrimSpace(item.DisplayName), name) {
			return 1
		}
		return 0
	}); ok {
		return item, nil
	}

	normalized := sortedTokens(name)
	if item, ok := best(items, func(item marketplace.CatalogItem) int {
		score := ratio(normalized, sortedTokens(item.DisplayName))
		if score <= FuzzyThreshold {
			return 0
		}
		return score
	}); ok {
		return item, nil
	}

	return marketplace.CatalogItem{}, fmt.Errorf("find %s: %w", query, marketplace.ErrNotFound)
}

// best returns the item with the highest positive score, the smallest external id wins ties.
func best(items []marketplace.CatalogItem, score func(marketplace.CatalogItem) int) (marketplace.CatalogItem, bool) {
	var out marketplace.CatalogItem
	bestScore := 0
	for _, item := range items {
		s := score(item)
		if s <= 0 {
			continue
		}
		if s > bestScore || (s == bestScore && item.ExternalID < out.ExternalID) {
			out = item
			bestScore = s
		}
	}
	return out, bestScore > 0
}

// Normalize lowercases `name` and collapses every run of non alphanumeric characters into
// a single space.
func Normalize(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}

func sortedTokens(name string) string {
	tokens := strings.Fields(Normalize(name))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// TokenSortRatio scores the similarity of two names from 0 to 100 after normalizing
// them and sorting their words, so word order does not matter.
func TokenSortRatio(a, b string) int {
	return ratio(sortedTokens(a), sortedTokens(b))
}

func ratio(a, b string) int {
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 0
	}
	common := matchr.LongestCommonSubsequence(a, b)
	return int(math.Round(float64(2*common) / float64(total) * 100))
}
