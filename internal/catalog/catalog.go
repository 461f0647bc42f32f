// Package catalog implements the storefront's search, filter and sort
// pipeline over an in-memory list of games.
package catalog

import (
	"sort"
	"strings"

	"gamestore/backend/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPriceCap is the minimum upper bound offered by the price slider.
const DefaultPriceCap int64 = 1000000

// SortOrder is the title sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts "asc" or "desc" and defaults to ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// Criteria selects and orders games. Zero values disable a stage.
type Criteria struct {
	Query     string
	Genre     string
	Platform  string
	SortOrder SortOrder
	// MaxPrice is the price ceiling applied to the final price. Free games always pass.
	MaxPrice *int64
	// Language drives the collation used for title sorting.
	Language string
}

// Apply runs text match, genre, platform, price ceiling and sort, in that order.
// The input slice is not modified.
func Apply(games []models.Game, c Criteria) []models.Game {
	out := make([]models.Game, 0, len(games))
	query := strings.ToLower(strings.TrimSpace(c.Query))
	for _, g := range games {
		if query != "" && !matchesText(g, query) {
			continue
		}
		if c.Genre != "" && g.Genre != c.Genre {
			continue
		}
		if c.Platform != "" && !g.SupportsPlatform(c.Platform) {
			continue
		}
		if c.MaxPrice != nil && !g.IsFree && g.FinalPrice() > *c.MaxPrice {
			continue
		}
		out = append(out, g)
	}
	SortByTitle(out, c.SortOrder, c.Language)
	return out
}

func matchesText(g models.Game, query string) bool {
	return strings.Contains(strings.ToLower(g.Title), query) ||
		strings.Contains(strings.ToLower(g.Description), query)
}

// SortByTitle sorts games in place using locale-aware collation.
// Games with equal titles keep their relative order.
func SortByTitle(games []models.Game, order SortOrder, lang string) {
	col := collate.New(languageTag(lang))
	sort.SliceStable(games, func(i, j int) bool {
		cmp := col.CompareString(games[i].Title, games[j].Title)
		if order == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func languageTag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Indonesian
	}
	return tag
}

// Facets describes the filter options offered for a game list.
type Facets struct {
	Genres    []string `json:"genres"`
	Platforms []string `json:"platforms"`
	MaxPrice  int64    `json:"max_price"`
}

// BuildFacets collects the distinct genres and platforms and the slider cap.
func BuildFacets(games []models.Game) Facets {
	genres := map[string]struct{}{}
	platforms := map[string]struct{}{}
	maxPrice := DefaultPriceCap
	for _, g := range games {
		genres[g.Genre] = struct{}{}
		for _, p := range g.PlatformList() {
			platforms[p] = struct{}{}
		}
		if g.Price > maxPrice {
			maxPrice = g.Price
		}
	}
	return Facets{
		Genres:    sortedKeys(genres),
		Platforms: sortedKeys(platforms),
		MaxPrice:  maxPrice,
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
