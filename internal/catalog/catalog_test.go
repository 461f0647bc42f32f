package catalog

import (
	"testing"

	"gamestore/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int     { return &v }
func i64Ptr(v int64) *int64 { return &v }

func sampleGames() []models.Game {
	return []models.Game{
		{ID: "1", Title: "Zelda Quest", Description: "Open world adventure", Genre: "Adventure", Price: 300000, Platforms: []string{"Switch"}},
		{ID: "2", Title: "apex runner", Description: "Fast racing", Genre: "Racing", Price: 100000, DiscountPercentage: intPtr(20)},
		{ID: "3", Title: "Bullet Storm", Description: "Shooter with an adventure mode", Genre: "Action", Price: 500000, DiscountAmount: i64Ptr(450000), Platforms: []string{"PC", "PS5"}},
		{ID: "4", Title: "Candy Farm", Description: "Relaxing farm sim", Genre: "Simulation", Price: 900000, IsFree: true},
		{ID: "5", Title: "Éclair Bakery", Description: "Cooking", Genre: "Simulation", Price: 150000, Platforms: []string{"PC"}},
	}
}

func titles(games []models.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Title
	}
	return out
}

func TestApply_TextMatchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	got := Apply(sampleGames(), Criteria{Query: "ADVENTURE"})
	assert.Equal(t, []string{"Bullet Storm", "Zelda Quest"}, titles(got))

	got = Apply(sampleGames(), Criteria{Query: "Apex"})
	assert.Equal(t, []string{"apex runner"}, titles(got))
}

func TestApply_GenreAndPlatform(t *testing.T) {
	got := Apply(sampleGames(), Criteria{Genre: "Simulation"})
	assert.Equal(t, []string{"Candy Farm", "Éclair Bakery"}, titles(got))

	// games without platforms count as PC
	got = Apply(sampleGames(), Criteria{Platform: "PC"})
	assert.Equal(t, []string{"apex runner", "Bullet Storm", "Candy Farm", "Éclair Bakery"}, titles(got))

	got = Apply(sampleGames(), Criteria{Platform: "Switch"})
	assert.Equal(t, []string{"Zelda Quest"}, titles(got))
}

func TestApply_PriceCeilingUsesFinalPrice(t *testing.T) {
	got := Apply(sampleGames(), Criteria{MaxPrice: i64Ptr(80000)})
	// apex runner is 80000 after discount, Bullet Storm 50000, Candy Farm is free
	assert.Equal(t, []string{"apex runner", "Bullet Storm", "Candy Farm"}, titles(got))
}

func TestApply_FreeGamesAlwaysPassCeiling(t *testing.T) {
	got := Apply(sampleGames(), Criteria{MaxPrice: i64Ptr(0)})
	assert.Equal(t, []string{"Candy Farm"}, titles(got))
}

func TestApply_SortIsLocaleAware(t *testing.T) {
	got := Apply(sampleGames(), Criteria{Language: "en"})
	assert.Equal(t, []string{"apex runner", "Bullet Storm", "Candy Farm", "Éclair Bakery", "Zelda Quest"}, titles(got))
}

func TestApply_DescendingReversesAscending(t *testing.T) {
	asc := titles(Apply(sampleGames(), Criteria{SortOrder: SortAsc}))
	desc := titles(Apply(sampleGames(), Criteria{SortOrder: SortDesc}))
	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestApply_Idempotent(t *testing.T) {
	c := Criteria{Query: "a", MaxPrice: i64Ptr(200000), SortOrder: SortDesc, Language: "id"}
	once := Apply(sampleGames(), c)
	twice := Apply(once, c)
	assert.Equal(t, once, twice)
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	games := sampleGames()
	_ = Apply(games, Criteria{SortOrder: SortDesc})
	assert.Equal(t, sampleGames(), games)
}

func TestApply_UnknownLanguageFallsBack(t *testing.T) {
	got := Apply(sampleGames(), Criteria{Language: "not a tag!"})
	assert.Len(t, got, 5)
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortDesc, ParseSortOrder(" DESC "))
	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortAsc, ParseSortOrder(""))
	assert.Equal(t, SortAsc, ParseSortOrder("sideways"))
}

func TestBuildFacets(t *testing.T) {
	f := BuildFacets(sampleGames())
	assert.Equal(t, []string{"Action", "Adventure", "Racing", "Simulation"}, f.Genres)
	assert.Equal(t, []string{"PC", "PS5", "Switch"}, f.Platforms)
	assert.Equal(t, int64(1000000), f.MaxPrice)

	f = BuildFacets([]models.Game{{Title: "Pricey", Genre: "RPG", Price: 2500000}})
	assert.Equal(t, int64(2500000), f.MaxPrice)
	assert.Equal(t, []string{"PC"}, f.Platforms)
}

func TestBuildFacets_Empty(t *testing.T) {
	f := BuildFacets(nil)
	assert.Empty(t, f.Genres)
	assert.Empty(t, f.Platforms)
	assert.Equal(t, DefaultPriceCap, f.MaxPrice)
}
