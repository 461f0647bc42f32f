package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestGamePricing(t *testing.T) {
	g := Game{Price: 100000, DiscountPercentage: intPtr(20)}
	assert.Equal(t, int64(80000), g.FinalPrice())
	assert.True(t, g.HasDiscount())

	g.IsFree = true
	assert.Equal(t, int64(0), g.FinalPrice())
	assert.False(t, g.HasDiscount())

	plain := Game{Price: 50000}
	assert.Equal(t, int64(50000), plain.FinalPrice())
	assert.False(t, plain.HasDiscount())
}

func TestPlatformListDefaultsToPC(t *testing.T) {
	var g Game
	assert.Equal(t, []string{DefaultPlatform}, g.PlatformList())
	assert.True(t, g.SupportsPlatform("PC"))

	g.Platforms = datatypes.JSONSlice[string]{"PS5", "Xbox"}
	assert.Equal(t, []string{"PS5", "Xbox"}, g.PlatformList())
	assert.False(t, g.SupportsPlatform("PC"))
}

func TestSpecsRoundTrip(t *testing.T) {
	var g Game
	assert.Nil(t, g.Specs())

	g.SetSpecs(&MinimumSpecs{OS: "Windows 10", Memory: "8 GB"})
	specs := g.Specs()
	require.NotNil(t, specs)
	assert.Equal(t, "Windows 10", specs.OS)
	assert.Equal(t, "8 GB", specs.Memory)

	g.SetSpecs(&MinimumSpecs{})
	assert.Nil(t, g.Specs())
}

func TestImagesPutsCoverFirst(t *testing.T) {
	g := Game{
		ImageURL:    strPtr("cover.jpg"),
		Screenshots: datatypes.JSONSlice[string]{"a.jpg", "b.jpg"},
	}
	assert.Equal(t, []string{"cover.jpg", "a.jpg", "b.jpg"}, g.Images())

	g.ImageURL = strPtr("")
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, g.Images())
}

func TestDisplayName(t *testing.T) {
	var nilSummary *ProfileSummary
	assert.Equal(t, "", nilSummary.DisplayName())

	p := Profile{Email: "rina@example.com"}
	assert.Equal(t, "rina@example.com", p.Summary().DisplayName())

	p.FullName = strPtr("Rina")
	assert.Equal(t, "Rina", p.Summary().DisplayName())
}
