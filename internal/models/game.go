package models

import (
	"time"

	"gamestore/backend/internal/pricing"

	"gorm.io/datatypes"
)

// DefaultPlatform is assumed for games that list no platforms.
const DefaultPlatform = "PC"

// MinimumSpecs is the minimum PC requirement sheet shown on the detail page.
type MinimumSpecs struct {
	OS        string `json:"os"`
	Processor string `json:"processor"`
	Memory    string `json:"memory"`
	Graphics  string `json:"graphics"`
	DirectX   string `json:"directx"`
	Storage   string `json:"storage"`
}

// IsEmpty reports whether no requirement is filled in.
func (s MinimumSpecs) IsEmpty() bool {
	return s.OS == "" && s.Processor == "" && s.Memory == "" &&
		s.Graphics == "" && s.DirectX == "" && s.Storage == ""
}

// Game represents a game listed in the store.
// JSON names follow the columns of the games table.
type Game struct {
	ID                 string                            `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title              string                            `gorm:"size:255;not null" json:"title"`
	Description        string                            `gorm:"type:text;not null" json:"description"`
	Price              int64                             `gorm:"not null;default:0" json:"price"`
	DiscountPercentage *int                              `json:"discount_percentage"`
	DiscountAmount     *int64                            `json:"discount_amount"`
	IsFree             bool                              `gorm:"not null;default:false" json:"is_free"`
	Genre              string                            `gorm:"size:100;not null;index" json:"genre"`
	ImageURL           *string                           `gorm:"size:1024" json:"image_url"`
	Screenshots        datatypes.JSONSlice[string]       `json:"screenshots"`
	TrailerURL         *string                           `gorm:"size:1024" json:"trailer_url"`
	Platforms          datatypes.JSONSlice[string]       `json:"platforms"`
	AboutGame          *string                           `gorm:"type:text" json:"about_game"`
	MinimumSpecs       *datatypes.JSONType[MinimumSpecs] `json:"minimum_specs"`
	Developer          *string                           `gorm:"size:255" json:"developer"`
	Publisher          *string                           `gorm:"size:255" json:"publisher"`
	ReleaseDate        *string                           `gorm:"size:32" json:"release_date"`
	CreatedAt          time.Time                         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt          time.Time                         `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name used by Game to `games`.
func (Game) TableName() string {
	return "games"
}

// Discount returns the discount rule that applies to the game.
func (g Game) Discount() pricing.Discount {
	return pricing.FromFields(g.DiscountPercentage, g.DiscountAmount)
}

// FinalPrice is the price the buyer pays.
func (g Game) FinalPrice() int64 {
	return pricing.FinalPrice(g.Price, g.Discount(), g.IsFree)
}

// HasDiscount reports whether a discount badge should be shown.
func (g Game) HasDiscount() bool {
	return !g.IsFree && g.Discount().Kind() != pricing.KindNone
}

// PlatformList returns the platforms, defaulting to PC.
func (g Game) PlatformList() []string {
	if len(g.Platforms) == 0 {
		return []string{DefaultPlatform}
	}
	return []string(g.Platforms)
}

// SupportsPlatform reports whether name is one of the game's platforms.
func (g Game) SupportsPlatform(name string) bool {
	for _, p := range g.PlatformList() {
		if p == name {
			return true
		}
	}
	return false
}

// Specs returns the minimum specs, or nil when none are stored.
func (g Game) Specs() *MinimumSpecs {
	if g.MinimumSpecs == nil {
		return nil
	}
	specs := g.MinimumSpecs.Data()
	return &specs
}

// SetSpecs replaces the stored minimum specs. A nil or empty sheet clears them.
func (g *Game) SetSpecs(specs *MinimumSpecs) {
	if specs == nil || specs.IsEmpty() {
		g.MinimumSpecs = nil
		return
	}
	v := datatypes.NewJSONType(*specs)
	g.MinimumSpecs = &v
}

// Images returns the cover image followed by the screenshots.
func (g Game) Images() []string {
	images := make([]string, 0, len(g.Screenshots)+1)
	if g.ImageURL != nil && *g.ImageURL != "" {
		images = append(images, *g.ImageURL)
	}
	return append(images, g.Screenshots...)
}
