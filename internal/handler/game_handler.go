package handler

import (
	"net/http"
	"strconv"

	"gamestore/backend/internal/catalog"
	"gamestore/backend/internal/events"
	"gamestore/backend/internal/links"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/pricing"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameResponse is a game with its resolved price.
type GameResponse struct {
	models.Game
	Platforms              []string             `json:"platforms"`
	MinimumSpecs           *models.MinimumSpecs `json:"minimum_specs"`
	FinalPrice             int64                `json:"final_price"`
	HasDiscount            bool                 `json:"has_discount"`
	DiscountType           string               `json:"discount_type"`
	DiscountDisplayPercent int                  `json:"discount_display_percent"`
}

func newGameResponse(game models.Game) GameResponse {
	discount := game.Discount()
	resp := GameResponse{
		Game:         game,
		Platforms:    game.PlatformList(),
		FinalPrice:   game.FinalPrice(),
		HasDiscount:  game.HasDiscount(),
		DiscountType: discount.Kind().String(),
	}
	if resp.HasDiscount {
		resp.DiscountDisplayPercent = pricing.DisplayPercent(game.Price, discount)
	}
	// Specs only make sense for PC releases.
	if game.SupportsPlatform(models.DefaultPlatform) {
		resp.MinimumSpecs = game.Specs()
	}
	return resp
}

// GameDetailResponse adds the media block of the detail page.
type GameDetailResponse struct {
	GameResponse
	Images          []string `json:"images"`
	TrailerEmbedURL *string  `json:"trailer_embed_url"`
}

func newGameDetailResponse(game models.Game) GameDetailResponse {
	resp := GameDetailResponse{
		GameResponse: newGameResponse(game),
		Images:       game.Images(),
	}
	if game.TrailerURL != nil && *game.TrailerURL != "" {
		embed := links.YouTubeEmbedURL(*game.TrailerURL)
		resp.TrailerEmbedURL = &embed
	}
	return resp
}

// GameListResponse is one page of the catalog plus the filter options.
type GameListResponse struct {
	Data   []GameResponse `json:"data"`
	Meta   PaginationMeta `json:"meta"`
	Facets catalog.Facets `json:"facets"`
}

// ContactLinksResponse holds pre-filled chat links.
type ContactLinksResponse struct {
	Message      string `json:"message"`
	WhatsAppURL  string `json:"whatsapp_url"`
	InstagramURL string `json:"instagram_url"`
}

// endregion

// region --- Public Handlers ---

// GetGames godoc
// @Summary      Get the catalog
// @Description  Filters, sorts and paginates the games. Facets are computed over the whole catalog.
// @Tags         games
// @Produce      json
// @Param        q         query     string  false  "Search in title and description"
// @Param        genre     query     string  false  "Exact genre"
// @Param        platform  query     string  false  "Platform the game must support"
// @Param        sort      query     string  false  "Title order" Enums(asc, desc) default(asc)
// @Param        max_price query     int     false  "Ceiling for the final price"
// @Param        page      query     int     false  "Page number" default(1)
// @Param        limit     query     int     false  "Items per page" default(10)
// @Success      200 {object} GameListResponse
// @Failure      400 {object} ErrorResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	page, limit := pageParams(c)

	criteria := catalog.Criteria{
		Query:     c.Query("q"),
		Genre:     c.Query("genre"),
		Platform:  c.Query("platform"),
		SortOrder: catalog.ParseSortOrder(c.Query("sort")),
		Language:  h.tr.Language(c),
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || maxPrice < 0 {
			h.fail(c, http.StatusBadRequest, "validation.invalidInput")
			return
		}
		criteria.MaxPrice = &maxPrice
	}

	games, err := h.repo.ListGames(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	filtered := catalog.Apply(games, criteria)
	response := make([]GameResponse, 0, len(filtered))
	for _, game := range filtered {
		response = append(response, newGameResponse(game))
	}

	p := Paginate(response, page, limit)
	c.JSON(http.StatusOK, GameListResponse{Data: p.Data, Meta: p.Meta, Facets: catalog.BuildFacets(games)})
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves a game with its price, images, trailer embed and platform data.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} GameDetailResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	game, err := h.repo.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}
	c.JSON(http.StatusOK, newGameDetailResponse(*game))
}

// GetPurchaseLinks godoc
// @Summary      Get purchase links
// @Description  Builds WhatsApp and Instagram links with a pre-filled purchase message in the caller's language.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} ContactLinksResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/purchase-links [get]
func (h *Handler) GetPurchaseLinks(c *gin.Context) {
	game, err := h.repo.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	lang := h.tr.Language(c)
	finalPrice := game.FinalPrice()
	message := links.PurchaseMessage(lang, game.Title, finalPrice, game.IsFree)

	h.publish(c, events.PurchaseInquiry, events.PurchasePayload{
		GameID:     game.ID,
		Title:      game.Title,
		FinalPrice: finalPrice,
		Free:       game.IsFree,
		Language:   lang,
	})

	c.JSON(http.StatusOK, ContactLinksResponse{
		Message:      message,
		WhatsAppURL:  links.WhatsApp(h.whatsAppNumber(), message),
		InstagramURL: links.Instagram(h.opts.InstagramURL),
	})
}

// GetComplaintLinks godoc
// @Summary      Get complaint links
// @Description  Builds WhatsApp and Instagram links with a pre-filled complaint message.
// @Tags         contact
// @Produce      json
// @Success      200 {object} ContactLinksResponse
// @Router       /contact/complaint-links [get]
func (h *Handler) GetComplaintLinks(c *gin.Context) {
	message := links.ComplaintMessage(h.tr.Language(c))
	c.JSON(http.StatusOK, ContactLinksResponse{
		Message:      message,
		WhatsAppURL:  links.WhatsApp(h.whatsAppNumber(), message),
		InstagramURL: links.Instagram(h.opts.InstagramURL),
	})
}

func (h *Handler) whatsAppNumber() string {
	if h.opts.WhatsAppNumber == "" {
		return links.DefaultWhatsAppNumber
	}
	return h.opts.WhatsAppNumber
}

// endregion
