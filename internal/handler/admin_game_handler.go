package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gamestore/backend/internal/auth"
	"gamestore/backend/internal/events"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/pricing"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// region --- DTOs ---

// GameInput is the admin form for a game.
type GameInput struct {
	Title              string               `json:"title" binding:"required" example:"Stardew Valley"`
	Description        string               `json:"description" binding:"required"`
	Price              int64                `json:"price" binding:"min=0" example:"80000"`
	DiscountPercentage *int                 `json:"discount_percentage" example:"20"`
	DiscountAmount     *int64               `json:"discount_amount"`
	IsFree             bool                 `json:"is_free"`
	Genre              string               `json:"genre" binding:"required" example:"Simulation"`
	ImageURL           string               `json:"image_url"`
	Screenshots        []string             `json:"screenshots"`
	TrailerURL         string               `json:"trailer_url"`
	Platforms          []string             `json:"platforms" example:"PC,Switch"`
	AboutGame          string               `json:"about_game"`
	MinimumSpecs       *models.MinimumSpecs `json:"minimum_specs"`
	Developer          string               `json:"developer"`
	Publisher          string               `json:"publisher"`
	ReleaseDate        string               `json:"release_date" example:"2016-02-26"`
}

// endregion

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// toGame normalises the form the way the admin editor saves it.
func (in GameInput) toGame() (models.Game, error) {
	percentage, amount := in.DiscountPercentage, in.DiscountAmount
	if percentage != nil && *percentage == 0 {
		percentage = nil
	}
	if amount != nil && *amount == 0 {
		amount = nil
	}
	if in.IsFree {
		percentage, amount = nil, nil
	}
	if err := pricing.Validate(percentage, amount); err != nil {
		return models.Game{}, err
	}

	game := models.Game{
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Price:              in.Price,
		DiscountPercentage: percentage,
		DiscountAmount:     amount,
		IsFree:             in.IsFree,
		Genre:              strings.TrimSpace(in.Genre),
		ImageURL:           optional(in.ImageURL),
		TrailerURL:         optional(in.TrailerURL),
		AboutGame:          optional(in.AboutGame),
		Developer:          optional(in.Developer),
		Publisher:          optional(in.Publisher),
		ReleaseDate:        optional(in.ReleaseDate),
	}
	if screenshots := nonEmpty(in.Screenshots); len(screenshots) > 0 {
		game.Screenshots = datatypes.JSONSlice[string](screenshots)
	}
	platforms := nonEmpty(in.Platforms)
	if len(platforms) == 0 {
		platforms = []string{models.DefaultPlatform}
	}
	game.Platforms = datatypes.JSONSlice[string](platforms)
	if game.SupportsPlatform(models.DefaultPlatform) {
		game.SetSpecs(in.MinimumSpecs)
	}
	return game, nil
}

func (h *Handler) bindGame(c *gin.Context) (models.Game, bool) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return models.Game{}, false
	}
	game, err := input.toGame()
	if errors.Is(err, pricing.ErrConflictingDiscount) {
		h.fail(c, http.StatusBadRequest, "admin.discountConflict")
		return models.Game{}, false
	}
	if err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return models.Game{}, false
	}
	return game, true
}

// confirmed reports whether a destructive request carries confirm=true.
func (h *Handler) confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	if !ok {
		h.fail(c, http.StatusBadRequest, "admin.confirmDelete")
	}
	return ok
}

// region --- Admin Handlers ---

// ListAdminGames godoc
// @Summary      List all games
// @Description  Returns every game, newest first, for the admin dashboard.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[GameResponse]
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/games [get]
func (h *Handler) ListAdminGames(c *gin.Context) {
	page, limit := pageParams(c)
	games, err := h.repo.ListGames(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}
	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, Paginate(response, page, limit))
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Normalises and stores a new game.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	game, ok := h.bindGame(c)
	if !ok {
		return
	}

	created, err := h.repo.UpsertGame(auth.RequestContext(c), &game)
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	h.publish(c, events.GameCreated, events.GamePayload{ID: created.ID, Title: created.Title})
	c.JSON(http.StatusCreated, newGameResponse(*created))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces every field of a game. Last write wins.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string    true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /admin/games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	game, ok := h.bindGame(c)
	if !ok {
		return
	}
	game.ID = c.Param("id")

	updated, err := h.repo.UpsertGame(auth.RequestContext(c), &game)
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	h.publish(c, events.GameUpdated, events.GamePayload{ID: updated.ID, Title: updated.Title})
	c.JSON(http.StatusOK, newGameResponse(*updated))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game and its reviews. Requires confirm=true.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string true "Game ID"
// @Param        confirm query bool   true "Confirmation"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Missing confirmation"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	if !h.confirmed(c) {
		return
	}
	id := c.Param("id")
	ctx := auth.RequestContext(c)

	game, err := h.repo.GetGame(ctx, id)
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}
	if err := h.repo.DeleteGame(ctx, id); err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	h.hub.Close(id)
	h.publish(c, events.GameDeleted, events.GamePayload{ID: game.ID, Title: game.Title})
	c.JSON(http.StatusOK, MessageResponse{Message: h.tr.Msg(c, "admin.gameDeleted")})
}

// endregion
