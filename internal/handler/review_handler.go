package handler

import (
	"context"
	"errors"
	"net/http"

	"gamestore/backend/internal/auth"
	"gamestore/backend/internal/events"
	"gamestore/backend/internal/hub"
	"gamestore/backend/internal/metrics"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/stats"
	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
)

const streamBuffer = 8

// region --- DTOs ---

// ReviewInput is the review form. IsRecommended defaults to true.
type ReviewInput struct {
	Rating        int    `json:"rating" binding:"required" example:"5"`
	IsRecommended *bool  `json:"is_recommended" example:"true"`
	ReviewText    string `json:"review_text" example:"Sangat seru!"`
}

// ReviewListResponse lists a game's reviews with their aggregate.
type ReviewListResponse struct {
	Data     []models.Review     `json:"data"`
	Summary  stats.ReviewSummary `json:"summary"`
	MyReview *models.Review      `json:"my_review"`
}

// ReviewSavedResponse is returned after a review is written.
type ReviewSavedResponse struct {
	Message string              `json:"message"`
	Review  models.Review       `json:"review"`
	Summary stats.ReviewSummary `json:"summary"`
}

// ReviewStreamPayload is the data of every live review event.
type ReviewStreamPayload struct {
	ReviewID string              `json:"review_id,omitempty"`
	Summary  stats.ReviewSummary `json:"summary"`
}

// endregion

// summaryFor recomputes the aggregate after a change and pushes it to live streams.
func (h *Handler) summaryFor(ctx context.Context, gameID string) (stats.ReviewSummary, error) {
	reviews, err := h.repo.ListReviews(ctx, gameID)
	if err != nil {
		return stats.ReviewSummary{}, err
	}
	return stats.Summarize(reviews), nil
}

func (h *Handler) broadcast(t events.Type, gameID, reviewID string, summary stats.ReviewSummary) {
	h.hub.Broadcast(gameID, hub.Event{
		Type:    string(t),
		Payload: ReviewStreamPayload{ReviewID: reviewID, Summary: summary},
	})
}

// region --- Review Handlers ---

// GetReviews godoc
// @Summary      List reviews of a game
// @Description  Reviews newest first with the rating summary. my_review is set when the caller has reviewed the game.
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200 {object} ReviewListResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/reviews [get]
func (h *Handler) GetReviews(c *gin.Context) {
	ctx := auth.RequestContext(c)
	gameID := c.Param("id")
	if _, err := h.repo.GetGame(ctx, gameID); err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	reviews, err := h.repo.ListReviews(ctx, gameID)
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	response := ReviewListResponse{Data: reviews, Summary: stats.Summarize(reviews)}
	if userID := auth.UserID(c); userID != "" {
		response.MyReview = stats.FindByAuthor(reviews, userID)
	}
	c.JSON(http.StatusOK, response)
}

// SubmitReview godoc
// @Summary      Write or edit a review
// @Description  Creates the caller's review of a game, or updates it when one already exists.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path string      true "Game ID"
// @Param        input body ReviewInput true "Review"
// @Success      200 {object} ReviewSavedResponse "Updated"
// @Success      201 {object} ReviewSavedResponse "Created"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/reviews [post]
func (h *Handler) SubmitReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, http.StatusBadRequest, "validation.invalidInput")
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		h.fail(c, http.StatusBadRequest, "reviews.ratingRange")
		return
	}

	ctx := auth.RequestContext(c)
	gameID := c.Param("id")
	userID := auth.UserID(c)
	if _, err := h.repo.GetGame(ctx, gameID); err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	reviews, err := h.repo.ListReviews(ctx, gameID)
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	review := models.Review{GameID: gameID, UserID: userID, IsRecommended: true}
	status := http.StatusCreated
	if existing := stats.FindByAuthor(reviews, userID); existing != nil {
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
		status = http.StatusOK
	}
	review.Rating = input.Rating
	if input.IsRecommended != nil {
		review.IsRecommended = *input.IsRecommended
	}
	review.ReviewText = optional(input.ReviewText)

	saved, err := h.repo.UpsertReview(ctx, &review)
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	summary, err := h.summaryFor(ctx, gameID)
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}
	h.broadcast(events.ReviewSubmitted, gameID, saved.ID, summary)
	h.publish(c, events.ReviewSubmitted, events.ReviewPayload{
		GameID:   gameID,
		ReviewID: saved.ID,
		UserID:   userID,
		Rating:   saved.Rating,
	})

	c.JSON(status, ReviewSavedResponse{Message: h.tr.Msg(c, "reviews.saved"), Review: *saved, Summary: summary})
}

// DeleteReview godoc
// @Summary      Delete a review
// @Description  Deletes a review. Only its author or an admin may do so.
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id       path string true "Game ID"
// @Param        reviewID path string true "Review ID"
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Not the author"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /games/{id}/reviews/{reviewID} [delete]
func (h *Handler) DeleteReview(c *gin.Context) {
	ctx := auth.RequestContext(c)
	gameID := c.Param("id")
	userID := auth.UserID(c)

	review, err := h.repo.GetReview(ctx, c.Param("reviewID"))
	if err != nil {
		h.storeError(c, err, "common.error")
		return
	}
	if review.GameID != gameID {
		h.fail(c, http.StatusNotFound, "common.error")
		return
	}
	if review.UserID != userID {
		profile, err := h.repo.GetProfile(ctx, userID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			h.storeError(c, err, "common.error")
			return
		}
		if profile == nil || !profile.IsAdmin {
			h.fail(c, http.StatusForbidden, "reviews.notYours")
			return
		}
	}

	if err := h.repo.DeleteReview(ctx, review.ID); err != nil {
		h.storeError(c, err, "common.error")
		return
	}

	summary, err := h.summaryFor(ctx, gameID)
	if err != nil {
		h.storeError(c, err, "common.error")
		return
	}
	h.broadcast(events.ReviewDeleted, gameID, review.ID, summary)
	h.publish(c, events.ReviewDeleted, events.ReviewPayload{GameID: gameID, ReviewID: review.ID, UserID: review.UserID})

	c.JSON(http.StatusOK, MessageResponse{Message: h.tr.Msg(c, "reviews.deleted")})
}

// StreamReviews godoc
// @Summary      Live review feed
// @Description  Server-Sent Events carrying the new review summary whenever a review of the game is written or deleted.
// @Tags         reviews
// @Produce      text/event-stream
// @Param        id path string true "Game ID"
// @Success      200 {string} string "event stream"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/reviews/stream [get]
func (h *Handler) StreamReviews(c *gin.Context) {
	ctx := c.Request.Context()
	gameID := c.Param("id")

	summary, err := h.summaryFor(ctx, gameID)
	if err == nil {
		_, err = h.repo.GetGame(ctx, gameID)
	}
	if err != nil {
		h.storeError(c, err, "gameDetail.gameNotFound")
		return
	}

	client := make(hub.Client, streamBuffer)
	h.hub.Subscribe(gameID, client)
	metrics.StreamOpened()
	defer func() {
		h.hub.Unsubscribe(gameID, client)
		metrics.StreamClosed()
	}()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent("summary", ReviewStreamPayload{Summary: summary})
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("review", string(msg))
			c.Writer.Flush()
		}
	}
}

// endregion
