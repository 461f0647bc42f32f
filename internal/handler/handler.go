// Package handler exposes the storefront as a JSON API.
package handler

import (
	"errors"
	"net/http"

	"gamestore/backend/internal/events"
	"gamestore/backend/internal/hub"
	"gamestore/backend/internal/i18n"
	"gamestore/backend/internal/logging"
	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Options carries the settings handlers need besides their collaborators.
type Options struct {
	WhatsAppNumber string
	InstagramURL   string
	// SiteURL is the frontend origin used in password reset redirects.
	SiteURL string
}

// Handler serves every API route.
type Handler struct {
	repo   store.Repository
	tr     *i18n.Translator
	events events.Publisher
	hub    *hub.Hub
	log    logrus.FieldLogger
	opts   Options
}

// New creates a Handler.
func New(repo store.Repository, tr *i18n.Translator, publisher events.Publisher, h *hub.Hub, log logrus.FieldLogger, opts Options) *Handler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if h == nil {
		h = hub.NewHub()
	}
	return &Handler{repo: repo, tr: tr, events: publisher, hub: h, log: log, opts: opts}
}

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Terjadi kesalahan"`
}

// MessageResponse carries a localized confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Ulasan disimpan"`
}

// endregion

// fail answers with a localized message and the given status.
func (h *Handler) fail(c *gin.Context, status int, key string) {
	c.AbortWithStatusJSON(status, gin.H{"error": h.tr.Msg(c, key)})
}

// storeError maps a store error onto a status. notFoundKey names the message
// for a missing record. Unexpected errors are logged, never shown.
func (h *Handler) storeError(c *gin.Context, err error, notFoundKey string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.fail(c, http.StatusNotFound, notFoundKey)
	case errors.Is(err, store.ErrUnauthorized):
		h.fail(c, http.StatusUnauthorized, "auth.unauthorized")
	case errors.Is(err, store.ErrForbidden):
		h.fail(c, http.StatusForbidden, "admin.noPermission")
	case errors.Is(err, store.ErrInvalidCredentials):
		h.fail(c, http.StatusUnauthorized, "auth.invalidCredentials")
	case errors.Is(err, store.ErrEmailTaken):
		h.fail(c, http.StatusConflict, "auth.emailTaken")
	case errors.Is(err, store.ErrConflict):
		h.fail(c, http.StatusConflict, "common.error")
	default:
		logging.FromContext(c, h.log).WithError(err).WithField("path", c.FullPath()).Error("store call failed")
		h.fail(c, http.StatusInternalServerError, "common.error")
	}
}

// publish sends an event. Failures are already logged by the publisher chain.
func (h *Handler) publish(c *gin.Context, t events.Type, payload any) {
	if err := h.events.Publish(c.Request.Context(), events.New(t, payload)); err != nil {
		logging.FromContext(c, h.log).WithError(err).WithField("event", t).Debug("event not delivered")
	}
}

// Ping godoc
// @Summary      Health check
// @Description  Reports whether the backing store is reachable.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string "{"message": "pong"}"
// @Failure      503 {object} ErrorResponse
// @Router       /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		logging.FromContext(c, h.log).WithError(err).Warn("store ping failed")
		h.fail(c, http.StatusServiceUnavailable, "common.error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
