package auth

import (
	"context"
	"strings"

	"gamestore/backend/internal/i18n"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Context keys set by the middlewares.
const (
	keyUser        = "user"
	keyUserID      = "userID"
	keyAccessToken = "accessToken"
	keyProfile     = "profile"
)

// Identity is the part of the store the middlewares need.
type Identity interface {
	GetUser(ctx context.Context, accessToken string) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
}

// Guard builds the authentication middlewares.
type Guard struct {
	identity Identity
	tr       *i18n.Translator
	log      logrus.FieldLogger
}

// NewGuard creates a Guard.
func NewGuard(identity Identity, tr *i18n.Translator, log logrus.FieldLogger) *Guard {
	return &Guard{identity: identity, tr: tr, log: log}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// authenticate resolves the bearer token and stores the caller on c.
func (g *Guard) authenticate(c *gin.Context) (*models.User, error) {
	token := BearerToken(c)
	if token == "" {
		return nil, store.ErrUnauthorized
	}
	user, err := g.identity.GetUser(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}
	c.Set(keyUser, user)
	c.Set(keyUserID, user.ID)
	c.Set(keyAccessToken, token)
	return user, nil
}

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(keyUser); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// UserID returns the authenticated user's id, or "".
func UserID(c *gin.Context) string {
	return c.GetString(keyUserID)
}

// CurrentProfile returns the profile loaded by AdminMiddleware, or nil.
func CurrentProfile(c *gin.Context) *models.Profile {
	if v, ok := c.Get(keyProfile); ok {
		if profile, ok := v.(*models.Profile); ok {
			return profile
		}
	}
	return nil
}

// RequestContext is the request context carrying the caller's access token,
// so the store can act on the caller's behalf.
func RequestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token := c.GetString(keyAccessToken); token != "" {
		return store.WithAccessToken(ctx, token)
	}
	return ctx
}
