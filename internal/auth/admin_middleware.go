package auth

import (
	"errors"
	"net/http"

	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware checks the caller's profile for the admin flag.
// It must be used AFTER AuthMiddleware.
func (g *Guard) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": g.tr.Msg(c, "auth.unauthorized")})
			return
		}

		profile, err := g.identity.GetProfile(RequestContext(c), userID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			g.log.WithError(err).WithField("user_id", userID).Error("load profile")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": g.tr.Msg(c, "common.error")})
			return
		}

		if profile == nil || !profile.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": g.tr.Msg(c, "admin.noPermission")})
			return
		}

		c.Set(keyProfile, profile)
		c.Next()
	}
}
