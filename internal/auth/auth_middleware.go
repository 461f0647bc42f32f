package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token.
func (g *Guard) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := g.authenticate(c); err != nil {
			g.log.WithError(err).WithField("path", c.Request.URL.Path).Debug("authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": g.tr.Msg(c, "auth.unauthorized")})
			return
		}
		c.Next()
	}
}
