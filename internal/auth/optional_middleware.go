package auth

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a token and sets the user if present and valid,
// but does not fail if the token is missing or invalid.
func (g *Guard) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if BearerToken(c) != "" {
			if _, err := g.authenticate(c); err != nil {
				g.log.WithError(err).Debug("ignoring invalid optional token")
			}
		}
		c.Next()
	}
}
