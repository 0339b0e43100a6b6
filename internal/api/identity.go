package api

import (
	"net/http"

	"github.com/novusx/novusx-server/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IdentityRequired validates the player identity headers and injects them
// into the request context. The UUID is issued by RegisterPlayer; clients
// send it back on every call.
func IdentityRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderPlayerUUID)
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrIdentityRequired})
			return
		}
		c.Set("playerUUID", id)
		if name := c.GetHeader(constants.HeaderPlayerName); name != "" {
			c.Set("playerName", name)
		}
		c.Next()
	}
}

// playerIdentity reads the identity injected by IdentityRequired.
func playerIdentity(c *gin.Context) (uuid, name string) {
	if v, ok := c.Get("playerUUID"); ok {
		uuid, _ = v.(string)
	}
	if v, ok := c.Get("playerName"); ok {
		name, _ = v.(string)
	}
	return uuid, name
}
