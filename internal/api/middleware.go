package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smaite/karobar-ledger/internal/models"
)

const actorKey = "actor"

// ActorMiddleware reads the actor identity the auth gateway injects on every
// proxied request. Authentication itself happens upstream; this service only
// consumes the resulting id and role.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Staff-ID")
		role := models.Role(c.GetHeader("X-Staff-Role"))
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing staff identity"})
			return
		}
		switch role {
		case models.RoleOwner, models.RoleManager, models.RoleStaff:
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown staff role"})
			return
		}
		c.Set(actorKey, models.Actor{ID: id, Role: role})
		c.Next()
	}
}

func currentActor(c *gin.Context) models.Actor {
	actor, _ := c.Get(actorKey)
	return actor.(models.Actor)
}
