package middleware

import (
	"net/http"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// Set by the API gateway after token verification; the workflow trusts
	// them as the verified identity of the caller.
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
)

var errMissingActor = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid actor identity", http.StatusUnauthorized)

// Actor extracts the verified {actorId, role} pair from the gateway headers
// and stores it on the gin context. Requests without a valid pair are
// rejected before reaching any handler.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderActorID))
		role := entities.Role(strings.TrimSpace(c.GetHeader(HeaderActorRole)))
		if id == "" || !role.Valid() {
			c.AbortWithStatusJSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
			return
		}
		c.Set(actorContextKey, entities.Actor{ID: id, Role: role})
		c.Next()
	}
}

// ActorFromContext returns the actor stored by the Actor middleware.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
