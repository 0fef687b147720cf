package handlers

import (
	"errors"
	"net/http"

	"oficina_xpto/internal/adapter/http/middleware"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingActor   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing actor identity", http.StatusUnauthorized)
)

// mapWorkflowError translates a usecase error into the HTTP envelope. Every
// workflow error wraps exactly one kind, so the mapping is by kind.
func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainError("PERMISSION_DENIED", err.Error(), err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mustActor fetches the actor set by the middleware; a missing actor means the
// route was wired without it, answered as 401.
func mustActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}
