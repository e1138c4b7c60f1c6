package handlers

import (
	"errors"
	"net/http"

	"gradproject-teams/internal/api/middleware"
	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Success            bool                          `json:"success"`
	Error              string                        `json:"error" example:"error message"`
	ConflictingMembers []apperrors.ConflictingMember `json:"conflictingMembers,omitempty"`
}

// respondError writes err with the status its kind maps to
func respondError(c *gin.Context, err error) {
	var (
		validation *apperrors.ValidationError
		conflict   *apperrors.ConflictError
		authz      *apperrors.AuthorizationError
	)

	switch {
	case errors.Is(err, apperrors.ErrVisibilityLocked):
		c.JSON(http.StatusConflict, ErrorResponse{Error: apperrors.ErrVisibilityLocked.Message})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validation.Message})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflict.Message, ConflictingMembers: conflict.Members})
	case errors.As(err, &authz):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: authz.Message})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// actorEmail returns the email a request acts as. An authenticated caller
// always acts as themselves and naming anyone else is rejected. Without
// authentication the requested email is trusted.
func actorEmail(c *gin.Context, email string) (string, error) {
	caller, ok := middleware.GetUserEmail(c)
	if !ok {
		return email, nil
	}
	if email != "" && !sameEmail(caller, email) {
		return "", apperrors.ErrActorMismatch
	}
	return caller, nil
}
