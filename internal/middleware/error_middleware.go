package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/pkg/apperrors"
	"github.com/campuslink/backend/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the wire shape
// {"error": string, "details"?: string}. The error field carries the stable
// category text, details the per-case message. Raw store errors never reach
// the client; anything unrecognized collapses to a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	details := apperrors.Detail(err)

	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, "bad request", details)
	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, "permission denied", details)
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound, apperrors.ErrPostNotFound, apperrors.ErrCommentNotFound,
		apperrors.ErrClubNotFound, apperrors.ErrEventNotFound):
		respond(c, http.StatusNotFound, "resource not found", details)
	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrAlreadyLiked, apperrors.ErrAlreadyFollowing, apperrors.ErrAlreadyJoined):
		respond(c, http.StatusConflict, "conflict", details)
	case apperrors.Is(err, apperrors.ErrRateLimited):
		respond(c, http.StatusTooManyRequests, "too many requests", details)
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, "internal server error", "")
	}
}

// HandleValidationError maps a request binding failure to a 400 with the
// binding message as details.
func HandleValidationError(c *gin.Context, err error) {
	respond(c, http.StatusBadRequest, "bad request", err.Error())
}

func respond(c *gin.Context, status int, message, details string) {
	resp := dto.NewErrorResponse(message)
	if details != "" {
		resp = resp.WithDetails(details)
	}
	c.JSON(status, resp)
}
