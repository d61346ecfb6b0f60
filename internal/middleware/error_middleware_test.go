package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/pkg/apperrors"
)

func handleOnTestContext(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/post", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, "bad request"},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden, "permission denied"},
		{"generic not found", apperrors.ErrResourceNotFound, http.StatusNotFound, "resource not found"},
		{"post not found", apperrors.ErrPostNotFound, http.StatusNotFound, "resource not found"},
		{"comment not found", apperrors.ErrCommentNotFound, http.StatusNotFound, "resource not found"},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, "conflict"},
		{"already liked", apperrors.ErrAlreadyLiked, http.StatusConflict, "conflict"},
		{"rate limited", apperrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
		{"unknown collapses to 500", errors.New("pq: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleOnTestContext(t, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestHandleAPIErrorCarriesDetails(t *testing.T) {
	rec, body := handleOnTestContext(t, apperrors.NewForbiddenError("only the comment author may edit a comment"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "permission denied", body.Error)
	assert.Equal(t, "only the comment author may edit a comment", body.Details)
}

func TestHandleAPIErrorWrappedSentinelStillMatches(t *testing.T) {
	wrapped := apperrors.NewCustomError(apperrors.ErrPostNotFound, "post does not exist")
	rec, body := handleOnTestContext(t, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "post does not exist", body.Details)
}

func TestHandleAPIErrorNeverLeaksStoreText(t *testing.T) {
	rec, body := handleOnTestContext(t, errors.New("ERROR: duplicate key value violates unique constraint"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", body.Error)
	assert.Empty(t, body.Details)
	assert.NotContains(t, rec.Body.String(), "duplicate key")
}
