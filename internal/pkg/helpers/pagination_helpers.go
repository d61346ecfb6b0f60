package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ClampLimitOffset clamps raw pagination values into the accepted range.
// Malformed or out-of-range values are corrected, never rejected: limit is
// clamped to [1, MaxLimit] (default 20), offset to >= 0.
func ClampLimitOffset(limit, offset int) (uint64, uint64) {
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return uint64(limit), uint64(offset)
}

// ParseLimitOffset extracts limit/offset query parameters from the request,
// falling back to defaults when missing or unparsable.
func ParseLimitOffset(c *gin.Context) (uint64, uint64) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		limit = DefaultLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}
	return ClampLimitOffset(limit, offset)
}
