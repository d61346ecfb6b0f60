package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimitOffset(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		wantLimit     uint64
		wantOffset    uint64
	}{
		{"in range passes through", 50, 10, 50, 10},
		{"zero limit falls back to default", 0, 0, 20, 0},
		{"negative limit falls back to default", -5, 0, 20, 0},
		{"limit above max falls back to default", 500, 0, 20, 0},
		{"max limit is accepted", 100, 0, 100, 0},
		{"limit of one is accepted", 1, 0, 1, 0},
		{"negative offset clamps to zero", 20, -3, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := ClampLimitOffset(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
