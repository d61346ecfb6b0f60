package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/pkg/helpers"
)

func feedReq() dto.PostFeedRequest {
	limit, offset := helpers.ClampLimitOffset(20, 0)
	return dto.PostFeedRequest{
		OrderField: "created_at",
		OrderDir:   "desc",
		Limit:      limit,
		Offset:     offset,
	}
}

func TestFeedOrderClause(t *testing.T) {
	tests := []struct {
		field, dir string
		want       string
	}{
		{"created_at", "desc", "p.created_at DESC"},
		{"created_at", "asc", "p.created_at ASC"},
		{"like_count", "desc", "like_count DESC, p.id DESC"},
		{"like_count", "asc", "like_count ASC, p.id DESC"},
		// Unknown fields silently fall back instead of reaching the SQL.
		{"author_email; DROP TABLE posts", "desc", "p.created_at DESC"},
		{"", "", "p.created_at DESC"},
		{"created_at", "sideways", "p.created_at DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, feedOrderClause(tt.field, tt.dir), "field=%q dir=%q", tt.field, tt.dir)
	}
}

func TestBuildFeedQueryDefaults(t *testing.T) {
	sql, args, err := buildFeedQuery(feedReq())
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM posts p")
	assert.Contains(t, sql, "JOIN users u ON u.email = p.author_email")
	assert.Contains(t, sql, "LEFT JOIN clubs c ON c.id = p.club_id")
	assert.Contains(t, sql, "FALSE AS is_liked")
	assert.Contains(t, sql, "ORDER BY p.created_at DESC")
	assert.Contains(t, sql, "LIMIT 20")
	assert.Contains(t, sql, "OFFSET 0")
	assert.Empty(t, args)
}

func TestBuildFeedQueryViewerBindsIsLiked(t *testing.T) {
	req := feedReq()
	viewer := "jane@uni.edu"
	req.ViewerEmail = &viewer

	sql, args, err := buildFeedQuery(req)
	require.NoError(t, err)

	assert.Contains(t, sql, "pv.user_email = $1")
	assert.NotContains(t, sql, "FALSE AS is_liked")
	require.Len(t, args, 1)
	assert.Equal(t, viewer, args[0])
}

func TestBuildFeedQuerySearchMatchesPostOrComments(t *testing.T) {
	req := feedReq()
	search := "housing"
	req.Search = &search

	sql, args, err := buildFeedQuery(req)
	require.NoError(t, err)

	assert.Contains(t, sql, "p.content ILIKE $1")
	assert.Contains(t, sql, "cs.content ILIKE $2")
	assert.Equal(t, []interface{}{"%housing%", "%housing%"}, args)
}

func TestBuildFeedQuerySearchIsParameterized(t *testing.T) {
	req := feedReq()
	hostile := "'; DROP TABLE posts; --"
	req.Search = &hostile

	sql, args, err := buildFeedQuery(req)
	require.NoError(t, err)

	assert.NotContains(t, sql, "DROP TABLE")
	assert.Contains(t, args, "%"+hostile+"%")
}

func TestBuildFeedQueryUHTWithoutViewer(t *testing.T) {
	req := feedReq()
	req.UHTOnly = true

	sql, _, err := buildFeedQuery(req)
	require.NoError(t, err)

	assert.Contains(t, sql, "p.is_uht_related =")
	assert.Contains(t, sql, "p.club_id IS NULL")
}

func TestBuildFeedQueryUHTWithViewerWidensVisibility(t *testing.T) {
	req := feedReq()
	req.UHTOnly = true
	viewer := "jane@uni.edu"
	req.ViewerEmail = &viewer

	sql, args, err := buildFeedQuery(req)
	require.NoError(t, err)

	assert.Contains(t, sql, "cf.follower_email =")
	assert.Contains(t, sql, "c.creator_email =")
	// is_liked binding, the is_uht_related value, and the two visibility
	// bindings.
	assert.Len(t, args, 4)
}

func TestBuildFeedQueryFollowedOnlyRequiresViewer(t *testing.T) {
	req := feedReq()
	req.FollowedOnly = true

	sql, _, err := buildFeedQuery(req)
	require.NoError(t, err)
	assert.NotContains(t, sql, "club_followers", "followedOnly without a viewer is a no-op")

	viewer := "jane@uni.edu"
	req.ViewerEmail = &viewer
	sql, _, err = buildFeedQuery(req)
	require.NoError(t, err)
	assert.Contains(t, sql, "p.club_id IN (SELECT cf.club_id FROM club_followers")
}

func TestBuildFeedQueryClubFilter(t *testing.T) {
	req := feedReq()
	clubID := int64(7)
	req.ClubID = &clubID

	sql, args, err := buildFeedQuery(req)
	require.NoError(t, err)

	assert.Contains(t, sql, "p.club_id =")
	assert.Contains(t, args, clubID)
}

func TestBuildFeedQueryLikeCountTieBreak(t *testing.T) {
	req := feedReq()
	req.OrderField = "like_count"

	sql, _, err := buildFeedQuery(req)
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY like_count DESC, p.id DESC")
}
