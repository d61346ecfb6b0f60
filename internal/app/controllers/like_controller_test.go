package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/backend/internal/pkg/apperrors"
)

// stubLikeService serves canned replies so the controller's parameter
// dispatch and error mapping can be exercised without a database.
type stubLikeService struct {
	likePostErr   error
	likedPostIDs  []int64
	likeCounts    map[int64]int64
	postLikeCount int64
	isLiked       bool
}

func (s *stubLikeService) LikePost(ctx context.Context, postID int64, userEmail string) (int64, int64, error) {
	if s.likePostErr != nil {
		return 0, 0, s.likePostErr
	}
	return 11, 4, nil
}

func (s *stubLikeService) UnlikePost(ctx context.Context, postID int64, userEmail string) (*int64, int64, error) {
	return nil, 3, nil
}

func (s *stubLikeService) PostLikeCount(ctx context.Context, postID int64) (int64, error) {
	return s.postLikeCount, nil
}

func (s *stubLikeService) IsPostLiked(ctx context.Context, postID int64, userEmail string) (bool, error) {
	return s.isLiked, nil
}

func (s *stubLikeService) LikedPostIDs(ctx context.Context, userEmail string, postIDs []int64) ([]int64, error) {
	return s.likedPostIDs, nil
}

func (s *stubLikeService) LikeComment(ctx context.Context, commentID int64, userEmail string) (int64, int64, error) {
	return 21, 2, nil
}

func (s *stubLikeService) UnlikeComment(ctx context.Context, commentID int64, userEmail string) (*int64, int64, error) {
	return nil, 1, nil
}

func (s *stubLikeService) CommentLikeCount(ctx context.Context, commentID int64) (int64, error) {
	return 5, nil
}

func (s *stubLikeService) IsCommentLiked(ctx context.Context, commentID int64, userEmail string) (bool, error) {
	return s.isLiked, nil
}

func (s *stubLikeService) LikedCommentIDs(ctx context.Context, userEmail string, commentIDs []int64) ([]int64, error) {
	return s.likedPostIDs, nil
}

func (s *stubLikeService) CommentLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	return s.likeCounts, nil
}

func likeRouter(svc *stubLikeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewLikeController(svc)
	router.GET("/post-like", ctrl.GetPostLikes)
	router.POST("/post-like", ctrl.LikePost)
	router.DELETE("/post-like", ctrl.UnlikePost)
	router.GET("/comment-like", ctrl.GetCommentLikes)
	return router
}

func TestGetPostLikesCountForm(t *testing.T) {
	router := likeRouter(&stubLikeService{postLikeCount: 4})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post-like?postId=42", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likeCount": 4}`, rec.Body.String())
}

func TestGetPostLikesMembershipForm(t *testing.T) {
	router := likeRouter(&stubLikeService{isLiked: true})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post-like?postId=42&userEmail=jane@uni.edu", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isLiked": true}`, rec.Body.String())
}

func TestGetPostLikesBulkForm(t *testing.T) {
	router := likeRouter(&stubLikeService{likedPostIDs: []int64{1, 3}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post-like?userEmail=jane@uni.edu&postIds=1,2,3", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likedPostIds": [1, 3]}`, rec.Body.String())
}

func TestGetPostLikesNoParamsIsBadRequest(t *testing.T) {
	router := likeRouter(&stubLikeService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post-like", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCommentLikesBulkCountsForm(t *testing.T) {
	router := likeRouter(&stubLikeService{likeCounts: map[int64]int64{7: 2, 8: 0}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/comment-like?commentIds=7,8&counts=true", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"likeCounts": {"7": 2, "8": 0}}`, rec.Body.String())
}

func TestLikePostSuccess(t *testing.T) {
	router := likeRouter(&stubLikeService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/post-like",
		strings.NewReader(`{"postId": 42, "userEmail": "jane@uni.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"newLikeId": 11, "likeCount": 4}`, rec.Body.String())
}

func TestLikePostRateLimitedMapsTo429(t *testing.T) {
	router := likeRouter(&stubLikeService{likePostErr: apperrors.ErrRateLimited})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/post-like",
		strings.NewReader(`{"postId": 42, "userEmail": "jane@uni.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLikePostDuplicateMapsTo409(t *testing.T) {
	router := likeRouter(&stubLikeService{likePostErr: apperrors.NewConflictError("post already liked")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/post-like",
		strings.NewReader(`{"postId": 42, "userEmail": "jane@uni.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLikePostMissingBodyFieldsIs400(t *testing.T) {
	router := likeRouter(&stubLikeService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/post-like", strings.NewReader(`{"postId": 42}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnlikePostNeverLikedOmitsID(t *testing.T) {
	router := likeRouter(&stubLikeService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/post-like",
		strings.NewReader(`{"postId": 42, "userEmail": "jane@uni.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "deletedLikeId")
	assert.Contains(t, body, "likeCount")
}
