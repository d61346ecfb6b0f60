package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/backend/internal/app/models/dto"
)

type stubPostService struct {
	gotFeed dto.PostFeedRequest
	posts   []dto.PostResponse
}

func (s *stubPostService) GetFeed(ctx context.Context, req dto.PostFeedRequest) ([]dto.PostResponse, error) {
	s.gotFeed = req
	return s.posts, nil
}

func (s *stubPostService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (int64, error) {
	return 42, nil
}

func (s *stubPostService) UpdatePost(ctx context.Context, req *dto.UpdatePostRequest) (int64, error) {
	return req.PostID, nil
}

func (s *stubPostService) DeletePost(ctx context.Context, req *dto.DeletePostRequest) (int64, error) {
	return req.PostID, nil
}

func postRouter(svc *stubPostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewPostController(svc)
	router.GET("/post", ctrl.GetFeed)
	return router
}

func TestGetFeedDefaults(t *testing.T) {
	svc := &stubPostService{posts: []dto.PostResponse{}}
	router := postRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "created_at", svc.gotFeed.OrderField)
	assert.Equal(t, "desc", svc.gotFeed.OrderDir)
	assert.Equal(t, uint64(20), svc.gotFeed.Limit)
	assert.Equal(t, uint64(0), svc.gotFeed.Offset)
	assert.Nil(t, svc.gotFeed.ClubID)
	assert.Nil(t, svc.gotFeed.ViewerEmail)
	assert.False(t, svc.gotFeed.FollowedOnly)
	assert.False(t, svc.gotFeed.UHTOnly)
}

func TestGetFeedMalformedPaginationIsClamped(t *testing.T) {
	svc := &stubPostService{posts: []dto.PostResponse{}}
	router := postRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post?limit=9999&offset=-5", nil))

	require.Equal(t, http.StatusOK, rec.Code, "malformed pagination is corrected, never rejected")
	assert.Equal(t, uint64(20), svc.gotFeed.Limit)
	assert.Equal(t, uint64(0), svc.gotFeed.Offset)
}

func TestGetFeedFiltersParsed(t *testing.T) {
	svc := &stubPostService{posts: []dto.PostResponse{}}
	router := postRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/post?club=7&u_email=jane@uni.edu&followedOnly=true&uhtOnly=true&search=housing&orderField=like_count&orderDir=asc&limit=50&offset=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotFeed.ClubID)
	assert.Equal(t, int64(7), *svc.gotFeed.ClubID)
	require.NotNil(t, svc.gotFeed.ViewerEmail)
	assert.Equal(t, "jane@uni.edu", *svc.gotFeed.ViewerEmail)
	assert.True(t, svc.gotFeed.FollowedOnly)
	assert.True(t, svc.gotFeed.UHTOnly)
	require.NotNil(t, svc.gotFeed.Search)
	assert.Equal(t, "housing", *svc.gotFeed.Search)
	assert.Equal(t, "like_count", svc.gotFeed.OrderField)
	assert.Equal(t, "asc", svc.gotFeed.OrderDir)
	assert.Equal(t, uint64(50), svc.gotFeed.Limit)
	assert.Equal(t, uint64(10), svc.gotFeed.Offset)
}

func TestGetFeedEmptyResultIsEmptyArray(t *testing.T) {
	router := postRouter(&stubPostService{posts: []dto.PostResponse{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/post?search=nomatch", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
