package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/pkg/apperrors"
)

type stubCommentService struct {
	comments  []dto.CommentResponse
	tree      []dto.CommentTreeNode
	createErr error
	updateErr error
	deleteErr error
}

func (s *stubCommentService) ListComments(ctx context.Context, postID int64, search *string) ([]dto.CommentResponse, error) {
	return s.comments, nil
}

func (s *stubCommentService) GetCommentTree(ctx context.Context, postID int64) ([]dto.CommentTreeNode, error) {
	return s.tree, nil
}

func (s *stubCommentService) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	return 7, nil
}

func (s *stubCommentService) UpdateComment(ctx context.Context, req *dto.UpdateCommentRequest) (string, error) {
	if s.updateErr != nil {
		return "", s.updateErr
	}
	return req.NewComment, nil
}

func (s *stubCommentService) DeleteComment(ctx context.Context, req *dto.DeleteCommentRequest) (int64, error) {
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	return req.CommentID, nil
}

func commentRouter(svc *stubCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCommentController(svc)
	router.GET("/comment", ctrl.GetComments)
	router.GET("/comment/tree", ctrl.GetCommentTree)
	router.POST("/comment", ctrl.CreateComment)
	router.PUT("/comment", ctrl.UpdateComment)
	router.DELETE("/comment", ctrl.DeleteComment)
	return router
}

func TestGetCommentsRequiresPostID(t *testing.T) {
	router := commentRouter(&stubCommentService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comment", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comment?postId=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCommentsEmptyPostIsEmptyArray(t *testing.T) {
	router := commentRouter(&stubCommentService{comments: []dto.CommentResponse{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comment?postId=42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetCommentTreeEmptyForest(t *testing.T) {
	router := commentRouter(&stubCommentService{tree: []dto.CommentTreeNode{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/comment/tree?postId=42", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateCommentSuccess(t *testing.T) {
	router := commentRouter(&stubCommentService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comment",
		strings.NewReader(`{"postId": 42, "userEmail": "jane@uni.edu", "comment": "Same question here"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "comment created", "commentId": 7}`, rec.Body.String())
}

func TestCreateCommentCrossPostParentIs400(t *testing.T) {
	router := commentRouter(&stubCommentService{
		createErr: apperrors.NewBadRequestError("parent comment belongs to a different post"),
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comment",
		strings.NewReader(`{"postId": 42, "userEmail": "jane@uni.edu", "comment": "reply", "parentId": 9}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "different post")
}

func TestCreateCommentMissingPostIs404(t *testing.T) {
	router := commentRouter(&stubCommentService{
		createErr: apperrors.NewCustomError(apperrors.ErrPostNotFound, "post does not exist"),
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/comment",
		strings.NewReader(`{"postId": 42, "userEmail": "jane@uni.edu", "comment": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCommentForbiddenIs403(t *testing.T) {
	router := commentRouter(&stubCommentService{
		updateErr: apperrors.NewForbiddenError("only the comment author may edit a comment"),
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/comment",
		strings.NewReader(`{"commentId": 7, "userEmail": "other@uni.edu", "newComment": "edited"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateCommentEchoesNewBody(t *testing.T) {
	router := commentRouter(&stubCommentService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/comment",
		strings.NewReader(`{"commentId": 7, "userEmail": "jane@uni.edu", "newComment": "edited text"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updatedCommentId": 7, "updatedComment": "edited text"}`, rec.Body.String())
}

func TestDeleteCommentSuccess(t *testing.T) {
	router := commentRouter(&stubCommentService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/comment",
		strings.NewReader(`{"commentId": 7, "userEmail": "jane@uni.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCommentId": 7}`, rec.Body.String())
}
