package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/services"
	"github.com/campuslink/backend/internal/middleware"
	"github.com/campuslink/backend/internal/pkg/apperrors"
)

// LikeController handles post and comment likes. The GET endpoints dispatch
// on which query parameters are present.
type LikeController struct {
	likeService services.LikeService
}

// NewLikeController creates a new LikeController.
func NewLikeController(likeService services.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// GetPostLikes answers the read forms of /post-like:
// postId alone returns the count, postId+userEmail the viewer's like state,
// and userEmail+postIds the subset of the given posts the user has liked.
// @Summary Query post likes
// @Description Dispatches on the present query parameters: count, membership, or bulk liked-ids form.
// @Tags likes
// @Produce json
// @Param postId query int false "Post id (count or membership form)"
// @Param userEmail query string false "User email (membership or bulk form)"
// @Param postIds query string false "Comma-separated post ids (bulk form)"
// @Success 200 {object} dto.LikeCountResponse "One of the three reply shapes"
// @Failure 400 {object} dto.ErrorResponse "No recognizable parameter combination"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /post-like [get]
func (c *LikeController) GetPostLikes(ctx *gin.Context) {
	postIDStr := ctx.Query("postId")
	userEmail := ctx.Query("userEmail")
	postIDsStr := ctx.Query("postIds")

	switch {
	case userEmail != "" && postIDsStr != "":
		ids, err := parseIDList(postIDsStr)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("postIds must be comma-separated integers"))
			return
		}
		liked, err := c.likeService.LikedPostIDs(ctx, userEmail, ids)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.LikedPostIDsResponse{LikedPostIDs: liked})

	case postIDStr != "" && userEmail != "":
		postID, err := strconv.ParseInt(postIDStr, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("postId must be an integer"))
			return
		}
		isLiked, err := c.likeService.IsPostLiked(ctx, postID, userEmail)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.IsLikedResponse{IsLiked: isLiked})

	case postIDStr != "":
		postID, err := strconv.ParseInt(postIDStr, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("postId must be an integer"))
			return
		}
		count, err := c.likeService.PostLikeCount(ctx, postID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.LikeCountResponse{LikeCount: count})

	default:
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("provide postId, postId+userEmail, or userEmail+postIds"))
	}
}

// LikePost handles POST /post-like.
// @Summary Like a post
// @Description Records a like. Liking twice is a conflict; the operation counts against the user's rate budget.
// @Tags likes
// @Accept json
// @Produce json
// @Param request body dto.LikeRequest true "Post id and user"
// @Success 200 {object} dto.CreateLikeResponse "Like recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 409 {object} dto.ErrorResponse "Already liked"
// @Failure 429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /post-like [post]
func (c *LikeController) LikePost(ctx *gin.Context) {
	var req dto.LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, count, err := c.likeService.LikePost(ctx, req.PostID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateLikeResponse{NewLikeID: id, LikeCount: count})
}

// UnlikePost handles DELETE /post-like.
// @Summary Unlike a post
// @Description Removes a like. Unliking a post that was never liked succeeds with no id. Counts against the rate budget.
// @Tags likes
// @Accept json
// @Produce json
// @Param request body dto.LikeRequest true "Post id and user"
// @Success 200 {object} dto.DeleteLikeResponse "Like removed or nothing to remove"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /post-like [delete]
func (c *LikeController) UnlikePost(ctx *gin.Context) {
	var req dto.LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	deletedID, count, err := c.likeService.UnlikePost(ctx, req.PostID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteLikeResponse{DeletedLikeID: deletedID, LikeCount: count})
}

// GetCommentLikes answers the read forms of /comment-like. It mirrors the
// post-like dispatch and adds the bulk counts form commentIds+counts=true.
// @Summary Query comment likes
// @Description Dispatches on the present query parameters: count, membership, bulk liked-ids, or bulk counts form.
// @Tags likes
// @Produce json
// @Param commentId query int false "Comment id (count or membership form)"
// @Param userEmail query string false "User email (membership or bulk form)"
// @Param commentIds query string false "Comma-separated comment ids (bulk forms)"
// @Param counts query bool false "With commentIds, return a per-id count map"
// @Success 200 {object} dto.LikeCountResponse "One of the four reply shapes"
// @Failure 400 {object} dto.ErrorResponse "No recognizable parameter combination"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /comment-like [get]
func (c *LikeController) GetCommentLikes(ctx *gin.Context) {
	commentIDStr := ctx.Query("commentId")
	userEmail := ctx.Query("userEmail")
	commentIDsStr := ctx.Query("commentIds")

	switch {
	case commentIDsStr != "" && ctx.Query("counts") == "true":
		ids, err := parseIDList(commentIDsStr)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("commentIds must be comma-separated integers"))
			return
		}
		counts, err := c.likeService.CommentLikeCounts(ctx, ids)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.LikeCountsResponse{LikeCounts: counts})

	case userEmail != "" && commentIDsStr != "":
		ids, err := parseIDList(commentIDsStr)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("commentIds must be comma-separated integers"))
			return
		}
		liked, err := c.likeService.LikedCommentIDs(ctx, userEmail, ids)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.LikedCommentIDsResponse{LikedCommentIDs: liked})

	case commentIDStr != "" && userEmail != "":
		commentID, err := strconv.ParseInt(commentIDStr, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("commentId must be an integer"))
			return
		}
		isLiked, err := c.likeService.IsCommentLiked(ctx, commentID, userEmail)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.IsLikedResponse{IsLiked: isLiked})

	case commentIDStr != "":
		commentID, err := strconv.ParseInt(commentIDStr, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("commentId must be an integer"))
			return
		}
		count, err := c.likeService.CommentLikeCount(ctx, commentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.LikeCountResponse{LikeCount: count})

	default:
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("provide commentId, commentId+userEmail, userEmail+commentIds, or commentIds+counts=true"))
	}
}

// LikeComment handles POST /comment-like.
// @Summary Like a comment
// @Description Records a like on a comment. Liking twice is a conflict. Comment likes are not rate limited.
// @Tags likes
// @Accept json
// @Produce json
// @Param request body dto.CommentLikeRequest true "Comment id and user"
// @Success 200 {object} dto.CreateLikeResponse "Like recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Failure 409 {object} dto.ErrorResponse "Already liked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /comment-like [post]
func (c *LikeController) LikeComment(ctx *gin.Context) {
	var req dto.CommentLikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, count, err := c.likeService.LikeComment(ctx, req.CommentID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateLikeResponse{NewLikeID: id, LikeCount: count})
}

// UnlikeComment handles DELETE /comment-like.
// @Summary Unlike a comment
// @Description Removes a comment like; a like that never existed is a no-op success.
// @Tags likes
// @Accept json
// @Produce json
// @Param request body dto.CommentLikeRequest true "Comment id and user"
// @Success 200 {object} dto.DeleteLikeResponse "Like removed or nothing to remove"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /comment-like [delete]
func (c *LikeController) UnlikeComment(ctx *gin.Context) {
	var req dto.CommentLikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	deletedID, count, err := c.likeService.UnlikeComment(ctx, req.CommentID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteLikeResponse{DeletedLikeID: deletedID, LikeCount: count})
}

// parseIDList parses a comma-separated id list. Empty segments are skipped;
// a non-numeric segment fails the whole list.
func parseIDList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
