package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/services"
	"github.com/campuslink/backend/internal/middleware"
	"github.com/campuslink/backend/internal/pkg/apperrors"
)

// CommentController handles the flat and threaded comment reads and the
// comment write path.
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// GetComments handles the flat comment listing of one post.
// @Summary List comments of a post
// @Description Retrieves the flat comment rows of a post, oldest first. The client rebuilds the reply tree from parent_id.
// @Tags comments
// @Produce json
// @Param postId query int true "Post id"
// @Param search query string false "Case-insensitive substring match on comment bodies"
// @Success 200 {array} dto.CommentResponse "Comments retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed postId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /comment [get]
func (c *CommentController) GetComments(ctx *gin.Context) {
	postID, err := strconv.ParseInt(ctx.Query("postId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("postId is required and must be an integer"))
		return
	}

	var search *string
	if s := ctx.Query("search"); s != "" {
		search = &s
	}

	comments, err := c.commentService.ListComments(ctx, postID, search)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// GetCommentTree handles the nested reply forest of one post.
// @Summary Get the comment tree of a post
// @Description Retrieves comments as a nested forest. Sibling order is oldest first; reply_count counts all descendants. Orphaned replies are excluded.
// @Tags comments
// @Produce json
// @Param postId query int true "Post id"
// @Success 200 {array} dto.CommentTreeNode "Tree retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed postId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /comment/tree [get]
func (c *CommentController) GetCommentTree(ctx *gin.Context) {
	postID, err := strconv.ParseInt(ctx.Query("postId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("postId is required and must be an integer"))
		return
	}

	tree, err := c.commentService.GetCommentTree(ctx, postID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tree)
}

// CreateComment handles posting a comment or a reply.
// @Summary Create a comment
// @Description Adds a comment to a post. With parentId the comment becomes a reply; the parent must sit on the same post.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "Comment content and placement"
// @Success 200 {object} dto.CreateCommentResponse "Comment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid body or cross-post parent"
// @Failure 404 {object} dto.ErrorResponse "Post or author not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /comment [post]
func (c *CommentController) CreateComment(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.commentService.CreateComment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateCommentResponse{Message: "comment created", CommentID: id})
}

// UpdateComment handles editing a comment body.
// @Summary Update a comment
// @Description Replaces the body of a comment. Only the comment author may edit.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body dto.UpdateCommentRequest true "Comment id and new body"
// @Success 200 {object} dto.UpdateCommentResponse "Comment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Not the comment author"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /comment [put]
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	updated, err := c.commentService.UpdateComment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateCommentResponse{UpdatedCommentID: req.CommentID, UpdatedComment: updated})
}

// DeleteComment handles removing a comment.
// @Summary Delete a comment
// @Description Removes a comment; its replies stay in storage and drop out of the tree. Allowed for the comment author, the post author, a system admin, or the club creator.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body dto.DeleteCommentRequest true "Comment id and requesting user"
// @Success 200 {object} dto.DeleteCommentResponse "Comment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to delete this comment"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /comment [delete]
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	var req dto.DeleteCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.commentService.DeleteComment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteCommentResponse{DeletedCommentID: id})
}
