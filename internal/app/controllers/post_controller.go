package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/services"
	"github.com/campuslink/backend/internal/middleware"
	"github.com/campuslink/backend/internal/pkg/helpers"
)

// PostController handles the feed read and the post write path.
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController.
func NewPostController(postService services.PostService) *PostController {
	return &PostController{postService: postService}
}

// GetFeed handles the filtered, ordered, paginated feed query.
// @Summary Get the post feed
// @Description Retrieves enriched posts with author info, counts and the viewer's like state. All filters are optional; malformed pagination is clamped, unknown order fields fall back to created_at.
// @Tags posts
// @Produce json
// @Param club query int false "Only posts addressed to this club"
// @Param u_email query string false "Viewer email, enables is_liked and the followed/UHT visibility widening"
// @Param followedOnly query bool false "Only posts from clubs the viewer follows"
// @Param uhtOnly query bool false "Only university-housing-topic posts visible to the viewer"
// @Param search query string false "Case-insensitive substring match on post or comment bodies"
// @Param orderField query string false "Order field: created_at or like_count" default(created_at)
// @Param orderDir query string false "Order direction: asc or desc" default(desc)
// @Param limit query int false "Page size (max 100)" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} dto.PostResponse "Feed retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /post [get]
func (c *PostController) GetFeed(ctx *gin.Context) {
	req := dto.PostFeedRequest{
		OrderField:   ctx.DefaultQuery("orderField", "created_at"),
		OrderDir:     ctx.DefaultQuery("orderDir", "desc"),
		FollowedOnly: ctx.Query("followedOnly") == "true",
		UHTOnly:      ctx.Query("uhtOnly") == "true",
	}
	req.Limit, req.Offset = helpers.ParseLimitOffset(ctx)

	if clubIDStr := ctx.Query("club"); clubIDStr != "" {
		if clubID, err := strconv.ParseInt(clubIDStr, 10, 64); err == nil {
			req.ClubID = &clubID
		}
	}
	if search := ctx.Query("search"); search != "" {
		req.Search = &search
	}
	if email := ctx.Query("u_email"); email != "" {
		req.ViewerEmail = &email
	} else {
		req.ViewerEmail = middleware.ViewerEmail(ctx)
	}

	posts, err := c.postService.GetFeed(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// CreatePost handles publishing a new post.
// @Summary Create a post
// @Description Publishes a post, either public or addressed to a club via visibleIn.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post content and destination"
// @Success 200 {object} dto.CreatePostResponse "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Author or destination club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /post [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.postService.CreatePost(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatePostResponse{NewPostID: id})
}

// UpdatePost handles editing a post's content.
// @Summary Update a post
// @Description Edits post fields. Only the author or a system admin may edit.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} dto.UpdatePostResponse "Post updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Not the author or an admin"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /post [put]
func (c *PostController) UpdatePost(ctx *gin.Context) {
	var req dto.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.postService.UpdatePost(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdatePostResponse{UpdatedPostID: id})
}

// DeletePost handles removing a post.
// @Summary Delete a post
// @Description Removes a post with its comments and likes. Allowed for the author, a system admin, or the creator of the post's club.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body dto.DeletePostRequest true "Post id and requesting user"
// @Success 200 {object} dto.DeletePostResponse "Post deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Not allowed to delete this post"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /post [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	var req dto.DeletePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.postService.DeletePost(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeletePostResponse{DeletedPostID: id})
}
