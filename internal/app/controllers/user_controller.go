package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/services"
	"github.com/campuslink/backend/internal/middleware"
	"github.com/campuslink/backend/internal/pkg/apperrors"
)

// UserController handles the sign-in upsert, profile endpoints, and the
// user-follow edge.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// UpsertUser handles POST /user, issued after the external identity provider
// has authenticated the user.
// @Summary Upsert a user
// @Description Creates the account on first sign-in or refreshes its sign-in fields, keyed by email. Role is never changed here.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpsertUserRequest true "Sign-in profile"
// @Success 200 {object} dto.UpsertUserResponse "User upserted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user [post]
func (c *UserController) UpsertUser(ctx *gin.Context) {
	var req dto.UpsertUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.userService.UpsertUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UpsertUserResponse{UserID: id})
}

// GetUser handles GET /user.
// @Summary Get a user profile
// @Description Retrieves a user's profile by email.
// @Tags users
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} models.User "Profile retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing email"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("email is required"))
		return
	}

	user, err := c.userService.GetUser(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /user.
// @Summary Update a user profile
// @Description Applies the given profile fields to the user.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.userService.UpdateUser(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.GetUser(ctx, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetUserFollow answers the read forms of /user-follow: userEmail alone
// returns the follower count, userEmail+followerEmail the follow state.
// @Summary Query user follows
// @Description Returns the follower count, or with followerEmail the follow state.
// @Tags users
// @Produce json
// @Param userEmail query string true "Followed user email"
// @Param followerEmail query string false "Follower email for the membership form"
// @Success 200 {object} dto.FollowerCountResponse "Count or membership reply"
// @Failure 400 {object} dto.ErrorResponse "Missing userEmail"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user-follow [get]
func (c *UserController) GetUserFollow(ctx *gin.Context) {
	userEmail := ctx.Query("userEmail")
	if userEmail == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("userEmail is required"))
		return
	}

	if followerEmail := ctx.Query("followerEmail"); followerEmail != "" {
		following, err := c.userService.IsFollowingUser(ctx, userEmail, followerEmail)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.IsFollowingResponse{IsFollowing: following})
		return
	}

	count, err := c.userService.UserFollowerCount(ctx, userEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FollowerCountResponse{FollowerCount: count})
}

// FollowUser handles POST /user-follow.
// @Summary Follow a user
// @Description Makes followerEmail a follower of userEmail. Self-follows are rejected; following twice is a conflict.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserFollowRequest true "Followed user and follower"
// @Success 200 {object} dto.CreateFollowResponse "Follow recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid body or self-follow"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Already following"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user-follow [post]
func (c *UserController) FollowUser(ctx *gin.Context) {
	var req dto.UserFollowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.userService.FollowUser(ctx, req.UserEmail, req.FollowerEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreateFollowResponse{NewFollowID: id})
}

// UnfollowUser handles DELETE /user-follow.
// @Summary Unfollow a user
// @Description Removes the follow edge; unfollowing without a follow succeeds with no id.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UserFollowRequest true "Followed user and follower"
// @Success 200 {object} dto.DeleteFollowResponse "Follow removed or nothing to remove"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user-follow [delete]
func (c *UserController) UnfollowUser(ctx *gin.Context) {
	var req dto.UserFollowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	deletedID, err := c.userService.UnfollowUser(ctx, req.UserEmail, req.FollowerEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteFollowResponse{DeletedFollowID: deletedID})
}
