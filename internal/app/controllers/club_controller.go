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

// ClubController handles club CRUD, the follow edge, and the stats read.
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController.
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// GetClubs handles GET /club: all clubs, or one club when clubId is given.
// @Summary List clubs
// @Description Retrieves all clubs with follower counts, or a single club when clubId is supplied.
// @Tags clubs
// @Produce json
// @Param clubId query int false "Club id for the single-club form"
// @Success 200 {array} models.Club "Clubs retrieved"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club [get]
func (c *ClubController) GetClubs(ctx *gin.Context) {
	if clubIDStr := ctx.Query("clubId"); clubIDStr != "" {
		clubID, err := strconv.ParseInt(clubIDStr, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("clubId must be an integer"))
			return
		}
		club, err := c.clubService.GetClub(ctx, clubID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, club)
		return
	}

	clubs, err := c.clubService.GetClubs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, clubs)
}

// GetClubStats handles GET /club/stats.
// @Summary Get club stats
// @Description Retrieves the follower and post counts of a club. The two counts are queried concurrently.
// @Tags clubs
// @Produce json
// @Param clubId query int true "Club id"
// @Success 200 {object} models.ClubStats "Stats retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed clubId"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club/stats [get]
func (c *ClubController) GetClubStats(ctx *gin.Context) {
	clubID, err := strconv.ParseInt(ctx.Query("clubId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("clubId is required and must be an integer"))
		return
	}

	stats, err := c.clubService.GetClubStats(ctx, clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// CreateClub handles POST /club.
// @Summary Create a club
// @Description Creates a club. The creator gains the moderation override for content posted within it.
// @Tags clubs
// @Accept json
// @Produce json
// @Param request body dto.CreateClubRequest true "Club metadata"
// @Success 200 {object} dto.CreateClubResponse "Club created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Creator not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club [post]
func (c *ClubController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.clubService.CreateClub(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreateClubResponse{NewClubID: id})
}

// UpdateClub handles PUT /club.
// @Summary Update a club
// @Description Applies the given fields. Only the club creator or a system admin may update.
// @Tags clubs
// @Accept json
// @Produce json
// @Param request body dto.UpdateClubRequest true "Fields to change"
// @Success 200 {object} dto.UpdateClubResponse "Club updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Not the creator or an admin"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club [put]
func (c *ClubController) UpdateClub(ctx *gin.Context) {
	var req dto.UpdateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.clubService.UpdateClub(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UpdateClubResponse{UpdatedClubID: id})
}

// DeleteClub handles DELETE /club.
// @Summary Delete a club
// @Description Removes a club with its follower edges and addressed posts. Only the creator or a system admin may delete.
// @Tags clubs
// @Accept json
// @Produce json
// @Param request body dto.DeleteClubRequest true "Club id and requesting user"
// @Success 200 {object} dto.DeleteClubResponse "Club deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Not the creator or an admin"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club [delete]
func (c *ClubController) DeleteClub(ctx *gin.Context) {
	var req dto.DeleteClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.clubService.DeleteClub(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteClubResponse{DeletedClubID: id})
}

// GetClubFollow answers the read forms of /club-follow: clubId alone returns
// the follower count, clubId+userEmail the follow state.
// @Summary Query club follows
// @Description Returns the follower count, or with userEmail the user's follow state.
// @Tags clubs
// @Produce json
// @Param clubId query int true "Club id"
// @Param userEmail query string false "User email for the membership form"
// @Success 200 {object} dto.FollowerCountResponse "Count or membership reply"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed clubId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club-follow [get]
func (c *ClubController) GetClubFollow(ctx *gin.Context) {
	clubID, err := strconv.ParseInt(ctx.Query("clubId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("clubId is required and must be an integer"))
		return
	}

	if userEmail := ctx.Query("userEmail"); userEmail != "" {
		following, err := c.clubService.IsFollowingClub(ctx, clubID, userEmail)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.IsFollowingResponse{IsFollowing: following})
		return
	}

	count, err := c.clubService.ClubFollowerCount(ctx, clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FollowerCountResponse{FollowerCount: count})
}

// FollowClub handles POST /club-follow.
// @Summary Follow a club
// @Description Adds the user as a club follower. Following twice is a conflict.
// @Tags clubs
// @Accept json
// @Produce json
// @Param request body dto.FollowRequest true "Club id and user"
// @Success 200 {object} dto.CreateFollowResponse "Follow recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 409 {object} dto.ErrorResponse "Already following"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club-follow [post]
func (c *ClubController) FollowClub(ctx *gin.Context) {
	var req dto.FollowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.clubService.FollowClub(ctx, req.ClubID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreateFollowResponse{NewFollowID: id})
}

// UnfollowClub handles DELETE /club-follow.
// @Summary Unfollow a club
// @Description Removes the follow edge; unfollowing without a follow succeeds with no id.
// @Tags clubs
// @Accept json
// @Produce json
// @Param request body dto.FollowRequest true "Club id and user"
// @Success 200 {object} dto.DeleteFollowResponse "Follow removed or nothing to remove"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club-follow [delete]
func (c *ClubController) UnfollowClub(ctx *gin.Context) {
	var req dto.FollowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	deletedID, err := c.clubService.UnfollowClub(ctx, req.ClubID, req.UserEmail)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteFollowResponse{DeletedFollowID: deletedID})
}
