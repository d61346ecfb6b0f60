package dto

// CreateClubRequest is the body of POST /club.
type CreateClubRequest struct {
	Name         string  `json:"name" binding:"required"`
	LogoURL      *string `json:"logoUrl"`
	About        *string `json:"about"`
	CreatorEmail string  `json:"creatorEmail" binding:"required,email"`
}

// UpdateClubRequest is the body of PUT /club. Only the club creator or a
// system admin may update.
type UpdateClubRequest struct {
	ClubID    int64   `json:"clubId" binding:"required"`
	UserEmail string  `json:"userEmail" binding:"required,email"`
	Name      *string `json:"name"`
	LogoURL   *string `json:"logoUrl"`
	About     *string `json:"about"`
}

// DeleteClubRequest is the body of DELETE /club.
type DeleteClubRequest struct {
	ClubID    int64  `json:"clubId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// CreateClubResponse is the reply of POST /club.
type CreateClubResponse struct {
	NewClubID int64 `json:"newClubId" example:"3"`
}

// UpdateClubResponse is the reply of PUT /club.
type UpdateClubResponse struct {
	UpdatedClubID int64 `json:"updatedClubId" example:"3"`
}

// DeleteClubResponse is the reply of DELETE /club.
type DeleteClubResponse struct {
	DeletedClubID int64 `json:"deletedClubId" example:"3"`
}

// FollowRequest is the body of POST and DELETE /club-follow.
type FollowRequest struct {
	ClubID    int64  `json:"clubId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// CreateFollowResponse is the reply of POST /club-follow and /user-follow.
type CreateFollowResponse struct {
	NewFollowID int64 `json:"newFollowId" example:"9"`
}

// DeleteFollowResponse is the reply of DELETE /club-follow and /user-follow.
// Unfollowing without an existing follow is a no-op success.
type DeleteFollowResponse struct {
	DeletedFollowID *int64 `json:"deletedFollowId,omitempty" example:"9"`
}

// FollowerCountResponse is the count form of GET /club-follow and /user-follow.
type FollowerCountResponse struct {
	FollowerCount int64 `json:"followerCount" example:"58"`
}

// IsFollowingResponse is the membership form of GET /club-follow and /user-follow.
type IsFollowingResponse struct {
	IsFollowing bool `json:"isFollowing" example:"true"`
}
