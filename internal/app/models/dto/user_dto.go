package dto

// UpsertUserRequest is the body of POST /user, issued on first sign-in after
// the external identity provider has authenticated the user. The upsert is
// keyed by email.
type UpsertUserRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	Name           *string `json:"name"`
	ImageURL       *string `json:"imageUrl"`
	ExternalAuthID *string `json:"externalAuthId"`
}

// UpdateUserRequest is the body of PUT /user (profile update).
type UpdateUserRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Name         *string `json:"name"`
	ImageURL     *string `json:"imageUrl"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
}

// UpsertUserResponse is the reply of POST /user.
type UpsertUserResponse struct {
	UserID int64 `json:"userId" example:"1"`
}

// UserFollowRequest is the body of POST and DELETE /user-follow.
type UserFollowRequest struct {
	UserEmail     string `json:"userEmail" binding:"required,email"`
	FollowerEmail string `json:"followerEmail" binding:"required,email"`
}
