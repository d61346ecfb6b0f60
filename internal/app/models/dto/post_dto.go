package dto

import (
	"time"

	"github.com/campuslink/backend/internal/app/models"
)

// PostFeedRequest carries the parsed query parameters of GET /post. All of
// it is optional; malformed pagination values are clamped, never rejected.
type PostFeedRequest struct {
	ClubID       *int64
	ViewerEmail  *string
	FollowedOnly bool
	UHTOnly      bool
	Search       *string
	OrderField   string
	OrderDir     string
	Limit        uint64
	Offset       uint64
}

// PostResponse is one enriched post in the feed.
type PostResponse struct {
	ID               int64   `json:"id" example:"42"`
	Content          string  `json:"content" example:"Anyone up for the study group tonight?"`
	ImageURL         *string `json:"image_url,omitempty"`
	ClubID           *int64  `json:"club_id,omitempty"`
	IsUHTRelated     bool    `json:"is_uht_related"`
	CreatedAt        string  `json:"created_at" example:"2025-04-23T12:01:05Z"`
	AuthorEmail      string  `json:"author_email" example:"jane@uni.edu"`
	AuthorName       string  `json:"author_name" example:"Jane Doe"`
	AuthorImage      *string `json:"author_image,omitempty"`
	AuthorRole       string  `json:"author_role" example:"student"`
	ClubCreatorEmail *string `json:"club_creator_email,omitempty"`
	LikeCount        int64   `json:"like_count" example:"3"`
	CommentCount     int64   `json:"comment_count" example:"7"`
	IsLiked          bool    `json:"is_liked"`
}

// NewPostResponse maps an enriched feed row to its wire shape.
func NewPostResponse(p models.FeedPost) PostResponse {
	return PostResponse{
		ID:               p.ID,
		Content:          p.Content,
		ImageURL:         p.ImageURL,
		ClubID:           p.ClubID,
		IsUHTRelated:     p.IsUHTRelated,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339),
		AuthorEmail:      p.AuthorEmail,
		AuthorName:       p.AuthorName,
		AuthorImage:      p.AuthorImage,
		AuthorRole:       string(p.AuthorRole),
		ClubCreatorEmail: p.ClubCreatorEmail,
		LikeCount:        p.LikeCount,
		CommentCount:     p.CommentCount,
		IsLiked:          p.IsLiked,
	}
}

// CreatePostRequest is the body of POST /post. VisibleIn is the destination
// club id, or null for a public post.
type CreatePostRequest struct {
	Content      string  `json:"content" binding:"required"`
	ImageURL     *string `json:"imageUrl"`
	VisibleIn    *int64  `json:"visibleIn"`
	Email        string  `json:"email" binding:"required,email"`
	IsUHTRelated bool    `json:"isUhtRelated"`
}

// UpdatePostRequest is the body of PUT /post. Nil fields are left untouched.
type UpdatePostRequest struct {
	PostID       int64   `json:"postId" binding:"required"`
	UserEmail    string  `json:"userEmail" binding:"required,email"`
	Content      *string `json:"content"`
	ImageURL     *string `json:"imageUrl"`
	IsUHTRelated *bool   `json:"isUhtRelated"`
}

// DeletePostRequest is the body of DELETE /post.
type DeletePostRequest struct {
	PostID    int64  `json:"postId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// CreatePostResponse is the reply of POST /post.
type CreatePostResponse struct {
	NewPostID int64 `json:"newPostId" example:"42"`
}

// UpdatePostResponse is the reply of PUT /post.
type UpdatePostResponse struct {
	UpdatedPostID int64 `json:"updatedPostId" example:"42"`
}

// DeletePostResponse is the reply of DELETE /post.
type DeletePostResponse struct {
	DeletedPostID int64 `json:"deletedPostId" example:"42"`
}
