package dto

// LikeRequest is the body of POST and DELETE /post-like.
type LikeRequest struct {
	PostID    int64  `json:"postId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// CommentLikeRequest is the body of POST and DELETE /comment-like.
type CommentLikeRequest struct {
	CommentID int64  `json:"commentId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// CreateLikeResponse is the reply of POST /post-like and /comment-like.
type CreateLikeResponse struct {
	NewLikeID int64 `json:"newLikeId" example:"11"`
	LikeCount int64 `json:"likeCount" example:"4"`
}

// DeleteLikeResponse is the reply of DELETE /post-like and /comment-like.
// Unliking a resource that was never liked is a no-op success: the id field
// is simply absent.
type DeleteLikeResponse struct {
	DeletedLikeID *int64 `json:"deletedLikeId,omitempty" example:"11"`
	LikeCount     int64  `json:"likeCount" example:"3"`
}

// LikeCountResponse is the reply of GET /post-like?postId= (count form).
type LikeCountResponse struct {
	LikeCount int64 `json:"likeCount" example:"4"`
}

// IsLikedResponse is the reply of GET /post-like?postId=&userEmail=.
type IsLikedResponse struct {
	IsLiked bool `json:"isLiked" example:"true"`
}

// LikedPostIDsResponse is the bulk reply of GET /post-like?userEmail=&postIds=.
type LikedPostIDsResponse struct {
	LikedPostIDs []int64 `json:"likedPostIds"`
}

// LikedCommentIDsResponse is the bulk reply of GET /comment-like?userEmail=&commentIds=.
type LikedCommentIDsResponse struct {
	LikedCommentIDs []int64 `json:"likedCommentIds"`
}

// LikeCountsResponse is the bulk reply of GET /comment-like?commentIds=&counts=true.
type LikeCountsResponse struct {
	LikeCounts map[int64]int64 `json:"likeCounts"`
}
