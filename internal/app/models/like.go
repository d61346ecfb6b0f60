package models

import "time"

// PostLike records that a user has liked a post. Existence of the row is the
// "has liked" state; (post_id, user_email) is unique.
type PostLike struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CommentLike is the same engagement edge at comment granularity;
// (comment_id, user_email) is unique.
type CommentLike struct {
	ID        int64     `json:"id" db:"id"`
	CommentID int64     `json:"commentId" db:"comment_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
