package models

import "time"

// Comment defines the comment model based on the 'comments' table.
// ParentCommentID is nil for top-level comments; the flat rows form a tree
// rooted at nil. There is intentionally no foreign key on parent_comment_id:
// deleting a parent leaves its children in storage as soft-orphans, detached
// from any rendered tree.
type Comment struct {
	ID              int64     `json:"id" db:"id"`
	PostID          int64     `json:"postId" db:"post_id"`
	AuthorEmail     string    `json:"authorEmail" db:"author_email"`
	Content         string    `json:"content" db:"content"`
	ParentCommentID *int64    `json:"parentCommentId,omitempty" db:"parent_comment_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// CommentWithAuthor is a comment row joined with its author's display
// fields, as returned by the flat comment listing (created_at ASC).
type CommentWithAuthor struct {
	Comment
	AuthorName  string  `db:"name"`
	AuthorImage *string `db:"image_url"`
	AuthorRole  Role    `db:"role"`
}
