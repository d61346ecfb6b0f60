package dto

import (
	"time"

	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/pkg/helpers"
)

// CommentResponse is one flat comment row from GET /comment, ordered
// created_at ASC. The client reconstructs the reply tree from parent_id.
type CommentResponse struct {
	ID             int64   `json:"id" example:"7"`
	Comment        string  `json:"comment" example:"Same question here"`
	CreatedAt      string  `json:"created_at" example:"2025-04-23T12:01:05Z"`
	CreatedAtLocal string  `json:"created_at_local" example:"2025-04-23 15:01:05"`
	Name           string  `json:"name" example:"Jane Doe"`
	Image          *string `json:"image,omitempty"`
	UserEmail      string  `json:"user_email" example:"jane@uni.edu"`
	UserRole       string  `json:"user_role" example:"student"`
	ParentID       *int64  `json:"parent_id,omitempty"`
}

// NewCommentResponse maps a joined comment row to its wire shape.
func NewCommentResponse(c models.CommentWithAuthor) CommentResponse {
	return CommentResponse{
		ID:             c.ID,
		Comment:        c.Content,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339),
		CreatedAtLocal: helpers.FormatLocal(c.CreatedAt),
		Name:           c.AuthorName,
		Image:          c.AuthorImage,
		UserEmail:      c.AuthorEmail,
		UserRole:       string(c.AuthorRole),
		ParentID:       c.ParentCommentID,
	}
}

// CommentTreeNode is one node of the nested reply forest from
// GET /comment/tree. ReplyCount counts all descendants, not just direct
// children.
type CommentTreeNode struct {
	CommentResponse
	ReplyCount int               `json:"reply_count" example:"4"`
	Children   []CommentTreeNode `json:"children"`
}

// CreateCommentRequest is the body of POST /comment. ParentID nil means a
// top-level comment; otherwise it must reference a comment on the same post.
type CreateCommentRequest struct {
	PostID    int64  `json:"postId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
	Comment   string `json:"comment" binding:"required"`
	ParentID  *int64 `json:"parentId"`
}

// UpdateCommentRequest is the body of PUT /comment. Only the comment author
// may edit; there is no admin override for edits.
type UpdateCommentRequest struct {
	CommentID  int64  `json:"commentId" binding:"required"`
	UserEmail  string `json:"userEmail" binding:"required,email"`
	NewComment string `json:"newComment" binding:"required"`
}

// DeleteCommentRequest is the body of DELETE /comment. PostAuthorEmail is
// sent by the client for display symmetry; the server re-derives the post
// author from the store before authorizing.
type DeleteCommentRequest struct {
	CommentID       int64  `json:"commentId" binding:"required"`
	UserEmail       string `json:"userEmail" binding:"required,email"`
	PostAuthorEmail string `json:"postAuthorEmail"`
}

// CreateCommentResponse is the reply of POST /comment.
type CreateCommentResponse struct {
	Message   string `json:"message" example:"comment created"`
	CommentID int64  `json:"commentId" example:"7"`
}

// UpdateCommentResponse is the reply of PUT /comment.
type UpdateCommentResponse struct {
	UpdatedCommentID int64  `json:"updatedCommentId" example:"7"`
	UpdatedComment   string `json:"updatedComment" example:"Edited text"`
}

// DeleteCommentResponse is the reply of DELETE /comment.
type DeleteCommentResponse struct {
	DeletedCommentID int64 `json:"deletedCommentId" example:"7"`
}
