package services

import (
	"context"
	"fmt"

	"github.com/campuslink/backend/internal/app/auth"
	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/repositories"
	"github.com/campuslink/backend/internal/pkg/apperrors"
	"github.com/campuslink/backend/internal/pkg/logger"
)

// CommentService exposes the flat and threaded comment reads and the comment
// write path.
type CommentService interface {
	ListComments(ctx context.Context, postID int64, search *string) ([]dto.CommentResponse, error)
	GetCommentTree(ctx context.Context, postID int64) ([]dto.CommentTreeNode, error)
	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (int64, error)
	UpdateComment(ctx context.Context, req *dto.UpdateCommentRequest) (string, error)
	DeleteComment(ctx context.Context, req *dto.DeleteCommentRequest) (int64, error)
}

type commentService struct {
	commentRepo *repositories.CommentRepository
	postRepo    *repositories.PostRepository
	userRepo    *repositories.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo *repositories.CommentRepository, postRepo *repositories.PostRepository, userRepo *repositories.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// ListComments returns the flat rows of a post, created_at ASC. The client
// reconstructs the reply tree from parent_id.
func (s *commentService) ListComments(ctx context.Context, postID int64, search *string) ([]dto.CommentResponse, error) {
	rows, err := s.commentRepo.ListByPost(ctx, postID, search)
	if err != nil {
		logger.Error().Err(err).Int64("postID", postID).Msg("Failed to list comments")
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.NewCommentResponse(row))
	}
	return responses, nil
}

// GetCommentTree returns the nested reply forest of a post, built from the
// same rows as the flat listing.
func (s *commentService) GetCommentTree(ctx context.Context, postID int64) ([]dto.CommentTreeNode, error) {
	rows, err := s.commentRepo.ListByPost(ctx, postID, nil)
	if err != nil {
		logger.Error().Err(err).Int64("postID", postID).Msg("Failed to load comment rows for tree")
		return nil, err
	}
	return BuildCommentTree(rows), nil
}

// CreateComment validates the post, the author, and (for replies) that the
// parent comment sits on the same post, then inserts.
func (s *commentService) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (int64, error) {
	postExists, err := s.postRepo.Exists(ctx, req.PostID)
	if err != nil {
		return 0, fmt.Errorf("failed to check post: %w", err)
	}
	if !postExists {
		return 0, apperrors.NewCustomError(apperrors.ErrPostNotFound, "post does not exist")
	}

	userExists, err := s.userRepo.Exists(ctx, req.UserEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to check author: %w", err)
	}
	if !userExists {
		return 0, apperrors.NewCustomError(apperrors.ErrUserNotFound, "author does not exist")
	}

	if req.ParentID != nil {
		// The same-post rule is enforced here, not in the schema.
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrCommentNotFound) {
				return 0, apperrors.NewBadRequestError("parent comment does not exist")
			}
			return 0, err
		}
		if parent.PostID != req.PostID {
			return 0, apperrors.NewBadRequestError("parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		PostID:          req.PostID,
		AuthorEmail:     req.UserEmail,
		Content:         req.Comment,
		ParentCommentID: req.ParentID,
	}

	id, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		logger.Error().Err(err).Int64("postID", req.PostID).Msg("Failed to create comment")
		return 0, err
	}
	return id, nil
}

// UpdateComment replaces the body of a comment. Only the comment author may
// edit; there is no admin or moderator override.
func (s *commentService) UpdateComment(ctx context.Context, req *dto.UpdateCommentRequest) (string, error) {
	comment, err := s.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		return "", err
	}

	actor := auth.Actor{Email: req.UserEmail}
	if !auth.CanEditComment(actor, comment.AuthorEmail) {
		return "", apperrors.NewForbiddenError("only the comment author may edit a comment")
	}

	if err := s.commentRepo.UpdateContent(ctx, req.CommentID, req.NewComment); err != nil {
		return "", err
	}
	return req.NewComment, nil
}

// DeleteComment removes a comment. Admins, the comment author, the post
// author, and the club creator may delete. Replies are left in storage as
// soft-orphans. The post author is re-derived from the store; the
// postAuthorEmail field in the request body is not trusted.
func (s *commentService) DeleteComment(ctx context.Context, req *dto.DeleteCommentRequest) (int64, error) {
	comment, err := s.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		return 0, err
	}

	postInfo, err := s.postRepo.GetAuthInfo(ctx, comment.PostID)
	if err != nil {
		return 0, err
	}

	role, err := s.userRepo.GetRole(ctx, req.UserEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve actor role: %w", err)
	}

	actor := auth.Actor{Email: req.UserEmail, Role: role}
	post := auth.Resource{AuthorEmail: postInfo.AuthorEmail, ClubCreatorEmail: postInfo.ClubCreatorEmail}
	if !auth.CanDeleteComment(actor, comment.AuthorEmail, post) {
		return 0, apperrors.NewForbiddenError("not allowed to delete this comment")
	}

	if err := s.commentRepo.Delete(ctx, req.CommentID); err != nil {
		return 0, err
	}
	return req.CommentID, nil
}
