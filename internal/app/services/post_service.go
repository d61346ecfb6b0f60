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

// PostService exposes the feed query engine and the post write path.
type PostService interface {
	GetFeed(ctx context.Context, req dto.PostFeedRequest) ([]dto.PostResponse, error)
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (int64, error)
	UpdatePost(ctx context.Context, req *dto.UpdatePostRequest) (int64, error)
	DeletePost(ctx context.Context, req *dto.DeletePostRequest) (int64, error)
}

type postService struct {
	postRepo *repositories.PostRepository
	userRepo *repositories.UserRepository
	clubRepo *repositories.ClubRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo *repositories.PostRepository, userRepo *repositories.UserRepository, clubRepo *repositories.ClubRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		clubRepo: clubRepo,
	}
}

// GetFeed runs the filtered, ordered, paginated feed query and maps the rows
// to their wire shape.
func (s *postService) GetFeed(ctx context.Context, req dto.PostFeedRequest) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.Feed(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Feed query failed")
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, dto.NewPostResponse(p))
	}
	return responses, nil
}

// CreatePost validates the author and destination club, then inserts.
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (int64, error) {
	exists, err := s.userRepo.Exists(ctx, req.Email)
	if err != nil {
		return 0, fmt.Errorf("failed to check author: %w", err)
	}
	if !exists {
		return 0, apperrors.NewCustomError(apperrors.ErrUserNotFound, "author does not exist")
	}

	if req.VisibleIn != nil {
		clubExists, err := s.clubRepo.Exists(ctx, *req.VisibleIn)
		if err != nil {
			return 0, fmt.Errorf("failed to check club: %w", err)
		}
		if !clubExists {
			return 0, apperrors.NewCustomError(apperrors.ErrClubNotFound, "destination club does not exist")
		}
	}

	post := &models.Post{
		AuthorEmail:  req.Email,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		ClubID:       req.VisibleIn,
		IsUHTRelated: req.IsUHTRelated,
	}

	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		logger.Error().Err(err).Str("author", req.Email).Msg("Failed to create post")
		return 0, err
	}
	return id, nil
}

// UpdatePost applies a content edit. Only the author or a system admin may
// edit; the club-creator override applies to deletion, not edits.
func (s *postService) UpdatePost(ctx context.Context, req *dto.UpdatePostRequest) (int64, error) {
	info, err := s.postRepo.GetAuthInfo(ctx, req.PostID)
	if err != nil {
		return 0, err
	}

	actor, err := s.actor(ctx, req.UserEmail)
	if err != nil {
		return 0, err
	}

	resource := auth.Resource{AuthorEmail: info.AuthorEmail, ClubCreatorEmail: info.ClubCreatorEmail}
	if !auth.CanEditPost(actor, resource) {
		return 0, apperrors.NewForbiddenError("only the author or a system admin may edit a post")
	}

	if err := s.postRepo.Update(ctx, req.PostID, req.Content, req.ImageURL, req.IsUHTRelated); err != nil {
		return 0, err
	}
	return req.PostID, nil
}

// DeletePost removes a post after the delete authorization check, which
// additionally grants the creator of the post's club.
func (s *postService) DeletePost(ctx context.Context, req *dto.DeletePostRequest) (int64, error) {
	info, err := s.postRepo.GetAuthInfo(ctx, req.PostID)
	if err != nil {
		return 0, err
	}

	actor, err := s.actor(ctx, req.UserEmail)
	if err != nil {
		return 0, err
	}

	resource := auth.Resource{AuthorEmail: info.AuthorEmail, ClubCreatorEmail: info.ClubCreatorEmail}
	if !auth.CanDeletePost(actor, resource) {
		return 0, apperrors.NewForbiddenError("not allowed to delete this post")
	}

	if err := s.postRepo.Delete(ctx, req.PostID); err != nil {
		return 0, err
	}
	return req.PostID, nil
}

// actor resolves the requesting user into an authorization actor. A user
// missing from the store gets the least-privileged role, never an error.
func (s *postService) actor(ctx context.Context, email string) (auth.Actor, error) {
	role, err := s.userRepo.GetRole(ctx, email)
	if err != nil {
		return auth.Actor{}, fmt.Errorf("failed to resolve actor role: %w", err)
	}
	return auth.Actor{Email: email, Role: role}, nil
}
