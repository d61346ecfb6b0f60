package services

import (
	"context"
	"fmt"

	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/repositories"
	"github.com/campuslink/backend/internal/pkg/apperrors"
	"github.com/campuslink/backend/internal/pkg/dberrors"
	"github.com/campuslink/backend/internal/pkg/logger"
)

// UserService exposes the sign-in upsert, profile reads and updates, and the
// user-follow engagement edge.
type UserService interface {
	UpsertUser(ctx context.Context, req *dto.UpsertUserRequest) (int64, error)
	GetUser(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) error

	FollowUser(ctx context.Context, userEmail, followerEmail string) (int64, error)
	UnfollowUser(ctx context.Context, userEmail, followerEmail string) (*int64, error)
	IsFollowingUser(ctx context.Context, userEmail, followerEmail string) (bool, error)
	UserFollowerCount(ctx context.Context, userEmail string) (int64, error)
}

type userService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpsertUser creates the account on first sign-in or refreshes the sign-in
// fields on later ones. The external identity provider has already
// authenticated the caller; this is provisioning, not authentication.
func (s *userService) UpsertUser(ctx context.Context, req *dto.UpsertUserRequest) (int64, error) {
	user := &models.User{
		Email:          req.Email,
		ExternalAuthID: req.ExternalAuthID,
		ImageURL:       req.ImageURL,
	}
	if req.Name != nil {
		user.Name = *req.Name
	}

	id, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		logger.Error().Err(err).Str("email", req.Email).Msg("Failed to upsert user")
		return 0, err
	}
	return id, nil
}

// GetUser retrieves a user's profile by email.
func (s *userService) GetUser(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// UpdateUser applies the non-nil profile fields.
func (s *userService) UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) error {
	return s.userRepo.UpdateProfile(ctx, req.Email, req.Name, req.ImageURL, req.ContactEmail, req.ContactPhone)
}

// FollowUser makes followerEmail a follower of userEmail. Self-follows are
// rejected and following twice is a conflict.
func (s *userService) FollowUser(ctx context.Context, userEmail, followerEmail string) (int64, error) {
	if userEmail == followerEmail {
		return 0, apperrors.NewBadRequestError("a user cannot follow themselves")
	}

	exists, err := s.userRepo.Exists(ctx, userEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return 0, apperrors.NewCustomError(apperrors.ErrUserNotFound, "user to follow does not exist")
	}

	id, err := s.userRepo.Follow(ctx, userEmail, followerEmail)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("already following this user")
		}
		return 0, fmt.Errorf("failed to follow user: %w", err)
	}
	return id, nil
}

// UnfollowUser removes the follow edge; a missing edge is a no-op success
// with a nil id.
func (s *userService) UnfollowUser(ctx context.Context, userEmail, followerEmail string) (*int64, error) {
	return s.userRepo.Unfollow(ctx, userEmail, followerEmail)
}

// IsFollowingUser reports whether followerEmail follows userEmail.
func (s *userService) IsFollowingUser(ctx context.Context, userEmail, followerEmail string) (bool, error) {
	return s.userRepo.IsFollowing(ctx, userEmail, followerEmail)
}

// UserFollowerCount returns the live follower count of a user.
func (s *userService) UserFollowerCount(ctx context.Context, userEmail string) (int64, error) {
	return s.userRepo.FollowerCount(ctx, userEmail)
}
