package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/campuslink/backend/internal/app/auth"
	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/repositories"
	"github.com/campuslink/backend/internal/pkg/apperrors"
	"github.com/campuslink/backend/internal/pkg/dberrors"
	"github.com/campuslink/backend/internal/pkg/logger"
)

// ClubService exposes club CRUD, the follow edge, and the club stats read.
type ClubService interface {
	GetClubs(ctx context.Context) ([]models.Club, error)
	GetClub(ctx context.Context, id int64) (*models.Club, error)
	GetClubStats(ctx context.Context, id int64) (*models.ClubStats, error)
	CreateClub(ctx context.Context, req *dto.CreateClubRequest) (int64, error)
	UpdateClub(ctx context.Context, req *dto.UpdateClubRequest) (int64, error)
	DeleteClub(ctx context.Context, req *dto.DeleteClubRequest) (int64, error)

	FollowClub(ctx context.Context, clubID int64, userEmail string) (int64, error)
	UnfollowClub(ctx context.Context, clubID int64, userEmail string) (*int64, error)
	IsFollowingClub(ctx context.Context, clubID int64, userEmail string) (bool, error)
	ClubFollowerCount(ctx context.Context, clubID int64) (int64, error)
}

type clubService struct {
	clubRepo *repositories.ClubRepository
	postRepo *repositories.PostRepository
	userRepo *repositories.UserRepository
}

// NewClubService creates a new ClubService.
func NewClubService(clubRepo *repositories.ClubRepository, postRepo *repositories.PostRepository, userRepo *repositories.UserRepository) ClubService {
	return &clubService{
		clubRepo: clubRepo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// GetClubs returns all clubs with their follower counts.
func (s *clubService) GetClubs(ctx context.Context) ([]models.Club, error) {
	return s.clubRepo.GetAll(ctx)
}

// GetClub returns one club.
func (s *clubService) GetClub(ctx context.Context, id int64) (*models.Club, error) {
	return s.clubRepo.GetByID(ctx, id)
}

// GetClubStats fans the two count queries out concurrently and joins the
// results. The counts are read from independent connections, so they are
// individually accurate but not a single snapshot.
func (s *clubService) GetClubStats(ctx context.Context, id int64) (*models.ClubStats, error) {
	exists, err := s.clubRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check club: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrClubNotFound
	}

	stats := &models.ClubStats{ClubID: id}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.clubRepo.FollowerCount(gctx, id)
		if err != nil {
			return err
		}
		stats.FollowerCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.postRepo.CountByClub(gctx, id)
		if err != nil {
			return err
		}
		stats.PostCount = count
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Int64("clubID", id).Msg("Club stats query failed")
		return nil, err
	}

	return stats, nil
}

// CreateClub validates the creator and inserts the club.
func (s *clubService) CreateClub(ctx context.Context, req *dto.CreateClubRequest) (int64, error) {
	exists, err := s.userRepo.Exists(ctx, req.CreatorEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to check creator: %w", err)
	}
	if !exists {
		return 0, apperrors.NewCustomError(apperrors.ErrUserNotFound, "creator does not exist")
	}

	club := &models.Club{
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		About:        req.About,
		CreatorEmail: req.CreatorEmail,
	}

	id, err := s.clubRepo.Create(ctx, club)
	if err != nil {
		logger.Error().Err(err).Str("creator", req.CreatorEmail).Msg("Failed to create club")
		return 0, err
	}
	return id, nil
}

// UpdateClub applies a partial update. Only the club creator or a system
// admin may change club metadata.
func (s *clubService) UpdateClub(ctx context.Context, req *dto.UpdateClubRequest) (int64, error) {
	club, err := s.clubRepo.GetByID(ctx, req.ClubID)
	if err != nil {
		return 0, err
	}

	actor, err := s.actor(ctx, req.UserEmail)
	if err != nil {
		return 0, err
	}
	if !auth.CanManageClub(actor, club.CreatorEmail) {
		return 0, apperrors.NewForbiddenError("only the club creator or a system admin may update a club")
	}

	if err := s.clubRepo.Update(ctx, req.ClubID, req.Name, req.LogoURL, req.About); err != nil {
		return 0, err
	}
	return req.ClubID, nil
}

// DeleteClub removes a club under the same authorization rule as updates.
func (s *clubService) DeleteClub(ctx context.Context, req *dto.DeleteClubRequest) (int64, error) {
	club, err := s.clubRepo.GetByID(ctx, req.ClubID)
	if err != nil {
		return 0, err
	}

	actor, err := s.actor(ctx, req.UserEmail)
	if err != nil {
		return 0, err
	}
	if !auth.CanManageClub(actor, club.CreatorEmail) {
		return 0, apperrors.NewForbiddenError("only the club creator or a system admin may delete a club")
	}

	if err := s.clubRepo.Delete(ctx, req.ClubID); err != nil {
		return 0, err
	}
	return req.ClubID, nil
}

// FollowClub inserts the follow edge. Following twice is a conflict.
func (s *clubService) FollowClub(ctx context.Context, clubID int64, userEmail string) (int64, error) {
	exists, err := s.clubRepo.Exists(ctx, clubID)
	if err != nil {
		return 0, fmt.Errorf("failed to check club: %w", err)
	}
	if !exists {
		return 0, apperrors.ErrClubNotFound
	}

	following, err := s.clubRepo.IsFollowing(ctx, clubID, userEmail)
	if err != nil {
		return 0, err
	}
	if following {
		return 0, apperrors.NewConflictError("already following this club")
	}

	id, err := s.clubRepo.Follow(ctx, clubID, userEmail)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("already following this club")
		}
		return 0, fmt.Errorf("failed to follow club: %w", err)
	}
	return id, nil
}

// UnfollowClub removes the follow edge; a missing edge is a no-op success
// with a nil id.
func (s *clubService) UnfollowClub(ctx context.Context, clubID int64, userEmail string) (*int64, error) {
	return s.clubRepo.Unfollow(ctx, clubID, userEmail)
}

// IsFollowingClub reports the user's follow state on a club.
func (s *clubService) IsFollowingClub(ctx context.Context, clubID int64, userEmail string) (bool, error) {
	return s.clubRepo.IsFollowing(ctx, clubID, userEmail)
}

// ClubFollowerCount returns the live follower count of a club.
func (s *clubService) ClubFollowerCount(ctx context.Context, clubID int64) (int64, error) {
	return s.clubRepo.FollowerCount(ctx, clubID)
}

func (s *clubService) actor(ctx context.Context, email string) (auth.Actor, error) {
	role, err := s.userRepo.GetRole(ctx, email)
	if err != nil {
		return auth.Actor{}, fmt.Errorf("failed to resolve actor role: %w", err)
	}
	return auth.Actor{Email: email, Role: role}, nil
}
