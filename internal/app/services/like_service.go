package services

import (
	"context"
	"fmt"

	"github.com/campuslink/backend/internal/app/repositories"
	"github.com/campuslink/backend/internal/pkg/apperrors"
	"github.com/campuslink/backend/internal/pkg/dberrors"
	"github.com/campuslink/backend/internal/pkg/logger"
	"github.com/campuslink/backend/internal/pkg/ratelimit"
)

// LikeService is the engagement ledger for post and comment likes. Counts
// are derived with live COUNT queries on every read.
type LikeService interface {
	LikePost(ctx context.Context, postID int64, userEmail string) (int64, int64, error)
	UnlikePost(ctx context.Context, postID int64, userEmail string) (*int64, int64, error)
	PostLikeCount(ctx context.Context, postID int64) (int64, error)
	IsPostLiked(ctx context.Context, postID int64, userEmail string) (bool, error)
	LikedPostIDs(ctx context.Context, userEmail string, postIDs []int64) ([]int64, error)

	LikeComment(ctx context.Context, commentID int64, userEmail string) (int64, int64, error)
	UnlikeComment(ctx context.Context, commentID int64, userEmail string) (*int64, int64, error)
	CommentLikeCount(ctx context.Context, commentID int64) (int64, error)
	IsCommentLiked(ctx context.Context, commentID int64, userEmail string) (bool, error)
	LikedCommentIDs(ctx context.Context, userEmail string, commentIDs []int64) ([]int64, error)
	CommentLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error)
}

type likeService struct {
	likeRepo    *repositories.LikeRepository
	postRepo    *repositories.PostRepository
	commentRepo *repositories.CommentRepository
	limiter     ratelimit.Limiter
}

// NewLikeService creates a new LikeService. The limiter throttles post
// like/unlike operations per user email.
func NewLikeService(likeRepo *repositories.LikeRepository, postRepo *repositories.PostRepository, commentRepo *repositories.CommentRepository, limiter ratelimit.Limiter) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		limiter:     limiter,
	}
}

// throttle consumes one slot of the user's like/unlike budget. A rejected
// attempt leaves no state change beyond the counter itself.
func (s *likeService) throttle(ctx context.Context, userEmail string) error {
	allowed, err := s.limiter.Allow(ctx, userEmail)
	if err != nil {
		logger.Error().Err(err).Str("user", userEmail).Msg("Rate limiter failure")
		return fmt.Errorf("rate limiter failure: %w", err)
	}
	if !allowed {
		return apperrors.ErrRateLimited
	}
	return nil
}

// LikePost records a like. Returns the new like id and the updated count.
// A duplicate like is a conflict whether it is caught by the pre-check or by
// the unique constraint losing a race.
func (s *likeService) LikePost(ctx context.Context, postID int64, userEmail string) (int64, int64, error) {
	if err := s.throttle(ctx, userEmail); err != nil {
		return 0, 0, err
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return 0, 0, apperrors.NewCustomError(apperrors.ErrPostNotFound, "post does not exist")
	}

	liked, err := s.likeRepo.PostLikeExists(ctx, postID, userEmail)
	if err != nil {
		return 0, 0, err
	}
	if liked {
		return 0, 0, apperrors.NewConflictError("post already liked")
	}

	id, err := s.likeRepo.CreatePostLike(ctx, postID, userEmail)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// Two concurrent likes raced past the pre-check; the store
			// rejected the second insert. Same outcome as the pre-check.
			return 0, 0, apperrors.NewConflictError("post already liked")
		}
		return 0, 0, fmt.Errorf("failed to create like: %w", err)
	}

	count, err := s.likeRepo.CountPostLikes(ctx, postID)
	if err != nil {
		return 0, 0, err
	}
	return id, count, nil
}

// UnlikePost removes a like. Unliking a post that was never liked is a
// no-op success with a nil id.
func (s *likeService) UnlikePost(ctx context.Context, postID int64, userEmail string) (*int64, int64, error) {
	if err := s.throttle(ctx, userEmail); err != nil {
		return nil, 0, err
	}

	deletedID, err := s.likeRepo.DeletePostLike(ctx, postID, userEmail)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.likeRepo.CountPostLikes(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	return deletedID, count, nil
}

// PostLikeCount returns the live like count of a post.
func (s *likeService) PostLikeCount(ctx context.Context, postID int64) (int64, error) {
	return s.likeRepo.CountPostLikes(ctx, postID)
}

// IsPostLiked reports the viewer's like state on a post.
func (s *likeService) IsPostLiked(ctx context.Context, postID int64, userEmail string) (bool, error) {
	return s.likeRepo.PostLikeExists(ctx, postID, userEmail)
}

// LikedPostIDs returns which of the given posts the user has liked.
func (s *likeService) LikedPostIDs(ctx context.Context, userEmail string, postIDs []int64) ([]int64, error) {
	return s.likeRepo.LikedPostIDs(ctx, userEmail, postIDs)
}

// LikeComment records a like on a comment. Comment likes share the conflict
// semantics of post likes but are not rate limited.
func (s *likeService) LikeComment(ctx context.Context, commentID int64, userEmail string) (int64, int64, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return 0, 0, err
	}

	liked, err := s.likeRepo.CommentLikeExists(ctx, commentID, userEmail)
	if err != nil {
		return 0, 0, err
	}
	if liked {
		return 0, 0, apperrors.NewConflictError("comment already liked")
	}

	id, err := s.likeRepo.CreateCommentLike(ctx, commentID, userEmail)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, 0, apperrors.NewConflictError("comment already liked")
		}
		return 0, 0, fmt.Errorf("failed to create comment like: %w", err)
	}

	count, err := s.likeRepo.CountCommentLikes(ctx, commentID)
	if err != nil {
		return 0, 0, err
	}
	return id, count, nil
}

// UnlikeComment removes a comment like; missing rows are a no-op success.
func (s *likeService) UnlikeComment(ctx context.Context, commentID int64, userEmail string) (*int64, int64, error) {
	deletedID, err := s.likeRepo.DeleteCommentLike(ctx, commentID, userEmail)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.likeRepo.CountCommentLikes(ctx, commentID)
	if err != nil {
		return nil, 0, err
	}
	return deletedID, count, nil
}

// CommentLikeCount returns the live like count of a comment.
func (s *likeService) CommentLikeCount(ctx context.Context, commentID int64) (int64, error) {
	return s.likeRepo.CountCommentLikes(ctx, commentID)
}

// IsCommentLiked reports the viewer's like state on a comment.
func (s *likeService) IsCommentLiked(ctx context.Context, commentID int64, userEmail string) (bool, error) {
	return s.likeRepo.CommentLikeExists(ctx, commentID, userEmail)
}

// LikedCommentIDs returns which of the given comments the user has liked.
func (s *likeService) LikedCommentIDs(ctx context.Context, userEmail string, commentIDs []int64) ([]int64, error) {
	return s.likeRepo.LikedCommentIDs(ctx, userEmail, commentIDs)
}

// CommentLikeCounts returns a like count per requested comment id.
func (s *likeService) CommentLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	return s.likeRepo.CommentLikeCounts(ctx, commentIDs)
}
