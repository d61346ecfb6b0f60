package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepository handles database operations for the post-like and
// comment-like engagement edges. Counts are always live COUNT queries; there
// is no denormalized counter column to drift.
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository creates a new LikeRepository.
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// --- Post likes ---

// CreatePostLike inserts a like row and returns its id. A unique violation
// on (post_id, user_email) surfaces as a pg error for the service to
// translate into a conflict.
func (r *LikeRepository) CreatePostLike(ctx context.Context, postID int64, userEmail string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO post_likes (post_id, user_email) VALUES ($1, $2) RETURNING id`,
		postID, userEmail).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DeletePostLike removes a like row, returning the deleted id or nil when no
// row existed (a no-op, not an error).
func (r *LikeRepository) DeletePostLike(ctx context.Context, postID int64, userEmail string) (*int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_email = $2 RETURNING id`,
		postID, userEmail).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &id, nil
}

// PostLikeExists reports whether (postID, userEmail) is already liked.
func (r *LikeRepository) PostLikeExists(ctx context.Context, postID int64, userEmail string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM post_likes WHERE post_id = $1 AND user_email = $2)`,
		postID, userEmail).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// CountPostLikes counts the likes on a post.
func (r *LikeRepository) CountPostLikes(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM post_likes WHERE post_id = $1`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// LikedPostIDs returns which of the given post ids the user has liked.
func (r *LikeRepository) LikedPostIDs(ctx context.Context, userEmail string, postIDs []int64) ([]int64, error) {
	if len(postIDs) == 0 {
		return []int64{}, nil
	}

	sql, args, err := squirrel.Select("post_id").
		From("post_likes").
		Where(squirrel.Eq{"user_email": userEmail, "post_id": postIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return r.scanIDs(ctx, sql, args)
}

// --- Comment likes ---

// CreateCommentLike inserts a comment-like row and returns its id.
func (r *LikeRepository) CreateCommentLike(ctx context.Context, commentID int64, userEmail string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO comment_likes (comment_id, user_email) VALUES ($1, $2) RETURNING id`,
		commentID, userEmail).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteCommentLike removes a comment-like row, returning the deleted id or
// nil when no row existed.
func (r *LikeRepository) DeleteCommentLike(ctx context.Context, commentID int64, userEmail string) (*int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM comment_likes WHERE comment_id = $1 AND user_email = $2 RETURNING id`,
		commentID, userEmail).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &id, nil
}

// CommentLikeExists reports whether (commentID, userEmail) is already liked.
func (r *LikeRepository) CommentLikeExists(ctx context.Context, commentID int64, userEmail string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment_id = $1 AND user_email = $2)`,
		commentID, userEmail).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// CountCommentLikes counts the likes on a comment.
func (r *LikeRepository) CountCommentLikes(ctx context.Context, commentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`, commentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// CommentLikeCounts returns a like count per comment id for the bulk counts
// form. Ids with zero likes are filled in so the caller always sees every
// requested id.
func (r *LikeRepository) CommentLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(commentIDs))
	for _, id := range commentIDs {
		counts[id] = 0
	}
	if len(commentIDs) == 0 {
		return counts, nil
	}

	sql, args, err := squirrel.Select("comment_id", "COUNT(*)").
		From("comment_likes").
		Where(squirrel.Eq{"comment_id": commentIDs}).
		GroupBy("comment_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("error scanning count row: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating count rows: %w", err)
	}

	return counts, nil
}

// LikedCommentIDs returns which of the given comment ids the user has liked.
func (r *LikeRepository) LikedCommentIDs(ctx context.Context, userEmail string, commentIDs []int64) ([]int64, error) {
	if len(commentIDs) == 0 {
		return []int64{}, nil
	}

	sql, args, err := squirrel.Select("comment_id").
		From("comment_likes").
		Where(squirrel.Eq{"user_email": userEmail, "comment_id": commentIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return r.scanIDs(ctx, sql, args)
}

func (r *LikeRepository) scanIDs(ctx context.Context, sql string, args []interface{}) ([]int64, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning id row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating id rows: %w", err)
	}

	return ids, nil
}
