package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/pkg/apperrors"
)

// PostRepository handles database operations for posts.
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// allow-listed order fields; anything else silently falls back to created_at
// so a raw field name can never reach the query text.
func feedOrderClause(field, dir string) string {
	direction := "DESC"
	if strings.EqualFold(dir, "ASC") {
		direction = "ASC"
	}

	switch field {
	case "like_count":
		// id DESC as secondary key keeps equal-count pages deterministic.
		return "like_count " + direction + ", p.id DESC"
	default:
		return "p.created_at " + direction
	}
}

// buildFeedQuery compiles the optional feed filters into one parameterized
// query. Each filter contributes exactly one predicate with bound arguments;
// user-controlled values never reach the SQL text itself.
func buildFeedQuery(f dto.PostFeedRequest) (string, []interface{}, error) {
	builder := squirrel.Select(
		"p.id", "p.author_email", "p.content", "p.image_url", "p.club_id",
		"p.is_uht_related", "p.created_at",
		"u.name", "u.image_url AS author_image", "u.role",
		"c.creator_email",
		"(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS like_count",
		"(SELECT COUNT(*) FROM comments cc WHERE cc.post_id = p.id) AS comment_count",
	).
		From("posts p").
		Join("users u ON u.email = p.author_email").
		LeftJoin("clubs c ON c.id = p.club_id")

	if f.ViewerEmail != nil {
		builder = builder.Column(
			"EXISTS(SELECT 1 FROM post_likes pv WHERE pv.post_id = p.id AND pv.user_email = ?) AS is_liked",
			*f.ViewerEmail,
		)
	} else {
		builder = builder.Column("FALSE AS is_liked")
	}

	if f.ClubID != nil {
		builder = builder.Where(squirrel.Eq{"p.club_id": *f.ClubID})
	}

	if f.FollowedOnly && f.ViewerEmail != nil {
		builder = builder.Where(
			"p.club_id IN (SELECT cf.club_id FROM club_followers cf WHERE cf.follower_email = ?)",
			*f.ViewerEmail,
		)
	}

	if f.UHTOnly {
		builder = builder.Where(squirrel.Eq{"p.is_uht_related": true})
		if f.ViewerEmail != nil {
			// UHT posts in clubs are visible to followers and the club
			// creator; public UHT posts to everyone.
			builder = builder.Where(
				"(p.club_id IS NULL OR p.club_id IN (SELECT cf.club_id FROM club_followers cf WHERE cf.follower_email = ?) OR c.creator_email = ?)",
				*f.ViewerEmail, *f.ViewerEmail,
			)
		} else {
			builder = builder.Where("p.club_id IS NULL")
		}
	}

	if f.Search != nil && *f.Search != "" {
		// A post matches when its own body matches OR any comment attached
		// to it matches. One join-based OR, not two queries.
		pattern := "%" + *f.Search + "%"
		builder = builder.Where(
			"(p.content ILIKE ? OR EXISTS (SELECT 1 FROM comments cs WHERE cs.post_id = p.id AND cs.content ILIKE ?))",
			pattern, pattern,
		)
	}

	builder = builder.
		OrderBy(feedOrderClause(f.OrderField, f.OrderDir)).
		Limit(f.Limit).
		Offset(f.Offset).
		PlaceholderFormat(squirrel.Dollar)

	return builder.ToSql()
}

// Feed retrieves enriched posts matching the given filters.
func (r *PostRepository) Feed(ctx context.Context, f dto.PostFeedRequest) ([]models.FeedPost, error) {
	sql, args, err := buildFeedQuery(f)
	if err != nil {
		return nil, fmt.Errorf("error building feed query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing feed query: %w", err)
	}
	defer rows.Close()

	posts := []models.FeedPost{}
	for rows.Next() {
		var p models.FeedPost
		err := rows.Scan(
			&p.ID,
			&p.AuthorEmail,
			&p.Content,
			&p.ImageURL,
			&p.ClubID,
			&p.IsUHTRelated,
			&p.CreatedAt,
			&p.AuthorName,
			&p.AuthorImage,
			&p.AuthorRole,
			&p.ClubCreatorEmail,
			&p.LikeCount,
			&p.CommentCount,
			&p.IsLiked,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning feed row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed rows: %w", err)
	}

	return posts, nil
}

// GetAuthInfo retrieves the ownership chain of a post for authorization.
func (r *PostRepository) GetAuthInfo(ctx context.Context, id int64) (*models.PostAuthInfo, error) {
	query := `
		SELECT p.id, p.author_email, c.creator_email
		FROM posts p
		LEFT JOIN clubs c ON c.id = p.club_id
		WHERE p.id = $1
	`

	var info models.PostAuthInfo
	err := r.db.QueryRow(ctx, query, id).Scan(&info.ID, &info.AuthorEmail, &info.ClubCreatorEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &info, nil
}

// Exists reports whether a post row exists.
func (r *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// Create inserts a new post and returns its id.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (author_email, content, image_url, club_id, is_uht_related)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		post.AuthorEmail, post.Content, post.ImageURL, post.ClubID, post.IsUHTRelated).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// Update applies the non-nil fields of the request to a post.
func (r *PostRepository) Update(ctx context.Context, id int64, content, imageURL *string, isUHTRelated *bool) error {
	builder := squirrel.Update("posts").Where("id = ?", id).PlaceholderFormat(squirrel.Dollar)

	changed := false
	if content != nil {
		builder = builder.Set("content", *content)
		changed = true
	}
	if imageURL != nil {
		builder = builder.Set("image_url", *imageURL)
		changed = true
	}
	if isUHTRelated != nil {
		builder = builder.Set("is_uht_related", *isUHTRelated)
		changed = true
	}
	if !changed {
		return nil
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Delete removes a post. Likes and comments on it cascade in the schema;
// replies of deleted comments stay in storage as soft-orphans.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// CountByClub counts the posts addressed to a club.
func (r *PostRepository) CountByClub(ctx context.Context, clubID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE club_id = $1`, clubID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
