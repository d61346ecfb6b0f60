package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/pkg/apperrors"
)

// CommentRepository handles database operations for comments.
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByPost retrieves the flat comment rows of a post joined with author
// display fields, ordered created_at ASC (the order the tree builder and the
// client rely on). An optional search term filters case-insensitively on the
// comment body.
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64, search *string) ([]models.CommentWithAuthor, error) {
	builder := squirrel.Select(
		"cm.id", "cm.post_id", "cm.author_email", "cm.content",
		"cm.parent_comment_id", "cm.created_at",
		"u.name", "u.image_url", "u.role",
	).
		From("comments cm").
		Join("users u ON u.email = cm.author_email").
		Where(squirrel.Eq{"cm.post_id": postID}).
		OrderBy("cm.created_at ASC", "cm.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if search != nil && *search != "" {
		builder = builder.Where("cm.content ILIKE ?", "%"+*search+"%")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	comments := []models.CommentWithAuthor{}
	for rows.Next() {
		var c models.CommentWithAuthor
		err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.AuthorEmail,
			&c.Content,
			&c.ParentCommentID,
			&c.CreatedAt,
			&c.AuthorName,
			&c.AuthorImage,
			&c.AuthorRole,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// GetByID retrieves a single comment.
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `
		SELECT id, post_id, author_email, content, parent_comment_id, created_at
		FROM comments
		WHERE id = $1
	`

	var c models.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.PostID, &c.AuthorEmail, &c.Content, &c.ParentCommentID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &c, nil
}

// Create inserts a new comment and returns its id.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	query := `
		INSERT INTO comments (post_id, author_email, content, parent_comment_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		comment.PostID, comment.AuthorEmail, comment.Content, comment.ParentCommentID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// UpdateContent replaces the body of a comment.
func (r *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	result, err := r.db.Exec(ctx, `UPDATE comments SET content = $1 WHERE id = $2`, content, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// Delete removes a single comment. Replies are deliberately not cascaded:
// they stay in storage as soft-orphans and drop out of rendered trees.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
