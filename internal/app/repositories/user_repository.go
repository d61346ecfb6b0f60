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

// UserRepository handles database operations for users and the user-follow
// engagement edge.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates the user on first sign-in or refreshes the sign-in fields
// on subsequent ones, keyed by email. Role is never touched by the upsert;
// promoting a user is an explicit administrative change.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (email, name, image_url, external_auth_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			name = COALESCE(NULLIF(EXCLUDED.name, ''), users.name),
			image_url = COALESCE(EXCLUDED.image_url, users.image_url),
			external_auth_id = COALESCE(EXCLUDED.external_auth_id, users.external_auth_id),
			updated_at = NOW()
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, user.Email, user.Name, user.ImageURL, user.ExternalAuthID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, name, image_url, role, contact_email, contact_phone,
			external_auth_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Name, &u.ImageURL, &u.Role, &u.ContactEmail,
		&u.ContactPhone, &u.ExternalAuthID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &u, nil
}

// GetRole retrieves just the role of a user. A missing user degrades to the
// least-privileged student role instead of failing: the authorization
// evaluator treats an unknown actor as unprivileged rather than erroring.
func (r *UserRepository) GetRole(ctx context.Context, email string) (models.Role, error) {
	var role string
	err := r.db.QueryRow(ctx, `SELECT role FROM users WHERE email = $1`, email).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RoleStudent, nil
		}
		return models.RoleStudent, fmt.Errorf("error executing query: %w", err)
	}
	return models.NormalizeRole(role), nil
}

// Exists reports whether a user row exists.
func (r *UserRepository) Exists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// UpdateProfile applies the non-nil profile fields to a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, email string, name, imageURL, contactEmail, contactPhone *string) error {
	builder := squirrel.Update("users").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	if name != nil {
		builder = builder.Set("name", *name)
	}
	if imageURL != nil {
		builder = builder.Set("image_url", *imageURL)
	}
	if contactEmail != nil {
		builder = builder.Set("contact_email", *contactEmail)
	}
	if contactPhone != nil {
		builder = builder.Set("contact_phone", *contactPhone)
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
		return apperrors.ErrUserNotFound
	}

	return nil
}

// --- User follows ---

// Follow inserts a follower edge (followerEmail follows userEmail) and
// returns its id.
func (r *UserRepository) Follow(ctx context.Context, userEmail, followerEmail string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO user_followers (user_email, follower_email) VALUES ($1, $2) RETURNING id`,
		userEmail, followerEmail).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Unfollow removes a follower edge, returning the deleted id or nil when no
// edge existed.
func (r *UserRepository) Unfollow(ctx context.Context, userEmail, followerEmail string) (*int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM user_followers WHERE user_email = $1 AND follower_email = $2 RETURNING id`,
		userEmail, followerEmail).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &id, nil
}

// IsFollowing reports whether followerEmail follows userEmail.
func (r *UserRepository) IsFollowing(ctx context.Context, userEmail, followerEmail string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_followers WHERE user_email = $1 AND follower_email = $2)`,
		userEmail, followerEmail).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// FollowerCount counts the followers of a user.
func (r *UserRepository) FollowerCount(ctx context.Context, userEmail string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_followers WHERE user_email = $1`, userEmail).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
