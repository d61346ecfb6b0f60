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

// ClubRepository handles database operations for clubs and the club-follow
// engagement edge.
type ClubRepository struct {
	db *pgxpool.Pool
}

// NewClubRepository creates a new ClubRepository.
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{db: db}
}

// GetAll retrieves all clubs with their live follower counts.
func (r *ClubRepository) GetAll(ctx context.Context) ([]models.Club, error) {
	query := `
		SELECT c.id, c.name, c.logo_url, c.about, c.creator_email, c.created_at,
			(SELECT COUNT(*) FROM club_followers cf WHERE cf.club_id = c.id) AS follower_count
		FROM clubs c
		ORDER BY c.name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	clubs := []models.Club{}
	for rows.Next() {
		var c models.Club
		err := rows.Scan(&c.ID, &c.Name, &c.LogoURL, &c.About, &c.CreatorEmail, &c.CreatedAt, &c.FollowerCount)
		if err != nil {
			return nil, fmt.Errorf("error scanning club row: %w", err)
		}
		clubs = append(clubs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating club rows: %w", err)
	}

	return clubs, nil
}

// GetByID retrieves a club by id with its follower count.
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	query := `
		SELECT c.id, c.name, c.logo_url, c.about, c.creator_email, c.created_at,
			(SELECT COUNT(*) FROM club_followers cf WHERE cf.club_id = c.id) AS follower_count
		FROM clubs c
		WHERE c.id = $1
	`

	var c models.Club
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.LogoURL, &c.About, &c.CreatorEmail, &c.CreatedAt, &c.FollowerCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &c, nil
}

// Create inserts a new club and returns its id.
func (r *ClubRepository) Create(ctx context.Context, club *models.Club) (int64, error) {
	query := `
		INSERT INTO clubs (name, logo_url, about, creator_email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, club.Name, club.LogoURL, club.About, club.CreatorEmail).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// Update applies the non-nil fields to a club.
func (r *ClubRepository) Update(ctx context.Context, id int64, name, logoURL, about *string) error {
	builder := squirrel.Update("clubs").Where("id = ?", id).PlaceholderFormat(squirrel.Dollar)

	changed := false
	if name != nil {
		builder = builder.Set("name", *name)
		changed = true
	}
	if logoURL != nil {
		builder = builder.Set("logo_url", *logoURL)
		changed = true
	}
	if about != nil {
		builder = builder.Set("about", *about)
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
		return apperrors.ErrClubNotFound
	}

	return nil
}

// Delete removes a club. Follower edges and posts addressed to the club
// cascade in the schema.
func (r *ClubRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}
	return nil
}

// Exists reports whether a club row exists.
func (r *ClubRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM clubs WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// --- Club follows ---

// Follow inserts a follower edge and returns its id. A unique violation on
// (club_id, follower_email) surfaces as a pg error for the service layer.
func (r *ClubRepository) Follow(ctx context.Context, clubID int64, followerEmail string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO club_followers (club_id, follower_email) VALUES ($1, $2) RETURNING id`,
		clubID, followerEmail).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Unfollow removes a follower edge, returning the deleted id or nil when no
// edge existed.
func (r *ClubRepository) Unfollow(ctx context.Context, clubID int64, followerEmail string) (*int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM club_followers WHERE club_id = $1 AND follower_email = $2 RETURNING id`,
		clubID, followerEmail).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &id, nil
}

// IsFollowing reports whether the user follows the club.
func (r *ClubRepository) IsFollowing(ctx context.Context, clubID int64, followerEmail string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM club_followers WHERE club_id = $1 AND follower_email = $2)`,
		clubID, followerEmail).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// FollowerCount counts the followers of a club.
func (r *ClubRepository) FollowerCount(ctx context.Context, clubID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM club_followers WHERE club_id = $1`, clubID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
