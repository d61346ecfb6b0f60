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

// EventRepository handles database operations for events and their
// registration/interest engagement edges.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// List retrieves upcoming events with derived counts and, when a viewer is
// present, the viewer's own registration/interest flags.
func (r *EventRepository) List(ctx context.Context, viewerEmail *string) ([]models.FeedEvent, error) {
	builder := squirrel.Select(
		"e.id", "e.title", "e.description", "e.image_url", "e.location",
		"e.club_id", "e.creator_email", "e.start_time", "e.end_time", "e.created_at",
		"(SELECT COUNT(*) FROM event_registrations er WHERE er.event_id = e.id) AS registration_count",
		"(SELECT COUNT(*) FROM event_interests ei WHERE ei.event_id = e.id) AS interest_count",
	).
		From("events e").
		Where("e.start_time >= NOW() - INTERVAL '1 day'").
		OrderBy("e.start_time ASC").
		PlaceholderFormat(squirrel.Dollar)

	if viewerEmail != nil {
		builder = builder.
			Column("EXISTS(SELECT 1 FROM event_registrations vr WHERE vr.event_id = e.id AND vr.user_email = ?) AS is_registered", *viewerEmail).
			Column("EXISTS(SELECT 1 FROM event_interests vi WHERE vi.event_id = e.id AND vi.user_email = ?) AS is_interested", *viewerEmail)
	} else {
		builder = builder.Column("FALSE AS is_registered").Column("FALSE AS is_interested")
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

	events := []models.FeedEvent{}
	for rows.Next() {
		var e models.FeedEvent
		err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.ImageURL, &e.Location,
			&e.ClubID, &e.CreatorEmail, &e.StartTime, &e.EndTime, &e.CreatedAt,
			&e.RegistrationCount, &e.InterestCount, &e.IsRegistered, &e.IsInterested)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// GetCreator retrieves the creator email of an event for authorization.
func (r *EventRepository) GetCreator(ctx context.Context, id int64) (string, error) {
	var creator string
	err := r.db.QueryRow(ctx, `SELECT creator_email FROM events WHERE id = $1`, id).Scan(&creator)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrEventNotFound
		}
		return "", fmt.Errorf("error executing query: %w", err)
	}
	return creator, nil
}

// Exists reports whether an event row exists.
func (r *EventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// Create inserts a new event and returns its id.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := `
		INSERT INTO events (title, description, image_url, location, club_id, creator_email, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.ImageURL, event.Location,
		event.ClubID, event.CreatorEmail, event.StartTime, event.EndTime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// Delete removes an event. Registration and interest edges cascade.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Register inserts a registration edge and returns its id.
func (r *EventRepository) Register(ctx context.Context, eventID int64, userEmail string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO event_registrations (event_id, user_email) VALUES ($1, $2) RETURNING id`,
		eventID, userEmail).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Unregister removes a registration edge, returning the deleted id or nil
// when no edge existed.
func (r *EventRepository) Unregister(ctx context.Context, eventID int64, userEmail string) (*int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM event_registrations WHERE event_id = $1 AND user_email = $2 RETURNING id`,
		eventID, userEmail).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &id, nil
}

// MarkInterest inserts an interest edge and returns its id.
func (r *EventRepository) MarkInterest(ctx context.Context, eventID int64, userEmail string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO event_interests (event_id, user_email) VALUES ($1, $2) RETURNING id`,
		eventID, userEmail).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RemoveInterest removes an interest edge, returning the deleted id or nil
// when no edge existed.
func (r *EventRepository) RemoveInterest(ctx context.Context, eventID int64, userEmail string) (*int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`DELETE FROM event_interests WHERE event_id = $1 AND user_email = $2 RETURNING id`,
		eventID, userEmail).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &id, nil
}
