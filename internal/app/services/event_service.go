package services

import (
	"context"
	"fmt"

	"github.com/campuslink/backend/internal/app/auth"
	"github.com/campuslink/backend/internal/app/models"
	"github.com/campuslink/backend/internal/app/models/dto"
	"github.com/campuslink/backend/internal/app/repositories"
	"github.com/campuslink/backend/internal/pkg/apperrors"
	"github.com/campuslink/backend/internal/pkg/dberrors"
	"github.com/campuslink/backend/internal/pkg/logger"
)

// EventService exposes the event listing, write path, and the
// registration/interest engagement edges.
type EventService interface {
	GetEvents(ctx context.Context, viewerEmail *string) ([]models.FeedEvent, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (int64, error)
	DeleteEvent(ctx context.Context, req *dto.DeleteEventRequest) (int64, error)

	Register(ctx context.Context, eventID int64, userEmail string) (int64, error)
	Unregister(ctx context.Context, eventID int64, userEmail string) (*int64, error)
	MarkInterest(ctx context.Context, eventID int64, userEmail string) (int64, error)
	RemoveInterest(ctx context.Context, eventID int64, userEmail string) (*int64, error)
}

type eventService struct {
	eventRepo *repositories.EventRepository
	clubRepo  *repositories.ClubRepository
	userRepo  *repositories.UserRepository
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo *repositories.EventRepository, clubRepo *repositories.ClubRepository, userRepo *repositories.UserRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
		clubRepo:  clubRepo,
		userRepo:  userRepo,
	}
}

// GetEvents returns upcoming events with derived counts. When a viewer is
// supplied their registration and interest flags are filled in.
func (s *eventService) GetEvents(ctx context.Context, viewerEmail *string) ([]models.FeedEvent, error) {
	return s.eventRepo.List(ctx, viewerEmail)
}

// CreateEvent validates the creator and (when given) the hosting club, then
// inserts. An end time before the start time is rejected.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (int64, error) {
	exists, err := s.userRepo.Exists(ctx, req.CreatorEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to check creator: %w", err)
	}
	if !exists {
		return 0, apperrors.NewCustomError(apperrors.ErrUserNotFound, "creator does not exist")
	}

	if req.ClubID != nil {
		clubExists, err := s.clubRepo.Exists(ctx, *req.ClubID)
		if err != nil {
			return 0, fmt.Errorf("failed to check club: %w", err)
		}
		if !clubExists {
			return 0, apperrors.NewCustomError(apperrors.ErrClubNotFound, "hosting club does not exist")
		}
	}

	if req.EndTime != nil && req.EndTime.Before(req.StartTime) {
		return 0, apperrors.NewBadRequestError("event ends before it starts")
	}

	event := &models.Event{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Location:     req.Location,
		ClubID:       req.ClubID,
		CreatorEmail: req.CreatorEmail,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		logger.Error().Err(err).Str("creator", req.CreatorEmail).Msg("Failed to create event")
		return 0, err
	}
	return id, nil
}

// DeleteEvent removes an event. Only the event creator or a system admin
// may delete; registration and interest edges cascade.
func (s *eventService) DeleteEvent(ctx context.Context, req *dto.DeleteEventRequest) (int64, error) {
	creator, err := s.eventRepo.GetCreator(ctx, req.EventID)
	if err != nil {
		return 0, err
	}

	role, err := s.userRepo.GetRole(ctx, req.UserEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve actor role: %w", err)
	}
	actor := auth.Actor{Email: req.UserEmail, Role: role}
	if !auth.CanDeleteEvent(actor, creator) {
		return 0, apperrors.NewForbiddenError("only the event creator or a system admin may delete an event")
	}

	if err := s.eventRepo.Delete(ctx, req.EventID); err != nil {
		return 0, err
	}
	return req.EventID, nil
}

// Register records an attendance intent. Registering twice is a conflict.
func (s *eventService) Register(ctx context.Context, eventID int64, userEmail string) (int64, error) {
	if err := s.requireEvent(ctx, eventID); err != nil {
		return 0, err
	}

	id, err := s.eventRepo.Register(ctx, eventID, userEmail)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("already registered for this event")
		}
		return 0, fmt.Errorf("failed to register: %w", err)
	}
	return id, nil
}

// Unregister removes a registration; a missing edge is a no-op success.
func (s *eventService) Unregister(ctx context.Context, eventID int64, userEmail string) (*int64, error) {
	return s.eventRepo.Unregister(ctx, eventID, userEmail)
}

// MarkInterest records interest. Marking twice is a conflict.
func (s *eventService) MarkInterest(ctx context.Context, eventID int64, userEmail string) (int64, error) {
	if err := s.requireEvent(ctx, eventID); err != nil {
		return 0, err
	}

	id, err := s.eventRepo.MarkInterest(ctx, eventID, userEmail)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("already interested in this event")
		}
		return 0, fmt.Errorf("failed to mark interest: %w", err)
	}
	return id, nil
}

// RemoveInterest removes an interest edge; a missing edge is a no-op success.
func (s *eventService) RemoveInterest(ctx context.Context, eventID int64, userEmail string) (*int64, error) {
	return s.eventRepo.RemoveInterest(ctx, eventID, userEmail)
}

func (s *eventService) requireEvent(ctx context.Context, eventID int64) error {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return apperrors.ErrEventNotFound
	}
	return nil
}
