package dto

import "time"

// CreateEventRequest is the body of POST /event.
type CreateEventRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"imageUrl"`
	Location     *string    `json:"location"`
	ClubID       *int64     `json:"clubId"`
	CreatorEmail string     `json:"creatorEmail" binding:"required,email"`
	StartTime    time.Time  `json:"startTime" binding:"required"`
	EndTime      *time.Time `json:"endTime"`
}

// DeleteEventRequest is the body of DELETE /event.
type DeleteEventRequest struct {
	EventID   int64  `json:"eventId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// CreateEventResponse is the reply of POST /event.
type CreateEventResponse struct {
	NewEventID int64 `json:"newEventId" example:"5"`
}

// DeleteEventResponse is the reply of DELETE /event.
type DeleteEventResponse struct {
	DeletedEventID int64 `json:"deletedEventId" example:"5"`
}

// EventEngagementRequest is the body of POST and DELETE on
// /event-registration and /event-interest.
type EventEngagementRequest struct {
	EventID   int64  `json:"eventId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required,email"`
}

// CreateEngagementResponse is the reply of the POST forms.
type CreateEngagementResponse struct {
	NewID int64 `json:"newId" example:"14"`
}

// DeleteEngagementResponse is the reply of the DELETE forms; the id is
// absent when there was nothing to remove.
type DeleteEngagementResponse struct {
	DeletedID *int64 `json:"deletedId,omitempty" example:"14"`
}
