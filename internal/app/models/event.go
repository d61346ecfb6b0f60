package models

import "time"

// Event defines the event model based on the 'events' table. Registration
// and interest are engagement edges with derived counts, the same pattern as
// likes and club follows.
type Event struct {
	ID           int64      `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Description  *string    `json:"description,omitempty" db:"description"`
	ImageURL     *string    `json:"imageUrl,omitempty" db:"image_url"`
	Location     *string    `json:"location,omitempty" db:"location"`
	ClubID       *int64     `json:"clubId,omitempty" db:"club_id"`
	CreatorEmail string     `json:"creatorEmail" db:"creator_email"`
	StartTime    time.Time  `json:"startTime" db:"start_time"`
	EndTime      *time.Time `json:"endTime,omitempty" db:"end_time"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// FeedEvent is an event enriched with derived counts and, when a viewer is
// supplied, the viewer's own registration/interest state.
type FeedEvent struct {
	Event
	RegistrationCount int64 `json:"registrationCount" db:"registration_count"`
	InterestCount     int64 `json:"interestCount" db:"interest_count"`
	IsRegistered      bool  `json:"isRegistered" db:"is_registered"`
	IsInterested      bool  `json:"isInterested" db:"is_interested"`
}
