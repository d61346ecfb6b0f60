package models

import "time"

// Club is a shared posting destination with a follower list. Whoever created
// the club may moderate content posted within it (club creator override).
type Club struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	LogoURL      *string   `json:"logoUrl,omitempty" db:"logo_url"`
	About        *string   `json:"about,omitempty" db:"about"`
	CreatorEmail string    `json:"creatorEmail" db:"creator_email"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// FollowerCount is derived with a live COUNT over club_followers.
	FollowerCount int64 `json:"followerCount" db:"follower_count"`
}

// ClubStats holds the two derived counters shown on a club page. The two
// counts come from independent queries and are not transactionally
// consistent with each other.
type ClubStats struct {
	ClubID        int64 `json:"clubId"`
	FollowerCount int64 `json:"followerCount"`
	PostCount     int64 `json:"postCount"`
}
