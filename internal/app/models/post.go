package models

import "time"

// Post defines the post model based on the 'posts' table. A nil ClubID means
// the post is public; otherwise it is addressed to a club.
type Post struct {
	ID           int64     `json:"id" db:"id"`
	AuthorEmail  string    `json:"authorEmail" db:"author_email"`
	Content      string    `json:"content" db:"content"`
	ImageURL     *string   `json:"imageUrl,omitempty" db:"image_url"`
	ClubID       *int64    `json:"clubId,omitempty" db:"club_id"`
	IsUHTRelated bool      `json:"isUhtRelated" db:"is_uht_related"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// FeedPost is a post enriched for feed rendering: authorship, club ownership
// (needed for the club-creator override on the client), and the derived
// engagement numbers. like_count and comment_count are live COUNTs, is_liked
// is an EXISTS check for the requesting viewer.
type FeedPost struct {
	Post
	AuthorName       string  `json:"authorName" db:"name"`
	AuthorImage      *string `json:"authorImage,omitempty" db:"author_image"`
	AuthorRole       Role    `json:"authorRole" db:"role"`
	ClubCreatorEmail *string `json:"clubCreatorEmail,omitempty" db:"creator_email"`
	LikeCount        int64   `json:"likeCount" db:"like_count"`
	CommentCount     int64   `json:"commentCount" db:"comment_count"`
	IsLiked          bool    `json:"isLiked" db:"is_liked"`
}

// PostAuthInfo carries the ownership chain needed by the authorization
// evaluator: the post author and, when the post belongs to a club, the club
// creator.
type PostAuthInfo struct {
	ID               int64
	AuthorEmail      string
	ClubCreatorEmail *string
}
