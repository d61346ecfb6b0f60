package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances sharing one pool.
type Repositories struct {
	UserRepository    *UserRepository
	ClubRepository    *ClubRepository
	PostRepository    *PostRepository
	CommentRepository *CommentRepository
	LikeRepository    *LikeRepository
	EventRepository   *EventRepository
}

// NewRepositories creates all repositories over the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		ClubRepository:    NewClubRepository(db),
		PostRepository:    NewPostRepository(db),
		CommentRepository: NewCommentRepository(db),
		LikeRepository:    NewLikeRepository(db),
		EventRepository:   NewEventRepository(db),
	}
}
