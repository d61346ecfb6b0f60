package services

import (
	"github.com/campuslink/backend/internal/app/repositories"
	"github.com/campuslink/backend/internal/pkg/ratelimit"
)

// Services bundles all service instances.
type Services struct {
	UserService    UserService
	ClubService    ClubService
	PostService    PostService
	CommentService CommentService
	LikeService    LikeService
	EventService   EventService
}

// NewServices wires all services over the shared repositories. The limiter
// throttles the post like/unlike path.
func NewServices(repos *repositories.Repositories, limiter ratelimit.Limiter) *Services {
	return &Services{
		UserService: NewUserService(repos.UserRepository),
		ClubService: NewClubService(repos.ClubRepository, repos.PostRepository, repos.UserRepository),
		PostService: NewPostService(repos.PostRepository, repos.UserRepository, repos.ClubRepository),
		CommentService: NewCommentService(
			repos.CommentRepository, repos.PostRepository, repos.UserRepository),
		LikeService: NewLikeService(
			repos.LikeRepository, repos.PostRepository, repos.CommentRepository, limiter),
		EventService: NewEventService(repos.EventRepository, repos.ClubRepository, repos.UserRepository),
	}
}
