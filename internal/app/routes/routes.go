package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campuslink/backend/internal/app/controllers"
	"github.com/campuslink/backend/internal/middleware"
)

// SetupRouter configures all application routes. Endpoints are flat,
// resource-named paths; the HTTP verb selects the operation and the GET
// forms dispatch on their query parameters.
func SetupRouter(
	router *gin.Engine,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	likeController *controllers.LikeController,
	clubController *controllers.ClubController,
	eventController *controllers.EventController,
	userController *controllers.UserController,
	identity *middleware.IdentityMiddleware,
) {
	router.Use(middleware.RequestLogger())
	router.Use(identity.Identify())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/post", postController.GetFeed)
	router.POST("/post", postController.CreatePost)
	router.PUT("/post", postController.UpdatePost)
	router.DELETE("/post", postController.DeletePost)

	router.GET("/comment", commentController.GetComments)
	router.GET("/comment/tree", commentController.GetCommentTree)
	router.POST("/comment", commentController.CreateComment)
	router.PUT("/comment", commentController.UpdateComment)
	router.DELETE("/comment", commentController.DeleteComment)

	router.GET("/post-like", likeController.GetPostLikes)
	router.POST("/post-like", likeController.LikePost)
	router.DELETE("/post-like", likeController.UnlikePost)

	router.GET("/comment-like", likeController.GetCommentLikes)
	router.POST("/comment-like", likeController.LikeComment)
	router.DELETE("/comment-like", likeController.UnlikeComment)

	router.GET("/club", clubController.GetClubs)
	router.GET("/club/stats", clubController.GetClubStats)
	router.POST("/club", clubController.CreateClub)
	router.PUT("/club", clubController.UpdateClub)
	router.DELETE("/club", clubController.DeleteClub)

	router.GET("/club-follow", clubController.GetClubFollow)
	router.POST("/club-follow", clubController.FollowClub)
	router.DELETE("/club-follow", clubController.UnfollowClub)

	router.GET("/event", eventController.GetEvents)
	router.POST("/event", eventController.CreateEvent)
	router.DELETE("/event", eventController.DeleteEvent)

	router.POST("/event-registration", eventController.Register)
	router.DELETE("/event-registration", eventController.Unregister)
	router.POST("/event-interest", eventController.MarkInterest)
	router.DELETE("/event-interest", eventController.RemoveInterest)

	router.GET("/user", userController.GetUser)
	router.POST("/user", userController.UpsertUser)
	router.PUT("/user", userController.UpdateUser)

	router.GET("/user-follow", userController.GetUserFollow)
	router.POST("/user-follow", userController.FollowUser)
	router.DELETE("/user-follow", userController.UnfollowUser)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
