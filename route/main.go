package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/videomotion/video-motion-api/controller"
	middlewares "github.com/videomotion/video-motion-api/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	apiRoutes := r.Group("/api/v1")
	{
		userRoutes := apiRoutes.Group("/users")
		{
			userRoutes.POST("/register", ctrl.RegisterUser)
			userRoutes.POST("/login", ctrl.LoginUser)
			userRoutes.POST("/refresh-token", ctrl.RefreshAccessToken)

			userRoutes.POST("/logout", middles.AuthMiddleware, ctrl.LogoutUser)
			userRoutes.POST("/change-password", middles.AuthMiddleware, ctrl.ChangeCurrentPassword)
			userRoutes.GET("/current-user", middles.AuthMiddleware, ctrl.GetCurrentUser)
			userRoutes.PATCH("/update-account", middles.AuthMiddleware, ctrl.UpdateAccountDetails)
			userRoutes.PATCH("/update-avatar", middles.AuthMiddleware, ctrl.UpdateAvatar)
			userRoutes.PATCH("/update-coverimage", middles.AuthMiddleware, ctrl.UpdateCoverImage)
			userRoutes.GET("/c/:username", middles.AuthMiddleware, ctrl.GetUserChannelProfile)
			userRoutes.GET("/history", middles.AuthMiddleware, ctrl.GetWatchHistory)
		}

		videoRoutes := apiRoutes.Group("/videos")
		{
			videoRoutes.GET("", ctrl.ListVideos)
			videoRoutes.GET("/:videoId", ctrl.GetVideo)
			videoRoutes.PATCH("/increase-view-count/:videoId", ctrl.IncreaseViewCount)

			videoRoutes.POST("", middles.AuthMiddleware, ctrl.PublishVideo)
			videoRoutes.PATCH("/:videoId", middles.AuthMiddleware, ctrl.UpdateVideo)
			videoRoutes.DELETE("/:videoId", middles.AuthMiddleware, ctrl.DeleteVideo)
			videoRoutes.PATCH("/toggle-published-status/:videoId", middles.AuthMiddleware, ctrl.TogglePublishedStatus)
			videoRoutes.PATCH("/add-to-watch-history/:videoId", middles.AuthMiddleware, ctrl.AddVideoToWatchHistory)
			videoRoutes.DELETE("/delete-video-from-history/:videoId", middles.AuthMiddleware, ctrl.DeleteVideoFromWatchHistory)
		}

		commentRoutes := apiRoutes.Group("/comments")
		{
			commentRoutes.GET("/:videoId", ctrl.GetComments)

			commentRoutes.POST("/:videoId", middles.AuthMiddleware, ctrl.AddComment)
			commentRoutes.PATCH("/c/:commentId", middles.AuthMiddleware, ctrl.UpdateComment)
			commentRoutes.DELETE("/c/:commentId", middles.AuthMiddleware, ctrl.DeleteComment)
		}

		tweetRoutes := apiRoutes.Group("/tweets")
		{
			tweetRoutes.GET("", ctrl.GetAllTweets)
			tweetRoutes.GET("/user/:userId", ctrl.GetUserTweets)

			tweetRoutes.POST("", middles.AuthMiddleware, ctrl.CreateTweet)
			tweetRoutes.PATCH("/:tweetId", middles.AuthMiddleware, ctrl.UpdateTweet)
			tweetRoutes.DELETE("/:tweetId", middles.AuthMiddleware, ctrl.DeleteTweet)
		}

		likeRoutes := apiRoutes.Group("/likes")
		{
			likeRoutes.GET("/count/v/:videoId", ctrl.GetVideoLikesCount)
			likeRoutes.GET("/count/c/:commentId", ctrl.GetCommentLikesCount)
			likeRoutes.GET("/count/t/:tweetId", ctrl.GetTweetLikesCount)

			likeRoutes.POST("/toggle/v/:videoId", middles.AuthMiddleware, ctrl.ToggleVideoLike)
			likeRoutes.POST("/toggle/c/:commentId", middles.AuthMiddleware, ctrl.ToggleCommentLike)
			likeRoutes.POST("/toggle/t/:tweetId", middles.AuthMiddleware, ctrl.ToggleTweetLike)
			likeRoutes.GET("/videos", middles.AuthMiddleware, ctrl.GetLikedVideos)
		}

		playlistRoutes := apiRoutes.Group("/playlists")
		{
			playlistRoutes.Use(middles.AuthMiddleware)

			playlistRoutes.POST("", ctrl.CreatePlaylist)
			playlistRoutes.GET("", ctrl.GetUserPlaylists)
			playlistRoutes.GET("/:playlistId", ctrl.GetPlaylist)
			playlistRoutes.PATCH("/:playlistId", ctrl.UpdatePlaylist)
			playlistRoutes.DELETE("/:playlistId", ctrl.DeletePlaylist)
			playlistRoutes.PATCH("/add/:playlistId", ctrl.AddVideosToPlaylist)
			playlistRoutes.PATCH("/remove/:playlistId", ctrl.RemoveVideosFromPlaylist)
		}

		subscriptionRoutes := apiRoutes.Group("/subscriptions")
		{
			subscriptionRoutes.GET("/u/:channelId", ctrl.GetChannelSubscribers)

			subscriptionRoutes.POST("/c/:channelId", middles.AuthMiddleware, ctrl.ToggleSubscription)
			subscriptionRoutes.GET("", middles.AuthMiddleware, ctrl.GetSubscribedChannels)
			subscriptionRoutes.GET("/:subscriberId", middles.AuthMiddleware, ctrl.GetSubscribedChannels)
		}

		dashboardRoutes := apiRoutes.Group("/dashboard")
		{
			dashboardRoutes.Use(middles.AuthMiddleware)

			dashboardRoutes.GET("/stats/:channelId", ctrl.GetChannelStats)
			dashboardRoutes.GET("/videos/:channelId", ctrl.GetChannelVideos)
		}

		healthRoutes := apiRoutes.Group("/healthcheck")
		{
			healthRoutes.GET("", ctrl.Healthcheck)
			healthRoutes.GET("/storage", ctrl.HealthcheckStorage)
		}
	}
	return r
}
