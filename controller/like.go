package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/utils"
)

func (ctrl *Controller) ToggleVideoLike(c *gin.Context) {
	ctrl.toggleLike(c, entity.LikeTargetVideo, "videoId", "Video not found")
}

func (ctrl *Controller) ToggleCommentLike(c *gin.Context) {
	ctrl.toggleLike(c, entity.LikeTargetComment, "commentId", "Comment not found")
}

func (ctrl *Controller) ToggleTweetLike(c *gin.Context) {
	ctrl.toggleLike(c, entity.LikeTargetTweet, "tweetId", "Tweet not found")
}

// toggleLike is the shared body of the three like endpoints. It verifies
// the target exists, flips the like state atomically, and answers with
// the new state plus the updated count.
func (ctrl *Controller) toggleLike(c *gin.Context, targetType, paramName, notFoundMessage string) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	targetID, ok := parseIDParam(c, paramName, "Id is required")
	if !ok {
		return
	}

	if err := ctrl.likeTargetExists(targetType, targetID); err != nil {
		respondRepositoryError(c, err, notFoundMessage)
		return
	}

	liked, err := ctrl.Repository.LikeRepo.Toggle(user.ID, targetType, targetID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Like] Failed to toggle %s like", targetType)
		respondError(c, 500, "Internal server error")
		return
	}

	count, err := ctrl.Repository.LikeRepo.Count(targetType, targetID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Like] Failed to count %s likes", targetType)
		respondError(c, 500, "Internal server error")
		return
	}

	message := "Liked successfully"
	if !liked {
		message = "Unliked successfully"
	}
	respondSuccess(c, 200, gin.H{"liked": liked, "likes": count}, message)
}

func (ctrl *Controller) likeTargetExists(targetType string, targetID uuid.UUID) error {
	switch targetType {
	case entity.LikeTargetVideo:
		_, err := ctrl.Repository.VideoRepo.GetByID(targetID)
		return err
	case entity.LikeTargetComment:
		_, err := ctrl.Repository.CommentRepo.GetByID(targetID)
		return err
	default:
		_, err := ctrl.Repository.TweetRepo.GetByID(targetID)
		return err
	}
}

func (ctrl *Controller) GetVideoLikesCount(c *gin.Context) {
	ctrl.likesCount(c, entity.LikeTargetVideo, "videoId", "Video not found")
}

func (ctrl *Controller) GetCommentLikesCount(c *gin.Context) {
	ctrl.likesCount(c, entity.LikeTargetComment, "commentId", "Comment not found")
}

func (ctrl *Controller) GetTweetLikesCount(c *gin.Context) {
	ctrl.likesCount(c, entity.LikeTargetTweet, "tweetId", "Tweet not found")
}

func (ctrl *Controller) likesCount(c *gin.Context, targetType, paramName, notFoundMessage string) {
	ctx := c.Request.Context()

	targetID, ok := parseIDParam(c, paramName, "Id is required")
	if !ok {
		return
	}

	if err := ctrl.likeTargetExists(targetType, targetID); err != nil {
		respondRepositoryError(c, err, notFoundMessage)
		return
	}

	count, err := ctrl.Repository.LikeRepo.Count(targetType, targetID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Like] Failed to count %s likes", targetType)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, gin.H{"likes": count}, "Like count fetched successfully")
}

func (ctrl *Controller) GetLikedVideos(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	videos, err := ctrl.Repository.LikeRepo.ListLikedVideos(user.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Like] Failed to list liked videos for user %s", user.ID)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, videos, "Liked videos fetched successfully")
}
