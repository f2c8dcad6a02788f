package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/videomotion/video-motion-api/utils"
)

// GetChannelStats aggregates a channel's numbers. A channel with no
// content answers with zeroes, never an error.
func (ctrl *Controller) GetChannelStats(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := utils.GetUserFromContext(c); err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	channelID, ok := parseIDParam(c, "channelId", "Channel id is required")
	if !ok {
		return
	}

	if _, err := ctrl.Repository.UserRepo.GetByID(channelID); err != nil {
		respondRepositoryError(c, err, "Channel not found")
		return
	}

	totalVideos, err := ctrl.Repository.VideoRepo.CountByOwner(channelID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Dashboard] Failed to count videos for channel %s", channelID)
		respondError(c, 500, "Internal server error")
		return
	}

	totalViews, err := ctrl.Repository.VideoRepo.SumViewsByOwner(channelID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Dashboard] Failed to sum views for channel %s", channelID)
		respondError(c, 500, "Internal server error")
		return
	}

	totalSubscribers, err := ctrl.Repository.SubscriptionRepo.CountByChannel(channelID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Dashboard] Failed to count subscribers for channel %s", channelID)
		respondError(c, 500, "Internal server error")
		return
	}

	totalLikes, err := ctrl.Repository.LikeRepo.CountForOwnerVideos(channelID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Dashboard] Failed to count likes for channel %s", channelID)
		respondError(c, 500, "Internal server error")
		return
	}

	totalComments, err := ctrl.Repository.CommentRepo.CountForOwnerVideos(channelID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Dashboard] Failed to count comments for channel %s", channelID)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, gin.H{
		"totalVideos":      totalVideos,
		"totalViews":       totalViews,
		"totalSubscribers": totalSubscribers,
		"totalLikes":       totalLikes,
		"totalComments":    totalComments,
	}, "Channel stats fetched successfully")
}

// GetChannelVideos lists a channel's videos. Unpublished drafts are
// visible only to the channel owner.
func (ctrl *Controller) GetChannelVideos(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	channelID, ok := parseIDParam(c, "channelId", "Channel id is required")
	if !ok {
		return
	}

	if _, err := ctrl.Repository.UserRepo.GetByID(channelID); err != nil {
		respondRepositoryError(c, err, "Channel not found")
		return
	}

	includeUnpublished := channelID == user.ID

	videos, err := ctrl.Repository.VideoRepo.ListByOwner(channelID, includeUnpublished)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Dashboard] Failed to list videos for channel %s", channelID)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, videos, "Channel videos fetched successfully")
}
