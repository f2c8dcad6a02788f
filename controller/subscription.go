package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/videomotion/video-motion-api/utils"
)

func (ctrl *Controller) ToggleSubscription(c *gin.Context) {
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

	if channelID == user.ID {
		respondError(c, 400, "You cannot subscribe to your own channel")
		return
	}

	if _, err := ctrl.Repository.UserRepo.GetByID(channelID); err != nil {
		respondRepositoryError(c, err, "Channel not found")
		return
	}

	subscribed, err := ctrl.Repository.SubscriptionRepo.Toggle(channelID, user.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Subscription] Failed to toggle subscription to channel %s", channelID)
		respondError(c, 500, "Internal server error")
		return
	}

	message := "Subscribed successfully"
	if !subscribed {
		message = "Unsubscribed successfully"
	}
	respondSuccess(c, 200, gin.H{"subscribed": subscribed}, message)
}

func (ctrl *Controller) GetChannelSubscribers(c *gin.Context) {
	ctx := c.Request.Context()

	channelID, ok := parseIDParam(c, "channelId", "Channel id is required")
	if !ok {
		return
	}

	if _, err := ctrl.Repository.UserRepo.GetByID(channelID); err != nil {
		respondRepositoryError(c, err, "Channel not found")
		return
	}

	subscribers, err := ctrl.Repository.SubscriptionRepo.ListSubscribers(channelID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Subscription] Failed to list subscribers of channel %s", channelID)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, gin.H{
		"subscribers": subscribers,
		"total":       len(subscribers),
	}, "Subscribers fetched successfully")
}

// GetSubscribedChannels lists the channels a user follows. Without a
// subscriberId path segment it falls back to the caller.
func (ctrl *Controller) GetSubscribedChannels(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	subscriberID := user.ID
	if raw := c.Param("subscriberId"); raw != "" {
		parsed, ok := parseIDParam(c, "subscriberId", "Subscriber id is required")
		if !ok {
			return
		}
		subscriberID = parsed
	}

	channels, err := ctrl.Repository.SubscriptionRepo.ListChannels(subscriberID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Subscription] Failed to list channels for subscriber %s", subscriberID)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, gin.H{
		"channels": channels,
		"total":    len(channels),
	}, "Subscribed channels fetched successfully")
}
