package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/videomotion/video-motion-api/controller/dto"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/utils"
)

func (ctrl *Controller) CreateTweet(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Content is required and must be at most 280 characters")
		return
	}

	tweet := &entity.Tweet{
		Content: req.Content,
		OwnerID: user.ID,
	}

	if err := ctrl.Repository.TweetRepo.Create(tweet); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tweet] Failed to create tweet")
		respondError(c, 500, "Something went wrong while creating tweet")
		return
	}

	respondSuccess(c, 201, tweet, "Tweet created successfully")
}

func (ctrl *Controller) GetAllTweets(c *gin.Context) {
	ctx := c.Request.Context()

	tweets, err := ctrl.Repository.TweetRepo.ListAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tweet] Failed to list tweets")
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, tweets, "Tweets fetched successfully")
}

func (ctrl *Controller) GetUserTweets(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := parseIDParam(c, "userId", "User id is required")
	if !ok {
		return
	}

	if _, err := ctrl.Repository.UserRepo.GetByID(userID); err != nil {
		respondRepositoryError(c, err, "User not found")
		return
	}

	tweets, err := ctrl.Repository.TweetRepo.ListByOwner(userID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tweet] Failed to list tweets for user %s", userID)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, tweets, "Tweets fetched successfully")
}

func (ctrl *Controller) UpdateTweet(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	tweetID, ok := parseIDParam(c, "tweetId", "Tweet id is required")
	if !ok {
		return
	}

	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Content is required and must be at most 280 characters")
		return
	}

	tweet, err := ctrl.Repository.TweetRepo.Update(tweetID, user.ID, req.Content)
	if err != nil {
		respondRepositoryError(c, err, "Tweet not found")
		return
	}

	respondSuccess(c, 200, tweet, "Tweet updated successfully")
}

func (ctrl *Controller) DeleteTweet(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	tweetID, ok := parseIDParam(c, "tweetId", "Tweet id is required")
	if !ok {
		return
	}

	if err := ctrl.Repository.TweetRepo.Delete(tweetID, user.ID); err != nil {
		respondRepositoryError(c, err, "Tweet not found")
		return
	}

	respondSuccess(c, 200, gin.H{}, "Tweet deleted successfully")
}
