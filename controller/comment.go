package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/videomotion/video-motion-api/controller/dto"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/repository"
	"github.com/videomotion/video-motion-api/utils"
)

func (ctrl *Controller) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	videoID, ok := parseIDParam(c, "videoId", "Video id is required")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Content is required")
		return
	}

	if _, err := ctrl.Repository.VideoRepo.GetByID(videoID); err != nil {
		respondRepositoryError(c, err, "Video not found")
		return
	}

	comment := &entity.Comment{
		Content: req.Content,
		OwnerID: user.ID,
		VideoID: videoID,
	}

	if err := ctrl.Repository.CommentRepo.Create(comment); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to create comment")
		respondError(c, 500, "Something went wrong while adding comment")
		return
	}

	respondSuccess(c, 201, comment, "Comment added successfully")
}

func (ctrl *Controller) GetComments(c *gin.Context) {
	ctx := c.Request.Context()

	videoID, ok := parseIDParam(c, "videoId", "Video id is required")
	if !ok {
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, 400, "Invalid pagination parameters")
		return
	}

	comments, total, err := ctrl.Repository.CommentRepo.ListByVideo(videoID, query.Page, query.Limit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to list comments for video %s", videoID)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, gin.H{
		"comments":   comments,
		"total":      total,
		"page":       query.Page,
		"limit":      query.Limit,
		"totalPages": repository.TotalPages(total, query.Limit),
	}, "Comments fetched successfully")
}

func (ctrl *Controller) UpdateComment(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	commentID, ok := parseIDParam(c, "commentId", "Comment id is required")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Content is required")
		return
	}

	comment, err := ctrl.Repository.CommentRepo.Update(commentID, user.ID, req.Content)
	if err != nil {
		respondRepositoryError(c, err, "Comment not found")
		return
	}

	respondSuccess(c, 200, comment, "Comment updated successfully")
}

func (ctrl *Controller) DeleteComment(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	commentID, ok := parseIDParam(c, "commentId", "Comment id is required")
	if !ok {
		return
	}

	if err := ctrl.Repository.CommentRepo.Delete(commentID, user.ID); err != nil {
		respondRepositoryError(c, err, "Comment not found")
		return
	}

	respondSuccess(c, 200, gin.H{}, "Comment deleted successfully")
}
