package controller

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/controller/dto"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/infra"
	"github.com/videomotion/video-motion-api/repository"
	"github.com/videomotion/video-motion-api/utils"
	"gorm.io/datatypes"
)

func (ctrl *Controller) PublishVideo(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	var req dto.CreateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, 400, "Title, description and duration are required")
		return
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		respondError(c, 400, "Video file is required")
		return
	}
	thumbnailFile, err := c.FormFile("thumbnail")
	if err != nil {
		respondError(c, 400, "Thumbnail is required")
		return
	}

	videoURL, videoKey, err := ctrl.uploadAsset(ctx, videoFile, infra.FolderVideos)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to upload video file")
		respondError(c, 500, "Error while uploading video")
		return
	}

	thumbnailURL, thumbnailKey, err := ctrl.uploadAsset(ctx, thumbnailFile, infra.FolderThumbnails)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to upload thumbnail")
		respondError(c, 500, "Error while uploading thumbnail")
		return
	}

	metadata, _ := json.Marshal(entity.UploadMetadata{
		VideoObjectKey:     videoKey,
		ThumbnailObjectKey: thumbnailKey,
		OriginalFilename:   videoFile.Filename,
		ContentType:        videoFile.Header.Get("Content-Type"),
		Size:               videoFile.Size,
	})

	video := &entity.Video{
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		OwnerID:     user.ID,
		Metadata:    datatypes.JSON(metadata),
	}

	if err := ctrl.Repository.VideoRepo.Create(video); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to create video record")
		respondError(c, 500, "Error while creating video")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Video] User %s published video %s", user.Username, video.ID)
	respondSuccess(c, 201, video, "Video uploaded successfully")
}

func (ctrl *Controller) ListVideos(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.ListVideosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, 400, "Invalid pagination parameters")
		return
	}

	var ownerID *uuid.UUID
	if query.UserID != "" {
		parsed, err := uuid.Parse(query.UserID)
		if err != nil {
			respondError(c, 400, "Invalid user id")
			return
		}
		ownerID = &parsed
	}

	videos, total, err := ctrl.Repository.VideoRepo.ListPublished(query.Page, query.Limit, ownerID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Video] Failed to list videos")
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, gin.H{
		"videos":     videos,
		"total":      total,
		"page":       query.Page,
		"limit":      query.Limit,
		"totalPages": repository.TotalPages(total, query.Limit),
	}, "Videos fetched successfully")
}

func (ctrl *Controller) GetVideo(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId", "Video id is required")
	if !ok {
		return
	}

	video, err := ctrl.Repository.VideoRepo.GetWithOwner(videoID)
	if err != nil {
		respondRepositoryError(c, err, "Video not found")
		return
	}

	respondSuccess(c, 200, video, "Video fetched successfully")
}

func (ctrl *Controller) UpdateVideo(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	videoID, ok := parseIDParam(c, "videoId", "Video id is required")
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Title == "" && req.Description == "") {
		respondError(c, 400, "Title or description is required")
		return
	}

	video, err := ctrl.Repository.VideoRepo.UpdateDetails(videoID, user.ID, req.Title, req.Description)
	if err != nil {
		respondRepositoryError(c, err, "Video not found")
		return
	}

	respondSuccess(c, 200, video, "Video updated successfully")
}

func (ctrl *Controller) DeleteVideo(c *gin.Context) {
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

	video, err := ctrl.Repository.VideoRepo.DeleteCascade(videoID, user.ID)
	if err != nil {
		respondRepositoryError(c, err, "Video not found")
		return
	}

	ctrl.queueAssetDelete(ctx, user.ID, video.VideoFile, "deleted video")
	ctrl.queueAssetDelete(ctx, user.ID, video.Thumbnail, "deleted video thumbnail")

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Video] User %s deleted video %s", user.Username, videoID)
	respondSuccess(c, 200, gin.H{}, "Video deleted successfully")
}

func (ctrl *Controller) TogglePublishedStatus(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	videoID, ok := parseIDParam(c, "videoId", "Video id is required")
	if !ok {
		return
	}

	video, err := ctrl.Repository.VideoRepo.TogglePublished(videoID, user.ID)
	if err != nil {
		respondRepositoryError(c, err, "Video not found")
		return
	}

	respondSuccess(c, 200, video, "Published status toggled successfully")
}

func (ctrl *Controller) IncreaseViewCount(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId", "Video id is required")
	if !ok {
		return
	}

	video, err := ctrl.Repository.VideoRepo.IncrementViews(videoID)
	if err != nil {
		respondRepositoryError(c, err, "Video not found")
		return
	}

	respondSuccess(c, 200, video, "View count incremented successfully")
}

func (ctrl *Controller) AddVideoToWatchHistory(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	videoID, ok := parseIDParam(c, "videoId", "Video id is required")
	if !ok {
		return
	}

	var req dto.WatchHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Duration is required")
		return
	}

	if _, err := ctrl.Repository.VideoRepo.GetByID(videoID); err != nil {
		respondRepositoryError(c, err, "Video not found")
		return
	}

	entry, err := ctrl.Repository.WatchHistoryRepo.Upsert(user.ID, videoID, req.Duration, req.Position)
	if err != nil {
		respondRepositoryError(c, err, "Video not found")
		return
	}

	respondSuccess(c, 200, entry, "Video added to watch history")
}

func (ctrl *Controller) DeleteVideoFromWatchHistory(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	videoID, ok := parseIDParam(c, "videoId", "Video id is required")
	if !ok {
		return
	}

	if err := ctrl.Repository.WatchHistoryRepo.Delete(user.ID, videoID); err != nil {
		respondRepositoryError(c, err, "Watch history entry not found")
		return
	}

	respondSuccess(c, 200, gin.H{}, "Video deleted from history successfully")
}

// parseIDParam reads a uuid path parameter, answering 400 itself when the
// segment is missing or malformed.
func parseIDParam(c *gin.Context, name, requiredMessage string) (uuid.UUID, bool) {
	raw := c.Param(name)
	if raw == "" {
		respondError(c, 400, requiredMessage)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, 400, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}
