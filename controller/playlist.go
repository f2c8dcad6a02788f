package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/controller/dto"
	"github.com/videomotion/video-motion-api/entity"
	"github.com/videomotion/video-motion-api/utils"
)

func (ctrl *Controller) CreatePlaylist(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Name is required")
		return
	}

	videoIDs, ok := parseVideoIDs(c, req.Videos)
	if !ok {
		return
	}
	for _, videoID := range videoIDs {
		if _, err := ctrl.Repository.VideoRepo.GetByID(videoID); err != nil {
			respondRepositoryError(c, err, "Video not found")
			return
		}
	}

	playlist := &entity.Playlist{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     user.ID,
	}

	if err := ctrl.Repository.PlaylistRepo.Create(playlist, videoIDs); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to create playlist")
		respondError(c, 500, "Something went wrong while creating playlist")
		return
	}

	respondSuccess(c, 201, playlist, "Playlist created successfully")
}

func (ctrl *Controller) GetUserPlaylists(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	playlists, err := ctrl.Repository.PlaylistRepo.ListByOwner(user.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to list playlists for user %s", user.ID)
		respondError(c, 500, "Internal server error")
		return
	}

	respondSuccess(c, 200, playlists, "Playlists fetched successfully")
}

func (ctrl *Controller) GetPlaylist(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "playlistId", "Playlist id is required")
	if !ok {
		return
	}

	playlist, err := ctrl.Repository.PlaylistRepo.GetWithVideos(playlistID)
	if err != nil {
		respondRepositoryError(c, err, "Playlist not found")
		return
	}

	respondSuccess(c, 200, playlist, "Playlist fetched successfully")
}

func (ctrl *Controller) UpdatePlaylist(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	playlistID, ok := parseIDParam(c, "playlistId", "Playlist id is required")
	if !ok {
		return
	}

	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Name == "" && req.Description == "") {
		respondError(c, 400, "Name or description is required")
		return
	}

	playlist, err := ctrl.Repository.PlaylistRepo.Update(playlistID, user.ID, req.Name, req.Description)
	if err != nil {
		respondRepositoryError(c, err, "Playlist not found")
		return
	}

	respondSuccess(c, 200, playlist, "Playlist updated successfully")
}

func (ctrl *Controller) DeletePlaylist(c *gin.Context) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	playlistID, ok := parseIDParam(c, "playlistId", "Playlist id is required")
	if !ok {
		return
	}

	if err := ctrl.Repository.PlaylistRepo.Delete(playlistID, user.ID); err != nil {
		respondRepositoryError(c, err, "Playlist not found")
		return
	}

	respondSuccess(c, 200, gin.H{}, "Playlist deleted successfully")
}

func (ctrl *Controller) AddVideosToPlaylist(c *gin.Context) {
	ctrl.changePlaylistVideos(c, true)
}

func (ctrl *Controller) RemoveVideosFromPlaylist(c *gin.Context) {
	ctrl.changePlaylistVideos(c, false)
}

func (ctrl *Controller) changePlaylistVideos(c *gin.Context, add bool) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		respondError(c, 401, "Unauthorized request")
		return
	}

	playlistID, ok := parseIDParam(c, "playlistId", "Playlist id is required")
	if !ok {
		return
	}

	var req dto.PlaylistVideosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "At least one video id is required")
		return
	}

	videoIDs, ok := parseVideoIDs(c, req.Videos)
	if !ok {
		return
	}

	var playlist *entity.PlaylistWithVideos
	var message string
	if add {
		for _, videoID := range videoIDs {
			if _, err := ctrl.Repository.VideoRepo.GetByID(videoID); err != nil {
				respondRepositoryError(c, err, "Video not found")
				return
			}
		}
		playlist, err = ctrl.Repository.PlaylistRepo.AddVideos(playlistID, user.ID, videoIDs)
		message = "Videos added to playlist successfully"
	} else {
		playlist, err = ctrl.Repository.PlaylistRepo.RemoveVideos(playlistID, user.ID, videoIDs)
		message = "Videos removed from playlist successfully"
	}
	if err != nil {
		respondRepositoryError(c, err, "Playlist not found")
		return
	}

	respondSuccess(c, 200, playlist, message)
}

func parseVideoIDs(c *gin.Context, raw []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			respondError(c, 400, "Invalid video id format")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
