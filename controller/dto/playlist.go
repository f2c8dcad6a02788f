package dto

type CreatePlaylistRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"omitempty"`
	Videos      []string `json:"videos" binding:"omitempty,dive,uuid"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty"`
}

type PlaylistVideosRequest struct {
	Videos []string `json:"videos" binding:"required,min=1,dive,uuid"`
}
