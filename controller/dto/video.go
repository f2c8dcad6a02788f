package dto

type CreateVideoRequest struct {
	Title       string  `form:"title" binding:"required,min=1,max=255"`
	Description string  `form:"description" binding:"required,min=1"`
	Duration    float64 `form:"duration" binding:"required,gt=0"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title" binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,min=1"`
}

type ListVideosQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	UserID string `form:"userId" binding:"omitempty,uuid"`
}

type WatchHistoryRequest struct {
	Duration float64 `json:"duration" binding:"required,gt=0"`
	Position float64 `json:"position" binding:"omitempty,gte=0"`
}
