package dto

type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type PageQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
