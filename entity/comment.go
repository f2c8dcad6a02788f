package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Content   string    `gorm:"size:1000;not null" json:"content"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner     *User     `gorm:"foreignKey:OwnerID" json:"-"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;index" json:"video_id"`
	Video     *Video    `gorm:"foreignKey:VideoID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentWithOwner struct {
	Comment
	OwnerRef OwnerRef `json:"owner"`
}
