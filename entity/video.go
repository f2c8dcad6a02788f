package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Video struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VideoFile   string         `gorm:"size:512;not null" json:"video_file"`
	Thumbnail   string         `gorm:"size:512;not null" json:"thumbnail"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Duration    float64        `gorm:"not null" json:"duration"`
	Views       int64          `gorm:"not null;default:0" json:"views"`
	IsPublished bool           `gorm:"not null;default:true" json:"is_published"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       *User          `gorm:"foreignKey:OwnerID" json:"-"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// UploadMetadata is stored in the Metadata JSON column so the original
// object keys survive URL changes (CDN moves, bucket renames).
type UploadMetadata struct {
	VideoObjectKey     string `json:"video_object_key"`
	ThumbnailObjectKey string `json:"thumbnail_object_key"`
	OriginalFilename   string `json:"original_filename"`
	ContentType        string `json:"content_type"`
	Size               int64  `json:"size"`
}

// VideoWithOwner is a video plus the short owner projection, the shape
// list and detail endpoints return.
type VideoWithOwner struct {
	Video
	OwnerRef OwnerRef `json:"owner"`
}
