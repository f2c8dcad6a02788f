package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like target kinds. A like points at exactly one of these; the tagged
// (target_type, target_id) pair replaces three nullable foreign keys.
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

type Like struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TargetType string    `gorm:"size:16;not null;uniqueIndex:idx_like_once,priority:2" json:"target_type"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_once,priority:3" json:"target_id"`
	LikedByID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_once,priority:1" json:"liked_by_id"`
	LikedBy    *User     `gorm:"foreignKey:LikedByID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ValidLikeTarget(targetType string) bool {
	switch targetType {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}
