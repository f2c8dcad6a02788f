package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchHistory keeps one row per (user, video). Re-watching updates
// position and watched_at in place.
type WatchHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_once,priority:1" json:"user_id"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_once,priority:2" json:"video_id"`
	Duration  float64   `gorm:"not null;default:0" json:"duration"`
	Position  float64   `gorm:"not null;default:0" json:"position"`
	WatchedAt time.Time `gorm:"not null" json:"watched_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WatchHistoryEntry struct {
	WatchHistory
	Video Video `json:"video"`
}
