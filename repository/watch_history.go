package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) *WatchHistoryRepository {
	return &WatchHistoryRepository{db: db}
}

// Upsert records a watch in a single atomic statement: insert the entry,
// or on conflict with idx_watch_once refresh position, duration and
// watched_at in place.
func (r *WatchHistoryRepository) Upsert(userID, videoID uuid.UUID, duration, position float64) (*entity.WatchHistory, error) {
	entry := entity.WatchHistory{
		UserID:    userID,
		VideoID:   videoID,
		Duration:  duration,
		Position:  position,
		WatchedAt: time.Now(),
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"duration":   duration,
			"position":   position,
			"watched_at": entry.WatchedAt,
		}),
	}).Create(&entry).Error
	if err != nil {
		return nil, translateError(err)
	}

	var saved entity.WatchHistory
	err = r.db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&saved).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &saved, nil
}

func (r *WatchHistoryRepository) Delete(userID, videoID uuid.UUID) error {
	result := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&entity.WatchHistory{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns the user's history entries with their videos, most
// recently watched first.
func (r *WatchHistoryRepository) ListByUser(userID uuid.UUID) ([]entity.WatchHistoryEntry, error) {
	var entries []entity.WatchHistory
	err := r.db.Where("user_id = ?", userID).
		Order("watched_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []entity.WatchHistoryEntry{}, nil
	}

	videoIDs := make([]uuid.UUID, 0, len(entries))
	for i := range entries {
		videoIDs = append(videoIDs, entries[i].VideoID)
	}

	var videos []entity.Video
	if err := r.db.Where("id IN ?", videoIDs).Find(&videos).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = videos[i]
	}

	out := make([]entity.WatchHistoryEntry, 0, len(entries))
	for i := range entries {
		out = append(out, entity.WatchHistoryEntry{
			WatchHistory: entries[i],
			Video:        byID[entries[i].VideoID],
		})
	}
	return out, nil
}
