package repository

import (
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Toggle flips the like state for (user, target) with two conditional
// writes and no read-then-act window. The delete either removes the
// existing row (toggle off) or affects nothing; in that case the insert
// runs with ON CONFLICT DO NOTHING, so a concurrent identical request
// cannot produce a duplicate — the unique index idx_like_once backs it.
func (r *LikeRepository) Toggle(userID uuid.UUID, targetType string, targetID uuid.UUID) (bool, error) {
	result := r.db.Where(
		"liked_by_id = ? AND target_type = ? AND target_id = ?",
		userID, targetType, targetID,
	).Delete(&entity.Like{})
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	like := entity.Like{
		TargetType: targetType,
		TargetID:   targetID,
		LikedByID:  userID,
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
	if err != nil {
		return false, translateError(err)
	}
	return true, nil
}

func (r *LikeRepository) Count(targetType string, targetID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

// ListLikedVideos returns the videos a user has liked, most recently
// liked first.
func (r *LikeRepository) ListLikedVideos(userID uuid.UUID) ([]entity.VideoWithOwner, error) {
	var videos []entity.Video
	err := r.db.Model(&entity.Video{}).
		Preload("Owner").
		Joins("JOIN likes ON likes.target_id = videos.id AND likes.target_type = ?", entity.LikeTargetVideo).
		Where("likes.liked_by_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return withOwners(videos), nil
}

// CountForOwnerVideos counts likes across all of a channel's videos.
func (r *LikeRepository) CountForOwnerVideos(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id AND likes.target_type = ?", entity.LikeTargetVideo).
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
