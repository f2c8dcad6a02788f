package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(video *entity.Video) error {
	if video == nil {
		return errors.New("video cannot be nil")
	}
	return translateError(r.db.Create(video).Error)
}

func (r *VideoRepository) GetByID(id uuid.UUID) (*entity.Video, error) {
	var video entity.Video
	err := r.db.First(&video, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &video, nil
}

func (r *VideoRepository) GetWithOwner(id uuid.UUID) (*entity.VideoWithOwner, error) {
	var video entity.Video
	err := r.db.Preload("Owner").First(&video, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return withOwner(&video), nil
}

// ListPublished returns one page of published videos, optionally filtered
// by owner, newest first, plus the unpaged total.
func (r *VideoRepository) ListPublished(page, limit int, ownerID *uuid.UUID) ([]entity.VideoWithOwner, int64, error) {
	page, limit = NormalizePage(page, limit)

	query := r.db.Model(&entity.Video{}).Where("is_published = ?", true)
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []entity.Video
	err := query.Preload("Owner").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return withOwners(videos), total, nil
}

// ListByOwner returns a channel's videos; unpublished ones only when
// includeUnpublished is set (the channel owner looking at their own
// dashboard).
func (r *VideoRepository) ListByOwner(ownerID uuid.UUID, includeUnpublished bool) ([]entity.VideoWithOwner, error) {
	query := r.db.Model(&entity.Video{}).Where("owner_id = ?", ownerID)
	if !includeUnpublished {
		query = query.Where("is_published = ?", true)
	}

	var videos []entity.Video
	err := query.Preload("Owner").Order("created_at DESC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return withOwners(videos), nil
}

func (r *VideoRepository) UpdateDetails(id, ownerID uuid.UUID, title, description string) (*entity.Video, error) {
	video, err := r.ownedVideo(id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if title != "" {
		updates["title"] = title
	}
	if description != "" {
		updates["description"] = description
	}
	if len(updates) > 0 {
		if err := r.db.Model(video).Updates(updates).Error; err != nil {
			return nil, translateError(err)
		}
	}
	return video, nil
}

func (r *VideoRepository) TogglePublished(id, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := r.ownedVideo(id, ownerID)
	if err != nil {
		return nil, err
	}

	err = r.db.Model(video).Update("is_published", gorm.Expr("NOT is_published")).Error
	if err != nil {
		return nil, translateError(err)
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}

// IncrementViews bumps the counter in a single UPDATE; concurrent bumps
// never lose increments.
func (r *VideoRepository) IncrementViews(id uuid.UUID) (*entity.Video, error) {
	result := r.db.Model(&entity.Video{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}

// DeleteCascade removes a video and everything referencing it — likes on
// the video and on its comments, the comments themselves, playlist
// memberships and watch history rows — in one transaction. Returns the
// deleted video so the caller can queue storage cleanup.
func (r *VideoRepository) DeleteCascade(id, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := r.ownedVideo(id, ownerID)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&entity.Comment{}).Select("id").Where("video_id = ?", id)

		if err := tx.Where("target_type = ? AND target_id IN (?)", entity.LikeTargetComment, commentIDs).
			Delete(&entity.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_type = ? AND target_id = ?", entity.LikeTargetVideo, id).
			Delete(&entity.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entity.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entity.PlaylistVideo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entity.WatchHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Video{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return video, nil
}

func (r *VideoRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Video{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *VideoRepository) SumViewsByOwner(ownerID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&entity.Video{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *VideoRepository) ownedVideo(id, ownerID uuid.UUID) (*entity.Video, error) {
	video, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return video, nil
}

func withOwner(video *entity.Video) *entity.VideoWithOwner {
	out := entity.VideoWithOwner{Video: *video}
	if video.Owner != nil {
		out.OwnerRef = video.Owner.Ref()
	}
	out.Owner = nil
	return &out
}

func withOwners(videos []entity.Video) []entity.VideoWithOwner {
	out := make([]entity.VideoWithOwner, 0, len(videos))
	for i := range videos {
		out = append(out, *withOwner(&videos[i]))
	}
	return out
}
