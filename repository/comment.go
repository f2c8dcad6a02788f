package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *entity.Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}
	return translateError(r.db.Create(comment).Error)
}

func (r *CommentRepository) GetByID(id uuid.UUID) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &comment, nil
}

// ListByVideo returns one page of a video's comments with their owner
// projections, newest first, plus the unpaged total.
func (r *CommentRepository) ListByVideo(videoID uuid.UUID, page, limit int) ([]entity.CommentWithOwner, int64, error) {
	page, limit = NormalizePage(page, limit)

	query := r.db.Model(&entity.Comment{}).Where("video_id = ?", videoID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []entity.Comment
	err := query.Preload("Owner").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]entity.CommentWithOwner, 0, len(comments))
	for i := range comments {
		c := entity.CommentWithOwner{Comment: comments[i]}
		if comments[i].Owner != nil {
			c.OwnerRef = comments[i].Owner.Ref()
		}
		c.Owner = nil
		out = append(out, c)
	}
	return out, total, nil
}

func (r *CommentRepository) Update(id, ownerID uuid.UUID, content string) (*entity.Comment, error) {
	comment, err := r.ownedComment(id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(comment).Update("content", content).Error; err != nil {
		return nil, translateError(err)
	}
	return comment, nil
}

// Delete removes a comment and its likes in one transaction.
func (r *CommentRepository) Delete(id, ownerID uuid.UUID) error {
	if _, err := r.ownedComment(id, ownerID); err != nil {
		return err
	}

	return translateError(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", entity.LikeTargetComment, id).
			Delete(&entity.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Comment{}, "id = ?", id).Error
	}))
}

// CountForOwnerVideos counts comments across all of a channel's videos.
func (r *CommentRepository) CountForOwnerVideos(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Comment{}).
		Joins("JOIN videos ON videos.id = comments.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) ownedComment(id, ownerID uuid.UUID) (*entity.Comment, error) {
	comment, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return comment, nil
}
