package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(tweet *entity.Tweet) error {
	if tweet == nil {
		return errors.New("tweet cannot be nil")
	}
	return translateError(r.db.Create(tweet).Error)
}

func (r *TweetRepository) GetByID(id uuid.UUID) (*entity.Tweet, error) {
	var tweet entity.Tweet
	err := r.db.First(&tweet, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &tweet, nil
}

func (r *TweetRepository) ListAll() ([]entity.TweetWithOwner, error) {
	var tweets []entity.Tweet
	err := r.db.Preload("Owner").Order("created_at DESC").Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweetsWithOwners(tweets), nil
}

func (r *TweetRepository) ListByOwner(ownerID uuid.UUID) ([]entity.TweetWithOwner, error) {
	var tweets []entity.Tweet
	err := r.db.Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweetsWithOwners(tweets), nil
}

func (r *TweetRepository) Update(id, ownerID uuid.UUID, content string) (*entity.Tweet, error) {
	tweet, err := r.ownedTweet(id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(tweet).Update("content", content).Error; err != nil {
		return nil, translateError(err)
	}
	return tweet, nil
}

// Delete removes a tweet and its likes in one transaction.
func (r *TweetRepository) Delete(id, ownerID uuid.UUID) error {
	if _, err := r.ownedTweet(id, ownerID); err != nil {
		return err
	}

	return translateError(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", entity.LikeTargetTweet, id).
			Delete(&entity.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Tweet{}, "id = ?", id).Error
	}))
}

func (r *TweetRepository) ownedTweet(id, ownerID uuid.UUID) (*entity.Tweet, error) {
	tweet, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return tweet, nil
}

func tweetsWithOwners(tweets []entity.Tweet) []entity.TweetWithOwner {
	out := make([]entity.TweetWithOwner, 0, len(tweets))
	for i := range tweets {
		t := entity.TweetWithOwner{Tweet: tweets[i]}
		if tweets[i].Owner != nil {
			t.OwnerRef = tweets[i].Owner.Ref()
		}
		t.Owner = nil
		out = append(out, t)
	}
	return out
}
