package repository

import (
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Toggle flips the subscription state for (channel, subscriber) with the
// same conditional-write pattern as likes: delete-if-present, else insert
// with ON CONFLICT DO NOTHING against idx_subscription_once.
func (r *SubscriptionRepository) Toggle(channelID, subscriberID uuid.UUID) (bool, error) {
	result := r.db.Where(
		"channel_id = ? AND subscriber_id = ?",
		channelID, subscriberID,
	).Delete(&entity.Subscription{})
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	subscription := entity.Subscription{
		ChannelID:    channelID,
		SubscriberID: subscriberID,
	}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&subscription).Error
	if err != nil {
		return false, translateError(err)
	}
	return true, nil
}

func (r *SubscriptionRepository) CountByChannel(channelID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepository) CountBySubscriber(subscriberID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	return count, err
}

func (r *SubscriptionRepository) IsSubscribed(channelID, subscriberID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Subscription{}).
		Where("channel_id = ? AND subscriber_id = ?", channelID, subscriberID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListSubscribers returns the public projections of a channel's
// subscribers.
func (r *SubscriptionRepository) ListSubscribers(channelID uuid.UUID) ([]entity.OwnerRef, error) {
	return r.listUsers("subscriptions.subscriber_id", "subscriptions.channel_id", channelID)
}

// ListChannels returns the channels a user subscribes to.
func (r *SubscriptionRepository) ListChannels(subscriberID uuid.UUID) ([]entity.OwnerRef, error) {
	return r.listUsers("subscriptions.channel_id", "subscriptions.subscriber_id", subscriberID)
}

func (r *SubscriptionRepository) listUsers(joinColumn, whereColumn string, id uuid.UUID) ([]entity.OwnerRef, error) {
	var users []entity.User
	err := r.db.Model(&entity.User{}).
		Joins("JOIN subscriptions ON "+joinColumn+" = users.id").
		Where(whereColumn+" = ?", id).
		Order("subscriptions.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	refs := make([]entity.OwnerRef, 0, len(users))
	for i := range users {
		refs = append(refs, users[i].Ref())
	}
	return refs, nil
}
