package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/videomotion/video-motion-api/infra"
	"github.com/videomotion/video-motion-api/infra/produce"
)

const maxDeleteAttempts = 3

type objectRemover interface {
	RemoveObject(ctx context.Context, objectKey string) error
}

// StorageCleanupConsumer drains the object-delete queue and removes the
// orphaned objects from storage.
type StorageCleanupConsumer struct {
	channel    *amqp.Channel
	logger     *infra.LoggerClient
	storage    objectRemover
	retryDelay time.Duration
}

func NewStorageCleanupConsumer(channel *amqp.Channel, infra *infra.Infra) *StorageCleanupConsumer {
	return &StorageCleanupConsumer{
		channel:    channel,
		logger:     infra.Logger,
		storage:    infra.Minio,
		retryDelay: 2 * time.Second,
	}
}

// Start begins consuming object-delete messages until ctx is cancelled.
func (c *StorageCleanupConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.ObjectDeleteQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register storage cleanup consumer: %w", err)
	}

	c.logger.InfoWithContextf(ctx, "[Storage Cleanup] Started listening for delete jobs on queue: %s", produce.ObjectDeleteQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logger.InfoWithContextf(ctx, "[Storage Cleanup] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.logger.WarningWithContextf(ctx, "[Storage Cleanup] Channel closed")
					return
				}
				c.handleDeleteObject(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *StorageCleanupConsumer) handleDeleteObject(ctx context.Context, msg amqp.Delivery) {
	var payload produce.DeleteObjectMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.logger.ErrorWithContextf(ctx, err, "[Storage Cleanup] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= maxDeleteAttempts; attempt++ {
		lastErr = c.storage.RemoveObject(ctx, payload.ObjectKey)
		if lastErr == nil {
			c.logger.InfoWithContextf(ctx, "[Storage Cleanup] Deleted object '%s' (%s)", payload.ObjectKey, payload.Reason)
			_ = msg.Ack(false)
			return
		}

		c.logger.ErrorWithContextf(ctx, lastErr, "[Storage Cleanup] Attempt %d/%d failed for object '%s': %v", attempt, maxDeleteAttempts, payload.ObjectKey, lastErr)

		if attempt < maxDeleteAttempts {
			time.Sleep(time.Duration(attempt) * c.retryDelay)
		}
	}

	// Requeueing here would cycle a permanently failing key forever, so
	// the message is dropped; the key stays in the log for manual cleanup.
	c.logger.ErrorWithContextf(ctx, lastErr, "[Storage Cleanup] Dropping object '%s' after %d attempts", payload.ObjectKey, maxDeleteAttempts)
	_ = msg.Nack(false, false)
}
