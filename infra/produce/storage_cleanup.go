package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	StorageExchange = "storage.exchange"

	// ObjectDeleteQueue carries keys of objects orphaned by a delete or a
	// replacement (old avatars, removed videos). The consumer worker
	// drains it and removes the objects from MinIO.
	ObjectDeleteQueue      = "object.delete"
	ObjectDeleteRoutingKey = "object.delete"
)

// DeleteObjectMessage asks the worker to delete one stored object.
type DeleteObjectMessage struct {
	ObjectKey string `json:"object_key"`
	UserID    string `json:"user_id"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

type StorageCleanupService struct {
	channel *amqp.Channel
}

func InitStorageCleanupService(channel *amqp.Channel) *StorageCleanupService {
	service := &StorageCleanupService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		StorageExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Storage exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		ObjectDeleteQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare ObjectDelete queue: " + err.Error())
	}

	err = channel.QueueBind(
		ObjectDeleteQueue,
		ObjectDeleteRoutingKey,
		StorageExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind ObjectDelete queue: " + err.Error())
	}

	return service
}

// PublishDeleteObject enqueues a single object removal.
func (s *StorageCleanupService) PublishDeleteObject(ctx context.Context, msg DeleteObjectMessage) error {
	msg.Timestamp = time.Now().Unix()

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		StorageExchange,
		ObjectDeleteRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}
