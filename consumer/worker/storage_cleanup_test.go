package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/videomotion/video-motion-api/config"
	"github.com/videomotion/video-motion-api/infra"
	"github.com/videomotion/video-motion-api/infra/produce"
)

type acknowledgerStub struct {
	acked        bool
	nacked       bool
	nackRequeued bool
}

func (s *acknowledgerStub) Ack(tag uint64, multiple bool) error {
	s.acked = true
	return nil
}

func (s *acknowledgerStub) Nack(tag uint64, multiple, requeue bool) error {
	s.nacked = true
	s.nackRequeued = requeue
	return nil
}

func (s *acknowledgerStub) Reject(tag uint64, requeue bool) error {
	s.nacked = true
	s.nackRequeued = requeue
	return nil
}

type removerStub struct {
	calls int
	err   error
}

func (s *removerStub) RemoveObject(ctx context.Context, objectKey string) error {
	s.calls++
	return s.err
}

func testConsumer(remover *removerStub) *StorageCleanupConsumer {
	return &StorageCleanupConsumer{
		logger:     infra.InitLoggerClient(&config.EnvConfig{}),
		storage:    remover,
		retryDelay: 0,
	}
}

func deleteMessage(t *testing.T, ack *acknowledgerStub) amqp.Delivery {
	t.Helper()
	body, err := json.Marshal(produce.DeleteObjectMessage{
		ObjectKey: "videos/clip.mp4",
		Reason:    "deleted video",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return amqp.Delivery{Acknowledger: ack, Body: body}
}

func TestHandleDeleteObjectAcksOnSuccess(t *testing.T) {
	remover := &removerStub{}
	ack := &acknowledgerStub{}
	consumer := testConsumer(remover)

	consumer.handleDeleteObject(context.Background(), deleteMessage(t, ack))

	if !ack.acked {
		t.Fatal("expected message to be acked")
	}
	if remover.calls != 1 {
		t.Fatalf("expected one removal attempt, got %d", remover.calls)
	}
}

func TestHandleDeleteObjectDropsAfterRetries(t *testing.T) {
	remover := &removerStub{err: errors.New("storage unreachable")}
	ack := &acknowledgerStub{}
	consumer := testConsumer(remover)

	consumer.handleDeleteObject(context.Background(), deleteMessage(t, ack))

	if remover.calls != maxDeleteAttempts {
		t.Fatalf("expected %d attempts, got %d", maxDeleteAttempts, remover.calls)
	}
	if !ack.nacked {
		t.Fatal("expected message to be nacked")
	}
	if ack.nackRequeued {
		t.Fatal("exhausted message must not be requeued")
	}
}

func TestHandleDeleteObjectDropsMalformedMessage(t *testing.T) {
	remover := &removerStub{}
	ack := &acknowledgerStub{}
	consumer := testConsumer(remover)

	consumer.handleDeleteObject(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte("{not json")})

	if remover.calls != 0 {
		t.Fatal("malformed message must not reach storage")
	}
	if !ack.nacked || ack.nackRequeued {
		t.Fatalf("expected nack without requeue, got nacked=%v requeued=%v", ack.nacked, ack.nackRequeued)
	}
}
