package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// Publisher emits roster change events to downstream consumers.
type Publisher interface {
	SignedUp(ctx context.Context, evt ParticipantSignedUp) error
	Unregistered(ctx context.Context, evt ParticipantUnregistered) error
}

// NoopPublisher drops events; wired when no brokers are configured.
type NoopPublisher struct{}

// SignedUp implements Publisher.
func (NoopPublisher) SignedUp(context.Context, ParticipantSignedUp) error { return nil }

// Unregistered implements Publisher.
func (NoopPublisher) Unregistered(context.Context, ParticipantUnregistered) error { return nil }

// KafkaPublisher writes roster events to a single topic keyed by activity name.
type KafkaPublisher struct {
	topic  string
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

// SignedUp publishes a signup.registered event.
func (p *KafkaPublisher) SignedUp(ctx context.Context, evt ParticipantSignedUp) error {
	return p.publish(ctx, TypeSignedUp, evt.Activity, evt)
}

// Unregistered publishes a signup.unregistered event.
func (p *KafkaPublisher) Unregistered(ctx context.Context, evt ParticipantUnregistered) error {
	return p.publish(ctx, TypeUnregistered, evt.Activity, evt)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		recordPublishFailed(p.topic, eventType)
		return err
	}
	recordPublished(p.topic, eventType)
	return nil
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
