// Package kafka publishes integration events with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the producer uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Producer implements ports.EventPublisher on a single topic.
type Producer struct {
	writer Writer
	logger *slog.Logger
}

// NewProducer creates a Producer writing to topic on broker.
func NewProducer(broker, topic string, logger *slog.Logger) *Producer {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return NewProducerWithWriter(w, logger)
}

// NewProducerWithWriter creates a Producer on an injected writer.
func NewProducerWithWriter(w Writer, logger *slog.Logger) *Producer {
	return &Producer{
		writer: w,
		logger: logger.With("component", "kafka_producer"),
	}
}

// Publish writes value as JSON. The key picks the partition, so events of
// one key keep their order.
func (p *Producer) Publish(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := skafka.Message{Key: []byte(key), Value: payload}
	if named, ok := value.(interface{ EventName() string }); ok {
		msg.Headers = []skafka.Header{{Key: "event", Value: []byte(named.EventName())}}
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	p.logger.DebugContext(ctx, "event published", "key", key, "bytes", len(payload))
	return nil
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no topic is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
