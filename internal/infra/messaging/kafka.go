package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	kafka "github.com/segmentio/kafka-go"

	"github.com/royalguard/activity-api/internal/domain/model"
	"github.com/royalguard/activity-api/internal/infra/config"
)

// messageWriter abstracts the Kafka writer so tests can swap in a mock.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...writerMessage) error
	Close() error
}

// writerMessage is one message bound for Kafka.
type writerMessage struct {
	Topic string
	Key   []byte
	Value []byte
}

// kafkaGoWriter wraps the kafka-go Writer for production use.
type kafkaGoWriter struct {
	w *kafka.Writer
}

func (k *kafkaGoWriter) WriteMessages(ctx context.Context, msgs ...writerMessage) error {
	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, m := range msgs {
		kafkaMsgs[i] = kafka.Message{
			Topic: m.Topic,
			Key:   m.Key,
			Value: m.Value,
		}
	}
	return k.w.WriteMessages(ctx, kafkaMsgs...)
}

func (k *kafkaGoWriter) Close() error {
	return k.w.Close()
}

// LogProducer announces stored game logs on Kafka so consumers other
// than the polling bot can react without querying MongoDB.
type LogProducer struct {
	writer messageWriter
	topic  string
}

// NewLogProducer creates a producer for the configured brokers.
func NewLogProducer(cfg config.KafkaConfig) *LogProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{}, // partition by message key
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &LogProducer{
		writer: &kafkaGoWriter{w: w},
		topic:  cfg.Topic,
	}
}

// Publish sends the stored log, keyed by its fingerprint so duplicate
// content always lands on the same partition.
func (p *LogProducer) Publish(ctx context.Context, log *model.GameLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to serialize game log: %w", err)
	}

	msg := writerMessage{
		Topic: p.topic,
		Key:   []byte(log.Fingerprint),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish log stored event: %w", err)
	}

	return nil
}

// Close shuts down the underlying writer.
func (p *LogProducer) Close() error {
	return p.writer.Close()
}
