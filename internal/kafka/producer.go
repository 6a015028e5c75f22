package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/trogers1052/supershares/internal/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes computed signals to Kafka
type Producer struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
		now:    time.Now,
	}
}

// PublishSignals publishes one SIGNAL_COMPUTED event per row, keyed by ticker
func (p *Producer) PublishSignals(ctx context.Context, rows []models.ScoreRow, profile string) error {
	if len(rows) == 0 {
		return nil
	}

	ts := p.now()
	msgs := make([]kafka.Message, 0, len(rows))
	for i := range rows {
		event := models.SignalEvent{
			EventType: models.EventSignalComputed,
			Ticker:    rows[i].Ticker,
			Profile:   profile,
			Row:       &rows[i],
			Timestamp: ts,
		}
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(rows[i].Ticker), Value: data})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
