package repository

import (
	"context"
	"fmt"

	"FormPull/internal/domain/models"
	"FormPull/internal/domain/repository"
	"FormPull/internal/services/batch"
	pkgkafka "FormPull/pkg/kafka"
)

// KafkaPublisher implements Publisher for Kafka: the whole tip sheet goes
// out as one message keyed by date, followed by one message per pick keyed
// by "TRACK_R{n}" for consumers that only care about selections.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates a Kafka tips publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) PublishTips(ctx context.Context, sheet *models.TipSheet) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(sheet.Date), sheet); err != nil {
		return fmt.Errorf("publish tip sheet: %w", err)
	}

	if len(sheet.Picks) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, 0, len(sheet.Picks))
	for _, pick := range sheet.Picks {
		msgs = append(msgs, pkgkafka.Message{
			Key:   []byte(batch.PickKey(pick.Track, pick.RaceNumber)),
			Value: pick,
		})
	}
	if err := p.producer.PublishBatch(ctx, p.topic+".picks", msgs); err != nil {
		return fmt.Errorf("publish picks: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
