package repository

import (
	"context"
	"fmt"

	"stratosim/internal/domain/models"
	pkgkafka "stratosim/pkg/kafka"
)

// KafkaRunPublisher emits completed-run events so downstream consumers
// (dashboards, alerting) can react without polling the run store.
type KafkaRunPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaRunPublisher(producer *pkgkafka.Producer, topic string) *KafkaRunPublisher {
	return &KafkaRunPublisher{producer: producer, topic: topic}
}

func (p *KafkaRunPublisher) Publish(ctx context.Context, run *models.SimulationRun) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(run.RunID), run); err != nil {
		return fmt.Errorf("publish run event: %w", err)
	}
	return nil
}

func (p *KafkaRunPublisher) Close() error {
	return p.producer.Close()
}
