package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/personal-portfolio/internal/config"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

const (
	TopicProfileEvents = "profile.events"
)

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
	logger              logger.Logger
}

// NewKafkaProducerClient returns nil without error when no broker is
// configured. A nil client publishes nothing.
func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		log.Info("Kafka brokers not configured, content events disabled.")
		return nil, nil
	}
	for _, b := range brokers {
		if b == "" {
			return nil, fmt.Errorf("config Kafka brokers contains an empty address")
		}
	}

	// writer 'profile.events'
	profileWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicProfileEvents,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
		logger:              log,
	}, nil
}

// PublishContentEvent keys messages by entity so events of one table stay ordered.
func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	if c == nil || c.ProfileEventsWriter == nil {
		return nil
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal content event: %w", err)
	}
	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.Entity),
		Value: value,
		Time:  payload.OccurredAt,
	})
}

func (c *KafkaProducerClient) Close() {
	if c == nil {
		return
	}
	if c.ProfileEventsWriter != nil {
		if err := c.ProfileEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka writer", err)
		}
	}
	c.logger.Info("Closed Kafka Producers")
}
