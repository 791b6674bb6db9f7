/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package events publishes domain events of the forms service to the configured message broker.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/magamawi/TiD-Forms/internal/system/config"
	"github.com/magamawi/TiD-Forms/internal/system/log"
)

const (
	// EventTypeEntryCreated is published after a submission has been stored as an entry.
	EventTypeEntryCreated = "entry.created"

	eventTypeHeader     = "event-type"
	loggerComponentName = "EventPublisher"
)

// Event is the payload published for a domain event. Entry values are never included.
type Event struct {
	Type       string    `json:"type"`
	FormID     string    `json:"form_id"`
	EntryID    string    `json:"entry_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PublisherInterface defines the interface for publishing domain events.
type PublisherInterface interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// messageWriter is the subset of the kafka writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes events to a Kafka topic keyed by form ID.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewPublisher creates the publisher selected by the events configuration.
func NewPublisher(cfg config.EventsConfig) (PublisherInterface, error) {
	if !cfg.Enabled {
		return NoopPublisher{}, nil
	}
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, errors.New("events are enabled but no Kafka brokers are configured")
	}
	if cfg.Kafka.Topic == "" {
		return nil, errors.New("events are enabled but no Kafka topic is configured")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
		Topic:                  cfg.Kafka.Topic,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
	}

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Info("Kafka event publisher initialized", log.String("topic", cfg.Kafka.Topic),
			log.Any("brokers", cfg.Kafka.Brokers))
	return newKafkaPublisher(writer, cfg.Kafka.Topic), nil
}

func newKafkaPublisher(writer messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
	}
}

// Publish sends the event to Kafka.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.FormID),
		Value: value,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

// Publish drops the event.
func (NoopPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}

// Close does nothing.
func (NoopPublisher) Close() error {
	return nil
}
