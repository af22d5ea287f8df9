// Package kafka publishes parcel domain events to Kafka through a sarama SyncProducer.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/ports"
	"logitrack/internal/pkg/metrics"

	"github.com/Shopify/sarama"
)

var _ ports.ParcelEventPublisher = (*Producer)(nil)

// StatusChangedMessage is the JSON value written for every parcel transition.
type StatusChangedMessage struct {
	EventID             string    `json:"eventId"`
	EventName           string    `json:"eventName"`
	ParcelID            string    `json:"parcelId"`
	TrackingID          string    `json:"trackingId"`
	PreviousStatus      string    `json:"previousStatus,omitempty"`
	Status              string    `json:"status"`
	Location            string    `json:"location"`
	Note                string    `json:"note,omitempty"`
	SourceOfficeID      string    `json:"sourceOfficeId"`
	DestinationOfficeID string    `json:"destinationOfficeId"`
	OccurredAt          time.Time `json:"occurredAt"`
}

// NewStatusChangedMessage flattens the event into its wire shape.
func NewStatusChangedMessage(ev parcel.StatusChanged) StatusChangedMessage {
	msg := StatusChangedMessage{
		EventID:             ev.EventID().String(),
		EventName:           ev.EventName(),
		ParcelID:            ev.ParcelID.String(),
		TrackingID:          ev.TrackingID.String(),
		Status:              ev.Entry.Status().String(),
		Location:            ev.Entry.Location(),
		Note:                ev.Entry.Note(),
		SourceOfficeID:      ev.SourceOffice,
		DestinationOfficeID: ev.DestOffice,
		OccurredAt:          ev.OccurredAt(),
	}
	if ev.Previous != parcel.Unknown {
		msg.PreviousStatus = ev.Previous.String()
	}
	return msg
}

// Producer is a wrapper around the sarama SyncProducer bound to one topic.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// Send budget of one publish. Events are published after commit on the request
// goroutine, so a broker outage may delay a request by about this much.
const (
	SendRetries      = 2
	SendRetryBackoff = 100 * time.Millisecond
	SendTimeout      = 2 * time.Second
)

// NewConfig returns the producer settings: full acknowledgement, a short retry
// budget and successes returned so SendMessage blocks until the broker accepts.
func NewConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = SendRetries
	config.Producer.Retry.Backoff = SendRetryBackoff
	config.Producer.Return.Successes = true
	config.Producer.Timeout = SendTimeout
	config.Net.DialTimeout = SendTimeout
	config.Net.ReadTimeout = SendTimeout
	config.Net.WriteTimeout = SendTimeout
	config.Metadata.Retry.Max = 1
	config.Metadata.Retry.Backoff = SendRetryBackoff
	return config
}

// NewProducer dials the brokers.
func NewProducer(brokers []string, topic string, logger *slog.Logger) (*Producer, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return NewProducerWith(producer, topic, logger), nil
}

// NewProducerWith wraps an existing SyncProducer.
func NewProducerWith(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_producer", "topic", topic),
	}
}

// PublishStatusChanged sends the event keyed by tracking id, so all events of a
// parcel land on one partition in order.
func (p *Producer) PublishStatusChanged(ctx context.Context, ev parcel.StatusChanged) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ev.EventName(), err)
	}

	value, err := json.Marshal(NewStatusChangedMessage(ev))
	if err != nil {
		return fmt.Errorf("encode %s: %w", ev.EventName(), err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.TrackingID.String()),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		metrics.EventPublishErrorsTotal.Inc()
		p.logger.ErrorContext(ctx, "Failed to send message to Kafka",
			"error", err,
			"trackingId", ev.TrackingID.String())
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	metrics.EventsPublishedTotal.Inc()
	p.logger.DebugContext(ctx, "Message sent to Kafka",
		"trackingId", ev.TrackingID.String(),
		"partition", partition,
		"offset", offset)
	return nil
}

// Close flushes and closes the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
