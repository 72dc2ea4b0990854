package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/bookmypanditji/pkg/logger"
)

// EventPublisher is what the services need to announce domain events
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error
	PublishRegistrationSubmitted(ctx context.Context, event RegistrationSubmittedEvent) error
	PublishCatalogUpdated(ctx context.Context, event CatalogUpdatedEvent) error
}

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer, brokers), nil
}

// NewPublisherWithProducer publishes through an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, brokers []string) *Publisher {
	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}
}

// PublishBookingCreated publishes a booking created event with tracing
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	if event.EventID == "" {
		event.EventID = newEventID()
	}
	event.EventType = EventTypeBookingCreated
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicBookingCreated, event.EventType, event.EventID, "booking_"+event.BookingID, event,
		attribute.String("booking.id", event.BookingID),
		attribute.String("booking.type", event.BookingType),
		attribute.String("pandit.id", event.PanditID),
	)
}

// PublishRegistrationSubmitted publishes a registration submitted event with tracing
func (p *Publisher) PublishRegistrationSubmitted(ctx context.Context, event RegistrationSubmittedEvent) error {
	if event.EventID == "" {
		event.EventID = newEventID()
	}
	event.EventType = EventTypeRegistrationSubmitted
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicRegistrationSubmitted, event.EventType, event.EventID, "registration_"+event.RegistrationID, event,
		attribute.String("registration.id", event.RegistrationID),
		attribute.String("registration.flow", event.Flow),
	)
}

// PublishCatalogUpdated publishes a catalog updated event with tracing
func (p *Publisher) PublishCatalogUpdated(ctx context.Context, event CatalogUpdatedEvent) error {
	if event.EventID == "" {
		event.EventID = newEventID()
	}
	event.EventType = EventTypeCatalogUpdated
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicCatalogUpdated, event.EventType, event.EventID, "catalog", event,
		attribute.Int("catalog.products", event.Products),
		attribute.Int("catalog.pandits", event.Pandits),
	)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, event interface{}, attrs ...attribute.KeyValue) error {
	// Start tracing span
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

func newEventID() string {
	return "evt_" + uuid.NewString()
}

// NopPublisher drops every event. It stands in when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	logger.Debug(ctx).Str("booking_id", event.BookingID).Msg("Kafka disabled, booking event dropped")
	return nil
}

func (NopPublisher) PublishRegistrationSubmitted(ctx context.Context, event RegistrationSubmittedEvent) error {
	logger.Debug(ctx).Str("registration_id", event.RegistrationID).Msg("Kafka disabled, registration event dropped")
	return nil
}

func (NopPublisher) PublishCatalogUpdated(ctx context.Context, _ CatalogUpdatedEvent) error {
	logger.Debug(ctx).Msg("Kafka disabled, catalog event dropped")
	return nil
}
