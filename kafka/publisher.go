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

	"github.com/tair/storefront/internal/domain"
	"github.com/tair/storefront/pkg/logger"
)

// Publisher sends order events to Kafka. It implements domain.EventPublisher.
type Publisher struct {
	producer sarama.SyncProducer
	now      func() time.Time
}

var _ domain.EventPublisher = (*Publisher)(nil)

// NewConfig returns the producer settings used by NewPublisher
func NewConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000
	return config
}

// NewPublisher connects a synchronous producer to brokers
func NewPublisher(brokers []string) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer) *Publisher {
	return &Publisher{producer: producer, now: time.Now}
}

// PublishOrderPlaced publishes an order.placed event keyed by order id
func (p *Publisher) PublishOrderPlaced(ctx context.Context, order *domain.CustomerOrder) error {
	lines := make([]OrderLineEvent, 0, len(order.Products))
	for _, line := range order.Products {
		lines = append(lines, OrderLineEvent{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	event := OrderPlacedEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOrderPlaced,
		OrderID:   order.ID,
		Email:     order.Email,
		Status:    string(order.Status),
		Total:     order.Total,
		Lines:     lines,
		Timestamp: p.now(),
	}

	return p.publish(ctx, TopicOrderPlaced, order.ID, event.EventType, event.EventID, event,
		attribute.String("order.id", order.ID),
		attribute.Int("order.lines", len(lines)),
		attribute.String("order.total", order.Total.StringFixed(2)),
	)
}

// PublishOrderDeleted publishes an order.deleted event keyed by order id
func (p *Publisher) PublishOrderDeleted(ctx context.Context, orderID string) error {
	event := OrderDeletedEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOrderDeleted,
		OrderID:   orderID,
		Timestamp: p.now(),
	}

	return p.publish(ctx, TopicOrderDeleted, orderID, event.EventType, event.EventID, event,
		attribute.String("order.id", orderID),
	)
}

func (p *Publisher) publish(ctx context.Context, topic, key, eventType, eventID string, event any, attrs ...attribute.KeyValue) error {
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

	payload, err := json.Marshal(event)
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

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.WithContext(ctx).Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.WithContext(ctx).Info().
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
