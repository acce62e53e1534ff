package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/contracts"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"
	"housing-insights-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	queryRecordedEventType    = "QueryRecordedEvent"
	queryRecordedEventVersion = "1.0.0"
)

// QueryRecordedEventDTO is the wire format of a recorded-query announcement.
// The entry keeps its storage encoding so consumers see the same shape the
// history endpoint serves.
type QueryRecordedEventDTO struct {
	UserID uuid.UUID           `json:"user_id"`
	Entry  domain.HistoryEntry `json:"entry"`
}

// QueryEventPublisher announces recorded queries to downstream consumers.
// The routing key is picked per entry kind so consumers can bind to
// predictions and analytics separately.
type QueryEventPublisher struct {
	producer      *rabbitmq_producer.Publisher
	predictionKey string
	analyticsKey  string
}

func NewQueryEventPublisher(producer *rabbitmq_producer.Publisher, predictionKey, analyticsKey string) (*QueryEventPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	if predictionKey == "" || analyticsKey == "" {
		return nil, fmt.Errorf("routing keys cannot be empty")
	}

	return &QueryEventPublisher{
		producer:      producer,
		predictionKey: predictionKey,
		analyticsKey:  analyticsKey,
	}, nil
}

func (a *QueryEventPublisher) routingKeyFor(kind domain.EntryKind) string {
	if kind == domain.KindAnalytics {
		return a.analyticsKey
	}
	return a.predictionKey
}

func (a *QueryEventPublisher) PublishQueryRecorded(ctx context.Context, userID uuid.UUID, entry domain.HistoryEntry) error {
	routingKey := a.routingKeyFor(entry.Kind)

	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "QueryEventPublisher",
		"routing_key": routingKey,
	})

	eventDTO := QueryRecordedEventDTO{
		UserID: userID,
		Entry:  entry,
	}

	eventJSON, err := json.Marshal(eventDTO)
	if err != nil {
		adapterLogger.Error("Failed to marshal query event to JSON", err, nil)
		return fmt.Errorf("failed to marshal query event: %w", err)
	}

	// Outbound messages are checked against the same contract the
	// consumers validate with, so a broken producer fails loudly here.
	if err := contracts.ValidateMessage(queryRecordedEventType, queryRecordedEventVersion, eventJSON); err != nil {
		adapterLogger.Error("Query event failed contract validation", err, nil)
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         eventJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event-type":    queryRecordedEventType,
			"event-version": queryRecordedEventVersion,
		},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish query event", err, nil)
		return err
	}

	adapterLogger.Info("Successfully published query event", port.Fields{"entry_id": entry.ID})
	return nil
}
