package constants

// RabbitMQ topology for the query events stream.
const (
	QueryEventsExchangeName = "housing.query.events"
	QueryEventsExchangeType = "topic"

	PredictionRecordedRoutingKey = "query.prediction.recorded"
	AnalyticsRecordedRoutingKey  = "query.analytics.recorded"
)
