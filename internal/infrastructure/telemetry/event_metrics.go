package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// EventMetrics tracks event bus activity. Publishes with zero subscribers
// usually indicate a wiring mistake, so they get a dedicated counter.
type EventMetrics struct {
	publishedTotal       metric.Int64Counter
	withoutHandlersTotal metric.Int64Counter
	handlerFailuresTotal metric.Int64Counter
}

// NewEventMetrics creates event bus metrics on the given meter.
func NewEventMetrics(meter metric.Meter) (*EventMetrics, error) {
	publishedTotal, err := meter.Int64Counter(
		"shipflow_events_published_total",
		metric.WithDescription("Total number of domain events published"),
		metric.WithUnit("{events}"),
	)
	if err != nil {
		return nil, err
	}

	withoutHandlersTotal, err := meter.Int64Counter(
		"shipflow_events_without_handlers_total",
		metric.WithDescription("Total number of events published with no registered handlers"),
		metric.WithUnit("{events}"),
	)
	if err != nil {
		return nil, err
	}

	handlerFailuresTotal, err := meter.Int64Counter(
		"shipflow_event_handler_failures_total",
		metric.WithDescription("Total number of event handler failures"),
		metric.WithUnit("{failures}"),
	)
	if err != nil {
		return nil, err
	}

	return &EventMetrics{
		publishedTotal:       publishedTotal,
		withoutHandlersTotal: withoutHandlersTotal,
		handlerFailuresTotal: handlerFailuresTotal,
	}, nil
}

// RecordPublished increments the published-events counter.
func (m *EventMetrics) RecordPublished(ctx context.Context, eventType string) {
	if m == nil {
		return
	}
	m.publishedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}

// RecordNoHandlers increments the no-subscriber counter.
func (m *EventMetrics) RecordNoHandlers(ctx context.Context, eventType string) {
	if m == nil {
		return
	}
	m.withoutHandlersTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}

// RecordHandlerFailure increments the handler-failure counter.
func (m *EventMetrics) RecordHandlerFailure(ctx context.Context, eventType string) {
	if m == nil {
		return
	}
	m.handlerFailuresTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
}
