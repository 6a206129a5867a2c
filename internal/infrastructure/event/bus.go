package event

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/shipflow/backend/internal/domain/shared"
	"github.com/shipflow/backend/internal/infrastructure/telemetry"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// InMemoryEventBus implements EventBus with synchronous in-process fan-out.
//
// Publish blocks the caller until every handler registered for the event's
// type has run. A failing handler does not stop the remaining handlers; all
// failures are collected and returned together so the publishing side can
// decide what the partial failure means. Nothing is retried and nothing is
// persisted: an event published while no handler is subscribed is dropped
// (successfully, but counted and logged).
type InMemoryEventBus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
	metrics  *telemetry.EventMetrics
	running  atomic.Bool
}

// NewInMemoryEventBus creates a new in-memory event bus.
// metrics may be nil, in which case bus activity is only logged.
func NewInMemoryEventBus(logger *zap.Logger, metrics *telemetry.EventMetrics) *InMemoryEventBus {
	return &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger,
		metrics:  metrics,
	}
}

// Publish publishes events to all registered handlers synchronously.
// The context is observed before each dispatch; cancellation aborts the
// remaining fan-out and is reported alongside any handler failures.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	var errs error

	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}

		eventType := event.EventType()
		handlers := b.registry.GetHandlers(eventType)
		b.metrics.RecordPublished(ctx, eventType)

		if len(handlers) == 0 {
			// Operationally significant: usually a subscription wiring mistake
			b.logger.Warn("no handlers registered for event",
				zap.String("event_type", eventType),
				zap.String("event_id", event.EventID().String()),
			)
			b.metrics.RecordNoHandlers(ctx, eventType)
			continue
		}

		for _, handler := range handlers {
			if err := ctx.Err(); err != nil {
				return multierr.Append(errs, err)
			}

			if err := b.dispatchToHandler(ctx, handler, event); err != nil {
				b.logger.Error("handler failed to process event",
					zap.String("event_type", eventType),
					zap.String("event_id", event.EventID().String()),
					zap.Error(err),
				)
				b.metrics.RecordHandlerFailure(ctx, eventType)
				errs = multierr.Append(errs, fmt.Errorf("handler for %s: %w", eventType, err))
			}
		}
	}

	return errs
}

// Subscribe registers a handler for specific event types
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("handler subscribed",
		zap.Strings("event_types", eventTypes),
	)
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
	b.logger.Debug("handler unsubscribed")
}

// Start starts the event bus
func (b *InMemoryEventBus) Start(ctx context.Context) error {
	b.running.Store(true)
	b.logger.Info("event bus started")
	return nil
}

// Stop stops the event bus gracefully
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.running.Store(false)
	b.logger.Info("event bus stopped")
	return nil
}

// dispatchToHandler dispatches an event to a handler, converting a panic
// into that handler's failure so the rest of the fan-out still runs
func (b *InMemoryEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()

	return handler.Handle(ctx, event)
}

// Ensure InMemoryEventBus implements EventBus
var _ shared.EventBus = (*InMemoryEventBus)(nil)
