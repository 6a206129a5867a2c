package billing

import (
	"context"
	"fmt"

	"github.com/shipflow/backend/internal/domain/shared"
	"github.com/shipflow/backend/internal/domain/shipping"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShipmentDeliveredHandler creates an invoice when a shipment is delivered.
// It is the only integration point between the shipping and billing
// contexts: everything it needs arrives in the event payload, and its
// dependencies are injected at construction.
type ShipmentDeliveredHandler struct {
	invoiceService *InvoiceService
	invoiceAmount  decimal.Decimal
	logger         *zap.Logger
}

// NewShipmentDeliveredHandler creates a new handler for shipment delivered
// events. invoiceAmount is the flat amount charged per delivery; a real
// pricing service would replace it.
func NewShipmentDeliveredHandler(invoiceService *InvoiceService, invoiceAmount decimal.Decimal, logger *zap.Logger) *ShipmentDeliveredHandler {
	return &ShipmentDeliveredHandler{
		invoiceService: invoiceService,
		invoiceAmount:  invoiceAmount,
		logger:         logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *ShipmentDeliveredHandler) EventTypes() []string {
	return []string{shipping.EventTypeShipmentDelivered}
}

// Handle processes a ShipmentDeliveredEvent by creating an invoice
func (h *ShipmentDeliveredHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	deliveredEvent, ok := event.(*shipping.ShipmentDeliveredEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", shipping.EventTypeShipmentDelivered),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			shipping.EventTypeShipmentDelivered, event.EventType())
	}

	h.logger.Info("processing shipment delivered event",
		zap.String("shipment_id", deliveredEvent.ShipmentID.String()),
		zap.String("tracking_number", deliveredEvent.TrackingNumber),
	)

	req := CreateInvoiceRequest{
		ShipmentID:     deliveredEvent.ShipmentID,
		TrackingNumber: deliveredEvent.TrackingNumber,
		Amount:         h.invoiceAmount,
	}

	invoice, err := h.invoiceService.Create(ctx, req)
	if err != nil {
		h.logger.Error("failed to create invoice for delivered shipment",
			zap.String("shipment_id", deliveredEvent.ShipmentID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to create invoice for shipment %s: %w", deliveredEvent.ShipmentID, err)
	}

	h.logger.Info("invoice created for delivered shipment",
		zap.String("invoice_id", invoice.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("shipment_id", deliveredEvent.ShipmentID.String()),
	)

	return nil
}

// Ensure ShipmentDeliveredHandler implements EventHandler
var _ shared.EventHandler = (*ShipmentDeliveredHandler)(nil)
