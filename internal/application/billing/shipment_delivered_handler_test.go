package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/billing"
	"github.com/shipflow/backend/internal/domain/shared"
	"github.com/shipflow/backend/internal/domain/shipping"
	"github.com/shipflow/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingInvoiceRepository wraps a repository and records added invoices
type recordingInvoiceRepository struct {
	billing.InvoiceRepository
	added []*billing.Invoice
}

func (r *recordingInvoiceRepository) Add(ctx context.Context, invoice *billing.Invoice) error {
	if err := r.InvoiceRepository.Add(ctx, invoice); err != nil {
		return err
	}
	r.added = append(r.added, invoice)
	return nil
}

func newDeliveredEvent(t *testing.T, trackingNumber string) *shipping.ShipmentDeliveredEvent {
	t.Helper()
	shipment, err := shipping.NewShipment(trackingNumber, "123 Main St")
	require.NoError(t, err)
	require.NoError(t, shipment.MarkDelivered())

	events := shipment.GetDomainEvents()
	require.Len(t, events, 1)
	delivered, ok := events[0].(*shipping.ShipmentDeliveredEvent)
	require.True(t, ok)
	return delivered
}

func TestShipmentDeliveredHandler_EventTypes(t *testing.T) {
	svc, _ := newTestInvoiceService()
	handler := NewShipmentDeliveredHandler(svc, decimal.RequireFromString("100.00"), zap.NewNop())

	assert.Equal(t, []string{shipping.EventTypeShipmentDelivered}, handler.EventTypes())
}

func TestShipmentDeliveredHandler_Handle(t *testing.T) {
	repo := &recordingInvoiceRepository{InvoiceRepository: persistence.NewMemoryInvoiceRepository()}
	svc := NewInvoiceService(repo, zap.NewNop())
	handler := NewShipmentDeliveredHandler(svc, decimal.RequireFromString("100.00"), zap.NewNop())

	event := newDeliveredEvent(t, "TRACK123")

	err := handler.Handle(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, repo.added, 1)
	invoice := repo.added[0]
	assert.Equal(t, event.ShipmentID, invoice.ShipmentID)
	assert.Equal(t, "TRACK123", invoice.TrackingNumber)
	assert.Equal(t, billing.InvoiceStatusIssued, invoice.Status)
	assert.True(t, invoice.Amount.Equal(decimal.RequireFromString("100.00")))
}

func TestShipmentDeliveredHandler_Handle_WrongEventType(t *testing.T) {
	svc, _ := newTestInvoiceService()
	handler := NewShipmentDeliveredHandler(svc, decimal.RequireFromString("100.00"), zap.NewNop())

	event := shared.NewBaseDomainEvent("SomethingElse", "Other", uuid.New())

	err := handler.Handle(context.Background(), &event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected event type")
}

func TestShipmentDeliveredHandler_Handle_InvoiceCreationFails(t *testing.T) {
	svc, _ := newTestInvoiceService()
	// A non-positive amount makes invoice construction fail
	handler := NewShipmentDeliveredHandler(svc, decimal.Zero, zap.NewNop())

	event := newDeliveredEvent(t, "TRACK123")

	err := handler.Handle(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create invoice")
}

func TestShipmentDeliveredHandler_Handle_ContextCancelled(t *testing.T) {
	repo := &recordingInvoiceRepository{InvoiceRepository: persistence.NewMemoryInvoiceRepository()}
	svc := NewInvoiceService(repo, zap.NewNop())
	handler := NewShipmentDeliveredHandler(svc, decimal.RequireFromString("100.00"), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	event := newDeliveredEvent(t, "TRACK123")

	err := handler.Handle(ctx, event)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.added)
}
