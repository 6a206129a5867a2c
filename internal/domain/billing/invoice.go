package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusIssued    InvoiceStatus = "ISSUED"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice represents an invoice aggregate root.
// ShipmentID and TrackingNumber reference the originating shipment by value
// only; they are copied from the delivery event payload.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber  string
	ShipmentID     uuid.UUID
	TrackingNumber string
	Amount         decimal.Decimal
	Status         InvoiceStatus
}

// NewInvoice creates a new invoice in ISSUED status
func NewInvoice(invoiceNumber string, shipmentID uuid.UUID, trackingNumber string, amount decimal.Decimal) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Invoice number cannot be empty")
	}
	if shipmentID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Shipment ID cannot be empty")
	}
	if trackingNumber == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Tracking number cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError(shared.CodeValidation, "Amount must be positive")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     invoiceNumber,
		ShipmentID:        shipmentID,
		TrackingNumber:    trackingNumber,
		Amount:            amount,
		Status:            InvoiceStatusIssued,
	}, nil
}

// IssuedAt returns when the invoice was issued
func (i *Invoice) IssuedAt() time.Time {
	return i.CreatedAt
}

// MarkAsPaid transitions the invoice to PAID.
// Paying an already paid invoice is a state error.
func (i *Invoice) MarkAsPaid() error {
	if i.Status == InvoiceStatusPaid {
		return shared.NewDomainError(shared.CodeInvalidState, "Invoice is already paid")
	}

	i.Status = InvoiceStatusPaid
	i.Touch()

	return nil
}

// Ensure Invoice implements AggregateRoot
var _ shared.AggregateRoot = (*Invoice)(nil)
