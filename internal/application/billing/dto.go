package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	ShipmentID     uuid.UUID
	TrackingNumber string
	Amount         decimal.Decimal
}

// InvoiceResponse represents invoice data returned to callers
type InvoiceResponse struct {
	ID             string          `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	ShipmentID     string          `json:"shipment_id"`
	TrackingNumber string          `json:"tracking_number"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	IssuedAt       time.Time       `json:"issued_at"`
}

// ToInvoiceResponse converts an Invoice aggregate to a response DTO
func ToInvoiceResponse(invoice *billing.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             invoice.ID.String(),
		InvoiceNumber:  invoice.InvoiceNumber,
		ShipmentID:     invoice.ShipmentID.String(),
		TrackingNumber: invoice.TrackingNumber,
		Amount:         invoice.Amount,
		Status:         invoice.Status.String(),
		IssuedAt:       invoice.IssuedAt(),
	}
}
