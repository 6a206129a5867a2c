package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/billing"
	"github.com/shipflow/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// maxInvoiceNumberAttempts bounds regeneration when a generated invoice
// number collides with a stored one. Collisions are vanishingly rare but
// not impossible, so the number is checked against the store before use.
const maxInvoiceNumberAttempts = 3

// InvoiceService handles invoice business operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// Create generates an invoice number, constructs an invoice in ISSUED
// status and persists it
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	for attempt := 0; attempt < maxInvoiceNumberAttempts; attempt++ {
		invoiceNumber := billing.GenerateInvoiceNumber(time.Now())

		invoice, err := billing.NewInvoice(invoiceNumber, req.ShipmentID, req.TrackingNumber, req.Amount)
		if err != nil {
			return nil, err
		}

		err = s.invoiceRepo.Add(ctx, invoice)
		if err == nil {
			s.logger.Info("invoice created",
				zap.String("invoice_id", invoice.ID.String()),
				zap.String("invoice_number", invoice.InvoiceNumber),
				zap.String("shipment_id", invoice.ShipmentID.String()),
			)
			response := ToInvoiceResponse(invoice)
			return &response, nil
		}

		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == shared.CodeAlreadyExists {
			s.logger.Warn("invoice number collision, regenerating",
				zap.String("invoice_number", invoiceNumber),
			)
			continue
		}
		return nil, err
	}

	return nil, shared.NewDomainError(shared.CodeUnexpected, "Could not allocate a unique invoice number")
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByInvoiceNumber retrieves an invoice by invoice number
func (s *InvoiceService) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}
