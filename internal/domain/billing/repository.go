package billing

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository defines the persistence contract for invoices.
// Implementations index by id and by invoice number.
type InvoiceRepository interface {
	// FindByID retrieves an invoice by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByInvoiceNumber retrieves an invoice by its invoice number
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)
	// Add stores a new invoice; both keys must be unused
	Add(ctx context.Context, invoice *Invoice) error
	// Update replaces the stored invoice state (last write wins)
	Update(ctx context.Context, invoice *Invoice) error
}
