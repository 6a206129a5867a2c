package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/billing"
	"github.com/shipflow/backend/internal/domain/shared"
)

// MemoryInvoiceRepository is an in-memory InvoiceRepository indexed by
// invoice id and by invoice number
type MemoryInvoiceRepository struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*billing.Invoice
	byNumber map[string]*billing.Invoice
}

// NewMemoryInvoiceRepository creates a new in-memory invoice repository
func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{
		byID:     make(map[uuid.UUID]*billing.Invoice),
		byNumber: make(map[string]*billing.Invoice),
	}
}

// FindByID retrieves an invoice by its ID
func (r *MemoryInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.byID[id]
	if !ok {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Invoice not found")
	}
	return invoice, nil
}

// FindByInvoiceNumber retrieves an invoice by its invoice number
func (r *MemoryInvoiceRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*billing.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.byNumber[invoiceNumber]
	if !ok {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Invoice not found")
	}
	return invoice, nil
}

// Add stores a new invoice, enforcing uniqueness of both keys
func (r *MemoryInvoiceRepository) Add(ctx context.Context, invoice *billing.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[invoice.ID]; exists {
		return shared.NewDomainError(shared.CodeAlreadyExists, "Invoice with this ID already exists")
	}
	if _, exists := r.byNumber[invoice.InvoiceNumber]; exists {
		return shared.NewDomainError(shared.CodeAlreadyExists, "Invoice with this number already exists")
	}

	r.byID[invoice.ID] = invoice
	r.byNumber[invoice.InvoiceNumber] = invoice
	return nil
}

// Update replaces the stored invoice state. Last write wins; there is no
// concurrency token.
func (r *MemoryInvoiceRepository) Update(ctx context.Context, invoice *billing.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[invoice.ID]; !exists {
		return shared.NewDomainError(shared.CodeNotFound, "Invoice not found")
	}

	r.byID[invoice.ID] = invoice
	r.byNumber[invoice.InvoiceNumber] = invoice
	return nil
}

// Ensure MemoryInvoiceRepository implements InvoiceRepository
var _ billing.InvoiceRepository = (*MemoryInvoiceRepository)(nil)
