package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/billing"
	"github.com/shipflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(t *testing.T) *billing.Invoice {
	t.Helper()
	invoice, err := billing.NewInvoice(
		billing.GenerateInvoiceNumber(time.Now()),
		uuid.New(),
		"TRACK123",
		decimal.NewFromFloat(100.00),
	)
	require.NoError(t, err)
	return invoice
}

func TestMemoryInvoiceRepository_AddAndFind(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()
	invoice := newTestInvoice(t)

	require.NoError(t, repo.Add(ctx, invoice))

	byID, err := repo.FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Same(t, invoice, byID)

	byNumber, err := repo.FindByInvoiceNumber(ctx, invoice.InvoiceNumber)
	require.NoError(t, err)
	assert.Same(t, invoice, byNumber)
}

func TestMemoryInvoiceRepository_FindMissing(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assertDomainErrorCode(t, err, shared.CodeNotFound)

	_, err = repo.FindByInvoiceNumber(ctx, "INV-20260828-00000000")
	assertDomainErrorCode(t, err, shared.CodeNotFound)
}

func TestMemoryInvoiceRepository_AddDuplicateNumber(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	invoice := newTestInvoice(t)
	require.NoError(t, repo.Add(ctx, invoice))

	duplicate, err := billing.NewInvoice(invoice.InvoiceNumber, uuid.New(), "TRACK456", decimal.NewFromFloat(50.00))
	require.NoError(t, err)

	err = repo.Add(ctx, duplicate)
	assertDomainErrorCode(t, err, shared.CodeAlreadyExists)
}

func TestMemoryInvoiceRepository_Update(t *testing.T) {
	repo := NewMemoryInvoiceRepository()
	ctx := context.Background()

	invoice := newTestInvoice(t)
	require.NoError(t, repo.Add(ctx, invoice))

	require.NoError(t, invoice.MarkAsPaid())
	require.NoError(t, repo.Update(ctx, invoice))

	stored, err := repo.FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPaid, stored.Status)
}

func TestMemoryInvoiceRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryInvoiceRepository()

	err := repo.Update(context.Background(), newTestInvoice(t))
	assertDomainErrorCode(t, err, shared.CodeNotFound)
}

func TestMemoryInvoiceRepository_ContextCancelled(t *testing.T) {
	repo := NewMemoryInvoiceRepository()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Add(ctx, newTestInvoice(t))
	assert.ErrorIs(t, err, context.Canceled)
}
