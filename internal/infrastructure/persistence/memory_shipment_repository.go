package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/shared"
	"github.com/shipflow/backend/internal/domain/shipping"
)

// MemoryShipmentRepository is an in-memory ShipmentRepository indexed by
// shipment id and by tracking number
type MemoryShipmentRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*shipping.Shipment
	byTracking map[string]*shipping.Shipment
}

// NewMemoryShipmentRepository creates a new in-memory shipment repository
func NewMemoryShipmentRepository() *MemoryShipmentRepository {
	return &MemoryShipmentRepository{
		byID:       make(map[uuid.UUID]*shipping.Shipment),
		byTracking: make(map[string]*shipping.Shipment),
	}
}

// FindByID retrieves a shipment by its ID
func (r *MemoryShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*shipping.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	shipment, ok := r.byID[id]
	if !ok {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Shipment not found")
	}
	return shipment, nil
}

// FindByTrackingNumber retrieves a shipment by its tracking number
func (r *MemoryShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*shipping.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	shipment, ok := r.byTracking[trackingNumber]
	if !ok {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Shipment not found")
	}
	return shipment, nil
}

// Add stores a new shipment, enforcing uniqueness of both keys
func (r *MemoryShipmentRepository) Add(ctx context.Context, shipment *shipping.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[shipment.ID]; exists {
		return shared.NewDomainError(shared.CodeAlreadyExists, "Shipment with this ID already exists")
	}
	if _, exists := r.byTracking[shipment.TrackingNumber]; exists {
		return shared.NewDomainError(shared.CodeAlreadyExists, "Shipment with this tracking number already exists")
	}

	r.byID[shipment.ID] = shipment
	r.byTracking[shipment.TrackingNumber] = shipment
	return nil
}

// Update replaces the stored shipment state. Last write wins; there is no
// concurrency token.
func (r *MemoryShipmentRepository) Update(ctx context.Context, shipment *shipping.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[shipment.ID]; !exists {
		return shared.NewDomainError(shared.CodeNotFound, "Shipment not found")
	}

	r.byID[shipment.ID] = shipment
	r.byTracking[shipment.TrackingNumber] = shipment
	return nil
}

// Ensure MemoryShipmentRepository implements ShipmentRepository
var _ shipping.ShipmentRepository = (*MemoryShipmentRepository)(nil)
