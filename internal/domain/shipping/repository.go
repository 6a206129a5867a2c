package shipping

import (
	"context"

	"github.com/google/uuid"
)

// ShipmentRepository defines the persistence contract for shipments.
// Implementations index by id and by tracking number.
type ShipmentRepository interface {
	// FindByID retrieves a shipment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Shipment, error)
	// FindByTrackingNumber retrieves a shipment by its tracking number
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*Shipment, error)
	// Add stores a new shipment; both keys must be unused
	Add(ctx context.Context, shipment *Shipment) error
	// Update replaces the stored shipment state (last write wins)
	Update(ctx context.Context, shipment *Shipment) error
}
