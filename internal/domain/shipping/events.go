package shipping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeShipment = "Shipment"

// Event type constants
const (
	EventTypeShipmentDelivered = "ShipmentDelivered"
)

// ShipmentDeliveredEvent is raised when a shipment is marked as delivered.
// It carries copies of the scalar values other contexts need; subscribers
// never read the shipping store.
type ShipmentDeliveredEvent struct {
	shared.BaseDomainEvent
	ShipmentID     uuid.UUID `json:"shipment_id"`
	TrackingNumber string    `json:"tracking_number"`
	DeliveredAt    time.Time `json:"delivered_at"`
}

// NewShipmentDeliveredEvent creates a new ShipmentDeliveredEvent
func NewShipmentDeliveredEvent(shipment *Shipment) *ShipmentDeliveredEvent {
	return &ShipmentDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShipmentDelivered, AggregateTypeShipment, shipment.ID),
		ShipmentID:      shipment.ID,
		TrackingNumber:  shipment.TrackingNumber,
		DeliveredAt:     *shipment.DeliveredAt,
	}
}

// EventType returns the event type name
func (e *ShipmentDeliveredEvent) EventType() string {
	return EventTypeShipmentDelivered
}
