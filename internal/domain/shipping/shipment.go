package shipping

import (
	"time"

	"github.com/shipflow/backend/internal/domain/shared"
)

// ShipmentStatus represents the status of a shipment
type ShipmentStatus string

const (
	ShipmentStatusCreated   ShipmentStatus = "CREATED"
	ShipmentStatusInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
)

// IsValid checks if the status is a valid ShipmentStatus
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusCreated, ShipmentStatusInTransit, ShipmentStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of ShipmentStatus
func (s ShipmentStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// DELIVERED is terminal; there is no regression out of it.
func (s ShipmentStatus) CanTransitionTo(target ShipmentStatus) bool {
	switch s {
	case ShipmentStatusCreated:
		return target == ShipmentStatusInTransit || target == ShipmentStatusDelivered
	case ShipmentStatusInTransit:
		return target == ShipmentStatusDelivered
	case ShipmentStatusDelivered:
		return false
	}
	return false
}

// Shipment represents a shipment aggregate root.
// It tracks a parcel from creation to delivery.
type Shipment struct {
	shared.BaseAggregateRoot
	TrackingNumber   string
	RecipientAddress string
	Status           ShipmentStatus
	DeliveredAt      *time.Time
}

// NewShipment creates a new shipment in CREATED status
func NewShipment(trackingNumber, recipientAddress string) (*Shipment, error) {
	if trackingNumber == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Tracking number cannot be empty")
	}
	if recipientAddress == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Recipient address cannot be empty")
	}

	return &Shipment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TrackingNumber:    trackingNumber,
		RecipientAddress:  recipientAddress,
		Status:            ShipmentStatusCreated,
	}, nil
}

// MarkDelivered transitions the shipment to DELIVERED, stamps the delivery
// time and records a ShipmentDeliveredEvent on the aggregate. Delivering an
// already delivered shipment is a state error, not a no-op.
func (s *Shipment) MarkDelivered() error {
	if s.Status == ShipmentStatusDelivered {
		return shared.NewDomainError(shared.CodeInvalidState, "Shipment is already delivered")
	}

	now := time.Now()
	s.Status = ShipmentStatusDelivered
	s.DeliveredAt = &now
	s.Touch()

	s.AddDomainEvent(NewShipmentDeliveredEvent(s))

	return nil
}

// IsDelivered reports whether the shipment has reached its terminal status
func (s *Shipment) IsDelivered() bool {
	return s.Status == ShipmentStatusDelivered
}

// Ensure Shipment implements AggregateRoot
var _ shared.AggregateRoot = (*Shipment)(nil)
