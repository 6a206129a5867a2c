package shipping

import (
	"time"

	"github.com/shipflow/backend/internal/domain/shipping"
)

// CreateShipmentRequest represents a request to create a shipment
type CreateShipmentRequest struct {
	TrackingNumber   string
	RecipientAddress string
}

// ShipmentResponse represents shipment data returned to callers
type ShipmentResponse struct {
	ID               string     `json:"id"`
	TrackingNumber   string     `json:"tracking_number"`
	RecipientAddress string     `json:"recipient_address"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
}

// ToShipmentResponse converts a Shipment aggregate to a response DTO
func ToShipmentResponse(shipment *shipping.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:               shipment.ID.String(),
		TrackingNumber:   shipment.TrackingNumber,
		RecipientAddress: shipment.RecipientAddress,
		Status:           shipment.Status.String(),
		CreatedAt:        shipment.CreatedAt,
		DeliveredAt:      shipment.DeliveredAt,
	}
}
