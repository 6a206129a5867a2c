package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shipflow/backend/internal/domain/shared"
	"github.com/shipflow/backend/internal/domain/shipping"
	"go.uber.org/zap"
)

// ShipmentService handles shipment business operations.
// It orchestrates load, mutate, persist, publish and clear for the
// Shipment aggregate.
type ShipmentService struct {
	shipmentRepo   shipping.ShipmentRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(shipmentRepo shipping.ShipmentRepository, eventPublisher shared.EventPublisher, logger *zap.Logger) *ShipmentService {
	return &ShipmentService{
		shipmentRepo:   shipmentRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Create creates a new shipment in CREATED status
func (s *ShipmentService) Create(ctx context.Context, req CreateShipmentRequest) (*ShipmentResponse, error) {
	shipment, err := shipping.NewShipment(req.TrackingNumber, req.RecipientAddress)
	if err != nil {
		return nil, err
	}

	if err := s.shipmentRepo.Add(ctx, shipment); err != nil {
		return nil, err
	}

	s.logger.Info("shipment created",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("tracking_number", shipment.TrackingNumber),
	)

	response := ToShipmentResponse(shipment)
	return &response, nil
}

// MarkDelivered marks a shipment as delivered and publishes the recorded
// domain events.
//
// The updated state is persisted before publishing, and it is not rolled
// back when a subscriber fails: "delivered but downstream handling failed"
// is a possible outcome the caller observes as an INTEGRATION error.
// Pending events are cleared only after the whole batch published cleanly.
func (s *ShipmentService) MarkDelivered(ctx context.Context, shipmentID uuid.UUID) error {
	shipment, err := s.shipmentRepo.FindByID(ctx, shipmentID)
	if err != nil {
		return err
	}

	if err := shipment.MarkDelivered(); err != nil {
		return err
	}

	if err := s.shipmentRepo.Update(ctx, shipment); err != nil {
		return err
	}

	events := shipment.GetDomainEvents()
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("shipment delivered but event publication failed",
			zap.String("shipment_id", shipment.ID.String()),
			zap.Error(err),
		)
		return shared.WrapDomainError(shared.CodeIntegration, "Shipment delivered but downstream handling failed", err)
	}

	shipment.ClearDomainEvents()

	s.logger.Info("shipment delivered",
		zap.String("shipment_id", shipment.ID.String()),
		zap.String("tracking_number", shipment.TrackingNumber),
	)

	return nil
}

// GetByID retrieves a shipment by ID
func (s *ShipmentService) GetByID(ctx context.Context, shipmentID uuid.UUID) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	response := ToShipmentResponse(shipment)
	return &response, nil
}

// GetByTrackingNumber retrieves a shipment by tracking number
func (s *ShipmentService) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*ShipmentResponse, error) {
	shipment, err := s.shipmentRepo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	response := ToShipmentResponse(shipment)
	return &response, nil
}
