package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appshipping "github.com/shipflow/backend/internal/application/shipping"
	"github.com/shipflow/backend/internal/interfaces/http/dto"
)

// CreateShipmentRequest is the HTTP payload for creating a shipment
type CreateShipmentRequest struct {
	TrackingNumber   string `json:"tracking_number" binding:"required,tracking_number"`
	RecipientAddress string `json:"recipient_address" binding:"required,max=500"`
}

// ShipmentHandler handles shipment HTTP requests
type ShipmentHandler struct {
	BaseHandler
	shipmentService *appshipping.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(shipmentService *appshipping.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

// RegisterRoutes registers shipment routes
func (h *ShipmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shipments := rg.Group("/shipments")
	{
		shipments.POST("", h.Create)
		shipments.GET("/:id", h.GetByID)
		shipments.POST("/:id/deliver", h.MarkDelivered)
		shipments.GET("/tracking/:trackingNumber", h.GetByTrackingNumber)
	}
}

// Create handles POST /shipments
func (h *ShipmentHandler) Create(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.shipmentService.Create(c.Request.Context(), appshipping.CreateShipmentRequest{
		TrackingNumber:   req.TrackingNumber,
		RecipientAddress: req.RecipientAddress,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID handles GET /shipments/:id
func (h *ShipmentHandler) GetByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid shipment ID")
		return
	}

	resp, err := h.shipmentService.GetByID(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// MarkDelivered handles POST /shipments/:id/deliver
func (h *ShipmentHandler) MarkDelivered(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid shipment ID")
		return
	}

	id := uuid.MustParse(req.ID)
	if err := h.shipmentService.MarkDelivered(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp, err := h.shipmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByTrackingNumber handles GET /shipments/tracking/:trackingNumber
func (h *ShipmentHandler) GetByTrackingNumber(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")
	if trackingNumber == "" {
		h.BadRequest(c, "Tracking number is required")
		return
	}

	resp, err := h.shipmentService.GetByTrackingNumber(c.Request.Context(), trackingNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
