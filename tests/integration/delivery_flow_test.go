package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbilling "github.com/shipflow/backend/internal/application/billing"
	appshipping "github.com/shipflow/backend/internal/application/shipping"
	"github.com/shipflow/backend/internal/domain/billing"
	"github.com/shipflow/backend/internal/infrastructure/event"
	"github.com/shipflow/backend/internal/infrastructure/persistence"
	"github.com/shipflow/backend/internal/interfaces/http/dto"
	"github.com/shipflow/backend/internal/interfaces/http/handler"
	"github.com/shipflow/backend/internal/interfaces/http/middleware"
	"github.com/shipflow/backend/internal/interfaces/http/router"
	"github.com/shipflow/backend/tests/testutil"
)

var invoiceNumberPattern = regexp.MustCompile(`^INV-\d{8}-[0-9A-F]{8}$`)

// recordingInvoiceRepository records invoices added through it so tests can
// observe what the delivered-shipment handler created
type recordingInvoiceRepository struct {
	billing.InvoiceRepository
	added []*billing.Invoice
}

func (r *recordingInvoiceRepository) Add(ctx context.Context, invoice *billing.Invoice) error {
	if err := r.InvoiceRepository.Add(ctx, invoice); err != nil {
		return err
	}
	r.added = append(r.added, invoice)
	return nil
}

type testApp struct {
	engine      *gin.Engine
	invoiceRepo *recordingInvoiceRepository
	bus         *event.InMemoryEventBus
}

// setupApp wires the full application the way cmd/server does, on in-memory
// stores and without telemetry
func setupApp(t *testing.T, invoiceAmount string) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, middleware.RegisterCustomValidators())

	log := zap.NewNop()

	shipmentRepo := persistence.NewMemoryShipmentRepository()
	invoiceRepo := &recordingInvoiceRepository{InvoiceRepository: persistence.NewMemoryInvoiceRepository()}

	bus := event.NewInMemoryEventBus(log, nil)
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })

	shipmentService := appshipping.NewShipmentService(shipmentRepo, bus, log)
	invoiceService := appbilling.NewInvoiceService(invoiceRepo, log)

	deliveredHandler := appbilling.NewShipmentDeliveredHandler(
		invoiceService,
		decimal.RequireFromString(invoiceAmount),
		log,
	)
	bus.Subscribe(deliveredHandler)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.NewRouter(engine).
		Register(handler.NewShipmentHandler(shipmentService)).
		Register(handler.NewInvoiceHandler(invoiceService)).
		Setup()

	return &testApp{engine: engine, invoiceRepo: invoiceRepo, bus: bus}
}

func (a *testApp) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestDeliveryFlow_CreatesInvoice(t *testing.T) {
	app := setupApp(t, "100.00")

	// Create the shipment
	w, resp := app.do(t, http.MethodPost, "/api/v1/shipments", gin.H{
		"tracking_number":   "TRACK123",
		"recipient_address": "123 Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	shipment := resp.Data.(map[string]any)
	shipmentID := shipment["id"].(string)

	// Deliver it; the billing handler reacts synchronously
	w, resp = app.do(t, http.MethodPost, "/api/v1/shipments/"+shipmentID+"/deliver", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "DELIVERED", resp.Data.(map[string]any)["status"])

	// Exactly one invoice was issued with the configured amount
	require.Len(t, app.invoiceRepo.added, 1)
	invoice := app.invoiceRepo.added[0]
	assert.Equal(t, shipmentID, invoice.ShipmentID.String())
	assert.Equal(t, "TRACK123", invoice.TrackingNumber)
	assert.Equal(t, billing.InvoiceStatusIssued, invoice.Status)
	assert.True(t, invoice.Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Regexp(t, invoiceNumberPattern, invoice.InvoiceNumber)

	// The invoice is readable over the API, by id and by number
	w, resp = app.do(t, http.MethodGet, "/api/v1/invoices/"+invoice.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, invoice.InvoiceNumber, resp.Data.(map[string]any)["invoice_number"])

	w, resp = app.do(t, http.MethodGet, "/api/v1/invoices/number/"+invoice.InvoiceNumber, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, invoice.ID.String(), resp.Data.(map[string]any)["id"])
}

func TestDeliveryFlow_SecondDeliveryRejectedWithoutSecondInvoice(t *testing.T) {
	app := setupApp(t, "100.00")

	w, resp := app.do(t, http.MethodPost, "/api/v1/shipments", gin.H{
		"tracking_number":   "TRACK123",
		"recipient_address": "123 Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	shipmentID := resp.Data.(map[string]any)["id"].(string)

	w, _ = app.do(t, http.MethodPost, "/api/v1/shipments/"+shipmentID+"/deliver", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = app.do(t, http.MethodPost, "/api/v1/shipments/"+shipmentID+"/deliver", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, dto.ErrCodeInvalidState, resp.Error.Code)

	assert.Len(t, app.invoiceRepo.added, 1)
}

func TestDeliveryFlow_HandlerFailureLeavesShipmentDelivered(t *testing.T) {
	app := setupApp(t, "100.00")

	failing := testutil.NewMockEventHandler("ShipmentDelivered")
	failing.SetError(assert.AnError)
	app.bus.Subscribe(failing)

	w, resp := app.do(t, http.MethodPost, "/api/v1/shipments", gin.H{
		"tracking_number":   "TRACK999",
		"recipient_address": "456 Oak Ave",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	shipmentID := resp.Data.(map[string]any)["id"].(string)

	// The billing handler succeeds but the extra subscriber fails, so the
	// whole publish is reported as an integration failure
	w, resp = app.do(t, http.MethodPost, "/api/v1/shipments/"+shipmentID+"/deliver", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, dto.ErrCodeIntegration, resp.Error.Code)

	// The invoice from the billing handler still exists and the shipment
	// stays delivered; nothing is rolled back
	assert.Len(t, app.invoiceRepo.added, 1)
	assert.Equal(t, 1, failing.HandledCount())

	w, resp = app.do(t, http.MethodGet, "/api/v1/shipments/"+shipmentID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DELIVERED", resp.Data.(map[string]any)["status"])
}

func TestDeliveryFlow_EventsOnlyReachMatchingHandlers(t *testing.T) {
	app := setupApp(t, "100.00")

	other := testutil.NewMockEventHandler("SomethingUnrelated")
	app.bus.Subscribe(other)

	w, resp := app.do(t, http.MethodPost, "/api/v1/shipments", gin.H{
		"tracking_number":   "TRACK123",
		"recipient_address": "123 Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	shipmentID := resp.Data.(map[string]any)["id"].(string)

	w, _ = app.do(t, http.MethodPost, "/api/v1/shipments/"+shipmentID+"/deliver", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 0, other.HandledCount())
	assert.Len(t, app.invoiceRepo.added, 1)
}
