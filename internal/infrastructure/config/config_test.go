package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shipflow-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout)
	assert.Equal(t, "100.00", cfg.Billing.DefaultInvoiceAmount)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.CollectorEndpoint)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	assert.Equal(t, cfg.App.Name, cfg.Telemetry.ServiceName)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SHIPFLOW_APP_PORT", "9090")
	t.Setenv("SHIPFLOW_LOG_LEVEL", "debug")
	t.Setenv("SHIPFLOW_BILLING_DEFAULT_INVOICE_AMOUNT", "42.50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "42.50", cfg.Billing.DefaultInvoiceAmount)
}

func TestLoad_InvalidInvoiceAmount(t *testing.T) {
	t.Setenv("SHIPFLOW_BILLING_DEFAULT_INVOICE_AMOUNT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_invoice_amount")
}

func TestLoad_NonPositiveInvoiceAmount(t *testing.T) {
	t.Setenv("SHIPFLOW_BILLING_DEFAULT_INVOICE_AMOUNT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestLoad_ProductionRejectsWildcardCORS(t *testing.T) {
	t.Setenv("SHIPFLOW_APP_ENV", "production")
	t.Setenv("SHIPFLOW_HTTP_CORS_ALLOW_ORIGINS", "*")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cors_allow_origins")
}

func TestBillingConfig_InvoiceAmount(t *testing.T) {
	b := BillingConfig{DefaultInvoiceAmount: "100.00"}
	assert.True(t, b.InvoiceAmount().Equal(decimal.RequireFromString("100.00")))
}
