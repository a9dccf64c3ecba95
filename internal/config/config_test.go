package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		secret   string
		wantErr  bool
		expected string
	}{
		{name: "stripe", provider: "stripe", secret: "s", expected: BillingProviderStripe},
		{name: "normaliza caixa e espaços", provider: "  MercadoPago ", secret: "s", expected: BillingProviderMercadoPago},
		{name: "provedor desconhecido", provider: "paypal", secret: "s", wantErr: true},
		{name: "provedor vazio", provider: "", secret: "s", wantErr: true},
		{name: "sem chave secreta", provider: "stripe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Billing: Billing{Provider: tt.provider}, SecretKey: tt.secret}

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Billing.Provider)
		})
	}
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("BILLING_PROVIDER", "mercadopago")
	t.Setenv("SECRET_KEY", "segredo")
	t.Setenv("ALLOWED_ORIGINS", "https://app.exemplo.com,https://admin.exemplo.com")
	t.Setenv("REDIS_INSIGHTS_TTL", "5m")
	t.Setenv("DATABASE_USER", "ads")
	t.Setenv("DATABASE_PASSWORD", "senha")
	t.Setenv("DATABASE_URL", "db:5432/ads?sslmode=disable")
	t.Setenv("META_VERSION", "v24.0")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, BillingProviderMercadoPago, cfg.Billing.Provider)
	assert.Equal(t, []string{"https://app.exemplo.com", "https://admin.exemplo.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.Redis.InsightsTTL)
	assert.Equal(t, "postgres://ads:senha@db:5432/ads?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "https://graph.facebook.com/v24.0", cfg.Meta.URL)
	assert.Equal(t, 15*time.Minute, cfg.Reconciliation.PendingTimeout)
}
