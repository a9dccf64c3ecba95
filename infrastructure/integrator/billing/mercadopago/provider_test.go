package mercadopago

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc, secret string) *Provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := New(config.MercadoPago{BaseURL: srv.URL, AccessToken: "TEST-token", WebhookSecret: secret})
	require.NoError(t, err)
	p.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestProvider_CreateCheckout(t *testing.T) {
	var got map[string]any

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/preapproval", r.URL.Path)
		assert.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		_, _ = w.Write([]byte(`{"id":"pre_1","init_point":"https://mp/checkout/pre_1","status":"pending"}`))
	}, "")

	sess, err := p.CreateCheckout(context.Background(), billingdomain.CheckoutRequest{
		UserID:        7,
		PlanID:        2,
		PlanName:      "Profissional",
		PriceCents:    9900,
		CustomerEmail: "ana@exemplo.com",
		Origin:        "https://app.exemplo.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://mp/checkout/pre_1", sess.URL)
	assert.Equal(t, "pre_1", sess.Reference)
	assert.Equal(t, "pre_1", sess.SubscriptionID)
	assert.Equal(t, "Assinatura Profissional - Ads Manager AI", got["reason"])
	assert.Equal(t, "user_7_plan_2", got["external_reference"])
	assert.Equal(t, "https://app.exemplo.com/subscription/success", got["back_url"])

	recurring := got["auto_recurring"].(map[string]any)
	assert.Equal(t, 99.0, recurring["transaction_amount"])
	assert.Equal(t, "BRL", recurring["currency_id"])
	assert.Equal(t, "months", recurring["frequency_type"])
}

func TestProvider_GetSubscription(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/preapproval/pre_1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"pre_1","status":"authorized","payer_id":99,"external_reference":"user_7_plan_2","next_payment_date":"2025-04-01T12:00:00.000-03:00"}`))
	}, "")

	sub, err := p.GetSubscription(context.Background(), "pre_1")

	require.NoError(t, err)
	assert.Equal(t, billingdomain.StatusActive, sub.Status)
	assert.Equal(t, 7, sub.UserID)
	assert.Equal(t, 2, sub.PlanID)
	assert.Equal(t, "99", sub.CustomerID)
	require.NotNil(t, sub.PeriodEnd)
	assert.Equal(t, time.March, sub.PeriodStart.Month())
}

func TestProvider_LookupCheckoutPending(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"pre_1","status":"pending"}`))
	}, "")

	sub, err := p.LookupCheckout(context.Background(), "pre_1")

	require.NoError(t, err)
	assert.Nil(t, sub)
}

func TestProvider_CancelSubscription(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status":"cancelled"}`, string(raw))
		_, _ = w.Write([]byte(`{"id":"pre_1","status":"cancelled"}`))
	}, "")

	require.NoError(t, p.CancelSubscription(context.Background(), "pre_1"))
}

func TestProvider_APIError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"payer_email inválido","error":"bad_request","status":400}`))
	}, "")

	_, err := p.CreateCheckout(context.Background(), billingdomain.CheckoutRequest{UserID: 1, PlanID: 1})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "payer_email inválido", apiErr.Message)
}

func TestProvider_SDKRequestsFollowBaseURL(t *testing.T) {
	var paths []string
	var idempotency []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		idempotency = append(idempotency, r.Header.Get("X-Idempotency-Key"))
		_, _ = w.Write([]byte(`{"id":"pre_1","status":"authorized"}`))
	}))
	t.Cleanup(srv.Close)

	p, err := New(config.MercadoPago{BaseURL: srv.URL + "/sandbox/", AccessToken: "TEST-token"})
	require.NoError(t, err)

	_, err = p.GetSubscription(context.Background(), "pre_1")
	require.NoError(t, err)
	require.NoError(t, p.PauseSubscription(context.Background(), "pre_1"))

	assert.Equal(t, []string{"GET /sandbox/preapproval/pre_1", "PUT /sandbox/preapproval/pre_1"}, paths)
	assert.Empty(t, idempotency[0])
	assert.NotEmpty(t, idempotency[1])
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(config.MercadoPago{BaseURL: "://sem-esquema", AccessToken: "TEST-token"})
	assert.Error(t, err)
}

func TestProvider_ParseWebhook(t *testing.T) {
	p, err := New(config.MercadoPago{BaseURL: "http://unused"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		payload  string
		wantType billingdomain.EventType
		wantSub  string
		wantPay  string
		wantNil  bool
	}{
		{name: "preapproval autorizada", payload: `{"id":1,"type":"subscription_preapproval","data":{"id":"pre_1"}}`, wantType: billingdomain.EventSubscriptionAuthorized, wantSub: "pre_1"},
		{name: "assinatura autorizada", payload: `{"type":"subscription_authorized","data":{"id":"pre_1"}}`, wantType: billingdomain.EventSubscriptionAuthorized, wantSub: "pre_1"},
		{name: "assinatura pausada", payload: `{"type":"subscription_paused","data":{"id":"pre_1"}}`, wantType: billingdomain.EventSubscriptionPaused, wantSub: "pre_1"},
		{name: "assinatura cancelada", payload: `{"type":"subscription_cancelled","data":{"id":"pre_1"}}`, wantType: billingdomain.EventSubscriptionCancelled, wantSub: "pre_1"},
		{name: "pagamento", payload: `{"type":"payment","data":{"id":"pay_9","preapproval_id":"pre_1"}}`, wantType: billingdomain.EventPayment, wantSub: "pre_1", wantPay: "pay_9"},
		{name: "tipo desconhecido", payload: `{"type":"merchant_order","data":{"id":"mo_1"}}`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := p.ParseWebhook(context.Background(), []byte(tt.payload), http.Header{})
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, ev)
				return
			}

			require.NotNil(t, ev)
			assert.Equal(t, tt.wantType, ev.Type)
			assert.Equal(t, tt.wantSub, ev.SubscriptionID)
			assert.Equal(t, tt.wantPay, ev.PaymentID)
			assert.NotEmpty(t, ev.ID)
		})
	}
}

func TestProvider_ParseWebhookSignature(t *testing.T) {
	p, err := New(config.MercadoPago{BaseURL: "http://unused", WebhookSecret: "segredo"})
	require.NoError(t, err)
	payload := []byte(`{"type":"payment","data":{"id":"PAY_9","preapproval_id":"pre_1"}}`)

	t.Run("assinatura válida", func(t *testing.T) {
		h := http.Header{}
		h.Set("x-request-id", "req-1")
		h.Set("x-signature", "ts=1700000000,v1="+Sign("segredo", "PAY_9", "req-1", "1700000000"))

		ev, err := p.ParseWebhook(context.Background(), payload, h)
		require.NoError(t, err)
		assert.Equal(t, billingdomain.EventPayment, ev.Type)
	})

	t.Run("assinatura inválida", func(t *testing.T) {
		h := http.Header{}
		h.Set("x-request-id", "req-1")
		h.Set("x-signature", "ts=1700000000,v1=abc")

		_, err := p.ParseWebhook(context.Background(), payload, h)
		assert.ErrorIs(t, err, billingdomain.ErrInvalidSignature)
	})
}
