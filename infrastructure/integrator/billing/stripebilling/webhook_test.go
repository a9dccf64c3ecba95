package stripebilling

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78/webhook"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

const testSecret = "whsec_test"

func signedHeaders(payload string) http.Header {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})

	h := http.Header{}
	h.Set(signatureHeader, signed.Header)
	return h
}

func TestProvider_ParseWebhook(t *testing.T) {
	p := New(config.Stripe{SecretKey: "sk_test", WebhookSecret: testSecret})

	tests := []struct {
		name     string
		payload  string
		validate func(t *testing.T, ev *billingdomain.WebhookEvent)
	}{
		{
			name: "checkout concluído autoriza assinatura",
			payload: `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{
				"id":"cs_1","object":"checkout.session","mode":"subscription","subscription":"sub_1","customer":"cus_1",
				"client_reference_id":"7","metadata":{"user_id":"7","plan_id":"2"}}}}`,
			validate: func(t *testing.T, ev *billingdomain.WebhookEvent) {
				require.NotNil(t, ev)
				assert.Equal(t, billingdomain.EventSubscriptionAuthorized, ev.Type)
				assert.Equal(t, "sub_1", ev.SubscriptionID)
				assert.Equal(t, "cs_1", ev.CheckoutReference)
				assert.Equal(t, "cus_1", ev.CustomerID)
				assert.Equal(t, 7, ev.UserID)
				assert.Equal(t, 2, ev.PlanID)
			},
		},
		{
			name: "assinatura removida vira cancelamento",
			payload: `{"id":"evt_2","object":"event","type":"customer.subscription.deleted","data":{"object":{
				"id":"sub_1","object":"subscription","status":"canceled","customer":"cus_1"}}}`,
			validate: func(t *testing.T, ev *billingdomain.WebhookEvent) {
				require.NotNil(t, ev)
				assert.Equal(t, billingdomain.EventSubscriptionCancelled, ev.Type)
				assert.Equal(t, billingdomain.StatusCanceled, ev.Status)
			},
		},
		{
			name: "assinatura pausada",
			payload: `{"id":"evt_3","object":"event","type":"customer.subscription.updated","data":{"object":{
				"id":"sub_1","object":"subscription","status":"paused","current_period_start":1700000000,"current_period_end":1702592000}}}`,
			validate: func(t *testing.T, ev *billingdomain.WebhookEvent) {
				require.NotNil(t, ev)
				assert.Equal(t, billingdomain.EventSubscriptionPaused, ev.Type)
				require.NotNil(t, ev.PeriodEnd)
				assert.Equal(t, int64(1702592000), ev.PeriodEnd.Unix())
			},
		},
		{
			name: "fatura paga vira pagamento",
			payload: `{"id":"evt_4","object":"event","type":"invoice.paid","data":{"object":{
				"id":"in_1","object":"invoice","subscription":"sub_1",
				"lines":{"object":"list","data":[{"id":"il_1","object":"line_item","period":{"start":1700000000,"end":1702592000}}]}}}}`,
			validate: func(t *testing.T, ev *billingdomain.WebhookEvent) {
				require.NotNil(t, ev)
				assert.Equal(t, billingdomain.EventPayment, ev.Type)
				assert.Equal(t, "in_1", ev.PaymentID)
				assert.Equal(t, "sub_1", ev.SubscriptionID)
				require.NotNil(t, ev.PeriodStart)
			},
		},
		{
			name:    "evento desconhecido é ignorado",
			payload: `{"id":"evt_5","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`,
			validate: func(t *testing.T, ev *billingdomain.WebhookEvent) {
				assert.Nil(t, ev)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := p.ParseWebhook(context.Background(), []byte(tt.payload), signedHeaders(tt.payload))
			require.NoError(t, err)
			tt.validate(t, ev)
		})
	}
}

func TestProvider_ParseWebhookInvalidSignature(t *testing.T) {
	p := New(config.Stripe{SecretKey: "sk_test", WebhookSecret: testSecret})

	h := http.Header{}
	h.Set(signatureHeader, "t=1,v1=deadbeef")

	_, err := p.ParseWebhook(context.Background(), []byte(`{"type":"invoice.paid"}`), h)

	assert.ErrorIs(t, err, billingdomain.ErrInvalidSignature)
}

func TestMapStatus(t *testing.T) {
	assert.Equal(t, billingdomain.StatusActive, mapStatus("active"))
	assert.Equal(t, billingdomain.StatusPastDue, mapStatus("unpaid"))
	assert.Equal(t, billingdomain.StatusCanceled, mapStatus("incomplete_expired"))
	assert.Equal(t, billingdomain.StatusPending, mapStatus("incomplete"))
}
