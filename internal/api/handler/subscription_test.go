package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/subscribing"
	"github.com/vfg2006/ads-manager-api/internal/usecases/subscribing/mocks"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestBillingWebhook(t *testing.T) {
	t.Run("evento aceito ou ignorado responde received", func(t *testing.T) {
		svc := mocks.NewMockSubscriber(gomock.NewController(t))
		svc.EXPECT().HandleWebhook(gomock.Any(), []byte(`{"type":"invoice.created"}`), gomock.Any()).Return(nil)

		rec := serve(Subscriptions(svc), http.MethodPost, "/v1/webhooks/billing", `{"type":"invoice.created"}`, nil)

		requireStatus(t, rec, http.StatusOK)
		assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	})

	t.Run("assinatura inválida", func(t *testing.T) {
		svc := mocks.NewMockSubscriber(gomock.NewController(t))
		svc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(subscribing.NewSubscriptionError(subscribing.ErrInvalidWebhook, apiErrors.ErrInvalidWebhook, 0, "signature mismatch"))

		rec := serve(Subscriptions(svc), http.MethodPost, "/v1/webhooks/billing", `{}`, nil)

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, apiErrors.ErrInvalidWebhook, decodeAPIError(t, rec).Code)
	})

	t.Run("falha no banco não expõe detalhes", func(t *testing.T) {
		svc := mocks.NewMockSubscriber(gomock.NewController(t))
		svc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(subscribing.NewSubscriptionError(subscribing.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, "pq: connection refused"))

		rec := serve(Subscriptions(svc), http.MethodPost, "/v1/webhooks/billing", `{}`, nil)

		requireStatus(t, rec, http.StatusInternalServerError)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})
}

func TestCreateCheckout(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		svc := mocks.NewMockSubscriber(gomock.NewController(t))
		svc.EXPECT().CreateCheckout(gomock.Any(), 2, domain.CheckoutRequest{PlanID: 3}).
			Return(&domain.CheckoutResponse{URL: "https://checkout.exemplo.com/s/1"}, nil)

		rec := serve(Subscriptions(svc), http.MethodPost, "/v1/subscription/checkout", `{"planId":3}`, client)

		requireStatus(t, rec, http.StatusOK)
		assert.JSONEq(t, `{"url":"https://checkout.exemplo.com/s/1"}`, rec.Body.String())
	})

	t.Run("plano obrigatório", func(t *testing.T) {
		svc := mocks.NewMockSubscriber(gomock.NewController(t))

		rec := serve(Subscriptions(svc), http.MethodPost, "/v1/subscription/checkout", `{}`, client)

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("já assinante", func(t *testing.T) {
		svc := mocks.NewMockSubscriber(gomock.NewController(t))
		svc.EXPECT().CreateCheckout(gomock.Any(), 2, gomock.Any()).
			Return(nil, subscribing.NewSubscriptionError(subscribing.ErrAlreadySubscribed, apiErrors.ErrSubscriptionActive, 2, ""))

		rec := serve(Subscriptions(svc), http.MethodPost, "/v1/subscription/checkout", `{"planId":3}`, client)

		requireStatus(t, rec, http.StatusConflict)
	})
}

func TestCanUseAI(t *testing.T) {
	used, limit := 50, 50
	svc := mocks.NewMockSubscriber(gomock.NewController(t))
	svc.EXPECT().CanUseAI(gomock.Any(), 2).Return(&domain.CanUseAIResponse{
		CanUse: false,
		Reason: domain.ReasonLimitReached,
		Used:   &used,
		Limit:  &limit,
	}, nil)

	rec := serve(Subscriptions(svc), http.MethodGet, "/v1/subscription/can-use-ai", "", client)

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"canUse":false,"reason":"limit_reached","used":50,"limit":50}`, rec.Body.String())
}

func TestListPlans_Empty(t *testing.T) {
	svc := mocks.NewMockSubscriber(gomock.NewController(t))
	svc.EXPECT().GetPlans(gomock.Any()).Return(nil, nil)

	rec := serve(Subscriptions(svc), http.MethodGet, "/v1/plans", "", nil)

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
