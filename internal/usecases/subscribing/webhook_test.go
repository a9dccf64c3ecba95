package subscribing

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestHandleWebhook_IgnoredEvents(t *testing.T) {
	t.Run("tipo desconhecido não muda estado", func(t *testing.T) {
		svc, d := newTestService(t)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), []byte(`{"type":"customer.created"}`), http.Header{}))
	})

	t.Run("evento repetido é ignorado", func(t *testing.T) {
		svc, d := newTestService(t)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&billingdomain.WebhookEvent{ID: "evt_1", Type: billingdomain.EventPayment, SubscriptionID: "sub_1"}, nil)
		d.cache.EXPECT().SetNX(gomock.Any(), "billing:webhook:stripe:evt_1", gomock.Any(), 24*time.Hour).Return(false, nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, http.Header{}))
	})

	t.Run("assinatura não encontrada", func(t *testing.T) {
		svc, d := newTestService(t)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&billingdomain.WebhookEvent{Type: billingdomain.EventSubscriptionPaused, SubscriptionID: "sub_x"}, nil)
		d.subRepo.EXPECT().GetByExternalID(gomock.Any(), "sub_x").Return(nil, nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, http.Header{}))
	})

	t.Run("assinatura inválida", func(t *testing.T) {
		svc, d := newTestService(t)
		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, billingdomain.ErrInvalidSignature)

		err := svc.HandleWebhook(context.Background(), nil, http.Header{})
		assert.ErrorIs(t, err, ErrInvalidWebhook)
	})
}

func TestHandleWebhook_Reconciles(t *testing.T) {
	periodStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	t.Run("checkout concluído ativa a linha pendente pela referência", func(t *testing.T) {
		svc, d := newTestService(t)
		pending := &domain.UserSubscription{ID: 11, UserID: 7, PlanID: 1, Status: domain.SubscriptionPending, CheckoutReference: ptr("cs_123")}

		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&billingdomain.WebhookEvent{
				ID:                "evt_2",
				Type:              billingdomain.EventSubscriptionAuthorized,
				SubscriptionID:    "sub_1",
				CustomerID:        "cus_1",
				CheckoutReference: "cs_123",
			}, nil)
		d.cache.EXPECT().SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		d.subRepo.EXPECT().GetByExternalID(gomock.Any(), "sub_1").Return(nil, nil)
		d.subRepo.EXPECT().GetByCheckoutReference(gomock.Any(), "cs_123").Return(pending, nil)
		d.provider.EXPECT().GetSubscription(gomock.Any(), "sub_1").
			Return(&billingdomain.Subscription{ID: "sub_1", Status: billingdomain.StatusActive, PeriodStart: &periodStart, PeriodEnd: &periodEnd}, nil)
		d.subRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *domain.UserSubscription) error {
				assert.Equal(t, domain.SubscriptionActive, sub.Status)
				assert.Equal(t, "sub_1", *sub.ExternalSubscriptionID)
				assert.Equal(t, "cus_1", *sub.ExternalCustomerID)
				assert.Equal(t, periodEnd, *sub.CurrentPeriodEnd)
				return nil
			})
		d.publisher.EXPECT().
			Publish(gomock.Any(), "subscription.subscription_authorized", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, event any) error {
				msg := event.(domain.BillingEventMessage)
				assert.Equal(t, 11, msg.SubscriptionID)
				assert.Equal(t, domain.SubscriptionActive, msg.Status)
				return nil
			})

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, http.Header{}))
	})

	t.Run("referência user/plan encontra a linha pendente", func(t *testing.T) {
		svc, d := newTestService(t)
		pending := &domain.UserSubscription{ID: 11, UserID: 7, PlanID: 2, Status: domain.SubscriptionPending}

		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&billingdomain.WebhookEvent{
				Type:           billingdomain.EventSubscriptionAuthorized,
				SubscriptionID: "pre_1",
				Status:         billingdomain.StatusActive,
				UserID:         7,
				PlanID:         2,
				PeriodStart:    &periodStart,
				PeriodEnd:      &periodEnd,
			}, nil)
		d.subRepo.EXPECT().GetByExternalID(gomock.Any(), "pre_1").Return(nil, nil)
		d.subRepo.EXPECT().GetPendingByUserPlan(gomock.Any(), 7, 2).Return(pending, nil)
		d.subRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, http.Header{}))
		assert.Equal(t, domain.SubscriptionActive, pending.Status)
	})

	t.Run("pagamento de novo período zera o contador de IA", func(t *testing.T) {
		svc, d := newTestService(t)
		oldEnd := periodStart
		sub := &domain.UserSubscription{ID: 3, Status: domain.SubscriptionActive, ExternalSubscriptionID: ptr("sub_1"), CurrentPeriodEnd: &oldEnd, AIGenerationsUsed: 42}

		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&billingdomain.WebhookEvent{Type: billingdomain.EventPayment, SubscriptionID: "sub_1", PeriodStart: &periodStart, PeriodEnd: &periodEnd}, nil)
		d.subRepo.EXPECT().GetByExternalID(gomock.Any(), "sub_1").Return(sub, nil)
		d.subRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		d.publisher.EXPECT().Publish(gomock.Any(), "subscription.payment", gomock.Any()).Return(nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, http.Header{}))
		assert.Zero(t, sub.AIGenerationsUsed)
		assert.Equal(t, periodEnd, *sub.CurrentPeriodEnd)
	})

	t.Run("pagamento dentro do período mantém o contador", func(t *testing.T) {
		svc, d := newTestService(t)
		currentEnd := periodEnd
		sub := &domain.UserSubscription{ID: 3, Status: domain.SubscriptionActive, ExternalSubscriptionID: ptr("sub_1"), CurrentPeriodEnd: &currentEnd, AIGenerationsUsed: 42}

		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&billingdomain.WebhookEvent{Type: billingdomain.EventPayment, SubscriptionID: "sub_1", PeriodStart: &periodStart, PeriodEnd: &periodEnd}, nil)
		d.subRepo.EXPECT().GetByExternalID(gomock.Any(), "sub_1").Return(sub, nil)
		d.subRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, http.Header{}))
		assert.Equal(t, 42, sub.AIGenerationsUsed)
	})

	t.Run("cancelamento", func(t *testing.T) {
		svc, d := newTestService(t)
		sub := &domain.UserSubscription{ID: 3, Status: domain.SubscriptionActive, CancelAtPeriodEnd: true, ExternalSubscriptionID: ptr("sub_1")}

		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&billingdomain.WebhookEvent{Type: billingdomain.EventSubscriptionCancelled, SubscriptionID: "sub_1"}, nil)
		d.subRepo.EXPECT().GetByExternalID(gomock.Any(), "sub_1").Return(sub, nil)
		d.subRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		d.publisher.EXPECT().Publish(gomock.Any(), "subscription.subscription_cancelled", gomock.Any()).Return(errors.New("fila fora do ar"))

		require.NoError(t, svc.HandleWebhook(context.Background(), nil, http.Header{}), "falha ao publicar não derruba o webhook")
		assert.Equal(t, domain.SubscriptionCanceled, sub.Status)
		assert.False(t, sub.CancelAtPeriodEnd)
	})

	t.Run("erro no banco libera a chave de deduplicação", func(t *testing.T) {
		svc, d := newTestService(t)

		d.provider.EXPECT().ParseWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&billingdomain.WebhookEvent{ID: "evt_9", Type: billingdomain.EventSubscriptionPaused, SubscriptionID: "sub_1"}, nil)
		d.cache.EXPECT().SetNX(gomock.Any(), "billing:webhook:stripe:evt_9", gomock.Any(), gomock.Any()).Return(true, nil)
		d.subRepo.EXPECT().GetByExternalID(gomock.Any(), "sub_1").Return(nil, errors.New("conexão perdida"))
		d.cache.EXPECT().Del(gomock.Any(), "billing:webhook:stripe:evt_9").Return(nil)

		err := svc.HandleWebhook(context.Background(), nil, http.Header{})
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestReconcilePending(t *testing.T) {
	periodEnd := fixedNow.AddDate(0, 1, 0)

	svc, d := newTestService(t)

	noReference := &domain.UserSubscription{ID: 1, Status: domain.SubscriptionPending}
	abandoned := &domain.UserSubscription{ID: 2, Status: domain.SubscriptionPending, CheckoutReference: ptr("cs_2")}
	paid := &domain.UserSubscription{ID: 3, Status: domain.SubscriptionPending, CheckoutReference: ptr("cs_3")}
	providerDown := &domain.UserSubscription{ID: 4, Status: domain.SubscriptionPending, CheckoutReference: ptr("cs_4")}

	d.subRepo.EXPECT().
		ListPendingOlderThan(gomock.Any(), fixedNow.Add(-15*time.Minute), 100).
		Return([]*domain.UserSubscription{noReference, abandoned, paid, providerDown}, nil)
	d.provider.EXPECT().LookupCheckout(gomock.Any(), "cs_2").Return(nil, nil)
	d.provider.EXPECT().LookupCheckout(gomock.Any(), "cs_3").
		Return(&billingdomain.Subscription{ID: "sub_3", Status: billingdomain.StatusActive, PeriodEnd: &periodEnd}, nil)
	d.provider.EXPECT().LookupCheckout(gomock.Any(), "cs_4").Return(nil, errors.New("timeout"))
	d.subRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	changed, err := svc.ReconcilePending(context.Background(), 15*time.Minute, 100)
	require.NoError(t, err)

	assert.Equal(t, 3, changed)
	assert.Equal(t, domain.SubscriptionFailed, noReference.Status)
	assert.Equal(t, domain.SubscriptionFailed, abandoned.Status)
	assert.Equal(t, domain.SubscriptionActive, paid.Status)
	assert.Equal(t, "sub_3", *paid.ExternalSubscriptionID)
	assert.Equal(t, domain.SubscriptionPending, providerDown.Status)
}
