package subscribing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

const routingKeyPrefix = "subscription."

// HandleWebhook aplica no banco a notificação do provedor.
// Eventos desconhecidos, repetidos ou sem assinatura correspondente não mudam nada.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, headers http.Header) error {
	event, err := s.provider.ParseWebhook(ctx, payload, headers)
	if err != nil {
		if errors.Is(err, billingdomain.ErrInvalidSignature) || errors.Is(err, billingdomain.ErrInvalidPayload) {
			return NewSubscriptionError(ErrInvalidWebhook, errorcodes.ErrInvalidWebhook, 0, err.Error())
		}
		return NewSubscriptionError(ErrProvider, errorcodes.ErrExternalService, 0, err.Error())
	}

	if event == nil {
		logrus.WithField("provider", s.provider.Name()).Debug("Webhook ignorado: tipo de evento não tratado")
		return nil
	}

	log := logrus.WithFields(logrus.Fields{
		"provider":        s.provider.Name(),
		"event_id":        event.ID,
		"event_type":      event.Type,
		"subscription_id": event.SubscriptionID,
	})

	dedupeKey := ""
	if event.ID != "" {
		dedupeKey = fmt.Sprintf("billing:webhook:%s:%s", s.provider.Name(), event.ID)
		first, err := s.cache.SetNX(ctx, dedupeKey, []byte("1"), s.cfg.Redis.WebhookTTL)
		if err != nil {
			log.WithError(err).Warn("Erro ao deduplicar webhook, processando mesmo assim")
			dedupeKey = ""
		} else if !first {
			log.Info("Webhook repetido ignorado")
			return nil
		}
	}

	sub, err := s.applyEvent(ctx, event)
	if err != nil {
		// libera a chave para que a nova tentativa do provedor seja processada
		if dedupeKey != "" {
			if delErr := s.cache.Del(ctx, dedupeKey); delErr != nil {
				log.WithError(delErr).Warn("Erro ao liberar chave de deduplicação")
			}
		}
		return err
	}

	if sub == nil {
		log.Warn("Webhook sem assinatura correspondente")
		return nil
	}

	log.WithField("status", sub.Status).Info("Assinatura reconciliada pelo webhook")
	s.publish(ctx, event.Type, sub)

	return nil
}

func (s *Service) applyEvent(ctx context.Context, event *billingdomain.WebhookEvent) (*domain.UserSubscription, error) {
	sub, err := s.findSubscription(ctx, event)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, event.UserID, err.Error())
	}
	if sub == nil {
		return nil, nil
	}

	if event.SubscriptionID != "" && sub.ExternalSubscriptionID == nil {
		id := event.SubscriptionID
		sub.ExternalSubscriptionID = &id
	}
	if event.CustomerID != "" {
		customer := event.CustomerID
		sub.ExternalCustomerID = &customer
	}

	switch event.Type {
	case billingdomain.EventSubscriptionAuthorized:
		remote := s.fetchRemote(ctx, sub, event)
		sub.Status = toSubscriptionStatus(firstNonEmpty(event.Status, remoteStatus(remote)), domain.SubscriptionActive)
		setPeriod(sub, event, remote)
		if remote != nil {
			sub.CancelAtPeriodEnd = remote.CancelAtPeriodEnd
		}
	case billingdomain.EventSubscriptionPaused:
		sub.Status = domain.SubscriptionPaused
	case billingdomain.EventSubscriptionCancelled:
		sub.Status = domain.SubscriptionCanceled
		sub.CancelAtPeriodEnd = false
	case billingdomain.EventPayment:
		remote := s.fetchRemote(ctx, sub, event)
		s.rollPeriod(sub, event, remote)
	}

	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, sub.UserID, err.Error())
	}

	return sub, nil
}

// findSubscription procura pelo id externo, depois pela referência do checkout
// e por último pela referência user_{id}_plan_{id}.
func (s *Service) findSubscription(ctx context.Context, event *billingdomain.WebhookEvent) (*domain.UserSubscription, error) {
	if event.SubscriptionID != "" {
		sub, err := s.subRepo.GetByExternalID(ctx, event.SubscriptionID)
		if err != nil || sub != nil {
			return sub, err
		}
	}

	if event.CheckoutReference != "" {
		sub, err := s.subRepo.GetByCheckoutReference(ctx, event.CheckoutReference)
		if err != nil || sub != nil {
			return sub, err
		}
	}

	if event.UserID > 0 && event.PlanID > 0 {
		return s.subRepo.GetPendingByUserPlan(ctx, event.UserID, event.PlanID)
	}

	return nil, nil
}

// fetchRemote busca a assinatura no provedor quando o evento não traz o período.
func (s *Service) fetchRemote(ctx context.Context, sub *domain.UserSubscription, event *billingdomain.WebhookEvent) *billingdomain.Subscription {
	if event.PeriodEnd != nil || sub.ExternalSubscriptionID == nil {
		return nil
	}

	remote, err := s.provider.GetSubscription(ctx, *sub.ExternalSubscriptionID)
	if err != nil {
		logrus.WithError(err).WithField("subscription_id", sub.ID).Warn("Erro ao consultar assinatura no provedor")
		return nil
	}

	return remote
}

// rollPeriod avança o período pago e zera o contador de IA quando o período anterior terminou.
func (s *Service) rollPeriod(sub *domain.UserSubscription, event *billingdomain.WebhookEvent, remote *billingdomain.Subscription) {
	previousEnd := sub.CurrentPeriodEnd

	setPeriod(sub, event, remote)

	reference := s.now()
	if sub.CurrentPeriodStart != nil {
		reference = *sub.CurrentPeriodStart
	}

	if previousEnd == nil || !reference.Before(*previousEnd) {
		sub.AIGenerationsUsed = 0
	}

	if sub.Status == domain.SubscriptionPending || sub.Status == domain.SubscriptionPastDue || sub.Status == domain.SubscriptionFailed {
		sub.Status = domain.SubscriptionActive
	}
}

func setPeriod(sub *domain.UserSubscription, event *billingdomain.WebhookEvent, remote *billingdomain.Subscription) {
	start, end := event.PeriodStart, event.PeriodEnd
	if end == nil && remote != nil {
		start, end = remote.PeriodStart, remote.PeriodEnd
	}

	if start != nil {
		sub.CurrentPeriodStart = start
	}
	if end != nil {
		sub.CurrentPeriodEnd = end
	}
}

func (s *Service) publish(ctx context.Context, eventType billingdomain.EventType, sub *domain.UserSubscription) {
	msg := domain.BillingEventMessage{
		Event:          string(eventType),
		Provider:       s.provider.Name(),
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		PlanID:         sub.PlanID,
		Status:         sub.Status,
		OccurredAt:     s.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.publisher.Publish(ctx, routingKeyPrefix+string(eventType), msg); err != nil {
		logrus.WithError(err).WithField("subscription_id", sub.ID).Warn("Erro ao publicar evento de cobrança")
	}
}

func toSubscriptionStatus(status string, fallback domain.SubscriptionStatus) domain.SubscriptionStatus {
	switch status {
	case billingdomain.StatusActive:
		return domain.SubscriptionActive
	case billingdomain.StatusTrialing:
		return domain.SubscriptionTrialing
	case billingdomain.StatusPastDue:
		return domain.SubscriptionPastDue
	case billingdomain.StatusPaused:
		return domain.SubscriptionPaused
	case billingdomain.StatusCanceled:
		return domain.SubscriptionCanceled
	case billingdomain.StatusPending:
		return domain.SubscriptionPending
	default:
		return fallback
	}
}

func remoteStatus(remote *billingdomain.Subscription) string {
	if remote == nil {
		return ""
	}
	return remote.Status
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
