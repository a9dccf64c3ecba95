package subscribing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// ReconcilePending revisita checkouts pendentes há mais de olderThan.
// Os concluídos no provedor são ativados; os demais viram failed e ainda podem
// ser recuperados por um webhook posterior.
// Devolve quantas linhas mudaram de estado.
func (s *Service) ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	pending, err := s.subRepo.ListPendingOlderThan(ctx, s.now().Add(-olderThan), limit)
	if err != nil {
		return 0, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}

	changed := 0
	for _, sub := range pending {
		if ctx.Err() != nil {
			return changed, ctx.Err()
		}

		log := logrus.WithFields(logrus.Fields{
			"subscription_id": sub.ID,
			"user_id":         sub.UserID,
		})

		if sub.CheckoutReference == nil {
			sub.Status = domain.SubscriptionFailed
		} else {
			remote, err := s.provider.LookupCheckout(ctx, *sub.CheckoutReference)
			if err != nil {
				log.WithError(err).Warn("Erro ao consultar checkout no provedor, tentando novamente no próximo ciclo")
				continue
			}

			if remote == nil || remote.Status == billingdomain.StatusPending {
				sub.Status = domain.SubscriptionFailed
			} else {
				sub.Status = toSubscriptionStatus(remote.Status, domain.SubscriptionActive)
				if remote.ID != "" {
					id := remote.ID
					sub.ExternalSubscriptionID = &id
				}
				if remote.CustomerID != "" {
					customer := remote.CustomerID
					sub.ExternalCustomerID = &customer
				}
				sub.CurrentPeriodStart = remote.PeriodStart
				sub.CurrentPeriodEnd = remote.PeriodEnd
				sub.CancelAtPeriodEnd = remote.CancelAtPeriodEnd
			}
		}

		if err := s.subRepo.Update(ctx, sub); err != nil {
			log.WithError(err).Error("Erro ao atualizar assinatura pendente")
			continue
		}

		log.WithField("status", sub.Status).Info("Checkout pendente reconciliado")
		changed++
	}

	return changed, nil
}
