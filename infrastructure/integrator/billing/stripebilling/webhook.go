package stripebilling

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
)

const signatureHeader = "Stripe-Signature"

// ParseWebhook valida a assinatura e classifica o evento.
func (p *Provider) ParseWebhook(_ context.Context, payload []byte, headers http.Header) (*billingdomain.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, headers.Get(signatureHeader), p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		logrus.WithError(err).Warn("stripe: assinatura de webhook inválida")
		return nil, billingdomain.ErrInvalidSignature
	}

	switch string(event.Type) {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, errors.Wrap(billingdomain.ErrInvalidPayload, err.Error())
		}
		if sess.Mode != stripe.CheckoutSessionModeSubscription || sess.Subscription == nil {
			return nil, nil
		}

		sub := &billingdomain.Subscription{}
		fillReference(sub, sess.Metadata, sess.ClientReferenceID)

		out := &billingdomain.WebhookEvent{
			ID:                event.ID,
			Type:              billingdomain.EventSubscriptionAuthorized,
			SubscriptionID:    sess.Subscription.ID,
			CheckoutReference: sess.ID,
			Status:            billingdomain.StatusActive,
			UserID:            sub.UserID,
			PlanID:            sub.PlanID,
		}
		if sess.Customer != nil {
			out.CustomerID = sess.Customer.ID
		}
		return out, nil

	case "customer.subscription.updated", "customer.subscription.deleted":
		var raw stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &raw); err != nil {
			return nil, errors.Wrap(billingdomain.ErrInvalidPayload, err.Error())
		}

		sub := toSubscription(&raw)
		out := &billingdomain.WebhookEvent{
			ID:             event.ID,
			SubscriptionID: sub.ID,
			CustomerID:     sub.CustomerID,
			Status:         sub.Status,
			UserID:         sub.UserID,
			PlanID:         sub.PlanID,
			PeriodStart:    sub.PeriodStart,
			PeriodEnd:      sub.PeriodEnd,
		}

		switch {
		case string(event.Type) == "customer.subscription.deleted" || sub.Status == billingdomain.StatusCanceled:
			out.Type = billingdomain.EventSubscriptionCancelled
			out.Status = billingdomain.StatusCanceled
		case sub.Status == billingdomain.StatusPaused:
			out.Type = billingdomain.EventSubscriptionPaused
		case sub.Status == billingdomain.StatusActive || sub.Status == billingdomain.StatusTrialing:
			out.Type = billingdomain.EventSubscriptionAuthorized
		default:
			return nil, nil
		}
		return out, nil

	case "invoice.paid", "invoice.payment_succeeded":
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return nil, errors.Wrap(billingdomain.ErrInvalidPayload, err.Error())
		}
		if inv.Subscription == nil {
			return nil, nil
		}

		out := &billingdomain.WebhookEvent{
			ID:             event.ID,
			Type:           billingdomain.EventPayment,
			SubscriptionID: inv.Subscription.ID,
			PaymentID:      inv.ID,
			Status:         billingdomain.StatusActive,
		}
		if inv.Lines != nil && len(inv.Lines.Data) > 0 && inv.Lines.Data[0].Period != nil {
			out.PeriodStart = billingdomain.UnixTime(inv.Lines.Data[0].Period.Start)
			out.PeriodEnd = billingdomain.UnixTime(inv.Lines.Data[0].Period.End)
		}
		return out, nil

	default:
		logrus.WithField("type", event.Type).Debug("stripe: evento de webhook ignorado")
		return nil, nil
	}
}
