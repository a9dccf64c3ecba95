package stripebilling

import (
	"context"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const Name = "stripe"

type Provider struct {
	sc            *client.API
	webhookSecret string
}

func New(cfg config.Stripe) *Provider {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)

	return &Provider{sc: sc, webhookSecret: cfg.WebhookSecret}
}

// NewWithBackends permite apontar o SDK para outro endpoint.
func NewWithBackends(cfg config.Stripe, backends *stripe.Backends) *Provider {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, backends)

	return &Provider{sc: sc, webhookSecret: cfg.WebhookSecret}
}

func (p *Provider) Name() string {
	return Name
}

func (p *Provider) CreateCheckout(ctx context.Context, req billingdomain.CheckoutRequest) (*billingdomain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("brl"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(fmt.Sprintf("Plano %s", req.PlanName)),
					Description: stripe.String(fmt.Sprintf("Assinatura mensal do plano %s", req.PlanName)),
				},
				UnitAmount: stripe.Int64(int64(req.PriceCents)),
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		CustomerEmail:       stripe.String(req.CustomerEmail),
		ClientReferenceID:   stripe.String(strconv.Itoa(req.UserID)),
		SuccessURL:          stripe.String(req.Origin + "/subscription/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:           stripe.String(req.Origin + "/subscription"),
		AllowPromotionCodes: stripe.Bool(true),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"user_id": strconv.Itoa(req.UserID),
				"plan_id": strconv.Itoa(req.PlanID),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("user_id", strconv.Itoa(req.UserID))
	params.AddMetadata("plan_id", strconv.Itoa(req.PlanID))
	params.AddMetadata("customer_email", req.CustomerEmail)
	params.AddMetadata("customer_name", req.CustomerName)
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	sess, err := p.sc.CheckoutSessions.New(params)
	if err != nil {
		logStripeError("checkout", err)
		return nil, errors.Wrap(err, "erro ao criar sessão de checkout no Stripe")
	}

	return &billingdomain.CheckoutSession{URL: sess.URL, Reference: sess.ID}, nil
}

func (p *Provider) LookupCheckout(ctx context.Context, reference string) (*billingdomain.Subscription, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("subscription")

	sess, err := p.sc.CheckoutSessions.Get(reference, params)
	if err != nil {
		logStripeError("checkout_lookup", err)
		return nil, errors.Wrap(err, "erro ao consultar sessão de checkout no Stripe")
	}

	if sess.Status != stripe.CheckoutSessionStatusComplete || sess.Subscription == nil {
		return nil, nil
	}

	sub := toSubscription(sess.Subscription)
	fillReference(sub, sess.Metadata, sess.ClientReferenceID)

	return sub, nil
}

func (p *Provider) GetSubscription(ctx context.Context, subscriptionID string) (*billingdomain.Subscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := p.sc.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		logStripeError("subscription_get", err)
		return nil, errors.Wrap(err, "erro ao consultar assinatura no Stripe")
	}

	return toSubscription(sub), nil
}

// CancelSubscription agenda o cancelamento para o fim do período atual.
func (p *Provider) CancelSubscription(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(true)}
	params.Context = ctx

	if _, err := p.sc.Subscriptions.Update(subscriptionID, params); err != nil {
		logStripeError("subscription_cancel", err)
		return errors.Wrap(err, "erro ao cancelar assinatura no Stripe")
	}

	return nil
}

func toSubscription(sub *stripe.Subscription) *billingdomain.Subscription {
	out := &billingdomain.Subscription{
		ID:                sub.ID,
		Status:            mapStatus(sub.Status),
		PeriodStart:       billingdomain.UnixTime(sub.CurrentPeriodStart),
		PeriodEnd:         billingdomain.UnixTime(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	fillReference(out, sub.Metadata, "")

	return out
}

func fillReference(sub *billingdomain.Subscription, metadata map[string]string, clientReferenceID string) {
	if uid, err := strconv.Atoi(metadata["user_id"]); err == nil && sub.UserID == 0 {
		sub.UserID = uid
	}
	if pid, err := strconv.Atoi(metadata["plan_id"]); err == nil && sub.PlanID == 0 {
		sub.PlanID = pid
	}
	if sub.UserID == 0 && clientReferenceID != "" {
		if uid, err := strconv.Atoi(clientReferenceID); err == nil {
			sub.UserID = uid
		}
	}
	if sub.UserID > 0 && sub.PlanID > 0 {
		sub.ExternalReference = billingdomain.ExternalReference(sub.UserID, sub.PlanID)
	}
}

func mapStatus(status stripe.SubscriptionStatus) string {
	switch status {
	case stripe.SubscriptionStatusActive:
		return billingdomain.StatusActive
	case stripe.SubscriptionStatusTrialing:
		return billingdomain.StatusTrialing
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return billingdomain.StatusPastDue
	case stripe.SubscriptionStatusPaused:
		return billingdomain.StatusPaused
	case stripe.SubscriptionStatusCanceled, stripe.SubscriptionStatusIncompleteExpired:
		return billingdomain.StatusCanceled
	default:
		return billingdomain.StatusPending
	}
}

func logStripeError(op string, err error) {
	var se *stripe.Error
	if errors.As(err, &se) {
		logrus.WithFields(logrus.Fields{
			"op":     op,
			"status": se.HTTPStatusCode,
			"code":   se.Code,
		}).Error("stripe: " + se.Msg)
		return
	}
	logrus.WithError(err).WithField("op", op).Error("stripe: falha na chamada")
}
