package mercadopago

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/pkg/errors"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

const Name = "mercadopago"

type Provider struct {
	client        preapproval.Client
	webhookSecret string
	now           func() time.Time
}

func New(cfg config.MercadoPago) (*Provider, error) {
	client, err := newPreapprovalClient(cfg.BaseURL, cfg.AccessToken)
	if err != nil {
		return nil, err
	}

	return &Provider{
		client:        client,
		webhookSecret: cfg.WebhookSecret,
		now:           time.Now,
	}, nil
}

func (p *Provider) Name() string {
	return Name
}

func (p *Provider) CreateCheckout(ctx context.Context, req billingdomain.CheckoutRequest) (*billingdomain.CheckoutSession, error) {
	start := p.now().UTC()
	body := preapproval.Request{
		Reason:            fmt.Sprintf("Assinatura %s - Ads Manager AI", req.PlanName),
		ExternalReference: billingdomain.ExternalReference(req.UserID, req.PlanID),
		PayerEmail:        req.CustomerEmail,
		BackURL:           req.Origin + "/subscription/success",
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: float64(req.PriceCents) / 100,
			CurrencyID:        "BRL",
			StartDate:         &start,
		},
		Status: preapprovalPending,
	}

	resp, err := p.client.Create(ctx, body)
	if err != nil {
		return nil, errors.Wrap(apiError(err, "create"), "erro ao criar assinatura no Mercado Pago")
	}

	return &billingdomain.CheckoutSession{
		URL:            resp.InitPoint,
		Reference:      resp.ID,
		SubscriptionID: resp.ID,
	}, nil
}

// LookupCheckout trata a preapproval como o próprio checkout.
func (p *Provider) LookupCheckout(ctx context.Context, reference string) (*billingdomain.Subscription, error) {
	sub, err := p.GetSubscription(ctx, reference)
	if err != nil {
		return nil, err
	}

	if sub.Status == billingdomain.StatusPending {
		return nil, nil
	}

	return sub, nil
}

func (p *Provider) GetSubscription(ctx context.Context, subscriptionID string) (*billingdomain.Subscription, error) {
	resp, err := p.client.Get(ctx, subscriptionID)
	if err != nil {
		return nil, errors.Wrap(apiError(err, "get"), "erro ao consultar assinatura no Mercado Pago")
	}

	return toSubscription(resp), nil
}

func (p *Provider) CancelSubscription(ctx context.Context, subscriptionID string) error {
	return p.updateStatus(ctx, subscriptionID, preapprovalCancelled)
}

// PauseSubscription e ResumeSubscription completam o ciclo da preapproval.
func (p *Provider) PauseSubscription(ctx context.Context, subscriptionID string) error {
	return p.updateStatus(ctx, subscriptionID, preapprovalPaused)
}

func (p *Provider) ResumeSubscription(ctx context.Context, subscriptionID string) error {
	return p.updateStatus(ctx, subscriptionID, preapprovalAuthorized)
}

func (p *Provider) updateStatus(ctx context.Context, subscriptionID, status string) error {
	if _, err := p.client.Update(ctx, subscriptionID, preapproval.UpdateRequest{Status: status}); err != nil {
		return errors.Wrapf(apiError(err, "update"), "erro ao alterar assinatura no Mercado Pago para %s", status)
	}
	return nil
}

func toSubscription(resp *preapproval.Response) *billingdomain.Subscription {
	sub := &billingdomain.Subscription{
		ID:                resp.ID,
		Status:            mapStatus(resp.Status),
		ExternalReference: resp.ExternalReference,
	}
	if resp.PayerID > 0 {
		sub.CustomerID = strconv.FormatInt(resp.PayerID, 10)
	}
	if uid, pid, ok := billingdomain.ParseExternalReference(resp.ExternalReference); ok {
		sub.UserID, sub.PlanID = uid, pid
	}
	if !resp.NextPaymentDate.IsZero() {
		end := resp.NextPaymentDate.UTC()
		start := end.AddDate(0, -1, 0)
		sub.PeriodStart, sub.PeriodEnd = &start, &end
	}

	return sub
}

func mapStatus(status string) string {
	switch status {
	case preapprovalAuthorized:
		return billingdomain.StatusActive
	case preapprovalPaused:
		return billingdomain.StatusPaused
	case preapprovalCancelled:
		return billingdomain.StatusCanceled
	default:
		return billingdomain.StatusPending
	}
}
