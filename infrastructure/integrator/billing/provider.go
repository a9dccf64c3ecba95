package billing

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/mercadopago"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/stripebilling"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

var ErrInvalidSignature = billingdomain.ErrInvalidSignature

// Provider é a interface única de cobrança; a implementação vem da configuração.
type Provider interface {
	Name() string
	CreateCheckout(ctx context.Context, req billingdomain.CheckoutRequest) (*billingdomain.CheckoutSession, error)
	// LookupCheckout devolve a assinatura criada pelo checkout, ou nil se ainda não foi concluído.
	LookupCheckout(ctx context.Context, reference string) (*billingdomain.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*billingdomain.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	// ParseWebhook devolve nil para eventos que não interessam.
	ParseWebhook(ctx context.Context, payload []byte, headers http.Header) (*billingdomain.WebhookEvent, error)
}

var (
	_ Provider = (*stripebilling.Provider)(nil)
	_ Provider = (*mercadopago.Provider)(nil)
)

func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Billing.Provider {
	case config.BillingProviderStripe:
		if cfg.Stripe.SecretKey == "" {
			return nil, errors.New("STRIPE_SECRET_KEY não configurada")
		}
		return stripebilling.New(cfg.Stripe), nil
	case config.BillingProviderMercadoPago:
		if cfg.MercadoPago.AccessToken == "" {
			return nil, errors.New("MERCADOPAGO_ACCESS_TOKEN não configurado")
		}
		p, err := mercadopago.New(cfg.MercadoPago)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, errors.Errorf("provedor de pagamento desconhecido: %q", cfg.Billing.Provider)
	}
}
