package billingdomain

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventSubscriptionAuthorized EventType = "subscription_authorized"
	EventSubscriptionPaused     EventType = "subscription_paused"
	EventSubscriptionCancelled  EventType = "subscription_cancelled"
	EventPayment                EventType = "payment"
)

// Status normalizado entre os provedores.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusTrialing = "trialing"
	StatusPastDue  = "past_due"
	StatusPaused   = "paused"
	StatusCanceled = "canceled"
)

type CheckoutRequest struct {
	UserID        int
	PlanID        int
	PlanName      string
	PriceCents    int
	CustomerEmail string
	CustomerName  string
	Origin        string
	// IdempotencyKey evita checkouts duplicados quando a requisição é repetida.
	IdempotencyKey string
}

type CheckoutSession struct {
	URL string
	// Reference identifica o checkout no provedor (sessão do Stripe, preapproval do Mercado Pago).
	Reference string
	// SubscriptionID vem preenchido quando o provedor já cria a assinatura no checkout.
	SubscriptionID string
}

type Subscription struct {
	ID                string
	Status            string
	CustomerID        string
	ExternalReference string
	UserID            int
	PlanID            int
	PeriodStart       *time.Time
	PeriodEnd         *time.Time
	CancelAtPeriodEnd bool
}

// WebhookEvent é a classificação de uma notificação do provedor, sem efeito colateral.
type WebhookEvent struct {
	ID                string
	Type              EventType
	SubscriptionID    string
	PaymentID         string
	CustomerID        string
	CheckoutReference string
	Status            string
	UserID            int
	PlanID            int
	PeriodStart       *time.Time
	PeriodEnd         *time.Time
}

// ExternalReference monta a referência user_{uid}_plan_{pid} usada nos checkouts.
func ExternalReference(userID, planID int) string {
	return fmt.Sprintf("user_%d_plan_%d", userID, planID)
}

func ParseExternalReference(ref string) (userID, planID int, ok bool) {
	if _, err := fmt.Sscanf(ref, "user_%d_plan_%d", &userID, &planID); err != nil {
		return 0, 0, false
	}
	return userID, planID, userID > 0 && planID > 0
}

func UnixTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
