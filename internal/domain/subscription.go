package domain

import "time"

type SubscriptionPlan struct {
	ID                    int       `json:"id"`
	Name                  string    `json:"name"`
	Description           *string   `json:"description,omitempty"`
	PriceMonthly          int       `json:"priceMonthly"`
	MaxCampaigns          int       `json:"maxCampaigns"`
	MaxAdsPerCampaign     int       `json:"maxAdsPerCampaign"`
	AIGenerationsPerMonth int       `json:"aiGenerationsPerMonth"`
	Features              []string  `json:"features"`
	Active                bool      `json:"active"`
	CreatedAt             time.Time `json:"createdAt"`
}

type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionPaused   SubscriptionStatus = "paused"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionFailed   SubscriptionStatus = "failed"
)

type UserSubscription struct {
	ID                     int                `json:"id"`
	UserID                 int                `json:"userId"`
	PlanID                 int                `json:"planId"`
	Provider               string             `json:"provider"`
	ExternalCustomerID     *string            `json:"externalCustomerId,omitempty"`
	ExternalSubscriptionID *string            `json:"externalSubscriptionId,omitempty"`
	CheckoutReference      *string            `json:"-"`
	Status                 SubscriptionStatus `json:"status"`
	CurrentPeriodStart     *time.Time         `json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd       *time.Time         `json:"currentPeriodEnd,omitempty"`
	CancelAtPeriodEnd      bool               `json:"cancelAtPeriodEnd"`
	AIGenerationsUsed      int                `json:"aiGenerationsUsed"`
	CreatedAt              time.Time          `json:"createdAt"`
	UpdatedAt              time.Time          `json:"updatedAt"`
}

// CurrentSubscription é a assinatura do usuário junto com o plano contratado.
type CurrentSubscription struct {
	*UserSubscription
	Plan *SubscriptionPlan `json:"plan"`
}

type AIDenyReason string

const (
	ReasonNoSubscription       AIDenyReason = "no_subscription"
	ReasonInvalidPlan          AIDenyReason = "invalid_plan"
	ReasonInactiveSubscription AIDenyReason = "inactive_subscription"
	ReasonLimitReached         AIDenyReason = "limit_reached"
)

type CanUseAIResponse struct {
	CanUse bool         `json:"canUse"`
	Reason AIDenyReason `json:"reason,omitempty"`
	Used   *int         `json:"used,omitempty"`
	Limit  *int         `json:"limit,omitempty"`
}

type CheckoutRequest struct {
	PlanID int    `json:"planId"`
	Origin string `json:"-"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

// BillingEventMessage é publicado na fila após cada webhook reconciliado.
type BillingEventMessage struct {
	Event          string             `json:"event"`
	Provider       string             `json:"provider"`
	SubscriptionID int                `json:"subscriptionId"`
	UserID         int                `json:"userId"`
	PlanID         int                `json:"planId"`
	Status         SubscriptionStatus `json:"status"`
	OccurredAt     time.Time          `json:"occurredAt"`
}
