package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const subscriptionsTable = "user_subscriptions"

var subscriptionColumns = []string{
	"id", "user_id", "plan_id", "provider", "external_customer_id", "external_subscription_id",
	"checkout_reference", "status", "current_period_start", "current_period_end",
	"cancel_at_period_end", "ai_generations_used", "created_at", "updated_at",
}

type SubscriptionRepository interface {
	// GetCurrentByUser ignora checkouts pendentes ou que falharam.
	GetCurrentByUser(ctx context.Context, userID int) (*domain.UserSubscription, error)
	GetByExternalID(ctx context.Context, externalSubscriptionID string) (*domain.UserSubscription, error)
	GetByCheckoutReference(ctx context.Context, reference string) (*domain.UserSubscription, error)
	GetPendingByUserPlan(ctx context.Context, userID, planID int) (*domain.UserSubscription, error)
	Create(ctx context.Context, sub *domain.UserSubscription) (*domain.UserSubscription, error)
	Update(ctx context.Context, sub *domain.UserSubscription) error
	IncrementAIGenerations(ctx context.Context, subscriptionID, amount int) error
	ListPendingOlderThan(ctx context.Context, before time.Time, limit int) ([]*domain.UserSubscription, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{conn: conn}
}

func (r *subscriptionRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(subscriptionColumns...).
		From(subscriptionsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *subscriptionRepository) GetCurrentByUser(ctx context.Context, userID int) (*domain.UserSubscription, error) {
	return r.getOne(ctx, r.selectBuilder().
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"status": []string{string(domain.SubscriptionPending), string(domain.SubscriptionFailed)}}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1))
}

func (r *subscriptionRepository) GetByExternalID(ctx context.Context, externalSubscriptionID string) (*domain.UserSubscription, error) {
	return r.getOne(ctx, r.selectBuilder().
		Where(squirrel.Eq{"external_subscription_id": externalSubscriptionID}).
		Limit(1))
}

func (r *subscriptionRepository) GetByCheckoutReference(ctx context.Context, reference string) (*domain.UserSubscription, error) {
	return r.getOne(ctx, r.selectBuilder().
		Where(squirrel.Eq{"checkout_reference": reference}).
		OrderBy("id DESC").
		Limit(1))
}

func (r *subscriptionRepository) GetPendingByUserPlan(ctx context.Context, userID, planID int) (*domain.UserSubscription, error) {
	return r.getOne(ctx, r.selectBuilder().
		Where(squirrel.Eq{"user_id": userID, "plan_id": planID, "status": string(domain.SubscriptionPending)}).
		OrderBy("id DESC").
		Limit(1))
}

func (r *subscriptionRepository) getOne(ctx context.Context, builder squirrel.SelectBuilder) (*domain.UserSubscription, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	sub, err := scanSubscription(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar assinatura: %w", err)
	}

	return sub, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.UserSubscription) (*domain.UserSubscription, error) {
	query, args, err := squirrel.
		Insert(subscriptionsTable).
		Columns("user_id", "plan_id", "provider", "external_customer_id", "external_subscription_id",
			"checkout_reference", "status", "current_period_start", "current_period_end",
			"cancel_at_period_end", "ai_generations_used").
		Values(sub.UserID, sub.PlanID, sub.Provider, sub.ExternalCustomerID, sub.ExternalSubscriptionID,
			sub.CheckoutReference, string(sub.Status), sub.CurrentPeriodStart, sub.CurrentPeriodEnd,
			boolToInt(sub.CancelAtPeriodEnd), sub.AIGenerationsUsed).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir assinatura: %w", err)
	}

	return sub, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *domain.UserSubscription) error {
	query, args, err := squirrel.
		Update(subscriptionsTable).
		Set("plan_id", sub.PlanID).
		Set("external_customer_id", sub.ExternalCustomerID).
		Set("external_subscription_id", sub.ExternalSubscriptionID).
		Set("checkout_reference", sub.CheckoutReference).
		Set("status", string(sub.Status)).
		Set("current_period_start", sub.CurrentPeriodStart).
		Set("current_period_end", sub.CurrentPeriodEnd).
		Set("cancel_at_period_end", boolToInt(sub.CancelAtPeriodEnd)).
		Set("ai_generations_used", sub.AIGenerationsUsed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sub.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar assinatura: %w", err)
	}

	return nil
}

// IncrementAIGenerations soma no próprio banco para não perder incrementos concorrentes.
func (r *subscriptionRepository) IncrementAIGenerations(ctx context.Context, subscriptionID, amount int) error {
	query, args, err := squirrel.
		Update(subscriptionsTable).
		Set("ai_generations_used", squirrel.Expr("ai_generations_used + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": subscriptionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao incrementar gerações de IA: %w", err)
	}

	return nil
}

func (r *subscriptionRepository) ListPendingOlderThan(ctx context.Context, before time.Time, limit int) ([]*domain.UserSubscription, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"status": string(domain.SubscriptionPending)}).
		Where(squirrel.Lt{"created_at": before}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar assinaturas pendentes: %w", err)
	}
	defer rows.Close()

	subs := make([]*domain.UserSubscription, 0)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func scanSubscription(row rowScanner) (*domain.UserSubscription, error) {
	var (
		sub               domain.UserSubscription
		status            string
		cancelAtPeriodEnd int
	)

	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.PlanID,
		&sub.Provider,
		&sub.ExternalCustomerID,
		&sub.ExternalSubscriptionID,
		&sub.CheckoutReference,
		&status,
		&sub.CurrentPeriodStart,
		&sub.CurrentPeriodEnd,
		&cancelAtPeriodEnd,
		&sub.AIGenerationsUsed,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Status = domain.SubscriptionStatus(status)
	sub.CancelAtPeriodEnd = cancelAtPeriodEnd == 1

	return &sub, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
