package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const plansTable = "subscription_plans"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var planColumns = []string{
	"id", "name", "description", "price_monthly", "max_campaigns", "max_ads_per_campaign",
	"ai_generations_per_month", "features", "active", "created_at",
}

type PlanRepository interface {
	ListActivePlans(ctx context.Context) ([]*domain.SubscriptionPlan, error)
	GetPlanByID(ctx context.Context, planID int) (*domain.SubscriptionPlan, error)
}

type planRepository struct {
	conn *postgres.Connection
}

func NewPlanRepository(conn *postgres.Connection) PlanRepository {
	return &planRepository{conn: conn}
}

func (r *planRepository) ListActivePlans(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	query, args, err := squirrel.
		Select(planColumns...).
		From(plansTable).
		Where(squirrel.Eq{"active": 1}).
		OrderBy("price_monthly ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar planos: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.SubscriptionPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

func (r *planRepository) GetPlanByID(ctx context.Context, planID int) (*domain.SubscriptionPlan, error) {
	query, args, err := squirrel.
		Select(planColumns...).
		From(plansTable).
		Where(squirrel.Eq{"id": planID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	plan, err := scanPlan(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return plan, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*domain.SubscriptionPlan, error) {
	var (
		plan     domain.SubscriptionPlan
		features sql.NullString
		active   int
	)

	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.PriceMonthly,
		&plan.MaxCampaigns,
		&plan.MaxAdsPerCampaign,
		&plan.AIGenerationsPerMonth,
		&features,
		&active,
		&plan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	plan.Active = active == 1
	plan.Features = []string{}
	if features.Valid && features.String != "" {
		if err := json.UnmarshalFromString(features.String, &plan.Features); err != nil {
			logrus.WithField("plan_id", plan.ID).Warn("Features do plano em formato inválido")
		}
	}

	return &plan, nil
}
