package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const adMetricsTable = "ad_metrics"

type AdMetricRepository interface {
	// Upsert substitui o retrato do dia quando já existe um para (ad_id, date).
	Upsert(ctx context.Context, metric *domain.AdMetric) error
	ListByAd(ctx context.Context, adID int) ([]*domain.AdMetric, error)
}

type adMetricRepository struct {
	conn *postgres.Connection
}

func NewAdMetricRepository(conn *postgres.Connection) AdMetricRepository {
	return &adMetricRepository{conn: conn}
}

func (r *adMetricRepository) Upsert(ctx context.Context, metric *domain.AdMetric) error {
	query, args, err := squirrel.
		Insert(adMetricsTable).
		Columns("ad_id", "date", "impressions", "clicks", "spend", "reach", "conversions", "ctr", "cpc").
		Values(metric.AdID, metric.Date.Format("2006-01-02"), metric.Impressions, metric.Clicks, metric.Spend,
			metric.Reach, metric.Conversions, metric.CTR, metric.CPC).
		Suffix(`ON CONFLICT (ad_id, date) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			spend = EXCLUDED.spend,
			reach = EXCLUDED.reach,
			conversions = EXCLUDED.conversions,
			ctr = EXCLUDED.ctr,
			cpc = EXCLUDED.cpc`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar métricas do anúncio %d: %w", metric.AdID, err)
	}

	return nil
}

func (r *adMetricRepository) ListByAd(ctx context.Context, adID int) ([]*domain.AdMetric, error) {
	query, args, err := squirrel.
		Select("id", "ad_id", "date", "impressions", "clicks", "spend", "reach", "conversions", "ctr", "cpc", "created_at").
		From(adMetricsTable).
		Where(squirrel.Eq{"ad_id": adID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar métricas: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.AdMetric, 0)
	for rows.Next() {
		var m domain.AdMetric
		if err := rows.Scan(&m.ID, &m.AdID, &m.Date, &m.Impressions, &m.Clicks, &m.Spend,
			&m.Reach, &m.Conversions, &m.CTR, &m.CPC, &m.CreatedAt); err != nil {
			return nil, err
		}
		metrics = append(metrics, &m)
	}

	return metrics, rows.Err()
}
