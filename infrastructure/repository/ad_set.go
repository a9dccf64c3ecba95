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

const adSetsTable = "ad_sets"

var adSetColumns = []string{
	"id", "campaign_id", "meta_ad_set_id", "name", "daily_budget", "lifetime_budget", "targeting",
	"start_time", "end_time", "status", "sync_status", "sync_error", "created_at", "updated_at",
}

type AdSetRepository interface {
	GetByID(ctx context.Context, adSetID int) (*domain.AdSet, error)
	Create(ctx context.Context, adSet *domain.AdSet) (*domain.AdSet, error)
	UpdateSync(ctx context.Context, adSetID int, upd domain.SyncUpdate) error
	ListPendingSync(ctx context.Context, before time.Time, limit int) ([]*domain.AdSet, error)
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{conn: conn}
}

func (r *adSetRepository) GetByID(ctx context.Context, adSetID int) (*domain.AdSet, error) {
	query, args, err := squirrel.
		Select(adSetColumns...).
		From(adSetsTable).
		Where(squirrel.Eq{"id": adSetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	adSet, err := scanAdSet(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conjunto de anúncios: %w", err)
	}

	return adSet, nil
}

func (r *adSetRepository) Create(ctx context.Context, adSet *domain.AdSet) (*domain.AdSet, error) {
	query, args, err := squirrel.
		Insert(adSetsTable).
		Columns("campaign_id", "meta_ad_set_id", "name", "daily_budget", "lifetime_budget", "targeting",
			"start_time", "end_time", "status", "sync_status", "sync_error").
		Values(adSet.CampaignID, adSet.MetaAdSetID, adSet.Name, adSet.DailyBudget, adSet.LifetimeBudget, adSet.Targeting,
			adSet.StartTime, adSet.EndTime, string(adSet.Status), string(adSet.SyncStatus), adSet.SyncError).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&adSet.ID, &adSet.CreatedAt, &adSet.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir conjunto de anúncios: %w", err)
	}

	return adSet, nil
}

func (r *adSetRepository) UpdateSync(ctx context.Context, adSetID int, upd domain.SyncUpdate) error {
	return updateSync(ctx, r.conn, adSetsTable, "meta_ad_set_id", adSetID, upd)
}

func (r *adSetRepository) ListPendingSync(ctx context.Context, before time.Time, limit int) ([]*domain.AdSet, error) {
	query, args, err := squirrel.
		Select(adSetColumns...).
		From(adSetsTable).
		Where(pendingSyncFilter("meta_ad_set_id", before)).
		OrderBy("updated_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar conjuntos pendentes: %w", err)
	}
	defer rows.Close()

	adSets := make([]*domain.AdSet, 0)
	for rows.Next() {
		adSet, err := scanAdSet(rows)
		if err != nil {
			return nil, err
		}
		adSets = append(adSets, adSet)
	}

	return adSets, rows.Err()
}

func scanAdSet(row rowScanner) (*domain.AdSet, error) {
	var (
		s          domain.AdSet
		status     string
		syncStatus string
	)

	err := row.Scan(
		&s.ID,
		&s.CampaignID,
		&s.MetaAdSetID,
		&s.Name,
		&s.DailyBudget,
		&s.LifetimeBudget,
		&s.Targeting,
		&s.StartTime,
		&s.EndTime,
		&status,
		&syncStatus,
		&s.SyncError,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Status = domain.Status(status)
	s.SyncStatus = domain.SyncStatus(syncStatus)
	return &s, nil
}
