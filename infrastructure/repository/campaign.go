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

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id", "user_id", "meta_account_id", "meta_campaign_id", "name", "objective",
	"status", "sync_status", "sync_error", "created_at", "updated_at",
}

type CampaignRepository interface {
	ListByUser(ctx context.Context, userID int) ([]*domain.Campaign, error)
	GetByID(ctx context.Context, campaignID int) (*domain.Campaign, error)
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	UpdateSync(ctx context.Context, campaignID int, upd domain.SyncUpdate) error
	CountActiveByUser(ctx context.Context, userID int) (int, error)
	ListPendingSync(ctx context.Context, before time.Time, limit int) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{conn: conn}
}

func (r *campaignRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return r.list(ctx, query, args)
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID int) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns("user_id", "meta_account_id", "meta_campaign_id", "name", "objective", "status", "sync_status", "sync_error").
		Values(campaign.UserID, campaign.MetaAccountID, campaign.MetaCampaignID, campaign.Name, campaign.Objective,
			string(campaign.Status), string(campaign.SyncStatus), campaign.SyncError).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) UpdateSync(ctx context.Context, campaignID int, upd domain.SyncUpdate) error {
	return updateSync(ctx, r.conn, campaignsTable, "meta_campaign_id", campaignID, upd)
}

// CountActiveByUser conta as campanhas que ocupam o limite do plano (todas exceto as excluídas).
func (r *campaignRepository) CountActiveByUser(ctx context.Context, userID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"status": string(domain.StatusDeleted)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar campanhas: %w", err)
	}

	return count, nil
}

func (r *campaignRepository) ListPendingSync(ctx context.Context, before time.Time, limit int) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(pendingSyncFilter("meta_campaign_id", before)).
		OrderBy("updated_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return r.list(ctx, query, args)
}

func (r *campaignRepository) list(ctx context.Context, query string, args []any) ([]*domain.Campaign, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		c          domain.Campaign
		status     string
		syncStatus string
	)

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.MetaAccountID,
		&c.MetaCampaignID,
		&c.Name,
		&c.Objective,
		&status,
		&syncStatus,
		&c.SyncError,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = domain.Status(status)
	c.SyncStatus = domain.SyncStatus(syncStatus)
	return &c, nil
}
