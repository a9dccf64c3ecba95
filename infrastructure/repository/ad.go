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

const adsTable = "ads"

var adColumns = []string{
	"id", "ad_set_id", "creative_id", "meta_ad_id", "name", "status", "sync_status", "sync_error", "created_at", "updated_at",
}

type AdRepository interface {
	// CreateDraft grava o criativo e o anúncio na mesma transação.
	CreateDraft(ctx context.Context, creative *domain.Creative, ad *domain.Ad) (*domain.Ad, error)
	GetByID(ctx context.Context, adID int) (*domain.Ad, error)
	GetWithDetails(ctx context.Context, adID int) (*domain.AdWithDetails, error)
	ListWithDetailsByUser(ctx context.Context, userID int) ([]*domain.AdWithDetails, error)
	CountByCampaign(ctx context.Context, campaignID int) (int, error)
	UpdateSync(ctx context.Context, adID int, upd domain.SyncUpdate) error
	ListPendingSync(ctx context.Context, before time.Time, limit int) ([]*domain.Ad, error)
	// ListSyncable devolve anúncios não excluídos que já existem na Meta.
	ListSyncable(ctx context.Context) ([]*domain.AdWithDetails, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{conn: conn}
}

func (r *adRepository) CreateDraft(ctx context.Context, creative *domain.Creative, ad *domain.Ad) (*domain.Ad, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertCreative(ctx, tx, creative); err != nil {
			return err
		}

		ad.CreativeID = creative.ID

		query, args, err := squirrel.
			Insert(adsTable).
			Columns("ad_set_id", "creative_id", "meta_ad_id", "name", "status", "sync_status").
			Values(ad.AdSetID, ad.CreativeID, ad.MetaAdID, ad.Name, string(ad.Status), string(ad.SyncStatus)).
			Suffix("RETURNING id, created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao inserir anúncio: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ad, nil
}

func (r *adRepository) GetByID(ctx context.Context, adID int) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adColumns...).
		From(adsTable).
		Where(squirrel.Eq{"id": adID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	ad, err := scanAd(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anúncio: %w", err)
	}

	return ad, nil
}

func (r *adRepository) detailsBuilder() squirrel.SelectBuilder {
	columns := make([]string, 0, len(adColumns)+len(adSetColumns)+len(campaignColumns)+len(creativeColumns))
	columns = append(columns, prefixColumns("a", adColumns)...)
	columns = append(columns, prefixColumns("s", adSetColumns)...)
	columns = append(columns, prefixColumns("c", campaignColumns)...)
	columns = append(columns, prefixColumns("cr", creativeColumns)...)

	return squirrel.
		Select(columns...).
		From(adsTable + " a").
		Join(adSetsTable + " s ON s.id = a.ad_set_id").
		Join(campaignsTable + " c ON c.id = s.campaign_id").
		Join(creativesTable + " cr ON cr.id = a.creative_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *adRepository) GetWithDetails(ctx context.Context, adID int) (*domain.AdWithDetails, error) {
	query, args, err := r.detailsBuilder().
		Where(squirrel.Eq{"a.id": adID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	details, err := scanAdWithDetails(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anúncio: %w", err)
	}

	return details, nil
}

func (r *adRepository) ListWithDetailsByUser(ctx context.Context, userID int) ([]*domain.AdWithDetails, error) {
	query, args, err := r.detailsBuilder().
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("a.created_at DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return r.listDetails(ctx, query, args)
}

func (r *adRepository) ListSyncable(ctx context.Context) ([]*domain.AdWithDetails, error) {
	query, args, err := r.detailsBuilder().
		Where(squirrel.NotEq{"a.meta_ad_id": nil}).
		Where(squirrel.NotEq{"a.status": string(domain.StatusDeleted)}).
		OrderBy("a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return r.listDetails(ctx, query, args)
}

func (r *adRepository) listDetails(ctx context.Context, query string, args []any) ([]*domain.AdWithDetails, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anúncios: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.AdWithDetails, 0)
	for rows.Next() {
		details, err := scanAdWithDetails(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, details)
	}

	return ads, rows.Err()
}

// CountByCampaign conta os anúncios não excluídos de todos os conjuntos da campanha.
func (r *adRepository) CountByCampaign(ctx context.Context, campaignID int) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(adsTable + " a").
		Join(adSetsTable + " s ON s.id = a.ad_set_id").
		Where(squirrel.Eq{"s.campaign_id": campaignID}).
		Where(squirrel.NotEq{"a.status": string(domain.StatusDeleted)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar anúncios: %w", err)
	}

	return count, nil
}

func (r *adRepository) UpdateSync(ctx context.Context, adID int, upd domain.SyncUpdate) error {
	return updateSync(ctx, r.conn, adsTable, "meta_ad_id", adID, upd)
}

func (r *adRepository) ListPendingSync(ctx context.Context, before time.Time, limit int) ([]*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adColumns...).
		From(adsTable).
		Where(pendingSyncFilter("meta_ad_id", before)).
		OrderBy("updated_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anúncios pendentes: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}

	return ads, rows.Err()
}

func prefixColumns(alias string, columns []string) []string {
	prefixed := make([]string, len(columns))
	for i, c := range columns {
		prefixed[i] = alias + "." + c
	}
	return prefixed
}

func adScanTargets(a *domain.Ad, status, syncStatus *string) []any {
	return []any{&a.ID, &a.AdSetID, &a.CreativeID, &a.MetaAdID, &a.Name, status, syncStatus, &a.SyncError, &a.CreatedAt, &a.UpdatedAt}
}

func scanAd(row rowScanner) (*domain.Ad, error) {
	var (
		a                  domain.Ad
		status, syncStatus string
	)

	if err := row.Scan(adScanTargets(&a, &status, &syncStatus)...); err != nil {
		return nil, err
	}

	a.Status = domain.Status(status)
	a.SyncStatus = domain.SyncStatus(syncStatus)
	return &a, nil
}

func scanAdWithDetails(row rowScanner) (*domain.AdWithDetails, error) {
	var (
		d                            domain.AdWithDetails
		adStatus, adSync             string
		setStatus, setSync           string
		campaignStatus, campaignSync string
		generatedByAI                int
	)

	targets := adScanTargets(&d.Ad, &adStatus, &adSync)
	targets = append(targets,
		&d.AdSet.ID, &d.AdSet.CampaignID, &d.AdSet.MetaAdSetID, &d.AdSet.Name, &d.AdSet.DailyBudget,
		&d.AdSet.LifetimeBudget, &d.AdSet.Targeting, &d.AdSet.StartTime, &d.AdSet.EndTime,
		&setStatus, &setSync, &d.AdSet.SyncError, &d.AdSet.CreatedAt, &d.AdSet.UpdatedAt,
	)
	targets = append(targets,
		&d.Campaign.ID, &d.Campaign.UserID, &d.Campaign.MetaAccountID, &d.Campaign.MetaCampaignID,
		&d.Campaign.Name, &d.Campaign.Objective, &campaignStatus, &campaignSync, &d.Campaign.SyncError,
		&d.Campaign.CreatedAt, &d.Campaign.UpdatedAt,
	)
	targets = append(targets,
		&d.Creative.ID, &d.Creative.UserID, &d.Creative.MetaCreativeID, &d.Creative.Name, &d.Creative.Title,
		&d.Creative.Body, &d.Creative.CallToAction, &d.Creative.LinkURL, &d.Creative.ImageURL,
		&d.Creative.VideoURL, &generatedByAI, &d.Creative.CreatedAt, &d.Creative.UpdatedAt,
	)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	d.Ad.Status = domain.Status(adStatus)
	d.Ad.SyncStatus = domain.SyncStatus(adSync)
	d.AdSet.Status = domain.Status(setStatus)
	d.AdSet.SyncStatus = domain.SyncStatus(setSync)
	d.Campaign.Status = domain.Status(campaignStatus)
	d.Campaign.SyncStatus = domain.SyncStatus(campaignSync)
	d.Creative.GeneratedByAI = generatedByAI == 1

	return &d, nil
}
