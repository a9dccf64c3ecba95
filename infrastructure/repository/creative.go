package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const creativesTable = "creatives"

var creativeColumns = []string{
	"id", "user_id", "meta_creative_id", "name", "title", "body", "call_to_action",
	"link_url", "image_url", "video_url", "generated_by_ai", "created_at", "updated_at",
}

type CreativeRepository interface {
	GetByID(ctx context.Context, creativeID int) (*domain.Creative, error)
	SetMetaCreativeID(ctx context.Context, creativeID int, metaCreativeID string) error
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{conn: conn}
}

func (r *creativeRepository) GetByID(ctx context.Context, creativeID int) (*domain.Creative, error) {
	query, args, err := squirrel.
		Select(creativeColumns...).
		From(creativesTable).
		Where(squirrel.Eq{"id": creativeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	creative, err := scanCreative(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar criativo: %w", err)
	}

	return creative, nil
}

func (r *creativeRepository) SetMetaCreativeID(ctx context.Context, creativeID int, metaCreativeID string) error {
	query, args, err := squirrel.
		Update(creativesTable).
		Set("meta_creative_id", metaCreativeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": creativeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar criativo: %w", err)
	}

	return nil
}

func insertCreative(ctx context.Context, q postgres.Queryer, creative *domain.Creative) error {
	query, args, err := squirrel.
		Insert(creativesTable).
		Columns("user_id", "meta_creative_id", "name", "title", "body", "call_to_action",
			"link_url", "image_url", "video_url", "generated_by_ai").
		Values(creative.UserID, creative.MetaCreativeID, creative.Name, creative.Title, creative.Body, creative.CallToAction,
			creative.LinkURL, creative.ImageURL, creative.VideoURL, boolToInt(creative.GeneratedByAI)).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&creative.ID, &creative.CreatedAt, &creative.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao inserir criativo: %w", err)
	}

	return nil
}

func scanCreative(row rowScanner) (*domain.Creative, error) {
	var (
		c             domain.Creative
		generatedByAI int
	)

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.MetaCreativeID,
		&c.Name,
		&c.Title,
		&c.Body,
		&c.CallToAction,
		&c.LinkURL,
		&c.ImageURL,
		&c.VideoURL,
		&generatedByAI,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.GeneratedByAI = generatedByAI == 1
	return &c, nil
}
