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

const metaAccountsTable = "meta_accounts"

var metaAccountColumns = []string{
	"id", "user_id", "meta_user_id", "access_token", "token_expires_at", "ad_account_id",
	"ad_account_name", "business_manager_id", "active", "created_at", "updated_at",
}

type MetaAccountRepository interface {
	ListActiveByUser(ctx context.Context, userID int) ([]*domain.MetaAccount, error)
	GetByID(ctx context.Context, accountID int) (*domain.MetaAccount, error)
	Create(ctx context.Context, account *domain.MetaAccount) (*domain.MetaAccount, error)
	SetActive(ctx context.Context, accountID int, active bool) error
}

type metaAccountRepository struct {
	conn *postgres.Connection
}

func NewMetaAccountRepository(conn *postgres.Connection) MetaAccountRepository {
	return &metaAccountRepository{conn: conn}
}

func (r *metaAccountRepository) ListActiveByUser(ctx context.Context, userID int) ([]*domain.MetaAccount, error) {
	query, args, err := squirrel.
		Select(metaAccountColumns...).
		From(metaAccountsTable).
		Where(squirrel.Eq{"user_id": userID, "active": 1}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas Meta: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.MetaAccount, 0)
	for rows.Next() {
		account, err := scanMetaAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *metaAccountRepository) GetByID(ctx context.Context, accountID int) (*domain.MetaAccount, error) {
	query, args, err := squirrel.
		Select(metaAccountColumns...).
		From(metaAccountsTable).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	account, err := scanMetaAccount(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conta Meta: %w", err)
	}

	return account, nil
}

func (r *metaAccountRepository) Create(ctx context.Context, account *domain.MetaAccount) (*domain.MetaAccount, error) {
	query, args, err := squirrel.
		Insert(metaAccountsTable).
		Columns("user_id", "meta_user_id", "access_token", "token_expires_at", "ad_account_id",
			"ad_account_name", "business_manager_id", "active").
		Values(account.UserID, account.MetaUserID, account.AccessToken, account.TokenExpiresAt, account.AdAccountID,
			account.AdAccountName, account.BusinessManagerID, boolToInt(account.Active)).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir conta Meta: %w", err)
	}

	return account, nil
}

func (r *metaAccountRepository) SetActive(ctx context.Context, accountID int, active bool) error {
	query, args, err := squirrel.
		Update(metaAccountsTable).
		Set("active", boolToInt(active)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar conta Meta: %w", err)
	}

	return nil
}

func scanMetaAccount(row rowScanner) (*domain.MetaAccount, error) {
	var (
		account domain.MetaAccount
		active  int
	)

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.MetaUserID,
		&account.AccessToken,
		&account.TokenExpiresAt,
		&account.AdAccountID,
		&account.AdAccountName,
		&account.BusinessManagerID,
		&active,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Active = active == 1
	return &account, nil
}
