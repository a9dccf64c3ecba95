package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// updateSync aplica um SyncUpdate em qualquer tabela que tenha as colunas
// status, sync_status e sync_error. ExternalID e Status só são gravados quando informados.
func updateSync(ctx context.Context, q postgres.Queryer, table, externalIDColumn string, id int, upd domain.SyncUpdate) error {
	builder := squirrel.
		Update(table).
		Set("sync_status", string(upd.SyncStatus)).
		Set("sync_error", upd.SyncError).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if upd.ExternalID != nil {
		builder = builder.Set(externalIDColumn, *upd.ExternalID)
	}
	if upd.Status != nil {
		builder = builder.Set("status", string(*upd.Status))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar sincronização em %s: %w", table, err)
	}

	return nil
}

// pendingSyncFilter seleciona linhas paradas há mais tempo que o limite:
// pendentes, ou com falha mas já com id remoto (podem ser reenviadas).
func pendingSyncFilter(externalIDColumn string, before time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Lt{"updated_at": before},
		squirrel.Or{
			squirrel.Eq{"sync_status": string(domain.SyncPending)},
			squirrel.And{
				squirrel.Eq{"sync_status": string(domain.SyncFailed)},
				squirrel.NotEq{externalIDColumn: nil},
			},
		},
	}
}
