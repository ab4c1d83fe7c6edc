package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier subconjunto común de pgxpool.Pool y pgx.Tx que usan los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// execBatch envía todos los INSERT del batch en un solo pipeline y espera cada resultado.
// Devuelve la suma de filas afectadas; el primer error hace fallar el batch completo.
func execBatch(ctx context.Context, q Querier, b *pgx.Batch) (int64, error) {
	if b.Len() == 0 {
		return 0, nil
	}
	br := q.SendBatch(ctx, b)

	var affected int64
	for n := b.Len(); n > 0; n-- {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return 0, err
		}
		affected += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return 0, err
	}
	return affected, nil
}
