package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier devuelve un resultado por cada sentencia encolada.
type fakeQuerier struct {
	tags   []string
	errAt  int // índice de la sentencia que falla; -1 = ninguna
	err    error
	sent   int
	closed bool
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (q *fakeQuerier) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	q.sent = b.Len()
	return &fakeBatchResults{q: q}
}

type fakeBatchResults struct {
	q *fakeQuerier
	i int
}

func (r *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	defer func() { r.i++ }()
	if r.i == r.q.errAt {
		return pgconn.CommandTag{}, r.q.err
	}
	return pgconn.NewCommandTag(r.q.tags[r.i]), nil
}

func (r *fakeBatchResults) Query() (pgx.Rows, error) { return nil, errors.New("no soportado") }
func (r *fakeBatchResults) QueryRow() pgx.Row        { return nil }
func (r *fakeBatchResults) Close() error {
	r.q.closed = true
	return nil
}

func TestExecBatch_SumaFilasInsertadas(t *testing.T) {
	q := &fakeQuerier{tags: []string{"INSERT 0 1", "INSERT 0 0", "INSERT 0 1"}, errAt: -1}
	b := &pgx.Batch{}
	for j := 0; j < 3; j++ {
		b.Queue(insertRevenue, "Jan", 1)
	}

	n, err := execBatch(context.Background(), q, b)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "la fila en conflicto no cuenta")
	assert.Equal(t, 3, q.sent)
	assert.True(t, q.closed)
}

func TestExecBatch_UnFalloHaceFallarTodo(t *testing.T) {
	boom := &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}
	q := &fakeQuerier{tags: []string{"INSERT 0 1", "", "INSERT 0 1"}, errAt: 1, err: boom}
	b := &pgx.Batch{}
	for j := 0; j < 3; j++ {
		b.Queue(insertInvoice, "x", "y", 1, "paid", nil)
	}

	n, err := execBatch(context.Background(), q, b)
	require.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	assert.True(t, q.closed, "el batch se cierra también en error")
}

func TestExecBatch_Vacio(t *testing.T) {
	q := &fakeQuerier{errAt: -1}
	n, err := execBatch(context.Background(), q, &pgx.Batch{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, q.sent, "no se envía nada al servidor")
}
