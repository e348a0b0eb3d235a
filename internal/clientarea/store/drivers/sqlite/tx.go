package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx, q: gen.New(tx)}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }
func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations(ctx context.Context) error { return nil }

func (t *txStore) Professionals() store.Professionals   { return &professionalsRepo{q: t.q} }
func (t *txStore) Clients() store.Clients               { return &clientsRepo{q: t.q} }
func (t *txStore) ClientAccesses() store.ClientAccesses { return &clientAccessesRepo{q: t.q} }
