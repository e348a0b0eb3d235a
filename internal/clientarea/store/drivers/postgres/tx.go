package postgres

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/jackc/pgx/v5"
)

var errNestedTx = errors.New("postgres: nested transactions are not supported")

// txStore remembers the context it was begun with so that Commit and
// Rollback match the store.Tx signature.
type txStore struct {
	ctx context.Context
	tx  pgx.Tx
}

func (t *txStore) Commit() error { return t.tx.Commit(t.ctx) }

// Rollback after Commit is a no-op.
func (t *txStore) Rollback() error {
	if err := t.tx.Rollback(t.ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, errNestedTx }
func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

func (t *txStore) ApplyMigrations(ctx context.Context) error { return nil }

func (t *txStore) Professionals() store.Professionals   { return &professionalsRepo{q: t.tx} }
func (t *txStore) Clients() store.Clients               { return &clientsRepo{q: t.tx} }
func (t *txStore) ClientAccesses() store.ClientAccesses { return &clientAccessesRepo{q: t.tx} }
