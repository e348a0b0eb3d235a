package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface, implemented by the sqlite and
// postgres drivers. Repositories hang off it so that a Tx exposes the same
// surface and nobody opens a transaction inside another.
type Store interface {
	Professionals() Professionals
	Clients() Clients
	ClientAccesses() ClientAccesses

	ApplyMigrations(ctx context.Context) error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Professionals interface {
	// CreateProfessional inserts p and returns its id. Username is unique.
	CreateProfessional(ctx context.Context, p domain.Professional) (int64, error)

	GetProfessionalByID(ctx context.Context, id int64) (domain.Professional, error)
	GetProfessionalByUsername(ctx context.Context, username string) (domain.Professional, error)

	// SetProfessionalCode stores the PROF_ code, computed once the id is known.
	SetProfessionalCode(ctx context.Context, id int64, code string) error
}

type Clients interface {
	// CreateClient inserts c without a unique code and returns its id.
	CreateClient(ctx context.Context, c domain.Client) (int64, error)

	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// ListClientsByOwner returns a professional's clients ordered by id.
	ListClientsByOwner(ctx context.Context, ownerID int64) ([]domain.Client, error)

	// ListAllClients is used by the code audit.
	ListAllClients(ctx context.Context) ([]domain.Client, error)

	SetClientUniqueCode(ctx context.Context, id int64, code string) error

	// UpdateClientOwner moves a client and replaces its code in one statement.
	UpdateClientOwner(ctx context.Context, id, ownerID int64, code string) error
}

type ClientAccesses interface {
	CreateClientAccess(ctx context.Context, a domain.ClientAccess) error

	CountClientAccesses(ctx context.Context, clientID int64) (int64, error)

	// CountAccessesPerClient returns every client with its total, zero included.
	CountAccessesPerClient(ctx context.Context) ([]domain.ClientAccessCount, error)
	CountAccessesPerClientByOwner(ctx context.Context, ownerID int64) ([]domain.ClientAccessCount, error)

	// ListClientAccesses returns accesses oldest first, ties broken by id.
	ListClientAccesses(ctx context.Context, clientID int64) ([]domain.ClientAccess, error)
}
