package postgres

import (
	"context"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/jackc/pgx/v5"
)

type clientsRepo struct {
	q querier
}

const clientColumns = `id, owner_id, unique_code, first_name, last_name, email, phone, has_consent, created_at, updated_at`

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO clients (owner_id, first_name, last_name, email, phone, has_consent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		c.OwnerID, c.FirstName, c.LastName, c.Email, c.Phone, c.HasConsent, c.CreatedAt, c.UpdatedAt,
	).Scan(&id)
	return id, mapErr("create client", err)
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		return domain.Client{}, mapErr("get client", err)
	}
	return c, nil
}

func (r *clientsRepo) ListClientsByOwner(ctx context.Context, ownerID int64) ([]domain.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients WHERE owner_id = $1 ORDER BY id`, ownerID)
}

func (r *clientsRepo) ListAllClients(ctx context.Context) ([]domain.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
}

func (r *clientsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Client, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr("list clients", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, mapErr("scan client", err)
		}
		clients = append(clients, c)
	}
	return clients, mapErr("list clients", rows.Err())
}

func (r *clientsRepo) SetClientUniqueCode(ctx context.Context, id int64, code string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE clients SET unique_code = $1, updated_at = now() WHERE id = $2`,
		nullable(code), id)
	return expectOne("set client unique code", tag, err)
}

func (r *clientsRepo) UpdateClientOwner(ctx context.Context, id, ownerID int64, code string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE clients SET owner_id = $1, unique_code = $2, updated_at = now() WHERE id = $3`,
		ownerID, nullable(code), id)
	return expectOne("update client owner", tag, err)
}

func scanClient(row pgx.Row) (domain.Client, error) {
	var (
		c    domain.Client
		code *string
	)
	err := row.Scan(
		&c.ID, &c.OwnerID, &code, &c.FirstName, &c.LastName,
		&c.Email, &c.Phone, &c.HasConsent, &c.CreatedAt, &c.UpdatedAt,
	)
	c.UniqueCode = deref(code)
	return c, err
}
