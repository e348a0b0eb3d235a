package postgres

import (
	"context"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
)

type clientAccessesRepo struct {
	q querier
}

func (r *clientAccessesRepo) CreateClientAccess(ctx context.Context, a domain.ClientAccess) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO client_accesses (id, client_id, accessed_at, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.ClientID, a.AccessedAt.UTC(), nullable(a.IPAddress), nullable(a.UserAgent),
	)
	return mapErr("create client access", err)
}

func (r *clientAccessesRepo) CountClientAccesses(ctx context.Context, clientID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM client_accesses WHERE client_id = $1`, clientID).Scan(&n)
	return n, mapErr("count client accesses", err)
}

func (r *clientAccessesRepo) CountAccessesPerClient(ctx context.Context) ([]domain.ClientAccessCount, error) {
	return r.counts(ctx, `
		SELECT c.id, c.owner_id, c.first_name, c.last_name, COUNT(a.id)
		FROM clients c
		LEFT JOIN client_accesses a ON a.client_id = c.id
		GROUP BY c.id
		ORDER BY c.id`)
}

func (r *clientAccessesRepo) CountAccessesPerClientByOwner(ctx context.Context, ownerID int64) ([]domain.ClientAccessCount, error) {
	return r.counts(ctx, `
		SELECT c.id, c.owner_id, c.first_name, c.last_name, COUNT(a.id)
		FROM clients c
		LEFT JOIN client_accesses a ON a.client_id = c.id
		WHERE c.owner_id = $1
		GROUP BY c.id
		ORDER BY c.id`, ownerID)
}

func (r *clientAccessesRepo) counts(ctx context.Context, query string, args ...any) ([]domain.ClientAccessCount, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr("count accesses per client", err)
	}
	defer rows.Close()

	out := []domain.ClientAccessCount{}
	for rows.Next() {
		var c domain.ClientAccessCount
		if err := rows.Scan(&c.ClientID, &c.OwnerID, &c.FirstName, &c.LastName, &c.Count); err != nil {
			return nil, mapErr("scan access count", err)
		}
		out = append(out, c)
	}
	return out, mapErr("count accesses per client", rows.Err())
}

func (r *clientAccessesRepo) ListClientAccesses(ctx context.Context, clientID int64) ([]domain.ClientAccess, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, client_id, accessed_at, ip_address, user_agent
		FROM client_accesses
		WHERE client_id = $1
		ORDER BY accessed_at, id`, clientID)
	if err != nil {
		return nil, mapErr("list client accesses", err)
	}
	defer rows.Close()

	out := []domain.ClientAccess{}
	for rows.Next() {
		var (
			a      domain.ClientAccess
			ip, ua *string
		)
		if err := rows.Scan(&a.ID, &a.ClientID, &a.AccessedAt, &ip, &ua); err != nil {
			return nil, mapErr("scan client access", err)
		}
		a.AccessedAt = a.AccessedAt.UTC()
		a.IPAddress, a.UserAgent = deref(ip), deref(ua)
		out = append(out, a)
	}
	return out, mapErr("list client accesses", rows.Err())
}
