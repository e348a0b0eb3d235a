package sqlite

import (
	"context"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/sqlite/gen"
)

type clientAccessesRepo struct {
	q *gen.Queries
}

func (r *clientAccessesRepo) CreateClientAccess(ctx context.Context, a domain.ClientAccess) error {
	return mapConstraint(r.q.CreateClientAccess(ctx, gen.CreateClientAccessParams{
		ID:         a.ID,
		ClientID:   a.ClientID,
		AccessedAt: a.AccessedAt.UTC(),
		IpAddress:  nullString(a.IPAddress),
		UserAgent:  nullString(a.UserAgent),
	}))
}

func (r *clientAccessesRepo) CountClientAccesses(ctx context.Context, clientID int64) (int64, error) {
	return r.q.CountClientAccesses(ctx, clientID)
}

func (r *clientAccessesRepo) CountAccessesPerClient(ctx context.Context) ([]domain.ClientAccessCount, error) {
	rows, err := r.q.CountAccessesPerClient(ctx)
	if err != nil {
		return nil, err
	}
	return mapAccessCounts(rows), nil
}

func (r *clientAccessesRepo) CountAccessesPerClientByOwner(ctx context.Context, ownerID int64) ([]domain.ClientAccessCount, error) {
	rows, err := r.q.CountAccessesPerClientByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return mapAccessCounts(rows), nil
}

func (r *clientAccessesRepo) ListClientAccesses(ctx context.Context, clientID int64) ([]domain.ClientAccess, error) {
	rows, err := r.q.ListClientAccesses(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ClientAccess, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ClientAccess{
			ID:         row.ID,
			ClientID:   row.ClientID,
			AccessedAt: row.AccessedAt.UTC(),
			IPAddress:  row.IpAddress.String,
			UserAgent:  row.UserAgent.String,
		})
	}
	return out, nil
}

func mapAccessCounts(rows []gen.CountAccessesPerClientRow) []domain.ClientAccessCount {
	out := make([]domain.ClientAccessCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ClientAccessCount{
			ClientID:  row.ID,
			OwnerID:   row.OwnerID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Count:     row.AccessCount,
		})
	}
	return out
}
