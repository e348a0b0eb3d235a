package sqlite

import (
	"context"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/sqlite/gen"
)

type clientsRepo struct {
	q *gen.Queries
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (int64, error) {
	id, err := r.q.CreateClient(ctx, gen.CreateClientParams{
		OwnerID:    c.OwnerID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		HasConsent: c.HasConsent,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	})
	return id, mapConstraint(err)
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	row, err := r.q.GetClientByID(ctx, id)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) ListClientsByOwner(ctx context.Context, ownerID int64) ([]domain.Client, error) {
	rows, err := r.q.ListClientsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return mapClients(rows), nil
}

func (r *clientsRepo) ListAllClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.q.ListAllClients(ctx)
	if err != nil {
		return nil, err
	}
	return mapClients(rows), nil
}

func (r *clientsRepo) SetClientUniqueCode(ctx context.Context, id int64, code string) error {
	return expectOne(r.q.SetClientUniqueCode(ctx, gen.SetClientUniqueCodeParams{
		UniqueCode: nullString(code),
		ID:         id,
	}))
}

func (r *clientsRepo) UpdateClientOwner(ctx context.Context, id, ownerID int64, code string) error {
	return expectOne(r.q.UpdateClientOwner(ctx, gen.UpdateClientOwnerParams{
		OwnerID:    ownerID,
		UniqueCode: nullString(code),
		ID:         id,
	}))
}

func mapClients(rows []gen.Client) []domain.Client {
	out := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapClient(row))
	}
	return out
}

func mapClient(row gen.Client) domain.Client {
	return domain.Client{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		UniqueCode: row.UniqueCode.String,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Email:      row.Email,
		Phone:      row.Phone,
		HasConsent: row.HasConsent,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
