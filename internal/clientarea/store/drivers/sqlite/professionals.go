package sqlite

import (
	"context"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/sqlite/gen"
)

type professionalsRepo struct {
	q *gen.Queries
}

func (r *professionalsRepo) CreateProfessional(ctx context.Context, p domain.Professional) (int64, error) {
	id, err := r.q.CreateProfessional(ctx, gen.CreateProfessionalParams{
		Username:     p.Username,
		DisplayName:  p.DisplayName,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	})
	return id, mapConstraint(err)
}

func (r *professionalsRepo) GetProfessionalByID(ctx context.Context, id int64) (domain.Professional, error) {
	row, err := r.q.GetProfessionalByID(ctx, id)
	if err != nil {
		return domain.Professional{}, mapNotFound(err)
	}
	return mapProfessional(row), nil
}

func (r *professionalsRepo) GetProfessionalByUsername(ctx context.Context, username string) (domain.Professional, error) {
	row, err := r.q.GetProfessionalByUsername(ctx, username)
	if err != nil {
		return domain.Professional{}, mapNotFound(err)
	}
	return mapProfessional(row), nil
}

func (r *professionalsRepo) SetProfessionalCode(ctx context.Context, id int64, code string) error {
	return expectOne(r.q.SetProfessionalCode(ctx, gen.SetProfessionalCodeParams{
		Code: nullString(code),
		ID:   id,
	}))
}

func mapProfessional(row gen.Professional) domain.Professional {
	return domain.Professional{
		ID:           row.ID,
		Username:     row.Username,
		DisplayName:  row.DisplayName,
		PasswordHash: row.PasswordHash,
		Code:         row.Code.String,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
