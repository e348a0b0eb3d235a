package postgres

import (
	"context"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
)

type professionalsRepo struct {
	q querier
}

const professionalColumns = `id, username, display_name, password_hash, code, created_at, updated_at`

func (r *professionalsRepo) CreateProfessional(ctx context.Context, p domain.Professional) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO professionals (username, display_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Username, p.DisplayName, p.PasswordHash, p.CreatedAt, p.UpdatedAt,
	).Scan(&id)
	return id, mapErr("create professional", err)
}

func (r *professionalsRepo) GetProfessionalByID(ctx context.Context, id int64) (domain.Professional, error) {
	return r.get(ctx, `SELECT `+professionalColumns+` FROM professionals WHERE id = $1`, id)
}

func (r *professionalsRepo) GetProfessionalByUsername(ctx context.Context, username string) (domain.Professional, error) {
	return r.get(ctx, `SELECT `+professionalColumns+` FROM professionals WHERE username = $1`, username)
}

func (r *professionalsRepo) get(ctx context.Context, query string, arg any) (domain.Professional, error) {
	var (
		p    domain.Professional
		code *string
	)
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Username, &p.DisplayName, &p.PasswordHash, &code, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Professional{}, mapErr("get professional", err)
	}
	p.Code = deref(code)
	return p, nil
}

func (r *professionalsRepo) SetProfessionalCode(ctx context.Context, id int64, code string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE professionals SET code = $1, updated_at = now() WHERE id = $2`,
		nullable(code), id)
	return expectOne("set professional code", tag, err)
}
