package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
	"github.com/aussiebroadwan/clientarea/pkg/uniquecode"
)

var errCodeUnrepaired = errors.New("unique code still inconsistent")

// CodeService owns unique code assignment and the consistency check that
// every client's code embeds its current owner.
type CodeService struct {
	Store store.Store
}

// salt is the creation time in milliseconds. Codes derived from it are
// stable, so regenerating an unchanged client yields the same code.
func salt(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ProfessionalCode returns p's PROF_ code. A missing code, or a stored one
// naming another professional, is regenerated and saved first.
func ProfessionalCode(ctx context.Context, tx store.Store, p domain.Professional) (string, error) {
	if owner, err := uniquecode.ParseProfessional(p.Code); err == nil && owner == p.ID {
		return p.Code, nil
	}
	if p.Code != "" {
		slogx.FromContext(ctx).Warn("professional code does not match its id, regenerating",
			"professional_id", p.ID, "old_code", p.Code)
	}
	code := uniquecode.Professional(p.ID, salt(p.CreatedAt))
	if err := tx.Professionals().SetProfessionalCode(ctx, p.ID, code); err != nil {
		return "", fmt.Errorf("assign professional code: %w", err)
	}
	return code, nil
}

// ClientCode derives the code c carries under the professional profCode.
func ClientCode(profCode string, c domain.Client) string {
	return uniquecode.Client(profCode, c.ID, salt(c.CreatedAt))
}

// assignClientCode computes and stores c's code under owner.
func assignClientCode(ctx context.Context, tx store.Store, owner domain.Professional, c domain.Client) (string, error) {
	profCode, err := ProfessionalCode(ctx, tx, owner)
	if err != nil {
		return "", err
	}
	code := ClientCode(profCode, c)
	if err := tx.Clients().SetClientUniqueCode(ctx, c.ID, code); err != nil {
		return "", fmt.Errorf("assign client code: %w", err)
	}
	return code, nil
}

// Audit lists clients whose code is missing or does not embed their owner.
// It never writes.
func (s *CodeService) Audit(ctx context.Context) (domain.CodeReport, error) {
	clients, err := s.Store.Clients().ListAllClients(ctx)
	if err != nil {
		return domain.CodeReport{}, err
	}

	report := domain.CodeReport{Checked: len(clients)}
	for _, c := range clients {
		switch {
		case c.UniqueCode == "":
			report.Missing = append(report.Missing, c.ID)
		case !uniquecode.EmbedsOwner(c.UniqueCode, c.OwnerID):
			report.Mismatched = append(report.Mismatched, c.ID)
		}
	}
	return report, nil
}

// Repair assigns or regenerates codes for the clients Audit flags. Running
// it twice in a row changes nothing the second time.
func (s *CodeService) Repair(ctx context.Context) (domain.CodeReport, error) {
	log := slogx.FromContext(ctx)

	report, err := s.Audit(ctx)
	if err != nil {
		return domain.CodeReport{}, err
	}

	for _, id := range append(append([]int64{}, report.Missing...), report.Mismatched...) {
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			c, err := tx.Clients().GetClientByID(ctx, id)
			if err != nil {
				return err
			}
			owner, err := tx.Professionals().GetProfessionalByID(ctx, c.OwnerID)
			if err != nil {
				return err
			}
			code, err := assignClientCode(ctx, tx, owner, c)
			if err != nil {
				return err
			}
			if !uniquecode.EmbedsOwner(code, owner.ID) {
				return fmt.Errorf("%w: %s does not embed owner %d", errCodeUnrepaired, code, owner.ID)
			}
			log.Info("unique code repaired", "client_id", id, "old_code", c.UniqueCode, "new_code", code)
			return nil
		})
		switch {
		case errors.Is(err, store.ErrNotFound):
			continue
		case errors.Is(err, errCodeUnrepaired):
			log.Error("unique code still inconsistent after repair", "client_id", id, "error", err)
			continue
		case err != nil:
			return report, fmt.Errorf("repair client %d: %w", id, err)
		}
		report.Repaired = append(report.Repaired, id)
	}
	return report, nil
}
