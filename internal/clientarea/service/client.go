package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is used for numbers written without a country code.
const DefaultPhoneRegion = "IT"

// ClientService manages a professional's clients. Every method is scoped to
// the calling owner; a client belonging to someone else is reported as not
// found.
type ClientService struct {
	Store         store.Store
	DefaultRegion string

	// Now defaults to time.Now. The creation time salts the unique code.
	Now func() time.Time
}

type NewClientInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	HasConsent bool
}

func (s *ClientService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// CreateClient inserts the client and assigns its unique code atomically.
func (s *ClientService) CreateClient(ctx context.Context, ownerID int64, in NewClientInput) (domain.Client, error) {
	c, err := s.normalise(ownerID, in)
	if err != nil {
		return domain.Client{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		owner, err := tx.Professionals().GetProfessionalByID(ctx, ownerID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfessionalNotFound
		}
		if err != nil {
			return err
		}

		c.ID, err = tx.Clients().CreateClient(ctx, c)
		if err != nil {
			return err
		}
		c.UniqueCode, err = assignClientCode(ctx, tx, owner, c)
		return err
	})
	if err != nil {
		return domain.Client{}, err
	}

	slogx.FromContext(ctx).Info("client created", "client_id", c.ID, "owner_id", ownerID)
	return c, nil
}

// GetOwnedClient returns clientID if ownerID owns it.
func (s *ClientService) GetOwnedClient(ctx context.Context, ownerID, clientID int64) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && c.OwnerID != ownerID) {
		return domain.Client{}, ErrClientNotFound
	}
	return c, err
}

func (s *ClientService) ListClients(ctx context.Context, ownerID int64) ([]domain.Client, error) {
	return s.Store.Clients().ListClientsByOwner(ctx, ownerID)
}

// ReassignClient moves a client to newOwnerID and regenerates its unique
// code under the new owner, so tokens issued before the move stop verifying.
func (s *ClientService) ReassignClient(ctx context.Context, ownerID, clientID, newOwnerID int64) (domain.Client, error) {
	if newOwnerID <= 0 {
		return domain.Client{}, fmt.Errorf("%w: new owner id must be positive", ErrValidation)
	}

	var moved domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Clients().GetClientByID(ctx, clientID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && c.OwnerID != ownerID) {
			return ErrClientNotFound
		}
		if err != nil {
			return err
		}

		newOwner, err := tx.Professionals().GetProfessionalByID(ctx, newOwnerID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfessionalNotFound
		}
		if err != nil {
			return err
		}

		profCode, err := ProfessionalCode(ctx, tx, newOwner)
		if err != nil {
			return err
		}
		code := ClientCode(profCode, c)
		if err := tx.Clients().UpdateClientOwner(ctx, c.ID, newOwnerID, code); err != nil {
			return err
		}
		c.OwnerID, c.UniqueCode = newOwnerID, code
		moved = c
		return nil
	})
	if err != nil {
		return domain.Client{}, err
	}

	slogx.FromContext(ctx).Info("client reassigned",
		"client_id", clientID, "from_owner_id", ownerID, "to_owner_id", newOwnerID)
	return moved, nil
}

func (s *ClientService) normalise(ownerID int64, in NewClientInput) (domain.Client, error) {
	now := s.now()
	c := domain.Client{
		OwnerID:    ownerID,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		HasConsent: in.HasConsent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if ownerID <= 0 {
		return domain.Client{}, fmt.Errorf("%w: owner id must be positive", ErrValidation)
	}
	if c.FirstName == "" || c.LastName == "" {
		return domain.Client{}, fmt.Errorf("%w: first and last name are required", ErrValidation)
	}
	if c.Email != "" {
		addr, err := mail.ParseAddress(c.Email)
		if err != nil || addr.Address != c.Email {
			return domain.Client{}, fmt.Errorf("%w: invalid email address", ErrValidation)
		}
	}

	phone, err := NormalisePhone(in.Phone, s.DefaultRegion)
	if err != nil {
		return domain.Client{}, err
	}
	c.Phone = phone
	return c, nil
}

// NormalisePhone formats a phone number as E.164. Empty stays empty.
func NormalisePhone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if region == "" {
		region = DefaultPhoneRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: invalid phone number", ErrValidation)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
