package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store"
	"github.com/aussiebroadwan/clientarea/pkg/cryptox"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
)

const minPasswordLength = 8

var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{2,63}$`)

// ProfessionalService registers and authenticates professionals.
type ProfessionalService struct {
	Store  store.Store
	Hasher *cryptox.Hasher

	// RegistrationToken gates sign up. Empty disables registration.
	RegistrationToken string
}

type RegisterInput struct {
	Username    string
	DisplayName string
	Password    string
}

// Register creates a professional and assigns its PROF_ code.
func (s *ProfessionalService) Register(ctx context.Context, registrationToken string, in RegisterInput) (domain.Professional, error) {
	if s.RegistrationToken == "" {
		return domain.Professional{}, ErrRegistrationDisabled
	}
	if subtle.ConstantTimeCompare([]byte(registrationToken), []byte(s.RegistrationToken)) != 1 {
		return domain.Professional{}, ErrRegistrationDenied
	}

	username := strings.ToLower(strings.TrimSpace(in.Username))
	displayName := strings.TrimSpace(in.DisplayName)
	if !usernamePattern.MatchString(username) {
		return domain.Professional{}, fmt.Errorf("%w: username must be 3-64 characters of a-z, 0-9, '.', '_' or '-'", ErrValidation)
	}
	if displayName == "" {
		displayName = username
	}
	if len(in.Password) < minPasswordLength {
		return domain.Professional{}, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.Professional{}, err
	}

	now := time.Now().UTC()
	p := domain.Professional{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Professionals().CreateProfessional(ctx, p)
		if err != nil {
			return err
		}
		p.ID = id
		p.Code, err = ProfessionalCode(ctx, tx, p)
		return err
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Professional{}, ErrUsernameTaken
	}
	if err != nil {
		return domain.Professional{}, err
	}

	slogx.FromContext(ctx).Info("professional registered", "professional_id", p.ID, "code", p.Code)
	return p, nil
}

// Authenticate checks a username and password. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *ProfessionalService) Authenticate(ctx context.Context, username, password string) (domain.Professional, error) {
	p, err := s.Store.Professionals().GetProfessionalByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Professional{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Professional{}, err
	}

	if err := s.Hasher.Verify(password, p.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			slogx.FromContext(ctx).Error("stored password hash unreadable", "professional_id", p.ID, "err", err)
		}
		return domain.Professional{}, ErrInvalidCredentials
	}
	return p, nil
}

// GetProfessional returns a professional by id.
func (s *ProfessionalService) GetProfessional(ctx context.Context, id int64) (domain.Professional, error) {
	p, err := s.Store.Professionals().GetProfessionalByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Professional{}, ErrProfessionalNotFound
	}
	return p, err
}
