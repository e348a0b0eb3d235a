package service

import (
	"context"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/pkg/accesstoken"
	"github.com/aussiebroadwan/clientarea/pkg/qrx"
)

// ActivationService builds the deep link (and its QR code) that opens the
// client area straight away.
type ActivationService struct {
	Clients *ClientService
	Codec   accesstoken.Codec
	BaseURL string
}

func (s *ActivationService) Link(ctx context.Context, ownerID, clientID int64) (domain.ActivationLink, error) {
	c, err := s.Clients.GetOwnedClient(ctx, ownerID, clientID)
	if err != nil {
		return domain.ActivationLink{}, err
	}
	if c.UniqueCode == "" {
		return domain.ActivationLink{}, ErrUniqueCodeMissing
	}

	token, err := s.Codec.Compute(c.UniqueCode, c.OwnerID)
	if err != nil {
		return domain.ActivationLink{}, err
	}
	url, err := accesstoken.BuildURL(s.BaseURL, token, c.ID)
	if err != nil {
		return domain.ActivationLink{}, err
	}

	return domain.ActivationLink{
		URL:        url,
		Token:      token,
		ClientID:   c.ID,
		ClientName: c.FullName(),
	}, nil
}

// QRCode renders the activation link as a PNG of roughly size pixels.
func (s *ActivationService) QRCode(ctx context.Context, ownerID, clientID int64, size int) ([]byte, error) {
	link, err := s.Link(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}
	return qrx.PNG(link.URL, size)
}
