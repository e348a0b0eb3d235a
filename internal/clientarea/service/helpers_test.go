package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/store/drivers/sqlite"
	"github.com/aussiebroadwan/clientarea/pkg/accesstoken"
	"github.com/aussiebroadwan/clientarea/pkg/cryptox"
	"github.com/aussiebroadwan/clientarea/pkg/metricsx"
	"github.com/stretchr/testify/require"
)

const testRegistrationToken = "let-me-in"

type fixture struct {
	store         *sqlite.Store
	metrics       *metricsx.Metrics
	professionals *ProfessionalService
	clients       *ClientService
	access        *AccessService
	verify        *VerifyService
	activation    *ActivationService
	codes         *CodeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "clientarea.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	f := &fixture{store: st, metrics: metricsx.New()}
	f.professionals = &ProfessionalService{
		Store:             st,
		Hasher:            cryptox.NewHasher("test-pepper"),
		RegistrationToken: testRegistrationToken,
	}
	f.clients = &ClientService{Store: st}
	f.access = &AccessService{Store: st, Metrics: f.metrics}
	f.verify = &VerifyService{Store: st, Codec: accesstoken.MD5Codec{}, Access: f.access, Metrics: f.metrics}
	f.activation = &ActivationService{Clients: f.clients, Codec: accesstoken.MD5Codec{}, BaseURL: "https://example.com/"}
	f.codes = &CodeService{Store: st}
	return f
}

func (f *fixture) professional(t *testing.T, username string) domain.Professional {
	t.Helper()
	p, err := f.professionals.Register(context.Background(), testRegistrationToken, RegisterInput{
		Username: username,
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) client(t *testing.T, ownerID int64, first string) domain.Client {
	t.Helper()
	c, err := f.clients.CreateClient(context.Background(), ownerID, NewClientInput{
		FirstName:  first,
		LastName:   "Bianchi",
		Email:      first + "@example.com",
		HasConsent: true,
	})
	require.NoError(t, err)
	return c
}

// rawClient inserts a client without assigning a unique code.
func (f *fixture) rawClient(t *testing.T, ownerID int64, first string) domain.Client {
	t.Helper()
	now := time.Now().UTC()
	c := domain.Client{OwnerID: ownerID, FirstName: first, LastName: "Verdi", CreatedAt: now, UpdatedAt: now}
	id, err := f.store.Clients().CreateClient(context.Background(), c)
	require.NoError(t, err)
	c.ID = id
	return c
}
