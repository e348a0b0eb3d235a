package app_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/app"
	"github.com/aussiebroadwan/clientarea/pkg/areasdk"
	"github.com/stretchr/testify/require"
)

const registrationToken = "test-registration-token"

func newServer(t *testing.T) *areasdk.SDKClient {
	t.Helper()

	dir := t.TempDir()
	cfg := app.Config{
		PublicBaseURL:      "https://area.example.com",
		TokenAlgorithm:     "md5",
		RegistrationToken:  registrationToken,
		Issuer:             "clientarea-test",
		NumKeys:            1,
		DatabaseDriver:     app.DriverSQLite,
		DatabaseFile:       filepath.Join(dir, "clientarea.db"),
		PepperFile:         filepath.Join(dir, "pepper"),
		DefaultPhoneRegion: "IT",
		Port:               8080,
	}

	a, err := app.New(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown() })

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	c := areasdk.NewSDKClient(srv.URL)
	c.UserAgent = "app-test"
	return c
}

func login(t *testing.T, c *areasdk.SDKClient, username string) (*areasdk.Session, *areasdk.Professional) {
	t.Helper()
	ctx := context.Background()

	p, err := c.Register(ctx, registrationToken, areasdk.RegisterRequest{
		Username: username,
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	s, err := c.Login(ctx, username, "correct horse battery")
	require.NoError(t, err)
	return s, p
}

func TestClientLifecycle(t *testing.T) {
	t.Parallel()
	c := newServer(t)
	ctx := context.Background()

	alice, _ := login(t, c, "dr.alice")
	require.True(t, alice.HasScope("clients:write"))

	created, err := alice.CreateClient(ctx, areasdk.CreateClientRequest{
		FirstName: "Anna",
		LastName:  "Bianchi",
		Email:     "anna@example.com",
		Phone:     "347 123 4567",
	})
	require.NoError(t, err)
	require.Equal(t, "+393471234567", created.Phone)
	require.NotEmpty(t, created.UniqueCode)

	list, err := alice.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	link, err := alice.ActivationToken(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link.URL, "https://area.example.com/client-area?token="), link.URL)
	require.Equal(t, "Anna Bianchi", link.ClientName)

	qr, err := alice.ActivationQR(ctx, created.ID, 128)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(qr), "\x89PNG"))

	verified, err := c.VerifyToken(ctx, link.Token, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, verified.Client.ID)

	_, err = c.VerifyToken(ctx, link.Token+"0", created.ID)
	require.ErrorIs(t, err, areasdk.ErrTokenMismatch)

	_, err = c.Track(ctx, created.ID)
	require.NoError(t, err)

	count, err := alice.AccessCount(ctx, created.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	accesses, err := alice.Accesses(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, accesses, 2)
	require.Equal(t, "app-test", accesses[0].UserAgent)

	counts, err := alice.AccessCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	require.EqualValues(t, 2, counts[0].Count)
}

func TestClientsAreOwnerScoped(t *testing.T) {
	t.Parallel()
	c := newServer(t)
	ctx := context.Background()

	alice, _ := login(t, c, "dr.alice")
	bob, bobProfile := login(t, c, "dr.bob")

	created, err := alice.CreateClient(ctx, areasdk.CreateClientRequest{FirstName: "Anna", LastName: "Bianchi"})
	require.NoError(t, err)

	_, err = bob.GetClient(ctx, created.ID)
	require.ErrorIs(t, err, areasdk.ErrClientNotFound)
	_, err = bob.AccessCount(ctx, created.ID)
	require.ErrorIs(t, err, areasdk.ErrClientNotFound)

	old, err := alice.ActivationToken(ctx, created.ID)
	require.NoError(t, err)

	moved, err := alice.ReassignClient(ctx, created.ID, bobProfile.ID)
	require.NoError(t, err)
	require.Equal(t, bobProfile.ID, moved.OwnerID)
	require.True(t, strings.HasPrefix(moved.UniqueCode, bobProfile.Code+"_CLIENT_"), moved.UniqueCode)

	_, err = c.VerifyToken(ctx, old.Token, created.ID)
	require.ErrorIs(t, err, areasdk.ErrTokenMismatch)

	fresh, err := bob.ActivationToken(ctx, created.ID)
	require.NoError(t, err)
	_, err = c.VerifyToken(ctx, fresh.Token, created.ID)
	require.NoError(t, err)
}

func TestAuthErrors(t *testing.T) {
	t.Parallel()
	c := newServer(t)
	ctx := context.Background()

	_, err := c.Register(ctx, "wrong", areasdk.RegisterRequest{Username: "dr.eve", Password: "long enough"})
	require.ErrorIs(t, err, areasdk.ErrRegistrationDenied)

	_, err = c.Login(ctx, "dr.nobody", "whatever")
	require.ErrorIs(t, err, areasdk.ErrInvalidCredentials)

	_, err = c.NewSessionFromToken("not-a-jwt").ListClients(ctx)
	var apiErr *areasdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, areasdk.ErrorCodeInvalidToken, apiErr.Code)
}

func TestSystemEndpoints(t *testing.T) {
	t.Parallel()
	c := newServer(t)
	ctx := context.Background()

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)

	jwks, err := c.GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "EdDSA", jwks.Keys[0].Alg)

	// Exercise a route so the HTTP collectors have a sample.
	_, err = c.VerifyToken(ctx, "", 0)
	require.ErrorIs(t, err, areasdk.ErrValidation)

	resp, err := http.Get(c.BaseURL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `clientarea_token_verifications_total{outcome="validation"} 1`)
	require.Contains(t, string(body), `route="POST /api/client-access/verify-token"`)
}
