package areasdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/client-access/verify-token", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req VerifyTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Token != "good" {
			ErrTokenMismatch.WriteError(w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(VerifyTokenResponse{Client: SafeClient{ID: req.ClientID, FirstName: "Anna"}})
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL + "/")

	t.Run("accepted", func(t *testing.T) {
		res, err := client.VerifyToken(context.Background(), "good", 7)
		require.NoError(t, err)
		require.Equal(t, int64(7), res.Client.ID)
		require.Equal(t, "Anna", res.Client.FirstName)
	})

	t.Run("rejected", func(t *testing.T) {
		_, err := client.VerifyToken(context.Background(), "bad", 7)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrTokenMismatch)
		require.NotErrorIs(t, err, ErrClientNotFound)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}

func TestLoginAndSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(LoginResponse{
				AccessToken:  "jwt",
				TokenType:    "Bearer",
				ExpiresIn:    3600,
				Scope:        "clients:read clients:write",
				Professional: Professional{ID: 14, Username: "dr.rossi"},
			})
		case "/api/client-access/count/3":
			if r.Header.Get("Authorization") != "Bearer jwt" {
				NewAPIError(http.StatusUnauthorized, ErrorCodeInvalidToken, "missing bearer token").WriteError(w)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(AccessCount{ClientID: 3, Count: 5})
		default:
			ErrClientNotFound.WriteError(w)
		}
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	session, err := client.Login(context.Background(), "dr.rossi", "secret-password")
	require.NoError(t, err)
	require.Equal(t, "jwt", session.AccessToken())
	require.True(t, session.HasScope("clients:write"))
	require.False(t, session.Expired())
	require.Equal(t, int64(14), session.Professional().ID)

	count, err := session.AccessCount(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, int64(5), count)

	_, err = session.AccessCount(context.Background(), 4)
	require.ErrorIs(t, err, ErrClientNotFound)

	_, err = client.NewSessionFromToken("other").AccessCount(context.Background(), 3)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeInvalidToken, apiErr.Code)
}

func TestParseErrorResponseFallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(srv.Close)

	_, err := NewSDKClient(srv.URL).GetLiveness(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestAPIErrorWithDescription(t *testing.T) {
	t.Parallel()

	err := ErrValidation.WithDescription("clientId must be positive")
	require.Equal(t, "clientId must be positive", err.Description)
	require.NotEqual(t, err.Description, ErrValidation.Description)
	require.ErrorIs(t, err, ErrValidation)
}
