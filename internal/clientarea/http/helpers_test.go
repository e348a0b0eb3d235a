package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/service"
	"github.com/aussiebroadwan/clientarea/pkg/areasdk"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) areasdk.ErrorResponse {
	t.Helper()
	var body areasdk.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWriteServiceError(t *testing.T) {
	log := slog.New(slog.DiscardHandler)

	tests := []struct {
		err    error
		status int
		code   string
		desc   string
	}{
		{fmt.Errorf("%w: invalid phone number", service.ErrValidation), 400, areasdk.ErrorCodeValidation, "invalid phone number"},
		{service.ErrValidation, 400, areasdk.ErrorCodeValidation, areasdk.ErrValidation.Description},
		{service.ErrClientNotFound, 404, areasdk.ErrorCodeClientNotFound, ""},
		{service.ErrTokenMismatch, 401, areasdk.ErrorCodeTokenMismatch, ""},
		{service.ErrUniqueCodeMissing, 409, areasdk.ErrorCodeUniqueCodeMissing, ""},
		{service.ErrRegistrationDisabled, 404, areasdk.ErrorCodeNotFound, ""},
		{errors.New("disk on fire"), 500, areasdk.ErrorCodeServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, log, "test", tt.err)

			require.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			require.Equal(t, tt.code, body.Error)
			if tt.desc != "" {
				require.Equal(t, tt.desc, body.ErrorDescription)
			}
			require.NotContains(t, body.ErrorDescription, "disk on fire")
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v areasdk.VerifyTokenRequest

	t.Run("accepts json with charset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"token":"t","clientId":3}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		require.True(t, decodeJSON(httptest.NewRecorder(), req, &v))
		require.EqualValues(t, 3, v.ClientID)
	})

	t.Run("rejects other content types", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`token=t`))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		require.False(t, decodeJSON(rec, req, &v))
		require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("rejects malformed bodies", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"token":`))
		require.False(t, decodeJSON(rec, req, &v))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPathClientID(t *testing.T) {
	mux := http.NewServeMux()
	var got int64
	mux.HandleFunc("GET /c/{clientId}", func(w http.ResponseWriter, r *http.Request) {
		got, _ = pathClientID(w, r)
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/c/42", nil))
	require.EqualValues(t, 42, got)

	for _, bad := range []string{"abc", "0", "-3"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/c/"+bad, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
}

func TestAccessMetaIgnoresUntrustedProxyHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "198.51.100.4:40000"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("User-Agent", "area-app/2.1")

	meta := accessMeta(req)
	require.Equal(t, "198.51.100.4", meta.IPAddress)
	require.Equal(t, "area-app/2.1", meta.UserAgent)
}
