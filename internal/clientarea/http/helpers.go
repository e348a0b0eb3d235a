package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/service"
	"github.com/aussiebroadwan/clientarea/pkg/areasdk"
	"github.com/aussiebroadwan/clientarea/pkg/httpx"
)

const maxBodyBytes = 64 << 10

// decodeJSON reads a JSON body into v, writing the error response itself
// when it fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err != nil || mt != "application/json" {
			areasdk.ErrUnsupportedContentType.WriteError(w)
			return false
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		areasdk.ErrInvalidJSON.WriteError(w)
		return false
	}
	return true
}

// pathClientID parses the {clientId} wildcard. Non-numeric ids are
// validation errors, not lookups.
func pathClientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("clientId"), 10, 64)
	if err != nil || id <= 0 {
		areasdk.ErrValidation.WithDescription("clientId must be a positive integer").WriteError(w)
		return 0, false
	}
	return id, true
}

// professionalID is the authenticated caller. AuthnMiddleware guarantees a
// subject, so a bad one means a token we did not issue.
func professionalID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := httpx.ProfessionalIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, areasdk.ErrorCodeInvalidToken, "session subject is not a professional")
		return 0, false
	}
	return id, true
}

func accessMeta(r *http.Request) domain.AccessMeta {
	return domain.AccessMeta{
		IPAddress: httpx.IPKeyExtractor(r),
		UserAgent: r.UserAgent(),
	}
}

// writeServiceError maps service sentinels to API errors. Anything else is
// logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		desc := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
		if desc == service.ErrValidation.Error() {
			desc = areasdk.ErrValidation.Description
		}
		areasdk.ErrValidation.WithDescription(desc).WriteError(w)
	case errors.Is(err, service.ErrClientNotFound):
		areasdk.ErrClientNotFound.WriteError(w)
	case errors.Is(err, service.ErrProfessionalNotFound):
		areasdk.ErrProfessionalNotFound.WriteError(w)
	case errors.Is(err, service.ErrTokenMismatch):
		areasdk.ErrTokenMismatch.WriteError(w)
	case errors.Is(err, service.ErrUniqueCodeMissing):
		areasdk.ErrUniqueCodeMissing.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		areasdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrRegistrationDisabled):
		areasdk.ErrRegistrationDisabled.WriteError(w)
	case errors.Is(err, service.ErrRegistrationDenied):
		areasdk.ErrRegistrationDenied.WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken):
		areasdk.ErrUsernameTaken.WriteError(w)
	default:
		log.Error(msg, "error", err)
		areasdk.ErrServerError.WriteError(w)
	}
}

func toSDKClient(c domain.Client) areasdk.Client {
	return areasdk.Client{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		UniqueCode: c.UniqueCode,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		HasConsent: c.HasConsent,
		CreatedAt:  c.CreatedAt,
	}
}

func toSDKSafeClient(c domain.SafeClient) areasdk.SafeClient {
	return areasdk.SafeClient{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		HasConsent: c.HasConsent,
	}
}

func toSDKAccess(a domain.ClientAccess) areasdk.Access {
	return areasdk.Access{
		ID:         a.ID,
		ClientID:   a.ClientID,
		AccessedAt: a.AccessedAt,
		IPAddress:  a.IPAddress,
		UserAgent:  a.UserAgent,
	}
}
