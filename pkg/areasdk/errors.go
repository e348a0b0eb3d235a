package areasdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/clientarea/pkg/httpx"
)

// Stable error codes returned in the "error" field.
const (
	ErrorCodeValidation             = "validation_error"
	ErrorCodeClientNotFound         = "client_not_found"
	ErrorCodeProfessionalNotFound   = "professional_not_found"
	ErrorCodeTokenMismatch          = "token_mismatch"
	ErrorCodeUniqueCodeMissing      = "unique_code_missing"
	ErrorCodeInvalidCredentials     = "invalid_credentials"
	ErrorCodeRegistrationDenied     = "registration_denied"
	ErrorCodeUsernameTaken          = "username_taken"
	ErrorCodeInvalidToken           = "invalid_token"
	ErrorCodeInsufficientScope      = "insufficient_scope"
	ErrorCodeRateLimitExceeded      = "rate_limit_exceeded"
	ErrorCodeNotFound               = "not_found"
	ErrorCodeServerError            = "server_error"
	ErrorCodeInvalidRequest         = "invalid_request"
	ErrorCodeUnsupportedContentType = "unsupported_content_type"
)

// APIError is the {"error", "error_description"} envelope. The server writes
// it with WriteError and the SDK returns it for every non-2xx response.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on status and code so callers can compare against the
// predefined errors whatever the description says.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Code == t.Code
}

// WriteError writes e as an HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Description)
}

// WithDescription returns a copy of e with a more specific message.
func (e *APIError) WithDescription(desc string) *APIError {
	c := *e
	c.Description = desc
	return &c
}

func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Description: description}
}

var (
	ErrValidation = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: "the request is missing required fields or has invalid values",
	}

	ErrInvalidJSON = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "request body is not valid JSON",
	}

	ErrUnsupportedContentType = &APIError{
		StatusCode:  http.StatusUnsupportedMediaType,
		Code:        ErrorCodeUnsupportedContentType,
		Description: "content-type must be application/json",
	}

	// ErrClientNotFound is also returned for clients owned by another
	// professional.
	ErrClientNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeClientNotFound,
		Description: "client not found",
	}

	ErrProfessionalNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeProfessionalNotFound,
		Description: "professional not found",
	}

	// ErrTokenMismatch covers forged, stale and malformed access tokens.
	ErrTokenMismatch = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeTokenMismatch,
		Description: "the access token is not valid for this client",
	}

	ErrUniqueCodeMissing = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUniqueCodeMissing,
		Description: "the client has no unique code yet; run the code repair",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	ErrRegistrationDenied = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeRegistrationDenied,
		Description: "invalid registration token",
	}

	// ErrRegistrationDisabled is a plain 404 so the endpoint looks absent.
	ErrRegistrationDisabled = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}

	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUsernameTaken,
		Description: "username already registered",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
