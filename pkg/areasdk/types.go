package areasdk

import "time"

// ErrorResponse is the wire form of APIError.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// JWKSResponse is the public key set that verifies session tokens.
type JWKSResponse struct {
	Keys []JWK `json:"keys"`
}

type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	Use string `json:"use"`
}

// ============================================================================
// Professionals and sessions
// ============================================================================

type RegisterRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Professional struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Code        string    `json:"code"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse carries a bearer session token.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	Scope        string       `json:"scope"`
	Professional Professional `json:"professional"`
}

// ============================================================================
// Clients
// ============================================================================

type CreateClientRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	HasConsent bool   `json:"hasConsent"`
}

type ReassignClientRequest struct {
	OwnerID int64 `json:"ownerId"`
}

// Client is the professional's view of a client.
type Client struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"ownerId"`
	UniqueCode string    `json:"uniqueCode,omitempty"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	HasConsent bool      `json:"hasConsent"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ClientList struct {
	Clients []Client `json:"clients"`
}

// SafeClient is what the client area itself is allowed to see.
type SafeClient struct {
	ID         int64  `json:"id"`
	OwnerID    int64  `json:"ownerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	HasConsent bool   `json:"hasConsent"`
}

// ActivationToken is the deep link to encode in a QR code.
type ActivationToken struct {
	URL        string `json:"url"`
	Token      string `json:"token"`
	ClientID   int64  `json:"clientId"`
	ClientName string `json:"clientName"`
}

// ============================================================================
// Client access
// ============================================================================

type VerifyTokenRequest struct {
	Token    string `json:"token"`
	ClientID int64  `json:"clientId"`
}

type VerifyTokenResponse struct {
	Client SafeClient `json:"client"`
}

type Access struct {
	ID         string    `json:"id"`
	ClientID   int64     `json:"clientId"`
	AccessedAt time.Time `json:"timestamp"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
}

type TrackResponse struct {
	Access Access `json:"access"`
}

type AccessCount struct {
	ClientID int64 `json:"clientId"`
	Count    int64 `json:"count"`
}

type AccessList struct {
	ClientID int64    `json:"clientId"`
	Accesses []Access `json:"accesses"`
}

type ClientAccessCount struct {
	ClientID  int64  `json:"clientId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Count     int64  `json:"count"`
}

type AccessCounts struct {
	Counts []ClientAccessCount `json:"counts"`
}
