package areasdk

import (
	"context"
	"fmt"
	"net/http"
)

// VerifyToken presents a scanned access token. On success the service has
// recorded one access for the client.
func (c *SDKClient) VerifyToken(ctx context.Context, token string, clientID int64) (*VerifyTokenResponse, error) {
	var resp VerifyTokenResponse
	if err := c.postJSON(ctx, "/api/client-access/verify-token", VerifyTokenRequest{
		Token:    token,
		ClientID: clientID,
	}, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Track records an access without a token check, for apps that verified
// the link locally first.
func (c *SDKClient) Track(ctx context.Context, clientID int64) (*Access, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/client-access/track/%d", clientID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out TrackResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Access, nil
}

func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness returns the readiness report. A degraded service answers 503
// and the report is returned together with an *APIError.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if resp.StatusCode == http.StatusServiceUnavailable {
		if err := decodeJSON(resp, &out, http.StatusServiceUnavailable); err != nil {
			return nil, err
		}
		return &out, NewAPIError(http.StatusServiceUnavailable, ErrorCodeServerError, "service not ready")
	}
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJWKS returns the keys that verify session tokens.
func (c *SDKClient) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", nil, nil)
	if err != nil {
		return nil, err
	}

	var out JWKSResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
