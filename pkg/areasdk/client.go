package areasdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the client area service. It needs no credentials for
// the public endpoints; Login returns a Session for the rest.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// UserAgent is sent on every request when set; the service records it
	// with each tracked access.
	UserAgent string
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates a professional and returns a Session.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp LoginResponse
	if err := c.postJSON(ctx, "/api/auth/login", LoginRequest{
		Username: username,
		Password: password,
	}, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &resp), nil
}

// NewSessionFromToken wraps a session token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// Register creates a professional account. registrationToken is the
// service's REGISTRATION_TOKEN.
func (c *SDKClient) Register(ctx context.Context, registrationToken string, req RegisterRequest) (*Professional, error) {
	var p Professional
	if err := c.postJSON(ctx, "/api/professionals", req, map[string]string{
		"X-Registration-Token": registrationToken,
	}, &p, http.StatusCreated); err != nil {
		return nil, err
	}
	return &p, nil
}
