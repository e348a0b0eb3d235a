package areasdk

import (
	"context"
	"fmt"
	"net/http"
)

func (s *Session) CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/clients", req)
	if err != nil {
		return nil, err
	}
	var c Client
	if err := decodeJSON(resp, &c, http.StatusCreated); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) ListClients(ctx context.Context) ([]Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/clients", nil)
	if err != nil {
		return nil, err
	}
	var out ClientList
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Clients, nil
}

func (s *Session) GetClient(ctx context.Context, clientID int64) (*Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/api/clients/%d", clientID), nil)
	if err != nil {
		return nil, err
	}
	var c Client
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReassignClient hands a client to another professional. Its unique code,
// and so its access token, changes.
func (s *Session) ReassignClient(ctx context.Context, clientID, newOwnerID int64) (*Client, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, fmt.Sprintf("/api/clients/%d/owner", clientID),
		ReassignClientRequest{OwnerID: newOwnerID})
	if err != nil {
		return nil, err
	}
	var c Client
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

// ActivationToken returns the deep link for a client's QR code.
func (s *Session) ActivationToken(ctx context.Context, clientID int64) (*ActivationToken, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/api/clients/%d/activation-token", clientID), nil)
	if err != nil {
		return nil, err
	}
	var out ActivationToken
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivationQR returns the activation link rendered as a PNG.
func (s *Session) ActivationQR(ctx context.Context, clientID int64, size int) ([]byte, error) {
	path := fmt.Sprintf("/api/clients/%d/activation-qr.png", clientID)
	if size > 0 {
		path += fmt.Sprintf("?size=%d", size)
	}
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return readBytes(resp, http.StatusOK)
}

func (s *Session) AccessCount(ctx context.Context, clientID int64) (int64, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/api/client-access/count/%d", clientID), nil)
	if err != nil {
		return 0, err
	}
	var out AccessCount
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// Accesses lists a client's accesses, oldest first.
func (s *Session) Accesses(ctx context.Context, clientID int64) ([]Access, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf("/api/client-access/%d", clientID), nil)
	if err != nil {
		return nil, err
	}
	var out AccessList
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Accesses, nil
}

// AccessCounts returns every client of the professional with its total.
func (s *Session) AccessCounts(ctx context.Context) ([]ClientAccessCount, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/client-access/counts", nil)
	if err != nil {
		return nil, err
	}
	var out AccessCounts
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Counts, nil
}
