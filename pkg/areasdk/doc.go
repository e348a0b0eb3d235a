/*
Package areasdk is a Go client for the client area service.

# Overview

The SDK mirrors the two audiences of the service:

  - SDKClient: public operations used by the client area itself (verify an
    access token, track an access) plus health checks and professional login.
  - Session: operations of an authenticated professional (clients, activation
    links, access counts).

Verifying a scanned QR code:

	client := areasdk.NewSDKClient("https://area.example.com")

	res, err := client.VerifyToken(ctx, token, clientID)
	if errors.Is(err, areasdk.ErrTokenMismatch) {
		// stale or forged link
	}
	fmt.Println(res.Client.FirstName)

Professional operations:

	session, err := client.Login(ctx, "dr.rossi", "password")
	c, err := session.CreateClient(ctx, areasdk.CreateClientRequest{
		FirstName: "Anna",
		LastName:  "Bianchi",
		Phone:     "+39 347 123 4567",
	})
	link, err := session.ActivationToken(ctx, c.ID)
	count, err := session.AccessCount(ctx, c.ID)

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the stable error code. Predefined values such as ErrTokenMismatch and
ErrClientNotFound match with errors.Is regardless of the description.

Sessions are not refreshed: once the session token expires, Login again.
*/
package areasdk
