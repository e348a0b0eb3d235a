package accesstoken

import (
	"net/url"
	"strconv"
	"strings"
)

// ClientAreaPath is where the self-service front end is mounted.
const ClientAreaPath = "/client-area"

// BuildURL returns the deep link encoded into a client's QR code:
//
//	{baseURL}/client-area?token={token}&clientId={clientID}&autoLogin=true
//
// Opening it logs the client straight into the self-service view.
func BuildURL(baseURL, token string, clientID int64) (string, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" || token == "" {
		return "", ErrMissingLinkFields
	}

	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString(ClientAreaPath)
	b.WriteString("?token=")
	b.WriteString(url.QueryEscape(token))
	b.WriteString("&clientId=")
	b.WriteString(strconv.FormatInt(clientID, 10))
	b.WriteString("&autoLogin=true")
	return b.String(), nil
}
