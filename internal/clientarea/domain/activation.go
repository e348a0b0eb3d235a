package domain

// ActivationLink is what a professional prints or sends to a client.
type ActivationLink struct {
	URL        string
	Token      string
	ClientID   int64
	ClientName string
}
