package domain

import "time"

type Client struct {
	ID         int64
	OwnerID    int64
	UniqueCode string // empty until assigned, must embed OwnerID once set
	FirstName  string
	LastName   string
	Email      string
	Phone      string // E.164
	HasConsent bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName is what the activation link is labelled with.
func (c Client) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// SafeClient is the view of a client handed back to the client itself after
// a successful verification. It never includes the unique code.
type SafeClient struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	HasConsent bool
	OwnerID    int64
}

func (c Client) Safe() SafeClient {
	return SafeClient{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		HasConsent: c.HasConsent,
		OwnerID:    c.OwnerID,
	}
}
