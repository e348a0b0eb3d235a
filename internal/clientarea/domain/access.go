package domain

import "time"

// ClientAccess is one verified opening of the client area. Rows are only
// ever appended.
type ClientAccess struct {
	ID         string // ULID
	ClientID   int64
	AccessedAt time.Time
	IPAddress  string
	UserAgent  string
}

// AccessMeta is what the caller knows about the device opening the link.
type AccessMeta struct {
	IPAddress string
	UserAgent string
}

type ClientAccessCount struct {
	ClientID  int64
	OwnerID   int64
	FirstName string
	LastName  string
	Count     int64
}
