// Package uniquecode builds and parses the hierarchical identifiers assigned
// to professionals and their clients:
//
//	PROF_{owner}_{ownerHash}
//	PROF_{owner}_{ownerHash}_CLIENT_{client}_{clientHash}
//
// Ids are zero-padded to at least three digits and hashes are four upper
// case hex characters. A client code embeds its owner's id, so it must be
// regenerated whenever the client changes owner.
package uniquecode

import (
	"crypto/md5" // #nosec G501 - short non-secret disambiguator, format is fixed
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("uniquecode: malformed code")

var (
	professionalPattern = regexp.MustCompile(`^PROF_(\d{3,})_([A-Z0-9]{4})$`)
	clientPattern       = regexp.MustCompile(`^PROF_(\d{3,})_([A-Z0-9]{4})_CLIENT_(\d+)_([A-Z0-9]{4})$`)
)

// Parts are the components of a client code.
type Parts struct {
	OwnerID          int64
	ProfessionalHash string
	ClientID         int64
	ClientHash       string
}

// Professional returns the code for a professional. salt makes the hash
// differ between accounts that reuse an id (e.g. the creation timestamp).
func Professional(ownerID int64, salt string) string {
	return fmt.Sprintf("PROF_%03d_%s", ownerID, shortHash(fmt.Sprintf("PROF_%d_%s", ownerID, salt)))
}

// Client returns the code for a client owned by the professional whose code
// is profCode.
func Client(profCode string, clientID int64, salt string) string {
	return fmt.Sprintf("%s_CLIENT_%03d_%s",
		profCode,
		clientID,
		shortHash(fmt.Sprintf("%s_CLIENT_%d_%s", profCode, clientID, salt)),
	)
}

// ParseProfessional returns the owner id embedded in a professional code.
func ParseProfessional(code string) (int64, error) {
	m := professionalPattern.FindStringSubmatch(code)
	if m == nil {
		return 0, ErrMalformed
	}
	return strconv.ParseInt(m[1], 10, 64)
}

// Parse splits a client code into its parts.
func Parse(code string) (Parts, error) {
	m := clientPattern.FindStringSubmatch(code)
	if m == nil {
		return Parts{}, ErrMalformed
	}

	owner, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Parts{}, ErrMalformed
	}
	client, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return Parts{}, ErrMalformed
	}

	return Parts{
		OwnerID:          owner,
		ProfessionalHash: m[2],
		ClientID:         client,
		ClientHash:       m[4],
	}, nil
}

// EmbedsOwner reports whether code is a well-formed client code for ownerID.
func EmbedsOwner(code string, ownerID int64) bool {
	p, err := Parse(code)
	return err == nil && p.OwnerID == ownerID
}

// ProfessionalPrefix returns the professional part of a client code.
func ProfessionalPrefix(code string) string {
	prefix, _, ok := strings.Cut(code, "_CLIENT_")
	if !ok {
		return ""
	}
	return prefix
}

func shortHash(s string) string {
	sum := md5.Sum([]byte(s)) // #nosec G401
	return strings.ToUpper(hex.EncodeToString(sum[:])[:4])
}
