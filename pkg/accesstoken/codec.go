// Package accesstoken derives the self-service access tokens printed into
// client QR codes. A token is the client's unique code followed by a short
// fingerprint over (unique code, owner id), so it can always be recomputed
// from stored client data and never has to be persisted.
package accesstoken

import (
	"crypto/hmac"
	"crypto/md5" // #nosec G501 - required for compatibility with issued QR codes
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Supported fingerprint algorithms.
const (
	AlgorithmMD5        = "md5"
	AlgorithmHMACSHA256 = "hmac-sha256"
)

// Separator joins the unique code and owner id in the canonical string.
const Separator = "_SECURE_"

const (
	md5FingerprintLen  = 8
	hmacFingerprintLen = 16
)

var (
	ErrEmptyCode         = errors.New("accesstoken: unique code is empty")
	ErrInvalidOwner      = errors.New("accesstoken: owner id must be positive")
	ErrMissingSecret     = errors.New("accesstoken: hmac secret is required")
	ErrUnknownAlgorithm  = errors.New("accesstoken: unknown algorithm")
	ErrMissingLinkFields = errors.New("accesstoken: base url and token are required")
)

// Codec computes access tokens. Implementations must be deterministic.
type Codec interface {
	Algorithm() string
	Compute(uniqueCode string, ownerID int64) (string, error)
}

// New returns the codec for the named algorithm. An empty name selects MD5.
func New(algorithm, secret string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", AlgorithmMD5:
		return MD5Codec{}, nil
	case AlgorithmHMACSHA256:
		return NewHMACCodec(secret)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// MD5Codec reproduces the tokens already printed on client QR codes: the
// first 8 hex chars of md5(uniqueCode + "_SECURE_" + ownerID). Anyone who
// knows a client's unique code and owner can forge it.
type MD5Codec struct{}

func (MD5Codec) Algorithm() string { return AlgorithmMD5 }

func (MD5Codec) Compute(uniqueCode string, ownerID int64) (string, error) {
	msg, err := canonical(uniqueCode, ownerID)
	if err != nil {
		return "", err
	}
	sum := md5.Sum([]byte(msg)) // #nosec G401
	return uniqueCode + "_" + hex.EncodeToString(sum[:])[:md5FingerprintLen], nil
}

// HMACCodec keys the fingerprint with a server secret. Tokens issued under
// MD5Codec do not verify under it.
type HMACCodec struct {
	secret []byte
}

func NewHMACCodec(secret string) (*HMACCodec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &HMACCodec{secret: []byte(secret)}, nil
}

func (c *HMACCodec) Algorithm() string { return AlgorithmHMACSHA256 }

func (c *HMACCodec) Compute(uniqueCode string, ownerID int64) (string, error) {
	msg, err := canonical(uniqueCode, ownerID)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, c.secret)
	_, _ = mac.Write([]byte(msg))
	return uniqueCode + "_" + hex.EncodeToString(mac.Sum(nil))[:hmacFingerprintLen], nil
}

// Equal reports whether two tokens are identical without leaking where they
// first differ.
func Equal(presented, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}

// Fingerprint returns the trailing segment of a token, which is safe to log.
func Fingerprint(token string) string {
	i := strings.LastIndexByte(token, '_')
	if i < 0 {
		return ""
	}
	return token[i+1:]
}

func canonical(uniqueCode string, ownerID int64) (string, error) {
	if uniqueCode == "" {
		return "", ErrEmptyCode
	}
	if ownerID <= 0 {
		return "", ErrInvalidOwner
	}
	return uniqueCode + Separator + strconv.FormatInt(ownerID, 10), nil
}
