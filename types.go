package identikit

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// ClientType identifies the channel that originated a payment.
// Its value is the canonical lowercase token hashed into the key.
type ClientType string

const (
	ClientTypeWebApp     ClientType = "web_app"
	ClientTypeMobileApp  ClientType = "mobile_app"
	ClientTypeWebAPI     ClientType = "web_api"
	ClientTypeDesktopApp ClientType = "desktop_app"
	ClientTypeOther      ClientType = "other"
)

// Valid reports whether c is one of the enumerated client types.
func (c ClientType) Valid() bool {
	switch c {
	case ClientTypeWebApp, ClientTypeMobileApp, ClientTypeWebAPI,
		ClientTypeDesktopApp, ClientTypeOther:
		return true
	}
	return false
}

// ParseClientType converts a raw token (e.g. from a request payload) into a
// ClientType. Matching is case-insensitive on the canonical tokens.
func ParseClientType(s string) (ClientType, error) {
	c := ClientType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", &InvalidInputError{Field: "client_type", Reason: fmt.Sprintf("unknown client type %q", s)}
	}
	return c, nil
}

// HashAlgorithm selects the digest used for key derivation.
//
// The supported set is closed: values outside it are rejected with an
// *UnsupportedAlgorithmError before any hashing occurs.
type HashAlgorithm string

const (
	SHA256 HashAlgorithm = "sha256"
	SHA384 HashAlgorithm = "sha384"
	SHA512 HashAlgorithm = "sha512"
)

// DefaultAlgorithm is used when the caller does not choose an algorithm.
const DefaultAlgorithm = SHA256

// Valid reports whether a is a supported digest algorithm.
func (a HashAlgorithm) Valid() bool {
	_, ok := a.constructor()
	return ok
}

// constructor returns the hash.Hash factory backing the algorithm.
func (a HashAlgorithm) constructor() (func() hash.Hash, bool) {
	switch a {
	case SHA256:
		return sha256.New, true
	case SHA384:
		return sha512.New384, true
	case SHA512:
		return sha512.New, true
	}
	return nil, false
}

// SupportedAlgorithms returns the closed set of digest algorithms this
// package can derive keys with.
func SupportedAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{SHA256, SHA384, SHA512}
}
