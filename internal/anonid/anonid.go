// Package anonid generates and validates the opaque pseudonymous ids used
// to key stored results. An id is the UTC hour the id was minted
// (YYYYMMDDHH, 10 digits) followed by 12 random hex characters, 22 bytes
// total. The scoring engine treats ids as opaque strings; only this package
// knows the format.
package anonid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"time"
)

var idPattern = regexp.MustCompile(`^\d{10}[a-f0-9]{12}$`)

// New mints an anonymous id for the current UTC hour.
func New() string {
	ts := time.Now().UTC().Format("2006010215")
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return ts + hex.EncodeToString(buf)
}

// Valid reports whether id matches the anonymous-id format.
func Valid(id string) bool {
	return len(id) == 22 && idPattern.MatchString(id)
}

// MintedAt extracts the UTC hour encoded in id. The zero time and false are
// returned for ids that do not validate or encode an impossible date.
func MintedAt(id string) (time.Time, bool) {
	if !Valid(id) {
		return time.Time{}, false
	}
	t, err := time.Parse("2006010215", id[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SessionToken returns a 32-hex-character random token for temporary
// sessions.
func SessionToken() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Hash one-way hashes sensitive request data (IP, user agent) before it is
// stored for analytics.
func Hash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
