package casino

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const hashSeparator = "|"

// Signed is a wire request the pipeline can sign. HashFields returns the
// operation fields in the exact order the backend hashes them, without the
// merchant id and without the private key.
type Signed interface {
	HashFields() []string
	SetSignature(merchantID int64, hash string)
}

// Signature is embedded in every wire request. Both fields are written by the
// pipeline right before dispatch, never by callers.
type Signature struct {
	MerchantID int64  `json:"merchantId"`
	Hash       string `json:"hash"`
}

// SetSignature populates the merchant id and integrity hash.
func (s *Signature) SetSignature(merchantID int64, hash string) {
	s.MerchantID = merchantID
	s.Hash = hash
}

// SignedBy returns what SetSignature stored. Backends use it to verify a
// decoded request.
func (s *Signature) SignedBy() (merchantID int64, hash string) {
	return s.MerchantID, s.Hash
}

// Sign hashes the pipe-joined field values followed by the secret with
// SHA-256 and returns it hex encoded.
func Sign(fields []string, secret string) string {
	parts := make([]string, 0, len(fields)+1)
	parts = append(parts, fields...)
	parts = append(parts, secret)

	sum := sha256.Sum256([]byte(strings.Join(parts, hashSeparator)))
	return hex.EncodeToString(sum[:])
}

// SignRequest computes the hash of req for the given merchant.
func SignRequest(merchantID int64, secret string, req Signed) string {
	fields := append([]string{FormatInt(merchantID)}, req.HashFields()...)
	return Sign(fields, secret)
}

// VerifyRequest recomputes the hash of req and compares it with hash in
// constant time.
func VerifyRequest(merchantID int64, secret string, req Signed, hash string) bool {
	expected := SignRequest(merchantID, secret, req)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(hash))) == 1
}

// FormatInt formats an integer hash field in base 10.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatOptionalInt is FormatInt for optional fields. nil hashes as "".
func FormatOptionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// FormatAmount formats a money amount with the fewest digits that round trip.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTime formats t as RFC 3339 in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatOptionalTime is FormatTime for optional fields. nil hashes as "".
func FormatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTime(*t)
}

// FormatList joins list values with commas.
func FormatList(values []string) string {
	return strings.Join(values, ",")
}
