package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Hasher computes password digests with a server-wide secret key. The digest
// is deterministic so verification is a plain string compare against the
// stored value. Weaker than a per-user salted slow hash, but the stored
// digests depend on this exact scheme.
type Hasher struct{ Key []byte }

func New(key []byte) *Hasher { return &Hasher{Key: key} }

func (h *Hasher) Hash(password string) string {
	mac := hmac.New(sha256.New, h.Key)
	mac.Write([]byte(password))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify compares a candidate password against a stored digest.
func (h *Hasher) Verify(password, digest string) bool {
	return h.Hash(password) == digest
}
