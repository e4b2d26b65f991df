package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// Signer computes keyed HMAC-SHA256 signatures over request bodies.
// It keeps a pool of hashers bound to its key so concurrent requests do not
// allocate a new HMAC each time.
//
// A nil *Signer or one created with an empty key is disabled: Sign returns ""
// and Verify accepts everything.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a signer for hashKey, or nil when hashKey is empty.
//
// Example usage:
//
//	signer := utils.NewSigner("my-secret-key")
//	req.Header.Set(utils.HashHeader, signer.Sign(body))
func NewSigner(hashKey string) *Signer {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Enabled reports whether the signer has a key.
func (s *Signer) Enabled() bool {
	return s != nil
}

// Hash computes the raw HMAC-SHA256 digest of data using a pooled hasher.
func (s *Signer) Hash(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex digest of data, or "" for a disabled signer.
func (s *Signer) Sign(data []byte) string {
	if !s.Enabled() {
		return ""
	}
	return hex.EncodeToString(s.Hash(data))
}

// Verify reports whether signature is the hex digest of data. It compares in
// constant time.
func (s *Signer) Verify(data []byte, signature string) bool {
	if !s.Enabled() {
		return true
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.Hash(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Signer.Sign], this function creates a new HMAC instance on each
// call. Suitable for one-off hashing in tests and tools.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
