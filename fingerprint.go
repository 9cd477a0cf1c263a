package lesspass

import (
	"crypto/hmac"
	"encoding/hex"

	"github.com/minio/sha256-simd"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Fingerprint identifies a master password without revealing it. It plays no part in
// deriving passwords.
type Fingerprint [sha256.Size]byte

// Sum returns HMAC-SHA-256 of the empty message keyed with secret.
func Sum(secret string) Fingerprint {
	var f Fingerprint
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Sum(f[:0])
	return f
}

// Equal compares two fingerprints in constant time.
func (f Fingerprint) Equal(other Fingerprint) bool { return hmac.Equal(f[:], other[:]) }

func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }
