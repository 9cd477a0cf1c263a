package lesspass

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/pbkdf2"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// EntropySize is the number of bytes Derive produces, whichever algorithm is chosen.
const EntropySize = 32

const (
	MinIterations     = 1
	MaxIterations     = 100_000_000
	DefaultIterations = 100_000
)

// Algorithm selects the hash underlying PBKDF2's HMAC. The zero value is SHA256.
type Algorithm uint8

const (
	SHA256 Algorithm = iota
	SHA384
	SHA512
)

var algorithms = [...]string{SHA256: "sha256", SHA384: "sha384", SHA512: "sha512"}

// ParseAlgorithm accepts names such as "sha512", "SHA-512" or "sha_512".
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for a, s := range algorithms {
		if s == name {
			return Algorithm(a), nil
		}
	}
	return SHA256, fmt.Errorf("%w: %q", ErrAlgorithm, name)
}

func (a Algorithm) valid() bool { return int(a) < len(algorithms) }

func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return algorithms[a]
}

// New returns a fresh hash for a, or nil if a is not a known algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	}
	return nil
}

// Entropy is the big-endian representation of the integer a password is rendered from.
type Entropy [EntropySize]byte

// Derive stretches secret and salt into Entropy using PBKDF2. Only iterations and the
// algorithm are checked; salt may be anything, though Salt is what interoperates.
func Derive(secret string, salt []byte, alg Algorithm, iterations uint32) (Entropy, error) {
	var e Entropy
	if !alg.valid() {
		return e, fmt.Errorf("%w: %v", ErrAlgorithm, alg)
	}
	if iterations < MinIterations || iterations > MaxIterations {
		return e, fmt.Errorf("%w: got %d", ErrIterations, iterations)
	}

	/* The derived key length is fixed at 32 bytes even when SHA-384/512 produce more. */
	copy(e[:], pbkdf2.Key([]byte(secret), salt, int(iterations), EntropySize, alg.New))
	return e, nil
}

// DeriveContext is Derive for callers that need to give up waiting. PBKDF2 has no point at
// which it can be interrupted, so on cancellation the computation finishes in the
// background and its result is dropped.
func DeriveContext(ctx context.Context, secret string, salt []byte, alg Algorithm, iterations uint32) (Entropy, error) {
	if err := ctx.Err(); err != nil {
		return Entropy{}, err
	}

	type result struct {
		e   Entropy
		err error
	}
	done := make(chan result, 1) /* Buffered so an abandoned worker never blocks. */
	go func() {
		e, err := Derive(secret, salt, alg, iterations)
		done <- result{e, err}
	}()

	select {
	case r := <-done:
		return r.e, r.err
	case <-ctx.Done():
		return Entropy{}, ctx.Err()
	}
}

// ParseEntropy decodes the 64-character hexadecimal form of a saved Entropy. Either case is
// accepted.
func ParseEntropy(s string) (Entropy, error) {
	var e Entropy
	if len(s) != EntropySize*2 {
		return e, fmt.Errorf("%w: got %d characters", ErrEntropy, len(s))
	}
	if _, err := hex.Decode(e[:], []byte(s)); err != nil {
		return Entropy{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return e, nil
}

func (e Entropy) String() string { return hex.EncodeToString(e[:]) }

func (e Entropy) MarshalText() ([]byte, error) {
	buf := make([]byte, EntropySize*2)
	hex.Encode(buf, e[:])
	return buf, nil
}

func (e *Entropy) UnmarshalText(text []byte) error {
	parsed, err := ParseEntropy(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
