package lesspass

import (
	"context"
	"errors"
	"fmt"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Profile gathers every parameter of a derivation except the master password. It is a plain
// value; nothing in this package stores or remembers profiles.
type Profile struct {
	Site, Login string
	Counter     uint8
	Length      int
	Charset     CharacterSet
	Algorithm   Algorithm
	Iterations  uint32
}

// DefaultProfile returns the parameters LessPass uses when none are given.
func DefaultProfile(site, login string) Profile {
	return Profile{
		Site:       site,
		Login:      login,
		Counter:    1,
		Length:     DefaultLength,
		Charset:    All,
		Algorithm:  SHA256,
		Iterations: DefaultIterations,
	}
}

// Validate reports every parameter of p that is out of range, joined into one error.
func (p Profile) Validate() error {
	var errs []error
	if p.Length < MinLength || p.Length > MaxLength {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrLength, p.Length))
	}
	if p.Counter > MaxCounter {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrCounter, p.Counter))
	}
	if p.Iterations < MinIterations || p.Iterations > MaxIterations {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrIterations, p.Iterations))
	}
	if p.Charset.IsEmpty() {
		errs = append(errs, ErrCharset)
	}
	if !p.Algorithm.valid() {
		errs = append(errs, fmt.Errorf("%w: %v", ErrAlgorithm, p.Algorithm))
	}
	return errors.Join(errs...)
}

func (p Profile) Salt() []byte { return Salt(p.Site, p.Login, p.Counter) }

// Entropy validates p and derives the entropy of secret for it.
func (p Profile) Entropy(ctx context.Context, secret string) (Entropy, error) {
	if err := p.Validate(); err != nil {
		return Entropy{}, err
	}
	return DeriveContext(ctx, secret, p.Salt(), p.Algorithm, p.Iterations)
}

// Password validates p and renders the password of secret for it.
func (p Profile) Password(ctx context.Context, secret string) (string, error) {
	e, err := p.Entropy(ctx, secret)
	if err != nil {
		return "", err
	}
	return Render(e, p.Charset, p.Length)
}
