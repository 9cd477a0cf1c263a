package lesspass

import (
	"fmt"
	"math/big"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	MinLength     = 6
	MaxLength     = 64
	DefaultLength = 16
)

/* Fails to compile unless MinLength exceeds the number of character classes, which guarantees
that every guaranteed character is inserted into a non-empty password (no division by zero). */
const _ = uint(MinLength - len(classes) - 1)

// Render turns e into a password of the given length that draws only from cs and contains at
// least one character of every class in cs.
//
// e is read as one big-endian integer and consumed as a sequence of digits in mixed radix:
// first one digit per bulk character in the radix of the combined alphabet, then one digit per
// class in the radix of that class's alphabet, then one digit per guaranteed character in the
// radix of the password's current length to choose where it is inserted.
func Render(e Entropy, cs CharacterSet, length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%w: got %d", ErrLength, length)
	}
	if cs.IsEmpty() {
		return "", ErrCharset
	}
	chars, sets := cs.Characters(), cs.Sets()
	q := newQuotient(e)

	// Bulk
	password := make([]byte, 0, length)
	for i := length - len(sets); i > 0; i-- {
		password = append(password, chars[q.next(len(chars))])
	}

	// Coverage
	extra := make([]byte, len(sets))
	for i, set := range sets {
		extra[i] = set[q.next(len(set))]
	}

	// Insertion
	for _, c := range extra {
		at := q.next(len(password))
		password = append(password, 0)
		copy(password[at+1:], password[at:])
		password[at] = c
	}
	return string(password), nil
}

// quotient is what remains of an Entropy integer after some of its digits have been taken.
type quotient struct {
	q, radix, rem big.Int
}

func newQuotient(e Entropy) *quotient {
	q := &quotient{}
	q.q.SetBytes(e[:]) /* Copies; e is left untouched. */
	return q
}

// next removes and returns the least-significant base-radix digit of q.
func (q *quotient) next(radix int) int {
	q.radix.SetInt64(int64(radix))
	q.q.QuoRem(&q.q, &q.radix, &q.rem)
	return int(q.rem.Int64())
}
