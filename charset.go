package lesspass

import "strings"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// CharacterSet describes which classes of characters a rendered password may contain.
type CharacterSet uint8

const (
	Uppercase CharacterSet = 1 << iota
	Lowercase
	Numbers
	Symbols

	Letters = Uppercase | Lowercase
	All     = Letters | Numbers | Symbols
)

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	NumberChars    = "0123456789"
	SymbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

/* Iteration order of every table below is an interoperability contract: alphabets are
concatenated, and guaranteed characters are drawn, lowercase first and symbols last. */
var classes = [...]struct {
	flag  CharacterSet
	chars string
	name  string
}{
	{Lowercase, LowercaseChars, "lowercase"},
	{Uppercase, UppercaseChars, "uppercase"},
	{Numbers, NumberChars, "numbers"},
	{Symbols, SymbolChars, "symbols"},
}

func (cs CharacterSet) Has(flags CharacterSet) bool { return cs&flags == flags }

func (cs CharacterSet) Without(flags CharacterSet) CharacterSet { return cs &^ flags }

func (cs CharacterSet) IsEmpty() bool { return cs&All == 0 }

// Count returns the number of character classes present in cs.
func (cs CharacterSet) Count() (n int) {
	for _, c := range classes {
		if cs.Has(c.flag) {
			n++
		}
	}
	return n
}

// Characters returns every character a password rendered with cs may draw from.
func (cs CharacterSet) Characters() string {
	var b strings.Builder
	b.Grow(len(LowercaseChars) + len(UppercaseChars) + len(NumberChars) + len(SymbolChars))
	for _, c := range classes {
		if cs.Has(c.flag) {
			b.WriteString(c.chars)
		}
	}
	return b.String()
}

// Sets returns the alphabet of each class present in cs.
func (cs CharacterSet) Sets() []string {
	sets := make([]string, 0, len(classes))
	for _, c := range classes {
		if cs.Has(c.flag) {
			sets = append(sets, c.chars)
		}
	}
	return sets
}

func (cs CharacterSet) String() string {
	if cs.IsEmpty() {
		return "none"
	}
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		if cs.Has(c.flag) {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, "|")
}
