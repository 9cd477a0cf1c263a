package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/p7r0x7/lesspass"
	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pIterations, pLength, pCounter, pNoCodesDefault = uint32(0), uint8(0), uint8(0), false
var pHelp, pSHA256, pSHA384, pSHA512, pNoLower, pNoUpper, pNoNumbers, pNoSymbols, pEntropy bool
var pNoCodes, pQuiet, pStrict, pVerbose bool
var yell, purp, zero string

var errAlgorithms = errors.New("only one algorithm must be provided")

// settings are the defaults a user may keep in the environment instead of repeating flags.
type settings struct {
	Iterations uint32 `env:"LPASS_ITERATIONS" envDefault:"100000"`
	Length     uint8  `env:"LPASS_LENGTH" envDefault:"16"`
	Counter    uint8  `env:"LPASS_COUNTER" envDefault:"1"`
	Digest     string `env:"LPASS_DIGEST" envDefault:"sha256"`
	NoCodes    bool   `env:"LPASS_NO_CODES"`
}

// parse registers every flag on a fresh set, seeded with the environment's defaults, and
// parses args into the p* variables.
func parse(args []string) (*FlagSet, settings, error) {
	var s settings
	if err := env.Parse(&s); err != nil {
		return nil, s, fmt.Errorf("%w: %v", lesspass.ErrInvalidArgument, err)
	}

	/* Formatting codes are settled before any flag is registered since usages embed them. */
	noCodes := pNoCodesDefault || s.NoCodes
	for _, arg := range args {
		switch arg {
		case "--no-codes=false":
			noCodes = false
		case "--quiet", "--quiet=true", "--no-codes", "--no-codes=true":
			noCodes = true
		}
	}
	yell, purp, zero = "\033[33m", "\033[35m", "\033[0m"
	if noCodes {
		yell, purp, zero = "", "", ""
	}

	fs := NewFlagSet("lpass", ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	fs.BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	fs.Uint8VarP(&pCounter, "counter", "c", s.Counter,
		purp+"arbitrary number used for password generation"+zero)

	fs.BoolVarP(&pEntropy, "return-entropy", "E", false,
		purp+"print the entropy instead of generating a password"+zero)

	fs.Uint32VarP(&pIterations, "iterations", "i", s.Iterations,
		purp+"number of iterations used for entropy generation"+zero)

	fs.Uint8VarP(&pLength, "length", "l", s.Length,
		purp+"length of the generated password"+zero)

	fs.BoolVarP(&pNoLower, "no-lower", "L", false,
		purp+"exclude lowercase characters"+zero)

	fs.BoolVarP(&pNoNumbers, "no-numbers", "N", false,
		purp+"exclude numbers"+zero)

	fs.BoolVarP(&pNoSymbols, "no-symbols", "S", false,
		purp+"exclude symbols"+zero)

	fs.BoolVarP(&pNoUpper, "no-upper", "U", false,
		purp+"exclude uppercase characters"+zero)

	fs.BoolVar(&pNoCodes, "no-codes", noCodes,
		purp+"print to console w/o formatting codes"+zero)

	fs.BoolVar(&pQuiet, "quiet", false,
		purp+"print ONLY results and breaking errors"+zero+n+"(enables --no-codes)")

	fs.BoolVar(&pSHA256, "sha256", false,
		purp+"use SHA-256 for password generation"+zero+" (default)")

	fs.BoolVar(&pSHA384, "sha384", false,
		purp+"use SHA-384 for password generation"+zero)

	fs.BoolVar(&pSHA512, "sha512", false,
		purp+"use SHA-512 for password generation"+zero)

	fs.BoolVar(&pStrict, "strict", false,
		purp+"cause lpass to panic on any error"+zero)

	fs.BoolVarP(&pVerbose, "verbose", "v", false,
		purp+"log each step of the derivation to stderr"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	fs.SortFlags = false
	if err := fs.Parse(args); err != nil {
		return fs, s, fmt.Errorf("%w: %v", lesspass.ErrInvalidArgument, err)
	}
	pNoCodes = pNoCodes || pQuiet
	return fs, s, nil
}

// profile turns the parsed flags into the parameters of a derivation.
func profile(site, login string, s settings) (lesspass.Profile, error) {
	p := lesspass.DefaultProfile(site, login)
	p.Counter, p.Length, p.Iterations = pCounter, int(pLength), pIterations

	switch {
	case btoi(pSHA256)+btoi(pSHA384)+btoi(pSHA512) > 1:
		return p, fmt.Errorf("%w: %w", lesspass.ErrInvalidArgument, errAlgorithms)
	case pSHA256:
		p.Algorithm = lesspass.SHA256
	case pSHA384:
		p.Algorithm = lesspass.SHA384
	case pSHA512:
		p.Algorithm = lesspass.SHA512
	default:
		alg, err := lesspass.ParseAlgorithm(s.Digest)
		if err != nil {
			return p, err
		}
		p.Algorithm = alg
	}

	for _, ex := range [...]struct {
		set  bool
		flag lesspass.CharacterSet
	}{
		{pNoLower, lesspass.Lowercase},
		{pNoUpper, lesspass.Uppercase},
		{pNoNumbers, lesspass.Numbers},
		{pNoSymbols, lesspass.Symbols},
	} {
		if ex.set {
			p.Charset = p.Charset.Without(ex.flag)
		}
	}
	return p, p.Validate()
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
