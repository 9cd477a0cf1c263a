package main

import (
	"context"
	"errors"
	. "fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/p7r0x7/lesspass"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

var errAmbiguous = errors.New("expected WEBSITE LOGIN [PASSWORD] or a lone PASSWORD|ENTROPY")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := program(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// help prints a usage menu. To consistently render this menu in most terminal windows, its
// content should be no wider than 80 columns.
func help(fs *pflag.FlagSet, w io.Writer) {
	origin, err := os.Executable()
	if err != nil {
		origin = "lpass" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(w, yell, "Generates LessPass-like passwords.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-ELNSUv] [-c <uint>] [-i <uint>] [-l <uint>] [--sha384|sha512]"+n,
		spaces, "WEBSITE LOGIN [PASSWORD]"+n,
		spaces, "[-ELNSUv] [-l <uint>] [PASSWORD|ENTROPY]"+n+n+
			"Options:"+n)
	fs.SetOutput(w)
	fs.PrintDefaults()
	Fprint(w, n+"Examples:"+n+
		"  Generate a password:"+n+
		"    ", name, " example.org contact@example.org password"+n+
		"  Generate the fingerprint of a master password:"+n+
		"    ", name, " password"+n+
		"  Generate a 32-character password using SHA-512:"+n+
		"    echo password | ", name, " example.org contact@example.org --sha512 -l 32"+n+
		"  Save the entropy of a password, using 10,000 iterations:"+n+
		"    ", name, " example.org contact@example.org password -i 10000 -E > entropy.txt"+n+
		"  Generate an alphanumeric password from the saved entropy:"+n+
		"    cat entropy.txt | ", name, " -S"+n+n+
		"A PASSWORD omitted from the command line is read from ", os.Stdin.Name(), "; from a"+n+
		"terminal it is read without echo. Defaults may be kept in LPASS_ITERATIONS,"+n+
		"LPASS_LENGTH, LPASS_COUNTER, LPASS_DIGEST and LPASS_NO_CODES."+n)
}

// program is the command-line interface for lesspass: it derives, renders or fingerprints
// according to how many positional arguments are given and returns the exit code.
func program(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, s, err := parse(args)
	if err != nil {
		return fail(stderr, err)
	}
	if pHelp {
		help(fs, stderr)
		return success
	}
	log := logger(stderr)

	positional := fs.Args()
	if len(positional) > 3 {
		return fail(stderr, errAmbiguous)
	}
	var site, login string
	if len(positional) >= 2 {
		site, login = positional[0], positional[1]
	}
	p, err := profile(site, login, s)
	if err != nil {
		return fail(stderr, err)
	}

	var secret string
	switch len(positional) {
	case 1:
		secret = positional[0]
	case 3:
		secret = positional[2]
	default:
		if secret, err = readSecret(stdin, stderr); err != nil {
			return fail(stderr, err)
		}
	}

	var e lesspass.Entropy
	if len(positional) < 2 {
		/* A lone value is saved entropy if it parses as such, otherwise a master password. */
		if e, err = lesspass.ParseEntropy(secret); err != nil {
			log.Debug("printing fingerprint")
			return emit(stdout, stderr, lesspass.Sum(secret).String())
		}
		log.Debug("using saved entropy")
	} else {
		log.Debug("deriving entropy", "site", p.Site, "login", p.Login, "counter", p.Counter,
			"algorithm", p.Algorithm.String(), "iterations", p.Iterations)
		start := time.Now()
		if e, err = p.Entropy(ctx, secret); err != nil {
			return fail(stderr, err)
		}
		log.Debug("derived entropy", "elapsed", time.Since(start))
	}

	if pEntropy {
		return emit(stdout, stderr, e.String())
	}
	log.Debug("rendering", "charset", p.Charset.String(), "length", p.Length)
	password, err := lesspass.Render(e, p.Charset, p.Length)
	if err != nil {
		return fail(stderr, err)
	}
	return emit(stdout, stderr, password)
}

func emit(stdout, stderr io.Writer, result string) int {
	if isTerminal(stdout) {
		result = yell + result + zero
	}
	if _, err := Fprint(stdout, result, n); err != nil {
		return fail(stderr, err)
	}
	return success
}

// fail reports err and maps it to an exit code; --strict turns it into a panic instead.
func fail(stderr io.Writer, err error) int {
	if pStrict {
		panic(err)
	}
	switch {
	case errors.Is(err, errAmbiguous):
		Fprint(stderr, purp, err, zero, n, "Try `lpass --help`."+n)
		return invalid
	case errors.Is(err, lesspass.ErrInvalidArgument):
		Fprint(stderr, purp, err, zero, n)
		return invalid
	case errors.Is(err, context.Canceled):
		Fprint(stderr, purp, "interrupted", zero, n)
		return failure
	}
	Fprint(stderr, purp, err, zero, n)
	return failure
}

func logger(w io.Writer) *slog.Logger {
	if !pVerbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
