package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// readSecret prompts for the master password without echo when stdin is a terminal, and
// otherwise reads a single line from it.
func readSecret(stdin io.Reader, prompt io.Writer) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, purp, "Master password: ", zero)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprint(prompt, n)
		if err != nil {
			return "", fmt.Errorf("unable to read from the terminal: %w", err)
		}
		return string(secret), nil
	}
	return readLine(stdin)
}

// readLine returns the first line of r without its line terminator. Input ending without a
// terminator is a complete line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("unable to read from standard input: %w", err)
	}
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	}
	return line, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !pNoCodes && term.IsTerminal(int(f.Fd()))
}
