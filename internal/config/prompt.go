package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when a password is needed but stdin is not a
// terminal.
var ErrNoTerminal = errors.New("config: password required but stdin is not a terminal")

// PasswordReader reads a password without echo.
type PasswordReader interface {
	IsTerminal(fd int) bool
	ReadPassword(fd int) ([]byte, error)
}

type termReader struct{}

func (termReader) IsTerminal(fd int) bool              { return term.IsTerminal(fd) }
func (termReader) ReadPassword(fd int) ([]byte, error) { return term.ReadPassword(fd) }

// TerminalPasswordReader reads from the controlling terminal.
var TerminalPasswordReader PasswordReader = termReader{}

// PromptPassword asks for the profile password on fd when the profile
// needs one. The prompt goes to w.
func (p *Profile) PromptPassword(r PasswordReader, fd int, w io.Writer) error {
	if !p.NeedsPassword() {
		return nil
	}
	if !r.IsTerminal(fd) {
		return ErrNoTerminal
	}
	fmt.Fprintf(w, "Password for %s: ", p.Auth.Username)
	pw, err := r.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	p.Auth.Password = strings.TrimRight(string(pw), "\r\n")
	return nil
}
