package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/dirctl/internal/core/ports/driven"
)

// Ensure both suppliers implement the port.
var (
	_ driven.AuthCodeSupplier = (*InteractiveSupplier)(nil)
	_ driven.AuthCodeSupplier = (*StaticSupplier)(nil)
)

// InteractiveSupplier prints the authorization URL and block-reads a
// verification code from its input stream.
type InteractiveSupplier struct {
	in  io.Reader
	out io.Writer
}

// NewInteractiveSupplier creates a supplier bound to stdin/stdout.
func NewInteractiveSupplier() *InteractiveSupplier {
	return &InteractiveSupplier{in: os.Stdin, out: os.Stdout}
}

// Code prompts for and reads a verification code.
func (s *InteractiveSupplier) Code(ctx context.Context, authURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(s.out, "Visit the URL below to authorise this application:\n\n  %s\n\n", authURL)
	if f, ok := s.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(s.out, "Enter verification code: ")
	}

	line, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read verification code: %w", err)
	}

	code := strings.TrimSpace(line)
	if code == "" {
		return "", fmt.Errorf("read verification code: empty input")
	}
	return code, nil
}

// StaticSupplier returns a fixed code. Used by automated contexts and tests.
type StaticSupplier struct {
	code string
}

// NewStaticSupplier creates a supplier that always returns code.
func NewStaticSupplier(code string) *StaticSupplier {
	return &StaticSupplier{code: code}
}

// Code returns the configured code.
func (s *StaticSupplier) Code(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.code == "" {
		return "", fmt.Errorf("no authorization code configured")
	}
	return s.code, nil
}
