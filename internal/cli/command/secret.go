// Package command provides CLI command definitions for tagoverride.
package command

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/yndnr/tagoverride-go/internal/core/domain"
)

// stdinSecret is the secret file name that selects standard input.
const stdinSecret = "-"

// Terminal access, replaced in tests.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// readSecret reads the shared secret.
//
// A path of "-" reads stdin: with a terminal attached the user is prompted
// with echo disabled, otherwise stdin is read to EOF. The bytes are used
// verbatim, trailing newline included, because verifiers hash the secret
// file as-is.
func readSecret(path string, stdin io.Reader, prompt io.Writer) ([]byte, error) {
	if path == "" {
		return nil, domain.ErrSecretMissing
	}

	var (
		data []byte
		err  error
	)
	if path == stdinSecret {
		data, err = readSecretStdin(stdin, prompt)
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			err = domain.ErrSecretUnreadable.WithDetails(path).WithCause(err)
		}
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, domain.ErrSecretEmpty.WithDetails(path)
	}
	return data, nil
}

func readSecretStdin(stdin io.Reader, prompt io.Writer) ([]byte, error) {
	if f, ok := stdin.(*os.File); ok && isTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Secret: ")
		data, err := readPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return nil, domain.ErrSecretUnreadable.WithDetails("terminal").WithCause(err)
		}
		return data, nil
	}

	if stdin == nil {
		return nil, domain.ErrNoTerminal
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, domain.ErrSecretUnreadable.WithDetails("stdin").WithCause(err)
	}
	return data, nil
}

// wipe zeroes a secret once it is no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
