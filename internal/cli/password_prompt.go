package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyPassword = errors.New("password must not be empty")

	errNotTerminal = errors.New("stdin is not a terminal")
)

// promptPassword prints label and reads one line from env.Stdin. Echo is
// switched off while a terminal user types; piped input is read as is.
func promptPassword(env Env, label string) (string, error) {
	if env.Stdin == nil {
		return "", errors.New("stdin unavailable")
	}
	out := env.stdout()
	fmt.Fprint(out, label)

	if restore, err := suppressEcho(env.Stdin); err == nil {
		defer restore()
	} else if !errors.Is(err, errNotTerminal) {
		return "", err
	}

	line, err := bufio.NewReader(env.Stdin).ReadString('\n')
	fmt.Fprintln(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	return password, nil
}
