//go:build windows

package cli

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// suppressEcho turns off console echo for stdin and returns a func that
// restores the previous console mode. It fails when stdin is not a console.
func suppressEcho(stdin *os.File) (func(), error) {
	console := windows.Handle(stdin.Fd())
	var saved uint32
	if err := windows.GetConsoleMode(console, &saved); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotTerminal, err)
	}
	if err := windows.SetConsoleMode(console, saved&^windows.ENABLE_ECHO_INPUT); err != nil {
		return nil, fmt.Errorf("disable console echo: %w", err)
	}
	return func() { _ = windows.SetConsoleMode(console, saved) }, nil
}
