//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// suppressEcho clears ECHO on the terminal behind stdin and returns a func
// that restores the previous attributes. It fails for pipes and files.
func suppressEcho(stdin *os.File) (func(), error) {
	fd := int(stdin.Fd())
	saved, err := unix.IoctlGetTermios(fd, getTerminalAttrs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNotTerminal, err)
	}

	silent := *saved
	silent.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(fd, setTerminalAttrs, &silent); err != nil {
		return nil, fmt.Errorf("disable terminal echo: %w", err)
	}
	return func() { _ = unix.IoctlSetTermios(fd, setTerminalAttrs, saved) }, nil
}
