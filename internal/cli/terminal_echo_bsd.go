//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import "golang.org/x/sys/unix"

const (
	getTerminalAttrs = unix.TIOCGETA
	setTerminalAttrs = unix.TIOCSETA
)
