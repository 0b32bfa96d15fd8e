//go:build linux

package cli

import "golang.org/x/sys/unix"

const (
	getTerminalAttrs = unix.TCGETS
	setTerminalAttrs = unix.TCSETS
)
