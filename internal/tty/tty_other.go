//go:build !linux

package tty

import "fmt"

// IsTerminal assumes a terminal where termios probing is not wired up; the
// keyboard package reports the real failure when it cannot enter raw mode.
func IsTerminal(fd uintptr) bool { return true }

func name(fd uintptr) (string, error) {
	return "", fmt.Errorf("tty: terminal names are only resolved on linux")
}
