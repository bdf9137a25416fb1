// Package tty inspects the terminal the interactive host runs in.
package tty

import (
	"fmt"
	"os"
)

// Path resolves the controlling terminal by probing stdin, stdout and
// stderr in that order.
func Path() (string, error) {
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		if !IsTerminal(f.Fd()) {
			continue
		}
		if target, err := name(f.Fd()); err == nil && target != "" {
			return target, nil
		}
	}
	return "", fmt.Errorf("tty: no controlling terminal")
}
