package log

import "os"

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return isTerminal(int(f.Fd()))
}
