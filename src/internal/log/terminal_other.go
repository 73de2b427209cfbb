//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package log

// Colors stay off where terminal detection is not available.
func isTerminal(fd int) bool {
	return false
}
