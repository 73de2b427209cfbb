// Package domain defines core interfaces for dependency injection and abstraction.
//
// This package contains the fundamental interfaces that enable loose coupling between
// the update engine and the network, the filesystem and the firewall, so that the
// engine can be tested without any of them.
package domain

import (
	"context"

	"github.com/maksimkurb/cf-ip-updater/src/internal/hashing"
)

// ListFetcher downloads IP list sources.
//
// Implementations must return the bodies concatenated in source order, each
// followed by a newline, or an error if any source fails.
type ListFetcher interface {
	Fetch(ctx context.Context, sources []string) (string, error)
}

// TargetWriter maintains the IP list inside target files.
type TargetWriter interface {
	// Patch replaces (or appends) the marked block in path.
	// Returns true if the file was (or, in dry-run mode, would be) rewritten.
	Patch(path string, lines []string, fingerprint string, force bool) (bool, error)

	// WriteRaw replaces the whole file with the list, refusing files
	// that hold anything but IP addresses.
	WriteRaw(path string, entries []string, fingerprint string, convention hashing.Convention, force bool) (bool, error)
}

// Reloader runs the firewall reload command.
type Reloader interface {
	Reload(ctx context.Context, command string) error
}
