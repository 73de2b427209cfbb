// Package updater runs one update of all configured targets.
//
// A run downloads the sources once, builds and validates the IP list, then
// visits every target in configuration order: the list is fingerprinted with
// the target's convention, rendered in the target's mode and written through
// the block patcher (or as a raw file). The reload command runs at most once,
// after all targets, and only if at least one of them changed.
//
// The first failing target stops the run. Targets processed before it keep
// their new content.
package updater
