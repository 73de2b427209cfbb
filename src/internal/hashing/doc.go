// Package hashing provides the checksums used for change detection.
//
// Digests are hex-encoded SHA-1, which is what older cf-ip-updater releases
// stored in the "### HASH <digest> ###" line, so blocks they wrote are still
// recognised as up to date.
//
// # Components
//
//   - ChecksumReaderProxy: Calculates a checksum while reading from an io.Reader
//   - ChecksumListProxy: Calculates a checksum of an ordered list of entries
//   - Fingerprint: Digest of an IP list under a Convention
//
// # Conventions
//
//   - ConventionLines: entries joined with "\n", trailing newline included
//   - ConventionConcat: entries concatenated without separator (legacy csf-cf-ip blocks)
//
// The two conventions never produce the same digest for the same list, so a
// target must always be checked with the convention it was written with.
package hashing
