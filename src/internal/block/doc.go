// Package block maintains the tool-owned region of a firewall configuration file.
//
// A marked block looks like this:
//
//	### cf-ip-updater BLOCK START ###
//	# WARNING:
//	#  Please do not manually edit this block as any update will overwrite changes.
//	#  Please do not touch the markers.
//	# Generated at 2026-10-16 03:00 by cf-ip-updater
//	tcp|in|d=443|s=173.245.48.0/20
//	### HASH 5b3c... ###
//	### cf-ip-updater BLOCK END ###
//
// Markers are matched case-insensitively anywhere in the file. Everything
// outside the block is preserved byte for byte. A file with more than one
// block, or with unbalanced markers, is refused instead of guessing which
// block to replace.
package block
