// Package utils provides small helpers shared across cf-ip-updater.
//
//   - Path utilities: resolve target paths relative to the config directory
//   - File utilities: read-or-empty, atomic replace, safe closing
//   - Validation: IP literals and port numbers
//
// Path resolution:
//
//	absPath := utils.GetAbsolutePath("csf.allow", "/etc/csf")
//	// Returns: /etc/csf/csf.allow
//
// Atomic replace keeps the old content intact if the process dies mid-write:
//
//	if err := utils.WriteFileAtomic("/etc/csf/csf.allow", data, 0644); err != nil {
//	    return err
//	}
package utils
