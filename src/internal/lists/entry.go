package lists

import (
	"strings"

	"github.com/maksimkurb/cf-ip-updater/src/internal/utils"
)

// ParseEntry normalizes one line of a published list.
// It returns the trimmed entry without comments, or ok=false when the line
// holds no valid IPv4/IPv6 address (with optional numeric "/mask").
func ParseEntry(line string) (entry string, ok bool) {
	entry = stripComment(strings.TrimSpace(line))
	if entry == "" {
		return "", false
	}

	if !utils.IsIPOrCIDR(entry) {
		return "", false
	}

	return entry, true
}

func stripComment(line string) string {
	if idx := strings.IndexAny(line, ";#"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimRight(line, " \t\v\f")
}
