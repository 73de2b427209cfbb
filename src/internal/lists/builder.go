package lists

import (
	"fmt"
	"strings"

	"github.com/maksimkurb/cf-ip-updater/src/internal/errors"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
)

// MinEntries is the smallest list accepted as a real provider response.
const MinEntries = 3

// IPList is an ordered list of validated entries in first-seen order.
type IPList []string

// BuildList parses the concatenated download result.
// Invalid and empty lines are dropped; order is preserved and no de-duplication is done.
func BuildList(raw string) (IPList, error) {
	lines := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	ipList := make(IPList, 0, len(lines))
	skipped := 0
	for _, line := range lines {
		if entry, ok := ParseEntry(line); ok {
			ipList = append(ipList, entry)
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" && !isCommentLine(trimmed) {
			log.Debugf("Skipping invalid line: %q", trimmed)
			skipped++
		}
	}

	if skipped > 0 {
		log.Warnf("Skipped %d invalid line(s) in downloaded list", skipped)
	}

	if len(ipList) < MinEntries {
		return nil, errors.NewValidationError(
			fmt.Sprintf("IP list downloaded is not usable: %d valid entries, at least %d required", len(ipList), MinEntries),
			nil,
		)
	}

	return ipList, nil
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";")
}
