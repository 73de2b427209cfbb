package block

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/cf-ip-updater/src/internal/errors"
)

const (
	TMPL_MARKER = "marker"
	TMPL_TIME   = "time"

	// TimestampLayout is the "Generated at" format (YYYY-MM-DD HH:MM).
	TimestampLayout = "2006-01-02 15:04"

	hashPrefix = "### HASH "
	hashSuffix = " ###"
)

var headerTemplate = fasttemplate.New(`### {{marker}} BLOCK START ###
# WARNING:
#  Please do not manually edit this block as any update will overwrite changes.
#  Please do not touch the markers.
# Generated at {{time}} by {{marker}}
`, "{{", "}}")

// StartMarker returns the line opening the block owned by marker.
func StartMarker(marker string) string {
	return "### " + marker + " BLOCK START ###"
}

// EndMarker returns the line closing the block owned by marker.
func EndMarker(marker string) string {
	return "### " + marker + " BLOCK END ###"
}

// Parts is a target file split around its marked block.
// Block includes one line break directly before the start marker and one
// directly after the end marker, when present, so that replacing it with a
// freshly built block does not accumulate blank lines.
type Parts struct {
	Before string
	Block  string
	After  string
	Found  bool
}

// Replace returns the file content with the block replaced by newBlock,
// or newBlock appended when the file had no block.
func (p Parts) Replace(newBlock string) string {
	if !p.Found {
		return p.Before + newBlock
	}
	return p.Before + newBlock + p.After
}

// Split locates the block owned by marker in content.
func Split(content, marker string) (Parts, error) {
	lower := asciiLower(content)
	start := asciiLower(StartMarker(marker))
	end := asciiLower(EndMarker(marker))

	startCount := strings.Count(lower, start)
	endCount := strings.Count(lower, end)

	if startCount == 0 && endCount == 0 {
		return Parts{Before: content}, nil
	}
	if startCount > 1 || endCount > 1 {
		return Parts{}, errors.NewBlockError(
			fmt.Sprintf("found %d start and %d end markers for %q, only one block is supported", startCount, endCount, marker), nil)
	}

	startIdx := strings.Index(lower, start)
	endIdx := strings.Index(lower, end)
	if startIdx < 0 || endIdx < 0 || endIdx < startIdx {
		return Parts{}, errors.NewBlockError(fmt.Sprintf("unbalanced block markers for %q", marker), nil)
	}

	spanStart := startIdx
	if spanStart > 0 && content[spanStart-1] == '\n' {
		spanStart--
	}
	spanEnd := endIdx + len(end)
	if spanEnd < len(content) && content[spanEnd] == '\n' {
		spanEnd++
	}

	return Parts{
		Before: content[:spanStart],
		Block:  content[spanStart:spanEnd],
		After:  content[spanEnd:],
		Found:  true,
	}, nil
}

// ExtractFingerprint returns the digest from the "### HASH <digest> ###" line of a block.
func ExtractFingerprint(block string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		lower := asciiLower(line)
		if !strings.HasPrefix(lower, asciiLower(hashPrefix)) || !strings.HasSuffix(lower, hashSuffix) {
			continue
		}
		if len(line) < len(hashPrefix)+len(hashSuffix) {
			continue
		}
		digest := line[len(hashPrefix) : len(line)-len(hashSuffix)]
		if digest == "" || strings.ContainsAny(digest, " \t") {
			continue
		}
		return digest, true
	}
	return "", false
}

// Build renders a complete block, including the leading and trailing line break.
func Build(marker string, lines []string, fingerprint string, now time.Time) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	sb.WriteString(headerTemplate.ExecuteString(map[string]interface{}{
		TMPL_MARKER: marker,
		TMPL_TIME:   now.Format(TimestampLayout),
	}))
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(hashPrefix + fingerprint + hashSuffix + "\n")
	sb.WriteString(EndMarker(marker) + "\n")
	return sb.String()
}

// asciiLower lowercases A-Z only, keeping byte offsets identical to the input.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
