package block

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/maksimkurb/cf-ip-updater/src/internal/errors"
	"github.com/maksimkurb/cf-ip-updater/src/internal/hashing"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
	"github.com/maksimkurb/cf-ip-updater/src/internal/utils"
)

const DefaultFileMode os.FileMode = 0644

// Patcher writes rendered lists into target files.
type Patcher struct {
	Marker string
	// Now defaults to time.Now.
	Now func() time.Time
	// FileMode applies to newly created files only.
	FileMode os.FileMode
	// DryRun reports whether a target would change without writing it.
	DryRun bool
}

func NewPatcher(marker string) *Patcher {
	return &Patcher{
		Marker:   marker,
		Now:      time.Now,
		FileMode: DefaultFileMode,
	}
}

// Patch replaces (or appends) the marked block in path.
// It returns false without touching the file when the embedded fingerprint
// already equals fingerprint and force is not set.
func (p *Patcher) Patch(path string, lines []string, fingerprint string, force bool) (bool, error) {
	content, _, err := utils.ReadFileOrEmpty(path)
	if err != nil {
		return false, errors.NewWriteError(fmt.Sprintf("failed to read target file %s", path), err)
	}

	parts, err := Split(string(content), p.Marker)
	if err != nil {
		return false, fmt.Errorf("target file %s: %w", path, err)
	}

	if parts.Found && !force {
		if existing, ok := ExtractFingerprint(parts.Block); ok && strings.EqualFold(existing, fingerprint) {
			log.Infof("No changes detected in %s, IP list is up to date.", path)
			return false, nil
		}
	}

	if p.DryRun {
		log.Infof("Target %s would be updated", path)
		return true, nil
	}

	newContent := parts.Replace(Build(p.Marker, lines, fingerprint, p.now()))
	if err := utils.WriteFileAtomic(path, []byte(newContent), p.fileMode()); err != nil {
		return false, errors.NewWriteError(fmt.Sprintf("output file %q could not be written", path), err)
	}

	log.Infof("Updated IP list in %s.", path)
	return true, nil
}

// WriteRaw replaces the whole file with entries, one per line.
// An existing file is only overwritten if every non-empty line in it is an IP
// or CIDR, so a misconfigured path cannot clobber an unrelated file. Change
// detection hashes the existing lines with the same convention as fingerprint.
func (p *Patcher) WriteRaw(path string, entries []string, fingerprint string, convention hashing.Convention, force bool) (bool, error) {
	content, exists, err := utils.ReadFileOrEmpty(path)
	if err != nil {
		return false, errors.NewWriteError(fmt.Sprintf("failed to read output file %s", path), err)
	}

	if exists {
		oldEntries, err := rawEntries(path, string(content))
		if err != nil {
			return false, err
		}

		if !force {
			oldFingerprint, err := hashing.Fingerprint(oldEntries, convention)
			if err != nil {
				return false, err
			}
			if oldFingerprint == fingerprint {
				log.Infof("No changes detected in %s, IP list is up to date.", path)
				return false, nil
			}
		}
	}

	if p.DryRun {
		log.Infof("Output file %s would be updated", path)
		return true, nil
	}

	data := strings.Join(entries, "\n") + "\n"
	if err := utils.WriteFileAtomic(path, []byte(data), p.fileMode()); err != nil {
		return false, errors.NewWriteError(fmt.Sprintf("output file %q could not be written", path), err)
	}

	log.Infof("Updated IP list in %s.", path)
	return true, nil
}

func rawEntries(path, content string) ([]string, error) {
	var entries []string
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if !utils.IsIPOrCIDR(line) {
			return nil, errors.NewFileSafetyError(
				fmt.Sprintf("output file %s to be overwritten can only contain raw IP addresses (line %d: %q)", path, i+1, line), nil)
		}
		entries = append(entries, line)
	}
	return entries, nil
}

func (p *Patcher) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p *Patcher) fileMode() os.FileMode {
	if p.FileMode == 0 {
		return DefaultFileMode
	}
	return p.FileMode
}
