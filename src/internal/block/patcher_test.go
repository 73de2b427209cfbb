package block

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/maksimkurb/cf-ip-updater/src/internal/errors"
	"github.com/maksimkurb/cf-ip-updater/src/internal/hashing"
)

func newTestPatcher() *Patcher {
	p := NewPatcher("cf-ip-updater")
	p.Now = func() time.Time { return fixedTime }
	return p
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}

func TestPatch_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csf.allow")
	p := newTestPatcher()

	updated, err := p.Patch(path, []string{"1.1.1.0/24", "1.0.0.0/24", "2606:4700::/32"}, "d1", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !updated {
		t.Error("Expected update to be reported")
	}

	content := readFile(t, path)
	if content != Build("cf-ip-updater", []string{"1.1.1.0/24", "1.0.0.0/24", "2606:4700::/32"}, "d1", fixedTime) {
		t.Errorf("Unexpected file content:\n%s", content)
	}

	parts, err := Split(content, "cf-ip-updater")
	if err != nil || !parts.Found {
		t.Fatalf("Expected block to be found after patch, err=%v", err)
	}
	if digest, ok := ExtractFingerprint(parts.Block); !ok || digest != "d1" {
		t.Errorf("Expected embedded digest d1, got %q (ok=%v)", digest, ok)
	}
}

func TestPatch_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csf.allow")
	if err := os.WriteFile(path, []byte("# local rules\n10.0.0.1\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	p := newTestPatcher()
	lines := []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"}

	if updated, err := p.Patch(path, lines, "d1", false); err != nil || !updated {
		t.Fatalf("Expected first patch to update, updated=%v err=%v", updated, err)
	}
	afterFirst := readFile(t, path)

	p.Now = func() time.Time { return fixedTime.Add(time.Hour) }
	updated, err := p.Patch(path, lines, "d1", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated {
		t.Error("Expected second patch to report no changes")
	}
	if afterSecond := readFile(t, path); afterSecond != afterFirst {
		t.Errorf("Expected file to be untouched, got:\n%s", afterSecond)
	}
}

func TestPatch_ReplacesOnlyOwnBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csf.allow")
	p := newTestPatcher()

	if _, err := p.Patch(path, []string{"1.1.1.1"}, "old", false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	head := "# header kept\n192.168.0.1\n"
	foreign := "\n### csf-cf-ip BLOCK START ###\n9.9.9.9\n### HASH foreign ###\n### csf-cf-ip BLOCK END ###\n"
	tail := "# tail kept\n"
	content := head + readFile(t, path) + foreign + tail
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	updated, err := p.Patch(path, []string{"2.2.2.2"}, "new", false)
	if err != nil || !updated {
		t.Fatalf("Expected update, updated=%v err=%v", updated, err)
	}

	expected := head + Build("cf-ip-updater", []string{"2.2.2.2"}, "new", fixedTime) + foreign + tail
	if got := readFile(t, path); got != expected {
		t.Errorf("Unexpected content:\n%q\nexpected:\n%q", got, expected)
	}
}

func TestPatch_ForeignBlockUntouchedOnAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csf.ignore")
	foreign := "### other-tool BLOCK START ###\n8.8.8.8\n### HASH zzz ###\n### other-tool BLOCK END ###\n"
	if err := os.WriteFile(path, []byte(foreign), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	p := newTestPatcher()
	if _, err := p.Patch(path, []string{"1.1.1.1"}, "d", false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	content := readFile(t, path)
	if !strings.HasPrefix(content, foreign) {
		t.Errorf("Expected foreign block to be kept as-is, got:\n%s", content)
	}
}

func TestPatch_ForceRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csf.allow")
	p := newTestPatcher()

	if _, err := p.Patch(path, []string{"1.1.1.1"}, "d1", false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p.Now = func() time.Time { return fixedTime.Add(24 * time.Hour) }
	updated, err := p.Patch(path, []string{"1.1.1.1"}, "d1", true)
	if err != nil || !updated {
		t.Fatalf("Expected forced update, updated=%v err=%v", updated, err)
	}
	if !strings.Contains(readFile(t, path), "# Generated at 2026-10-17 03:07") {
		t.Error("Expected forced update to rewrite the timestamp")
	}
}

func TestPatch_ChangedFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csf.allow")
	p := newTestPatcher()

	if _, err := p.Patch(path, []string{"1.1.1.1"}, "d1", false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	updated, err := p.Patch(path, []string{"1.1.1.2"}, "d2", false)
	if err != nil || !updated {
		t.Fatalf("Expected update, updated=%v err=%v", updated, err)
	}
	if strings.Count(readFile(t, path), "BLOCK START") != 1 {
		t.Error("Expected exactly one block after update")
	}
}

func TestPatch_DuplicateBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csf.allow")
	block := Build("cf-ip-updater", []string{"1.1.1.1"}, "d1", fixedTime)
	original := block + block
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := newTestPatcher().Patch(path, []string{"1.1.1.1"}, "d1", false)
	if !errors.HasCode(err, errors.ErrCodeBlock) {
		t.Errorf("Expected BLOCK_ERROR, got %v", err)
	}
	if readFile(t, path) != original {
		t.Error("Expected file to be left untouched")
	}
}

func TestPatch_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csf.allow")
	p := newTestPatcher()
	p.DryRun = true

	updated, err := p.Patch(path, []string{"1.1.1.1"}, "d1", false)
	if err != nil || !updated {
		t.Fatalf("Expected dry run to report an update, updated=%v err=%v", updated, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected dry run not to create the file")
	}
}

func TestPatch_WriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "csf.allow")

	_, err := newTestPatcher().Patch(path, []string{"1.1.1.1"}, "d1", false)
	if !errors.HasCode(err, errors.ErrCodeWrite) {
		t.Errorf("Expected WRITE_ERROR, got %v", err)
	}
}

func TestWriteRaw_CreatesAndDetectsNoChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cf-ips.txt")
	entries := []string{"1.1.1.0/24", "1.0.0.0/24", "2606:4700::/32"}
	fingerprint, _ := hashing.Fingerprint(entries, hashing.ConventionLines)
	p := newTestPatcher()

	updated, err := p.WriteRaw(path, entries, fingerprint, hashing.ConventionLines, false)
	if err != nil || !updated {
		t.Fatalf("Expected update, updated=%v err=%v", updated, err)
	}
	if got := readFile(t, path); got != "1.1.1.0/24\n1.0.0.0/24\n2606:4700::/32\n" {
		t.Errorf("Unexpected content %q", got)
	}

	updated, err = p.WriteRaw(path, entries, fingerprint, hashing.ConventionLines, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated {
		t.Error("Expected no change on second write")
	}

	updated, err = p.WriteRaw(path, entries, fingerprint, hashing.ConventionLines, true)
	if err != nil || !updated {
		t.Errorf("Expected forced write, updated=%v err=%v", updated, err)
	}
}

func TestWriteRaw_RefusesUnrelatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sshd_config")
	original := "1.1.1.1\nPermitRootLogin no\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := newTestPatcher().WriteRaw(path, []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"}, "x", hashing.ConventionLines, true)
	if !errors.HasCode(err, errors.ErrCodeFileSafety) {
		t.Errorf("Expected FILE_SAFETY_ERROR, got %v", err)
	}
	if readFile(t, path) != original {
		t.Error("Expected unrelated file to be left untouched")
	}
}

func TestWriteRaw_AcceptsCRLFAndBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cf-ips.txt")
	if err := os.WriteFile(path, []byte("1.1.1.1\r\n\r\n2.2.2.2\r\n3.3.3.3\r\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	entries := []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"}
	fingerprint, _ := hashing.Fingerprint(entries, hashing.ConventionLines)

	updated, err := newTestPatcher().WriteRaw(path, entries, fingerprint, hashing.ConventionLines, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated {
		t.Error("Expected same entries to be detected as unchanged")
	}
}
