package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, f func()) (string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetVerbose(false)
		SetForceStdErr(false)
		SetNoColor(false)
		SetQuiet(false)
	})

	f()
	return out.String(), errOut.String()
}

func TestDebugf_OnlyInVerboseMode(t *testing.T) {
	stdout, _ := captureOutput(t, func() {
		Debugf("hidden %d", 1)
		SetVerbose(true)
		Debugf("shown %d", 2)
	})

	if strings.Contains(stdout, "hidden") {
		t.Errorf("Expected debug message to be suppressed, got: %q", stdout)
	}
	if !strings.Contains(stdout, "shown 2") || !strings.Contains(stdout, "[DBG]") {
		t.Errorf("Expected debug message in verbose mode, got: %q", stdout)
	}
}

func TestLevels_Streams(t *testing.T) {
	stdout, stderr := captureOutput(t, func() {
		Infof("info message")
		Warnf("warn message")
		Errorf("error message")
	})

	if !strings.Contains(stdout, "[INF]\033[0m info message") {
		t.Errorf("Expected info on stdout, got: %q", stdout)
	}
	if !strings.Contains(stdout, "warn message") {
		t.Errorf("Expected warning on stdout, got: %q", stdout)
	}
	if strings.Contains(stdout, "error message") {
		t.Errorf("Expected error not to be on stdout")
	}
	if !strings.Contains(stderr, "error message") {
		t.Errorf("Expected error on stderr, got: %q", stderr)
	}
}

func TestSetForceStdErr(t *testing.T) {
	stdout, stderr := captureOutput(t, func() {
		SetForceStdErr(true)
		Infof("moved")
	})

	if stdout != "" {
		t.Errorf("Expected empty stdout, got: %q", stdout)
	}
	if !strings.Contains(stderr, "moved") {
		t.Errorf("Expected message on stderr, got: %q", stderr)
	}
}

func TestSetNoColor(t *testing.T) {
	stdout, _ := captureOutput(t, func() {
		SetNoColor(true)
		Infof("plain")
	})

	if stdout != "[INF] plain\n" {
		t.Errorf("Expected uncolored line, got: %q", stdout)
	}
}

func TestSetQuiet(t *testing.T) {
	stdout, stderr := captureOutput(t, func() {
		SetQuiet(true)
		SetVerbose(true)
		Debugf("nothing")
		Infof("nothing")
		Warnf("nothing")
		Errorf("failure")
	})

	if stdout != "" {
		t.Errorf("Expected no regular output, got %q", stdout)
	}
	if !strings.Contains(stderr, "failure") {
		t.Errorf("Expected errors to stay visible, got %q", stderr)
	}
}

func TestIsTerminal_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminal(w) {
		t.Error("Expected a pipe not to be a terminal")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("Expected a regular file not to be a terminal")
	}
}
