// Package reload runs the firewall reload command after a target changed.
package reload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	domainerrors "github.com/maksimkurb/cf-ip-updater/src/internal/errors"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
)

// ShellInvoker runs the command through "sh -c", passing its output through.
type ShellInvoker struct {
	Shell  string
	Stdout io.Writer
	Stderr io.Writer
	Env    map[string]string
}

func NewShellInvoker() *ShellInvoker {
	return &ShellInvoker{
		Shell:  "sh",
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (s *ShellInvoker) Reload(ctx context.Context, command string) error {
	if command == "" {
		return domainerrors.NewConfigError("reload requested but reload command is not set", nil)
	}

	log.Infof("Running reload command '%s'", command)

	cmd := exec.CommandContext(ctx, s.shell(), "-c", command)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	env := os.Environ()
	for key, value := range s.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domainerrors.NewReloadError(fmt.Sprintf("reload command failed with exit code %d", exitErr.ExitCode()), err)
		}
		return domainerrors.NewReloadError("reload command failed", err)
	}

	log.Infof("Reload command successful.")
	return nil
}

func (s *ShellInvoker) shell() string {
	if s.Shell == "" {
		return "sh"
	}
	return s.Shell
}
