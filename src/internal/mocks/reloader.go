package mocks

import (
	"context"
)

// MockReloader is a mock implementation of the domain.Reloader interface.
// It never runs anything; it records the commands it was asked to run.
type MockReloader struct {
	// ReloadFunc is called by Reload if not nil
	ReloadFunc func(ctx context.Context, command string) error

	// Commands records every reload command in call order
	Commands []string
}

// Reload records the command and returns the result of ReloadFunc (nil by default).
func (m *MockReloader) Reload(ctx context.Context, command string) error {
	m.Commands = append(m.Commands, command)
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx, command)
	}
	return nil
}

// Calls returns how many times Reload was invoked.
func (m *MockReloader) Calls() int {
	return len(m.Commands)
}
