// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
package mocks

import (
	"context"
	"strings"
)

// MockListFetcher is a mock implementation of the domain.ListFetcher interface.
//
// It allows tests to provide custom behavior through function fields.
// If FetchFunc is nil, Body is returned for every call.
//
// Example usage:
//
//	fetcher := mocks.NewMockListFetcher("1.1.1.1\n2.2.2.2\n3.3.3.3\n")
//	raw, err := fetcher.Fetch(ctx, []string{"https://example.com/ips"})
type MockListFetcher struct {
	// FetchFunc is called by Fetch if not nil
	FetchFunc func(ctx context.Context, sources []string) (string, error)

	// Body is returned by Fetch when FetchFunc is nil
	Body string

	// Calls records the sources of every Fetch call
	Calls [][]string
}

// Fetch returns the configured body for the given sources.
func (m *MockListFetcher) Fetch(ctx context.Context, sources []string) (string, error) {
	m.Calls = append(m.Calls, append([]string(nil), sources...))
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, sources)
	}
	return m.Body, nil
}

// NewMockListFetcher creates a fetcher that always returns the given entries, one per line.
func NewMockListFetcher(entries ...string) *MockListFetcher {
	body := ""
	if len(entries) > 0 {
		body = strings.Join(entries, "\n") + "\n"
	}
	return &MockListFetcher{Body: body}
}
