package utils

import "testing"

func TestIsIP(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1.1.1.1", true},
		{"2606:4700::", true},
		{"::1", true},
		{"999.999.999.999", false},
		{"hello", false},
		{"", false},
		{"fe80::1%eth0", false},
		{"1.1.1.0/24", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsIP(tt.input); got != tt.expected {
				t.Errorf("IsIP(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsIPOrCIDR(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1.1.1.0/24", true},
		{"2606:4700::/32", true},
		{"1.1.1.1", true},
		{"1.1.1.0/999", true},
		{"1.1.1.0/", false},
		{"1.1.1.0/abc", false},
		{"1.1.1.0/24/8", false},
		{"hello/24", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsIPOrCIDR(tt.input); got != tt.expected {
				t.Errorf("IsIPOrCIDR(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidPort(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"80", true},
		{"443", true},
		{"65535", true},
		{"0", false},
		{"65536", false},
		{"+80", false},
		{"http", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidPort(tt.input); got != tt.expected {
				t.Errorf("IsValidPort(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
