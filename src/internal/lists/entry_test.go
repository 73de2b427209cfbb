package lists

import "testing"

func TestParseEntry_Valid(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"ipv4", "1.1.1.1", "1.1.1.1"},
		{"ipv4 cidr", "173.245.48.0/20", "173.245.48.0/20"},
		{"ipv6", "2606:4700::6810:84e5", "2606:4700::6810:84e5"},
		{"ipv6 cidr", "2606:4700::/32", "2606:4700::/32"},
		{"surrounding whitespace", "  \t103.21.244.0/22 \r", "103.21.244.0/22"},
		{"semicolon comment", "1.0.0.0/24 ; cloudflare", "1.0.0.0/24"},
		{"hash comment", "1.0.0.0/24# cloudflare", "1.0.0.0/24"},
		{"mask not range checked", "1.2.3.4/999", "1.2.3.4/999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := ParseEntry(tt.line)
			if !ok {
				t.Fatalf("Expected %q to be accepted", tt.line)
			}
			if entry != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, entry)
			}
		})
	}
}

func TestParseEntry_Invalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"word", "hello"},
		{"out of range octets", "999.999.999.999"},
		{"comment only", "; comment"},
		{"hash comment only", "# 1.1.1.1"},
		{"non numeric mask", "1.1.1.0/abc"},
		{"empty mask", "1.1.1.0/"},
		{"double mask", "1.1.1.0/24/8"},
		{"domain", "cloudflare.com"},
		{"trailing garbage", "1.1.1.1 extra"},
		{"zone", "fe80::1%eth0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if entry, ok := ParseEntry(tt.line); ok {
				t.Errorf("Expected %q to be rejected, got %q", tt.line, entry)
			}
		})
	}
}
