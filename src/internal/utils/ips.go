package utils

import (
	"net/netip"
	"strconv"
	"strings"
)

// IsIP reports whether str is an IPv4 or IPv6 literal without a zone.
func IsIP(str string) bool {
	addr, err := netip.ParseAddr(str)
	return err == nil && addr.Zone() == ""
}

// IsIPOrCIDR reports whether str is an IP literal with an optional "/<digits>" suffix.
// The mask value itself is not range-checked.
func IsIPOrCIDR(str string) bool {
	addr, mask, hasMask := strings.Cut(str, "/")
	if hasMask && !isDigits(mask) {
		return false
	}
	return IsIP(addr)
}

// IsValidPort checks if the given string is a valid port number (1-65535)
func IsValidPort(str string) bool {
	port, err := strconv.Atoi(str)
	return err == nil && port >= 1 && port <= 65535 && isDigits(str)
}

func isDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
