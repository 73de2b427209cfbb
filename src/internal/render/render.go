// Package render turns a validated IP list into target file lines.
package render

import (
	"github.com/valyala/fasttemplate"
)

// Mode selects the output shape for one target.
type Mode string

const (
	ModePlain     Mode = "plain"
	ModePortRules Mode = "port-rules"
)

const (
	TMPL_PORT = "port"
	TMPL_IP   = "ip"

	// PortRuleTemplate is the CSF advanced allow filter for an inbound TCP port from a source.
	PortRuleTemplate = "tcp|in|d={{port}}|s={{ip}}"

	// DisabledPort as the only port means "no port filtering".
	DisabledPort = "0"
)

var portRuleTemplate = fasttemplate.New(PortRuleTemplate, "{{", "}}")

// Render returns one line per entry for ModePlain, or one rule per (port, entry)
// pair for ModePortRules with ports in the outer loop.
// ModePortRules without usable ports falls back to plain output.
func Render(entries []string, mode Mode, ports []string) []string {
	if mode != ModePortRules || !hasPorts(ports) {
		return renderPlain(entries)
	}

	lines := make([]string, 0, len(ports)*len(entries))
	for _, port := range ports {
		for _, entry := range entries {
			lines = append(lines, portRuleTemplate.ExecuteString(map[string]interface{}{
				TMPL_PORT: port,
				TMPL_IP:   entry,
			}))
		}
	}
	return lines
}

// EffectiveMode reports the mode Render will actually use.
func EffectiveMode(mode Mode, ports []string) Mode {
	if mode == ModePortRules && hasPorts(ports) {
		return ModePortRules
	}
	return ModePlain
}

func renderPlain(entries []string) []string {
	lines := make([]string, len(entries))
	copy(lines, entries)
	return lines
}

func hasPorts(ports []string) bool {
	if len(ports) == 0 {
		return false
	}
	return !(len(ports) == 1 && ports[0] == DisabledPort)
}
