package config

import (
	"path/filepath"

	"github.com/maksimkurb/cf-ip-updater/src/internal/hashing"
	"github.com/maksimkurb/cf-ip-updater/src/internal/render"
)

type Config struct {
	// General holds download and block settings.
	General *GeneralConfig `toml:"general"`
	// Reload configures the command run after at least one target changed.
	Reload *ReloadConfig `toml:"reload"`
	// Targets are the files to maintain, processed in order.
	Targets []*TargetConfig `toml:"target,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// Sources are the IP list URLs, downloaded and concatenated in order.
	Sources []string `toml:"sources" json:"sources" validate:"required,min=1,dive,required,url"`
	// TimeoutSeconds is the per-download timeout, clamped to 5..300 (default: 30).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"gte=0"`
	// VerifyTLS enables certificate verification (default: true).
	VerifyTLS *bool `toml:"verify_tls,omitempty" json:"verify_tls,omitempty"`
	// Force rewrites targets even when the list did not change.
	Force bool `toml:"force" json:"force"`
	// Marker identifies this tool's block inside target files (default: cf-ip-updater).
	Marker string `toml:"marker" json:"marker" validate:"required,marker"`
	// PIDFile is locked while an update runs (default: /var/run/cf-ip-updater.pid).
	PIDFile string `toml:"pid_file" json:"pid_file"`
}

type ReloadConfig struct {
	// Enabled runs Command after any target was updated.
	Enabled bool `toml:"enabled" json:"enabled"`
	// Command is executed with "sh -c" (default: "csf -r").
	Command string `toml:"command" json:"command"`
}

type TargetConfig struct {
	// Path of the file to maintain. Relative paths are resolved against the config directory.
	Path string `toml:"path" json:"path" validate:"required"`
	// Mode is "plain" (one IP per line) or "port-rules" (tcp|in|d=<port>|s=<ip>). Default: plain.
	Mode string `toml:"mode,omitempty" json:"mode,omitempty" validate:"omitempty,render_mode"`
	// Ports for port-rules mode. Empty, or just "0", falls back to plain output.
	Ports []string `toml:"ports,omitempty" json:"ports,omitempty" validate:"dive,port"`
	// Fingerprint is the hash convention stored in the block: "lines" (default) or "concat".
	Fingerprint string `toml:"fingerprint,omitempty" json:"fingerprint,omitempty" validate:"omitempty,fingerprint"`
	// Raw replaces the whole file with the plain list instead of maintaining a block.
	Raw bool `toml:"raw,omitempty" json:"raw,omitempty"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GetConfigFilePath() string {
	return c._absConfigFilePath
}

func (g *GeneralConfig) IsTLSVerificationEnabled() bool {
	return g.VerifyTLS == nil || *g.VerifyTLS
}

func (t *TargetConfig) RenderMode() render.Mode {
	if t.Raw || t.Mode == "" {
		return render.ModePlain
	}
	return render.Mode(t.Mode)
}

func (t *TargetConfig) Convention() hashing.Convention {
	if t.Fingerprint == "" {
		return hashing.ConventionLines
	}
	return hashing.Convention(t.Fingerprint)
}
