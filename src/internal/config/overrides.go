package config

import (
	"github.com/maksimkurb/cf-ip-updater/src/internal/render"
)

// Overrides carries command-line options that take precedence over the file.
// Nil pointers and empty slices leave the configured value unchanged.
type Overrides struct {
	Force          *bool
	Reload         *bool
	ReloadCommand  *string
	NoCert         *bool
	TimeoutSeconds *int
	Sources        []string
	Ports          []string
	// AllowFile replaces the path of the first port-rules target.
	AllowFile string
	// IgnoreFile replaces the path of the first plain block target.
	IgnoreFile string
	// Output switches to raw mode: the only target becomes this file, replaced as a whole.
	Output string
}

func (c *Config) ApplyOverrides(o Overrides) {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.Reload == nil {
		c.Reload = &ReloadConfig{}
	}

	if o.Force != nil {
		c.General.Force = *o.Force
	}
	if o.NoCert != nil {
		verifyTLS := !*o.NoCert
		c.General.VerifyTLS = &verifyTLS
	}
	if o.TimeoutSeconds != nil {
		c.General.TimeoutSeconds = *o.TimeoutSeconds
	}
	if len(o.Sources) > 0 {
		c.General.Sources = append([]string(nil), o.Sources...)
	}

	if o.AllowFile != "" {
		if target := c.firstTarget(render.ModePortRules); target != nil {
			target.Path = o.AllowFile
		}
	}
	if o.IgnoreFile != "" {
		if target := c.firstTarget(render.ModePlain); target != nil {
			target.Path = o.IgnoreFile
		}
	}

	if o.Output != "" {
		c.Targets = []*TargetConfig{{Path: o.Output, Raw: true}}
		// The CSF reload command makes no sense for a raw file.
		if c.Reload.Command == DefaultReloadCommand {
			c.Reload.Command = ""
		}
	}
	if len(o.Ports) > 0 {
		for _, target := range c.Targets {
			if target.RenderMode() == render.ModePortRules {
				target.Ports = append([]string(nil), o.Ports...)
			}
		}
	}

	if o.Reload != nil {
		c.Reload.Enabled = *o.Reload
	}
	if o.ReloadCommand != nil {
		c.Reload.Command = *o.ReloadCommand
	}
}

func (c *Config) firstTarget(mode render.Mode) *TargetConfig {
	for _, target := range c.Targets {
		if !target.Raw && target.RenderMode() == mode {
			return target
		}
	}
	return nil
}
