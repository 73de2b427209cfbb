// Package config handles configuration file parsing and validation for cf-ip-updater.
//
// The configuration is a TOML file with a [general] section (download
// sources, timeout, TLS verification, block marker), a [reload] section and
// one [[target]] table per file to maintain. When no file exists the CSF
// preset from Default is used, which matches the classic behavior of updating
// /etc/csf/csf.allow and /etc/csf/csf.ignore from Cloudflare's published ranges.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/cf-ip-updater/cf-ip-updater.conf")
//	if err != nil {
//	    return err
//	}
//	cfg.ApplyOverrides(config.Overrides{Force: &force})
//	if err := cfg.ValidateConfig(); err != nil {
//	    return err
//	}
//
// After validation the Config is only read; components receive it (or values
// derived from it) explicitly.
package config
