package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
	"github.com/maksimkurb/cf-ip-updater/src/internal/utils"
)

const (
	DefaultConfigPath     = "/etc/cf-ip-updater/cf-ip-updater.conf"
	DefaultMarker         = "cf-ip-updater"
	DefaultTimeoutSeconds = 30
	DefaultPIDFile        = "/var/run/cf-ip-updater.pid"
	DefaultReloadCommand  = "csf -r"
	DefaultAllowFile      = "/etc/csf/csf.allow"
	DefaultIgnoreFile     = "/etc/csf/csf.ignore"
)

// DefaultSources are Cloudflare's published IPv4 and IPv6 ranges.
var DefaultSources = []string{
	"https://www.cloudflare.com/ips-v4",
	"https://www.cloudflare.com/ips-v6",
}

// Default returns the CSF preset: csf.allow gets port rules (all ports
// until ports are configured), csf.ignore gets the plain list.
func Default() *Config {
	verifyTLS := true
	return &Config{
		General: &GeneralConfig{
			Sources:        append([]string(nil), DefaultSources...),
			TimeoutSeconds: DefaultTimeoutSeconds,
			VerifyTLS:      &verifyTLS,
			Marker:         DefaultMarker,
			PIDFile:        DefaultPIDFile,
		},
		Reload: &ReloadConfig{
			Command: DefaultReloadCommand,
		},
		Targets: []*TargetConfig{
			{Path: DefaultAllowFile, Mode: "port-rules"},
			{Path: DefaultIgnoreFile, Mode: "plain"},
		},
	}
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", configFile)
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	config := Default()
	config.Targets = nil
	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.resolveTargetPaths()

	log.Debugf("Configuration file path: %s", configFile)

	return config, nil
}

// LoadOrDefault loads configPath, falling back to the CSF preset when the file
// does not exist and the path was not given explicitly.
func LoadOrDefault(configPath string, explicit bool) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) && !explicit {
		log.Debugf("Configuration file %s not found, using built-in CSF defaults", configPath)
		return Default(), nil
	}
	return LoadConfig(configPath)
}

func (c *Config) resolveTargetPaths() {
	for _, target := range c.Targets {
		target.Path = utils.GetAbsolutePath(target.Path, c.GetConfigDir())
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
