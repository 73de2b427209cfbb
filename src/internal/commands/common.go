package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maksimkurb/cf-ip-updater/src/internal/config"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	// ConfigExplicit is set when -config was given; a missing file is then an error
	// instead of falling back to the built-in CSF preset.
	ConfigExplicit bool
	Verbose        bool

	Version string
	Commit  string
	Date    string

	// Stdout receives command output (not logs). Defaults to os.Stdout.
	Stdout io.Writer
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

func (ctx *AppContext) userAgent() string {
	version := ctx.Version
	if version == "" {
		version = "dev"
	}
	return "cf-ip-updater/" + version
}

// downloadFlags are shared by every command that downloads the list.
type downloadFlags struct {
	NoCert  bool
	Timeout int
	Sources string
}

func (f *downloadFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&f.NoCert, "nocert", false, "Do not verify TLS certificates of the sources")
	fs.IntVar(&f.Timeout, "timeout", config.DefaultTimeoutSeconds, "Download timeout in seconds (5-300)")
	fs.StringVar(&f.Sources, "sources", "", "Space separated list of source URLs (overrides configuration)")
}

// apply copies the flags that were set explicitly on the command line.
func (f *downloadFlags) apply(fs *flag.FlagSet, o *config.Overrides) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "nocert":
			o.NoCert = &f.NoCert
		case "timeout":
			o.TimeoutSeconds = &f.Timeout
		case "sources":
			o.Sources = strings.Fields(f.Sources)
		}
	})
}

// splitPorts accepts "80,443" as well as "80 443".
func splitPorts(ports string) []string {
	return strings.FieldsFunc(ports, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// loadAndValidateConfigOrFail loads configuration (or the built-in preset),
// applies command-line overrides and validates the result.
func loadAndValidateConfigOrFail(ctx *AppContext, overrides config.Overrides) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ctx.ConfigPath, ctx.ConfigExplicit)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.ApplyOverrides(overrides)

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
