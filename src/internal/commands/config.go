package commands

import (
	"flag"

	"github.com/maksimkurb/cf-ip-updater/src/internal/config"
)

func CreateConfigCommand() *ConfigCommand {
	gc := &ConfigCommand{
		fs: flag.NewFlagSet("config", flag.ExitOnError),
	}
	return gc
}

// ConfigCommand prints the effective configuration, including built-in defaults.
type ConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (g *ConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *ConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx, config.Overrides{}); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ConfigCommand) Run() error {
	buf, err := g.cfg.SerializeConfig()
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(g.ctx.stdout())
	return err
}
