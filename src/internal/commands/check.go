package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/maksimkurb/cf-ip-updater/src/internal/config"
	"github.com/maksimkurb/cf-ip-updater/src/internal/domain"
	"github.com/maksimkurb/cf-ip-updater/src/internal/updater"
)

func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.Force, "force", false, "Report every target as pending")
	gc.download.register(gc.fs)

	return gc
}

// CheckCommand runs the update in dry-run mode: nothing is written and the
// reload command is never run.
type CheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	Force    bool
	download downloadFlags
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	var o config.Overrides
	g.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "force" {
			o.Force = &g.Force
		}
	})
	g.download.apply(g.fs, &o)

	if cfg, err := loadAndValidateConfigOrFail(ctx, o); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *CheckCommand) Run() error {
	deps := domain.NewAppDependencies(g.cfg, domain.AppConfig{
		UserAgent: g.ctx.userAgent(),
		DryRun:    true,
	})

	result, err := updater.NewEngine(g.cfg, deps, updater.Options{DryRun: true}).Run(context.Background())
	if err != nil {
		return err
	}

	out := g.ctx.stdout()
	fmt.Fprintf(out, "IP entries: %d\n", result.Entries)
	for _, target := range result.Targets {
		state := "up to date"
		if target.Updated {
			state = "would update"
		}
		fmt.Fprintf(out, "  %-40s [%s, %d lines] %s\n", target.Path, target.Mode, target.Lines, state)
	}

	return nil
}
