package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/maksimkurb/cf-ip-updater/src/internal/config"
	"github.com/maksimkurb/cf-ip-updater/src/internal/domain"
	"github.com/maksimkurb/cf-ip-updater/src/internal/lock"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
	"github.com/maksimkurb/cf-ip-updater/src/internal/updater"
)

func CreateUpdateCommand() *UpdateCommand {
	gc := &UpdateCommand{
		fs: flag.NewFlagSet("update", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.Force, "force", false, "Rewrite targets even if the IP list did not change")
	gc.fs.BoolVar(&gc.Reload, "reload", false, "Run the reload command if any target was updated")
	gc.fs.StringVar(&gc.Command, "command", "", "Reload command (default: \""+config.DefaultReloadCommand+"\")")
	gc.fs.StringVar(&gc.Ports, "ports", "", "Ports for port-rules targets, e.g. \"80,443\" (0 disables port rules)")
	gc.fs.StringVar(&gc.Allow, "allow", "", "csf.allow file to maintain (replaces the first port-rules target)")
	gc.fs.StringVar(&gc.Ignore, "ignore", "", "csf.ignore file to maintain (replaces the first plain target)")
	gc.fs.StringVar(&gc.Output, "output", "", "Write the plain IP list to this file instead of the configured targets")
	gc.download.register(gc.fs)

	return gc
}

type UpdateCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	Force    bool
	Reload   bool
	Command  string
	Ports    string
	Allow    string
	Ignore   string
	Output   string
	download downloadFlags
}

func (g *UpdateCommand) Name() string {
	return g.fs.Name()
}

func (g *UpdateCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx, g.overrides()); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *UpdateCommand) overrides() config.Overrides {
	var o config.Overrides
	g.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "force":
			o.Force = &g.Force
		case "reload":
			o.Reload = &g.Reload
		case "command":
			o.ReloadCommand = &g.Command
		case "ports":
			o.Ports = splitPorts(g.Ports)
		case "allow":
			o.AllowFile = g.Allow
		case "ignore":
			o.IgnoreFile = g.Ignore
		case "output":
			o.Output = g.Output
		}
	})
	g.download.apply(g.fs, &o)
	return o
}

func (g *UpdateCommand) Run() error {
	pidLock, err := lock.Acquire(g.cfg.General.PIDFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := pidLock.Release(); err != nil {
			log.Warnf("Failed to release PID lock: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := domain.NewAppDependencies(g.cfg, domain.AppConfig{UserAgent: g.ctx.userAgent()})
	result, err := updater.NewEngine(g.cfg, deps, updater.Options{}).Run(ctx)
	if err != nil {
		return err
	}

	if !result.Updated() {
		log.Infof("All %d target(s) are up to date.", len(result.Targets))
		return nil
	}

	updated := 0
	for _, target := range result.Targets {
		if target.Updated {
			updated++
		}
	}
	log.Infof("Updated %d of %d target(s) with %d IP entries.", updated, len(result.Targets), result.Entries)

	return nil
}
