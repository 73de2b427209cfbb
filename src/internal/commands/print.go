package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/cf-ip-updater/src/internal/config"
	"github.com/maksimkurb/cf-ip-updater/src/internal/domain"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
	"github.com/maksimkurb/cf-ip-updater/src/internal/render"
	"github.com/maksimkurb/cf-ip-updater/src/internal/updater"
	"github.com/maksimkurb/cf-ip-updater/src/internal/utils"
)

func CreatePrintCommand() *PrintCommand {
	gc := &PrintCommand{
		fs: flag.NewFlagSet("print", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Mode, "mode", string(render.ModePlain), "Output mode: plain or port-rules")
	gc.fs.StringVar(&gc.Ports, "ports", "", "Ports for port-rules mode, e.g. \"80,443\"")
	gc.download.register(gc.fs)

	return gc
}

// PrintCommand writes the rendered list to stdout. Logs go to stderr so the
// output can be piped.
type PrintCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	Mode     string
	Ports    string
	download downloadFlags
}

func (g *PrintCommand) Name() string {
	return g.fs.Name()
}

func (g *PrintCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	log.SetForceStdErr(true)

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	switch render.Mode(g.Mode) {
	case render.ModePlain, render.ModePortRules:
	default:
		return fmt.Errorf("unknown mode %q, expected %s or %s", g.Mode, render.ModePlain, render.ModePortRules)
	}

	for _, port := range splitPorts(g.Ports) {
		if port != render.DisabledPort && !utils.IsValidPort(port) {
			return fmt.Errorf("invalid port %q", port)
		}
	}

	var o config.Overrides
	g.download.apply(g.fs, &o)

	if cfg, err := loadAndValidateConfigOrFail(ctx, o); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *PrintCommand) Run() error {
	deps := domain.NewAppDependencies(g.cfg, domain.AppConfig{UserAgent: g.ctx.userAgent()})

	list, err := updater.NewEngine(g.cfg, deps, updater.Options{}).FetchList(context.Background())
	if err != nil {
		return err
	}

	lines := render.Render(list, render.Mode(g.Mode), splitPorts(g.Ports))
	if _, err := fmt.Fprint(g.ctx.stdout(), strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
