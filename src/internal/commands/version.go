package commands

import (
	"flag"
	"fmt"
)

func CreateVersionCommand() *VersionCommand {
	return &VersionCommand{
		fs: flag.NewFlagSet("version", flag.ExitOnError),
	}
}

type VersionCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func (g *VersionCommand) Name() string {
	return g.fs.Name()
}

func (g *VersionCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *VersionCommand) Run() error {
	_, err := fmt.Fprintf(g.ctx.stdout(), "cf-ip-updater %s (commit: %s, date: %s)\n", g.ctx.Version, g.ctx.Commit, g.ctx.Date)
	return err
}
