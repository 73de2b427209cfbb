package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/cf-ip-updater/src/internal/commands"
	"github.com/maksimkurb/cf-ip-updater/src/internal/config"
	"github.com/maksimkurb/cf-ip-updater/src/internal/errors"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", config.DefaultConfigPath, "Path to configuration file (built-in CSF defaults are used if the default file is missing)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")
	quiet := flag.Bool("quiet", false, "Only log errors (for cron)")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Cloudflare IP list updater for CSF firewall\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  update                  Download IP lists and update target files (csf.allow, csf.ignore)\n")
		fmt.Fprintf(os.Stderr, "  check                   Show which targets would be updated, without writing anything\n")
		fmt.Fprintf(os.Stderr, "  print                   Print the downloaded IP list (or port rules) to stdout\n")
		fmt.Fprintf(os.Stderr, "  config                  Print the effective configuration\n")
		fmt.Fprintf(os.Stderr, "  version                 Print version information\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			ctx.ConfigExplicit = true
		}
	})

	if ctx.Verbose {
		log.SetVerbose(true)
	}
	if *quiet {
		log.SetQuiet(true)
	}
	if !log.IsTerminal(os.Stdout) {
		log.SetNoColor(true)
	}

	cmds := []commands.Runner{
		commands.CreateUpdateCommand(),
		commands.CreateCheckCommand(),
		commands.CreatePrintCommand(),
		commands.CreateConfigCommand(),
		commands.CreateVersionCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				if code := errors.CodeOf(err); code != "" {
					log.Debugf("Error code: %s", code)
				}
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
