package updater

import (
	"context"
	"fmt"

	"github.com/maksimkurb/cf-ip-updater/src/internal/config"
	"github.com/maksimkurb/cf-ip-updater/src/internal/domain"
	"github.com/maksimkurb/cf-ip-updater/src/internal/errors"
	"github.com/maksimkurb/cf-ip-updater/src/internal/hashing"
	"github.com/maksimkurb/cf-ip-updater/src/internal/lists"
	"github.com/maksimkurb/cf-ip-updater/src/internal/log"
	"github.com/maksimkurb/cf-ip-updater/src/internal/render"
)

// TargetResult describes what happened to one target.
type TargetResult struct {
	Path string
	// Mode is the output shape actually written (port-rules without ports is plain).
	Mode render.Mode
	Raw  bool
	// Updated is true if the file was rewritten (or would be, in a dry run).
	Updated     bool
	Fingerprint string
	Lines       int
}

// Result summarizes a run.
type Result struct {
	Entries  int
	Targets  []TargetResult
	Reloaded bool
}

// Updated reports whether at least one target changed.
func (r *Result) Updated() bool {
	for _, t := range r.Targets {
		if t.Updated {
			return true
		}
	}
	return false
}

type Options struct {
	// DryRun computes which targets would change but never reloads.
	// The target writer must be created in dry-run mode as well.
	DryRun bool
}

type Engine struct {
	cfg  *config.Config
	deps *domain.AppDependencies
	opts Options
}

func NewEngine(cfg *config.Config, deps *domain.AppDependencies, opts Options) *Engine {
	return &Engine{
		cfg:  cfg,
		deps: deps,
		opts: opts,
	}
}

// FetchList downloads all sources and builds the validated IP list.
func (e *Engine) FetchList(ctx context.Context) (lists.IPList, error) {
	sources := e.cfg.General.Sources
	log.Debugf("Downloading IP list from %d source(s)", len(sources))

	raw, err := e.deps.ListFetcher().Fetch(ctx, sources)
	if err != nil {
		return nil, err
	}

	list, err := lists.BuildList(raw)
	if err != nil {
		return nil, err
	}

	log.Infof("Downloaded %d IP entries from %d source(s)", len(list), len(sources))
	return list, nil
}

// Run performs a complete update.
// On error the returned Result still lists the targets processed so far.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	reloadCommand, reloadRequested := e.reloadCommand()
	if reloadRequested && reloadCommand == "" {
		return result, errors.NewConfigError("reload requested but reload command is not set", nil)
	}

	list, err := e.FetchList(ctx)
	if err != nil {
		return result, err
	}
	result.Entries = len(list)

	fingerprints := make(map[hashing.Convention]string)
	for _, target := range e.cfg.Targets {
		targetResult, err := e.updateTarget(target, list, fingerprints)
		if err != nil {
			return result, err
		}
		result.Targets = append(result.Targets, targetResult)
	}

	if !result.Updated() {
		if reloadRequested {
			log.Debugf("Nothing changed, skipping reload")
		}
		return result, nil
	}

	if !reloadRequested || e.opts.DryRun {
		return result, nil
	}

	if err := e.deps.Reloader().Reload(ctx, reloadCommand); err != nil {
		return result, err
	}
	result.Reloaded = true

	return result, nil
}

func (e *Engine) updateTarget(target *config.TargetConfig, list lists.IPList, fingerprints map[hashing.Convention]string) (TargetResult, error) {
	convention := target.Convention()

	fingerprint, ok := fingerprints[convention]
	if !ok {
		var err error
		if fingerprint, err = hashing.Fingerprint(list, convention); err != nil {
			return TargetResult{}, errors.NewConfigError(fmt.Sprintf("target %s", target.Path), err)
		}
		fingerprints[convention] = fingerprint
		log.Debugf("IP list fingerprint (%s): %s", convention, fingerprint)
	}

	targetResult := TargetResult{
		Path:        target.Path,
		Raw:         target.Raw,
		Fingerprint: fingerprint,
	}

	writer := e.deps.TargetWriter()
	force := e.cfg.General.Force

	var err error
	if target.Raw {
		targetResult.Mode = render.ModePlain
		targetResult.Lines = len(list)
		targetResult.Updated, err = writer.WriteRaw(target.Path, list, fingerprint, convention, force)
	} else {
		targetResult.Mode = render.EffectiveMode(target.RenderMode(), target.Ports)
		lines := render.Render(list, target.RenderMode(), target.Ports)
		targetResult.Lines = len(lines)
		targetResult.Updated, err = writer.Patch(target.Path, lines, fingerprint, force)
	}

	return targetResult, err
}

func (e *Engine) reloadCommand() (string, bool) {
	if e.cfg.Reload == nil || !e.cfg.Reload.Enabled {
		return "", false
	}
	return e.cfg.Reload.Command, true
}
