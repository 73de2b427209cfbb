package domain

import (
	"github.com/maksimkurb/cf-ip-updater/src/internal/block"
	"github.com/maksimkurb/cf-ip-updater/src/internal/config"
	"github.com/maksimkurb/cf-ip-updater/src/internal/lists"
	"github.com/maksimkurb/cf-ip-updater/src/internal/reload"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// Usage:
//
//	deps := domain.NewAppDependencies(cfg, domain.AppConfig{UserAgent: "cf-ip-updater/1.0"})
//	engine := updater.NewEngine(cfg, deps, updater.Options{})
type AppDependencies struct {
	fetcher  ListFetcher
	writer   TargetWriter
	reloader Reloader
}

// AppConfig holds settings that do not come from the configuration file.
type AppConfig struct {
	// UserAgent is sent with every download.
	UserAgent string

	// DryRun makes the target writer report changes without touching any file.
	DryRun bool
}

// NewAppDependencies creates a new dependency container with production implementations.
func NewAppDependencies(cfg *config.Config, app AppConfig) *AppDependencies {
	fetcher := lists.NewDownloader(lists.DownloaderOptions{
		TimeoutSeconds: cfg.General.TimeoutSeconds,
		VerifyTLS:      cfg.General.IsTLSVerificationEnabled(),
		UserAgent:      app.UserAgent,
	})

	writer := block.NewPatcher(cfg.General.Marker)
	writer.DryRun = app.DryRun

	return &AppDependencies{
		fetcher:  fetcher,
		writer:   writer,
		reloader: reload.NewShellInvoker(),
	}
}

// NewTestDependencies creates a dependency container with the given implementations.
//
// Provide mock implementations for any dependencies you want to control in your tests.
func NewTestDependencies(fetcher ListFetcher, writer TargetWriter, reloader Reloader) *AppDependencies {
	return &AppDependencies{
		fetcher:  fetcher,
		writer:   writer,
		reloader: reloader,
	}
}

// ListFetcher returns the IP list downloader.
func (d *AppDependencies) ListFetcher() ListFetcher {
	return d.fetcher
}

// TargetWriter returns the target file writer.
func (d *AppDependencies) TargetWriter() TargetWriter {
	return d.writer
}

// Reloader returns the firewall reload invoker.
func (d *AppDependencies) Reloader() Reloader {
	return d.reloader
}
