// Command cleanpaste cleans and squeezes pasted text from the command line,
// a terminal UI, an MCP server or a file watcher.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/cli"
	"github.com/custodia-labs/cleanpaste/internal/config"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
	"github.com/custodia-labs/cleanpaste/internal/core/services"
	"github.com/custodia-labs/cleanpaste/internal/formats"
	"github.com/custodia-labs/cleanpaste/internal/logger"
	"github.com/custodia-labs/cleanpaste/internal/stages"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, config.Usage())
		os.Exit(1)
	}
	logger.SetVerbose(cfg.Verbose)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Normaliser:    services.NewNormaliserService(stages.NewDefaultRegistry()),
		Settings:      services.NewSettingsService(openSettingsStore(cfg)),
		ResultAction:  services.NewResultActionService(clipboard.New(cfg.Clipboard)),
		Extract:       services.NewExtractService(formats.NewDefaultRegistry()),
		WatchInterval: cfg.WatchInterval,
		MCPPort:       cfg.MCPPort,
	})

	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

// openSettingsStore opens the settings file, falling back to an in-memory
// store so the tool still works on a read-only home directory.
func openSettingsStore(cfg *config.Config) driven.ConfigStore {
	dir := cfg.ConfigDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			logger.Warn("settings: %v; using in-memory settings", err)
			return memory.NewConfigStore()
		}
		dir = d
	}

	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("settings: %v; using in-memory settings", err)
		return memory.NewConfigStore()
	}
	logger.Debug("settings: %s", store.Path())
	return store
}
