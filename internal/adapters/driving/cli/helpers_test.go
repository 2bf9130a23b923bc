package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cleanpaste/internal/core/services"
	"github.com/custodia-labs/cleanpaste/internal/formats"
	"github.com/custodia-labs/cleanpaste/internal/logger"
	"github.com/custodia-labs/cleanpaste/internal/stages"
)

// fakeClipboard records the last text written.
type fakeClipboard struct {
	unavailable bool
	text        string
}

func (c *fakeClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

func (c *fakeClipboard) Available() bool { return !c.unavailable }

// testEnv exposes the services injected by setupTestServices.
type testEnv struct {
	settings  *services.SettingsService
	clipboard *fakeClipboard
}

// setupTestServices wires real services over an in-memory store and
// restores the previous globals on cleanup.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	prev := Services{
		Normaliser:    normaliserService,
		Settings:      settingsService,
		ResultAction:  resultActionService,
		Extract:       extractService,
		WatchInterval: watchInterval,
		MCPPort:       mcpPort,
	}
	t.Cleanup(func() { SetServices(prev) })

	env := &testEnv{
		settings:  services.NewSettingsService(memory.NewConfigStore()),
		clipboard: &fakeClipboard{},
	}
	SetServices(Services{
		Normaliser:   services.NewNormaliserService(stages.NewDefaultRegistry()),
		Settings:     env.settings,
		ResultAction: services.NewResultActionService(env.clipboard),
		Extract:      services.NewExtractService(formats.NewDefaultRegistry()),
	})
	return env
}

// resetFlags restores every flag to its default so tests don't leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command and returns stdout and stderr.
// A nil stdin leaves the process stdin in place.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
