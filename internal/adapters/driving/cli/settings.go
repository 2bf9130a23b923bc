package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage saved settings",
	Long: `View and change the options used when no flags are given.

Settings are stored in ~/.cleanpaste/config.toml, or in the directory named
by CLEANPASTE_CONFIG_DIR.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting.

Keys:
  transform.remove_zero_width    true|false
  transform.fix_line_breaks      true|false
  transform.remove_emojis        true|false
  transform.case_mode            none|lower|upper|sentence|title
  transform.collapse_whitespace  true|false
  transform.strip_stop_words     true|false
  transform.code_compact         true|false
  squeeze.level                  low|aggressive|advanced
  ui.theme                       dark|light`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, kv := range settingsValues(settings) {
		fmt.Fprintf(out, "%-31s %s\n", kv[0], kv[1])
	}
	return nil
}

// settingsValues lists every key with its current value, in key order.
func settingsValues(s *domain.AppSettings) [][2]string {
	t := s.Transform
	return [][2]string{
		{services.KeyRemoveZeroWidth, strconv.FormatBool(t.RemoveZeroWidth)},
		{services.KeyFixLineBreaks, strconv.FormatBool(t.FixLineBreaks)},
		{services.KeyRemoveEmojis, strconv.FormatBool(t.RemoveEmojis)},
		{services.KeyCaseMode, t.CaseMode.String()},
		{services.KeyCollapseWhitespace, strconv.FormatBool(t.CollapseWhitespace)},
		{services.KeyStripStopWords, strconv.FormatBool(t.StripStopWords)},
		{services.KeyCodeCompact, strconv.FormatBool(t.CodeCompact)},
		{services.KeySqueezeLevel, s.Squeeze.Level.String()},
		{services.KeyTheme, s.UI.Theme.String()},
	}
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}
