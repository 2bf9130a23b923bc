package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/pretty"

	"github.com/custodia-labs/cleanpaste/internal/adapters/driving/watch"
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

// Transform option flags. Each is applied only when set on the command line,
// so unset flags keep the saved settings.
var (
	cleanZeroWidth  bool
	cleanLineBreaks bool
	cleanEmoji      bool
	cleanCase       string
	cleanWhitespace bool
	cleanStopWords  bool
	cleanCode       bool
	cleanWatch      bool
	cleanSave       bool
	cleanFrom       string
	cleanDelivery   deliveryFlags
)

// deliveryFlags controls where a result goes.
type deliveryFlags struct {
	copy   bool
	stats  bool
	json   bool
	output string
}

func (d *deliveryFlags) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&d.copy, "copy", "c", false, "also copy the result to the clipboard")
	fs.BoolVarP(&d.stats, "stats", "s", false, "print size and token savings to stderr")
	fs.BoolVar(&d.json, "json", false, "output the result and metrics as JSON")
	fs.StringVarP(&d.output, "output", "o", "", "write the result to a file instead of stdout")
}

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Clean text from a file or stdin",
	Long: `Clean text with the saved transform options, overridden by any flags given.

Stages always run in this order: zero-width removal, line-break repair,
emoji removal, case conversion, whitespace collapsing, stop-word stripping
and code compaction.

Examples:
  pbpaste | cleanpaste clean --line-breaks --emoji | pbcopy
  cleanpaste clean notes.txt --case sentence -o notes.clean.txt
  cleanpaste clean page.html --from auto --whitespace
  cleanpaste clean draft.md --watch -o draft.clean.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	fs := cleanCmd.Flags()
	fs.BoolVar(&cleanZeroWidth, "zero-width", true, "remove zero-width characters")
	fs.BoolVar(&cleanLineBreaks, "line-breaks", false, "join hard-wrapped lines, keeping paragraphs")
	fs.BoolVar(&cleanEmoji, "emoji", false, "remove emoji and symbol characters")
	fs.StringVar(&cleanCase, "case", "none", "case mode: none, lower, upper, sentence, title")
	fs.BoolVar(&cleanWhitespace, "whitespace", false, "collapse runs of spaces and blank lines")
	fs.BoolVar(&cleanStopWords, "stop-words", false, "strip common stop words")
	fs.BoolVar(&cleanCode, "code", false, "minify JSON or strip comments and whitespace from code")
	fs.BoolVarP(&cleanWatch, "watch", "w", false, "re-clean the file every time it changes")
	fs.BoolVar(&cleanSave, "save", false, "save the resulting options as the new defaults")
	fs.StringVar(&cleanFrom, "from", string(domain.FormatText), "input format: text, html, markdown, auto")
	cleanDelivery.register(fs)
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	if normaliserService == nil {
		return errNormaliserNotConfigured
	}

	cfg, err := cleanConfig(cmd)
	if err != nil {
		return err
	}
	format, err := inputFormat(cleanFrom)
	if err != nil {
		return err
	}

	if cleanSave {
		if settingsService == nil {
			return errSettingsNotConfigured
		}
		if err := settingsService.SaveTransform(cfg); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		logger.Info("saved transform options")
	}

	if cleanWatch {
		if len(args) == 0 || args[0] == "-" {
			return fmt.Errorf("%w: --watch needs a file", domain.ErrInvalidInput)
		}
		return runCleanWatch(cmd, args[0], cfg, format)
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	input, err = extractInput(input, format, args)
	if err != nil {
		return err
	}

	result := normaliserService.Normalise(input, cfg)
	return deliver(cmd, &cleanDelivery, &result)
}

// cleanConfig starts from the saved options and applies changed flags.
func cleanConfig(cmd *cobra.Command) (domain.TransformConfig, error) {
	cfg := savedTransform()
	fs := cmd.Flags()

	if fs.Changed("zero-width") {
		cfg.RemoveZeroWidth = cleanZeroWidth
	}
	if fs.Changed("line-breaks") {
		cfg.FixLineBreaks = cleanLineBreaks
	}
	if fs.Changed("emoji") {
		cfg.RemoveEmojis = cleanEmoji
	}
	if fs.Changed("case") {
		mode := domain.CaseMode(cleanCase)
		if !mode.IsValid() {
			return cfg, fmt.Errorf("%w: case mode %q (want none, lower, upper, sentence or title)",
				domain.ErrInvalidInput, cleanCase)
		}
		cfg.CaseMode = mode
	}
	if fs.Changed("whitespace") {
		cfg.CollapseWhitespace = cleanWhitespace
	}
	if fs.Changed("stop-words") {
		cfg.StripStopWords = cleanStopWords
	}
	if fs.Changed("code") {
		cfg.CodeCompact = cleanCode
	}
	return cfg, nil
}

// savedTransform returns the persisted options, or defaults if none can be read.
func savedTransform() domain.TransformConfig {
	return savedSettings().Transform
}

func savedSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	s, err := settingsService.Get()
	if err != nil || s == nil {
		logger.Warn("reading settings, using defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	return *s
}

// deliver writes a result to its destination and handles --copy and --stats.
func deliver(cmd *cobra.Command, d *deliveryFlags, result *domain.TransformResult) error {
	switch {
	case d.output != "":
		if resultActionService == nil {
			return fmt.Errorf("writing %s: result actions not configured", d.output)
		}
		if err := resultActionService.WriteToFile(cmd.Context(), result, d.output); err != nil {
			return err
		}
		logger.Info("wrote %d chars to %s", result.ResultLength, d.output)
	case d.json:
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
	default:
		fmt.Fprint(cmd.OutOrStdout(), result.Output)
	}

	if d.copy {
		copyBestEffort(cmd, result)
	}
	if d.stats {
		cmd.PrintErrln(formatStats(result))
	}
	return nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}

// copyBestEffort copies the result, warning instead of failing.
func copyBestEffort(cmd *cobra.Command, result *domain.TransformResult) {
	if resultActionService == nil {
		cmd.PrintErrln("warning: clipboard not configured")
		return
	}
	if err := resultActionService.CopyToClipboard(cmd.Context(), result); err != nil {
		cmd.PrintErrf("warning: %v\n", err)
		return
	}
	logger.Debug("copied %d chars to clipboard", result.ResultLength)
}

func formatStats(r *domain.TransformResult) string {
	return fmt.Sprintf("%d -> %d chars, removed %d (%s), ~%d -> ~%d tokens (%.1f%% saved)",
		r.OriginalLength, r.ResultLength, r.RemovedCount, r.SavingsDisplay(),
		r.OriginalTokens, r.ResultTokens, r.TokenSavingsPercent())
}

// runCleanWatch re-cleans path on every change until interrupted.
func runCleanWatch(cmd *cobra.Command, path string, cfg domain.TransformConfig, format domain.InputFormat) error {
	w, err := watch.New(&watch.Ports{
		Normaliser: normaliserService,
		Actions:    resultActionService,
		Extractor:  extractService,
	}, watch.Options{
		Path:     path,
		Output:   cleanDelivery.output,
		Config:   cfg,
		Format:   format,
		Interval: watchInterval,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}

	cmd.PrintErrf("Watching %s (ctrl+c to stop)\n", path)
	for change := range changes {
		if change.Err != nil {
			cmd.PrintErrf("error: %v\n", change.Err)
			continue
		}
		if cleanDelivery.output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), change.Result.Output)
		}
		cmd.PrintErrf("%s: %s\n", filepath.Base(change.Path), formatStats(&change.Result))
	}
	return nil
}
