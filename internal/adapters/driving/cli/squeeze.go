package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

var (
	squeezeLevel    string
	squeezeFrom     string
	squeezeDelivery deliveryFlags
)

var squeezeCmd = &cobra.Command{
	Use:   "squeeze [file]",
	Short: "Shrink text to save language-model tokens",
	Long: `Squeeze text with a preset aimed at reducing prompt size.

Levels:
  low         collapse spaces, tabs and blank lines
  aggressive  low, plus strip common stop words
  advanced    low, plus minify JSON or compact code

Without --level the saved squeeze level is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSqueeze,
}

func init() {
	squeezeCmd.Flags().StringVarP(&squeezeLevel, "level", "l", string(domain.SqueezeLow),
		"squeeze level: low, aggressive, advanced")
	squeezeCmd.Flags().StringVar(&squeezeFrom, "from", string(domain.FormatText),
		"input format: text, html, markdown, auto")
	squeezeDelivery.register(squeezeCmd.Flags())
	rootCmd.AddCommand(squeezeCmd)
}

func runSqueeze(cmd *cobra.Command, args []string) error {
	if normaliserService == nil {
		return errNormaliserNotConfigured
	}

	level := savedSettings().Squeeze.Level
	if cmd.Flags().Changed("level") {
		level = domain.SqueezeLevel(squeezeLevel)
	}
	if !level.IsValid() {
		return fmt.Errorf("%w: squeeze level %q (want low, aggressive or advanced)",
			domain.ErrInvalidInput, level)
	}

	format, err := inputFormat(squeezeFrom)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	input, err = extractInput(input, format, args)
	if err != nil {
		return err
	}

	result := normaliserService.Squeeze(input, level)
	return deliver(cmd, &squeezeDelivery, &result)
}
