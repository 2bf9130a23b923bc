package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Estimate language-model tokens for text",
	Long: `Estimate how many tokens text will use, as characters divided by four
rounded up. This is a rough guide; real counts depend on the model.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "output counts as JSON")
	rootCmd.AddCommand(tokensCmd)
}

// tokenCounts is the JSON shape of the tokens command.
type tokenCounts struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Tokens     int `json:"tokens"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	if normaliserService == nil {
		return errNormaliserNotConfigured
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	counts := tokenCounts{
		Characters: domain.CharLength(input),
		Words:      domain.CountWords(input),
		Tokens:     normaliserService.EstimateTokens(input),
	}

	out := cmd.OutOrStdout()
	if tokensJSON {
		if err := writeJSON(out, counts); err != nil {
			return fmt.Errorf("failed to marshal counts: %w", err)
		}
		return nil
	}

	fmt.Fprintf(out, "Characters: %d\n", counts.Characters)
	fmt.Fprintf(out, "Words: %d\n", counts.Words)
	fmt.Fprintf(out, "Estimated tokens: ~%d\n", counts.Tokens)
	return nil
}
