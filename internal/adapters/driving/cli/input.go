package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

var (
	errNormaliserNotConfigured = errors.New("normaliser service not configured")
	errSettingsNotConfigured   = errors.New("settings service not configured")
	errExtractNotConfigured    = errors.New("extract service not configured")
)

// stdinIsTerminal reports whether stdin is an interactive terminal.
// Replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readInput returns the contents of the file named by args[0], or of the
// command's stdin when no file is given. "-" also selects stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if in == os.Stdin && stdinIsTerminal() {
		return "", fmt.Errorf("%w: pass a file or pipe text on stdin", domain.ErrNoInput)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// inputFormat parses a --from value.
func inputFormat(from string) (domain.InputFormat, error) {
	f := domain.InputFormat(from)
	if !f.IsValid() {
		return f, fmt.Errorf("%w: input format %q (want text, html, markdown or auto)",
			domain.ErrInvalidInput, from)
	}
	return f, nil
}

// extractInput converts input written in format to plain text. The file
// argument, if any, is the hint for auto detection.
func extractInput(input string, format domain.InputFormat, args []string) (string, error) {
	if format == domain.FormatText {
		return input, nil
	}
	if extractService == nil {
		return "", errExtractNotConfigured
	}

	var hint string
	if len(args) > 0 && args[0] != "-" {
		hint = args[0]
	}
	text, resolved, err := extractService.Extract(input, format, hint)
	if err != nil {
		return "", err
	}
	logger.Debug("extracted %s input", resolved)
	return text, nil
}
