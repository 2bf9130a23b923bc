package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// CleanInput is the input schema for the clean_text tool.
// Unset options fall back to the user's saved settings.
type CleanInput struct {
	Text               string `json:"text" jsonschema:"the text to clean"`
	Format             string `json:"format,omitempty" jsonschema:"input format: text, html, markdown or auto (default text)"`
	RemoveZeroWidth    *bool  `json:"remove_zero_width,omitempty" jsonschema:"remove zero-width spaces, joiners and byte-order marks"`
	FixLineBreaks      *bool  `json:"fix_line_breaks,omitempty" jsonschema:"join single line breaks inside paragraphs"`
	RemoveEmojis       *bool  `json:"remove_emojis,omitempty" jsonschema:"remove emoji and pictographic symbols"`
	CaseMode           string `json:"case_mode,omitempty" jsonschema:"one of none, lower, upper, sentence, title"`
	CollapseWhitespace *bool  `json:"collapse_whitespace,omitempty" jsonschema:"collapse runs of spaces and blank lines"`
	StripStopWords     *bool  `json:"strip_stop_words,omitempty" jsonschema:"remove common low-information words"`
	CodeCompact        *bool  `json:"code_compact,omitempty" jsonschema:"minify JSON or strip comments and whitespace from code"`
}

// SqueezeInput is the input schema for the squeeze_text tool.
type SqueezeInput struct {
	Text   string `json:"text" jsonschema:"the text to squeeze"`
	Format string `json:"format,omitempty" jsonschema:"input format: text, html, markdown or auto (default text)"`
	Level  string `json:"level,omitempty" jsonschema:"one of low, aggressive, advanced (default from settings)"`
}

// TokensInput is the input schema for the estimate_tokens tool.
type TokensInput struct {
	Text string `json:"text" jsonschema:"the text to measure"`
}

// TransformOutput is the output schema for clean_text and squeeze_text.
type TransformOutput struct {
	Output         string   `json:"output"`
	OriginalLength int      `json:"original_length"`
	ResultLength   int      `json:"result_length"`
	RemovedCount   int      `json:"removed_count"`
	SavingsPercent float64  `json:"savings_percent"`
	OriginalTokens int      `json:"original_tokens"`
	ResultTokens   int      `json:"result_tokens"`
	Stages         []string `json:"stages"`
}

// TokensOutput is the output schema for estimate_tokens.
type TokensOutput struct {
	Tokens     int `json:"tokens"`
	Characters int `json:"characters"`
	Words      int `json:"words"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clean_text",
		Description: "Clean pasted text: strip invisible characters, repair line breaks, remove emoji, change case, compact code",
	}, s.handleCleanText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "squeeze_text",
		Description: "Reduce text size before sending it to a language model using a low, aggressive or advanced preset",
	}, s.handleSqueezeText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "estimate_tokens",
		Description: "Estimate language-model tokens for text (characters / 4, rounded up)",
	}, s.handleEstimateTokens)
}

// handleCleanText handles the clean_text tool invocation.
func (s *Server) handleCleanText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CleanInput,
) (*mcp.CallToolResult, TransformOutput, error) {
	cfg, err := s.resolveConfig(input)
	if err != nil {
		return nil, TransformOutput{}, err
	}
	text, err := s.extract(input.Text, input.Format)
	if err != nil {
		return nil, TransformOutput{}, err
	}

	result := s.ports.Normaliser.Normalise(text, cfg)
	return nil, toOutput(result), nil
}

// handleSqueezeText handles the squeeze_text tool invocation.
func (s *Server) handleSqueezeText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SqueezeInput,
) (*mcp.CallToolResult, TransformOutput, error) {
	level := domain.SqueezeLevel(input.Level)
	if input.Level == "" {
		level = s.settings().Squeeze.Level
	}
	if !level.IsValid() {
		return nil, TransformOutput{}, fmt.Errorf("level %q: %w", input.Level, domain.ErrInvalidInput)
	}

	text, err := s.extract(input.Text, input.Format)
	if err != nil {
		return nil, TransformOutput{}, err
	}

	result := s.ports.Normaliser.Squeeze(text, level)
	return nil, toOutput(result), nil
}

// handleEstimateTokens handles the estimate_tokens tool invocation.
func (s *Server) handleEstimateTokens(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TokensInput,
) (*mcp.CallToolResult, TokensOutput, error) {
	return nil, TokensOutput{
		Tokens:     s.ports.Normaliser.EstimateTokens(input.Text),
		Characters: domain.CharLength(input.Text),
		Words:      domain.CountWords(input.Text),
	}, nil
}

// resolveConfig overlays the options a caller set on the saved settings.
func (s *Server) resolveConfig(input CleanInput) (domain.TransformConfig, error) {
	cfg := s.settings().Transform

	overlay := []struct {
		value  *bool
		target *bool
	}{
		{input.RemoveZeroWidth, &cfg.RemoveZeroWidth},
		{input.FixLineBreaks, &cfg.FixLineBreaks},
		{input.RemoveEmojis, &cfg.RemoveEmojis},
		{input.CollapseWhitespace, &cfg.CollapseWhitespace},
		{input.StripStopWords, &cfg.StripStopWords},
		{input.CodeCompact, &cfg.CodeCompact},
	}
	for _, o := range overlay {
		if o.value != nil {
			*o.target = *o.value
		}
	}

	if input.CaseMode != "" {
		mode := domain.CaseMode(input.CaseMode)
		if !mode.IsValid() {
			return cfg, fmt.Errorf("case_mode %q: %w", input.CaseMode, domain.ErrInvalidInput)
		}
		cfg.CaseMode = mode
	}

	return cfg, nil
}

// extract converts text written in format. An empty format means plain text.
func (s *Server) extract(text, format string) (string, error) {
	f := domain.InputFormat(format)
	if format == "" || f == domain.FormatText {
		return text, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("format %q: %w", format, domain.ErrInvalidInput)
	}
	if s.ports.Extractor == nil {
		return "", ErrExtractUnavailable
	}

	out, _, err := s.ports.Extractor.Extract(text, f, "")
	return out, err
}

// settings returns saved settings, or defaults when unavailable.
func (s *Server) settings() domain.AppSettings {
	if s.ports.Settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.ports.Settings.Get()
	if err != nil || settings == nil {
		return domain.DefaultAppSettings()
	}
	return *settings
}

func toOutput(result domain.TransformResult) TransformOutput {
	stages := result.Stages
	if stages == nil {
		stages = []string{}
	}
	return TransformOutput{
		Output:         result.Output,
		OriginalLength: result.OriginalLength,
		ResultLength:   result.ResultLength,
		RemovedCount:   result.RemovedCount,
		SavingsPercent: result.SavingsPercent,
		OriginalTokens: result.OriginalTokens,
		ResultTokens:   result.ResultTokens,
		Stages:         stages,
	}
}
