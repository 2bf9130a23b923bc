package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for cleanpaste resources.
	uriScheme = "cleanpaste://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current transform defaults, squeeze level and theme",
		MIMEType:    mimeJSON,
	}, s.handleSettingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "case-modes",
		Name:        "case-modes",
		Description: "Case modes accepted by clean_text",
		MIMEType:    mimeJSON,
	}, s.handleCaseModesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "input-formats",
		Name:        "input-formats",
		Description: "Input formats accepted by the format argument of clean_text and squeeze_text",
		MIMEType:    mimeJSON,
	}, s.handleInputFormatsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "squeeze/{level}",
		Name:        "squeeze-preset",
		Description: "Transform options applied by a squeeze level",
		MIMEType:    mimeJSON,
	}, s.handleSqueezePresetResource)
}

// handleSettingsResource returns the effective settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := s.settings()

	type settingsInfo struct {
		Transform    domain.TransformConfig `json:"transform"`
		SqueezeLevel string                 `json:"squeeze_level"`
		Theme        string                 `json:"theme"`
	}

	return jsonResource(req.Params.URI, settingsInfo{
		Transform:    settings.Transform,
		SqueezeLevel: settings.Squeeze.Level.String(),
		Theme:        settings.UI.Theme.String(),
	})
}

// handleCaseModesResource lists every case mode with its description.
func (s *Server) handleCaseModesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type modeInfo struct {
		Mode        string `json:"mode"`
		Description string `json:"description"`
	}

	modes := domain.AllCaseModes()
	infos := make([]modeInfo, len(modes))
	for i, m := range modes {
		infos[i] = modeInfo{Mode: m.String(), Description: m.Description()}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleInputFormatsResource lists the input formats. Only text is
// available when the server has no extract service.
func (s *Server) handleInputFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type formatInfo struct {
		Format      string `json:"format"`
		Description string `json:"description"`
		Available   bool   `json:"available"`
	}

	formats := domain.AllInputFormats()
	infos := make([]formatInfo, len(formats))
	for i, f := range formats {
		infos[i] = formatInfo{
			Format:      f.String(),
			Description: f.Description(),
			Available:   f == domain.FormatText || s.ports.Extractor != nil,
		}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleSqueezePresetResource describes one squeeze level.
func (s *Server) handleSqueezePresetResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	level := domain.SqueezeLevel(extractSqueezeLevel(req.Params.URI))
	if !level.IsValid() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type presetInfo struct {
		Level       string                 `json:"level"`
		Description string                 `json:"description"`
		Transform   domain.TransformConfig `json:"transform"`
	}

	return jsonResource(req.Params.URI, presetInfo{
		Level:       level.String(),
		Description: level.Description(),
		Transform:   level.Config(),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractSqueezeLevel extracts the level from a URI like cleanpaste://squeeze/{level}.
func extractSqueezeLevel(uri string) string {
	const prefix = uriScheme + "squeeze/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	level := strings.TrimPrefix(uri, prefix)
	if strings.Contains(level, "/") {
		return ""
	}
	return level
}
