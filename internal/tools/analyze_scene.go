package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sizzlehq/sizzle/internal/analyzer"
	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/mcp"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// AnalyzeScene runs the Scene Analyzer (spec.md §4.4) over a single
// authored scene and returns its computed metadata and confidence.
type AnalyzeScene struct{ deps }

// NewAnalyzeScene constructs the analyze_scene tool.
func NewAnalyzeScene(cat *catalog.Catalog) *AnalyzeScene {
	return &AnalyzeScene{deps{cat: cat}}
}

func (t *AnalyzeScene) Name() string { return "analyze_scene" }

func (t *AnalyzeScene) Description() string {
	return "Classify a single authored scene's content_type, visual_weight, motion_energy, intent_tags, and shot_grammar, each with a confidence score."
}

func (t *AnalyzeScene) InputSchema() json.RawMessage {
	return json.RawMessage(`{
  "type": "object",
  "properties": {
    "scene": {
      "type": "object",
      "description": "A single authored scene matching the Scene JSON schema (spec.md §6.1)."
    }
  },
  "required": ["scene"]
}`)
}

type analyzeSceneParams struct {
	Scene scene.Scene `json:"scene"`
}

func (t *AnalyzeScene) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p analyzeSceneParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result := scene.Validate(p.Scene)
	if !result.Valid {
		return mcp.JSONResult(map[string]any{
			"valid":  false,
			"errors": result.Errors,
		})
	}

	analyzed := analyzer.Analyze(p.Scene, t.cat)
	return mcp.JSONResult(map[string]any{
		"metadata":    analyzed.Metadata,
		"_confidence": analyzed.Confidence,
	})
}
