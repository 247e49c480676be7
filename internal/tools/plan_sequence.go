package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sizzlehq/sizzle/internal/analyzer"
	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/mcp"
	"github.com/sizzlehq/sizzle/internal/planner"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// PlanSequence runs the Sequence Planner (spec.md §4.5) over a slate of
// scenes, analyzing each first if it hasn't already been analyzed.
type PlanSequence struct{ deps }

// NewPlanSequence constructs the plan_sequence tool.
func NewPlanSequence(cat *catalog.Catalog) *PlanSequence {
	return &PlanSequence{deps{cat: cat}}
}

func (t *PlanSequence) Name() string { return "plan_sequence" }

func (t *PlanSequence) Description() string {
	return "Order scenes, assign hold durations, transitions, and camera overrides for a style pack, producing a self-validated sequence manifest plus editorial notes."
}

func (t *PlanSequence) InputSchema() json.RawMessage {
	return json.RawMessage(`{
  "type": "object",
  "properties": {
    "scenes": {
      "type": "array",
      "items": {"type": "object"},
      "description": "Authored scenes matching the Scene JSON schema (spec.md §6.1)."
    },
    "style": {"type": "string", "description": "Style pack name."},
    "sequence_id": {"type": "string", "description": "Optional sequence_id; defaults to seq_<style> with hyphens replaced by underscores."},
    "resolution": {
      "type": "object",
      "properties": {"w": {"type": "integer"}, "h": {"type": "integer"}}
    },
    "fps": {"type": "integer", "description": "24, 30, or 60. Defaults to 30."}
  },
  "required": ["scenes", "style"]
}`)
}

type planSequenceParams struct {
	Scenes     []scene.Scene        `json:"scenes"`
	Style      string               `json:"style"`
	SequenceID string               `json:"sequence_id,omitempty"`
	Resolution *manifest.Resolution `json:"resolution,omitempty"`
	FPS        int                  `json:"fps,omitempty"`
}

func (t *PlanSequence) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p planSequenceParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if len(p.Scenes) == 0 {
		return mcp.ErrorResult("scenes must be non-empty"), nil
	}

	analyzed := make([]scene.Analyzed, 0, len(p.Scenes))
	for _, s := range p.Scenes {
		v := scene.Validate(s)
		if !v.Valid {
			return mcp.JSONResult(map[string]any{
				"valid":  false,
				"scene":  s.SceneID,
				"errors": v.Errors,
			})
		}
		analyzed = append(analyzed, analyzer.Analyze(s, t.cat))
	}

	sequenceID := p.SequenceID
	if sequenceID == "" {
		sequenceID = fmt.Sprintf("seq_%s", strings.ReplaceAll(p.Style, "-", "_"))
	}
	res := manifest.Resolution{W: 1920, H: 1080}
	if p.Resolution != nil {
		res = *p.Resolution
	}
	fps := p.FPS
	if fps == 0 {
		fps = 30
	}

	result, err := planner.Plan(analyzed, p.Style, sequenceID, res, fps, t.cat)
	if err != nil {
		return mcp.ErrorResult(err.Error()), nil
	}

	return mcp.JSONResult(map[string]any{
		"manifest": result.Manifest,
		"notes":    result.Notes,
	})
}
