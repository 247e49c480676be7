package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sizzlehq/sizzle/internal/analyzer"
	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/evaluator"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/mcp"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// EvaluateSequence runs the Evaluator (spec.md §4.8) over a manifest
// and the scenes it was planned from, re-analyzing scenes that aren't
// already fully authored.
type EvaluateSequence struct{ deps }

// NewEvaluateSequence constructs the evaluate_sequence tool.
func NewEvaluateSequence(cat *catalog.Catalog) *EvaluateSequence {
	return &EvaluateSequence{deps{cat: cat}}
}

func (t *EvaluateSequence) Name() string { return "evaluate_sequence" }

func (t *EvaluateSequence) Description() string {
	return "Score a sequence manifest's pacing, variety, flow, and style-pack adherence, independently re-deriving expected planner behavior so manually-edited manifests are caught."
}

func (t *EvaluateSequence) InputSchema() json.RawMessage {
	return json.RawMessage(`{
  "type": "object",
  "properties": {
    "manifest": {"type": "object", "description": "A sequence manifest (spec.md §6.2)."},
    "scenes": {"type": "array", "items": {"type": "object"}, "description": "The authored scenes the manifest references."},
    "style": {"type": "string"}
  },
  "required": ["manifest", "scenes", "style"]
}`)
}

type evaluateSequenceParams struct {
	Manifest manifest.Manifest `json:"manifest"`
	Scenes   []scene.Scene     `json:"scenes"`
	Style    string            `json:"style"`
}

func (t *EvaluateSequence) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p evaluateSequenceParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	analyzed := make([]scene.Analyzed, 0, len(p.Scenes))
	for _, s := range p.Scenes {
		analyzed = append(analyzed, analyzer.Analyze(s, t.cat))
	}

	report, err := evaluator.Evaluate(p.Manifest, analyzed, p.Style, t.cat)
	if err != nil {
		return mcp.ErrorResult(err.Error()), nil
	}

	return mcp.JSONResult(report)
}
