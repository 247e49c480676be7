package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/guardrails"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/mcp"
)

// ValidateGuardrails runs the camera-safety guardrails (spec.md §4.7)
// against either a single camera move or a full sequence manifest.
type ValidateGuardrails struct{ deps }

// NewValidateGuardrails constructs the validate_guardrails tool.
func NewValidateGuardrails(cat *catalog.Catalog) *ValidateGuardrails {
	return &ValidateGuardrails{deps{cat: cat}}
}

func (t *ValidateGuardrails) Name() string { return "validate_guardrails" }

func (t *ValidateGuardrails) Description() string {
	return "Check a single camera move (with shot grammar, duration, and personality) or a full sequence manifest against physical and editorial safety bounds."
}

func (t *ValidateGuardrails) InputSchema() json.RawMessage {
	return json.RawMessage(`{
  "type": "object",
  "properties": {
    "personality": {"type": "string", "description": "Personality slug."},
    "camera": {
      "type": "object",
      "properties": {
        "move": {"type": "string"},
        "intensity": {"type": "number"},
        "easing": {"type": "string"},
        "amplitude": {"type": "number"}
      }
    },
    "shot_grammar": {
      "type": "object",
      "properties": {"rotate_x": {"type": "number"}, "rotate_z": {"type": "number"}}
    },
    "duration_s": {"type": "number"},
    "manifest": {"type": "object", "description": "A full sequence manifest (spec.md §6.2); when present, camera/shot_grammar/duration_s are ignored."}
  },
  "required": ["personality"]
}`)
}

type validateGuardrailsCamera struct {
	Move      string  `json:"move"`
	Intensity float64 `json:"intensity"`
	Easing    string  `json:"easing"`
	Amplitude float64 `json:"amplitude"`
}

type validateGuardrailsShotGrammar struct {
	RotateX float64 `json:"rotate_x"`
	RotateZ float64 `json:"rotate_z"`
}

type validateGuardrailsParams struct {
	Personality string                         `json:"personality"`
	Camera      *validateGuardrailsCamera      `json:"camera,omitempty"`
	ShotGrammar *validateGuardrailsShotGrammar `json:"shot_grammar,omitempty"`
	DurationS   float64                        `json:"duration_s,omitempty"`
	Manifest    *manifest.Manifest             `json:"manifest,omitempty"`
}

func (t *ValidateGuardrails) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p validateGuardrailsParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if p.Personality == "" {
		return mcp.ErrorResult("personality is required"), nil
	}
	personality, ok := t.cat.GetPersonality(p.Personality)
	if !ok {
		return mcp.ErrorResult(fmt.Sprintf("unknown personality %q", p.Personality)), nil
	}

	if p.Manifest != nil {
		result := guardrails.ValidateFullManifest(*p.Manifest, personality, t.cat)
		return mcp.JSONResult(result)
	}

	if p.Camera == nil {
		return mcp.ErrorResult("one of camera or manifest is required"), nil
	}

	cam := guardrails.CameraInput{
		Move:      p.Camera.Move,
		Intensity: p.Camera.Intensity,
		Easing:    p.Camera.Easing,
		Amplitude: p.Camera.Amplitude,
	}
	var sg guardrails.ShotGrammarInput
	if p.ShotGrammar != nil {
		sg = guardrails.ShotGrammarInput{RotateX: p.ShotGrammar.RotateX, RotateZ: p.ShotGrammar.RotateZ}
	}

	result := guardrails.ValidateCameraMove(cam, sg, p.DurationS, personality, t.cat)
	return mcp.JSONResult(result)
}
