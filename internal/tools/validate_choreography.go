package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/mcp"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// ValidateChoreography runs the Scene Validator (spec.md §4.2) over
// either a whole scene or a single layer "primitive" in isolation.
type ValidateChoreography struct{ deps }

// NewValidateChoreography constructs the validate_choreography tool.
func NewValidateChoreography(cat *catalog.Catalog) *ValidateChoreography {
	return &ValidateChoreography{deps{cat: cat}}
}

func (t *ValidateChoreography) Name() string { return "validate_choreography" }

func (t *ValidateChoreography) Description() string {
	return "Validate a scene's structure and enums against the catalog, or check a single layer's intrinsic rules (type, opacity, text content) in isolation."
}

func (t *ValidateChoreography) InputSchema() json.RawMessage {
	return json.RawMessage(`{
  "type": "object",
  "properties": {
    "scene": {"type": "object", "description": "A full authored scene (spec.md §6.1)."},
    "layer": {"type": "object", "description": "A single layer, validated without scene context."}
  }
}`)
}

type validateChoreographyParams struct {
	Scene *scene.Scene `json:"scene,omitempty"`
	Layer *scene.Layer `json:"layer,omitempty"`
}

func (t *ValidateChoreography) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p validateChoreographyParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	switch {
	case p.Scene != nil:
		result := scene.Validate(*p.Scene)
		return mcp.JSONResult(toVerdict(result))
	case p.Layer != nil:
		result := scene.ValidateLayer(*p.Layer)
		return mcp.JSONResult(toVerdict(result))
	default:
		return mcp.ErrorResult("one of scene or layer is required"), nil
	}
}

func toVerdict(r scene.ValidationResult) map[string]any {
	verdict := "pass"
	if !r.Valid {
		verdict = "fail"
	}
	findings := make([]map[string]any, 0, len(r.Errors))
	for _, e := range r.Errors {
		findings = append(findings, map[string]any{
			"dimension": "schema",
			"message":   e,
		})
	}
	return map[string]any{
		"verdict":  verdict,
		"findings": findings,
	}
}
