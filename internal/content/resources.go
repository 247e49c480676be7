package content

import "github.com/sizzlehq/sizzle/internal/mcp"

// --- sizzle://catalog-schema resource ---

// CatalogSchemaResource exposes the shape of the five bundled catalog
// documents (personalities, style packs, shot grammar, camera
// guardrails, primitives).
type CatalogSchemaResource struct{}

func (r *CatalogSchemaResource) Definition() mcp.ResourceDefinition {
	return mcp.ResourceDefinition{
		URI:         "sizzle://catalog-schema",
		Name:        "sizzle Catalog Schema",
		Description: "Reference of the five catalog documents' shapes: personalities, style packs, shot grammar, camera guardrails, and primitives.",
		MimeType:    "text/markdown",
	}
}

func (r *CatalogSchemaResource) Read() (*mcp.ResourcesReadResult, error) {
	return &mcp.ResourcesReadResult{
		Contents: []mcp.ResourceContent{
			{
				URI:      "sizzle://catalog-schema",
				MimeType: "text/markdown",
				Text:     catalogSchemaContent,
			},
		},
	}, nil
}

const catalogSchemaContent = `# sizzle Catalog Schema

The catalog is five bundled JSON documents, loaded once at process start
and immutable after. ` + "`catalog.Load`" + ` fails fast if a style pack
references an unknown personality, if a style-pack transition or camera
override rule names an unknown enum value, or if a personality allows an
unknown shot size, angle or framing. The shot-grammar affinity tables are
not checked.

## personalities.json

A list of personalities. Each has:
- ` + "`slug`" + ` — unique identifier
- ` + "`allowed_shot_sizes`" + `, ` + "`allowed_angles`" + `, ` + "`allowed_framings`" + ` — enum arrays
- ` + "`allowed_movements`" + ` — camera moves this personality permits
- ` + "`max_scale`" + `, ` + "`use_3d_rotation`" + `, ` + "`ambient_condition`" + `, and the
  ` + "`loop_time_min_s`" + `/` + "`loop_time_max_s`" + ` pacing range

## style_packs.json

A list of style packs. Each has:
- ` + "`name`" + ` — unique identifier
- ` + "`personality`" + ` — must reference a known personality slug
- ` + "`transitions`" + ` — an ordered list of transition rules (pattern,
  on_same_weight, on_weight_change, on_intent, default)
- ` + "`camera_overrides`" + ` — by content_type and by intent tag
- hold duration defaults

## shot_grammar.json

Affinity rules mapping content types and intent tags to preferred shot
sizes, angles, and framings.

## camera_guardrails.json

Physical and editorial safety bounds: speed limits, acceleration and
jerk bounds, and lens bounds shared by all personalities, plus
per-personality boundaries (forbidden features and numeric caps).

## primitives.json

The renderer-facing animation primitives registry: a flat list of
primitives, each with an ` + "`id`" + `, ` + "`category`" + `, and the personalities it
applies to.
`

// --- sizzle://tool-reference resource ---

// ToolReferenceResource exposes a quick-reference card for the nine
// MCP tools.
type ToolReferenceResource struct{}

func (r *ToolReferenceResource) Definition() mcp.ResourceDefinition {
	return mcp.ResourceDefinition{
		URI:         "sizzle://tool-reference",
		Name:        "sizzle Tool Reference",
		Description: "Quick-reference card for all nine sizzle tools with parameters and usage notes.",
		MimeType:    "text/markdown",
	}
}

func (r *ToolReferenceResource) Read() (*mcp.ResourcesReadResult, error) {
	return &mcp.ResourcesReadResult{
		Contents: []mcp.ResourceContent{
			{
				URI:      "sizzle://tool-reference",
				MimeType: "text/markdown",
				Text:     toolReferenceContent,
			},
		},
	}, nil
}

const toolReferenceContent = `# sizzle Tool Reference

| Tool | Input | Output |
|---|---|---|
| ` + "`analyze_scene`" + ` | ` + "`scene`" + ` | metadata + per-field confidence, or validation errors |
| ` + "`plan_sequence`" + ` | ` + "`scenes`" + `, ` + "`style`" + `, optional ` + "`sequence_id`" + `/` + "`resolution`" + `/` + "`fps`" + ` | manifest + editorial notes |
| ` + "`validate_choreography`" + ` | ` + "`scene`" + ` or ` + "`layer`" + ` | ` + "`{verdict, findings[]}`" + ` |
| ` + "`validate_guardrails`" + ` | ` + "`personality`" + `, and either ` + "`camera`" + ` (+ ` + "`shot_grammar`" + `, ` + "`duration_s`" + `) or ` + "`manifest`" + ` | per-move or per-scene safety outcomes |
| ` + "`evaluate_sequence`" + ` | ` + "`manifest`" + `, ` + "`scenes`" + `, ` + "`style`" + ` | scored report (pacing, variety, flow, adherence) |
| ` + "`get_personality`" + ` | ` + "`slug`" + ` | personality record |
| ` + "`get_style_pack`" + ` | ` + "`name`" + ` | style pack record |
| ` + "`search_primitives`" + ` | optional ` + "`category`" + `, ` + "`personality`" + ` | matching primitives |
| ` + "`get_primitive`" + ` | ` + "`id`" + ` | primitive record |

All nine tools resolve against the same process-wide catalog; none of
them read or write any external state.
`
