// Package content provides MCP prompts and resources for the sizzle server.
package content

import "github.com/sizzlehq/sizzle/internal/mcp"

// --- sizzle-guide prompt ---

// GuidePrompt walks a client through the full pipeline: load the
// catalog, analyze scenes, plan a sequence, check guardrails, and
// evaluate the result.
type GuidePrompt struct{}

func (p *GuidePrompt) Definition() mcp.PromptDefinition {
	return mcp.PromptDefinition{
		Name:        "sizzle-guide",
		Description: "Walkthrough of the sizzle pipeline: analyze scenes, plan a sequence, validate guardrails, and evaluate the result.",
		Arguments:   []mcp.PromptArgument{},
	}
}

func (p *GuidePrompt) Get(arguments map[string]string) (*mcp.PromptsGetResult, error) {
	return &mcp.PromptsGetResult{
		Description: "Walkthrough of the sizzle pipeline",
		Messages: []mcp.PromptMessage{
			{
				Role:    "user",
				Content: mcp.TextContent(sizzleGuide),
			},
		},
	}, nil
}

const sizzleGuide = `# Using sizzle

sizzle turns a set of authored scenes into an ordered, style-consistent
video sequence. Every step below maps to one tool call.

## Step 1: Pick a personality and style pack

Call ` + "`get_personality`" + ` with a slug (e.g. "restrained-editorial") to see its
allowed camera moves, shot sizes, and pacing boundaries.

Call ` + "`get_style_pack`" + ` with a style pack name to see its transition
rules, camera overrides, and hold-duration defaults.

## Step 2: Analyze each scene

For each authored scene, call ` + "`analyze_scene`" + `. It returns a
content_type, visual_weight, motion_energy, intent_tags, and shot_grammar,
each with a confidence score. Low-confidence fields usually mean the
scene's layers are ambiguous (e.g. no color signals to judge visual
weight, or no layout or composition rule matched the content type).

You can also call ` + "`validate_choreography`" + ` on a single scene (or a
single layer in isolation) first, to catch structural problems — unknown
enums, duplicate IDs, out-of-range opacity — before analysis runs.

## Step 3: Plan the sequence

Call ` + "`plan_sequence`" + ` with the full list of scenes and a style pack
name. It orders the scenes, assigns hold durations, transitions, and
camera overrides, and returns a manifest plus editorial notes explaining
the ordering and transition choices.

## Step 4: Check camera safety

Call ` + "`validate_guardrails`" + ` with either a single camera move (plus
shot grammar and duration) or the full manifest from step 3. It reports
any physical or editorial safety violations against the personality's
bounds — speed, acceleration, jerk, and lens limits.

## Step 5: Evaluate the sequence

Call ` + "`evaluate_sequence`" + ` with the manifest, the scenes it was built
from, and the style name. It scores pacing, variety, flow, and style
adherence, and independently re-derives what the planner should have
produced so a manually-edited manifest is caught rather than rubber
stamped.

## Browsing the animation primitives registry

Use ` + "`search_primitives`" + ` (filtered by category and/or personality) to
browse renderer-facing animation primitives, and ` + "`get_primitive`" + ` to
look up one by ID once you know which you want.
`
