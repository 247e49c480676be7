package evaluator

import (
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// Evaluate scores m against the style pack styleName, using scenes to
// resolve each manifest entry's analyzer metadata.
func Evaluate(m manifest.Manifest, scenes []scene.Analyzed, styleName string, cat *catalog.Catalog) (Report, error) {
	sp, ok := cat.GetStylePack(styleName)
	if !ok {
		return Report{}, fmt.Errorf("evaluator: unknown style pack %q", styleName)
	}
	personality, err := cat.PersonalityFor(styleName)
	if err != nil {
		return Report{}, fmt.Errorf("evaluator: %w", err)
	}

	byID := make(map[string]scene.Analyzed, len(scenes))
	for _, a := range scenes {
		byID[a.Scene.SceneID] = a
	}

	contexts := make([]sceneContext, len(m.Scenes))
	for i, se := range m.Scenes {
		contexts[i] = sceneContext{
			index:     i,
			entry:     se,
			analyzed:  byID[se.Scene],
			stylePack: effectiveStylePack(byID[se.Scene], sp, cat),
		}
	}

	pacing := scorePacing(contexts, personality)
	variety := scoreVariety(contexts)
	flow := scoreFlow(contexts, sp)
	adherence := scoreAdherence(contexts, sp, personality)

	overall := 0.25*pacing.Score + 0.25*variety.Score + 0.25*flow.Score + 0.25*adherence.Score

	findings := append([]Finding{}, pacing.Findings...)
	findings = append(findings, variety.Findings...)
	findings = append(findings, flow.Findings...)
	findings = append(findings, adherence.Findings...)

	return Report{
		Score: overall,
		Dimensions: map[string]DimensionScore{
			"pacing":    pacing,
			"variety":   variety,
			"flow":      flow,
			"adherence": adherence,
		},
		Findings: findings,
	}, nil
}

// effectiveStylePack resolves a per-scene metadata.style_override,
// falling back to the sequence-level style pack when the override is
// absent or unknown (spec.md §4.8 "Graceful degradation").
func effectiveStylePack(a scene.Analyzed, fallback catalog.StylePack, cat *catalog.Catalog) catalog.StylePack {
	if a.Metadata.StyleOverride == "" {
		return fallback
	}
	if sp, ok := cat.GetStylePack(a.Metadata.StyleOverride); ok {
		return sp
	}
	return fallback
}
