package evaluator

import "github.com/sizzlehq/sizzle/internal/catalog"

// expectedTransition and expectedCameraOverride independently
// re-implement the planner's Stage 3 / Stage 4 rule evaluation
// (spec.md §4.5) so the evaluator never calls into the planner
// package — this is what lets it catch a manually-edited manifest
// that no longer matches what the style pack would have produced
// (spec.md §4.8).

func expectedTransition(sp catalog.StylePack, prev, curr sceneContext, index, cycleIndex int) (catalog.Transition, bool) {
	for _, rule := range sp.Transitions {
		switch rule.Kind {
		case "pattern":
			if rule.EveryN > 0 && (index%rule.EveryN) == 0 && len(rule.Cycle) > 0 {
				return rule.Cycle[cycleIndex%len(rule.Cycle)], true
			}
		case "on_same_weight":
			pw, cw := prev.analyzed.Metadata.VisualWeight, curr.analyzed.Metadata.VisualWeight
			if pw != "" && pw == cw {
				return rule.Transition, false
			}
		case "on_weight_change":
			pw, cw := prev.analyzed.Metadata.VisualWeight, curr.analyzed.Metadata.VisualWeight
			if pw != "" && cw != "" && pw != cw {
				return rule.Transition, false
			}
		case "on_intent":
			if tagsIntersect(curr.analyzed.Metadata.IntentTags, rule.Tags) {
				return rule.Transition, false
			}
		case "default":
			return rule.Transition, false
		}
	}
	return catalog.Transition{Type: catalog.TransitionHardCut, DurationMs: 0}, false
}

func expectedCameraOverride(sp catalog.StylePack, c sceneContext, p catalog.Personality) *catalog.CameraOverride {
	override := resolveCameraOverrideRule(sp, c)
	if override == nil {
		return nil
	}
	if !isAlwaysAllowedMove(override.Move) && !p.AllowsMovement(override.Move) {
		return nil
	}
	return override
}

func resolveCameraOverrideRule(sp catalog.StylePack, c sceneContext) *catalog.CameraOverride {
	if sp.CameraOverrides.ForceStatic {
		return &catalog.CameraOverride{Move: catalog.MoveStatic}
	}
	if co, ok := sp.CameraOverrides.ByContentType[c.analyzed.Metadata.ContentType]; ok {
		return &co
	}
	for _, rule := range sp.CameraOverrides.ByIntent {
		if tagsIntersect(c.analyzed.Metadata.IntentTags, rule.Tags) {
			co := rule.Override
			return &co
		}
	}
	return nil
}

func isAlwaysAllowedMove(move string) bool {
	k := catalog.ToKebab(move)
	return k == catalog.ToKebab(catalog.MoveStatic) || k == catalog.ToKebab(catalog.MoveDrift)
}

func tagsIntersect(tags, ruleTags []string) bool {
	set := make(map[string]struct{}, len(ruleTags))
	for _, t := range ruleTags {
		set[t] = struct{}{}
	}
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
