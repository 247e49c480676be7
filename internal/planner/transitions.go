package planner

import (
	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// assignTransitions runs Stage 3 (spec.md §4.5): the first scene gets
// no transition_in; every subsequent scene evaluates the style pack's
// transition rules in fixed priority order and takes the first match.
func assignTransitions(ordered []scene.Analyzed, entries []manifest.SceneEntry, sp catalog.StylePack) {
	cycleIndex := 0

	for i := 1; i < len(ordered); i++ {
		prev, curr := ordered[i-1], ordered[i]
		t, consumed := resolveTransition(sp.Transitions, prev, curr, i, cycleIndex)
		if consumed {
			cycleIndex++
		}
		entries[i].TransitionIn = &manifest.Transition{Type: t.Type, DurationMs: t.DurationMs}
	}
}

func resolveTransition(rules []catalog.TransitionRule, prev, curr scene.Analyzed, index, cycleIndex int) (catalog.Transition, bool) {
	for _, rule := range rules {
		switch rule.Kind {
		case "pattern":
			if rule.EveryN > 0 && (index%rule.EveryN) == 0 && len(rule.Cycle) > 0 {
				return rule.Cycle[cycleIndex%len(rule.Cycle)], true
			}
		case "on_same_weight":
			if prev.Metadata.VisualWeight != "" && prev.Metadata.VisualWeight == curr.Metadata.VisualWeight {
				return rule.Transition, false
			}
		case "on_weight_change":
			if prev.Metadata.VisualWeight != "" && curr.Metadata.VisualWeight != "" && prev.Metadata.VisualWeight != curr.Metadata.VisualWeight {
				return rule.Transition, false
			}
		case "on_intent":
			if intersects(curr.Metadata.IntentTags, rule.Tags) {
				return rule.Transition, false
			}
		case "default":
			return rule.Transition, false
		}
	}
	return catalog.Transition{Type: catalog.TransitionHardCut, DurationMs: 0}, false
}

func intersects(tags, ruleTags []string) bool {
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
