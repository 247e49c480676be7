// Package planner implements the Sequence Planner (spec.md §4.5):
// shot ordering, hold durations, transitions, and camera overrides,
// assembled into a self-validated Sequence Manifest.
package planner

import (
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/scene"
	"github.com/sizzlehq/sizzle/internal/shotgrammar"
)

// resolveEntryShotGrammar carries the analyzer's classified axes
// through to the manifest, corrected against the personality's
// allowed sets (spec.md §4.6 validateShotGrammar) so every downstream
// consumer (guardrails, evaluator) sees a personality-compliant shot
// grammar without recomputing it.
func resolveEntryShotGrammar(a scene.Analyzed, p catalog.Personality) *manifest.ShotGrammar {
	if a.Metadata.ShotGrammar == nil {
		return nil
	}
	axes := shotgrammar.Axes{
		ShotSize: a.Metadata.ShotGrammar.ShotSize,
		Angle:    a.Metadata.ShotGrammar.Angle,
		Framing:  a.Metadata.ShotGrammar.Framing,
	}
	corrected, _ := shotgrammar.Validate(axes, p)
	return &manifest.ShotGrammar{
		ShotSize: corrected.ShotSize,
		Angle:    corrected.Angle,
		Framing:  corrected.Framing,
	}
}

// Notes are the planner's editorial summary of a plan.
type Notes struct {
	TotalDurationS      float64  `json:"total_duration_s"`
	SceneCount          int      `json:"scene_count"`
	OrderingRationale   []string `json:"ordering_rationale"`
	TransitionSummary   map[string]int `json:"transition_summary"`
}

// Result is the planner's output: the manifest plus its notes.
type Result struct {
	Manifest manifest.Manifest `json:"manifest"`
	Notes    Notes             `json:"notes"`
}

// Plan runs all four planner stages over an ordered slate of analyzed
// scenes under the named style pack, then self-validates the
// resulting manifest. A self-validation failure indicates a bug in
// the planner itself and panics rather than returning an error
// (spec.md §4.5 "Output").
func Plan(scenes []scene.Analyzed, styleName, sequenceID string, res manifest.Resolution, fps int, cat *catalog.Catalog) (Result, error) {
	sp, ok := cat.GetStylePack(styleName)
	if !ok {
		return Result{}, fmt.Errorf("planner: unknown style pack %q", styleName)
	}
	personality, err := cat.PersonalityFor(styleName)
	if err != nil {
		return Result{}, fmt.Errorf("planner: %w", err)
	}

	ordered, rationale := orderScenes(scenes)

	entries := make([]manifest.SceneEntry, len(ordered))
	for i, a := range ordered {
		entries[i] = manifest.SceneEntry{
			Scene:       a.Scene.SceneID,
			DurationS:   sp.HoldDuration(a.Metadata.MotionEnergy),
			ShotGrammar: resolveEntryShotGrammar(a, personality),
		}
	}

	assignTransitions(ordered, entries, sp)
	assignCameraOverrides(ordered, entries, sp, personality)

	m := manifest.Manifest{
		SequenceID: sequenceID,
		Resolution: res,
		FPS:        fps,
		Style:      styleName,
		Scenes:     entries,
	}

	known := make(map[string]struct{}, len(scenes))
	for _, a := range scenes {
		known[a.Scene.SceneID] = struct{}{}
	}
	if v := manifest.Validate(m, known); !v.Valid {
		panic(fmt.Sprintf("planner: self-validation failed: %v", v.Errors))
	}

	total := 0.0
	transitionCounts := map[string]int{}
	for i, se := range entries {
		total += se.DurationS
		if se.TransitionIn != nil {
			transitionCounts[se.TransitionIn.Type]++
			// Transitions overlap the preceding hold rather than
			// extending the timeline (crossfades/whips eat into the
			// previous scene's tail), so net duration subtracts the
			// overlap for every scene but the first.
			if i > 0 {
				total -= float64(se.TransitionIn.DurationMs) / 1000
			}
		} else if i > 0 {
			transitionCounts["hard_cut"]++
		}
	}

	return Result{
		Manifest: m,
		Notes: Notes{
			TotalDurationS:    total,
			SceneCount:        len(entries),
			OrderingRationale: rationale,
			TransitionSummary: transitionCounts,
		},
	}, nil
}
