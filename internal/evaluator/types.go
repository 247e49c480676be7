// Package evaluator scores a planned Sequence Manifest on four
// dimensions — pacing, variety, flow, adherence — each independently
// re-deriving expected style-pack behavior rather than calling into
// the planner, so it also catches manually-edited manifests
// (spec.md §4.8).
package evaluator

import (
	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// Severity is a finding's urgency.
type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
)

// Finding is a structured observation from a sub-scorer.
type Finding struct {
	Severity   Severity `json:"severity"`
	Dimension  string   `json:"dimension"`
	Message    string   `json:"message"`
	SceneIndex *int     `json:"scene_index,omitempty"`
}

// DimensionScore is one of the four top-level scores plus its findings.
type DimensionScore struct {
	Score    float64   `json:"score"`
	Findings []Finding `json:"findings"`
}

// Report is the evaluator's full output.
type Report struct {
	Score      float64                   `json:"score"`
	Dimensions map[string]DimensionScore `json:"dimensions"`
	Findings   []Finding                 `json:"findings"`
}

// sceneContext bundles a manifest entry with the authored/analyzed
// scene it refers to and the style pack effective for it (honoring a
// per-scene metadata.style_override, with graceful fallback).
type sceneContext struct {
	index     int
	entry     manifest.SceneEntry
	analyzed  scene.Analyzed
	stylePack catalog.StylePack
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func energyLevel(energy string) int {
	switch energy {
	case string(catalog.EnergyStatic):
		return 0
	case string(catalog.EnergySubtle):
		return 1
	case string(catalog.EnergyModerate):
		return 2
	case string(catalog.EnergyHigh):
		return 3
	default:
		return 0
	}
}
