// Package manifest defines the Sequence Manifest — the Planner's
// output type — and validates it (spec.md §3.1, §3.3, §6.2).
package manifest

import (
	"fmt"
	"regexp"

	"github.com/sizzlehq/sizzle/internal/catalog"
)

var sequenceIDPattern = regexp.MustCompile(`^seq_[a-z0-9_]+$`)

// Resolution is the target canvas size in pixels.
type Resolution struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Transition is an edit between two adjacent scenes.
type Transition struct {
	Type       string `json:"type"`
	DurationMs int    `json:"duration_ms"`
}

// CameraOverride is a planner- or author-assigned camera directive on
// a manifest scene entry.
type CameraOverride struct {
	Move      string  `json:"move"`
	Intensity float64 `json:"intensity"`
	Easing    string  `json:"easing"`
}

// ShotGrammar mirrors scene.ShotGrammar for the manifest's own JSON
// shape; kept as a distinct type so manifest has no import-time
// dependency on the authored-scene schema.
type ShotGrammar struct {
	ShotSize string `json:"shot_size,omitempty"`
	Angle    string `json:"angle,omitempty"`
	Framing  string `json:"framing,omitempty"`
}

// SceneEntry is one scene's placement within a sequence.
type SceneEntry struct {
	Scene           string          `json:"scene"`
	DurationS       float64         `json:"duration_s"`
	TransitionIn    *Transition     `json:"transition_in,omitempty"`
	CameraOverride  *CameraOverride `json:"camera_override,omitempty"`
	ShotGrammar     *ShotGrammar    `json:"shot_grammar,omitempty"`
}

// Manifest is the Planner's output (spec.md §3.1, §6.2).
type Manifest struct {
	SequenceID string       `json:"sequence_id"`
	Resolution Resolution   `json:"resolution"`
	FPS        int          `json:"fps"`
	Style      string       `json:"style"`
	Scenes     []SceneEntry `json:"scenes"`
}

var validFPS = map[int]struct{}{24: {}, 30: {}, 60: {}}

// ValidationResult mirrors scene.ValidationResult; kept as its own
// type so manifest has no dependency on the scene package.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Validate checks a manifest against spec.md §3.3's structural
// invariants. knownSceneIDs is the set of scene IDs the manifest is
// allowed to reference (the input scenes it was planned from).
func Validate(m Manifest, knownSceneIDs map[string]struct{}) ValidationResult {
	r := ValidationResult{Valid: true}

	if !sequenceIDPattern.MatchString(m.SequenceID) {
		r.fail("sequence_id %q must match ^seq_[a-z0-9_]+$", m.SequenceID)
	}
	if len(m.Scenes) == 0 {
		r.fail("manifest must contain at least one scene")
	}
	if _, ok := validFPS[m.FPS]; !ok {
		r.fail("fps %d must be one of 24, 30, 60", m.FPS)
	}

	for i, se := range m.Scenes {
		if knownSceneIDs != nil {
			if _, known := knownSceneIDs[se.Scene]; !known {
				r.fail("scene entry %d: scene %q does not reference a known scene", i, se.Scene)
			}
		}
		if se.DurationS < 0.5 || se.DurationS > 30 {
			r.fail("scene entry %d (%s): duration_s %v must be between 0.5 and 30", i, se.Scene, se.DurationS)
		}
		if se.TransitionIn != nil {
			if !catalog.IsTransitionType(se.TransitionIn.Type) {
				r.fail("scene entry %d (%s): transition_in.type %q is not a known transition", i, se.Scene, se.TransitionIn.Type)
			}
			if se.TransitionIn.DurationMs < 0 || se.TransitionIn.DurationMs > 2000 {
				r.fail("scene entry %d (%s): transition_in.duration_ms %d must be between 0 and 2000", i, se.Scene, se.TransitionIn.DurationMs)
			}
		}
		if se.CameraOverride != nil {
			co := se.CameraOverride
			if !catalog.IsCameraMove(co.Move) {
				r.fail("scene entry %d (%s): camera_override.move %q is not a known move", i, se.Scene, co.Move)
			}
			if co.Easing != "" && !catalog.IsEasing(co.Easing) {
				r.fail("scene entry %d (%s): camera_override.easing %q is not a known easing", i, se.Scene, co.Easing)
			}
			if co.Intensity < 0 || co.Intensity > 1 {
				r.fail("scene entry %d (%s): camera_override.intensity %v must be between 0 and 1", i, se.Scene, co.Intensity)
			}
		}
		if se.ShotGrammar != nil {
			sg := se.ShotGrammar
			if sg.ShotSize != "" && !catalog.IsShotSize(sg.ShotSize) {
				r.fail("scene entry %d (%s): shot_grammar.shot_size %q is not known", i, se.Scene, sg.ShotSize)
			}
			if sg.Angle != "" && !catalog.IsShotAngle(sg.Angle) {
				r.fail("scene entry %d (%s): shot_grammar.angle %q is not known", i, se.Scene, sg.Angle)
			}
			if sg.Framing != "" && !catalog.IsShotFraming(sg.Framing) {
				r.fail("scene entry %d (%s): shot_grammar.framing %q is not known", i, se.Scene, sg.Framing)
			}
		}
	}

	return r
}
