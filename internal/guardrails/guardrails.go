// Package guardrails judges camera moves and full manifests against
// the physical and editorial safety bounds of spec.md §4.7.
package guardrails

import (
	"fmt"
	"math"

	"github.com/sizzlehq/sizzle/internal/catalog"
)

// Severity is a guardrail verdict. Ordered PASS < WARN < BLOCK so the
// overall verdict is the maximum across every check.
type Severity int

const (
	PASS Severity = iota
	WARN
	BLOCK
)

func (s Severity) String() string {
	switch s {
	case BLOCK:
		return "BLOCK"
	case WARN:
		return "WARN"
	default:
		return "PASS"
	}
}

func maxSeverity(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}

// Finding is one guardrail check's outcome.
type Finding struct {
	Dimension string   `json:"dimension"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
}

// MoveResult is validateCameraMove's output.
type MoveResult struct {
	Verdict  Severity  `json:"verdict"`
	Findings []Finding `json:"findings"`
}

// CameraInput is the camera-move context validateCameraMove judges.
type CameraInput struct {
	Move      string
	Intensity float64
	Easing    string
	Amplitude float64 // drift only; defaults to Intensity if zero
}

// ShotGrammarInput carries just the rotation axes guardrails need.
type ShotGrammarInput struct {
	RotateX float64
	RotateZ float64
}

type adder func(dimension string, sev Severity, format string, args ...any)

// ValidateCameraMove judges a single camera move against the five
// per-move checks of spec.md §4.7.
func ValidateCameraMove(cam CameraInput, sg ShotGrammarInput, durationS float64, p catalog.Personality, cat *catalog.Catalog) MoveResult {
	var findings []Finding
	verdict := PASS
	add := func(dimension string, sev Severity, format string, args ...any) {
		findings = append(findings, Finding{Dimension: dimension, Severity: sev, Message: fmt.Sprintf(format, args...)})
		verdict = maxSeverity(verdict, sev)
	}

	checkSpeedLimit(cam, durationS, cat, add)
	checkAcceleration(cam, cat, add)
	checkJerk(cam, durationS, cat, add)
	checkLensBounds(cam, sg, cat, add)
	checkPersonalityBoundaries(cam, sg, durationS, p, cat, add)

	return MoveResult{Verdict: verdict, Findings: findings}
}

func checkSpeedLimit(cam CameraInput, durationS float64, cat *catalog.Catalog, add adder) {
	if durationS <= 0 {
		return
	}
	limit, ok := cat.Guardrails.SpeedLimits[cam.Move]
	if !ok {
		return
	}

	var velocity float64
	switch cam.Move {
	case catalog.MovePan:
		velocity = cam.Intensity * cat.Guardrails.Constants.PanMaxPx / durationS
	case catalog.MovePushIn, catalog.MovePullOut:
		velocity = cam.Intensity * cat.Guardrails.Constants.ScaleFactor * 100 / durationS
	case catalog.MoveDrift:
		amp := cam.Amplitude
		if amp == 0 {
			amp = cam.Intensity
		}
		velocity = amp * 2 * math.Pi / durationS
	default:
		return
	}

	if velocity > limit.MaxVelocity {
		add("speed_limit", WARN, "%s velocity %.2f exceeds max_velocity %.2f", cam.Move, velocity, limit.MaxVelocity)
	}
}

func checkAcceleration(cam CameraInput, cat *catalog.Catalog, add adder) {
	if cam.Move == catalog.MoveDrift {
		return
	}
	ratio, ok := cat.Guardrails.EasingDecelerationRatio[cam.Easing]
	if !ok {
		return
	}
	if ratio < cat.Guardrails.Acceleration.DecelerationPhaseMinimum {
		add("acceleration", WARN, "easing %q deceleration-phase ratio %.2f is below minimum %.2f", cam.Easing, ratio, cat.Guardrails.Acceleration.DecelerationPhaseMinimum)
	}
}

func checkJerk(cam CameraInput, durationS float64, cat *catalog.Catalog, add adder) {
	if cam.Move != catalog.MoveDrift {
		return
	}
	reversalMs := durationS / 2 * 1000
	if reversalMs < cat.Guardrails.Jerk.SettlingOnReversalMs {
		add("jerk", WARN, "drift reversal interval %.0fms is below settling minimum %.0fms", reversalMs, cat.Guardrails.Jerk.SettlingOnReversalMs)
	}
}

func checkLensBounds(cam CameraInput, sg ShotGrammarInput, cat *catalog.Catalog, add adder) {
	if cam.Move == catalog.MovePushIn || cam.Move == catalog.MovePullOut {
		scaleFactor := 1 + cam.Intensity*cat.Guardrails.Constants.ScaleFactor
		b := cat.Guardrails.LensBounds.Scale
		if scaleFactor < b.Min || scaleFactor > b.Max {
			add("lens_bounds", WARN, "camera scale factor %.2f outside lens bounds [%.2f, %.2f]", scaleFactor, b.Min, b.Max)
		}
	}

	rot := cat.Guardrails.LensBounds.Rotation
	if sg.RotateX < rot.Min || sg.RotateX > rot.Max {
		add("lens_bounds", WARN, "rotateX %.1f outside lens rotation bounds [%.1f, %.1f]", sg.RotateX, rot.Min, rot.Max)
	}
	if sg.RotateZ < rot.Min || sg.RotateZ > rot.Max {
		add("lens_bounds", WARN, "rotateZ %.1f outside lens rotation bounds [%.1f, %.1f]", sg.RotateZ, rot.Min, rot.Max)
	}
}

func checkPersonalityBoundaries(cam CameraInput, sg ShotGrammarInput, durationS float64, p catalog.Personality, cat *catalog.Catalog, add adder) {
	boundary, ok := cat.Guardrails.PersonalityBoundaries[p.Slug]
	if !ok {
		return
	}

	exhibitsCameraMovement := cam.Move != catalog.MoveStatic && cam.Move != catalog.MoveDrift
	exhibits3D := sg.RotateX != 0 || sg.RotateZ != 0
	exhibitsAmbientMotion := cam.Move == catalog.MoveDrift

	for _, feature := range boundary.ForbiddenFeatures {
		switch feature {
		case "camera_movement":
			if exhibitsCameraMovement {
				add("personality_boundaries", BLOCK, "camera_movement is forbidden for this personality")
			}
		case "3d_transforms":
			if exhibits3D {
				add("personality_boundaries", BLOCK, "3d_transforms are forbidden for this personality")
			}
		case "ambient_motion":
			if exhibitsAmbientMotion {
				add("personality_boundaries", BLOCK, "ambient_motion is forbidden for this personality")
			}
		case "camera_shake":
			// No shake primitive exists in this catalog; reserved for
			// a future camera-shake move.
		}
	}

	if boundary.MaxTranslateXY != nil && cam.Move == catalog.MovePan {
		translate := cam.Intensity * cat.Guardrails.Constants.PanMaxPx
		if translate > *boundary.MaxTranslateXY {
			add("personality_boundaries", WARN, "pan translate %.1fpx exceeds personality cap %.1fpx", translate, *boundary.MaxTranslateXY)
		}
	}

	if boundary.MaxScaleChangePercent != nil && (cam.Move == catalog.MovePushIn || cam.Move == catalog.MovePullOut) {
		changePercent := cam.Intensity * cat.Guardrails.Constants.ScaleFactor * 100
		if changePercent > *boundary.MaxScaleChangePercent {
			add("personality_boundaries", WARN, "scale change %.1f%% exceeds personality cap %.1f%%", changePercent, *boundary.MaxScaleChangePercent)
		}
	}

	if cam.Move == catalog.MoveDrift {
		checkAmbientCondition(p.AmbientCondition, durationS, add)
	}
}

func checkAmbientCondition(condition string, durationS float64, add adder) {
	switch {
	case condition == "":
		return
	case isNeverCondition(condition):
		add("personality_boundaries", BLOCK, "ambient motion is never allowed for this personality (%s)", condition)
	case condition == "only for scenes >10s":
		if durationS <= 10 {
			add("personality_boundaries", WARN, "ambient motion only allowed for scenes >10s; this scene is %.1fs", durationS)
		}
	}
}

func isNeverCondition(condition string) bool {
	return len(condition) >= 5 && condition[:5] == "never"
}
