package guardrails

import (
	"strconv"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
)

// SceneResult pairs a manifest scene entry's index with its camera
// move verdict.
type SceneResult struct {
	SceneIndex int       `json:"scene_index"`
	Result     MoveResult `json:"result"`
}

// ManifestResult is validateFullManifest's output.
type ManifestResult struct {
	Verdict          Severity      `json:"verdict"`
	SceneResults     []SceneResult `json:"scene_results"`
	SequenceFindings []Finding     `json:"sequence_findings"`
}

// ValidateFullManifest runs validateCameraMove over every scene entry
// that carries a camera_override, then applies the sequence-level
// consecutive-linear-easing check (spec.md §4.7). BLOCK dominates WARN
// dominates PASS overall; sequence findings can only raise the verdict
// to WARN.
func ValidateFullManifest(m manifest.Manifest, p catalog.Personality, cat *catalog.Catalog) ManifestResult {
	overall := PASS
	sceneResults := make([]SceneResult, 0, len(m.Scenes))

	for i, se := range m.Scenes {
		cam := CameraInput{Move: catalog.MoveStatic}
		if se.CameraOverride != nil {
			cam = CameraInput{
				Move:      se.CameraOverride.Move,
				Intensity: se.CameraOverride.Intensity,
				Easing:    se.CameraOverride.Easing,
			}
		}
		var sg ShotGrammarInput
		if se.ShotGrammar != nil {
			if css, ok := cat.ShotGrammar.AngleCSS[se.ShotGrammar.Angle]; ok {
				sg.RotateX = css.RotateX
				sg.RotateZ = css.RotateZ
			}
		}

		result := ValidateCameraMove(cam, sg, se.DurationS, p, cat)
		sceneResults = append(sceneResults, SceneResult{SceneIndex: i, Result: result})
		overall = maxSeverity(overall, result.Verdict)
	}

	sequenceFindings := checkConsecutiveLinear(m)
	for range sequenceFindings {
		overall = maxSeverity(overall, WARN)
	}

	return ManifestResult{
		Verdict:          overall,
		SceneResults:     sceneResults,
		SequenceFindings: sequenceFindings,
	}
}

// checkConsecutiveLinear flags any run of more than two consecutive
// linear easings across the manifest. This can only ever WARN.
func checkConsecutiveLinear(m manifest.Manifest) []Finding {
	var findings []Finding
	run := 0
	for i, se := range m.Scenes {
		easing := ""
		if se.CameraOverride != nil {
			easing = se.CameraOverride.Easing
		}
		if easing == catalog.EasingLinear {
			run++
		} else {
			run = 0
		}
		if run == 3 {
			findings = append(findings, Finding{
				Dimension: "sequence_linear_easing",
				Severity:  WARN,
				Message:   "more than two consecutive linear easings ending at scene index " + strconv.Itoa(i),
			})
		}
	}
	return findings
}
