package evaluator

import (
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
)

// scoreAdherence scores four equally-weighted sub-dimensions of
// style-pack and personality compliance (spec.md §4.8 "Adherence").
func scoreAdherence(contexts []sceneContext, sp catalog.StylePack, p catalog.Personality) DimensionScore {
	var findings []Finding

	cameraScore := scoreCameraMatchRate(contexts, sp, p)
	transitionScore, f := scoreTransitionMatchRate(contexts, sp)
	findings = append(findings, f...)
	grammarScore, f := scoreShotGrammarCompliance(contexts, p)
	findings = append(findings, f...)
	durationScore := scoreDurationMatch(contexts, sp)

	score := (cameraScore + transitionScore + grammarScore + durationScore) / 4
	return DimensionScore{Score: clamp(score, 0, 100), Findings: findings}
}

func scoreCameraMatchRate(contexts []sceneContext, sp catalog.StylePack, p catalog.Personality) float64 {
	if len(contexts) == 0 {
		return 100
	}
	matches := 0
	for _, c := range contexts {
		expected := expectedCameraOverride(sp, c, p)
		actual := c.entry.CameraOverride
		if cameraMovesMatch(expected, actual) {
			matches++
		}
	}
	return float64(matches) / float64(len(contexts)) * 100
}

func cameraMovesMatch(expected *catalog.CameraOverride, actual *manifest.CameraOverride) bool {
	if expected == nil && actual == nil {
		return true
	}
	if expected == nil || actual == nil {
		return false
	}
	return expected.Move == actual.Move
}

func scoreTransitionMatchRate(contexts []sceneContext, sp catalog.StylePack) (float64, []Finding) {
	if len(contexts) <= 1 {
		return 100, nil
	}
	matches := 0
	cycleIndex := 0
	for i := 1; i < len(contexts); i++ {
		expected, consumed := expectedTransition(sp, contexts[i-1], contexts[i], i, cycleIndex)
		if consumed {
			cycleIndex++
		}
		actual := catalog.TransitionHardCut
		if contexts[i].entry.TransitionIn != nil {
			actual = contexts[i].entry.TransitionIn.Type
		}
		if actual == expected.Type {
			matches++
		}
	}
	return float64(matches) / float64(len(contexts)-1) * 100, nil
}

func scoreShotGrammarCompliance(contexts []sceneContext, p catalog.Personality) (float64, []Finding) {
	if len(contexts) == 0 {
		return 100, nil
	}
	var findings []Finding
	sum := 0.0
	for _, c := range contexts {
		if c.entry.ShotGrammar == nil {
			sum += 100
			continue
		}
		offenses := 0
		sg := c.entry.ShotGrammar
		if sg.ShotSize != "" && !p.AllowsSize(sg.ShotSize) {
			offenses++
		}
		if sg.Angle != "" && !p.AllowsAngle(sg.Angle) {
			offenses++
		}
		if sg.Framing != "" && !p.AllowsFraming(sg.Framing) {
			offenses++
		}
		if offenses > 0 {
			idx := c.index
			findings = append(findings, Finding{
				Severity:   Warning,
				Dimension:  "adherence",
				Message:    fmt.Sprintf("scene %q shot grammar has %d axis offense(s) against personality", c.entry.Scene, offenses),
				SceneIndex: &idx,
			})
		}
		sum += clamp(100-float64(offenses)/3*100, 0, 100)
	}
	return sum / float64(len(contexts)), findings
}

func scoreDurationMatch(contexts []sceneContext, sp catalog.StylePack) float64 {
	if len(contexts) == 0 {
		return 100
	}
	sum := 0.0
	for _, c := range contexts {
		expected := c.stylePack.HoldDuration(c.analyzed.Metadata.MotionEnergy)
		deviation := c.entry.DurationS - expected
		if deviation < 0 {
			deviation = -deviation
		}
		sum += deviation
	}
	avg := sum / float64(len(contexts))
	return clamp(100*(1-avg/3), 0, 100)
}
