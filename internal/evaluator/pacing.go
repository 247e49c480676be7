package evaluator

import (
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
)

// scorePacing compares each scene's actual duration to its expected
// hold duration, then adjusts for how the total sequence duration
// sits within the personality's characteristic loop-time range
// (spec.md §4.8 "Pacing").
func scorePacing(contexts []sceneContext, p catalog.Personality) DimensionScore {
	var findings []Finding
	total := 0.0

	if len(contexts) == 0 || len(contexts) == 1 {
		return DimensionScore{Score: 100}
	}

	sum := 0.0
	for _, c := range contexts {
		expected := c.stylePack.HoldDuration(c.analyzed.Metadata.MotionEnergy)
		actual := c.entry.DurationS
		total += actual
		deviation := actual - expected
		if deviation < 0 {
			deviation = -deviation
		}

		penalty := 0.0
		if deviation > 0.5 {
			penalty = clamp((deviation-0.5)/1.5, 0, 1) * 100
		}
		if deviation > 1.0 {
			idx := c.index
			findings = append(findings, Finding{
				Severity:   Warning,
				Dimension:  "pacing",
				Message:    fmt.Sprintf("scene %q duration deviates %.2fs from expected %.2fs", c.entry.Scene, deviation, expected),
				SceneIndex: &idx,
			})
		}
		if c.stylePack.MaxHoldDuration != nil && actual > *c.stylePack.MaxHoldDuration {
			penalty += 15
			idx := c.index
			findings = append(findings, Finding{
				Severity:   Warning,
				Dimension:  "pacing",
				Message:    fmt.Sprintf("scene %q duration %.2fs exceeds max_hold_duration %.2fs", c.entry.Scene, actual, *c.stylePack.MaxHoldDuration),
				SceneIndex: &idx,
			})
		}

		penalty *= c.analyzed.Confidence.MotionEnergy
		sum += clamp(100-penalty, 0, 100)
	}

	score := sum / float64(len(contexts))

	if p.LoopTimeMinS > 0 || p.LoopTimeMaxS > 0 {
		switch {
		case total >= p.LoopTimeMinS && total <= p.LoopTimeMaxS:
			score += 5
		case total < p.LoopTimeMinS-5 || total > p.LoopTimeMaxS+5:
			score -= 5
			findings = append(findings, Finding{
				Severity:  Info,
				Dimension: "pacing",
				Message:   fmt.Sprintf("total duration %.2fs is outside personality loop_time range [%.2f, %.2f]", total, p.LoopTimeMinS, p.LoopTimeMaxS),
			})
		}
	}

	return DimensionScore{Score: clamp(score, 0, 100), Findings: findings}
}
