package evaluator

import "fmt"

// scoreVariety scores four equally-weighted sub-dimensions of
// across-sequence variety (spec.md §4.8 "Variety"). Short sequences
// (<=2 scenes) are exempt and score 100.
func scoreVariety(contexts []sceneContext) DimensionScore {
	if len(contexts) <= 2 {
		return DimensionScore{Score: 100}
	}

	var findings []Finding

	shotSize, f := scoreShotSizeVariety(contexts)
	findings = append(findings, f...)

	contentType, f := scoreContentTypeVariety(contexts)
	findings = append(findings, f...)

	weightBalance, f := scoreVisualWeightBalance(contexts)
	findings = append(findings, f...)

	energyDist, f := scoreMotionEnergyDistribution(contexts)
	findings = append(findings, f...)

	score := (shotSize + contentType + weightBalance + energyDist) / 4
	return DimensionScore{Score: clamp(score, 0, 100), Findings: findings}
}

func scoreShotSizeVariety(contexts []sceneContext) (float64, []Finding) {
	score := 100.0
	var findings []Finding
	run := 1

	for i := 1; i < len(contexts); i++ {
		prevSize := shotSizeOf(contexts[i-1])
		currSize := shotSizeOf(contexts[i])
		if prevSize != "" && prevSize == currSize {
			score -= 10
			run++
			if run == 3 {
				score -= 25
				idx := i
				findings = append(findings, Finding{
					Severity:   Warning,
					Dimension:  "variety",
					Message:    fmt.Sprintf("shot_size %q repeats for 3 consecutive scenes", currSize),
					SceneIndex: &idx,
				})
			}
		} else {
			run = 1
		}
	}
	return clamp(score, 0, 100), findings
}

func shotSizeOf(c sceneContext) string {
	if c.entry.ShotGrammar == nil {
		return ""
	}
	return c.entry.ShotGrammar.ShotSize
}

func scoreContentTypeVariety(contexts []sceneContext) (float64, []Finding) {
	score := 100.0
	var findings []Finding
	for i := 1; i < len(contexts); i++ {
		prev := contexts[i-1].analyzed.Metadata.ContentType
		curr := contexts[i].analyzed.Metadata.ContentType
		if prev != "" && prev == curr {
			score -= 20
			idx := i
			findings = append(findings, Finding{
				Severity:   Info,
				Dimension:  "variety",
				Message:    fmt.Sprintf("content_type %q repeats in adjacent scenes", curr),
				SceneIndex: &idx,
			})
		}
	}
	return clamp(score, 0, 100), findings
}

func scoreVisualWeightBalance(contexts []sceneContext) (float64, []Finding) {
	counts := map[string]int{}
	for _, c := range contexts {
		if c.analyzed.Metadata.VisualWeight != "" {
			counts[c.analyzed.Metadata.VisualWeight]++
		}
	}
	score := 100.0
	var findings []Finding
	n := float64(len(contexts))
	for weight, count := range counts {
		if float64(count)/n > 0.80 {
			score -= 30
			findings = append(findings, Finding{
				Severity:  Info,
				Dimension: "variety",
				Message:   fmt.Sprintf("visual_weight %q makes up more than 80%% of scenes", weight),
			})
		}
	}
	return clamp(score, 0, 100), findings
}

func scoreMotionEnergyDistribution(contexts []sceneContext) (float64, []Finding) {
	counts := map[string]int{}
	for _, c := range contexts {
		counts[c.analyzed.Metadata.MotionEnergy]++
	}
	score := 100.0
	var findings []Finding
	if len(counts) == 1 {
		score -= 40
		findings = append(findings, Finding{
			Severity:  Warning,
			Dimension: "variety",
			Message:   "all scenes share a single motion_energy bucket",
		})
	}
	if len(counts) >= 3 {
		score += 10
	}
	return clamp(score, 0, 100), findings
}
