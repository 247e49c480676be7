package evaluator

import (
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
)

// scoreFlow scores the energy arc, intent progression, and transition
// coherence of the sequence (spec.md §4.8 "Flow").
func scoreFlow(contexts []sceneContext, sp catalog.StylePack) DimensionScore {
	var findings []Finding

	energyScore, f := scoreEnergyArc(contexts)
	findings = append(findings, f...)

	intentScore, f := scoreIntentProgression(contexts)
	findings = append(findings, f...)

	transitionScore, f := scoreTransitionCoherence(contexts, sp)
	findings = append(findings, f...)

	score := 0.40*energyScore + 0.30*intentScore + 0.30*transitionScore
	return DimensionScore{Score: clamp(score, 0, 100), Findings: findings}
}

func scoreEnergyArc(contexts []sceneContext) (float64, []Finding) {
	if len(contexts) == 0 {
		return 100, nil
	}

	if len(contexts) == 1 {
		return 100, nil
	}

	peakIdx, peakLevel := 0, -1
	flat := true
	for i, c := range contexts {
		lvl := energyLevel(c.analyzed.Metadata.MotionEnergy)
		if i > 0 && lvl != energyLevel(contexts[0].analyzed.Metadata.MotionEnergy) {
			flat = false
		}
		if lvl > peakLevel {
			peakLevel = lvl
			peakIdx = i
		}
	}

	if flat {
		return 40, []Finding{{Severity: Info, Dimension: "flow", Message: "motion energy is flat across the sequence"}}
	}

	position := float64(peakIdx) / float64(len(contexts)-1)

	switch {
	case position >= 0.3 && position <= 0.7:
		return 100, nil
	case position < 0.15:
		opener := contexts[0].analyzed.Metadata.IntentTags
		if hasTag(opener, catalog.IntentHero) || hasTag(opener, catalog.IntentOpening) {
			return 80, nil
		}
		idx := peakIdx
		return 40, []Finding{{
			Severity:   Warning,
			Dimension:  "flow",
			Message:    "energy peaks very early without an opening/hero opener",
			SceneIndex: &idx,
		}}
	default:
		return 70, nil
	}
}

func hasTag(tags []string, target string) bool {
	for _, t := range tags {
		if t == target {
			return true
		}
	}
	return false
}

func scoreIntentProgression(contexts []sceneContext) (float64, []Finding) {
	n := len(contexts)
	if n == 0 {
		return 100, nil
	}

	var hasRelevant bool
	for _, c := range contexts {
		if hasTag(c.analyzed.Metadata.IntentTags, catalog.IntentOpening) ||
			hasTag(c.analyzed.Metadata.IntentTags, catalog.IntentClosing) ||
			hasTag(c.analyzed.Metadata.IntentTags, catalog.IntentHero) {
			hasRelevant = true
			break
		}
	}
	if !hasRelevant {
		return 60, nil
	}

	var findings []Finding
	score := 0.0
	firstQuartile := float64(n) * 0.25
	lastQuartileStart := float64(n) * 0.75
	firstHalf := float64(n) * 0.5

	openingOK, closingOK, heroOK := false, false, false
	openingMisplaced := false
	openingSeen := false

	for i, c := range contexts {
		pos := float64(i)
		if hasTag(c.analyzed.Metadata.IntentTags, catalog.IntentOpening) {
			openingSeen = true
			if pos < firstQuartile {
				openingOK = true
			} else if pos >= lastQuartileStart {
				openingMisplaced = true
			}
		}
		if hasTag(c.analyzed.Metadata.IntentTags, catalog.IntentClosing) && pos >= lastQuartileStart {
			closingOK = true
		}
		if hasTag(c.analyzed.Metadata.IntentTags, catalog.IntentHero) && pos < firstHalf {
			heroOK = true
		}
	}

	if openingOK {
		score += 33
	}
	if closingOK {
		score += 33
	}
	if heroOK {
		score += 34
	}
	if openingSeen && openingMisplaced && !openingOK {
		findings = append(findings, Finding{
			Severity:  Warning,
			Dimension: "flow",
			Message:   "opening-tagged scene appears in the final quartile of the sequence",
		})
	}

	return clamp(score, 0, 100), findings
}

func scoreTransitionCoherence(contexts []sceneContext, sp catalog.StylePack) (float64, []Finding) {
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

	score := float64(matches) / float64(len(contexts)-1) * 100
	var findings []Finding
	if score < 100 {
		findings = append(findings, Finding{
			Severity:  Info,
			Dimension: "flow",
			Message:   fmt.Sprintf("%d of %d transitions match the style pack's expected rules", matches, len(contexts)-1),
		})
	}
	return score, findings
}
