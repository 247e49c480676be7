package analyzer

import (
	"strings"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// classifyIntentTags derives narrative-role tags from content type and
// motion energy (spec.md §4.4 "Intent tags").
func classifyIntentTags(s scene.Scene, contentType, motionEnergy string) ([]string, float64) {
	var tags []string
	add := func(t string) {
		for _, existing := range tags {
			if existing == t {
				return
			}
		}
		tags = append(tags, t)
	}

	switch contentType {
	case string(catalog.ContentBrandMark):
		add(catalog.IntentHero)
		if strings.Contains(strings.ToLower(s.SceneID), "open") {
			add(catalog.IntentOpening)
		}
	case string(catalog.ContentTypography):
		if isSingleTextForeground(s) {
			switch {
			case motionEnergy == string(catalog.EnergyHigh):
				add(catalog.IntentHero)
			case hasWordRevealAnimation(s):
				add(catalog.IntentOpening)
			default:
				add(catalog.IntentDetail)
			}
		}
	case string(catalog.ContentUIScreenshot), string(catalog.ContentDeviceMockup):
		add(catalog.IntentDetail)
	case string(catalog.ContentDataVisualization):
		add(catalog.IntentDetail)
		add(catalog.IntentInformational)
	case string(catalog.ContentPortrait):
		add(catalog.IntentEmotional)
	case string(catalog.ContentCollage), string(catalog.ContentMoodboard), string(catalog.ContentSplitPanel):
		add(catalog.IntentInformational)
	}

	if hasType(backgroundLayers(s), "video") && hasType(foregroundLayers(s), "text") {
		add(catalog.IntentEmotional)
	}

	if s.DurationS != nil && *s.DurationS <= 1.5 && len(s.Layers) <= 2 {
		add(catalog.IntentTransition)
	}

	confidence := 0.30
	if len(tags) > 0 {
		confidence = 0.55 + 0.10*float64(len(tags))
		if confidence > 0.90 {
			confidence = 0.90
		}
	}
	return tags, confidence
}

func isSingleTextForeground(s scene.Scene) bool {
	fg := foregroundLayers(s)
	return len(fg) == 1 && fg[0].Type == "text"
}

func hasWordRevealAnimation(s scene.Scene) bool {
	for _, l := range s.Layers {
		if l.Animation == "word-reveal" {
			return true
		}
	}
	return false
}
