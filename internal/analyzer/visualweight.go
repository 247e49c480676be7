package analyzer

import "github.com/sizzlehq/sizzle/internal/scene"

// classifyVisualWeight derives the dark/light/mixed bucket from the
// scene's color signals (spec.md §4.4 "Visual weight").
func classifyVisualWeight(s scene.Scene) (string, float64) {
	var signals []float64

	for _, l := range s.Layers {
		switch l.Type {
		case "text":
			if c, ok := l.Style["color"]; ok {
				if lum, ok := relativeLuminance(c); ok {
					signals = append(signals, 1-lum) // inverse: white text -> dark scene
				}
			}
		case "html":
			for _, v := range l.Style {
				for _, hex := range findHexColors(v) {
					if lum, ok := relativeLuminance(hex); ok {
						signals = append(signals, lum)
					}
				}
			}
		}
	}

	if len(signals) == 0 {
		return "mixed", 0.30
	}

	darkCount, lightCount := 0, 0
	for _, v := range signals {
		if v < 0.25 {
			darkCount++
		}
		if v > 0.60 {
			lightCount++
		}
	}
	n := float64(len(signals))
	darkRatio := float64(darkCount) / n
	lightRatio := float64(lightCount) / n

	if darkRatio > 0.70 {
		return "dark", 0.70 + 0.25*darkRatio
	}
	if lightRatio > 0.70 {
		return "light", 0.70 + 0.25*lightRatio
	}
	return "mixed", 0.60
}
