package analyzer

import "github.com/sizzlehq/sizzle/internal/scene"

// classifyMotionEnergy sums the integer motion score and maps it to
// the static/subtle/moderate/high bucket (spec.md §4.4 "Motion energy").
func classifyMotionEnergy(s scene.Scene) (string, float64) {
	score := 0

	if s.Camera != nil && s.Camera.Move != "static" {
		switch {
		case s.Camera.Intensity < 0.2:
			score += 1
		case s.Camera.Intensity <= 0.5:
			score += 2
		default:
			score += 3
		}
	}

	entranceCount := 0
	delays := map[int]struct{}{}
	for _, l := range s.Layers {
		switch l.Animation {
		case "word-reveal":
			score += 2
		case "scale-cascade":
			score += 6
		case "weight-morph":
			score += 2
		}
		if l.Entrance != nil {
			entranceCount++
			delays[l.Entrance.DelayMs] = struct{}{}
		}
		if l.Type == "video" {
			score += 1
		}
	}

	switch {
	case entranceCount >= 3:
		score += 3
	case entranceCount >= 1:
		score += 1
	}

	switch {
	case len(delays) >= 3:
		score += 2
	case len(delays) >= 2:
		score += 1
	}

	var bucket string
	switch {
	case score == 0:
		bucket = "static"
	case score == 1:
		bucket = "subtle"
	case score <= 5:
		bucket = "moderate"
	default:
		bucket = "high"
	}

	confidence := 0.90
	if score != 0 {
		confidence = 0.50 + 0.08*float64(score)
		if confidence > 0.95 {
			confidence = 0.95
		}
	}

	return bucket, confidence
}
