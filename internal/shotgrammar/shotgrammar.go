// Package shotgrammar implements the three shot-grammar operations
// named in spec.md §4.6: classification, personality-bound validation,
// and CSS resolution.
package shotgrammar

import (
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
)

// Axes is the three-axis shot grammar with a parallel confidence per
// axis, mirroring scene.ShotGrammar plus analyzer confidence scores.
type Axes struct {
	ShotSize string
	Angle    string
	Framing  string

	ShotSizeConfidence float64
	AngleConfidence    float64
	FramingConfidence  float64
}

// ClassifyInput carries just the signals the classifier needs, so it
// has no dependency on the scene package.
type ClassifyInput struct {
	LayoutTemplate    string
	ContentType       string
	IntentTags        []string
	ForegroundLayers  int
}

// Classify applies spec.md §4.4's "Shot grammar" priority-ordered
// rules: layout template, then content-type affinity, then a
// foreground-layer-count fallback for size; intent tags, then content
// type, then eye-level default for angle; layout template, then
// intent tags, then center default for framing.
func Classify(in ClassifyInput, cat *catalog.Catalog) Axes {
	var a Axes

	if v, conf, ok := firstMatch(cat.ShotGrammar.SizeByLayoutTemplate, in.LayoutTemplate); ok {
		a.ShotSize, a.ShotSizeConfidence = v, conf
	} else if v, conf, ok := firstMatch(cat.ShotGrammar.SizeByContentType, in.ContentType); ok {
		a.ShotSize, a.ShotSizeConfidence = v, conf
	} else {
		a.ShotSize, a.ShotSizeConfidence = sizeByForegroundCount(in.ForegroundLayers), 0.50
	}

	if v, conf, ok := firstMatchAny(cat.ShotGrammar.AngleByIntentTag, in.IntentTags); ok {
		a.Angle, a.AngleConfidence = v, conf
	} else if v, conf, ok := firstMatch(cat.ShotGrammar.AngleByContentType, in.ContentType); ok {
		a.Angle, a.AngleConfidence = v, conf
	} else {
		a.Angle, a.AngleConfidence = catalog.ShotAngleEyeLevel, 0.40
	}

	if v, conf, ok := firstMatch(cat.ShotGrammar.FramingByLayoutTemplate, in.LayoutTemplate); ok {
		a.Framing, a.FramingConfidence = v, conf
	} else if v, conf, ok := firstMatchAny(cat.ShotGrammar.FramingByIntentTag, in.IntentTags); ok {
		a.Framing, a.FramingConfidence = v, conf
	} else {
		a.Framing, a.FramingConfidence = catalog.ShotFramingCenter, 0.40
	}

	return a
}

func sizeByForegroundCount(n int) string {
	switch {
	case n <= 1:
		return catalog.ShotSizeCloseUp
	case n <= 3:
		return catalog.ShotSizeMedium
	default:
		return catalog.ShotSizeWide
	}
}

func firstMatch(rules []catalog.AffinityRule, key string) (string, float64, bool) {
	if key == "" {
		return "", 0, false
	}
	for _, r := range rules {
		if r.Key == key {
			return r.Value, r.Conf, true
		}
	}
	return "", 0, false
}

// firstMatchAny returns the rule matching the highest-priority tag
// among tags that has a rule (rules are themselves priority-ordered;
// tags are matched in the order they were derived).
func firstMatchAny(rules []catalog.AffinityRule, tags []string) (string, float64, bool) {
	for _, tag := range tags {
		if v, conf, ok := firstMatch(rules, tag); ok {
			return v, conf, true
		}
	}
	return "", 0, false
}

// Corrections lists human-readable repair notes from Validate.
type Corrections = []string

// Validate clamps axes to the personality's allowed sets, falling
// back to size=medium, angle=eye_level, framing=center, and records a
// human-readable correction for each axis it had to repair.
func Validate(a Axes, p catalog.Personality) (Axes, Corrections) {
	out := a
	var notes Corrections

	if !p.AllowsSize(out.ShotSize) {
		notes = append(notes, fmt.Sprintf("shot_size %q not allowed for personality; falling back to medium", out.ShotSize))
		out.ShotSize = catalog.ShotSizeMedium
	}
	if !p.AllowsAngle(out.Angle) {
		notes = append(notes, fmt.Sprintf("angle %q not allowed for personality; falling back to eye_level", out.Angle))
		out.Angle = catalog.ShotAngleEyeLevel
	}
	if !p.AllowsFraming(out.Framing) {
		notes = append(notes, fmt.Sprintf("framing %q not allowed for personality; falling back to center", out.Framing))
		out.Framing = catalog.ShotFramingCenter
	}

	return out, notes
}

// CSS is the resolved per-axis visual transform (spec.md §4.6).
type CSS struct {
	Scale             float64
	PerspectiveOrigin string
	RotateX           float64
	RotateZ           float64
	TransformOrigin   string
}

// ResolveCSS combines the catalog's per-axis CSS mappings, then clamps
// scale to the personality's max and suppresses 3D rotation entirely
// when the personality disables it.
func ResolveCSS(a Axes, p catalog.Personality, cat *catalog.Catalog) CSS {
	size := cat.ShotGrammar.SizeCSS[a.ShotSize]
	angle := cat.ShotGrammar.AngleCSS[a.Angle]
	framing := cat.ShotGrammar.FramingCSS[a.Framing]

	out := CSS{
		Scale:             size.Scale,
		PerspectiveOrigin: angle.PerspectiveOrigin,
		RotateX:           angle.RotateX,
		RotateZ:           angle.RotateZ,
		TransformOrigin:   framing.TransformOrigin,
	}

	if out.Scale > p.MaxScale {
		out.Scale = p.MaxScale
	}

	if !p.Use3DRotation {
		out.RotateX = 0
		out.RotateZ = 0
		out.PerspectiveOrigin = "50% 50%"
	}

	return out
}
