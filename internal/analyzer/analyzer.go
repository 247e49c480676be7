// Package analyzer implements the Scene Analyzer (spec.md §4.4):
// deterministic, rule-based classification of an authored scene into
// content_type, visual_weight, motion_energy, intent_tags, and shot
// grammar, each with a parallel confidence score.
package analyzer

import (
	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/scene"
	"github.com/sizzlehq/sizzle/internal/shotgrammar"
)

// Analyze produces {metadata, _confidence} for a scene. If the scene
// carries an authored metadata.style_override or fully-authored
// metadata fields, those are respected as a manual override rather
// than recomputed, matching the Analyzer's "decorate without
// mutating authored fields" contract (spec.md §3.2).
func Analyze(s scene.Scene, cat *catalog.Catalog) scene.Analyzed {
	if s.Metadata != nil && isFullyAuthored(*s.Metadata) {
		return scene.Analyzed{
			Scene:    s,
			Metadata: *s.Metadata,
			Confidence: scene.Confidence{
				ContentType:  1.0,
				VisualWeight: 1.0,
				MotionEnergy: 1.0,
				IntentTags:   1.0,
			},
		}
	}

	visualWeight, vwConf := classifyVisualWeight(s)
	motionEnergy, meConf := classifyMotionEnergy(s)
	contentType, ctConf := classifyContentType(s)
	intentTags, itConf := classifyIntentTags(s, contentType, motionEnergy)

	var layoutTemplate string
	if s.Layout != nil {
		layoutTemplate = s.Layout.Template
	}
	axes := shotgrammar.Classify(shotgrammar.ClassifyInput{
		LayoutTemplate:   layoutTemplate,
		ContentType:      contentType,
		IntentTags:       intentTags,
		ForegroundLayers: len(foregroundLayers(s)),
	}, cat)

	md := scene.Metadata{
		ContentType:  contentType,
		VisualWeight: visualWeight,
		MotionEnergy: motionEnergy,
		IntentTags:   intentTags,
		ShotGrammar: &scene.ShotGrammar{
			ShotSize: axes.ShotSize,
			Angle:    axes.Angle,
			Framing:  axes.Framing,
		},
	}
	if s.Metadata != nil {
		md.StyleOverride = s.Metadata.StyleOverride
	}

	return scene.Analyzed{
		Scene:    s,
		Metadata: md,
		Confidence: scene.Confidence{
			ContentType:  ctConf,
			VisualWeight: vwConf,
			MotionEnergy: meConf,
			IntentTags:   itConf,
		},
	}
}

// isFullyAuthored reports whether a caller-supplied metadata block
// already specifies every field the analyzer would otherwise compute,
// in which case it is taken as an authoritative manual override.
func isFullyAuthored(m scene.Metadata) bool {
	return m.ContentType != "" && m.VisualWeight != "" && m.MotionEnergy != "" && len(m.IntentTags) > 0
}
