package planner

import (
	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// assignCameraOverrides runs Stage 4 (spec.md §4.5): resolve each
// scene's camera override from the style pack's rules, then drop it
// if the personality disallows the move (drift and static are always
// permitted regardless of allowed_movements).
func assignCameraOverrides(ordered []scene.Analyzed, entries []manifest.SceneEntry, sp catalog.StylePack, p catalog.Personality) {
	for i, a := range ordered {
		override := resolveCameraOverride(a, sp)
		if override == nil {
			continue
		}
		if !isAlwaysAllowed(override.Move) && !p.AllowsMovement(override.Move) {
			continue
		}
		entries[i].CameraOverride = &manifest.CameraOverride{
			Move:      override.Move,
			Intensity: override.Intensity,
			Easing:    override.Easing,
		}
	}
}

func isAlwaysAllowed(move string) bool {
	k := catalog.ToKebab(move)
	return k == catalog.ToKebab(catalog.MoveStatic) || k == catalog.ToKebab(catalog.MoveDrift)
}

func resolveCameraOverride(a scene.Analyzed, sp catalog.StylePack) *catalog.CameraOverride {
	if sp.CameraOverrides.ForceStatic {
		return &catalog.CameraOverride{Move: catalog.MoveStatic}
	}
	if co, ok := sp.CameraOverrides.ByContentType[a.Metadata.ContentType]; ok {
		return &co
	}
	for _, rule := range sp.CameraOverrides.ByIntent {
		if intersects(a.Metadata.IntentTags, rule.Tags) {
			co := rule.Override
			return &co
		}
	}
	return nil
}
