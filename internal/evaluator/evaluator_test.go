package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/scene"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func TestEvaluateRejectsUnknownStyle(t *testing.T) {
	cat := loadCatalog(t)
	_, err := Evaluate(manifest.Manifest{}, nil, "nonexistent", cat)
	assert.Error(t, err)
}

func TestEvaluateShortSequenceGetsPerfectVariety(t *testing.T) {
	cat := loadCatalog(t)
	scenes := []scene.Analyzed{
		{Scene: scene.Scene{SceneID: "sc_a"}, Metadata: scene.Metadata{MotionEnergy: "static", ContentType: "portrait"}},
	}
	m := manifest.Manifest{
		SequenceID: "seq_short",
		Resolution: manifest.Resolution{W: 1920, H: 1080},
		FPS:        30,
		Style:      "editorial-calm",
		Scenes: []manifest.SceneEntry{
			{Scene: "sc_a", DurationS: 4.0},
		},
	}
	report, err := Evaluate(m, scenes, "editorial-calm", cat)
	require.NoError(t, err)
	assert.Equal(t, 100.0, report.Dimensions["variety"].Score)
}

func TestEvaluateGracefullyDegradesUnknownStyleOverride(t *testing.T) {
	cat := loadCatalog(t)
	scenes := []scene.Analyzed{
		{Scene: scene.Scene{SceneID: "sc_a"}, Metadata: scene.Metadata{MotionEnergy: "static", ContentType: "portrait", StyleOverride: "not-a-real-style"}},
		{Scene: scene.Scene{SceneID: "sc_b"}, Metadata: scene.Metadata{MotionEnergy: "moderate", ContentType: "brand_mark"}},
	}
	m := manifest.Manifest{
		SequenceID: "seq_override",
		Resolution: manifest.Resolution{W: 1920, H: 1080},
		FPS:        30,
		Style:      "editorial-calm",
		Scenes: []manifest.SceneEntry{
			{Scene: "sc_a", DurationS: 4.0},
			{Scene: "sc_b", DurationS: 3.0},
		},
	}
	report, err := Evaluate(m, scenes, "editorial-calm", cat)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.Score, 0.0)
}

func TestEvaluateSingleScenePacingIsAlwaysPerfect(t *testing.T) {
	cat := loadCatalog(t)
	scenes := []scene.Analyzed{
		{Scene: scene.Scene{SceneID: "sc_a"}, Metadata: scene.Metadata{MotionEnergy: "high", ContentType: "portrait"}, Confidence: scene.Confidence{MotionEnergy: 1.0}},
	}
	m := manifest.Manifest{
		SequenceID: "seq_overrun",
		Resolution: manifest.Resolution{W: 1920, H: 1080},
		FPS:        30,
		Style:      "editorial-calm",
		Scenes: []manifest.SceneEntry{
			{Scene: "sc_a", DurationS: 30.0},
		},
	}
	report, err := Evaluate(m, scenes, "editorial-calm", cat)
	require.NoError(t, err)
	assert.Equal(t, 100.0, report.Dimensions["pacing"].Score)
}

func TestExpectedCameraOverrideDropsMoveForbiddenByPersonality(t *testing.T) {
	sp := catalog.StylePack{
		Name: "custom",
		CameraOverrides: catalog.CameraOverrideRules{
			ByContentType: map[string]catalog.CameraOverride{
				"portrait": {Move: "push_in", Intensity: 0.3},
			},
		},
	}
	p := catalog.Personality{Slug: "no-push-in", AllowedMovements: []string{"pan"}}
	ctx := sceneContext{analyzed: scene.Analyzed{Metadata: scene.Metadata{ContentType: "portrait"}}}

	override := expectedCameraOverride(sp, ctx, p)
	assert.Nil(t, override, "a move outside allowed_movements must be dropped, matching the planner's assignCameraOverrides")
}

func TestExpectedCameraOverrideKeepsAlwaysAllowedMoves(t *testing.T) {
	sp := catalog.StylePack{
		Name: "custom",
		CameraOverrides: catalog.CameraOverrideRules{
			ForceStatic: true,
		},
	}
	p := catalog.Personality{Slug: "no-movement-at-all", AllowedMovements: []string{}}
	ctx := sceneContext{analyzed: scene.Analyzed{Metadata: scene.Metadata{ContentType: "portrait"}}}

	override := expectedCameraOverride(sp, ctx, p)
	require.NotNil(t, override)
	assert.Equal(t, catalog.MoveStatic, override.Move)
}

func TestEvaluateWholePipelinePenalizesOverrunDuration(t *testing.T) {
	cat := loadCatalog(t)
	scenes := []scene.Analyzed{
		{Scene: scene.Scene{SceneID: "sc_a"}, Metadata: scene.Metadata{MotionEnergy: "high", ContentType: "portrait"}, Confidence: scene.Confidence{MotionEnergy: 1.0}},
		{Scene: scene.Scene{SceneID: "sc_b"}, Metadata: scene.Metadata{MotionEnergy: "high", ContentType: "portrait"}, Confidence: scene.Confidence{MotionEnergy: 1.0}},
	}
	m := manifest.Manifest{
		SequenceID: "seq_overrun",
		Resolution: manifest.Resolution{W: 1920, H: 1080},
		FPS:        30,
		Style:      "editorial-calm",
		Scenes: []manifest.SceneEntry{
			{Scene: "sc_a", DurationS: 30.0},
			{Scene: "sc_b", DurationS: 2.0},
		},
	}
	report, err := Evaluate(m, scenes, "editorial-calm", cat)
	require.NoError(t, err)
	assert.Less(t, report.Dimensions["pacing"].Score, 100.0)
}
