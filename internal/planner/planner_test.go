package planner

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

func analyzed(id, contentType, weight, energy string, tags []string, confidence float64) scene.Analyzed {
	return scene.Analyzed{
		Scene: scene.Scene{SceneID: id},
		Metadata: scene.Metadata{
			ContentType:  contentType,
			VisualWeight: weight,
			MotionEnergy: energy,
			IntentTags:   tags,
		},
		Confidence: scene.Confidence{IntentTags: confidence},
	}
}

func TestPlanProducesValidManifest(t *testing.T) {
	cat := loadCatalog(t)
	scenes := []scene.Analyzed{
		analyzed("sc_open", "typography", "dark", "moderate", []string{"opening"}, 0.8),
		analyzed("sc_mid", "portrait", "mixed", "subtle", []string{"detail"}, 0.7),
		analyzed("sc_end", "brand_mark", "light", "static", []string{"closing"}, 0.8),
	}

	res, err := Plan(scenes, "editorial-calm", "seq_launch", manifest.Resolution{W: 1920, H: 1080}, 30, cat)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Notes.SceneCount)
	assert.Equal(t, "sc_open", res.Manifest.Scenes[0].Scene)
	assert.Equal(t, "sc_end", res.Manifest.Scenes[len(res.Manifest.Scenes)-1].Scene)
	assert.Nil(t, res.Manifest.Scenes[0].TransitionIn)
}

func TestPlanForceStaticStylePackNeverOverridesCamera(t *testing.T) {
	cat := loadCatalog(t)
	scenes := []scene.Analyzed{
		analyzed("sc_a", "portrait", "dark", "moderate", []string{"hero"}, 0.8),
		analyzed("sc_b", "typography", "light", "subtle", []string{"closing"}, 0.8),
	}
	res, err := Plan(scenes, "editorial-calm", "seq_force_static", manifest.Resolution{W: 1920, H: 1080}, 30, cat)
	require.NoError(t, err)
	for _, se := range res.Manifest.Scenes {
		if se.CameraOverride != nil {
			assert.Equal(t, "static", se.CameraOverride.Move)
		}
	}
}

func TestPlanRejectsUnknownStyle(t *testing.T) {
	cat := loadCatalog(t)
	scenes := []scene.Analyzed{analyzed("sc_only", "portrait", "dark", "static", nil, 0)}
	_, err := Plan(scenes, "nonexistent-style", "seq_x", manifest.Resolution{W: 100, H: 100}, 30, cat)
	assert.Error(t, err)
}

func TestTopIntentUsesFixedPriority(t *testing.T) {
	assert.Equal(t, catalog.IntentClosing, topIntent([]string{"hero", "closing", "detail"}))
	assert.Equal(t, "", topIntent(nil))
}

func TestInterleaveInsertsEmotionalAtEvenIntervals(t *testing.T) {
	middle := []scene.Analyzed{
		analyzed("sc_1", "", "", "", nil, 0),
		analyzed("sc_2", "", "", "", nil, 0),
		analyzed("sc_3", "", "", "", nil, 0),
		analyzed("sc_4", "", "", "", nil, 0),
	}
	emotional := []scene.Analyzed{analyzed("sc_e", "", "", "", nil, 0)}
	out := interleave(middle, emotional)
	assert.Len(t, out, 5)
	// step = 4/(1+1) = 2: two middle scenes, then the emotional one.
	assert.Equal(t, "sc_e", out[2].Scene.SceneID)
}
