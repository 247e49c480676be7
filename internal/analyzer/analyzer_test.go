package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/scene"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func dur(v float64) *float64 { return &v }

func TestAnalyzeDarkTextOnBackground(t *testing.T) {
	cat := loadCatalog(t)
	s := scene.Scene{
		SceneID:   "sc_statement",
		DurationS: dur(4),
		Layers: []scene.Layer{
			{ID: "bg", Type: "html", DepthClass: "background", Style: map[string]string{"background": "#111111"}},
			{ID: "title", Type: "text", DepthClass: "foreground", Content: "Shadows", Style: map[string]string{"color": "#ffffff"}},
		},
	}
	a := Analyze(s, cat)
	assert.Equal(t, "dark", a.Metadata.VisualWeight)
}

func TestAnalyzeStaticSceneHasZeroMotionScore(t *testing.T) {
	cat := loadCatalog(t)
	s := scene.Scene{
		SceneID:   "sc_calm",
		DurationS: dur(5),
		Layers: []scene.Layer{
			{ID: "bg", Type: "image", DepthClass: "background"},
		},
	}
	a := Analyze(s, cat)
	assert.Equal(t, "static", a.Metadata.MotionEnergy)
	assert.Equal(t, 0.90, a.Confidence.MotionEnergy)
}

func TestAnalyzeHighMotionFromScaleCascade(t *testing.T) {
	cat := loadCatalog(t)
	s := scene.Scene{
		SceneID:   "sc_burst",
		DurationS: dur(2),
		Camera:    &scene.Camera{Move: "push_in", Intensity: 0.8},
		Layers: []scene.Layer{
			{ID: "title", Type: "text", DepthClass: "foreground", Content: "Go", Animation: "scale-cascade"},
		},
	}
	a := Analyze(s, cat)
	assert.Equal(t, "high", a.Metadata.MotionEnergy)
}

func TestAnalyzeDeviceMockupLayoutDrivesContentType(t *testing.T) {
	cat := loadCatalog(t)
	s := scene.Scene{
		SceneID: "sc_app_demo",
		Layout:  &scene.Layout{Template: "device-mockup"},
	}
	a := Analyze(s, cat)
	assert.Equal(t, "device_mockup", a.Metadata.ContentType)
	assert.Contains(t, a.Metadata.IntentTags, "detail")
}

func TestAnalyzeShortLowLayerSceneGetsTransitionTag(t *testing.T) {
	cat := loadCatalog(t)
	s := scene.Scene{
		SceneID:   "sc_beat",
		DurationS: dur(1.0),
		Layers: []scene.Layer{
			{ID: "only", Type: "image", DepthClass: "background"},
		},
	}
	a := Analyze(s, cat)
	assert.Contains(t, a.Metadata.IntentTags, "transition")
}

func TestAnalyzeRespectsFullyAuthoredMetadataOverride(t *testing.T) {
	cat := loadCatalog(t)
	s := scene.Scene{
		SceneID: "sc_manual",
		Metadata: &scene.Metadata{
			ContentType:  "portrait",
			VisualWeight: "dark",
			MotionEnergy: "static",
			IntentTags:   []string{"emotional"},
		},
	}
	a := Analyze(s, cat)
	assert.Equal(t, "portrait", a.Metadata.ContentType)
	assert.Equal(t, 1.0, a.Confidence.ContentType)
}
