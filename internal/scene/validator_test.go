package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func float(v float64) *float64 { return &v }

func validScene() Scene {
	return Scene{
		SceneID:   "sc_opening_01",
		DurationS: float(4.5),
		Camera:    &Camera{Move: "static", Intensity: 0, Easing: "linear"},
		Layout:    &Layout{Template: "hero-center"},
		Assets: []Asset{
			{ID: "hero-img", Src: "https://cdn.example.com/hero.jpg"},
		},
		Layers: []Layer{
			{ID: "bg", Type: "image", Asset: "hero-img", Slot: "hero", DepthClass: "background", BlendMode: "normal"},
			{ID: "title", Type: "text", Content: "Launch Day", Animation: "word-reveal"},
		},
	}
}

func TestValidateAcceptsWellFormedScene(t *testing.T) {
	r := Validate(validScene())
	assert.True(t, r.Valid, "expected valid scene, got errors: %v", r.Errors)
	assert.Empty(t, r.Errors)
}

func TestValidateRejectsBadSceneID(t *testing.T) {
	s := validScene()
	s.SceneID = "Opening-01"
	r := Validate(s)
	assert.False(t, r.Valid)
	assert.Contains(t, r.Errors[0], "scene_id")
}

func TestValidateRejectsOutOfRangeDuration(t *testing.T) {
	s := validScene()
	s.DurationS = float(45)
	r := Validate(s)
	assert.False(t, r.Valid)
}

func TestValidateRejectsUnknownCameraMove(t *testing.T) {
	s := validScene()
	s.Camera = &Camera{Move: "zoom-o-matic", Intensity: 0.5}
	r := Validate(s)
	assert.False(t, r.Valid)
}

func TestValidateRejectsDuplicateAssetIDs(t *testing.T) {
	s := validScene()
	s.Assets = append(s.Assets, Asset{ID: "hero-img", Src: "https://cdn.example.com/other.jpg"})
	r := Validate(s)
	assert.False(t, r.Valid)
}

func TestValidateRejectsDanglingAssetReference(t *testing.T) {
	s := validScene()
	s.Layers[0].Asset = "missing-asset"
	r := Validate(s)
	assert.False(t, r.Valid)
}

func TestValidateRejectsTextLayerWithoutContent(t *testing.T) {
	s := validScene()
	s.Layers[1].Content = ""
	r := Validate(s)
	assert.False(t, r.Valid)
}

func TestValidateRejectsSlotNotInTemplate(t *testing.T) {
	s := validScene()
	s.Layers[0].Slot = "left"
	r := Validate(s)
	assert.False(t, r.Valid)
}

func TestValidateRejectsOpacityOutOfRange(t *testing.T) {
	s := validScene()
	bad := 1.5
	s.Layers[0].Opacity = &bad
	r := Validate(s)
	assert.False(t, r.Valid)
}

func TestValidateAccumulatesMultipleErrors(t *testing.T) {
	s := Scene{SceneID: "bad id", DurationS: float(99)}
	r := Validate(s)
	assert.False(t, r.Valid)
	assert.GreaterOrEqual(t, len(r.Errors), 2)
}
