package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizzlehq/sizzle/internal/catalog"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func TestValidateCameraMoveStaticAlwaysPasses(t *testing.T) {
	cat := loadCatalog(t)
	p, _ := cat.GetPersonality("restrained-editorial")
	r := ValidateCameraMove(CameraInput{Move: "static"}, ShotGrammarInput{}, 4, p, cat)
	assert.Equal(t, PASS, r.Verdict)
}

func TestValidateCameraMoveChecksLensBoundsForStaticMove(t *testing.T) {
	cat := loadCatalog(t)
	p, _ := cat.GetPersonality("restrained-editorial")
	r := ValidateCameraMove(CameraInput{Move: "static"}, ShotGrammarInput{RotateX: 45}, 4, p, cat)
	found := false
	for _, f := range r.Findings {
		if f.Dimension == "lens_bounds" {
			found = true
		}
	}
	assert.True(t, found, "lens bounds must be checked for static moves, not just moving cameras")
}

func TestValidateCameraMoveBlocksForbiddenCameraMovement(t *testing.T) {
	cat := loadCatalog(t)
	p, _ := cat.GetPersonality("restrained-editorial")
	r := ValidateCameraMove(CameraInput{Move: "push_in", Intensity: 0.3, Easing: "cinematic_scurve"}, ShotGrammarInput{}, 4, p, cat)
	assert.Equal(t, BLOCK, r.Verdict)
}

func TestValidateCameraMoveBlocksNeverAmbientDrift(t *testing.T) {
	cat := loadCatalog(t)
	p, _ := cat.GetPersonality("dramatic-dark")
	r := ValidateCameraMove(CameraInput{Move: "drift", Intensity: 0.3, Easing: "linear"}, ShotGrammarInput{}, 3, p, cat)
	assert.Equal(t, BLOCK, r.Verdict)
}

func TestValidateCameraMoveWarnsOnLowDecelerationEasing(t *testing.T) {
	cat := loadCatalog(t)
	p, _ := cat.GetPersonality("rapid-montage")
	r := ValidateCameraMove(CameraInput{Move: "pan", Intensity: 0.3, Easing: "linear"}, ShotGrammarInput{}, 4, p, cat)
	assert.GreaterOrEqual(t, r.Verdict, WARN)
}

func TestValidateCameraMoveWarnsOnExcessiveSpeed(t *testing.T) {
	cat := loadCatalog(t)
	p, _ := cat.GetPersonality("rapid-montage")
	r := ValidateCameraMove(CameraInput{Move: "pan", Intensity: 1.0, Easing: "ease_out"}, ShotGrammarInput{}, 0.1, p, cat)
	found := false
	for _, f := range r.Findings {
		if f.Dimension == "speed_limit" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSeverityStringsRoundTrip(t *testing.T) {
	assert.Equal(t, "PASS", PASS.String())
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "BLOCK", BLOCK.String())
}
