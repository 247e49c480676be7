package shotgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizzlehq/sizzle/internal/catalog"
)

func TestClassifyPrefersLayoutTemplateForFraming(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	a := Classify(ClassifyInput{LayoutTemplate: "device-mockup", ContentType: "portrait"}, cat)
	assert.Equal(t, "right", a.Framing) // framing_by_layout_template has device-mockup -> right
}

func TestClassifyFallsBackToForegroundCountForSize(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	a := Classify(ClassifyInput{ForegroundLayers: 5}, cat)
	assert.Equal(t, catalog.ShotSizeWide, a.ShotSize)
}

func TestClassifyDefaultsAngleToEyeLevel(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	a := Classify(ClassifyInput{}, cat)
	assert.Equal(t, catalog.ShotAngleEyeLevel, a.Angle)
}

func TestValidateFallsBackWhenPersonalityDisallows(t *testing.T) {
	p := catalog.Personality{
		AllowedSizes:    []string{"medium"},
		AllowedAngles:   []string{"eye_level"},
		AllowedFramings: []string{"center"},
	}
	a := Axes{ShotSize: "extreme_wide", Angle: "birds_eye", Framing: "left"}
	out, notes := Validate(a, p)
	assert.Equal(t, catalog.ShotSizeMedium, out.ShotSize)
	assert.Equal(t, catalog.ShotAngleEyeLevel, out.Angle)
	assert.Equal(t, catalog.ShotFramingCenter, out.Framing)
	assert.Len(t, notes, 3)
}

func TestResolveCSSClampsScaleAndSuppresses3D(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	p := catalog.Personality{MaxScale: 1.0, Use3DRotation: false}
	a := Axes{ShotSize: catalog.ShotSizeExtremeCloseUp, Angle: catalog.ShotAngleBirdsEye, Framing: catalog.ShotFramingCenter}
	css := ResolveCSS(a, p, cat)

	assert.Equal(t, 1.0, css.Scale)
	assert.Equal(t, 0.0, css.RotateX)
	assert.Equal(t, 0.0, css.RotateZ)
	assert.Equal(t, "50% 50%", css.PerspectiveOrigin)
}
