package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/manifest"
)

func TestValidateFullManifestFlagsConsecutiveLinearEasing(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	p, _ := cat.GetPersonality("rapid-montage")

	m := manifest.Manifest{
		SequenceID: "seq_test",
		Resolution: manifest.Resolution{W: 1920, H: 1080},
		FPS:        30,
		Style:      "rapid-cut",
		Scenes: []manifest.SceneEntry{
			{Scene: "sc_a", DurationS: 2, CameraOverride: &manifest.CameraOverride{Move: "pan", Intensity: 0.2, Easing: "linear"}},
			{Scene: "sc_b", DurationS: 2, CameraOverride: &manifest.CameraOverride{Move: "pan", Intensity: 0.2, Easing: "linear"}},
			{Scene: "sc_c", DurationS: 2, CameraOverride: &manifest.CameraOverride{Move: "pan", Intensity: 0.2, Easing: "linear"}},
		},
	}

	r := ValidateFullManifest(m, p, cat)
	assert.GreaterOrEqual(t, r.Verdict, WARN)
	assert.NotEmpty(t, r.SequenceFindings)
}

func TestValidateFullManifestAllStaticScenesPass(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	p, _ := cat.GetPersonality("rapid-montage")

	m := manifest.Manifest{
		SequenceID: "seq_test2",
		Resolution: manifest.Resolution{W: 1920, H: 1080},
		FPS:        30,
		Style:      "rapid-cut",
		Scenes: []manifest.SceneEntry{
			{Scene: "sc_a", DurationS: 2, CameraOverride: &manifest.CameraOverride{Move: "static"}},
			{Scene: "sc_b", DurationS: 2, CameraOverride: &manifest.CameraOverride{Move: "static"}},
			{Scene: "sc_c", DurationS: 2, CameraOverride: &manifest.CameraOverride{Move: "static"}},
		},
	}

	r := ValidateFullManifest(m, p, cat)
	assert.Equal(t, PASS, r.Verdict)
}
