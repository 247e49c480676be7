package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleManifest() Manifest {
	return Manifest{
		SequenceID: "seq_launch",
		Resolution: Resolution{W: 1920, H: 1080},
		FPS:        30,
		Style:      "editorial-calm",
		Scenes: []SceneEntry{
			{Scene: "sc_open", DurationS: 3.0},
			{Scene: "sc_hero", DurationS: 4.0, TransitionIn: &Transition{Type: "crossfade", DurationMs: 300}},
		},
	}
}

func TestValidateAcceptsWellFormedManifest(t *testing.T) {
	known := map[string]struct{}{"sc_open": {}, "sc_hero": {}}
	r := Validate(sampleManifest(), known)
	assert.True(t, r.Valid, "errors: %v", r.Errors)
}

func TestValidateRejectsBadSequenceID(t *testing.T) {
	m := sampleManifest()
	m.SequenceID = "Launch"
	r := Validate(m, nil)
	assert.False(t, r.Valid)
}

func TestValidateRejectsEmptySceneList(t *testing.T) {
	m := sampleManifest()
	m.Scenes = nil
	r := Validate(m, nil)
	assert.False(t, r.Valid)
}

func TestValidateRejectsBadFPS(t *testing.T) {
	m := sampleManifest()
	m.FPS = 25
	r := Validate(m, nil)
	assert.False(t, r.Valid)
}

func TestValidateRejectsUnknownSceneReference(t *testing.T) {
	known := map[string]struct{}{"sc_open": {}}
	r := Validate(sampleManifest(), known)
	assert.False(t, r.Valid)
}

func TestValidateRejectsBadTransitionDuration(t *testing.T) {
	m := sampleManifest()
	m.Scenes[1].TransitionIn.DurationMs = 5000
	r := Validate(m, nil)
	assert.False(t, r.Valid)
}
