package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Contains(t, c.Personalities, "restrained-editorial")
	assert.Contains(t, c.Personalities, "dramatic-dark")
	assert.Contains(t, c.Personalities, "rapid-montage")

	assert.Contains(t, c.StylePacks, "editorial-calm")
	assert.Contains(t, c.StylePacks, "dark-drama")
	assert.Contains(t, c.StylePacks, "rapid-cut")

	for name, sp := range c.StylePacks {
		_, ok := c.GetPersonality(sp.Personality)
		assert.Truef(t, ok, "style pack %s references missing personality %s", name, sp.Personality)
	}

	assert.NotEmpty(t, c.Primitives.Primitives)
	assert.NotEmpty(t, c.Version)
}

func TestLoadIsDeterministic(t *testing.T) {
	c1, err := Load()
	require.NoError(t, err)
	c2, err := Load()
	require.NoError(t, err)
	assert.Equal(t, c1.Version, c2.Version)
}

func TestHoldDurationFallsBackToModerate(t *testing.T) {
	sp := StylePack{
		HoldDurations: map[string]float64{"moderate": 3.0},
	}
	assert.Equal(t, 3.0, sp.HoldDuration("static")) // no "static" entry -> falls back
	assert.Equal(t, 3.0, sp.HoldDuration("moderate"))
}

func TestHoldDurationClampsToMax(t *testing.T) {
	cap := 2.0
	sp := StylePack{
		HoldDurations:   map[string]float64{"high": 5.0},
		MaxHoldDuration: &cap,
	}
	assert.Equal(t, 2.0, sp.HoldDuration("high"))
}

func TestPersonalityAllowsMovementIsKebabNormalized(t *testing.T) {
	p := Personality{AllowedMovements: []string{"push-in", "static"}}
	assert.True(t, p.AllowsMovement("push_in"))
	assert.True(t, p.AllowsMovement("static"))
	assert.False(t, p.AllowsMovement("pan"))
}

func TestSearchPrimitivesFiltersByCategoryAndPersonality(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	textOnly := c.SearchPrimitives("text", "")
	for _, p := range textOnly {
		assert.Equal(t, "text", p.Category)
	}
	assert.NotEmpty(t, textOnly)

	forDark := c.SearchPrimitives("", "dramatic-dark")
	assert.NotEmpty(t, forDark)
	for _, p := range forDark {
		assert.Contains(t, p.Personality, "dramatic-dark")
	}
}
