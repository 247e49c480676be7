package tools

import (
	"context"
	"encoding/json"
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

func firstPersonalitySlug(t *testing.T, cat *catalog.Catalog) string {
	t.Helper()
	for slug := range cat.Personalities {
		return slug
	}
	t.Fatal("catalog has no personalities")
	return ""
}

func firstStylePackName(t *testing.T, cat *catalog.Catalog) string {
	t.Helper()
	for name := range cat.StylePacks {
		return name
	}
	t.Fatal("catalog has no style packs")
	return ""
}

func TestAnalyzeSceneRejectsInvalidScene(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewAnalyzeScene(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"scene":{"scene_id":"not-valid"}}`))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &decoded))
	assert.Equal(t, false, decoded["valid"])
}

func TestAnalyzeSceneAcceptsMinimalValidScene(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewAnalyzeScene(cat)
	params := json.RawMessage(`{"scene":{"scene_id":"sc_test"}}`)
	result, err := tool.Execute(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestValidateChoreographyLayerPrimitive(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewValidateChoreography(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"layer":{"id":"l1","type":"text","content":""}}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestValidateChoreographyRequiresSceneOrLayer(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewValidateChoreography(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestValidateGuardrailsRequiresPersonality(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewValidateGuardrails(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestValidateGuardrailsRejectsUnknownPersonality(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewValidateGuardrails(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"personality":"not-a-real-personality","camera":{"move":"push_in","intensity":0.5}}`))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestValidateGuardrailsAcceptsCameraMove(t *testing.T) {
	cat := loadCatalog(t)
	slug := firstPersonalitySlug(t, cat)
	tool := NewValidateGuardrails(cat)
	params := json.RawMessage(`{"personality":"` + slug + `","camera":{"move":"push_in","intensity":0.3},"duration_s":3}`)
	result, err := tool.Execute(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestGetPersonalityUnknownSlug(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewGetPersonality(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"slug":"does-not-exist"}`))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGetPersonalityKnownSlug(t *testing.T) {
	cat := loadCatalog(t)
	slug := firstPersonalitySlug(t, cat)
	tool := NewGetPersonality(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"slug":"`+slug+`"}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestGetStylePackKnownName(t *testing.T) {
	cat := loadCatalog(t)
	name := firstStylePackName(t, cat)
	tool := NewGetStylePack(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"name":"`+name+`"}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestSearchPrimitivesNoFilterReturnsAll(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewSearchPrimitives(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestGetPrimitiveUnknownID(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewGetPrimitive(cat)
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"id":"does-not-exist"}`))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestPlanSequenceDefaultsSequenceIDAndResolution(t *testing.T) {
	cat := loadCatalog(t)
	name := firstStylePackName(t, cat)
	tool := NewPlanSequence(cat)
	params := json.RawMessage(`{"style":"` + name + `","scenes":[{"scene_id":"sc_one","duration_s":3}]}`)
	result, err := tool.Execute(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestEvaluateSequenceRejectsUnknownStyle(t *testing.T) {
	cat := loadCatalog(t)
	tool := NewEvaluateSequence(cat)
	params := json.RawMessage(`{"manifest":{"sequence_id":"seq_1","resolution":{"w":1920,"h":1080},"fps":30,"style":"not-real","scenes":[]},"scenes":[],"style":"not-real"}`)
	result, err := tool.Execute(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
