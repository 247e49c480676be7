package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/mcp"
)

// --- get_personality ---

// GetPersonality looks up a personality by slug.
type GetPersonality struct{ deps }

func NewGetPersonality(cat *catalog.Catalog) *GetPersonality {
	return &GetPersonality{deps{cat: cat}}
}

func (t *GetPersonality) Name() string        { return "get_personality" }
func (t *GetPersonality) Description() string { return "Look up a personality by slug." }
func (t *GetPersonality) InputSchema() json.RawMessage {
	return json.RawMessage(`{"type":"object","properties":{"slug":{"type":"string"}},"required":["slug"]}`)
}

type slugParams struct {
	Slug string `json:"slug"`
}

func (t *GetPersonality) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p slugParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	personality, ok := t.cat.GetPersonality(p.Slug)
	if !ok {
		return mcp.ErrorResult(fmt.Sprintf("unknown personality %q", p.Slug)), nil
	}
	return mcp.JSONResult(map[string]any{
		"personality":     personality,
		"catalog_version": t.cat.Version,
	})
}

// --- get_style_pack ---

// GetStylePack looks up a style pack by name.
type GetStylePack struct{ deps }

func NewGetStylePack(cat *catalog.Catalog) *GetStylePack {
	return &GetStylePack{deps{cat: cat}}
}

func (t *GetStylePack) Name() string        { return "get_style_pack" }
func (t *GetStylePack) Description() string { return "Look up a style pack by name." }
func (t *GetStylePack) InputSchema() json.RawMessage {
	return json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`)
}

type nameParams struct {
	Name string `json:"name"`
}

func (t *GetStylePack) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p nameParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	sp, ok := t.cat.GetStylePack(p.Name)
	if !ok {
		return mcp.ErrorResult(fmt.Sprintf("unknown style pack %q", p.Name)), nil
	}
	return mcp.JSONResult(map[string]any{
		"style_pack":      sp,
		"catalog_version": t.cat.Version,
	})
}

// --- search_primitives ---

// SearchPrimitives filters the primitives registry by category and/or personality.
type SearchPrimitives struct{ deps }

func NewSearchPrimitives(cat *catalog.Catalog) *SearchPrimitives {
	return &SearchPrimitives{deps{cat: cat}}
}

func (t *SearchPrimitives) Name() string { return "search_primitives" }
func (t *SearchPrimitives) Description() string {
	return "Search the renderer-facing animation primitives registry by category and/or personality."
}
func (t *SearchPrimitives) InputSchema() json.RawMessage {
	return json.RawMessage(`{
  "type": "object",
  "properties": {
    "category": {"type": "string"},
    "personality": {"type": "string"}
  }
}`)
}

type searchPrimitivesParams struct {
	Category    string `json:"category,omitempty"`
	Personality string `json:"personality,omitempty"`
}

func (t *SearchPrimitives) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p searchPrimitivesParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
		}
	}
	results := t.cat.SearchPrimitives(p.Category, p.Personality)
	return mcp.JSONResult(map[string]any{
		"primitives": results,
		"count":      len(results),
	})
}

// --- get_primitive ---

// GetPrimitive looks up a single primitive by ID.
type GetPrimitive struct{ deps }

func NewGetPrimitive(cat *catalog.Catalog) *GetPrimitive {
	return &GetPrimitive{deps{cat: cat}}
}

func (t *GetPrimitive) Name() string        { return "get_primitive" }
func (t *GetPrimitive) Description() string { return "Look up a single animation primitive by ID." }
func (t *GetPrimitive) InputSchema() json.RawMessage {
	return json.RawMessage(`{"type":"object","properties":{"id":{"type":"string"}},"required":["id"]}`)
}

type idParams struct {
	ID string `json:"id"`
}

func (t *GetPrimitive) Execute(_ context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p idParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	prim, ok := t.cat.GetPrimitive(p.ID)
	if !ok {
		return mcp.ErrorResult(fmt.Sprintf("unknown primitive %q", p.ID)), nil
	}
	return mcp.JSONResult(prim)
}
