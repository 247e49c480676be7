package analyzer

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/scene"
)

// classifyContentType applies spec.md §4.4's priority-ordered rules:
// layout template first, then scene composition, falling back to
// ui_screenshot at low confidence.
func classifyContentType(s scene.Scene) (string, float64) {
	if s.Layout != nil {
		if ct, conf, matched := classifyByLayoutTemplate(s); matched {
			return ct, conf
		}
	}
	if ct, conf, matched := classifyByComposition(s); matched {
		return ct, conf
	}
	return string(catalog.ContentUIScreenshot), 0.20
}

func classifyByLayoutTemplate(s scene.Scene) (string, float64, bool) {
	switch s.Layout.Template {
	case "device-mockup":
		return string(catalog.ContentDeviceMockup), 0.95, true
	case "split-panel":
		return string(catalog.ContentSplitPanel), 0.95, true
	case "masonry-grid":
		if cellCount(s.Layout.Config) >= 4 {
			return string(catalog.ContentCollage), 0.90, true
		}
		return string(catalog.ContentMoodboard), 0.85, true
	case "full-bleed":
		return string(catalog.ContentProductShot), 0.85, true
	case "hero-center":
		fg := foregroundLayers(s)
		if len(fg) == 1 && fg[0].Type == "text" {
			if isBrandLikeText(fg[0].Content) {
				return string(catalog.ContentBrandMark), 0.80, true
			}
			return string(catalog.ContentTypography), 0.90, true
		}
	}
	return "", 0, false
}

func classifyByComposition(s scene.Scene) (string, float64, bool) {
	fg := foregroundLayers(s)
	bg := backgroundLayers(s)

	allTextFG := len(fg) > 0 && allOfType(fg, "text")
	bgHTMLOrVideo := len(bg) > 0 && allOfTypes(bg, "html", "video")
	if allTextFG && bgHTMLOrVideo {
		return string(catalog.ContentTypography), 0.90, true
	}

	videoBG := hasType(bg, "video")
	textOrHTMLFG := len(fg) > 0 && allOfTypes(fg, "text", "html")
	if videoBG && textOrHTMLFG && strings.Contains(strings.ToLower(s.SceneID), "portrait") {
		return string(catalog.ContentPortrait), 0.75, true
	}

	if len(fg) == 1 && fg[0].Type == "html" {
		text := fg[0].Content
		switch {
		case hasKeyword(text, "brand", "logo"):
			return string(catalog.ContentBrandMark), 0.80, true
		case hasKeyword(text, "notif", "notification"):
			return string(catalog.ContentNotification), 0.80, true
		}
	}

	images := layersOfType(s.Layers, "image")
	if len(images) > 0 {
		for _, img := range images {
			if hasKeyword(img.Content, "ui", "screenshot", "screen") || hasKeyword(img.Asset, "ui", "screenshot", "screen") {
				return string(catalog.ContentUIScreenshot), 0.70, true
			}
		}
	}

	if len(images) >= 2 && len(layersOfType(s.Layers, "text")) == 0 {
		return string(catalog.ContentMoodboard), 0.65, true
	}

	if videoBG && hasType(fg, "text") {
		return string(catalog.ContentProductShot), 0.50, true
	}

	return "", 0, false
}

func cellCount(cfg map[string]any) int {
	cols, rows := 2, 2
	if v, ok := cfg["columns"]; ok {
		if f, ok := v.(float64); ok {
			cols = int(f)
		}
	}
	if v, ok := cfg["rows"]; ok {
		if f, ok := v.(float64); ok {
			rows = int(f)
		}
	}
	return cols * rows
}

func foregroundLayers(s scene.Scene) []scene.Layer {
	return layersOfDepth(s.Layers, catalog.DepthForeground)
}

func backgroundLayers(s scene.Scene) []scene.Layer {
	return layersOfDepth(s.Layers, catalog.DepthBackground)
}

func layersOfDepth(layers []scene.Layer, depth string) []scene.Layer {
	var out []scene.Layer
	for _, l := range layers {
		if l.DepthClass == depth {
			out = append(out, l)
		}
	}
	return out
}

func layersOfType(layers []scene.Layer, t string) []scene.Layer {
	var out []scene.Layer
	for _, l := range layers {
		if l.Type == t {
			out = append(out, l)
		}
	}
	return out
}

func allOfType(layers []scene.Layer, t string) bool {
	for _, l := range layers {
		if l.Type != t {
			return false
		}
	}
	return true
}

func allOfTypes(layers []scene.Layer, types ...string) bool {
	for _, l := range layers {
		if !containsStr(types, l.Type) {
			return false
		}
	}
	return true
}

func hasType(layers []scene.Layer, t string) bool {
	for _, l := range layers {
		if l.Type == t {
			return true
		}
	}
	return false
}

func containsStr(vals []string, target string) bool {
	for _, v := range vals {
		if v == target {
			return true
		}
	}
	return false
}

// isBrandLikeText uses prose tokenization to distinguish a short,
// logotype-style foreground string (a brand mark) from longer running
// copy (typography): a string of at most two tokens (punctuation counts
// as a token) reads as a wordmark.
func isBrandLikeText(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	doc, err := prose.NewDocument(text)
	if err != nil {
		return len(strings.Fields(text)) <= 2
	}
	tokens := doc.Tokens()
	return len(tokens) <= 2
}

// hasKeyword tokenizes text with prose and reports whether any token's
// lowercased text contains one of the given substrings.
func hasKeyword(text string, keywords ...string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	doc, err := prose.NewDocument(text)
	if err != nil {
		return substringAny(strings.ToLower(text), keywords)
	}
	for _, tok := range doc.Tokens() {
		lower := strings.ToLower(tok.Text)
		if substringAny(lower, keywords) {
			return true
		}
	}
	return false
}

func substringAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
