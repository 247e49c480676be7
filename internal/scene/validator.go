package scene

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/h2non/filetype"

	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/layout"
)

var sceneIDPattern = regexp.MustCompile(`^sc_[a-z0-9_]+$`)

// ValidationResult accumulates every violation found in a scene rather
// than stopping at the first one, so a single validator run tells a
// caller everything wrong with the input at once (spec.md §4.2).
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func ok() ValidationResult {
	return ValidationResult{Valid: true}
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Validate checks a single authored scene against spec.md §4.2's
// structural and enum rules. It never panics on ordinary invalid
// input; it only returns accumulated errors.
func Validate(s Scene) ValidationResult {
	r := ok()

	validateSceneID(s, &r)
	validateDuration(s, &r)
	validateCamera(s, &r)
	validateLayout(s, &r)
	assetsByID := validateAssets(s, &r)
	validateLayers(s, &r, assetsByID)

	return r
}

func validateSceneID(s Scene, r *ValidationResult) {
	if s.SceneID == "" {
		r.fail("scene_id is required")
		return
	}
	if !sceneIDPattern.MatchString(s.SceneID) {
		r.fail("scene_id %q must match ^sc_[a-z0-9_]+$", s.SceneID)
	}
}

func validateDuration(s Scene, r *ValidationResult) {
	if s.DurationS == nil {
		return
	}
	if *s.DurationS < 0.5 || *s.DurationS > 30 {
		r.fail("duration_s %v must be between 0.5 and 30", *s.DurationS)
	}
}

func validateCamera(s Scene, r *ValidationResult) {
	if s.Camera == nil {
		return
	}
	c := s.Camera
	if !catalog.IsCameraMove(c.Move) {
		r.fail("camera.move %q is not a known camera move", c.Move)
	}
	if c.Easing != "" && !catalog.IsEasing(c.Easing) {
		r.fail("camera.easing %q is not a known easing", c.Easing)
	}
	if c.Intensity < 0 || c.Intensity > 1 {
		r.fail("camera.intensity %v must be between 0 and 1", c.Intensity)
	}
}

func validateLayout(s Scene, r *ValidationResult) {
	if s.Layout == nil {
		return
	}
	if !catalog.IsLayoutTemplate(s.Layout.Template) {
		r.fail("layout.template %q is not a known template", s.Layout.Template)
	}
}

func validateAssets(s Scene, r *ValidationResult) map[string]Asset {
	byID := make(map[string]Asset, len(s.Assets))
	for _, a := range s.Assets {
		if a.ID == "" {
			r.fail("asset entries require a non-empty id")
			continue
		}
		if _, dup := byID[a.ID]; dup {
			r.fail("asset id %q is duplicated", a.ID)
			continue
		}
		if a.Src == "" {
			r.fail("asset %q requires a non-empty src", a.ID)
		}
		byID[a.ID] = a
	}
	return byID
}

func validateLayers(s Scene, r *ValidationResult, assetsByID map[string]Asset) {
	var slots []string
	if s.Layout != nil && catalog.IsLayoutTemplate(s.Layout.Template) {
		if resolved, err := layout.AvailableSlots(s.Layout.Template, s.Layout.Config); err == nil {
			slots = resolved
		} else {
			r.fail("layout: %v", err)
		}
	}

	seen := make(map[string]struct{}, len(s.Layers))
	for _, l := range s.Layers {
		if l.ID == "" {
			r.fail("layer entries require a non-empty id")
			continue
		}
		if _, dup := seen[l.ID]; dup {
			r.fail("layer id %q is duplicated", l.ID)
			continue
		}
		seen[l.ID] = struct{}{}

		validateLayerIntrinsics(l, r)

		var asset Asset
		if l.Asset != "" {
			a, found := assetsByID[l.Asset]
			if !found {
				r.fail("layer %q: asset %q does not resolve to a declared asset", l.ID, l.Asset)
			}
			asset = a
		}

		switch l.Type {
		case catalog.LayerImage, catalog.LayerVideo:
			if l.Asset == "" {
				r.fail("layer %q: %s layers require an asset reference", l.ID, l.Type)
			} else if asset.Src != "" {
				checkAssetKind(l, asset, r)
			}
		}

		if l.Slot != "" {
			if slots == nil {
				r.fail("layer %q: slot %q requires a scene layout with a known template", l.ID, l.Slot)
			} else if !containsStr(slots, l.Slot) {
				r.fail("layer %q: slot %q is not available in layout template %q", l.ID, l.Slot, s.Layout.Template)
			}
		}
	}
}

// validateLayerIntrinsics checks the rules that depend only on the
// layer itself — its declared enums, opacity, and (for text layers)
// content and animation — with no dependency on the rest of the scene.
// ValidateLayer exposes this in isolation for callers (the
// validate_choreography tool's "layer primitive" input, spec.md §6.5)
// that want to check a single layer outside any scene context.
func validateLayerIntrinsics(l Layer, r *ValidationResult) {
	if !catalog.IsLayerType(l.Type) {
		r.fail("layer %q: type %q is not a known layer type", l.ID, l.Type)
	}
	if l.DepthClass != "" && !catalog.IsDepthClass(l.DepthClass) {
		r.fail("layer %q: depth_class %q is not a known depth class", l.ID, l.DepthClass)
	}
	if l.BlendMode != "" && !catalog.IsBlendMode(l.BlendMode) {
		r.fail("layer %q: blend_mode %q is not a known blend mode", l.ID, l.BlendMode)
	}
	if l.Opacity != nil && (*l.Opacity < 0 || *l.Opacity > 1) {
		r.fail("layer %q: opacity %v must be between 0 and 1", l.ID, *l.Opacity)
	}
	if l.Type == catalog.LayerText {
		if strings.TrimSpace(l.Content) == "" {
			r.fail("layer %q: text layers require non-empty content", l.ID)
		}
		if l.Animation != "" && !catalog.IsAnimation(l.Animation) {
			r.fail("layer %q: animation %q is not a known animation", l.ID, l.Animation)
		}
	}
}

// ValidateLayer checks a single layer's intrinsic rules (type, depth
// class, blend mode, opacity, text content/animation) without the
// slot, asset-reference, or asset-kind checks that require full scene
// context.
func ValidateLayer(l Layer) ValidationResult {
	r := ok()
	if l.ID == "" {
		r.fail("layer entries require a non-empty id")
	}
	validateLayerIntrinsics(l, &r)
	return r
}

// checkAssetKind sniffs a locally-referenced asset's magic bytes and
// cross-checks the detected category against the layer's declared
// type. Remote URLs (http/https) are never fetched; only local paths
// are inspected.
func checkAssetKind(l Layer, a Asset, r *ValidationResult) {
	if strings.HasPrefix(a.Src, "http://") || strings.HasPrefix(a.Src, "https://") {
		return
	}

	kind, err := filetype.MatchFile(a.Src)
	if err != nil {
		// File missing or unreadable; that's a separate concern from
		// shape validation and is left to the renderer.
		return
	}
	if kind == filetype.Unknown {
		return
	}

	mime := kind.MIME.Value
	switch l.Type {
	case catalog.LayerImage:
		if !strings.HasPrefix(mime, "image/") {
			r.fail("layer %q: asset %q has detected type %q but layer is declared image", l.ID, a.ID, mime)
		}
	case catalog.LayerVideo:
		if !strings.HasPrefix(mime, "video/") {
			r.fail("layer %q: asset %q has detected type %q but layer is declared video", l.ID, a.ID, mime)
		}
	}
}

func containsStr(vals []string, target string) bool {
	for _, v := range vals {
		if v == target {
			return true
		}
	}
	return false
}

// SniffLocalMIME reports the magic-byte-detected MIME type of a local
// asset path, used by internal/analyzer's content-type classifier as a
// corroborating signal alongside text-based rules. Remote src values
// are never fetched.
func SniffLocalMIME(src string) (string, bool) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return "", false
	}
	kind, err := filetype.MatchFile(src)
	if err != nil || kind == filetype.Unknown {
		return "", false
	}
	return kind.MIME.Value, true
}
