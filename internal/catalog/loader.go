package catalog

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed bundled/*.json
var bundledFS embed.FS

// Catalog is the process-wide read-only reference state: personalities,
// style packs, shot grammar, camera guardrails, and the primitives
// registry, plus the keyed lookup maps built over them.
//
// A Catalog is immutable after Load returns and safe for concurrent use
// by any number of goroutines without additional synchronization.
type Catalog struct {
	Personalities map[string]Personality
	StylePacks    map[string]StylePack
	ShotGrammar   ShotGrammarCatalog
	Guardrails    GuardrailCatalog
	Primitives    PrimitivesRegistry

	// Version is a stable hash over the five loaded documents, exposed
	// so two runs can confirm they used byte-identical catalogs
	// (spec.md §8 determinism property).
	Version string

	primitivesByID map[string]Primitive
}

// Load reads the five bundled catalog documents and builds the indexed
// Catalog. It fails fast (returns a non-nil error) if a style pack
// references an unknown personality, if a style-pack transition or
// camera-override rule names a value outside the fixed enums in this
// package, or if a personality's allowed shot sizes, angles or framings
// do, per spec.md §4.1 and §7 ("Unknown enum / catalog reference ...
// Raise immediately"). The shot-grammar affinity tables are not checked.
func Load() (*Catalog, error) {
	var personalities []Personality
	if err := readJSON("bundled/personalities.json", &personalities); err != nil {
		return nil, err
	}
	var stylePacksList []StylePack
	if err := readJSON("bundled/style_packs.json", &stylePacksList); err != nil {
		return nil, err
	}
	var shotGrammar ShotGrammarCatalog
	if err := readJSON("bundled/shot_grammar.json", &shotGrammar); err != nil {
		return nil, err
	}
	var guardrails GuardrailCatalog
	if err := readJSON("bundled/camera_guardrails.json", &guardrails); err != nil {
		return nil, err
	}
	var primitives PrimitivesRegistry
	if err := readJSON("bundled/primitives.json", &primitives); err != nil {
		return nil, err
	}

	c := &Catalog{
		Personalities:  make(map[string]Personality, len(personalities)),
		StylePacks:     make(map[string]StylePack, len(stylePacksList)),
		ShotGrammar:    shotGrammar,
		Guardrails:     guardrails,
		Primitives:     primitives,
		primitivesByID: make(map[string]Primitive, len(primitives.Primitives)),
	}
	for _, p := range personalities {
		c.Personalities[p.Slug] = p
	}
	for _, sp := range stylePacksList {
		c.StylePacks[sp.Name] = sp
	}
	for _, prim := range primitives.Primitives {
		c.primitivesByID[prim.ID] = prim
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	c.Version = checksum(personalities, stylePacksList, shotGrammar, guardrails, primitives)
	return c, nil
}

func readJSON(path string, v any) error {
	b, err := bundledFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("catalog: parsing %s: %w", path, err)
	}
	return nil
}

// validate fails fast on dangling references: a style pack naming an
// unknown personality, or a rule naming a value outside the fixed
// enums (spec.md §4.1, §7).
func (c *Catalog) validate() error {
	for name, sp := range c.StylePacks {
		if _, ok := c.Personalities[sp.Personality]; !ok {
			return fmt.Errorf("catalog: style pack %q references unknown personality %q", name, sp.Personality)
		}
		for _, r := range sp.Transitions {
			if err := validateTransitionRule(name, r); err != nil {
				return err
			}
		}
		for ct, co := range sp.CameraOverrides.ByContentType {
			if !IsContentType(ct) {
				return fmt.Errorf("catalog: style pack %q camera_overrides.by_content_type references unknown content_type %q", name, ct)
			}
			if !IsCameraMove(co.Move) && co.Move != "" {
				return fmt.Errorf("catalog: style pack %q camera_overrides.by_content_type references unknown move %q", name, co.Move)
			}
		}
		for _, r := range sp.CameraOverrides.ByIntent {
			if !IsCameraMove(r.Override.Move) && r.Override.Move != "" {
				return fmt.Errorf("catalog: style pack %q camera_overrides.by_intent references unknown move %q", name, r.Override.Move)
			}
			for _, t := range r.Tags {
				if !IsIntentTag(t) {
					return fmt.Errorf("catalog: style pack %q camera_overrides.by_intent references unknown intent tag %q", name, t)
				}
			}
		}
	}
	for pslug, p := range c.Personalities {
		for _, v := range p.AllowedSizes {
			if !IsShotSize(v) {
				return fmt.Errorf("catalog: personality %q allowed_shot_sizes has unknown value %q", pslug, v)
			}
		}
		for _, v := range p.AllowedAngles {
			if !IsShotAngle(v) {
				return fmt.Errorf("catalog: personality %q allowed_angles has unknown value %q", pslug, v)
			}
		}
		for _, v := range p.AllowedFramings {
			if !IsShotFraming(v) {
				return fmt.Errorf("catalog: personality %q allowed_framings has unknown value %q", pslug, v)
			}
		}
	}
	for _, prim := range c.Primitives.Primitives {
		if prim.ID == "" {
			return fmt.Errorf("catalog: primitives registry has an entry with no id")
		}
	}
	return nil
}

func validateTransitionRule(styleName string, r TransitionRule) error {
	switch r.Kind {
	case "pattern":
		for _, t := range r.Cycle {
			if !IsTransitionType(t.Type) {
				return fmt.Errorf("catalog: style pack %q pattern rule references unknown transition type %q", styleName, t.Type)
			}
		}
	case "on_same_weight", "on_weight_change", "default":
		if !IsTransitionType(r.Transition.Type) {
			return fmt.Errorf("catalog: style pack %q %s rule references unknown transition type %q", styleName, r.Kind, r.Transition.Type)
		}
	case "on_intent":
		if !IsTransitionType(r.Transition.Type) {
			return fmt.Errorf("catalog: style pack %q on_intent rule references unknown transition type %q", styleName, r.Transition.Type)
		}
		for _, t := range r.Tags {
			if !IsIntentTag(t) {
				return fmt.Errorf("catalog: style pack %q on_intent rule references unknown intent tag %q", styleName, t)
			}
		}
	default:
		return fmt.Errorf("catalog: style pack %q has transition rule with unknown kind %q", styleName, r.Kind)
	}
	return nil
}

// GetPersonality returns the personality for slug, or false if unknown.
func (c *Catalog) GetPersonality(slug string) (Personality, bool) {
	p, ok := c.Personalities[slug]
	return p, ok
}

// GetStylePack returns the style pack for name, or false if unknown.
func (c *Catalog) GetStylePack(name string) (StylePack, bool) {
	sp, ok := c.StylePacks[name]
	return sp, ok
}

// PersonalityFor resolves a style pack name directly to its personality.
func (c *Catalog) PersonalityFor(styleName string) (Personality, error) {
	sp, ok := c.GetStylePack(styleName)
	if !ok {
		return Personality{}, fmt.Errorf("catalog: unknown style pack %q", styleName)
	}
	p, ok := c.GetPersonality(sp.Personality)
	if !ok {
		// Unreachable after Load's fail-fast validation, but kept as a
		// defensive invariant check for catalogs substituted in tests.
		return Personality{}, fmt.Errorf("catalog: style pack %q references unknown personality %q", styleName, sp.Personality)
	}
	return p, nil
}

// GetPrimitive returns the primitive for id, or false if unknown.
func (c *Catalog) GetPrimitive(id string) (Primitive, bool) {
	p, ok := c.primitivesByID[id]
	return p, ok
}

// SearchPrimitives returns primitives matching the given category and/or
// personality filters (either may be empty to mean "any").
func (c *Catalog) SearchPrimitives(category, personality string) []Primitive {
	var out []Primitive
	for _, p := range c.Primitives.Primitives {
		if category != "" && p.Category != category {
			continue
		}
		if personality != "" && !containsStr(p.Personality, personality) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsStr(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}

// ToKebab converts a snake_case or already-kebab-case identifier to
// kebab-case, used when comparing authored camera moves (snake_case,
// e.g. push_in) against personality allowed_movements entries that may
// be authored in either style (spec.md §4.5 Stage 4).
func ToKebab(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// checksum computes a deterministic, order-stable hash over the five
// loaded documents so identical catalog content always yields the same
// Version, regardless of map iteration order elsewhere in the process.
func checksum(personalities []Personality, stylePacks []StylePack, shotGrammar ShotGrammarCatalog, guardrails GuardrailCatalog, primitives PrimitivesRegistry) string {
	sortedP := append([]Personality(nil), personalities...)
	sort.Slice(sortedP, func(i, j int) bool { return sortedP[i].Slug < sortedP[j].Slug })
	sortedSP := append([]StylePack(nil), stylePacks...)
	sort.Slice(sortedSP, func(i, j int) bool { return sortedSP[i].Name < sortedSP[j].Name })

	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(sortedP)
	_ = enc.Encode(sortedSP)
	_ = enc.Encode(shotGrammar)
	_ = enc.Encode(guardrails)
	_ = enc.Encode(primitives)
	return hex.EncodeToString(h.Sum(nil))[:16]
}
