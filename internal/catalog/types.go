// Package catalog parses and indexes the five bundled reference
// documents — personalities, style packs, shot grammar, camera
// guardrails, and the primitives registry — into process-wide
// read-only lookup structures.
package catalog

// Personality is the expressive contract a style pack binds to.
type Personality struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	AllowedMovements []string `json:"allowed_movements"`
	AllowedSizes     []string `json:"allowed_shot_sizes"`
	AllowedAngles    []string `json:"allowed_angles"`
	AllowedFramings  []string `json:"allowed_framings"`
	MaxScale         float64  `json:"max_scale"`
	Use3DRotation    bool     `json:"use_3d_rotation"`
	AmbientCondition string   `json:"ambient_condition"`
	LoopTimeMinS     float64  `json:"loop_time_min_s"`
	LoopTimeMaxS     float64  `json:"loop_time_max_s"`
}

// AllowsMovement reports whether move is in the allowed set, in
// kebab-case-normalized form (camera moves in scenes/manifests use
// snake_case, e.g. push_in; both sides are converted to kebab-case
// before comparing, per spec.md §4.5 Stage 4).
func (p Personality) AllowsMovement(move string) bool {
	k := ToKebab(move)
	for _, m := range p.AllowedMovements {
		if ToKebab(m) == k {
			return true
		}
	}
	return false
}

func (p Personality) allowsFrom(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// AllowsSize reports whether shot_size is permitted by this personality.
func (p Personality) AllowsSize(v string) bool { return p.allowsFrom(p.AllowedSizes, v) }

// AllowsAngle reports whether angle is permitted by this personality.
func (p Personality) AllowsAngle(v string) bool { return p.allowsFrom(p.AllowedAngles, v) }

// AllowsFraming reports whether framing is permitted by this personality.
func (p Personality) AllowsFraming(v string) bool { return p.allowsFrom(p.AllowedFramings, v) }

// Transition describes a single transition-in directive.
type Transition struct {
	Type       string `json:"type"`
	DurationMs int    `json:"duration_ms"`
}

// TransitionRule is one entry in a style pack's priority-ordered
// transition rule set (spec.md §4.5 Stage 3).
type TransitionRule struct {
	Kind string `json:"kind"` // pattern | on_same_weight | on_weight_change | on_intent | default

	// Kind == "pattern"
	EveryN int          `json:"every_n,omitempty"`
	Cycle  []Transition `json:"cycle,omitempty"`

	// Kind == "on_intent"
	Tags []string `json:"tags,omitempty"`

	// Kind in {on_same_weight, on_weight_change, on_intent, default}
	Transition Transition `json:"transition,omitempty"`
}

// CameraOverride is a resolved (or candidate) camera directive override.
type CameraOverride struct {
	Move      string  `json:"move"`
	Intensity float64 `json:"intensity"`
	Easing    string  `json:"easing,omitempty"`
}

// IntentOverrideRule pairs a set of intent tags with the override applied
// when any of them match (first match wins, spec.md §4.5 Stage 4).
type IntentOverrideRule struct {
	Tags     []string       `json:"tags"`
	Override CameraOverride `json:"override"`
}

// CameraOverrideRules is a style pack's priority-ordered camera-override
// rule set: force_static -> by_content_type -> by_intent.
type CameraOverrideRules struct {
	ForceStatic   bool                      `json:"force_static"`
	ByContentType map[string]CameraOverride `json:"by_content_type,omitempty"`
	ByIntent      []IntentOverrideRule      `json:"by_intent,omitempty"`
}

// StylePack is a named editorial recipe.
type StylePack struct {
	Name             string              `json:"name"`
	Personality      string              `json:"personality"`
	HoldDurations    map[string]float64  `json:"hold_durations"`
	MaxHoldDuration  *float64            `json:"max_hold_duration,omitempty"`
	Transitions      []TransitionRule    `json:"transitions"`
	CameraOverrides  CameraOverrideRules `json:"camera_overrides"`
}

// HoldDuration looks up hold_durations[energy], falling back to
// "moderate" per spec.md §4.5 Stage 2, then clamps to MaxHoldDuration
// if set.
func (sp StylePack) HoldDuration(energy string) float64 {
	d, ok := sp.HoldDurations[energy]
	if !ok {
		d = sp.HoldDurations[string(EnergyModerate)]
	}
	if sp.MaxHoldDuration != nil && d > *sp.MaxHoldDuration {
		return *sp.MaxHoldDuration
	}
	return d
}

// CSSParams is the resolved per-axis CSS fragment a shot-grammar value
// contributes (spec.md §4.6).
type CSSParams struct {
	Scale             float64 `json:"scale,omitempty"`
	RotateX           float64 `json:"rotate_x,omitempty"`
	RotateZ           float64 `json:"rotate_z,omitempty"`
	PerspectiveOrigin string  `json:"perspective_origin,omitempty"`
	TransformOrigin   string  `json:"transform_origin,omitempty"`
}

// AffinityRule orders content types (or intent tags) by which
// shot-grammar value they imply, used by the priority-ordered
// classification rules in spec.md §4.4/§4.6.
type AffinityRule struct {
	Key   string  `json:"key"`   // content_type, intent tag, or layout template
	Value string  `json:"value"` // resulting shot_size / angle / framing
	Conf  float64 `json:"confidence"`
}

// ShotGrammarCatalog holds the CSS mapping and classification priority
// tables for shot_size, angle, and framing.
type ShotGrammarCatalog struct {
	SizeCSS    map[string]CSSParams `json:"size_css"`
	AngleCSS   map[string]CSSParams `json:"angle_css"`
	FramingCSS map[string]CSSParams `json:"framing_css"`

	// Priority-ordered affinity rules, evaluated in slice order.
	SizeByLayoutTemplate    []AffinityRule `json:"size_by_layout_template"`
	SizeByContentType       []AffinityRule `json:"size_by_content_type"`
	AngleByIntentTag        []AffinityRule `json:"angle_by_intent_tag"`
	AngleByContentType      []AffinityRule `json:"angle_by_content_type"`
	FramingByLayoutTemplate []AffinityRule `json:"framing_by_layout_template"`
	FramingByIntentTag      []AffinityRule `json:"framing_by_intent_tag"`
}

// SpeedLimit is the max velocity for a camera-move property.
type SpeedLimit struct {
	Property    string  `json:"property"`
	MaxVelocity float64 `json:"max_velocity"`
}

// AccelerationBounds specifies the minimum deceleration-phase ratio.
type AccelerationBounds struct {
	DecelerationPhaseMinimum float64 `json:"deceleration_phase_minimum"`
}

// JerkBounds specifies the minimum settling time on direction reversals.
type JerkBounds struct {
	SettlingOnReversalMs float64 `json:"settling_on_reversal_ms"`
}

// Range is an inclusive [Min, Max] numeric bound.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// LensBounds bounds camera scale and rotation.
type LensBounds struct {
	Scale    Range `json:"scale"`
	Rotation Range `json:"rotation"`
}

// PersonalityBoundary is the per-personality forbidden-feature and cap set.
type PersonalityBoundary struct {
	ForbiddenFeatures      []string `json:"forbidden_features"`
	MaxTranslateXY         *float64 `json:"max_translate_xy,omitempty"`
	MaxScaleChangePercent  *float64 `json:"max_scale_change_percent,omitempty"`
}

// GuardrailConstants carries the fixed physical-derivation constants
// spec.md §4.7 names directly (PAN_MAX_PX, SCALE_FACTOR).
type GuardrailConstants struct {
	PanMaxPx    float64 `json:"pan_max_px"`
	ScaleFactor float64 `json:"scale_factor"`
}

// GuardrailCatalog is the full set of camera-move safety bounds.
type GuardrailCatalog struct {
	Constants               GuardrailConstants            `json:"constants"`
	SpeedLimits             map[string]SpeedLimit          `json:"speed_limits"`
	Acceleration            AccelerationBounds             `json:"acceleration"`
	Jerk                    JerkBounds                     `json:"jerk"`
	LensBounds              LensBounds                     `json:"lens_bounds"`
	PersonalityBoundaries   map[string]PersonalityBoundary `json:"personality_boundaries"`
	EasingDecelerationRatio map[string]float64             `json:"easing_deceleration_ratio"`
}

// Primitive is one entry of the renderer-facing animation effects catalog.
type Primitive struct {
	ID           string            `json:"id"`
	Category     string            `json:"category"`
	Personality  []string          `json:"personality"`
	CSS          map[string]string `json:"css"`
	Description  string            `json:"description,omitempty"`
}

// PrimitivesRegistry indexes the renderer's animation primitives.
type PrimitivesRegistry struct {
	Primitives []Primitive `json:"primitives"`
}
