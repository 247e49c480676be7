package catalog

// Fixed enums referenced throughout the pipeline. These are not
// catalog-authored — they are the closed vocabularies spec.md declares
// directly (scene/manifest field enums, §3.3) — but catalog rules
// (style-pack transitions, camera overrides, shot-grammar affinities)
// reference them. The loader fails fast if a style-pack transition or
// camera-override rule names a value outside these sets; the
// shot-grammar affinity tables are not checked against them.

// ContentType is the Scene Analyzer's "what does this scene depict" axis.
type ContentType string

const (
	ContentBrandMark        ContentType = "brand_mark"
	ContentTypography       ContentType = "typography"
	ContentUIScreenshot     ContentType = "ui_screenshot"
	ContentDeviceMockup     ContentType = "device_mockup"
	ContentSplitPanel       ContentType = "split_panel"
	ContentCollage          ContentType = "collage"
	ContentMoodboard        ContentType = "moodboard"
	ContentProductShot      ContentType = "product_shot"
	ContentPortrait         ContentType = "portrait"
	ContentDataVisualization ContentType = "data_visualization"
	ContentNotification     ContentType = "notification"
)

var contentTypes = set(
	string(ContentBrandMark), string(ContentTypography), string(ContentUIScreenshot),
	string(ContentDeviceMockup), string(ContentSplitPanel), string(ContentCollage),
	string(ContentMoodboard), string(ContentProductShot), string(ContentPortrait),
	string(ContentDataVisualization), string(ContentNotification),
)

// VisualWeight is the overall luminance bucket.
type VisualWeight string

const (
	WeightDark  VisualWeight = "dark"
	WeightLight VisualWeight = "light"
	WeightMixed VisualWeight = "mixed"
)

var visualWeights = set(string(WeightDark), string(WeightLight), string(WeightMixed))

// MotionEnergy is the perceived-movement bucket.
type MotionEnergy string

const (
	EnergyStatic   MotionEnergy = "static"
	EnergySubtle   MotionEnergy = "subtle"
	EnergyModerate MotionEnergy = "moderate"
	EnergyHigh     MotionEnergy = "high"
)

var motionEnergies = set(string(EnergyStatic), string(EnergySubtle), string(EnergyModerate), string(EnergyHigh))

// Narrative-role intent tags.
const (
	IntentOpening       = "opening"
	IntentHero          = "hero"
	IntentDetail        = "detail"
	IntentClosing       = "closing"
	IntentEmotional     = "emotional"
	IntentInformational = "informational"
	IntentTransition    = "transition"
)

var intentTags = set(
	IntentOpening, IntentHero, IntentDetail, IntentClosing,
	IntentEmotional, IntentInformational, IntentTransition,
)

// IntentPriority is the fixed bucket-assembly priority from spec.md §4.5 Stage 1.
// Highest priority first.
var IntentPriority = []string{
	IntentClosing, IntentOpening, IntentHero, IntentEmotional,
	IntentDetail, IntentInformational, IntentTransition,
}

// Shot grammar axes.
const (
	ShotSizeExtremeCloseUp = "extreme_close_up"
	ShotSizeCloseUp        = "close_up"
	ShotSizeMedium         = "medium"
	ShotSizeWide           = "wide"
	ShotSizeExtremeWide    = "extreme_wide"
)

var shotSizes = set(ShotSizeExtremeCloseUp, ShotSizeCloseUp, ShotSizeMedium, ShotSizeWide, ShotSizeExtremeWide)

const (
	ShotAngleEyeLevel  = "eye_level"
	ShotAngleHighAngle = "high_angle"
	ShotAngleLowAngle  = "low_angle"
	ShotAngleBirdsEye  = "birds_eye"
)

var shotAngles = set(ShotAngleEyeLevel, ShotAngleHighAngle, ShotAngleLowAngle, ShotAngleBirdsEye)

const (
	ShotFramingCenter = "center"
	ShotFramingLeft   = "left"
	ShotFramingRight  = "right"
	ShotFramingRuleOfThirds = "rule_of_thirds"
)

var shotFramings = set(ShotFramingCenter, ShotFramingLeft, ShotFramingRight, ShotFramingRuleOfThirds)

// Layer / layout enums.
const (
	LayerHTML  = "html"
	LayerImage = "image"
	LayerVideo = "video"
	LayerText  = "text"
)

var layerTypes = set(LayerHTML, LayerImage, LayerVideo, LayerText)

const (
	DepthBackground = "background"
	DepthMidground  = "midground"
	DepthForeground = "foreground"
)

var depthClasses = set(DepthBackground, DepthMidground, DepthForeground)

const (
	BlendNormal   = "normal"
	BlendScreen   = "screen"
	BlendMultiply = "multiply"
	BlendOverlay  = "overlay"
)

var blendModes = set(BlendNormal, BlendScreen, BlendMultiply, BlendOverlay)

const (
	AnimationWordReveal   = "word-reveal"
	AnimationScaleCascade = "scale-cascade"
	AnimationWeightMorph  = "weight-morph"
)

var animations = set(AnimationWordReveal, AnimationScaleCascade, AnimationWeightMorph)

var layoutTemplates = set("hero-center", "split-panel", "masonry-grid", "full-bleed", "device-mockup")

// Camera / transition enums.
const (
	MoveStatic  = "static"
	MovePan     = "pan"
	MovePushIn  = "push_in"
	MovePullOut = "pull_out"
	MoveDrift   = "drift"
)

var cameraMoves = set(MoveStatic, MovePan, MovePushIn, MovePullOut, MoveDrift)

const (
	EasingLinear          = "linear"
	EasingEaseOut         = "ease_out"
	EasingCinematicScurve = "cinematic_scurve"
)

var easings = set(EasingLinear, EasingEaseOut, EasingCinematicScurve)

const (
	TransitionHardCut    = "hard_cut"
	TransitionCrossfade  = "crossfade"
	TransitionWhipLeft   = "whip_left"
	TransitionWhipRight  = "whip_right"
	TransitionWhipUp     = "whip_up"
	TransitionWhipDown   = "whip_down"
)

var transitionTypes = set(
	TransitionHardCut, TransitionCrossfade,
	TransitionWhipLeft, TransitionWhipRight, TransitionWhipUp, TransitionWhipDown,
)

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func isKnown(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}

// IsContentType reports whether v is a declared content type.
func IsContentType(v string) bool { return isKnown(contentTypes, v) }

// IsVisualWeight reports whether v is a declared visual weight.
func IsVisualWeight(v string) bool { return isKnown(visualWeights, v) }

// IsMotionEnergy reports whether v is a declared motion energy.
func IsMotionEnergy(v string) bool { return isKnown(motionEnergies, v) }

// IsIntentTag reports whether v is a declared intent tag.
func IsIntentTag(v string) bool { return isKnown(intentTags, v) }

// IsShotSize reports whether v is a declared shot size.
func IsShotSize(v string) bool { return isKnown(shotSizes, v) }

// IsShotAngle reports whether v is a declared shot angle.
func IsShotAngle(v string) bool { return isKnown(shotAngles, v) }

// IsShotFraming reports whether v is a declared shot framing.
func IsShotFraming(v string) bool { return isKnown(shotFramings, v) }

// IsLayerType reports whether v is a declared layer type.
func IsLayerType(v string) bool { return isKnown(layerTypes, v) }

// IsDepthClass reports whether v is a declared depth class.
func IsDepthClass(v string) bool { return isKnown(depthClasses, v) }

// IsBlendMode reports whether v is a declared blend mode.
func IsBlendMode(v string) bool { return isKnown(blendModes, v) }

// IsAnimation reports whether v is a declared text animation.
func IsAnimation(v string) bool { return isKnown(animations, v) }

// IsLayoutTemplate reports whether v is a declared layout template.
func IsLayoutTemplate(v string) bool { return isKnown(layoutTemplates, v) }

// IsCameraMove reports whether v is a declared camera move.
func IsCameraMove(v string) bool { return isKnown(cameraMoves, v) }

// IsEasing reports whether v is a declared easing.
func IsEasing(v string) bool { return isKnown(easings, v) }

// IsTransitionType reports whether v is a declared transition type.
func IsTransitionType(v string) bool { return isKnown(transitionTypes, v) }
