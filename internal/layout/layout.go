// Package layout resolves abstract layout templates into pixel-slot
// rectangles (spec.md §4.3).
package layout

import (
	"fmt"
	"math"
)

// Size is a canvas or rectangle size in pixels.
type Size struct {
	W int
	H int
}

// Rect is an integer-rounded pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Config is the open-shaped layout configuration dictionary (spec.md §9
// "Dynamic configuration dictionaries"). Each accessor below defaults
// sensibly when a key is absent, matching the way an author-facing
// template would be forgiving of a minimal config.
type Config map[string]any

func (c Config) float(key string, def float64) float64 {
	if v, ok := c[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return def
}

func (c Config) int(key string, def int) int {
	if v, ok := c[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return def
}

func (c Config) str(key, def string) string {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// AvailableSlots returns the slot names a template declares, given its
// config (masonry-grid's slot count depends on columns x rows). Used by
// the scene validator to check layer.slot references (spec.md §4.2).
func AvailableSlots(template string, cfg Config) ([]string, error) {
	switch template {
	case "hero-center":
		return []string{"hero"}, nil
	case "split-panel":
		return []string{"left", "right"}, nil
	case "masonry-grid":
		cols := cfg.int("columns", 2)
		rows := cfg.int("rows", 2)
		if cols < 1 || rows < 1 {
			return nil, fmt.Errorf("layout: masonry-grid requires columns >= 1 and rows >= 1")
		}
		slots := make([]string, 0, cols*rows)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				slots = append(slots, fmt.Sprintf("cell_%d_%d", r, c))
			}
		}
		return slots, nil
	case "full-bleed":
		return []string{"media", "overlay"}, nil
	case "device-mockup":
		return []string{"device", "content"}, nil
	default:
		return nil, fmt.Errorf("layout: unknown template %q", template)
	}
}

// Resolve converts template + config + canvas into slot_name -> Rect.
// Rectangles are integer-rounded; the last row/column absorbs rounding
// remainder so summed widths/heights equal the canvas exactly
// (spec.md §4.3, §9 "Numeric determinism").
func Resolve(template string, cfg Config, canvas Size) (map[string]Rect, error) {
	switch template {
	case "hero-center":
		return resolveHeroCenter(cfg, canvas), nil
	case "split-panel":
		return resolveSplitPanel(cfg, canvas), nil
	case "masonry-grid":
		return resolveMasonryGrid(cfg, canvas)
	case "full-bleed":
		return resolveFullBleed(cfg, canvas), nil
	case "device-mockup":
		return resolveDeviceMockup(cfg, canvas), nil
	default:
		return nil, fmt.Errorf("layout: unknown template %q", template)
	}
}

func resolveHeroCenter(cfg Config, canvas Size) map[string]Rect {
	padding := cfg.float("padding", 0)
	maxWFrac := cfg.float("maxWidthFraction", 1)
	maxHFrac := cfg.float("maxHeightFraction", 1)

	availW := float64(canvas.W) - 2*padding
	availH := float64(canvas.H) - 2*padding
	w := math.Min(availW, float64(canvas.W)*maxWFrac)
	h := math.Min(availH, float64(canvas.H)*maxHFrac)
	x := (float64(canvas.W) - w) / 2
	y := (float64(canvas.H) - h) / 2

	return map[string]Rect{
		"hero": roundRect(x, y, w, h),
	}
}

func resolveSplitPanel(cfg Config, canvas Size) map[string]Rect {
	ratio := cfg.float("ratio", 0.5)
	gap := cfg.float("gap", 0)

	leftW := float64(canvas.W)*ratio - gap/2
	rightX := float64(canvas.W)*ratio + gap/2
	rightW := float64(canvas.W) - rightX

	left := roundRect(0, 0, leftW, float64(canvas.H))
	right := roundRect(rightX, 0, rightW, float64(canvas.H))
	// Clamp so the two panels' widths sum exactly to the canvas width,
	// absorbing rounding remainder into the last (right) column.
	right.W = canvas.W - left.W - int(math.Round(gap))
	if right.W < 0 {
		right.W = 0
	}
	right.X = canvas.W - right.W
	return map[string]Rect{"left": left, "right": right}
}

func resolveMasonryGrid(cfg Config, canvas Size) (map[string]Rect, error) {
	cols := cfg.int("columns", 2)
	rows := cfg.int("rows", 2)
	gap := cfg.float("gap", 0)
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("layout: masonry-grid requires columns >= 1 and rows >= 1")
	}

	totalGapW := gap * float64(cols-1)
	totalGapH := gap * float64(rows-1)
	cellW := (float64(canvas.W) - totalGapW) / float64(cols)
	cellH := (float64(canvas.H) - totalGapH) / float64(rows)
	gapR := int(math.Round(gap))

	// Column/row extents are built cumulatively from each other's rounded
	// widths, not from independently-rounded positions, so a column's start
	// always equals the sum of everything to its left; the last column/row
	// absorbs whatever rounding remainder is left over against the canvas.
	colX := make([]int, cols)
	colW := make([]int, cols)
	x := 0
	for c := 0; c < cols; c++ {
		colX[c] = x
		if c == cols-1 {
			colW[c] = canvas.W - x
		} else {
			colW[c] = int(math.Round(cellW))
		}
		x += colW[c] + gapR
	}

	rowY := make([]int, rows)
	rowH := make([]int, rows)
	y := 0
	for r := 0; r < rows; r++ {
		rowY[r] = y
		if r == rows-1 {
			rowH[r] = canvas.H - y
		} else {
			rowH[r] = int(math.Round(cellH))
		}
		y += rowH[r] + gapR
	}

	out := make(map[string]Rect, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[fmt.Sprintf("cell_%d_%d", r, c)] = Rect{X: colX[c], Y: rowY[r], W: colW[c], H: rowH[r]}
		}
	}
	return out, nil
}

func resolveFullBleed(cfg Config, canvas Size) map[string]Rect {
	media := Rect{X: 0, Y: 0, W: canvas.W, H: canvas.H}

	pos := cfg.str("overlayPosition", "bottom-right")
	padding := cfg.float("overlayPadding", 24)
	wFrac := cfg.float("overlayWidthFraction", 0.3)
	hFrac := cfg.float("overlayHeightFraction", 0.2)

	w := float64(canvas.W) * wFrac
	h := float64(canvas.H) * hFrac

	var x, y float64
	switch pos {
	case "top-left":
		x, y = padding, padding
	case "top-center":
		x, y = (float64(canvas.W)-w)/2, padding
	case "top-right":
		x, y = float64(canvas.W)-w-padding, padding
	case "center-left":
		x, y = padding, (float64(canvas.H)-h)/2
	case "center":
		x, y = (float64(canvas.W)-w)/2, (float64(canvas.H)-h)/2
	case "center-right":
		x, y = float64(canvas.W)-w-padding, (float64(canvas.H)-h)/2
	case "bottom-left":
		x, y = padding, float64(canvas.H)-h-padding
	case "bottom-center":
		x, y = (float64(canvas.W)-w)/2, float64(canvas.H)-h-padding
	case "bottom-right":
		fallthrough
	default:
		x, y = float64(canvas.W)-w-padding, float64(canvas.H)-h-padding
	}

	return map[string]Rect{
		"media":   media,
		"overlay": roundRect(x, y, w, h),
	}
}

func resolveDeviceMockup(cfg Config, canvas Size) map[string]Rect {
	ratio := cfg.float("ratio", 0.5)
	side := cfg.str("deviceSide", "right")
	devicePadding := cfg.float("devicePadding", 16)

	deviceW := float64(canvas.W) * ratio
	contentW := float64(canvas.W) - deviceW

	var deviceX, contentX float64
	if side == "left" {
		deviceX, contentX = 0, deviceW
	} else {
		contentX, deviceX = 0, contentW
	}

	device := roundRect(deviceX+devicePadding, devicePadding, deviceW-2*devicePadding, float64(canvas.H)-2*devicePadding)
	content := roundRect(contentX, 0, contentW, float64(canvas.H))

	// Clamp widths so device + content sum to the canvas exactly,
	// absorbing rounding remainder into content. The device is flanked
	// by devicePadding on both sides regardless of which side it's on,
	// so the device's zone width is the same computation either way.
	paddingR := int(math.Round(devicePadding))
	content.W = canvas.W - device.W - 2*paddingR

	return map[string]Rect{"device": device, "content": content}
}

func roundRect(x, y, w, h float64) Rect {
	return Rect{
		X: int(math.Round(x)),
		Y: int(math.Round(y)),
		W: int(math.Round(w)),
		H: int(math.Round(h)),
	}
}
