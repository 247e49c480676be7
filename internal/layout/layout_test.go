package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRowTilesCanvasWidth asserts the common hard invariant of spec.md
// §4.3/§9: a row of adjacent slots, plus the gaps between them, must tile
// the canvas exactly, with no rounding gap or overlap.
func assertRowTilesCanvasWidth(t *testing.T, rects map[string]Rect, names []string, canvas Size, gap int) {
	t.Helper()
	sum := 0
	for _, name := range names {
		r, ok := rects[name]
		require.True(t, ok, "missing slot %q", name)
		sum += r.W
	}
	sum += gap * (len(names) - 1)
	assert.Equal(t, canvas.W, sum, "widths of %v plus gaps must sum exactly to canvas width %d", names, canvas.W)
}

func TestResolveHeroCenterFillsCanvasWithNoConfig(t *testing.T) {
	canvas := Size{W: 1920, H: 1080}
	rects, err := Resolve("hero-center", Config{}, canvas)
	require.NoError(t, err)
	hero := rects["hero"]
	assert.Equal(t, canvas.W, hero.W)
	assert.Equal(t, canvas.H, hero.H)
}

func TestResolveHeroCenterRespectsMaxFractions(t *testing.T) {
	canvas := Size{W: 1920, H: 1080}
	rects, err := Resolve("hero-center", Config{"maxWidthFraction": 0.5, "maxHeightFraction": 0.5}, canvas)
	require.NoError(t, err)
	hero := rects["hero"]
	assert.Equal(t, 960, hero.W)
	assert.Equal(t, 540, hero.H)
	assert.Equal(t, 480, hero.X)
	assert.Equal(t, 270, hero.Y)
}

func TestResolveSplitPanelSumsToCanvasWidth(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"default even split", Config{}},
		{"uneven ratio", Config{"ratio": 0.33}},
		{"ratio with gap", Config{"ratio": 0.6, "gap": 17.0}},
		{"odd canvas width", Config{"ratio": 0.37}},
	}
	canvas := Size{W: 1921, H: 1081}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rects, err := Resolve("split-panel", tc.cfg, canvas)
			require.NoError(t, err)
			gap := int(tc.cfg.float("gap", 0))
			assertRowTilesCanvasWidth(t, rects, []string{"left", "right"}, canvas, gap)
			assert.Equal(t, canvas.H, rects["left"].H)
			assert.Equal(t, canvas.H, rects["right"].H)
		})
	}
}

func TestResolveMasonryGridSumsToCanvasExactly(t *testing.T) {
	cases := []struct {
		name       string
		cfg        Config
		canvas     Size
		cols, rows int
	}{
		{"2x2 even", Config{"columns": 2, "rows": 2}, Size{W: 1920, H: 1080}, 2, 2},
		{"3x3 with odd remainder", Config{"columns": 3, "rows": 3}, Size{W: 1921, H: 1081}, 3, 3},
		{"3x2 with gap", Config{"columns": 3, "rows": 2, "gap": 8.0}, Size{W: 1920, H: 1080}, 3, 2},
		{"5 columns 1 row", Config{"columns": 5, "rows": 1}, Size{W: 1000, H: 400}, 5, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rects, err := Resolve("masonry-grid", tc.cfg, tc.canvas)
			require.NoError(t, err)
			gap := int(tc.cfg.float("gap", 0))

			for r := 0; r < tc.rows; r++ {
				var rowNames []string
				for c := 0; c < tc.cols; c++ {
					rowNames = append(rowNames, cellName(r, c))
				}
				assertRowTilesCanvasWidth(t, rects, rowNames, tc.canvas, gap)
			}

			heightSum := gap * (tc.rows - 1)
			for r := 0; r < tc.rows; r++ {
				heightSum += rects[cellName(r, 0)].H
			}
			assert.Equal(t, tc.canvas.H, heightSum)
		})
	}
}

func TestResolveMasonryGridRejectsNonPositiveDimensions(t *testing.T) {
	_, err := Resolve("masonry-grid", Config{"columns": 0, "rows": 2}, Size{W: 100, H: 100})
	assert.Error(t, err)

	_, err = Resolve("masonry-grid", Config{"columns": 2, "rows": -1}, Size{W: 100, H: 100})
	assert.Error(t, err)
}

func TestResolveFullBleedMediaFillsCanvas(t *testing.T) {
	canvas := Size{W: 1280, H: 720}
	rects, err := Resolve("full-bleed", Config{}, canvas)
	require.NoError(t, err)
	media := rects["media"]
	assert.Equal(t, Rect{X: 0, Y: 0, W: 1280, H: 720}, media)
}

func TestResolveFullBleedOverlayPositions(t *testing.T) {
	canvas := Size{W: 1280, H: 720}
	positions := []string{
		"top-left", "top-center", "top-right",
		"center-left", "center", "center-right",
		"bottom-left", "bottom-center", "bottom-right",
		"unknown-defaults-bottom-right",
	}
	for _, pos := range positions {
		t.Run(pos, func(t *testing.T) {
			rects, err := Resolve("full-bleed", Config{"overlayPosition": pos}, canvas)
			require.NoError(t, err)
			overlay := rects["overlay"]
			assert.GreaterOrEqual(t, overlay.X, 0)
			assert.GreaterOrEqual(t, overlay.Y, 0)
			assert.LessOrEqual(t, overlay.X+overlay.W, canvas.W)
			assert.LessOrEqual(t, overlay.Y+overlay.H, canvas.H)
		})
	}
}

func TestResolveDeviceMockupSumsToCanvasWidthBothSides(t *testing.T) {
	cases := []struct {
		name   string
		cfg    Config
		canvas Size
	}{
		{"default side (right)", Config{}, Size{W: 1920, H: 1080}},
		{"explicit right", Config{"deviceSide": "right"}, Size{W: 1920, H: 1080}},
		{"explicit left", Config{"deviceSide": "left"}, Size{W: 1920, H: 1080}},
		{"left with odd canvas width", Config{"deviceSide": "left"}, Size{W: 1921, H: 1081}},
		{"right with odd canvas width", Config{"deviceSide": "right"}, Size{W: 1921, H: 1081}},
		{"right with custom ratio and padding", Config{"deviceSide": "right", "ratio": 0.37, "devicePadding": 11.0}, Size{W: 1440, H: 900}},
		{"left with custom ratio and padding", Config{"deviceSide": "left", "ratio": 0.37, "devicePadding": 11.0}, Size{W: 1440, H: 900}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rects, err := Resolve("device-mockup", tc.cfg, tc.canvas)
			require.NoError(t, err)
			device, content := rects["device"], rects["content"]
			paddingR := int(tc.cfg.float("devicePadding", 16))
			assert.Equal(t, tc.canvas.W, content.W+device.W+2*paddingR,
				"content.W + device.W + 2*devicePadding must equal canvas width exactly")
		})
	}
}

func TestAvailableSlotsMatchesResolve(t *testing.T) {
	canvas := Size{W: 1920, H: 1080}
	templates := []struct {
		name string
		cfg  Config
	}{
		{"hero-center", Config{}},
		{"split-panel", Config{}},
		{"masonry-grid", Config{"columns": 3, "rows": 2}},
		{"full-bleed", Config{}},
		{"device-mockup", Config{}},
	}
	for _, tc := range templates {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := AvailableSlots(tc.name, tc.cfg)
			require.NoError(t, err)
			rects, err := Resolve(tc.name, tc.cfg, canvas)
			require.NoError(t, err)
			assert.Len(t, rects, len(slots))
			for _, s := range slots {
				_, ok := rects[s]
				assert.True(t, ok, "slot %q from AvailableSlots missing in Resolve output", s)
			}
		})
	}
}

func TestResolveUnknownTemplateErrors(t *testing.T) {
	_, err := Resolve("not-a-template", Config{}, Size{W: 100, H: 100})
	assert.Error(t, err)

	_, err = AvailableSlots("not-a-template", Config{})
	assert.Error(t, err)
}

func cellName(r, c int) string {
	return fmt.Sprintf("cell_%d_%d", r, c)
}
