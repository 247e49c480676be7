package analyzer

import (
	"math"
	"regexp"
	"strconv"
)

var hexColorPattern = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b`)

// relativeLuminance computes the WCAG 2.0 relative luminance of a hex
// color string (#rgb, #rrggbb, with or without alpha). Malformed input
// returns ok=false so callers can skip the signal.
func relativeLuminance(hex string) (float64, bool) {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 0, false
	}
	lin := func(c float64) float64 {
		c /= 255
		if c <= 0.03928 {
			return c / 12.92
		}
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b), true
}

func parseHex(hex string) (r, g, b float64, ok bool) {
	s := hex
	if len(s) == 0 || s[0] != '#' {
		return 0, 0, 0, false
	}
	s = s[1:]
	switch len(s) {
	case 3, 4:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6, 8:
		s = s[:6]
	default:
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseInt(s[0:2], 16, 64)
	gv, err2 := strconv.ParseInt(s[2:4], 16, 64)
	bv, err3 := strconv.ParseInt(s[4:6], 16, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return float64(rv), float64(gv), float64(bv), true
}

// findHexColors returns every hex color substring found in s.
func findHexColors(s string) []string {
	return hexColorPattern.FindAllString(s, -1)
}
