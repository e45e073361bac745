package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Color is a "#rrggbb" display color.
type Color string

var Palette = []Color{
	"#7c5bf5", "#00d9ff", "#ff6b9d", "#ffd700",
	"#4ade80", "#f97316", "#06b6d4", "#a855f7",
}

const fallbackColor Color = "#7c5bf5"

type RGB struct {
	R, G, B uint8
}

// RGB parses the color. Malformed values fall back to the first palette entry.
func (c Color) RGB() RGB {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallbackColor.RGB()
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor.RGB()
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c Color) Valid() bool {
	s := strings.TrimPrefix(string(c), "#")
	if !strings.HasPrefix(string(c), "#") || (len(s) != 6 && len(s) != 3) {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

func (rgb RGB) Color() Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))
}

// BlendColors averages each channel of the given colors, rounding to nearest.
func BlendColors(colors []Color) Color {
	if len(colors) == 0 {
		return fallbackColor
	}
	var r, g, b int
	for _, c := range colors {
		rgb := c.RGB()
		r += int(rgb.R)
		g += int(rgb.G)
		b += int(rgb.B)
	}
	n := len(colors)
	return RGB{
		R: uint8((r + n/2) / n),
		G: uint8((g + n/2) / n),
		B: uint8((b + n/2) / n),
	}.Color()
}

// Placement bounds keep markers away from the map edge.
const (
	placementMin  = 10.0
	placementSpan = 80.0
)

// DeriveLayout assigns the map position and color of a world from its identifier.
// The result depends only on id, so a record keeps its place across reloads.
func DeriveLayout(id string) (Position, Color) {
	h := xxhash.Sum64String(id)
	x := float64(h&0xffff) / 0xffff
	y := float64((h>>16)&0xffff) / 0xffff
	color := Palette[(h>>32)%uint64(len(Palette))]
	return Position{
		X: placementMin + x*placementSpan,
		Y: placementMin + y*placementSpan,
	}, color
}
