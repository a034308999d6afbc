package chroma

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-chroma/internal/core"
)

// Channel identifies one axis of the HSL colour cylinder.
type Channel int

const (
	ChannelHue Channel = iota
	ChannelSaturation
	ChannelLightness
	channelCount // Sentinel value for random selection
)

// String returns a human-readable name for the channel.
func (c Channel) String() string {
	switch c {
	case ChannelHue:
		return "hue"
	case ChannelSaturation:
		return "saturation"
	case ChannelLightness:
		return "lightness"
	default:
		return "unknown"
	}
}

// Color is a point in HSL space.
// H is in degrees [0,360), S and L are percentages [0,100].
type Color struct {
	H float64
	S float64
	L float64
}

// Shift returns a copy of c with delta applied to a single channel.
// Hue wraps around the circle; saturation and lightness clamp to [0,100].
// The other two channels are left untouched.
func (c Color) Shift(ch Channel, delta float64) Color {
	switch ch {
	case ChannelHue:
		c.H = wrapHue(c.H + delta)
	case ChannelSaturation:
		c.S = core.ClampF(c.S+delta, 0, 100)
	case ChannelLightness:
		c.L = core.ClampF(c.L+delta, 0, 100)
	}
	return c
}

// Delta holds absolute per-channel differences between two colours.
type Delta struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Delta returns the absolute per-channel difference between c and other.
// Hue distance is measured around the circle, so 358 and 3 are 5 apart.
func (c Color) Delta(other Color) Delta {
	dh := math.Abs(c.H - other.H)
	if dh > 180 {
		dh = 360 - dh
	}
	return Delta{
		Hue:        dh,
		Saturation: math.Abs(c.S - other.S),
		Lightness:  math.Abs(c.L - other.L),
	}
}

// Max returns the largest channel difference.
func (d Delta) Max() float64 {
	return math.Max(d.Hue, math.Max(d.Saturation, d.Lightness))
}

// Channel returns the channel that differs most.
func (d Delta) Channel() Channel {
	switch {
	case d.Hue >= d.Saturation && d.Hue >= d.Lightness:
		return ChannelHue
	case d.Saturation >= d.Lightness:
		return ChannelSaturation
	default:
		return ChannelLightness
	}
}

// Hex converts the colour to an sRGB "#rrggbb" string for rendering.
func (c Color) Hex() string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex()
}

// String returns the colour in CSS hsl() notation.
func (c Color) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.H, c.S, c.L)
}

// wrapHue maps any angle into [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
