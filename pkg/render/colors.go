package render

import (
	"fmt"
	"image/color"
)

// Mode selects how density is mapped to a colour.
type Mode int

const (
	ModeGray Mode = iota
	ModeSci
)

func (m Mode) String() string {
	switch m {
	case ModeGray:
		return "gray"
	case ModeSci:
		return "sci"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Next cycles through the available modes.
func (m Mode) Next() Mode {
	return (m + 1) % 2
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "gray", "grey", "bw":
		return ModeGray, nil
	case "sci", "color", "colour":
		return ModeSci, nil
	}
	return ModeGray, fmt.Errorf("render: unknown colour mode %q", s)
}

// Gray maps a density to an opaque gray level; 1 and above is white.
func Gray(d float32) color.RGBA {
	v := uint8(255 * min(max(d, 0), 1))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// sciStops are the ramp colours at 0, 1/4, 1/2, 3/4 and 1.
var sciStops = [5][3]float32{
	{0, 0, 1}, // blue
	{0, 1, 1}, // cyan
	{0, 1, 0}, // green
	{1, 1, 0}, // yellow
	{1, 0, 0}, // red
}

// Sci maps val in [lo, hi] onto a blue-cyan-green-yellow-red ramp. An empty
// range maps everything to the middle of the ramp.
func Sci(val, lo, hi float32) color.RGBA {
	t := float32(0.5)
	if span := hi - lo; span > 0 {
		t = (min(max(val, lo), hi-0.0001) - lo) / span
		t = min(max(t, 0), 1)
	}
	band := min(int(t*4), 3)
	frac := t*4 - float32(band)
	from, to := sciStops[band], sciStops[band+1]

	channel := func(c int) uint8 {
		return uint8(255 * (from[c] + (to[c]-from[c])*frac))
	}
	return color.RGBA{R: channel(0), G: channel(1), B: channel(2), A: 0xff}
}
