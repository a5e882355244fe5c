package plot

import (
	"math"

	"github.com/gogpu/gg"
)

// Colormap maps a normalized value in [0, 1] to a color.
type Colormap func(t float64) gg.RGBA

// viridisStops samples matplotlib's viridis at t = 0, 1/8, ..., 1.
var viridisStops = []gg.RGBA{
	gg.Hex("#440154"),
	gg.Hex("#482475"),
	gg.Hex("#3b528b"),
	gg.Hex("#2c728e"),
	gg.Hex("#21918c"),
	gg.Hex("#28ae80"),
	gg.Hex("#5ec962"),
	gg.Hex("#addc30"),
	gg.Hex("#fde725"),
}

// Viridis is a piecewise-linear approximation of the viridis colormap.
// Values outside [0, 1] are clamped; NaN maps to the low end.
func Viridis(t float64) gg.RGBA {
	if math.IsNaN(t) || t <= 0 {
		return viridisStops[0]
	}
	last := len(viridisStops) - 1
	if t >= 1 {
		return viridisStops[last]
	}
	pos := t * float64(last)
	i := int(pos)
	return viridisStops[i].Lerp(viridisStops[i+1], pos-float64(i))
}
