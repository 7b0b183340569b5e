package render

import (
	"math"

	"github.com/lixenwraith/lantern/parameter"
)

// WarpOffset is the display-only breathing effect: a vertical pixel
// offset per wall cell, derived from the cell coordinate, elapsed time
// and distance from the light. Pure function of its inputs; the
// authoritative grid used by collision and ray marching is never
// touched.
func WarpOffset(col, row int, elapsed, lightDist float64) float64 {
	phase := float64(col)*0.7 + float64(row)*1.3
	falloff := 1.0 / (1.0 + lightDist*0.5)
	return math.Sin(elapsed*parameter.WarpRate+phase) * parameter.WarpAmplitude * falloff
}
