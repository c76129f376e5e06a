package importer

import (
	"math"

	"github.com/reoring/golottie/model"
)

type alphaStop struct {
	offset float32
	alpha  float64
}

// normalizeToRange returns where x lies between a and b, or 0 when a == b.
func normalizeToRange(a, b, x float32) float32 {
	if a == b {
		return 0
	}
	return (x - a) / (b - a)
}

// CalcStops rebuilds gradient stops from the flat Lottie list: count quads
// of offset, r, g, b, optionally followed by offset, alpha pairs.
//
// Without alpha pairs every stop is opaque. Otherwise each stop takes the
// minimum alpha over every pair of consecutive alpha stops, interpolated at
// its offset. Inside a bracket, a stop with t <= 0.25 and offset <= 0.1 takes
// the earlier alpha as is, and one with t >= 0.75 and offset >= 0.9 the
// later alpha; this matches the falloff of common web players. Offsets and t
// are computed in float32.
func CalcStops(values []float64, count int) []model.ColorStop {
	if count < 0 {
		count = 0
	}
	var stops [][5]float64
	for i := 0; i+4 <= len(values); i += 4 {
		stops = append(stops, [5]float64{values[i], values[i+1], values[i+2], values[i+3], 1})
		if len(stops) < count {
			continue
		}
		var alphas []alphaStop
		for j := count * 4; j+2 <= len(values); j += 2 {
			alphas = append(alphas, alphaStop{offset: float32(values[j]), alpha: values[j+1]})
		}
		for s := range stops {
			x := float32(stops[s][0])
			for k := 1; k < len(alphas); k++ {
				a, b := alphas[k-1], alphas[k]
				t := normalizeToRange(a.offset, b.offset, x)
				alpha := a.alpha + (b.alpha-a.alpha)*float64(t)
				inside := x >= a.offset && x <= b.offset
				if inside && t <= 0.25 && x <= 0.1 {
					alpha = a.alpha
				}
				if inside && t >= 0.75 && x >= 0.9 {
					alpha = b.alpha
				}
				stops[s][4] = math.Min(stops[s][4], alpha)
			}
		}
		break
	}

	out := make([]model.ColorStop, len(stops))
	for i, s := range stops {
		out[i] = model.ColorStop{
			Offset: float32(s[0]),
			Color:  model.Color{R: s[1], G: s[2], B: s[3], A: s[4]},
		}
	}
	return out
}
