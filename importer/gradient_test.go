package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/golottie/importer"
)

func alphas(stops []float64, count int) []float64 {
	var out []float64
	for _, s := range importer.CalcStops(stops, count) {
		out = append(out, s.Color.A)
	}
	return out
}

func TestCalcStops_NoAlpha(t *testing.T) {
	stops := importer.CalcStops([]float64{0, 1, 0, 0, 1, 0, 0, 1}, 2)
	require.Len(t, stops, 2)
	assert.Equal(t, float32(0), stops[0].Offset)
	assert.Equal(t, 1.0, stops[0].Color.R)
	assert.Equal(t, float32(1), stops[1].Offset)
	assert.Equal(t, 1.0, stops[1].Color.B)
	assert.Equal(t, []float64{1, 1}, alphas([]float64{0, 1, 0, 0, 1, 0, 0, 1}, 2))
}

func TestCalcStops_AlphaEndpoints(t *testing.T) {
	got := alphas([]float64{
		0, 1, 0, 0,
		1, 0, 0, 1,
		0, 1, 1, 0,
	}, 2)
	assert.Equal(t, []float64{1, 0}, got)
}

func TestCalcStops_AlphaMidpointIsLinear(t *testing.T) {
	got := alphas([]float64{
		0, 1, 0, 0,
		0.5, 0, 1, 0,
		1, 0, 0, 1,
		0, 1, 1, 0,
	}, 3)
	assert.Equal(t, []float64{1, 0.5, 0}, got)
}

func TestCalcStops_BoundaryOverrides(t *testing.T) {
	// 0.05 and 0.95 would interpolate to 0.95 and 0.05; the overrides snap
	// them to the bracket ends.
	got := alphas([]float64{
		0.05, 1, 1, 1,
		0.3, 1, 1, 1,
		0.95, 1, 1, 1,
		0, 1, 1, 0,
	}, 3)
	require.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0])
	assert.InDelta(t, 0.7, got[1], 1e-6)
	assert.Equal(t, 0.0, got[2])
}

func TestCalcStops_MinAcrossBrackets(t *testing.T) {
	// x=0.25 interpolates to 0.75 in its own bracket, but the second
	// bracket extrapolates to 0.25 and the minimum wins.
	got := alphas([]float64{
		0.25, 0, 0, 0,
		0, 1, 0.5, 0.5, 1, 1,
	}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, 0.25, got[0])
}

func TestCalcStops_Short(t *testing.T) {
	assert.Empty(t, importer.CalcStops(nil, 2))
	stops := importer.CalcStops([]float64{0, 1, 1, 1, 0.5}, 2)
	require.Len(t, stops, 1)
	assert.Equal(t, 1.0, stops[0].Color.A)
}

func TestCalcStops_NegativeCount(t *testing.T) {
	values := []float64{0, 1, 0, 0, 1, 0, 0, 1}
	require.NotPanics(t, func() { importer.CalcStops(values, -1) })
	assert.Equal(t, importer.CalcStops(values, 0), importer.CalcStops(values, -1))
}
