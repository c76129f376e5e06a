package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/golottie/model"
)

func TestSplineToPath_LinesAndCurves(t *testing.T) {
	pts := []model.Point{
		{X: 0, Y: 0}, {}, {X: 5, Y: 0}, // vertex, in, out
		{X: 10, Y: 0}, {X: -5, Y: 0}, {},
		{X: 10, Y: 10}, {}, {},
	}
	path := model.SplineToPath(pts, true)
	require.Len(t, path, 5)

	assert.Equal(t, model.MoveTo, path[0].Kind)
	assert.Equal(t, model.Point{}, path[0].P[0])

	assert.Equal(t, model.CurveTo, path[1].Kind)
	assert.Equal(t, [3]model.Point{{X: 5}, {X: 5}, {X: 10}}, path[1].P)

	assert.Equal(t, model.LineTo, path[2].Kind)
	assert.Equal(t, model.Point{X: 10, Y: 10}, path[2].P[0])

	assert.Equal(t, model.LineTo, path[3].Kind, "closing segment")
	assert.Equal(t, model.Point{}, path[3].P[0])
	assert.Equal(t, model.ClosePath, path[4].Kind)
}

func TestSplineToPath_Open(t *testing.T) {
	path := model.SplineToPath([]model.Point{{}, {}, {}, {X: 1}, {}, {}}, false)
	require.Len(t, path, 2)
	assert.Equal(t, model.LineTo, path[1].Kind)

	assert.Nil(t, model.SplineToPath(nil, true))
}

func TestSplineGeometry_PathAt(t *testing.T) {
	g := &model.SplineGeometry{
		Times: []model.Time{0, 10},
		Values: [][]model.Point{
			{{}, {}, {}, {X: 10}, {}, {}},
			{{}, {}, {}, {X: 20}, {}, {}},
		},
	}
	path := g.PathAt(5)
	require.Len(t, path, 2)
	assert.Equal(t, model.Point{X: 15}, path[1].P[0])
}

func TestTransform_At(t *testing.T) {
	tr := model.Transform{
		Anchor:   model.Fixed(model.Point{X: 10, Y: 10}),
		Position: model.PointPosition(model.Fixed(model.Point{X: 100, Y: 50})),
		Scale:    model.Fixed(model.Vec2{X: 2, Y: 2}),
		Rotation: model.Fixed(90.0),
	}
	p := tr.At(0).Apply(model.Point{X: 20, Y: 10})
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, 70, p.Y, 1e-9)

	split := model.Transform{
		Position: model.SplitPosition(model.Fixed(3.0), model.Fixed(4.0)),
		Scale:    model.Fixed(model.Vec2{X: 1, Y: 1}),
	}
	q := split.At(0).Apply(model.Point{})
	assert.InDelta(t, 3, q.X, 1e-9)
	assert.InDelta(t, 4, q.Y, 1e-9)
	assert.False(t, math.IsNaN(q.X))
}
