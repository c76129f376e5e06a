package importer_test

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lottie "github.com/reoring/golottie"
	"github.com/reoring/golottie/importer"
	"github.com/reoring/golottie/model"
	"github.com/reoring/golottie/schema"
)

const header = `"fr":30,"ip":0,"op":60,"w":100,"h":100`

func importString(t *testing.T, src string, opts ...importer.Options) *model.Composition {
	t.Helper()
	comp, err := importer.ImportBytes([]byte(src), opts...)
	require.NoError(t, err)
	return comp
}

func TestImport_ParentRemap(t *testing.T) {
	comp := importString(t, `{`+header+`,"layers":[
		{"ty":3,"nm":"A","ind":1,"ip":0,"op":60,"st":0,"ks":{}},
		{"ty":3,"nm":"B","ind":2,"parent":1,"ip":0,"op":60,"st":0,"ks":{}},
		{"ty":3,"nm":"C","ind":3,"parent":7,"ip":0,"op":60,"st":0,"ks":{}},
		{"ty":3,"nm":"D","ind":7,"parent":42,"ip":0,"op":60,"st":0,"ks":{}}
	]}`)
	require.Len(t, comp.Layers, 4)
	assert.Nil(t, comp.Layers[0].Parent)
	require.NotNil(t, comp.Layers[1].Parent)
	assert.Equal(t, 0, *comp.Layers[1].Parent)
	require.NotNil(t, comp.Layers[2].Parent, "forward reference")
	assert.Equal(t, 3, *comp.Layers[2].Parent)
	assert.Nil(t, comp.Layers[3].Parent, "unknown ind")
}

func TestImport_HiddenLayersShiftIndices(t *testing.T) {
	comp := importString(t, `{`+header+`,"layers":[
		{"ty":3,"nm":"hidden","ind":1,"hd":true,"ip":0,"op":60,"st":0,"ks":{}},
		{"ty":3,"nm":"A","ind":2,"ip":0,"op":60,"st":0,"ks":{}},
		{"ty":3,"nm":"B","ind":3,"parent":2,"ip":0,"op":60,"st":0,"ks":{}}
	]}`)
	require.Len(t, comp.Layers, 2)
	assert.Equal(t, "A", comp.Layers[0].Name)
	require.NotNil(t, comp.Layers[1].Parent)
	assert.Equal(t, 0, *comp.Layers[1].Parent)
}

func TestImport_MaskLinkage(t *testing.T) {
	comp := importString(t, `{`+header+`,"layers":[
		{"ty":4,"nm":"M","ind":1,"td":1,"ip":0,"op":60,"st":0,"ks":{},"shapes":[]},
		{"ty":4,"nm":"L","ind":2,"tt":1,"ip":0,"op":60,"st":0,"ks":{},"shapes":[]},
		{"ty":4,"nm":"N","ind":3,"tt":2,"ip":0,"op":60,"st":0,"ks":{},"shapes":[]}
	]}`)
	require.Len(t, comp.Layers, 3)
	assert.True(t, comp.Layers[0].IsMask)
	require.NotNil(t, comp.Layers[1].MaskLayer)
	assert.Equal(t, model.MaskLayer{Mode: model.FromCompose(model.ComposeSrcIn), Index: 0}, *comp.Layers[1].MaskLayer)
	assert.Nil(t, comp.Layers[2].MaskLayer, "the matte is consumed by the layer right after it")
}

func TestImport_ExplicitMatteParent(t *testing.T) {
	comp := importString(t, `{`+header+`,"layers":[
		{"ty":4,"nm":"M","ind":5,"td":1,"ip":0,"op":60,"st":0,"ks":{},"shapes":[]},
		{"ty":4,"nm":"X","ind":6,"ip":0,"op":60,"st":0,"ks":{},"shapes":[]},
		{"ty":4,"nm":"L","ind":7,"tt":2,"tp":5,"ip":0,"op":60,"st":0,"ks":{},"shapes":[]}
	]}`)
	require.NotNil(t, comp.Layers[2].MaskLayer)
	assert.Equal(t, model.MaskLayer{Mode: model.FromCompose(model.ComposeSrcOut), Index: 0}, *comp.Layers[2].MaskLayer)
}

func TestMapBlendMode(t *testing.T) {
	b, err := importer.MapBlendMode(schema.BlendNormal)
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = importer.MapBlendMode(schema.BlendMultiply)
	require.NoError(t, err)
	assert.Equal(t, model.FromMix(model.MixMultiply), *b)

	for _, m := range []schema.BlendMode{schema.BlendAdd, schema.BlendHardMix} {
		_, err = importer.MapBlendMode(m)
		assert.True(t, errors.Is(err, lottie.ErrUnsupported), "%s", m)
	}
}

func TestMapMatteMode(t *testing.T) {
	assert.Nil(t, importer.MapMatteMode(schema.MatteNormal))
	assert.Equal(t, model.ComposeSrcIn, importer.MapMatteMode(schema.MatteLuma).Compose)
	assert.Equal(t, model.ComposeSrcOut, importer.MapMatteMode(schema.MatteInvertedAlpha).Compose)
}

func TestImport_UnsupportedBlend(t *testing.T) {
	src := `{` + header + `,"layers":[{"ty":3,"nm":"L","bm":16,"ip":0,"op":60,"st":0,"ks":{}}]}`
	_, err := importer.ImportBytes([]byte(src))
	e, ok := lottie.AsError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, lottie.CodeUnsupported, e.Code)
	assert.Equal(t, `(root)>"L"`, e.Path())

	var warnings lottie.Issues
	comp := importString(t, src, importer.Options{SkipUnsupported: true, IssueSink: lottie.Collect(&warnings)})
	require.Len(t, comp.Layers, 1)
	assert.Nil(t, comp.Layers[0].BlendMode)
	assert.Len(t, warnings, 1)
}

func TestImport_TransformDefaults(t *testing.T) {
	comp := importString(t, `{`+header+`,"layers":[{"ty":4,"ip":0,"op":60,"st":0,"ks":{},"shapes":[
		{"ty":"gr","it":[
			{"ty":"el","p":{"a":0,"k":[1,2]},"s":{"a":0,"k":[10,10]}},
			{"ty":"fl","c":{"a":0,"k":[1,0,0]}},
			{"ty":"tr","p":{"a":0,"k":[5,5]}}
		]}
	]}]}`)
	l := comp.Layers[0]
	check := func(tr model.Transform) {
		t.Helper()
		assert.Equal(t, model.Fixed(model.Point{}), tr.Anchor)
		assert.Equal(t, model.Fixed(model.Vec2{X: 1, Y: 1}), tr.Scale)
		assert.Equal(t, model.Fixed(0.0), tr.Skew)
		assert.Equal(t, model.Fixed(0.0), tr.SkewAngle)
		assert.Equal(t, model.Fixed(0.0), tr.Rotation)
	}
	check(l.Transform)
	assert.Equal(t, model.Fixed(100.0), l.Opacity)
	assert.Equal(t, 1.0, l.Stretch)

	content := l.Content.(*model.ShapeContent)
	require.Len(t, content.Shapes, 1)
	group := content.Shapes[0].(*model.GroupShape)
	require.NotNil(t, group.Transform)
	check(group.Transform.Transform)
	assert.Equal(t, model.Point{X: 5, Y: 5}, group.Transform.Transform.Position.At(0))
	assert.Equal(t, model.Fixed(100.0), group.Transform.Opacity)

	require.Len(t, group.Shapes, 2)
	el := group.Shapes[0].(*model.GeometryShape).Geometry.(*model.EllipseGeometry)
	assert.Equal(t, model.Fixed(model.Point{X: 1, Y: 2}), el.Position)
	fill := group.Shapes[1].(*model.DrawShape)
	assert.Nil(t, fill.Stroke)
	assert.Equal(t, model.Fixed(model.Color{R: 1, A: 1}), fill.Brush.(*model.SolidBrush).Color)
	assert.Equal(t, model.Fixed(100.0), fill.Opacity)
}

func TestImport_Paths(t *testing.T) {
	comp := importString(t, `{`+header+`,"layers":[{"ty":4,"ip":0,"op":60,"st":0,"ks":{},"shapes":[
		{"ty":"sh","ks":{"a":0,"k":{"v":[[0,0],[10,0]],"i":[[0,0],[-2,0]],"o":[[2,0]],"c":1}}},
		{"ty":"sh","ks":{"a":1,"k":[
			{"t":0,"s":[{"v":[[0,0]],"i":[[0,0]],"o":[[0,0]],"c":false}]},
			{"t":10,"s":[{"v":[[4,4]],"i":[[1,1]],"o":[[2,2]],"c":true}]},
			{"t":20}
		]}}
	]}]}`)
	shapes := comp.Layers[0].Content.(*model.ShapeContent).Shapes
	require.Len(t, shapes, 2)

	fixed := shapes[0].(*model.GeometryShape).Geometry.(*model.FixedPathGeometry)
	require.Len(t, fixed.Path, 4)
	assert.Equal(t, model.CurveTo, fixed.Path[1].Kind)
	assert.Equal(t, [3]model.Point{{X: 2}, {X: 8}, {X: 10}}, fixed.Path[1].P)
	assert.Equal(t, model.LineTo, fixed.Path[2].Kind, "missing out tangent is zero")
	assert.Equal(t, model.ClosePath, fixed.Path[3].Kind)

	sp := shapes[1].(*model.GeometryShape).Geometry.(*model.SplineGeometry)
	assert.True(t, sp.Closed, "closed when any keyframe is")
	assert.Equal(t, []model.Time{0, 10, 20}, sp.Times)
	assert.Equal(t, []model.Point{{X: 4, Y: 4}, {X: 1, Y: 1}, {X: 2, Y: 2}}, sp.Values[1])
	assert.Equal(t, sp.Values[1], sp.Values[2], "a keyframe without s repeats the previous one")
}

func TestImport_KeyframeWithoutStart(t *testing.T) {
	comp := importString(t, `{`+header+`,"layers":[
		{"ty":3,"ip":0,"op":60,"st":0,"ks":{"o":{"a":1,"k":[{"t":0,"s":[0],"e":[50]},{"t":10}]}}},
		{"ty":3,"ip":0,"op":60,"st":0,"ks":{"o":{"a":1,"k":[{"t":0,"s":[20]},{"t":10}]}}}
	]}`)
	withEnd := comp.Layers[0].Opacity.Animated
	require.NotNil(t, withEnd)
	assert.Equal(t, []float64{0, 50}, withEnd.Values)
	withoutEnd := comp.Layers[1].Opacity.Animated
	require.NotNil(t, withoutEnd)
	assert.Equal(t, []float64{20, 20}, withoutEnd.Values)
}

func TestImport_DecreasingKeyframesWarn(t *testing.T) {
	var warnings lottie.Issues
	comp := importString(t, `{`+header+`,"layers":[
		{"ty":3,"nm":"L","ip":0,"op":60,"st":0,"ks":{"r":{"a":1,"k":[{"t":10,"s":[5]},{"t":0,"s":[9]}]}}}
	]}`, importer.Options{IssueSink: lottie.Collect(&warnings)})
	assert.Equal(t, model.Fixed(5.0), comp.Layers[0].Transform.Rotation)
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], model.ErrInvalidKeyframes)
	assert.Equal(t, `(root)>"L">(unnamed Transform)`, warnings[0].Path())
}

func TestImport_Precomp(t *testing.T) {
	data, err := os.ReadFile("../schema/testdata/precomp.json")
	require.NoError(t, err)

	_, err = importer.ImportBytes(data)
	require.ErrorIs(t, err, lottie.ErrUnsupported, "image assets have no runtime model")

	var warnings lottie.Issues
	comp, err := importer.ImportBytes(data, importer.Options{SkipUnsupported: true, IssueSink: lottie.Collect(&warnings)})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, `"precomp">"image_0"`, warnings[0].Path())

	assert.Equal(t, model.Range{Start: 0, End: 90}, comp.Frames)
	assert.Equal(t, 3.0, comp.Duration())

	inner := comp.Assets["comp_0"]
	require.Len(t, inner, 2)
	solid := inner[0].Content.(*model.ShapeContent)
	require.Len(t, solid.Shapes, 2)
	rect := solid.Shapes[0].(*model.GeometryShape).Geometry.(*model.RectGeometry)
	assert.Equal(t, model.Fixed(model.Size{Width: 200, Height: 100}), rect.Size)
	color := solid.Shapes[1].(*model.DrawShape).Brush.(*model.SolidBrush).Color.Fixed
	assert.Equal(t, model.Color{R: 1, G: 128.0 / 255, B: 0, A: 1}, color)
	assert.Equal(t, model.Fixed(50.0), inner[0].Opacity)

	null := inner[1]
	assert.Equal(t, model.Point{X: 30}, null.Transform.Position.At(22.5))

	// The hidden controller is dropped.
	require.Len(t, comp.Layers, 2)
	matte, inst := comp.Layers[0], comp.Layers[1]
	assert.True(t, matte.IsMask)
	require.NotNil(t, inst.MaskLayer)
	assert.Equal(t, 0, inst.MaskLayer.Index)
	assert.Nil(t, inst.Parent, "the parent is hidden")
	require.NotNil(t, inst.BlendMode)
	assert.Equal(t, model.MixMultiply, inst.BlendMode.Mix)
	assert.Equal(t, model.Fixed(45.0), inst.Transform.Rotation)
	assert.Equal(t, model.Fixed(model.Vec2{X: 0.5, Y: 0.5}), inst.Transform.Scale)
	assert.Equal(t, 200.0, inst.Width)

	ic := inst.Content.(*model.InstanceContent)
	assert.Equal(t, "comp_0", ic.Name)
	require.NotNil(t, ic.TimeRemap)
	assert.Equal(t, []float64{0, 3}, ic.TimeRemap.Animated.Values)

	require.Len(t, inst.Masks, 1)
	mask := inst.Masks[0]
	assert.Equal(t, model.FromCompose(model.ComposeSrcOver), mask.Mode)
	assert.Equal(t, model.Fixed(80.0), mask.Opacity)
	path := mask.Geometry.(*model.FixedPathGeometry).Path
	require.Len(t, path, 5)
	assert.Equal(t, model.ClosePath, path[4].Kind)
}

func TestImport_Shapes(t *testing.T) {
	data, err := os.ReadFile("../schema/testdata/shapes.json")
	require.NoError(t, err)
	var warnings lottie.Issues
	comp, err := importer.ImportBytes(data, importer.Options{IssueSink: lottie.Collect(&warnings)})
	require.NoError(t, err)

	// sr, tm, mm, pb, op, rd and rp are parsed but not imported.
	require.Len(t, warnings, 7)
	assert.Equal(t, `"shapes">"Body">"Cheek"#3>"Star"`, warnings[0].Path())

	body := comp.Layers[0]
	assert.Equal(t, model.Point{X: 256, Y: 256}, body.Transform.Position.At(0))
	assert.Equal(t, model.Fixed(model.Vec2{X: 1, Y: 1}), body.Transform.Scale)

	shapes := body.Content.(*model.ShapeContent).Shapes
	require.Len(t, shapes, 2)
	head := shapes[0].(*model.GroupShape)
	require.Len(t, head.Shapes, 5)
	require.NotNil(t, head.Transform)

	mouth := head.Shapes[2].(*model.GeometryShape).Geometry.(*model.SplineGeometry)
	assert.False(t, mouth.Closed)
	assert.Len(t, mouth.Values[0], 6)

	stroke := head.Shapes[3].(*model.DrawShape)
	require.NotNil(t, stroke.Stroke)
	assert.Equal(t, model.JoinRound, stroke.Stroke.Join)
	assert.Equal(t, model.CapRound, stroke.Stroke.Cap)
	require.NotNil(t, stroke.Stroke.MiterLimit)
	assert.Equal(t, 4.0, *stroke.Stroke.MiterLimit)

	fill := head.Shapes[4].(*model.DrawShape)
	color := fill.Brush.(*model.SolidBrush).Color
	require.NotNil(t, color.Animated)
	assert.Equal(t, []model.Time{0, 60}, color.Animated.Times)

	cheek := shapes[1].(*model.GroupShape)
	require.Len(t, cheek.Shapes, 2)
	gf := cheek.Shapes[0].(*model.DrawShape).Brush.(*model.GradientBrush)
	assert.True(t, gf.IsRadial)
	require.Len(t, gf.Stops.Fixed, 2)
	assert.Equal(t, 1.0, gf.Stops.Fixed[0].Color.A)
	assert.Equal(t, 0.0, gf.Stops.Fixed[1].Color.A)

	gs := cheek.Shapes[1].(*model.DrawShape)
	assert.False(t, gs.Brush.(*model.GradientBrush).IsRadial)
	assert.Equal(t, model.JoinMiter, gs.Stroke.Join)
	assert.Equal(t, model.CapButt, gs.Stroke.Cap)
	assert.Equal(t, model.Fixed(100.0), gs.Opacity)
}

func TestImport_Independent(t *testing.T) {
	data, err := os.ReadFile("../schema/testdata/shapes.json")
	require.NoError(t, err)
	doc, err := schema.FromBytes(data)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*model.Composition, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			comp, err := importer.Import(doc)
			assert.NoError(t, err)
			results[i] = comp
		}(i)
	}
	wg.Wait()
	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
}

func TestImport_NegativeGradientCountIsAnError(t *testing.T) {
	src := `{` + header + `,"layers":[{"ty":4,"ip":0,"op":60,"st":0,"ks":{},"shapes":[
		{"ty":"gf","o":{"a":0,"k":100},"t":1,"s":{"a":0,"k":[0,0]},"e":{"a":0,"k":[1,0]},
		 "g":{"p":-1,"k":{"a":0,"k":[0,1,0,0]}}}
	]}]}`
	var err error
	require.NotPanics(t, func() { _, err = importer.ImportBytes([]byte(src)) })
	assert.ErrorIs(t, err, lottie.ErrIncorrectType)
}
