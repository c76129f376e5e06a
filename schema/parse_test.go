package schema_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	lottie "github.com/reoring/golottie"
	"github.com/reoring/golottie/schema"
)

func mustLoad(t *testing.T, name string) *schema.Lottie {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := schema.FromBytes(data)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return doc
}

func TestParse_ShapesDocument(t *testing.T) {
	doc := mustLoad(t, "shapes.json")
	if doc.FrameRate != 60 || doc.OutPoint != 120 || *doc.Name != "shapes" {
		t.Fatalf("unexpected header: %+v", doc)
	}
	layer, ok := doc.Layers[0].(*schema.ShapeLayer)
	if !ok {
		t.Fatalf("want *ShapeLayer, got %T", doc.Layers[0])
	}
	if *layer.Index != 1 || layer.Transform.Position.Position == nil {
		t.Fatalf("unexpected layer: %+v", layer.VisualLayer)
	}

	head := layer.Shapes[0].(*schema.Group)
	if *head.Name != "Head" || len(head.Shapes) != 6 {
		t.Fatalf("unexpected group: %+v", head)
	}
	el := head.Shapes[0].(*schema.Ellipse)
	if el.Size.Static[0] != 120 || *el.Direction != schema.DirectionNormal {
		t.Fatalf("unexpected ellipse: %+v", el)
	}
	path := head.Shapes[2].(*schema.Path)
	if !path.Shape.IsAnimated() || len(path.Shape.Keyframes) != 2 {
		t.Fatalf("path must be animated: %+v", path.Shape)
	}
	if h := path.Shape.Keyframes[0].In; h == nil || !h.X.Scalar || h.X.First() != 0.833 {
		t.Fatalf("unexpected easing handle: %+v", h)
	}
	stroke := head.Shapes[3].(*schema.Stroke)
	if *stroke.LineCap != schema.CapRound || len(stroke.Dashes) != 2 || *stroke.Dashes[1].Type != schema.DashGap {
		t.Fatalf("unexpected stroke: %+v", stroke)
	}
	fill := head.Shapes[4].(*schema.Fill)
	if len(fill.Color.Keyframes) != 2 || !*fill.Color.Keyframes[1].Hold {
		t.Fatalf("unexpected fill color: %+v", fill.Color)
	}
	if _, ok := head.Shapes[5].(*schema.ShapeTransform); !ok {
		t.Fatalf("want *ShapeTransform, got %T", head.Shapes[5])
	}

	cheek := layer.Shapes[1].(*schema.Group)
	gf := cheek.Shapes[1].(*schema.GradientFill)
	if !gf.IsRadial() || gf.Colors.Count != 2 || len(gf.Colors.Colors.Static) != 12 {
		t.Fatalf("unexpected gradient fill: %+v", gf)
	}
	star := cheek.Shapes[0].(*schema.PolyStar)
	if star.StarType != schema.StarStar || star.InnerRadius == nil {
		t.Fatalf("unexpected star: %+v", star)
	}
	rp := cheek.Shapes[8].(*schema.Repeater)
	if rp.Transform.StartOpacity == nil || rp.Copies.Static != 3 {
		t.Fatalf("unexpected repeater: %+v", rp)
	}
}

func TestParse_PrecompDocument(t *testing.T) {
	doc := mustLoad(t, "precomp.json")
	if len(doc.Assets) != 2 {
		t.Fatalf("want 2 assets, got %d", len(doc.Assets))
	}
	img, ok := doc.Asset("image_0").(*schema.ImageAsset)
	if !ok || img.Path != "img_0.png" || img.IsSequence() {
		t.Fatalf("unexpected image asset: %#v", doc.Asset("image_0"))
	}
	comp := doc.Asset("comp_0").(*schema.PrecompositionAsset)
	solid := comp.Layers[0].(*schema.SolidColorLayer)
	if solid.Color != "#ff8000" || solid.Width != 200 {
		t.Fatalf("unexpected solid: %+v", solid)
	}
	null := comp.Layers[1].(*schema.NullLayer)
	kf := null.Transform.Position.Position.Keyframes[0]
	if kf.OutTangent[0] != 10 || kf.InTangent[0] != -10 {
		t.Fatalf("unexpected spatial tangents: %+v", kf)
	}

	ctrl := doc.Layers[0].Common()
	if !ctrl.IsHidden() || ctrl.Transform.Position.Split == nil || ctrl.Transform.Position.Split.Y.Static != 20 {
		t.Fatalf("unexpected controller: %+v", ctrl)
	}
	inst := doc.Layers[2].(*schema.PrecompositionLayer)
	if inst.RefID != "comp_0" || *inst.Parent != 1 || *inst.MatteMode != schema.MatteAlpha || *inst.BlendMode != schema.BlendMultiply {
		t.Fatalf("unexpected instance: %+v", inst)
	}
	if len(inst.Masks) != 1 || *inst.Masks[0].Mode != schema.MaskAdd || !*inst.Masks[0].Shape.Static.Closed {
		t.Fatalf("unexpected masks: %+v", inst.Masks)
	}
	if !*doc.Layers[1].Common().MatteTarget {
		t.Fatalf("matte target flag lost")
	}
}

func TestParse_MissingRequiredField(t *testing.T) {
	_, err := schema.FromString(`{"nm":"doc","fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[
		{"ty":4,"nm":"A","ip":0,"op":10,"st":0,"ks":{},"shapes":[]},
		{"ty":4,"nm":"B","ip":0,"op":10,"st":0,"ks":{},"shapes":[
			{"ty":"gr","nm":"G","it":[]},
			{"ty":"gr","nm":"G","it":[{"ty":"el","nm":"E","s":{"k":[1,1]}}]}
		]}
	]}`)
	e, ok := lottie.AsError(err)
	if !ok || e.Code != lottie.CodeMissingChild || e.Key != "p" {
		t.Fatalf("want missing p, got %v", err)
	}
	if got := e.Path(); got != `"doc">"B"#2>"G"#3>"E"` {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestParse_TransformPathInError(t *testing.T) {
	_, err := schema.FromString(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[
		{"ty":3,"nm":"N","ip":0,"op":10,"st":0,"ks":{"o":{"a":0,"k":"full"}}}
	]}`, lottie.ParseOpt{StrictOptional: true})
	e, ok := lottie.AsError(err)
	if !ok || e.Code != lottie.CodeIncorrectType || e.Key != "k" || e.Expected != lottie.StaticNumber {
		t.Fatalf("want incorrect k, got %v", err)
	}
	if got := e.Path(); got != `(root)>"N">(unnamed Transform)` {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestParse_MalformedOptionalIsWarning(t *testing.T) {
	var warnings lottie.Issues
	doc, err := schema.FromString(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[
		{"ty":3,"nm":"N","ip":0,"op":10,"st":0,"bm":99,"ks":{"o":{"a":0,"k":"full"}}}
	]}`, lottie.ParseOpt{IssueSink: lottie.Collect(&warnings)})
	if err != nil {
		t.Fatalf("lenient parse failed: %v", err)
	}
	l := doc.Layers[0].Common()
	if l.BlendMode != nil || l.Transform.Opacity != nil {
		t.Fatalf("malformed optionals must be dropped: %+v", l)
	}
	if len(warnings) != 2 {
		t.Fatalf("want 2 warnings, got %v", warnings)
	}
	if warnings[0].Key != "k" || warnings[0].Expected != lottie.StaticNumber {
		t.Fatalf("unexpected transform warning: %+v", warnings[0])
	}
	if warnings[1].Key != "bm" || warnings[1].Expected != lottie.EnumInt {
		t.Fatalf("unexpected blend warning: %+v", warnings[1])
	}
}

func TestParse_UnsupportedShape(t *testing.T) {
	src := `{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[
		{"ty":4,"nm":"L","ip":0,"op":10,"st":0,"ks":{},"shapes":[
			{"ty":"zz","nm":"Zig"},
			{"ty":"fl","c":{"a":0,"k":[1,0,0]}}
		]}
	]}`
	_, err := schema.FromString(src)
	if !errors.Is(err, lottie.ErrUnsupported) {
		t.Fatalf("want unsupported, got %v", err)
	}
	e, _ := lottie.AsError(err)
	if !strings.Contains(e.Kind, "zig zag") || e.Path() != `(root)>"L">"Zig"#2` {
		t.Fatalf("unexpected error: %v", e)
	}

	var skipped lottie.Issues
	doc, err := schema.FromString(src, lottie.ParseOpt{SkipUnsupported: true, IssueSink: lottie.Collect(&skipped)})
	if err != nil {
		t.Fatalf("skip mode: %v", err)
	}
	shapes := doc.Layers[0].(*schema.ShapeLayer).Shapes
	if len(shapes) != 1 || len(skipped) != 1 {
		t.Fatalf("want the zig zag skipped, got %d shapes and %v", len(shapes), skipped)
	}
}

func TestParse_UnsupportedLayer(t *testing.T) {
	_, err := schema.FromString(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[
		{"ty":5,"nm":"Title","ip":0,"op":10,"st":0,"ks":{}}
	]}`)
	e, ok := lottie.AsError(err)
	if !ok || e.Code != lottie.CodeUnsupported || e.Kind != "layer type 5 (text)" {
		t.Fatalf("want unsupported text layer, got %v", err)
	}
}

func TestParse_UnknownTags(t *testing.T) {
	_, err := schema.FromString(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[{"ty":42,"ip":0,"op":1,"st":0,"ks":{}}]}`)
	if !errors.Is(err, lottie.ErrUnexpectedChild) {
		t.Fatalf("want unexpected child for layer, got %v", err)
	}
	_, err = schema.FromString(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[
		{"ty":4,"ip":0,"op":1,"st":0,"ks":{},"shapes":[{"ty":"xx"}]}]}`)
	e, ok := lottie.AsError(err)
	if !ok || e.Code != lottie.CodeUnexpectedChild || e.Expected != lottie.Shape {
		t.Fatalf("want unexpected child for shape, got %v", err)
	}
}

func TestParse_NotJSON(t *testing.T) {
	if _, err := schema.FromString(`not json`); !errors.Is(err, lottie.ErrFileNotJSON) {
		t.Fatalf("want file_not_json, got %v", err)
	}
	if _, err := schema.FromString(`"str"`); !errors.Is(err, lottie.ErrFileNotObject) {
		t.Fatalf("want file_not_object, got %v", err)
	}
}

func TestParse_IndependentCalls(t *testing.T) {
	data, err := os.ReadFile("testdata/shapes.json")
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			_, err := schema.FromBytes(data)
			done <- err
		}()
	}
	for i := 0; i < cap(done); i++ {
		if err := <-done; err != nil {
			t.Fatalf("parallel parse: %v", err)
		}
	}
}

func TestParse_AssetErrorsPropagate(t *testing.T) {
	asset := func(layer string) string {
		return `{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[],"assets":[
			{"id":"c","layers":[` + layer + `]}
		]}`
	}

	var warnings lottie.Issues
	_, err := schema.FromString(asset(`{"ty":5,"ip":0,"op":10,"st":0,"ks":{}}`),
		lottie.ParseOpt{IssueSink: lottie.Collect(&warnings)})
	if !errors.Is(err, lottie.ErrUnsupported) {
		t.Fatalf("want unsupported from the asset layer, got %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("the error must not be downgraded: %v", warnings)
	}

	_, err = schema.FromString(asset(`{"ty":4,"ip":0,"op":10,"st":0,"ks":{},"shapes":[{"ty":"zz"}]}`))
	if !errors.Is(err, lottie.ErrUnsupported) {
		t.Fatalf("want unsupported from the asset shape, got %v", err)
	}

	_, err = schema.FromString(asset(`{"ty":3,"ip":0,"op":10,"ks":{}}`))
	e, ok := lottie.AsError(err)
	if !ok || e.Code != lottie.CodeMissingChild || e.Key != "st" {
		t.Fatalf("want missing st, got %v", err)
	}
	if got := e.Path(); got != `(root)>"c">(unnamed Layer)` {
		t.Fatalf("path = %s", got)
	}

	warnings = nil
	doc, err := schema.FromString(asset(`{"ty":5,"ip":0,"op":10,"st":0,"ks":{}},{"ty":3,"ip":0,"op":10,"st":0,"ks":{}}`),
		lottie.ParseOpt{SkipUnsupported: true, IssueSink: lottie.Collect(&warnings)})
	if err != nil {
		t.Fatalf("skip mode: %v", err)
	}
	if len(doc.Assets) != 1 || len(warnings) != 1 {
		t.Fatalf("want the asset kept and one warning, got %d assets, %v", len(doc.Assets), warnings)
	}
	pre := doc.Assets[0].(*schema.PrecompositionAsset)
	if len(pre.Layers) != 1 {
		t.Fatalf("want the null layer only, got %d", len(pre.Layers))
	}
}

func TestParse_MalformedAssetListIsWarning(t *testing.T) {
	var warnings lottie.Issues
	doc, err := schema.FromString(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[],"assets":5}`,
		lottie.ParseOpt{IssueSink: lottie.Collect(&warnings)})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Assets != nil || len(warnings) != 1 || warnings[0].Key != "assets" {
		t.Fatalf("want assets dropped with one warning, got %v", warnings)
	}
}

func TestParse_MaskErrorsPropagate(t *testing.T) {
	_, err := schema.FromString(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[
		{"ty":3,"nm":"L","ip":0,"op":10,"st":0,"ks":{},"masksProperties":[
			{"nm":"M","mode":"a","pt":{"a":0,"k":{"i":[],"o":[]}}}
		]}
	]}`)
	e, ok := lottie.AsError(err)
	if !ok || e.Code != lottie.CodeMissingChild || e.Key != "v" {
		t.Fatalf("want missing v, got %v", err)
	}
	if got := e.Path(); got != `(root)>"L">"M">(unnamed Bezier)` {
		t.Fatalf("path = %s", got)
	}
}

func TestParse_NegativeGradientCount(t *testing.T) {
	_, err := schema.FromString(`{"fr":30,"ip":0,"op":10,"w":10,"h":10,"layers":[
		{"ty":4,"nm":"L","ip":0,"op":10,"st":0,"ks":{},"shapes":[
			{"ty":"gf","nm":"G","o":{"a":0,"k":100},"t":1,
			 "s":{"a":0,"k":[0,0]},"e":{"a":0,"k":[1,0]},
			 "g":{"p":-1,"k":{"a":0,"k":[0,1,0,0]}}}
		]}
	]}`)
	e, ok := lottie.AsError(err)
	if !ok || e.Code != lottie.CodeIncorrectType || e.Key != "p" {
		t.Fatalf("want incorrect p, got %v", err)
	}
}
