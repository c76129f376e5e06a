package schema

// BlendMode is the layer and shape blend mode (bm).
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendAdd
	BlendHardMix
)

var blendModeNames = [...]string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color dodge", "color burn", "hard light", "soft light", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity", "add", "hard mix",
}

func (b BlendMode) String() string {
	if b.valid() {
		return blendModeNames[b]
	}
	return "unknown"
}

func (b BlendMode) valid() bool { return b >= BlendNormal && b <= BlendHardMix }

// MatteMode is how a layer uses the matte above it (tt).
type MatteMode int

const (
	MatteNormal MatteMode = iota
	MatteAlpha
	MatteInvertedAlpha
	MatteLuma
	MatteInvertedLuma
)

func (m MatteMode) valid() bool { return m >= MatteNormal && m <= MatteInvertedLuma }

// MaskMode is the boolean operation of a mask (mode).
type MaskMode string

const (
	MaskNone       MaskMode = "n"
	MaskAdd        MaskMode = "a"
	MaskSubtract   MaskMode = "s"
	MaskIntersect  MaskMode = "i"
	MaskLighten    MaskMode = "l"
	MaskDarken     MaskMode = "d"
	MaskDifference MaskMode = "f"
)

func (m MaskMode) valid() bool {
	switch m {
	case MaskNone, MaskAdd, MaskSubtract, MaskIntersect, MaskLighten, MaskDarken, MaskDifference:
		return true
	}
	return false
}

// LayerType is the numeric layer tag (ty).
type LayerType int

const (
	LayerPrecomposition LayerType = iota
	LayerSolidColor
	LayerImage
	LayerNull
	LayerShape
	LayerText
	LayerAudio
	LayerVideoPlaceholder
	LayerImageSequence
	LayerVideo
	LayerImagePlaceholder
	LayerGuide
	LayerAdjustment
	LayerCamera
	LayerLight
	LayerData
)

var layerTypeNames = [...]string{
	"precomposition", "solid color", "image", "null", "shape", "text",
	"audio", "video placeholder", "image sequence", "video",
	"image placeholder", "guide", "adjustment", "camera", "light", "data",
}

func (t LayerType) String() string {
	if t >= LayerPrecomposition && t <= LayerData {
		return layerTypeNames[t]
	}
	return "unknown"
}

// ShapeType is the string shape tag (ty).
type ShapeType string

const (
	ShapeRectangle      ShapeType = "rc"
	ShapeEllipse        ShapeType = "el"
	ShapePolyStar       ShapeType = "sr"
	ShapePath           ShapeType = "sh"
	ShapeFill           ShapeType = "fl"
	ShapeStroke         ShapeType = "st"
	ShapeGradientFill   ShapeType = "gf"
	ShapeGradientStroke ShapeType = "gs"
	ShapeNoStyle        ShapeType = "no"
	ShapeGroup          ShapeType = "gr"
	ShapeTransformType  ShapeType = "tr"
	ShapeRepeater       ShapeType = "rp"
	ShapeTrim           ShapeType = "tm"
	ShapeRoundedCorners ShapeType = "rd"
	ShapePuckerBloat    ShapeType = "pb"
	ShapeMerge          ShapeType = "mm"
	ShapeTwist          ShapeType = "tw"
	ShapeOffsetPath     ShapeType = "op"
	ShapeZigZag         ShapeType = "zz"
)

// unsupportedShapes are recognised tags without a model.
var unsupportedShapes = map[ShapeType]string{
	ShapeNoStyle: "no style",
	ShapeTwist:   "twist",
	ShapeZigZag:  "zig zag",
}

// FillRule is the winding rule of fills (r).
type FillRule int

const (
	FillNonZero FillRule = 1
	FillEvenOdd FillRule = 2
)

func (r FillRule) valid() bool { return r == FillNonZero || r == FillEvenOdd }

// LineCap (lc).
type LineCap int

const (
	CapButt   LineCap = 1
	CapRound  LineCap = 2
	CapSquare LineCap = 3
)

func (c LineCap) valid() bool { return c >= CapButt && c <= CapSquare }

// LineJoin (lj).
type LineJoin int

const (
	JoinMiter LineJoin = 1
	JoinRound LineJoin = 2
	JoinBevel LineJoin = 3
)

func (j LineJoin) valid() bool { return j >= JoinMiter && j <= JoinBevel }

// GradientType (t).
type GradientType int

const (
	GradientLinear GradientType = 1
	GradientRadial GradientType = 2
)

func (g GradientType) valid() bool { return g == GradientLinear || g == GradientRadial }

// ShapeDirection is the drawing direction of a geometry (d).
type ShapeDirection int

const (
	DirectionNormal   ShapeDirection = 1
	DirectionReversed ShapeDirection = 3
)

func (d ShapeDirection) valid() bool { return d == DirectionNormal || d == DirectionReversed }

// StrokeDashType (n).
type StrokeDashType string

const (
	DashLength StrokeDashType = "d"
	DashGap    StrokeDashType = "g"
	DashOffset StrokeDashType = "o"
)

func (t StrokeDashType) valid() bool { return t == DashLength || t == DashGap || t == DashOffset }

// TrimMultiple is how a trim applies to multiple shapes (m).
type TrimMultiple int

const (
	TrimSimultaneously TrimMultiple = 1
	TrimIndividually   TrimMultiple = 2
)

func (t TrimMultiple) valid() bool { return t == TrimSimultaneously || t == TrimIndividually }

// MergeMode (mm).
type MergeMode int

const (
	MergeNormal MergeMode = iota + 1
	MergeAdd
	MergeSubtract
	MergeIntersect
	MergeExcludeIntersections
)

func (m MergeMode) valid() bool { return m >= MergeNormal && m <= MergeExcludeIntersections }

// Composite is the stacking order of repeater copies (m).
type Composite int

const (
	CompositeAbove Composite = 1
	CompositeBelow Composite = 2
)

func (c Composite) valid() bool { return c == CompositeAbove || c == CompositeBelow }

// StarType (sy).
type StarType int

const (
	StarStar    StarType = 1
	StarPolygon StarType = 2
)

func (s StarType) valid() bool { return s == StarStar || s == StarPolygon }
