package model

import "strconv"

// Mix is the color mixing half of a blend mode.
type Mix int

const (
	MixNormal Mix = iota
	MixMultiply
	MixScreen
	MixOverlay
	MixDarken
	MixLighten
	MixColorDodge
	MixColorBurn
	MixHardLight
	MixSoftLight
	MixDifference
	MixExclusion
	MixHue
	MixSaturation
	MixColor
	MixLuminosity
	// MixClip draws without an isolated blend layer.
	MixClip
)

var mixNames = [...]string{
	"Normal", "Multiply", "Screen", "Overlay", "Darken", "Lighten",
	"ColorDodge", "ColorBurn", "HardLight", "SoftLight", "Difference",
	"Exclusion", "Hue", "Saturation", "Color", "Luminosity", "Clip",
}

func (m Mix) String() string {
	if m >= 0 && int(m) < len(mixNames) {
		return mixNames[m]
	}
	return "Mix(" + strconv.Itoa(int(m)) + ")"
}

// Compose is the Porter-Duff half of a blend mode.
type Compose int

const (
	ComposeSrcOver Compose = iota
	ComposeClear
	ComposeCopy
	ComposeDest
	ComposeDestOver
	ComposeSrcIn
	ComposeDestIn
	ComposeSrcOut
	ComposeDestOut
	ComposeSrcAtop
	ComposeDestAtop
	ComposeXor
	ComposePlus
	ComposePlusLighter
)

var composeNames = [...]string{
	"SrcOver", "Clear", "Copy", "Dest", "DestOver", "SrcIn", "DestIn",
	"SrcOut", "DestOut", "SrcAtop", "DestAtop", "Xor", "Plus", "PlusLighter",
}

func (c Compose) String() string {
	if c >= 0 && int(c) < len(composeNames) {
		return composeNames[c]
	}
	return "Compose(" + strconv.Itoa(int(c)) + ")"
}

// BlendMode pairs a mix with a compose operator. The zero value is
// Normal/SrcOver.
type BlendMode struct {
	Mix     Mix
	Compose Compose
}

// FromMix returns mix composed with SrcOver.
func FromMix(m Mix) BlendMode { return BlendMode{Mix: m} }

// FromCompose returns compose with Normal mixing.
func FromCompose(c Compose) BlendMode { return BlendMode{Compose: c} }

// IsDefault reports whether b is Normal/SrcOver.
func (b BlendMode) IsDefault() bool { return b == BlendMode{} }

func (b BlendMode) String() string { return b.Mix.String() + "/" + b.Compose.String() }
