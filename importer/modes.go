package importer

import (
	lottie "github.com/reoring/golottie"
	"github.com/reoring/golottie/model"
	"github.com/reoring/golottie/schema"
)

var blendMixes = map[schema.BlendMode]model.Mix{
	schema.BlendMultiply:   model.MixMultiply,
	schema.BlendScreen:     model.MixScreen,
	schema.BlendOverlay:    model.MixOverlay,
	schema.BlendDarken:     model.MixDarken,
	schema.BlendLighten:    model.MixLighten,
	schema.BlendColorDodge: model.MixColorDodge,
	schema.BlendColorBurn:  model.MixColorBurn,
	schema.BlendHardLight:  model.MixHardLight,
	schema.BlendSoftLight:  model.MixSoftLight,
	schema.BlendDifference: model.MixDifference,
	schema.BlendExclusion:  model.MixExclusion,
	schema.BlendHue:        model.MixHue,
	schema.BlendSaturation: model.MixSaturation,
	schema.BlendColor:      model.MixColor,
	schema.BlendLuminosity: model.MixLuminosity,
}

// MapBlendMode maps a layer blend mode. Normal maps to nil (no override).
// Add and HardMix have no equivalent and return an Unsupported error.
func MapBlendMode(b schema.BlendMode) (*model.BlendMode, error) {
	if b == schema.BlendNormal {
		return nil, nil
	}
	if mix, ok := blendMixes[b]; ok {
		m := model.FromMix(mix)
		return &m, nil
	}
	return nil, lottie.Unsupportedf(nil, "blend mode %s", b)
}

// MapMatteMode maps how a layer uses its matte. Normal maps to nil.
func MapMatteMode(m schema.MatteMode) *model.BlendMode {
	var b model.BlendMode
	switch m {
	case schema.MatteAlpha, schema.MatteLuma:
		b = model.FromCompose(model.ComposeSrcIn)
	case schema.MatteInvertedAlpha, schema.MatteInvertedLuma:
		b = model.FromCompose(model.ComposeSrcOut)
	default:
		return nil
	}
	return &b
}

// mapMaskMode maps a mask mode. ok is false for MaskNone.
func mapMaskMode(m schema.MaskMode) (b model.BlendMode, ok bool) {
	switch m {
	case schema.MaskNone:
		return b, false
	case schema.MaskSubtract:
		return model.FromCompose(model.ComposeDestOut), true
	case schema.MaskIntersect:
		return model.FromCompose(model.ComposeSrcIn), true
	case schema.MaskLighten:
		return model.FromMix(model.MixLighten), true
	case schema.MaskDarken:
		return model.FromMix(model.MixDarken), true
	case schema.MaskDifference:
		return model.FromMix(model.MixDifference), true
	default:
		return model.FromCompose(model.ComposeSrcOver), true
	}
}

// blend maps b at the current breadcrumb, honouring SkipUnsupported.
func (im *importer) blend(b *schema.BlendMode) (*model.BlendMode, error) {
	if b == nil {
		return nil, nil
	}
	m, err := MapBlendMode(*b)
	if err == nil {
		return m, nil
	}
	e, _ := lottie.AsError(err)
	e.Breadcrumb = im.bc.Snapshot()
	return nil, im.unsupported(e)
}
