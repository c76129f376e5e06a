package schema

import (
	lottie "github.com/reoring/golottie"
)

// Mask clips the content of a layer.
type Mask struct {
	Name      *string        // nm
	MatchName *string        // mn
	Inverted  *bool          // inv
	Shape     *ShapeProperty // pt
	Opacity   *FloatValue    // o
	Mode      *MaskMode      // mode
	Expand    *FloatValue    // x
}

func (m Mask) MarshalJSON() ([]byte, error) {
	o := jsonObject{}
	setOpt(o, "nm", m.Name)
	setOpt(o, "mn", m.MatchName)
	setOpt(o, "inv", m.Inverted)
	setOpt(o, "pt", m.Shape)
	setOpt(o, "o", m.Opacity)
	setOpt(o, "mode", m.Mode)
	setOpt(o, "x", m.Expand)
	return o.marshal()
}

func (p *parser) masks(obj map[string]any, key string) ([]Mask, error) {
	out := []Mask{}
	err := p.objects(obj, key, func(_ int, mo map[string]any) error {
		defer p.bc.Enter(lottie.Mask, nameOf(mo))()
		f := p.fields(mo)
		m := Mask{
			Name:      opt(f, "nm", p.str),
			MatchName: opt(f, "mn", p.str),
			Inverted:  opt(f, "inv", p.boolean),
			Shape:     opt(f, "pt", p.shapeProperty),
			Opacity:   opt(f, "o", p.floatValue),
			Mode:      opt(f, "mode", strEnum(p, MaskMode.valid)),
			Expand:    opt(f, "x", p.floatValue),
		}
		if f.err != nil {
			return f.err
		}
		out = append(out, m)
		return nil
	})
	return out, err
}
