package schema

// Lottie is a parsed animation document.
type Lottie struct {
	Version   *string // v
	Name      *string // nm
	FrameRate float64 // fr
	InPoint   float64 // ip
	OutPoint  float64 // op
	Width     float64 // w
	Height    float64 // h
	ThreeD    *bool   // ddd
	// Assets is nil when the document has no assets key.
	Assets []Asset // assets
	Layers []Layer // layers
}

func (l *Lottie) MarshalJSON() ([]byte, error) {
	o := jsonObject{
		"fr":     l.FrameRate,
		"ip":     l.InPoint,
		"op":     l.OutPoint,
		"w":      l.Width,
		"h":      l.Height,
		"layers": l.Layers,
	}
	setOpt(o, "v", l.Version)
	setOpt(o, "nm", l.Name)
	setBoolInt(o, "ddd", l.ThreeD)
	if l.Assets != nil {
		o["assets"] = l.Assets
	}
	return o.marshal()
}

// Asset returns the asset with the given id, or nil.
func (l *Lottie) Asset(id string) Asset {
	for _, a := range l.Assets {
		if a.AssetID() == id {
			return a
		}
	}
	return nil
}

func (p *parser) lottie(obj map[string]any) (*Lottie, error) {
	if name, ok := obj["nm"].(string); ok {
		p.bc.RenameRoot(name)
	}
	f := p.fields(obj)
	doc := &Lottie{
		Version:   opt(f, "v", p.str),
		Name:      opt(f, "nm", p.str),
		FrameRate: req(f, "fr", p.num),
		InPoint:   req(f, "ip", p.num),
		OutPoint:  req(f, "op", p.num),
		Width:     req(f, "w", p.num),
		Height:    req(f, "h", p.num),
		ThreeD:    opt(f, "ddd", p.boolInt),
		Assets:    deref(opt(f, "assets", p.assets)),
		Layers:    req(f, "layers", p.layers),
	}
	if f.err != nil {
		return nil, f.err
	}
	return doc, nil
}
