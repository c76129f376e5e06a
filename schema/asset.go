package schema

import (
	lottie "github.com/reoring/golottie"
)

// Asset is *ImageAsset or *PrecompositionAsset.
type Asset interface {
	AssetID() string
	asset()
}

// ImageAsset is an external or embedded raster image.
type ImageAsset struct {
	ID       string   // id
	Name     *string  // nm
	Dir      *string  // u
	Path     string   // p, file name or data URL
	Embedded *bool    // e
	Width    *float64 // w
	Height   *float64 // h
	// Type is "seq" for image sequences (t).
	Type *string
}

func (a *ImageAsset) AssetID() string { return a.ID }
func (a *ImageAsset) asset()          {}

// IsSequence reports whether the image is part of a sequence.
func (a *ImageAsset) IsSequence() bool { return a.Type != nil && *a.Type == "seq" }

func (a *ImageAsset) MarshalJSON() ([]byte, error) {
	o := jsonObject{"id": a.ID, "p": a.Path}
	setOpt(o, "nm", a.Name)
	setOpt(o, "u", a.Dir)
	setBoolInt(o, "e", a.Embedded)
	setOpt(o, "w", a.Width)
	setOpt(o, "h", a.Height)
	setOpt(o, "t", a.Type)
	return o.marshal()
}

// PrecompositionAsset is a reusable layer list referenced by id.
type PrecompositionAsset struct {
	ID        string   // id
	Name      *string  // nm
	FrameRate *float64 // fr
	Extra     *bool    // xt
	Layers    []Layer  // layers
}

func (a *PrecompositionAsset) AssetID() string { return a.ID }
func (a *PrecompositionAsset) asset()          {}

func (a *PrecompositionAsset) MarshalJSON() ([]byte, error) {
	o := jsonObject{"id": a.ID, "layers": a.Layers}
	setOpt(o, "nm", a.Name)
	setOpt(o, "fr", a.FrameRate)
	setBoolInt(o, "xt", a.Extra)
	return o.marshal()
}

func (p *parser) assets(obj map[string]any, key string) ([]Asset, error) {
	out := []Asset{}
	err := p.objects(obj, key, func(_ int, ao map[string]any) error {
		a, err := p.asset(ao)
		if err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	return out, err
}

func (p *parser) asset(obj map[string]any) (Asset, error) {
	var name *string
	if id, ok := obj["id"].(string); ok {
		name = &id
	}
	defer p.bc.Enter(lottie.Asset, name)()

	f := p.fields(obj)
	switch {
	case obj["layers"] != nil:
		a := &PrecompositionAsset{
			ID:        req(f, "id", p.str),
			Name:      opt(f, "nm", p.str),
			FrameRate: opt(f, "fr", p.num),
			Extra:     opt(f, "xt", p.boolInt),
			Layers:    req(f, "layers", p.layers),
		}
		return a, f.err
	case obj["p"] != nil:
		a := &ImageAsset{
			ID:       req(f, "id", p.str),
			Name:     opt(f, "nm", p.str),
			Dir:      opt(f, "u", p.str),
			Path:     req(f, "p", p.str),
			Embedded: opt(f, "e", p.boolInt),
			Width:    opt(f, "w", p.num),
			Height:   opt(f, "h", p.num),
			Type:     opt(f, "t", p.str),
		}
		return a, f.err
	}
	return nil, lottie.UnexpectedChild(p.bc, lottie.Asset)
}
