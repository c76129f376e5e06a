package importer

import (
	lottie "github.com/reoring/golottie"
	"github.com/reoring/golottie/model"
	"github.com/reoring/golottie/schema"
)

// Options controls an import. The last Options passed wins.
type Options struct {
	// Parse is used by ImportBytes.
	Parse lottie.ParseOpt
	// SkipUnsupported drops unsupported layers, assets and blend modes with a
	// warning instead of failing.
	SkipUnsupported bool
	// IssueSink receives warnings. Parse.IssueSink falls back to it.
	IssueSink func(*lottie.Error)
}

func lastOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[len(opts)-1]
}

func (o Options) parseOpt() lottie.ParseOpt {
	p := o.Parse
	if p.IssueSink == nil {
		p.IssueSink = o.IssueSink
	}
	p.SkipUnsupported = p.SkipUnsupported || o.SkipUnsupported
	return p
}

// ImportBytes parses data as JSON and imports it.
func ImportBytes(data []byte, opts ...Options) (*model.Composition, error) {
	o := lastOptions(opts)
	doc, err := schema.FromBytes(data, o.parseOpt())
	if err != nil {
		return nil, err
	}
	return Import(doc, o)
}

// Import converts doc. It does not modify doc and can run concurrently with
// other imports.
func Import(doc *schema.Lottie, opts ...Options) (*model.Composition, error) {
	im := newImporter(lastOptions(opts))
	if doc.Name != nil {
		im.bc.RenameRoot(*doc.Name)
	}
	comp := &model.Composition{
		Frames:    model.Range{Start: model.Time(doc.InPoint), End: model.Time(doc.OutPoint)},
		FrameRate: doc.FrameRate,
		Width:     doc.Width,
		Height:    doc.Height,
		Assets:    map[string][]*model.Layer{},
	}
	for _, a := range doc.Assets {
		if err := im.asset(comp, a); err != nil {
			return nil, err
		}
	}
	layers, err := im.layers(doc.Layers)
	if err != nil {
		return nil, err
	}
	comp.Layers = layers
	return comp, nil
}

type importer struct {
	opt Options
	bc  *lottie.Breadcrumb
}

func newImporter(o Options) *importer {
	bc := lottie.NewBreadcrumb()
	bc.SetLogger(o.Parse.Logger)
	return &importer{opt: o, bc: bc}
}

func (im *importer) warn(e *lottie.Error) {
	if im.opt.IssueSink != nil {
		im.opt.IssueSink(e)
	}
}

// unsupported returns e, or nil after a warning when unsupported content is
// being skipped.
func (im *importer) unsupported(e *lottie.Error) error {
	if !im.opt.SkipUnsupported {
		return e
	}
	im.warn(e)
	return nil
}

func (im *importer) asset(comp *model.Composition, a schema.Asset) error {
	id := a.AssetID()
	defer im.bc.Enter(lottie.Asset, &id)()
	switch a := a.(type) {
	case *schema.PrecompositionAsset:
		layers, err := im.layers(a.Layers)
		if err != nil {
			return err
		}
		comp.Assets[a.ID] = layers
		return nil
	case *schema.ImageAsset:
		return im.unsupported(lottie.Unsupportedf(im.bc, "image asset %q", a.ID))
	default:
		return im.unsupported(lottie.Unsupportedf(im.bc, "asset %T", a))
	}
}

// link is what layers still needs once every ind of the composition is known.
type link struct {
	parent      *int
	matteParent *int
	matteMode   *model.BlendMode
}

// layers converts one composition's layer list.
func (im *importer) layers(src []schema.Layer) ([]*model.Layer, error) {
	out := make([]*model.Layer, 0, len(src))
	links := make([]link, 0, len(src))
	ids := map[int]int{}
	pendingMatte := -1

	for _, sl := range src {
		l, err := im.layer(sl)
		if err != nil {
			return nil, err
		}
		if l == nil {
			continue
		}
		c := sl.Common()
		index := len(out)
		lk := link{parent: c.Parent}
		if c.MatteMode != nil {
			lk.matteMode = MapMatteMode(*c.MatteMode)
		}
		matte := pendingMatte
		pendingMatte = -1
		switch {
		case lk.matteMode == nil:
		case c.MatteParent != nil:
			lk.matteParent = c.MatteParent
		case matte >= 0:
			l.MaskLayer = &model.MaskLayer{Mode: *lk.matteMode, Index: matte}
		}
		if l.IsMask {
			pendingMatte = index
		}
		ids[deref(c.Index)] = index
		out = append(out, l)
		links = append(links, lk)
	}

	for i, lk := range links {
		if lk.parent != nil {
			if p, ok := ids[*lk.parent]; ok {
				out[i].Parent = &p
			}
		}
		if lk.matteParent != nil {
			if m, ok := ids[*lk.matteParent]; ok {
				out[i].MaskLayer = &model.MaskLayer{Mode: *lk.matteMode, Index: m}
			}
		}
	}
	return out, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
