package lottie

import (
	"log/slog"
	"strconv"
	"strings"
)

// ValueType names the kind of document node a breadcrumb segment stands for,
// or the JSON shape an extraction expected.
type ValueType int

const (
	Unknown ValueType = iota
	Root
	Asset
	Layer
	Shape
	Transform
	Mask
	Property
	Keyframe
	Bezier
	Gradient
	Dash
	String
	Number
	Bool
	BoolInt
	Array
	Object
	EnumInt
	EnumStr
	StaticNumber
	StaticVector
	Color
)

var valueTypeNames = [...]string{
	Unknown:      "Unknown",
	Root:         "Root",
	Asset:        "Asset",
	Layer:        "Layer",
	Shape:        "Shape",
	Transform:    "Transform",
	Mask:         "Mask",
	Property:     "Property",
	Keyframe:     "Keyframe",
	Bezier:       "Bezier",
	Gradient:     "Gradient",
	Dash:         "Dash",
	String:       "String",
	Number:       "Number",
	Bool:         "Bool",
	BoolInt:      "BoolInt",
	Array:        "Array",
	Object:       "Object",
	EnumInt:      "EnumInt",
	EnumStr:      "EnumStr",
	StaticNumber: "StaticNumber",
	StaticVector: "StaticVector",
	Color:        "Color",
}

func (v ValueType) String() string {
	if v >= 0 && int(v) < len(valueTypeNames) {
		return valueTypeNames[v]
	}
	return "ValueType(" + strconv.Itoa(int(v)) + ")"
}

// Segment is one level of a Breadcrumb.
type Segment struct {
	// Name is nil for unnamed segments.
	Name *string
	Kind ValueType
	// Pos is the 1-based occurrence of this segment among its siblings.
	Pos int
	// Children counts the children entered below this segment so far.
	Children int
}

// Breadcrumb tracks where in a document a parser currently is.
//
// A Breadcrumb is owned by a single parse call and must not be shared across
// goroutines. The zero value renders as "(root)"; use NewBreadcrumb for one
// that can be entered.
type Breadcrumb struct {
	segs   []Segment
	logger *slog.Logger
}

// NewBreadcrumb returns a breadcrumb holding only the unnamed root.
func NewBreadcrumb() *Breadcrumb {
	return &Breadcrumb{segs: []Segment{{Kind: Root}}}
}

// SetLogger enables debug tracing of enter/exit through l. Nil disables it.
func (b *Breadcrumb) SetLogger(l *slog.Logger) { b.logger = l }

// Enter pushes a child segment under the current top and returns a guard that
// pops it again:
//
//	defer bc.Enter(lottie.Layer, name)()
func (b *Breadcrumb) Enter(kind ValueType, name *string) func() {
	if len(b.segs) == 0 {
		b.segs = append(b.segs, Segment{Kind: Root})
	}
	parent := &b.segs[len(b.segs)-1]
	parent.Children++
	seg := Segment{Kind: kind, Pos: parent.Children}
	if name != nil {
		n := *name
		seg.Name = &n
	}
	b.segs = append(b.segs, seg)
	if b.logger != nil {
		b.logger.Debug("breadcrumb enter", slog.String("path", b.String()))
	}
	return b.Exit
}

// EnterUnnamed is Enter without a name.
func (b *Breadcrumb) EnterUnnamed(kind ValueType) func() { return b.Enter(kind, nil) }

// Exit pops the top segment. Popping the root is a programming error and panics.
func (b *Breadcrumb) Exit() {
	if len(b.segs) <= 1 {
		panic("lottie: breadcrumb exit on root")
	}
	if b.logger != nil {
		b.logger.Debug("breadcrumb exit", slog.String("path", b.String()))
	}
	b.segs = b.segs[:len(b.segs)-1]
}

// RenameRoot relabels the root once the document name is known.
func (b *Breadcrumb) RenameRoot(name string) {
	if len(b.segs) == 0 {
		b.segs = append(b.segs, Segment{Kind: Root})
	}
	b.segs[0].Name = &name
}

// Len returns the number of segments including the root.
func (b *Breadcrumb) Len() int {
	if b == nil || len(b.segs) == 0 {
		return 1
	}
	return len(b.segs)
}

// Segments returns a copy of the current segments, root first.
func (b *Breadcrumb) Segments() []Segment {
	if b == nil || len(b.segs) == 0 {
		return []Segment{{Kind: Root}}
	}
	return append([]Segment(nil), b.segs...)
}

// Snapshot returns an independent copy that later Enter/Exit calls on b do
// not affect.
func (b *Breadcrumb) Snapshot() Breadcrumb {
	if b == nil {
		return Breadcrumb{}
	}
	return Breadcrumb{segs: append([]Segment(nil), b.segs...)}
}

// String renders the path, e.g. (root)>"Group"#2>(unnamed Shape).
func (b *Breadcrumb) String() string {
	if b == nil || len(b.segs) == 0 {
		return "(root)"
	}
	var sb strings.Builder
	if n := b.segs[0].Name; n != nil {
		sb.WriteString(`"` + *n + `"`)
	} else {
		sb.WriteString("(root)")
	}
	for _, s := range b.segs[1:] {
		sb.WriteByte('>')
		if s.Name != nil {
			sb.WriteString(`"` + *s.Name + `"`)
		} else {
			sb.WriteString("(unnamed " + s.Kind.String() + ")")
		}
		if s.Pos > 1 {
			sb.WriteString("#" + strconv.Itoa(s.Pos))
		}
	}
	return sb.String()
}
