package model

// PathElKind is the verb of a path element.
type PathElKind int

const (
	MoveTo PathElKind = iota
	LineTo
	CurveTo
	ClosePath
)

func (k PathElKind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CurveTo:
		return "CurveTo"
	default:
		return "ClosePath"
	}
}

// PathEl is one path element. MoveTo and LineTo use P[0]; CurveTo uses
// P[0] and P[1] as control points and P[2] as the end point.
type PathEl struct {
	Kind PathElKind
	P    [3]Point
}

type Path []PathEl

// SplineToPath builds a cubic path from (vertex, in, out) triples whose
// tangents are relative to their vertex. Segments whose tangents are both
// zero become lines. A trailing partial triple is ignored.
func SplineToPath(points []Point, closed bool) Path {
	n := len(points) / 3
	if n == 0 {
		return nil
	}
	path := Path{{Kind: MoveTo, P: [3]Point{points[0]}}}
	segment := func(from, to int) {
		p0, out := points[3*from], points[3*from+2]
		p1, in := points[3*to], points[3*to+1]
		if out == (Point{}) && in == (Point{}) {
			path = append(path, PathEl{Kind: LineTo, P: [3]Point{p1}})
			return
		}
		path = append(path, PathEl{Kind: CurveTo, P: [3]Point{
			{p0.X + out.X, p0.Y + out.Y},
			{p1.X + in.X, p1.Y + in.Y},
			p1,
		}})
	}
	for i := 1; i < n; i++ {
		segment(i-1, i)
	}
	if closed {
		segment(n-1, 0)
		path = append(path, PathEl{Kind: ClosePath})
	}
	return path
}
