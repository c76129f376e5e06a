package model

import "math"

// Transform is an animated 2D transform. Scale is a factor (1 = 100%).
// Rotation, Skew and SkewAngle are in degrees.
type Transform struct {
	Anchor    Value[Point]
	Position  Position
	Scale     Value[Vec2]
	Rotation  Value[float64]
	Skew      Value[float64]
	SkewAngle Value[float64]
}

// Position is either a point value or separate x/y values.
type Position struct {
	Value Value[Point]
	// Split selects X and Y over Value.
	Split bool
	X, Y  Value[float64]
}

// PointPosition returns a combined position.
func PointPosition(v Value[Point]) Position { return Position{Value: v} }

// SplitPosition returns a position animated per axis.
func SplitPosition(x, y Value[float64]) Position { return Position{Split: true, X: x, Y: y} }

// At samples the position at frame.
func (p Position) At(frame Time) Point {
	if p.Split {
		return Point{Sample(p.X, frame, LerpFloat), Sample(p.Y, frame, LerpFloat)}
	}
	return Sample(p.Value, frame, LerpPoint)
}

// Affine is a 2x3 matrix [a b c d e f] mapping (x, y) to
// (a*x + c*y + e, b*x + d*y + f).
type Affine [6]float64

// Identity is the identity matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Mul returns m followed by n applied after it (n * m).
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		n[0]*m[0] + n[2]*m[1],
		n[1]*m[0] + n[3]*m[1],
		n[0]*m[2] + n[2]*m[3],
		n[1]*m[2] + n[3]*m[3],
		n[0]*m[4] + n[2]*m[5] + n[4],
		n[1]*m[4] + n[3]*m[5] + n[5],
	}
}

// Apply maps p through m.
func (m Affine) Apply(p Point) Point {
	return Point{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

func translate(x, y float64) Affine { return Affine{1, 0, 0, 1, x, y} }

func rotate(deg float64) Affine {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Affine{c, s, -s, c, 0, 0}
}

// At evaluates the transform at frame: anchor offset, scale, skew, rotation,
// then position.
func (t Transform) At(frame Time) Affine {
	anchor := Sample(t.Anchor, frame, LerpPoint)
	scale := Sample(t.Scale, frame, LerpVec2)
	m := translate(-anchor.X, -anchor.Y)
	m = m.Mul(Affine{scale.X, 0, 0, scale.Y, 0, 0})
	if skew := Sample(t.Skew, frame, LerpFloat); skew != 0 {
		axis := Sample(t.SkewAngle, frame, LerpFloat)
		m = m.Mul(rotate(-axis))
		m = m.Mul(Affine{1, 0, math.Tan(-skew * math.Pi / 180), 1, 0, 0})
		m = m.Mul(rotate(axis))
	}
	m = m.Mul(rotate(Sample(t.Rotation, frame, LerpFloat)))
	pos := t.Position.At(frame)
	return m.Mul(translate(pos.X, pos.Y))
}
