package model

import (
	"errors"
	"fmt"
	"math"
)

// Time is a frame number.
type Time float64

// Range is a half-open frame interval.
type Range struct {
	Start, End Time
}

// Contains reports whether f lies in [Start, End).
func (r Range) Contains(f Time) bool { return f >= r.Start && f < r.End }

// Len returns End - Start.
func (r Range) Len() Time { return r.End - r.Start }

type Point struct{ X, Y float64 }

type Vec2 struct{ X, Y float64 }

type Size struct{ Width, Height float64 }

// Color is straight (not premultiplied) RGBA with components in 0..1.
type Color struct{ R, G, B, A float64 }

// ColorStop is one gradient stop.
type ColorStop struct {
	Offset float32
	Color  Color
}

// ErrInvalidKeyframes is returned by NewAnimated when times and values do
// not line up or times go backwards.
var ErrInvalidKeyframes = errors.New("model: invalid keyframes")

// Animated holds parallel keyframe times and values.
type Animated[T any] struct {
	Times  []Time
	Values []T
}

// Value is a property that is either fixed or keyframed. Animated is nil for
// fixed values.
type Value[T any] struct {
	Fixed    T
	Animated *Animated[T]
}

// Fixed returns a constant value.
func Fixed[T any](v T) Value[T] { return Value[T]{Fixed: v} }

// NewAnimated returns a keyframed value. len(times) must equal len(values)
// and times must be non-decreasing.
func NewAnimated[T any](times []Time, values []T) (Value[T], error) {
	if len(times) != len(values) {
		return Value[T]{}, fmt.Errorf("%w: %d times, %d values", ErrInvalidKeyframes, len(times), len(values))
	}
	if len(times) > 0 && math.IsNaN(float64(times[0])) {
		return Value[T]{}, fmt.Errorf("%w: time NaN at 0", ErrInvalidKeyframes)
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] || math.IsNaN(float64(times[i])) {
			return Value[T]{}, fmt.Errorf("%w: time %v at %d precedes %v", ErrInvalidKeyframes, times[i], i, times[i-1])
		}
	}
	return Value[T]{Animated: &Animated[T]{Times: times, Values: values}}, nil
}

// IsFixed reports whether v has no keyframes.
func (v Value[T]) IsFixed() bool { return v.Animated == nil }

// Map converts every value of v with f, keeping the times.
func Map[T, U any](v Value[T], f func(T) U) Value[U] {
	if v.Animated == nil {
		return Fixed(f(v.Fixed))
	}
	values := make([]U, len(v.Animated.Values))
	for i, x := range v.Animated.Values {
		values[i] = f(x)
	}
	return Value[U]{Animated: &Animated[U]{Times: v.Animated.Times, Values: values}}
}

// Sample evaluates v at frame, interpolating linearly between the bracketing
// keyframes with lerp. Frames outside the keyframe range clamp to the first
// or last value. An animated value without keyframes samples as v.Fixed.
func Sample[T any](v Value[T], frame Time, lerp func(a, b T, t float64) T) T {
	a := v.Animated
	if a == nil || len(a.Values) == 0 {
		return v.Fixed
	}
	last := len(a.Values) - 1
	if frame <= a.Times[0] {
		return a.Values[0]
	}
	if frame >= a.Times[last] {
		return a.Values[last]
	}
	for i := 0; i < last; i++ {
		t0, t1 := a.Times[i], a.Times[i+1]
		if frame < t0 || frame >= t1 {
			continue
		}
		d := t1 - t0
		if d == 0 {
			return a.Values[i+1]
		}
		return lerp(a.Values[i], a.Values[i+1], float64((frame-t0)/d))
	}
	return a.Values[last]
}

func LerpFloat(a, b, t float64) float64 { return a + (b-a)*t }

func LerpPoint(a, b Point, t float64) Point {
	return Point{LerpFloat(a.X, b.X, t), LerpFloat(a.Y, b.Y, t)}
}

func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{LerpFloat(a.X, b.X, t), LerpFloat(a.Y, b.Y, t)}
}

func LerpSize(a, b Size, t float64) Size {
	return Size{LerpFloat(a.Width, b.Width, t), LerpFloat(a.Height, b.Height, t)}
}

func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: LerpFloat(a.R, b.R, t),
		G: LerpFloat(a.G, b.G, t),
		B: LerpFloat(a.B, b.B, t),
		A: LerpFloat(a.A, b.A, t),
	}
}

// LerpPoints interpolates point lists pairwise. Extra points of the longer
// list are taken from b.
func LerpPoints(a, b []Point, t float64) []Point {
	out := make([]Point, len(b))
	for i := range b {
		if i < len(a) {
			out[i] = LerpPoint(a[i], b[i], t)
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// LerpStops interpolates gradient stops pairwise, like LerpPoints.
func LerpStops(a, b []ColorStop, t float64) []ColorStop {
	out := make([]ColorStop, len(b))
	for i := range b {
		if i < len(a) {
			out[i] = ColorStop{
				Offset: float32(LerpFloat(float64(a[i].Offset), float64(b[i].Offset), t)),
				Color:  LerpColor(a[i].Color, b[i].Color, t),
			}
		} else {
			out[i] = b[i]
		}
	}
	return out
}
