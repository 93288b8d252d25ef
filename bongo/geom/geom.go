package geom

import (
	"math"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpCubicTo
	OpClose
)

// Segment
// One path command. MoveTo and LineTo use Points[0], CubicTo uses all three
// (two handles then the end point), Close uses none.
type Segment struct {
	Op     Op
	Points [3]Point
}

func M(x, y float64) Segment {
	return Segment{Op: OpMoveTo, Points: [3]Point{{X: x, Y: y}}}
}

func L(x, y float64) Segment {
	return Segment{Op: OpLineTo, Points: [3]Point{{X: x, Y: y}}}
}

func C(x1, y1, x2, y2, x3, y3 float64) Segment {
	return Segment{Op: OpCubicTo, Points: [3]Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}}
}

func Z() Segment {
	return Segment{Op: OpClose}
}

func (s Segment) points() []Point {
	switch s.Op {
	case OpMoveTo, OpLineTo:
		return s.Points[:1]
	case OpCubicTo:
		return s.Points[:]
	}
	return nil
}

type Path []Segment

// Append returns a new path, p is never modified.
func (p Path) Append(segments ...Segment) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	return append(out, segments...)
}

type Rect struct {
	Min, Max Point
}

func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Empty() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// Bounds
// Bounding box of every point in the path, control handles included.
// An empty path yields an empty Rect.
func (p Path) Bounds() Rect {
	r := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, s := range p {
		for _, pt := range s.points() {
			r.Min.X = math.Min(r.Min.X, pt.X)
			r.Min.Y = math.Min(r.Min.Y, pt.Y)
			r.Max.X = math.Max(r.Max.X, pt.X)
			r.Max.Y = math.Max(r.Max.Y, pt.Y)
		}
	}
	return r
}

// Transform
// Uniform scale followed by a translation: p' = p*Scale + (X, Y).
type Transform struct {
	Scale float64
	X, Y  float64
}

func Identity() Transform {
	return Transform{Scale: 1}
}

func (t Transform) Apply(p Point) Point {
	return Point{X: p.X*t.Scale + t.X, Y: p.Y*t.Scale + t.Y}
}

// PreTranslate moves the input space by (dx, dy) before the transform is applied.
func (t Transform) PreTranslate(dx, dy float64) Transform {
	t.X += dx * t.Scale
	t.Y += dy * t.Scale
	return t
}

// PostTranslate moves the output space by (dx, dy).
func (t Transform) PostTranslate(dx, dy float64) Transform {
	t.X += dx
	t.Y += dy
	return t
}

func (t Transform) PostScale(k float64) Transform {
	return Transform{Scale: t.Scale * k, X: t.X * k, Y: t.Y * k}
}

func (t Transform) ApplyPath(p Path) Path {
	out := make(Path, len(p))
	for i, s := range p {
		out[i] = s
		for j := range s.points() {
			out[i].Points[j] = t.Apply(s.Points[j])
		}
	}
	return out
}
