package anim

import (
	"github.com/allape/bongocat/bongo/geom"
	"github.com/allape/bongocat/bongo/input"
	"github.com/allape/bongocat/bongo/paths"
)

// parallax scales of whole-body movement per shape group
const (
	EyeScale   = 0.12
	MouthScale = 0.105
	BodyScale  = 0.04
	MouseScale = 1.0
)

var (
	// Start is where the body curve begins, it never moves.
	Start = geom.Point{X: 0.2, Y: -0.407}
	// ArmRest is the arm end point relative to Start the handles are designed around.
	ArmRest = geom.Point{X: -3.634, Y: 2.338}

	// body end point when the cursor sits in each monitor corner
	TopLeft     = geom.Point{X: -1.665, Y: 5.405}
	TopRight    = geom.Point{X: -8.363, Y: 2.681}
	BottomLeft  = geom.Point{X: 2.281, Y: 1.676}
	BottomRight = geom.Point{X: -5.605, Y: -0.051}

	// BodyClose is where the fill outline returns to before closing.
	BodyClose = geom.Point{X: -1.974, Y: -0.45}
	// PawMiddle is the paw tip of the pressing-down hand pose.
	PawMiddle = geom.Point{X: 6.858, Y: 5.153}
)

func Lerp(start, end, pos float64) float64 {
	return start*(1-pos) + end*pos
}

// LerpSkew
// Bilinear blend of four corner points. x runs left to right, y top to bottom,
// (0,0) yields topLeft and (1,1) yields bottomRight exactly.
func LerpSkew(topLeft, topRight, bottomLeft, bottomRight geom.Point, x, y float64) geom.Point {
	top := Lerp(topLeft.X, topRight.X, x)
	bottom := Lerp(bottomLeft.X, bottomRight.X, x)

	left := Lerp(topLeft.Y, bottomLeft.Y, y)
	right := Lerp(topRight.Y, bottomRight.Y, y)

	return geom.Point{
		X: Lerp(top, bottom, y),
		Y: Lerp(left, right, x),
	}
}

// ArmHandles are the bezier handles of the arm. Only the horizontal cursor
// fraction moves them, vertical input makes the handles look wonky.
type ArmHandles struct {
	Left  geom.Point
	Right geom.Point
	Elbow geom.Point
}

// Arm
// The farther left the cursor, the farther right the hand reaches.
func Arm(mouseX float64) ArmHandles {
	return ArmHandles{
		Left:  geom.Point{X: -2.424 + 2.0*mouseX, Y: 2.681 - 1.6*mouseX},
		Right: geom.Point{X: -1.09 - 1.0*mouseX, Y: 1.732 + 2.0*mouseX},
		Elbow: geom.Point{X: -5.165 - 1.5*mouseX, Y: 0.844 - 1.0*mouseX},
	}
}

// BodyEnd is the point the arm reaches to for the given cursor fraction.
func BodyEnd(c input.Cursor) geom.Point {
	return LerpSkew(TopLeft, TopRight, BottomLeft, BottomRight, c.X, c.Y)
}

type RandomSource interface {
	Intn(n int) int
}

// Frame
// Geometry of one rendered frame. Offsets are design-space translations
// applied to their shape groups.
type Frame struct {
	Cursor input.Cursor
	Input  input.InputState

	Arm     ArmHandles
	BodyEnd geom.Point
	Whole   geom.Point

	Eyes  geom.Point
	Mouth geom.Point
	Body  geom.Point
	Mouse geom.Point

	BodyFill   geom.Path
	BodyStroke geom.Path

	// Key is the index into paths.Keys drawn highlighted, -1 when no key is down.
	Key int
	// Paw is the pressing-down hand, nil when no key is down.
	Paw geom.Path
}

func (f Frame) Neutral() bool {
	return f.Key < 0
}

// Compute derives the frame geometry. rng is only consulted while a key is down.
func Compute(c input.Cursor, in input.InputState, rng RandomSource) Frame {
	f := Frame{
		Cursor:  c,
		Input:   in,
		Arm:     Arm(c.X),
		BodyEnd: BodyEnd(c),
		Key:     -1,
	}

	f.Whole = f.BodyEnd.Sub(Start.Add(ArmRest))
	f.Eyes = f.Whole.Mul(EyeScale)
	f.Mouth = f.Whole.Mul(MouthScale)
	f.Body = f.Whole.Mul(BodyScale)
	f.Mouse = f.Whole.Mul(MouseScale)

	segments := BodySegments(f.BodyEnd, f.Arm)
	f.BodyStroke = segments
	// the closing line is pulled back by the body offset so it stays put on screen
	f.BodyFill = segments.Append(geom.L(BodyClose.X-f.Body.X, BodyClose.Y-f.Body.Y), geom.Z())

	if in.Key && rng != nil && len(paths.Keys) > 0 {
		f.Key = rng.Intn(len(paths.Keys))
		f.Paw = PawDown(paths.Keys[f.Key].Bounds().Center())
	}

	return f
}

// BodySegments
// Outline of the body from Start, through the arm reaching to end, around the
// head and ears and down the back. The returned path is open.
func BodySegments(end geom.Point, arm ArmHandles) geom.Path {
	left := arm.Left.Sub(ArmRest)
	right := arm.Right.Sub(ArmRest)

	return geom.Path{
		geom.M(Start.X, Start.Y),
		geom.C(end.X+left.X, end.Y+left.Y, end.X+right.X, end.Y+right.Y, end.X, end.Y),
		geom.C(arm.Elbow.X, arm.Elbow.Y, -0.985, -5.213, 2.261, -5.721),
		geom.C(2.732, -6.014, 3.229, -6.891, 3.514, -6.899),
		geom.C(3.763, -6.887, 3.9997, -6.035, 4.257, -5.603),
		geom.C(5.875, -5.403, 7.987, -4.278, 9.31, -3.289),
		geom.C(9.449, -3.2, 10.763, -4.026, 11.005, -3.912),
		geom.C(11.182, -3.802, 11.078, -2.014, 10.467, -0.976),
		geom.C(10.996, -0.16, 11.772, 0.874, 11.793, 2.282),
	}
}

// PawDown is the hand pose pressing the key centered at keyCenter.
// Keys lower on the keyboard stretch the hand further.
func PawDown(keyCenter geom.Point) geom.Path {
	d := keyCenter.Sub(PawMiddle)
	scale := keyCenter.Y/5 + 0.5

	return geom.Path{
		geom.M(9.988, 0.782),
		geom.C(10.523, 2.788, 8.389+d.X*scale, 5.554+d.Y, PawMiddle.X+d.X, PawMiddle.Y+d.Y),
		geom.C(5.969+d.X*scale, 4.923+d.Y, 6.05, 2.833, 7.016, 1.288),
	}
}
