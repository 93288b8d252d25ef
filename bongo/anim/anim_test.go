package anim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/allape/bongocat/bongo/geom"
	"github.com/allape/bongocat/bongo/input"
	"github.com/allape/bongocat/bongo/paths"
)

type sequence struct {
	values []int
	next   int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestLerpSkewCorners(t *testing.T) {
	cases := []struct {
		x, y float64
		want geom.Point
	}{
		{0, 0, TopLeft},
		{1, 0, TopRight},
		{0, 1, BottomLeft},
		{1, 1, BottomRight},
	}
	for _, c := range cases {
		got := LerpSkew(TopLeft, TopRight, BottomLeft, BottomRight, c.x, c.y)
		if got != c.want {
			t.Fatalf("(%v, %v): expected %v, got %v", c.x, c.y, c.want, got)
		}
	}
}

func TestLerpSkewContinuous(t *testing.T) {
	const eps = 1e-6
	for range 10_000 {
		x, y := rand.Float64(), rand.Float64()
		a := LerpSkew(TopLeft, TopRight, BottomLeft, BottomRight, x, y)
		b := LerpSkew(TopLeft, TopRight, BottomLeft, BottomRight, x+eps, y+eps)
		if math.Hypot(a.X-b.X, a.Y-b.Y) > 1e-4 {
			t.Fatalf("jump at (%v, %v): %v -> %v", x, y, a, b)
		}
	}
}

func TestLerpSkewCenter(t *testing.T) {
	got := LerpSkew(geom.Point{}, geom.Point{X: 2}, geom.Point{Y: 2}, geom.Point{X: 2, Y: 2}, 0.5, 0.5)
	if got != (geom.Point{X: 1, Y: 1}) {
		t.Fatalf("expected (1, 1), got %v", got)
	}
}

func TestBodyEndAtCorners(t *testing.T) {
	if got := Compute(input.Cursor{X: 0, Y: 0}, input.InputState{}, nil).BodyEnd; got != TopLeft {
		t.Fatalf("expected %v, got %v", TopLeft, got)
	}
	if got := Compute(input.Cursor{X: 1, Y: 1}, input.InputState{}, nil).BodyEnd; got != BottomRight {
		t.Fatalf("expected %v, got %v", BottomRight, got)
	}
}

func TestArmIgnoresVertical(t *testing.T) {
	a := Compute(input.Cursor{X: 0.3, Y: 0}, input.InputState{}, nil)
	b := Compute(input.Cursor{X: 0.3, Y: 1}, input.InputState{}, nil)
	if a.Arm != b.Arm {
		t.Fatalf("expected equal arm handles, got %+v and %+v", a.Arm, b.Arm)
	}
}

func TestParallaxOffsets(t *testing.T) {
	f := Compute(input.Cursor{X: 0.8, Y: 0.1}, input.InputState{}, nil)

	whole := f.BodyEnd.Sub(Start.Add(ArmRest))
	if f.Whole != whole {
		t.Fatalf("expected whole offset %v, got %v", whole, f.Whole)
	}
	checks := map[string][2]geom.Point{
		"eyes":  {f.Eyes, whole.Mul(0.12)},
		"mouth": {f.Mouth, whole.Mul(0.105)},
		"body":  {f.Body, whole.Mul(0.04)},
		"mouse": {f.Mouse, whole},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Fatalf("%s: expected %v, got %v", name, c[1], c[0])
		}
	}
}

func TestBodyPathsShareSegments(t *testing.T) {
	f := Compute(input.Cursor{X: 0.5, Y: 0.5}, input.InputState{}, nil)

	if len(f.BodyFill) != len(f.BodyStroke)+2 {
		t.Fatalf("expected fill to extend stroke by 2 segments, got %d and %d", len(f.BodyFill), len(f.BodyStroke))
	}
	for i := range f.BodyStroke {
		if f.BodyFill[i] != f.BodyStroke[i] {
			t.Fatalf("segment %d differs between fill and stroke", i)
		}
	}
	if f.BodyFill[len(f.BodyFill)-1].Op != geom.OpClose {
		t.Fatal("expected fill path to be closed")
	}
	if f.BodyStroke[len(f.BodyStroke)-1].Op == geom.OpClose {
		t.Fatal("expected stroke path to stay open")
	}
	if end := f.BodyStroke[1].Points[2]; end != f.BodyEnd {
		t.Fatalf("expected arm curve to end at %v, got %v", f.BodyEnd, end)
	}

	closing := f.BodyFill[len(f.BodyFill)-2].Points[0]
	if !near(closing.Add(f.Body), BodyClose) {
		t.Fatalf("expected closing point to cancel the body offset, got %v", closing)
	}
}

func TestNeutralFrame(t *testing.T) {
	f := Compute(input.Cursor{X: 0.5, Y: 0.5}, input.InputState{Left: true}, &sequence{values: []int{3}})
	if !f.Neutral() || f.Paw != nil {
		t.Fatalf("expected neutral pose without key, got key %d", f.Key)
	}
}

func TestKeyFrameUsesRandomSource(t *testing.T) {
	rng := &sequence{values: []int{4, 11}}
	in := input.InputState{Key: true}

	for _, want := range []int{4, 11, 4} {
		f := Compute(input.Cursor{X: 0.5, Y: 0.5}, in, rng)
		if f.Key != want {
			t.Fatalf("expected key %d, got %d", want, f.Key)
		}
		center := paths.Keys[want].Bounds().Center()
		tip := f.Paw[1].Points[2]
		if !near(tip, center) {
			t.Fatalf("expected paw tip at key center %v, got %v", center, tip)
		}
	}
}

func TestKeySelectionUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	in := input.InputState{Key: true}

	n := len(paths.Keys)
	const draws = 150_000
	counts := make([]int, n)
	for range draws {
		counts[Compute(input.Cursor{}, in, rng).Key]++
	}

	expected := float64(draws) / float64(n)
	for i, c := range counts {
		if math.Abs(float64(c)-expected) > expected*0.1 {
			t.Fatalf("key %d drawn %d times, expected about %.0f", i, c, expected)
		}
	}
}

func TestKeySelectionIndependentOfPhysicalKey(t *testing.T) {
	physical := [][]input.Key{{"A"}, {"Space"}, {"Digit7"}, {"Q", "LeftShift"}}

	var first []int
	for i, keys := range physical {
		in := input.StateOf(input.Sample{Keys: keys})
		rng := rand.New(rand.NewSource(7))

		var picks []int
		for range 64 {
			picks = append(picks, Compute(input.Cursor{X: 0.2, Y: 0.9}, in, rng).Key)
		}

		if i == 0 {
			first = picks
			continue
		}
		for j := range picks {
			if picks[j] != first[j] {
				t.Fatalf("%v: selection depends on the physical key", keys)
			}
		}
	}
}

func TestOutOfRangeCursor(t *testing.T) {
	for _, c := range []input.Cursor{{X: -2, Y: 3}, {X: 5, Y: -5}, {X: 1e6, Y: -1e6}} {
		f := Compute(c, input.InputState{Key: true}, rand.New(rand.NewSource(1)))
		for _, p := range []geom.Point{f.BodyEnd, f.Whole, f.Eyes, f.Arm.Elbow} {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				t.Fatalf("%+v: non-finite geometry %v", c, p)
			}
		}
	}
}
