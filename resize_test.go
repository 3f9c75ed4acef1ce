package brochure

import (
	"math"
	"testing"
)

const eps = 0.001

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestScaleFactors(t *testing.T) {
	a4 := Size{Width: 794, Height: 1123}
	insta := Size{Width: 1080, Height: 1080}

	s := Scale(a4, insta)
	if !near(s.ScaleX, 1080.0/794.0) {
		t.Errorf("unexpected ScaleX: %v", s.ScaleX)
	}
	if !near(s.ScaleY, 1080.0/1123.0) {
		t.Errorf("unexpected ScaleY: %v", s.ScaleY)
	}
	if s.Uniform != s.ScaleY {
		t.Errorf("Uniform should be the smaller factor, got %v", s.Uniform)
	}
	if s.Fill != s.ScaleX {
		t.Errorf("Fill should be the larger factor, got %v", s.Fill)
	}
}

func TestResizeStretch(t *testing.T) {
	from := Size{Width: 1000, Height: 500}
	to := Size{Width: 2000, Height: 250}
	elements := []Element{
		{X: 100, Y: 200, Width: 300, Height: 100, Kind: ImageElement},
		{X: 0, Y: 0, Width: 1000, Height: 500, Kind: ShapeElement},
	}

	resized, err := Resize(from, to, elements, Stretch)
	if err != nil {
		t.Fatal(err)
	}

	// width'/width == scaleX and height'/height == scaleY, exactly
	for i, e := range resized {
		if e.Width/elements[i].Width != 2.0 {
			t.Errorf("element %d: width not scaled by scaleX: %v", i, e.Width)
		}
		if e.Height/elements[i].Height != 0.5 {
			t.Errorf("element %d: height not scaled by scaleY: %v", i, e.Height)
		}
	}

	if resized[0].X != 200 || resized[0].Y != 100 {
		t.Errorf("unexpected position: %v,%v", resized[0].X, resized[0].Y)
	}
	if resized[0].Kind != ImageElement {
		t.Errorf("kind not preserved")
	}
}

func TestResizeFitRoundTrip(t *testing.T) {
	// equal aspect ratio, so fit is exactly invertible
	from := Size{Width: 794, Height: 1123}
	to := Size{Width: 397, Height: 561.5}
	elements := []Element{
		{X: 100, Y: 250, Width: 300, Height: 120, Kind: TextElement},
		{X: 700, Y: 1000, Width: 50, Height: 80, Kind: ImageElement},
	}

	down, err := Resize(from, to, elements, Fit)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Resize(to, from, down, Fit)
	if err != nil {
		t.Fatal(err)
	}

	for i, e := range back {
		o := elements[i]
		if !near(e.X, o.X) || !near(e.Y, o.Y) || !near(e.Width, o.Width) || !near(e.Height, o.Height) {
			t.Errorf("element %d not restored: %+v != %+v", i, e, o)
		}
	}
}

func TestResizeSmartCentered(t *testing.T) {
	// A4 portrait to Instagram post, horizontally centered element
	from := Size{Width: 794, Height: 1123}
	to := Size{Width: 1080, Height: 1080}
	uniform := 1080.0 / 1123.0

	elements := []Element{
		{X: 347, Y: 10, Width: 100, Height: 50},
		{X: 372, Y: 10, Width: 50, Height: 50},
	}

	resized, err := Resize(from, to, elements, Smart)
	if err != nil {
		t.Fatal(err)
	}

	// centered elements are re-centered on the target
	e := resized[0]
	if !near(e.Width, 100*uniform) {
		t.Errorf("unexpected width: %v", e.Width)
	}
	if !near(e.X, (1080-100*uniform)/2) {
		t.Errorf("unexpected x: %v", e.X)
	}
	// top edge far from the bottom, so y scales proportionally
	if !near(e.Y, 10*(1080.0/1123.0)) {
		t.Errorf("unexpected y: %v", e.Y)
	}

	e = resized[1]
	if !near(e.X, 515.957) {
		t.Errorf("unexpected x: %v", e.X)
	}
}

func TestResizeSmartEdgeAnchored(t *testing.T) {
	from := Size{Width: 1000, Height: 1000}
	to := Size{Width: 500, Height: 500}

	// 20px from the right edge, more than 50px above the bottom
	elements := []Element{{X: 900, Y: 100, Width: 80, Height: 40}}

	resized, err := Resize(from, to, elements, Smart)
	if err != nil {
		t.Fatal(err)
	}

	e := resized[0]
	// edge distance scales with the target: 500 - 40 - 20*0.5
	if !near(e.X, 450) {
		t.Errorf("unexpected x: %v", e.X)
	}
	if !near(e.Y, 50) {
		t.Errorf("unexpected y: %v", e.Y)
	}
}

func TestResizeSmartClamp(t *testing.T) {
	from := Size{Width: 1080, Height: 1080}
	to := Size{Width: 336, Height: 192}

	elements := []Element{
		{X: 0, Y: 0, Width: 400, Height: 300},
		{X: 700, Y: 700, Width: 350, Height: 350},
		{X: 340, Y: 500, Width: 400, Height: 80},
		{X: 1000, Y: 20, Width: 60, Height: 60},
	}

	resized, err := Resize(from, to, elements, Smart)
	if err != nil {
		t.Fatal(err)
	}

	for i, e := range resized {
		if e.X < 0 || e.Y < 0 {
			t.Errorf("element %d outside canvas: %v,%v", i, e.X, e.Y)
		}
		if e.X+e.Width > to.Width {
			t.Errorf("element %d overflows right edge: %v", i, e.X+e.Width)
		}
		if e.Y+e.Height > to.Height {
			t.Errorf("element %d overflows bottom edge: %v", i, e.Y+e.Height)
		}
	}
}

func TestResizeInvalidDimensions(t *testing.T) {
	good := Size{Width: 100, Height: 100}

	_, err := Resize(Size{}, good, nil, Smart)
	if err == nil {
		t.Error("expected error for zero source dimensions")
	}

	_, err = Resize(good, Size{Width: 100, Height: -1}, nil, Fit)
	if err == nil {
		t.Error("expected error for negative target dimensions")
	}
}

func TestResizeDoesNotModifyInput(t *testing.T) {
	from := Size{Width: 100, Height: 100}
	to := Size{Width: 200, Height: 200}
	elements := []Element{{X: 10, Y: 10, Width: 20, Height: 20}}

	_, err := Resize(from, to, elements, Stretch)
	if err != nil {
		t.Fatal(err)
	}

	if elements[0].X != 10 || elements[0].Width != 20 {
		t.Errorf("input element was modified: %+v", elements[0])
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		name string
		mode Mode
	}{
		{"smart", Smart},
		{"stretch", Stretch},
		{"fit", Fit},
	}

	for _, c := range cases {
		m, err := ParseMode(c.name)
		if err != nil {
			t.Fatal(err)
		}
		if m != c.mode {
			t.Errorf("%q parsed to %v", c.name, m)
		}
		if m.String() != c.name {
			t.Errorf("%v prints as %q", c.mode, m.String())
		}
	}

	_, err := ParseMode("squash")
	if err == nil {
		t.Error("expected error for unknown mode")
	}
}
