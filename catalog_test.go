package brochure

import (
	"testing"
)

func TestGraphicCatalog(t *testing.T) {
	for _, g := range AllGraphics() {
		// exactly one spec variant per entry, matching the kind
		set := 0
		if g.Shape != nil {
			set++
			if g.Kind != ShapeGraphic {
				t.Errorf("%q: shape spec on kind %v", g.ID, g.Kind)
			}
		}
		if g.Decorative != nil {
			set++
			if g.Kind != DecorativeGraphic {
				t.Errorf("%q: decorative spec on kind %v", g.ID, g.Kind)
			}
		}
		if g.Grid != nil {
			set++
			if g.Kind != GridGraphic {
				t.Errorf("%q: grid spec on kind %v", g.ID, g.Kind)
			}
		}
		if set != 1 {
			t.Errorf("%q: %d spec variants set", g.ID, set)
		}
	}

	g, err := GetGraphic("hexagon")
	if err != nil {
		t.Fatal(err)
	}
	if g.Shape == nil || g.Shape.Sides != 6 {
		t.Errorf("unexpected hexagon spec: %+v", g.Shape)
	}

	_, err = GetGraphic("octagon")
	if !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestTextStyleCatalog(t *testing.T) {
	s, err := GetTextStyle("headline")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Bold || s.Size != 28 {
		t.Errorf("unexpected headline style: %+v", s)
	}

	for _, s := range AllTextStyles() {
		if s.Font == "" || s.Size <= 0 {
			t.Errorf("invalid text style %q", s.ID)
		}
	}
}

func TestPaletteCatalog(t *testing.T) {
	p, err := GetPalette("classic")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Colors) < 3 {
		t.Errorf("classic palette too short: %v", p.Colors)
	}

	for _, p := range AllPalettes() {
		for _, c := range p.Colors {
			if len(c) != 7 || c[0] != '#' {
				t.Errorf("palette %q has malformed color %q", p.ID, c)
			}
		}
	}
}

func TestFrameCatalog(t *testing.T) {
	f, err := GetFrameStyle("double")
	if err != nil {
		t.Fatal(err)
	}
	if !f.Double || f.Width != 1.5 {
		t.Errorf("unexpected double frame: %+v", f)
	}

	none, err := GetFrameStyle("none")
	if err != nil {
		t.Fatal(err)
	}
	if none.Width != 0 {
		t.Errorf("the none frame should not draw: %+v", none)
	}
}
