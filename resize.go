package brochure

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/propsheet/brochure/internal/logging"
)

// Mode selects the resize policy.
type Mode int

const (
	// Smart repositions centered and edge-anchored elements before
	// falling back to proportional scaling. This is the default.
	Smart Mode = iota
	// Stretch scales x and y independently. Does not preserve aspect
	// ratio; acceptable for full-bleed backgrounds.
	Stretch
	// Fit applies the uniform (minimum) scale factor to all fields.
	// Preserves aspect ratio, does not reposition.
	Fit
)

// edgeMargin is the fixed margin, in pixels, applied when a resized
// element is clamped back into the target canvas.
const edgeMargin = 10.0

// centerBandLow/High bound the "visually centered" band: an element
// whose center falls between 40% and 60% of the source dimension is
// re-centered on the target canvas.
const (
	centerBandLow  = 0.4
	centerBandHigh = 0.6
)

// edgeThreshold is the distance, in source pixels, below which an
// element counts as anchored to the far edge.
const edgeThreshold = 50.0

// ScaleFactors are the derived factors for one from→to dimension pair.
type ScaleFactors struct {
	ScaleX  float64
	ScaleY  float64
	Uniform float64
	Fill    float64
}

// Scale computes the scale factors for resizing from one canvas size
// to another. Both sizes must have positive dimensions.
func Scale(from, to Size) ScaleFactors {
	sx := to.Width / from.Width
	sy := to.Height / from.Height

	uniform := sx
	fill := sy
	if sy < sx {
		uniform = sy
		fill = sx
	}

	return ScaleFactors{
		ScaleX:  sx,
		ScaleY:  sy,
		Uniform: uniform,
		Fill:    fill,
	}
}

// Resize adapts the given elements from one canvas size to another,
// according to the given mode.
//
// The result is a new slice of the same length and order; the input
// elements are not modified. Element positions are not validated, they
// may lie outside the source canvas.
//
// Resize does not enforce a minimum element size: scaling to a much
// smaller target shrinks elements proportionally.
func Resize(from, to Size, elements []Element, mode Mode) ([]Element, error) {
	err := from.Validate()
	if err != nil {
		return nil, Wrap(err, "invalid source dimensions")
	}
	err = to.Validate()
	if err != nil {
		return nil, Wrap(err, "invalid target dimensions")
	}

	s := Scale(from, to)
	logging.Debug("Resize %vx%v -> %vx%v (mode=%v, %d elements)",
		from.Width, from.Height, to.Width, to.Height, mode, len(elements))

	resized := make([]Element, len(elements))
	for i, e := range elements {
		switch mode {
		case Stretch:
			e.X *= s.ScaleX
			e.Y *= s.ScaleY
			e.Width *= s.ScaleX
			e.Height *= s.ScaleY
		case Fit:
			e.X *= s.Uniform
			e.Y *= s.Uniform
			e.Width *= s.Uniform
			e.Height *= s.Uniform
		default:
			e = resizeSmart(from, to, s, e)
		}
		resized[i] = e
	}

	return resized, nil
}

func resizeSmart(from, to Size, s ScaleFactors, e Element) Element {
	w := e.Width * s.Uniform
	h := e.Height * s.Uniform

	x := reposition(e.X, e.Width, w, from.Width, to.Width)
	y := reposition(e.Y, e.Height, h, from.Height, to.Height)

	// clamp into the target canvas
	if x+w > to.Width {
		x = to.Width - w - edgeMargin
	}
	if y+h > to.Height {
		y = to.Height - h - edgeMargin
	}
	if x < 0 {
		x = edgeMargin
	}
	if y < 0 {
		y = edgeMargin
	}

	return Element{X: x, Y: y, Width: w, Height: h, Kind: e.Kind}
}

// reposition places one axis of an element on the target canvas.
//
// Most layout elements are either centered or anchored near an edge by
// design; plain proportional scaling handles neither case well, so
// both are special-cased before the proportional fallback.
func reposition(pos, size, scaledSize, fromSize, toSize float64) float64 {
	relCenter := (pos + size/2) / fromSize
	if relCenter > centerBandLow && relCenter < centerBandHigh {
		return (toSize - scaledSize) / 2
	}

	edgeDistance := fromSize - (pos + size)
	if edgeDistance < edgeThreshold {
		return toSize - scaledSize - edgeDistance*(toSize/fromSize)
	}

	return pos * (toSize / fromSize)
}

func (m Mode) String() string {
	switch m {
	case Smart:
		return "smart"
	case Stretch:
		return "stretch"
	case Fit:
		return "fit"
	default:
		return "UNKNOWN"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "smart":
		return Smart, nil
	case "stretch":
		return Stretch, nil
	case "fit":
		return Fit, nil
	default:
		return Smart, fmt.Errorf("invalid resize mode %q", s)
	}
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	x, err := ParseMode(s)
	if err != nil {
		return err
	}

	*m = x
	return nil
}

func (m Mode) MarshalJSON() ([]byte, error) {
	s := m.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid resize mode %v", m)
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}
