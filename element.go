package brochure

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ElementKind tells what a canvas element displays.
type ElementKind int

const (
	ImageElement ElementKind = iota
	TextElement
	ShapeElement
)

// Element is a positioned visual unit (image, text or shape) on a
// design canvas. Coordinates are in the canvas' own space; values may
// be negative or exceed the canvas bounds.
type Element struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Kind   ElementKind `json:"kind"`
}

// Size is a width/height pair describing canvas dimensions.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return NewValidationError("dimensions must be positive, got %vx%v", s.Width, s.Height)
	}
	return nil
}

func (k ElementKind) String() string {
	switch k {
	case ImageElement:
		return "image"
	case TextElement:
		return "text"
	case ShapeElement:
		return "shape"
	default:
		return "UNKNOWN"
	}
}

func (k *ElementKind) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	var ek ElementKind
	switch s {
	case "image":
		ek = ImageElement
	case "text":
		ek = TextElement
	case "shape":
		ek = ShapeElement
	default:
		return fmt.Errorf("invalid element kind %q", s)
	}

	*k = ek
	return nil
}

func (k ElementKind) MarshalJSON() ([]byte, error) {
	s := k.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid element kind %v", k)
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}
