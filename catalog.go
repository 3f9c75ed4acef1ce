package brochure

// The design-asset catalogs: graphics, text styles, color palettes
// and frames. Entries are static data looked up by id; the renderers
// interpret the descriptors.

// GraphicKind tags the variant of a graphic descriptor.
type GraphicKind int

const (
	ShapeGraphic GraphicKind = iota
	DecorativeGraphic
	GridGraphic
)

// ShapeSpec describes a basic geometric shape.
type ShapeSpec struct {
	Sides   int // 0 = ellipse
	Rounded bool
	Fill    string
	Stroke  string
}

// DecorativeSpec describes an ornament placed at a fixed anchor.
type DecorativeSpec struct {
	Anchor string // "corner", "edge", "center"
	Mirror bool
	Stroke string
	Weight float64
}

// GridSpec describes a repeating background grid or pattern.
type GridSpec struct {
	Columns int
	Rows    int
	Gap     float64
	Stroke  string
}

// Graphic is one catalog entry. Exactly one of the spec fields is set,
// according to Kind.
type Graphic struct {
	ID         string
	Name       string
	Kind       GraphicKind
	Shape      *ShapeSpec
	Decorative *DecorativeSpec
	Grid       *GridSpec
}

var graphicCatalog = []Graphic{
	{ID: "circle", Name: "Circle", Kind: ShapeGraphic, Shape: &ShapeSpec{Sides: 0, Fill: "#2C3E50"}},
	{ID: "square", Name: "Square", Kind: ShapeGraphic, Shape: &ShapeSpec{Sides: 4, Fill: "#2C3E50"}},
	{ID: "rounded-square", Name: "Rounded Square", Kind: ShapeGraphic, Shape: &ShapeSpec{Sides: 4, Rounded: true, Fill: "#2C3E50"}},
	{ID: "triangle", Name: "Triangle", Kind: ShapeGraphic, Shape: &ShapeSpec{Sides: 3, Fill: "#2C3E50"}},
	{ID: "hexagon", Name: "Hexagon", Kind: ShapeGraphic, Shape: &ShapeSpec{Sides: 6, Fill: "#2C3E50"}},
	{ID: "corner-flourish", Name: "Corner Flourish", Kind: DecorativeGraphic, Decorative: &DecorativeSpec{Anchor: "corner", Mirror: true, Stroke: "#B8860B", Weight: 1.5}},
	{ID: "divider-line", Name: "Divider", Kind: DecorativeGraphic, Decorative: &DecorativeSpec{Anchor: "edge", Stroke: "#2C3E50", Weight: 1}},
	{ID: "accent-bar", Name: "Accent Bar", Kind: DecorativeGraphic, Decorative: &DecorativeSpec{Anchor: "edge", Stroke: "#C0392B", Weight: 6}},
	{ID: "dot-grid", Name: "Dot Grid", Kind: GridGraphic, Grid: &GridSpec{Columns: 12, Rows: 16, Gap: 24, Stroke: "#D5D8DC"}},
	{ID: "line-grid", Name: "Line Grid", Kind: GridGraphic, Grid: &GridSpec{Columns: 6, Rows: 8, Gap: 48, Stroke: "#EAECEE"}},
}

// GetGraphic looks up a graphic by id.
func GetGraphic(id string) (Graphic, error) {
	for _, g := range graphicCatalog {
		if g.ID == id {
			return g, nil
		}
	}
	return Graphic{}, NewNotFound("no graphic with id %q", id)
}

// AllGraphics lists the graphic catalog in order.
func AllGraphics() []Graphic {
	all := make([]Graphic, len(graphicCatalog))
	copy(all, graphicCatalog)
	return all
}

// TextStyle is a named typography preset.
type TextStyle struct {
	ID       string
	Name     string
	Font     string
	Size     float64
	Bold     bool
	Italic   bool
	Color    string
	Tracking float64
}

var textStyleCatalog = []TextStyle{
	{ID: "headline", Name: "Headline", Font: "Helvetica", Size: 28, Bold: true, Color: "#1B2631"},
	{ID: "subhead", Name: "Subheading", Font: "Helvetica", Size: 18, Bold: true, Color: "#2C3E50"},
	{ID: "body", Name: "Body", Font: "Helvetica", Size: 11, Color: "#2C3E50"},
	{ID: "caption", Name: "Caption", Font: "Helvetica", Size: 9, Italic: true, Color: "#7F8C8D"},
	{ID: "price", Name: "Price", Font: "Helvetica", Size: 22, Bold: true, Color: "#B8860B", Tracking: 0.5},
	{ID: "label", Name: "Label", Font: "Helvetica", Size: 8, Bold: true, Color: "#95A5A6", Tracking: 1.2},
}

// GetTextStyle looks up a text style by id.
func GetTextStyle(id string) (TextStyle, error) {
	for _, t := range textStyleCatalog {
		if t.ID == id {
			return t, nil
		}
	}
	return TextStyle{}, NewNotFound("no text style with id %q", id)
}

// AllTextStyles lists the text style catalog in order.
func AllTextStyles() []TextStyle {
	all := make([]TextStyle, len(textStyleCatalog))
	copy(all, textStyleCatalog)
	return all
}

// Palette is a named set of coordinated colors, primary first.
type Palette struct {
	ID     string
	Name   string
	Colors []string
}

var paletteCatalog = []Palette{
	{ID: "classic", Name: "Classic", Colors: []string{"#1B2631", "#B8860B", "#FDFEFE", "#7F8C8D"}},
	{ID: "coastal", Name: "Coastal", Colors: []string{"#1A5276", "#AED6F1", "#FDFEFE", "#F4D03F"}},
	{ID: "heritage", Name: "Heritage", Colors: []string{"#4A235A", "#C39BD3", "#FDF2E9", "#6E2C00"}},
	{ID: "contemporary", Name: "Contemporary", Colors: []string{"#17202A", "#E74C3C", "#F8F9F9", "#BDC3C7"}},
	{ID: "countryside", Name: "Countryside", Colors: []string{"#145A32", "#A9DFBF", "#FEF9E7", "#7B7D7D"}},
}

// GetPalette looks up a palette by id.
func GetPalette(id string) (Palette, error) {
	for _, p := range paletteCatalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Palette{}, NewNotFound("no palette with id %q", id)
}

// AllPalettes lists the palette catalog in order.
func AllPalettes() []Palette {
	all := make([]Palette, len(paletteCatalog))
	copy(all, paletteCatalog)
	return all
}

// FrameStyle is a photo frame preset, drawn by the renderers.
type FrameStyle struct {
	ID     string
	Name   string
	Width  float64
	Color  string
	Inset  float64
	Double bool
}

var frameCatalog = []FrameStyle{
	{ID: "none", Name: "None"},
	{ID: "thin", Name: "Thin", Width: 1, Color: "#2C3E50"},
	{ID: "gallery", Name: "Gallery", Width: 3, Color: "#17202A", Inset: 6},
	{ID: "double", Name: "Double", Width: 1.5, Color: "#B8860B", Inset: 4, Double: true},
	{ID: "polaroid", Name: "Polaroid", Width: 8, Color: "#FDFEFE", Inset: 0},
}

// GetFrameStyle looks up a frame style by id.
func GetFrameStyle(id string) (FrameStyle, error) {
	for _, f := range frameCatalog {
		if f.ID == id {
			return f, nil
		}
	}
	return FrameStyle{}, NewNotFound("no frame style with id %q", id)
}

// AllFrameStyles lists the frame catalog in order.
func AllFrameStyles() []FrameStyle {
	all := make([]FrameStyle, len(frameCatalog))
	copy(all, frameCatalog)
	return all
}
