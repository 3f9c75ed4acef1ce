package brochure

// Unit is the measurement unit for a format's dimensions.
type Unit int

const (
	Pixels Unit = iota
	Millimeters
)

func (u Unit) String() string {
	switch u {
	case Pixels:
		return "px"
	case Millimeters:
		return "mm"
	default:
		return "UNKNOWN"
	}
}

// Format describes a named output target, e.g. "A4 Portrait"
// or "Instagram Post".
//
// Formats are immutable entries from the built-in catalog.
type Format struct {
	ID     string
	Name   string
	Width  float64
	Height float64
	Unit   Unit
	// Group and GroupLabel are set when a format is listed through
	// AllFormats().
	Group      string
	GroupLabel string
}

// AspectRatio is width divided by height.
func (f Format) AspectRatio() float64 {
	return f.Width / f.Height
}

func (f Format) Validate() error {
	if f.ID == "" {
		return NewValidationError("format has no id")
	}
	if f.Width <= 0 || f.Height <= 0 {
		return NewValidationError("format %q has non-positive dimensions", f.ID)
	}
	return nil
}

// Size returns the format dimensions as a Size.
func (f Format) Size() Size {
	return Size{Width: f.Width, Height: f.Height}
}

type formatGroup struct {
	id      string
	label   string
	formats []Format
}

// The catalog is grouped the same way the format picker presents it:
// print sizes, social media posts, property marketing and web banners.
var formatCatalog = []formatGroup{
	{
		id:    "print",
		label: "Print",
		formats: []Format{
			{ID: "a4-portrait", Name: "A4 Portrait", Width: 794, Height: 1123, Unit: Pixels},
			{ID: "a4-landscape", Name: "A4 Landscape", Width: 1123, Height: 794, Unit: Pixels},
			{ID: "a5-portrait", Name: "A5 Portrait", Width: 559, Height: 794, Unit: Pixels},
			{ID: "a3-poster", Name: "A3 Poster", Width: 1123, Height: 1587, Unit: Pixels},
			{ID: "dl-flyer", Name: "DL Flyer", Width: 416, Height: 794, Unit: Pixels},
			{ID: "business-card", Name: "Business Card", Width: 336, Height: 192, Unit: Pixels},
		},
	},
	{
		id:    "social",
		label: "Social Media",
		formats: []Format{
			{ID: "instagram-post", Name: "Instagram Post", Width: 1080, Height: 1080, Unit: Pixels},
			{ID: "instagram-story", Name: "Instagram Story", Width: 1080, Height: 1920, Unit: Pixels},
			{ID: "facebook-post", Name: "Facebook Post", Width: 1200, Height: 630, Unit: Pixels},
			{ID: "twitter-post", Name: "X Post", Width: 1600, Height: 900, Unit: Pixels},
			{ID: "linkedin-post", Name: "LinkedIn Post", Width: 1200, Height: 627, Unit: Pixels},
		},
	},
	{
		id:    "property",
		label: "Property Marketing",
		formats: []Format{
			{ID: "window-card", Name: "Window Card", Width: 794, Height: 1123, Unit: Pixels},
			{ID: "property-brochure", Name: "Property Brochure", Width: 794, Height: 1123, Unit: Pixels},
			{ID: "open-house-board", Name: "Open House Board", Width: 1587, Height: 1123, Unit: Pixels},
		},
	},
	{
		id:    "web",
		label: "Web",
		formats: []Format{
			{ID: "web-banner", Name: "Web Banner", Width: 1456, Height: 180, Unit: Pixels},
			{ID: "email-header", Name: "Email Header", Width: 600, Height: 200, Unit: Pixels},
			{ID: "portal-hero", Name: "Portal Hero", Width: 1920, Height: 1080, Unit: Pixels},
		},
	},
}

// GetFormat looks up a format by its id.
//
// If no format with that id exists, an error of type "Not Found"
// is returned (use IsNotFound(err) to check for this).
func GetFormat(id string) (Format, error) {
	for _, g := range formatCatalog {
		for _, f := range g.formats {
			if f.ID == id {
				f.Group = g.id
				f.GroupLabel = g.label
				return f, nil
			}
		}
	}
	return Format{}, NewNotFound("no format with id %q", id)
}

// AllFormats flattens the catalog into a single list for UI display,
// with the group id and label attached to each entry.
// The order matches the catalog order.
func AllFormats() []Format {
	all := make([]Format, 0)
	for _, g := range formatCatalog {
		for _, f := range g.formats {
			f.Group = g.id
			f.GroupLabel = g.label
			all = append(all, f)
		}
	}
	return all
}
