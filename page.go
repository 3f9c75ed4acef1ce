package brochure

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PageType distinguishes the kinds of brochure pages.
type PageType int

const (
	CoverPage PageType = iota
	OverviewPage
	GalleryPage
	FloorPlanPage
	LocationPage
	ContactPage
)

// PageLayout selects how a page arranges its content.
type PageLayout int

const (
	// StandardLayout places photos in a grid with the title above.
	StandardLayout PageLayout = iota
	// PhotosOnly fills the page with photos and no text block.
	PhotosOnly
)

// Page is one ordered, titled unit of the final brochure: a group of
// photos plus metadata.
//
// Page ids are unique and increase in assembly order within one
// generation pass. Pages reference photos, they do not copy them.
type Page struct {
	ID      int          `json:"id"`
	Type    PageType     `json:"type"`
	Title   string       `json:"title"`
	Photos  []*Photo     `json:"photos"`
	Layout  PageLayout   `json:"layout"`
	Content *PageContent `json:"content,omitempty"`
}

// PageContent carries the property/agent metadata displayed on
// overview, cover and contact pages.
type PageContent struct {
	Property *Property `json:"property,omitempty"`
	Agent    *Agent    `json:"agent,omitempty"`
}

// Property holds the property form data captured in the builder.
type Property struct {
	Address     string   `json:"address" yaml:"address"`
	Postcode    string   `json:"postcode" yaml:"postcode"`
	Price       int      `json:"price" yaml:"price"`
	Bedrooms    int      `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms   int      `json:"bathrooms" yaml:"bathrooms"`
	SizeSqFt    float64  `json:"sizeSqFt" yaml:"size_sqft"`
	HasGarden   bool     `json:"hasGarden" yaml:"has_garden"`
	Tenure      string   `json:"tenure" yaml:"tenure"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
}

// Validate is the single gate for brochure generation: address and
// postcode must be present.
func (p Property) Validate() error {
	if p.Address == "" || p.Postcode == "" {
		return NewValidationError("property needs an address and a postcode")
	}
	return nil
}

// Agent holds the agent/branch form data.
type Agent struct {
	Name         string `json:"name" yaml:"name"`
	Agency       string `json:"agency" yaml:"agency"`
	Phone        string `json:"phone" yaml:"phone"`
	Email        string `json:"email" yaml:"email"`
	Website      string `json:"website" yaml:"website"`
	IncludePhoto bool   `json:"includePhoto" yaml:"include_photo"`
	PhotoPath    string `json:"photoPath" yaml:"photo_path"`
}

func (t PageType) String() string {
	switch t {
	case CoverPage:
		return "cover"
	case OverviewPage:
		return "overview"
	case GalleryPage:
		return "gallery"
	case FloorPlanPage:
		return "floorplan"
	case LocationPage:
		return "location"
	case ContactPage:
		return "contact"
	default:
		return "UNKNOWN"
	}
}

func (t *PageType) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	switch s {
	case "cover":
		*t = CoverPage
	case "overview":
		*t = OverviewPage
	case "gallery":
		*t = GalleryPage
	case "floorplan":
		*t = FloorPlanPage
	case "location":
		*t = LocationPage
	case "contact":
		*t = ContactPage
	default:
		return fmt.Errorf("invalid page type %q", s)
	}

	return nil
}

func (t PageType) MarshalJSON() ([]byte, error) {
	s := t.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid page type %v", t)
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}

func (l PageLayout) String() string {
	switch l {
	case StandardLayout:
		return "standard"
	case PhotosOnly:
		return "photos-only"
	default:
		return "UNKNOWN"
	}
}

func (l *PageLayout) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	switch s {
	case "standard":
		*l = StandardLayout
	case "photos-only":
		*l = PhotosOnly
	default:
		return fmt.Errorf("invalid page layout %q", s)
	}

	return nil
}

func (l PageLayout) MarshalJSON() ([]byte, error) {
	s := l.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid page layout %v", l)
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}
