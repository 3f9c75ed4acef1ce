package brochure

import (
	"fmt"

	"github.com/propsheet/brochure/internal/logging"
)

// DefaultPhotosPerPage is the number of photos on a full gallery page.
const DefaultPhotosPerPage = 6

// Character classifies the marketing tone for a property. It only
// affects page titles, not page structure.
type Character int

const (
	Modern Character = iota
	Luxury
	Executive
	Family
	Compact
)

func (c Character) String() string {
	switch c {
	case Modern:
		return "modern"
	case Luxury:
		return "luxury"
	case Executive:
		return "executive"
	case Family:
		return "family"
	case Compact:
		return "compact"
	default:
		return "UNKNOWN"
	}
}

// ClassifyCharacter derives the marketing character from bedroom
// count, price, size and the presence of a garden.
func ClassifyCharacter(p Property) Character {
	switch {
	case p.Price >= 1_000_000 || (p.Bedrooms >= 5 && p.SizeSqFt >= 3000):
		return Luxury
	case p.Price >= 600_000 || p.Bedrooms >= 4:
		return Executive
	case p.Bedrooms >= 3 && p.HasGarden:
		return Family
	case p.Bedrooms == 1 || (p.SizeSqFt > 0 && p.SizeSqFt < 600):
		return Compact
	default:
		return Modern
	}
}

// gallery sections in their fixed page order
type section int

const (
	kitchenSection section = iota
	livingSection
	bedroomsSection
	bathroomsSection
	exteriorSection
	gardenSection
)

var sectionCategories = map[section]Category{
	kitchenSection:   Kitchen,
	livingSection:    Interior,
	bedroomsSection:  Bedrooms,
	bathroomsSection: Bathrooms,
	exteriorSection:  Exterior,
	gardenSection:    Garden,
}

// sectionTitles maps a gallery section and character to the page
// title. Plain category names where the character adds nothing.
var sectionTitles = map[section]map[Character]string{
	kitchenSection: {
		Luxury:    "The Chef's Kitchen",
		Executive: "The Heart of the Home",
		Family:    "Kitchen",
		Compact:   "Kitchen",
		Modern:    "Kitchen",
	},
	livingSection: {
		Luxury:    "Entertain in Elegance",
		Executive: "Refined Reception Rooms",
		Family:    "Room to Relax",
		Compact:   "Smart Living",
		Modern:    "Open-Plan Living",
	},
	bedroomsSection: {
		Luxury:    "Luxurious Bedrooms",
		Executive: "Restful Bedrooms",
		Family:    "Bedrooms",
		Compact:   "Bedrooms",
		Modern:    "Bedrooms",
	},
	bathroomsSection: {
		Luxury:    "Spa-Style Bathrooms",
		Executive: "Elegant Bathrooms",
		Family:    "Bathrooms",
		Compact:   "Bathrooms",
		Modern:    "Bathrooms",
	},
	exteriorSection: {
		Luxury:    "A Grand Approach",
		Executive: "First Impressions",
		Family:    "Outside the Home",
		Compact:   "The Exterior",
		Modern:    "The Exterior",
	},
	gardenSection: {
		Luxury:    "Landscaped Grounds",
		Executive: "The Garden",
		Family:    "Garden & Play Space",
		Compact:   "Outdoor Space",
		Modern:    "The Garden",
	},
}

// Assembler converts a categorized photo library plus property/agent
// form data into the ordered page sequence of a brochure.
type Assembler struct {
	// PhotosPerPage is the chunk size for gallery pages.
	PhotosPerPage int
}

// NewAssembler creates an assembler with the default chunk size.
func NewAssembler() *Assembler {
	return &Assembler{PhotosPerPage: DefaultPhotosPerPage}
}

// Generate assembles the brochure pages for the given library and
// form data. Page order is fixed: cover, overview, kitchen, living,
// bedrooms, bathrooms, exterior, garden, floor plan, location,
// contact.
//
// The chosen cover photo never appears on any non-cover page. Every
// categorized photo appears on exactly one gallery page.
func (a *Assembler) Generate(lib *Library, property Property, agent Agent) ([]*Page, error) {
	err := property.Validate()
	if err != nil {
		return nil, err
	}

	perPage := a.PhotosPerPage
	if perPage <= 0 {
		perPage = DefaultPhotosPerPage
	}

	groups := lib.Categorized()
	character := ClassifyCharacter(property)
	logging.Debug("Assemble brochure (character=%v)", character)

	nextID := 0
	newPage := func(t PageType) *Page {
		nextID++
		return &Page{
			ID:     nextID,
			Type:   t,
			Photos: make([]*Photo, 0),
		}
	}

	pages := make([]*Page, 0)

	// cover
	var cover *Photo
	if len(groups[Cover]) > 0 {
		cover = groups[Cover][0]
	} else if len(groups[Exterior]) > 0 {
		cover = groups[Exterior][0]
	}

	coverPage := newPage(CoverPage)
	coverPage.Title = property.Address
	coverPage.Content = &PageContent{Property: &property, Agent: &agent}
	if cover != nil {
		coverPage.Photos = append(coverPage.Photos, cover)
	}
	pages = append(pages, coverPage)

	// the one dedup point: the cover photo is excluded from every
	// page below, even though it is still a member of its group
	notCover := func(p *Photo) bool {
		return cover == nil || p.ID != cover.ID
	}

	filtered := func(c Category) []*Photo {
		kept := make([]*Photo, 0)
		for _, p := range groups[c] {
			if notCover(p) {
				kept = append(kept, p)
			}
		}
		return kept
	}

	// overview: up to three photos, best rooms first
	overview := make([]*Photo, 0, 3)
	for _, c := range []Category{Kitchen, Interior, Exterior, Garden} {
		for _, p := range filtered(c) {
			if len(overview) == 3 {
				break
			}
			overview = append(overview, p)
		}
	}
	if len(overview) > 0 {
		p := newPage(OverviewPage)
		p.Title = "At a Glance"
		p.Photos = overview
		p.Content = &PageContent{Property: &property, Agent: &agent}
		pages = append(pages, p)
	}

	// gallery sections, chunked
	for sec := kitchenSection; sec <= gardenSection; sec++ {
		photos := filtered(sectionCategories[sec])
		chunks := chunk(photos, perPage)
		title := sectionTitles[sec][character]

		for i, ch := range chunks {
			p := newPage(GalleryPage)
			p.Title = title
			if len(chunks) > 1 {
				p.Title = fmt.Sprintf("%s (%d)", title, i+1)
			}
			p.Photos = ch
			pages = append(pages, p)
		}
	}

	// floor plan
	plans := filtered(FloorPlan)
	if len(plans) > 0 {
		p := newPage(FloorPlanPage)
		p.Title = "Floor Plan"
		p.Layout = PhotosOnly
		p.Photos = plans
		pages = append(pages, p)
	}

	// location - always emitted, even with zero photos
	loc := newPage(LocationPage)
	loc.Title = "Location"
	loc.Photos = lib.LocationPhotos()
	loc.Content = &PageContent{Property: &property}
	pages = append(pages, loc)

	// contact
	if agent.IncludePhoto {
		p := newPage(ContactPage)
		p.Title = "Get in Touch"
		p.Content = &PageContent{Agent: &agent}
		pages = append(pages, p)
	}

	logging.Info("Assembled %d pages", len(pages))

	return pages, nil
}

// chunk splits photos into groups of at most size, preserving order.
func chunk(photos []*Photo, size int) [][]*Photo {
	chunks := make([][]*Photo, 0)
	for len(photos) > size {
		chunks = append(chunks, photos[:size])
		photos = photos[size:]
	}
	if len(photos) > 0 {
		chunks = append(chunks, photos)
	}
	return chunks
}
