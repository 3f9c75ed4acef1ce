package brochure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/propsheet/brochure/internal/logging"
)

// Category is the room/subject label used to group uploaded photos
// into brochure pages. Every photo holds exactly one category at
// page-assembly time.
type Category int

const (
	Interior Category = iota
	Cover
	Exterior
	Kitchen
	Bedrooms
	Bathrooms
	Garden
	FloorPlan
	Location
)

// Photo is an uploaded asset. Photos are owned by a Library and
// referenced (not copied) by pages.
type Photo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	Category   Category  `json:"category"`
	// RoomType, Attributes and Caption are filled from the vision
	// service response, when available.
	RoomType   string   `json:"roomType,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
	Caption    string   `json:"caption,omitempty"`
}

// Library is the collection of all uploaded photos for one brochure.
type Library struct {
	Photos []*Photo `json:"photos"`
	// location photos are pinned explicitly by the user and bypass
	// categorization entirely.
	LocationIDs []string `json:"locationIds,omitempty"`
}

// NewLibrary creates an empty photo library.
func NewLibrary() *Library {
	return &Library{
		Photos:      make([]*Photo, 0),
		LocationIDs: make([]string, 0),
	}
}

// Add registers an uploaded photo and returns it.
// The category defaults to Interior until categorization runs.
func (l *Library) Add(name, path string, size int64) *Photo {
	p := &Photo{
		ID:         uuid.New().String(),
		Name:       name,
		Path:       path,
		Size:       size,
		UploadedAt: time.Now(),
		Category:   Interior,
	}
	l.Photos = append(l.Photos, p)
	return p
}

// MarkLocation pins the photo with the given id to the location page.
// Location photos are never vision-analyzed and are excluded from the
// categorized groups.
func (l *Library) MarkLocation(id string) error {
	p := l.Get(id)
	if p == nil {
		return NewNotFound("no photo with id %q", id)
	}

	for _, known := range l.LocationIDs {
		if known == id {
			return nil
		}
	}
	l.LocationIDs = append(l.LocationIDs, id)
	p.Category = Location
	return nil
}

// Get returns the photo with the given id, or nil.
func (l *Library) Get(id string) *Photo {
	for _, p := range l.Photos {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (l *Library) isLocation(id string) bool {
	for _, known := range l.LocationIDs {
		if known == id {
			return true
		}
	}
	return false
}

// LocationPhotos returns the user-pinned location photos in upload order.
func (l *Library) LocationPhotos() []*Photo {
	photos := make([]*Photo, 0)
	for _, p := range l.Photos {
		if l.isLocation(p.ID) {
			photos = append(photos, p)
		}
	}
	return photos
}

// Uncategorized returns the photos that take part in categorization,
// i.e. everything not pinned to the location page.
func (l *Library) Uncategorized() []*Photo {
	photos := make([]*Photo, 0)
	for _, p := range l.Photos {
		if !l.isLocation(p.ID) {
			photos = append(photos, p)
		}
	}
	return photos
}

// Categorized groups photos by their category, excluding pinned
// location photos.
//
// If no photo landed in Cover but at least one is Exterior, the first
// exterior photo is added to the cover group as well. The photo keeps
// its Exterior category; the assembler's cover filter is what keeps it
// from appearing twice.
func (l *Library) Categorized() map[Category][]*Photo {
	groups := make(map[Category][]*Photo)
	for _, p := range l.Photos {
		if l.isLocation(p.ID) {
			continue
		}
		groups[p.Category] = append(groups[p.Category], p)
	}

	if len(groups[Cover]) == 0 && len(groups[Exterior]) > 0 {
		logging.Debug("No cover photo, promoting first exterior photo")
		groups[Cover] = append(groups[Cover], groups[Exterior][0])
	}

	return groups
}

// NormalizeRoomType maps the free-text room type returned by the
// vision service onto the closed category set.
// Checks are ordered; the first matching substring wins.
func NormalizeRoomType(roomType string) Category {
	s := strings.ToLower(roomType)

	switch {
	case strings.Contains(s, "kitchen"):
		return Kitchen
	case strings.Contains(s, "bedroom"):
		return Bedrooms
	case strings.Contains(s, "bathroom"):
		return Bathrooms
	case strings.Contains(s, "garden"), strings.Contains(s, "outdoor"):
		return Garden
	case strings.Contains(s, "living"), strings.Contains(s, "lounge"),
		strings.Contains(s, "reception"), strings.Contains(s, "dining"):
		return Interior
	case strings.Contains(s, "exterior"), strings.Contains(s, "front"),
		strings.Contains(s, "building"):
		return Exterior
	default:
		return Interior
	}
}

// filename keywords per category, checked in this order
var filenameKeywords = []struct {
	category Category
	words    []string
}{
	{Cover, []string{"cover", "hero", "main"}},
	{Kitchen, []string{"kitchen", "diner"}},
	{Bedrooms, []string{"bedroom", "bed", "master", "nursery"}},
	{Bathrooms, []string{"bathroom", "bath", "ensuite", "shower", "wc"}},
	{Garden, []string{"garden", "patio", "lawn", "yard", "deck", "terrace"}},
	{Exterior, []string{"exterior", "front", "facade", "outside", "rear", "drive", "street"}},
	{FloorPlan, []string{"floorplan", "floor-plan", "plan"}},
	{Interior, []string{"living", "lounge", "reception", "dining", "hall"}},
}

// CategorizeByFilename assigns a category from keywords in the file
// name. This is the fallback when the vision service is unavailable.
// Photos with no keyword match default to Interior.
func CategorizeByFilename(name string) Category {
	s := strings.ToLower(name)
	for _, kw := range filenameKeywords {
		for _, w := range kw.words {
			if strings.Contains(s, w) {
				return kw.category
			}
		}
	}
	return Interior
}

func (c Category) String() string {
	switch c {
	case Cover:
		return "cover"
	case Exterior:
		return "exterior"
	case Interior:
		return "interior"
	case Kitchen:
		return "kitchen"
	case Bedrooms:
		return "bedrooms"
	case Bathrooms:
		return "bathrooms"
	case Garden:
		return "garden"
	case FloorPlan:
		return "floorplan"
	case Location:
		return "location"
	default:
		return "UNKNOWN"
	}
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	switch s {
	case "cover":
		*c = Cover
	case "exterior":
		*c = Exterior
	case "interior":
		*c = Interior
	case "kitchen":
		*c = Kitchen
	case "bedrooms":
		*c = Bedrooms
	case "bathrooms":
		*c = Bathrooms
	case "garden":
		*c = Garden
	case "floorplan":
		*c = FloorPlan
	case "location":
		*c = Location
	default:
		return fmt.Errorf("invalid category %q", s)
	}

	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	s := c.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid category %v", c)
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}
