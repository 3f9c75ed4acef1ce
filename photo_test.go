package brochure

import (
	"testing"
)

func TestNormalizeRoomType(t *testing.T) {
	cases := []struct {
		roomType string
		expected Category
	}{
		{"Kitchen", Kitchen},
		{"modern kitchen diner", Kitchen},
		{"Master Bedroom", Bedrooms},
		{"family bathroom", Bathrooms},
		{"rear garden", Garden},
		{"outdoor space", Garden},
		{"living room", Interior},
		{"lounge", Interior},
		{"reception room", Interior},
		{"dining area", Interior},
		{"exterior view", Exterior},
		{"front of house", Exterior},
		{"building facade", Exterior},
		{"utility room", Interior},
		{"", Interior},
	}

	for _, c := range cases {
		actual := NormalizeRoomType(c.roomType)
		if actual != c.expected {
			t.Errorf("%q normalized to %v, expected %v", c.roomType, actual, c.expected)
		}
	}
}

func TestNormalizeOrder(t *testing.T) {
	// earlier checks win when several keywords match
	if NormalizeRoomType("kitchen with dining area") != Kitchen {
		t.Error("kitchen should win over dining")
	}
	if NormalizeRoomType("bedroom with garden view") != Bedrooms {
		t.Error("bedroom should win over garden")
	}
}

func TestCategorizeByFilename(t *testing.T) {
	cases := []struct {
		name     string
		expected Category
	}{
		{"IMG_cover_01.jpg", Cover},
		{"hero-shot.png", Cover},
		{"kitchen-diner.jpg", Kitchen},
		{"master_bed.jpg", Bedrooms},
		{"ensuite.jpg", Bathrooms},
		{"patio-area.jpg", Garden},
		{"front-of-house.jpg", Exterior},
		{"floorplan.png", FloorPlan},
		{"lounge.jpg", Interior},
		{"IMG_20250110_1234.jpg", Interior},
	}

	for _, c := range cases {
		actual := CategorizeByFilename(c.name)
		if actual != c.expected {
			t.Errorf("%q categorized as %v, expected %v", c.name, actual, c.expected)
		}
	}
}

func TestLibraryAdd(t *testing.T) {
	lib := NewLibrary()
	p := lib.Add("kitchen.jpg", "/tmp/kitchen.jpg", 1024)

	if p.ID == "" {
		t.Error("photo has no id")
	}
	if p.Category != Interior {
		t.Errorf("new photo should default to interior, got %v", p.Category)
	}
	if len(lib.Photos) != 1 {
		t.Errorf("unexpected library size: %d", len(lib.Photos))
	}
}

func TestLibraryLocation(t *testing.T) {
	lib := NewLibrary()
	a := lib.Add("map.png", "/tmp/map.png", 10)
	b := lib.Add("kitchen.jpg", "/tmp/kitchen.jpg", 10)

	err := lib.MarkLocation(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	// marking twice is not an error and does not duplicate
	err = lib.MarkLocation(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.LocationIDs) != 1 {
		t.Errorf("unexpected location ids: %v", lib.LocationIDs)
	}

	err = lib.MarkLocation("no-such-id")
	if !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	loc := lib.LocationPhotos()
	if len(loc) != 1 || loc[0].ID != a.ID {
		t.Errorf("unexpected location photos: %v", loc)
	}

	// location photos are excluded from categorization
	unc := lib.Uncategorized()
	if len(unc) != 1 || unc[0].ID != b.ID {
		t.Errorf("unexpected uncategorized photos: %v", unc)
	}

	groups := lib.Categorized()
	for _, photos := range groups {
		for _, p := range photos {
			if p.ID == a.ID {
				t.Error("location photo appears in categorized groups")
			}
		}
	}
}

func TestCoverPromotion(t *testing.T) {
	lib := NewLibrary()
	ext := lib.Add("front.jpg", "/tmp/front.jpg", 10)
	ext.Category = Exterior
	lib.Add("kitchen.jpg", "/tmp/kitchen.jpg", 10).Category = Kitchen

	groups := lib.Categorized()
	if len(groups[Cover]) != 1 {
		t.Fatalf("expected promoted cover photo, got %v", groups[Cover])
	}
	if groups[Cover][0] != ext {
		t.Error("promoted photo is not the first exterior photo")
	}
	// the promoted photo keeps its exterior category and stays in its
	// original group
	if ext.Category != Exterior {
		t.Errorf("promotion changed the category to %v", ext.Category)
	}
	if len(groups[Exterior]) != 1 {
		t.Errorf("promotion removed the photo from the exterior group")
	}
}

func TestNoCoverPromotionWithExplicitCover(t *testing.T) {
	lib := NewLibrary()
	cover := lib.Add("hero.jpg", "/tmp/hero.jpg", 10)
	cover.Category = Cover
	lib.Add("front.jpg", "/tmp/front.jpg", 10).Category = Exterior

	groups := lib.Categorized()
	if len(groups[Cover]) != 1 || groups[Cover][0] != cover {
		t.Errorf("unexpected cover group: %v", groups[Cover])
	}
}

func TestCategoryJSON(t *testing.T) {
	for _, c := range []Category{Interior, Cover, Exterior, Kitchen, Bedrooms, Bathrooms, Garden, FloorPlan, Location} {
		data, err := c.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}

		var back Category
		err = back.UnmarshalJSON(data)
		if err != nil {
			t.Fatal(err)
		}
		if back != c {
			t.Errorf("%v round-trips to %v", c, back)
		}
	}

	var c Category
	err := c.UnmarshalJSON([]byte(`"attic"`))
	if err == nil {
		t.Error("expected error for unknown category")
	}
}
