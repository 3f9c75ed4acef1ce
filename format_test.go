package brochure

import (
	"testing"
)

func TestGetFormat(t *testing.T) {
	f, err := GetFormat("instagram-post")
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 1080 || f.Height != 1080 {
		t.Errorf("unexpected dimensions: %v x %v", f.Width, f.Height)
	}
	if f.Group != "social" {
		t.Errorf("unexpected group: %q", f.Group)
	}
	if f.AspectRatio() != 1.0 {
		t.Errorf("unexpected aspect ratio: %v", f.AspectRatio())
	}

	_, err = GetFormat("letter")
	if !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestAllFormats(t *testing.T) {
	all := AllFormats()
	if len(all) == 0 {
		t.Fatal("empty format catalog")
	}

	seen := make(map[string]bool)
	for _, f := range all {
		if seen[f.ID] {
			t.Errorf("duplicate format id %q", f.ID)
		}
		seen[f.ID] = true

		if err := f.Validate(); err != nil {
			t.Errorf("invalid catalog entry %q: %v", f.ID, err)
		}
		if f.Group == "" || f.GroupLabel == "" {
			t.Errorf("format %q has no group", f.ID)
		}
	}

	// the default brochure format must exist
	if !seen["a4-portrait"] {
		t.Error("a4-portrait missing from catalog")
	}
}

func TestSizeValidate(t *testing.T) {
	if err := (Size{Width: 100, Height: 50}).Validate(); err != nil {
		t.Errorf("valid size rejected: %v", err)
	}
	if err := (Size{}).Validate(); err == nil {
		t.Error("zero size accepted")
	}
	if err := (Size{Width: -10, Height: 50}).Validate(); err == nil {
		t.Error("negative width accepted")
	}
}
