package render

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/propsheet/brochure"
)

// Filter is a named photo filter preset.
type Filter struct {
	ID    string
	Name  string
	apply func(image.Image) *image.NRGBA
}

var filterCatalog = []Filter{
	{ID: "none", Name: "None", apply: imaging.Clone},
	{ID: "mono", Name: "Mono", apply: imaging.Grayscale},
	{ID: "bright", Name: "Bright", apply: func(i image.Image) *image.NRGBA {
		return imaging.AdjustBrightness(i, 12)
	}},
	{ID: "crisp", Name: "Crisp", apply: func(i image.Image) *image.NRGBA {
		return imaging.Sharpen(imaging.AdjustContrast(i, 15), 0.5)
	}},
	{ID: "warm", Name: "Warm", apply: func(i image.Image) *image.NRGBA {
		return imaging.AdjustSaturation(imaging.AdjustGamma(i, 1.1), 10)
	}},
	{ID: "cool", Name: "Cool", apply: func(i image.Image) *image.NRGBA {
		return imaging.AdjustSaturation(imaging.AdjustContrast(i, 5), -20)
	}},
	{ID: "soft", Name: "Soft Focus", apply: func(i image.Image) *image.NRGBA {
		return imaging.Blur(i, 1.2)
	}},
}

// ApplyFilter applies the filter preset with the given id.
// An empty id means no filter.
func ApplyFilter(id string, img image.Image) (image.Image, error) {
	if id == "" || id == "none" {
		return img, nil
	}

	for _, f := range filterCatalog {
		if f.ID == id {
			return f.apply(img), nil
		}
	}
	return nil, brochure.NewNotFound("no filter with id %q", id)
}

// AllFilters lists the filter presets in order.
func AllFilters() []Filter {
	all := make([]Filter, len(filterCatalog))
	copy(all, filterCatalog)
	return all
}
