package render

import (
	"github.com/propsheet/brochure"
)

// Page layout constants, in page-space units.
const (
	pageMargin   = 40.0
	slotGap      = 16.0
	headerHeight = 90.0
)

// Rect is one photo slot on a page.
type Rect struct {
	X, Y, W, H float64
}

// slot row shapes per photo count; each entry is the number of
// photos in one row, top to bottom.
var slotRows = map[int][]int{
	1: {1},
	2: {1, 1},
	3: {1, 2},
	4: {2, 2},
	5: {2, 3},
	6: {2, 2, 2},
}

// Slots computes the photo rectangles for a page with n photos on a
// canvas of the given size. Pages with the photos-only layout use the
// full canvas; others reserve a header band for the title.
//
// n is capped at 6; callers chunk larger sets onto multiple pages.
func Slots(n int, size brochure.Size, layout brochure.PageLayout) []Rect {
	if n <= 0 {
		return nil
	}
	if n > 6 {
		n = 6
	}

	top := pageMargin
	if layout != brochure.PhotosOnly {
		top += headerHeight
	}

	width := size.Width - 2*pageMargin
	height := size.Height - top - pageMargin

	rows := slotRows[n]
	rowHeight := (height - float64(len(rows)-1)*slotGap) / float64(len(rows))

	rects := make([]Rect, 0, n)
	y := top
	for _, cols := range rows {
		colWidth := (width - float64(cols-1)*slotGap) / float64(cols)
		x := pageMargin
		for i := 0; i < cols; i++ {
			rects = append(rects, Rect{X: x, Y: y, W: colWidth, H: rowHeight})
			x += colWidth + slotGap
		}
		y += rowHeight + slotGap
	}

	return rects
}
