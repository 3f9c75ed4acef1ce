// Package render turns assembled brochure pages into PDF, bitmap and
// SVG output.
package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"

	// register WebP decoding for uploaded photos
	_ "golang.org/x/image/webp"

	"github.com/propsheet/brochure"
	"github.com/propsheet/brochure/internal/logging"
)

// Context holds the styling parameters and cached data for rendering
// operations. If multiple pages are rendered, they should share one
// Context.
type Context struct {
	// PageSize is the pixel size of rendered bitmap pages.
	PageSize brochure.Size
	// Palette supplies the page colors, primary color first.
	Palette brochure.Palette
	// Frame is drawn around each placed photo.
	Frame brochure.FrameStyle
	// FilterID is the photo filter preset applied to every photo.
	FilterID string

	photos  map[string]image.Image
	photoMx sync.Mutex
}

// NewContext sets up a rendering context with the default format
// (A4 portrait), the classic palette and no frame.
func NewContext() *Context {
	f, _ := brochure.GetFormat("a4-portrait")
	p, _ := brochure.GetPalette("classic")
	fr, _ := brochure.GetFrameStyle("none")

	return &Context{
		PageSize: f.Size(),
		Palette:  p,
		Frame:    fr,
	}
}

// loadPhoto reads and decodes a photo from disk, applies the filter
// preset and caches the result.
func (c *Context) loadPhoto(p *brochure.Photo) (image.Image, error) {
	c.photoMx.Lock()
	defer c.photoMx.Unlock()

	if c.photos == nil {
		c.photos = make(map[string]image.Image)
	}
	cached := c.photos[p.ID]
	if cached != nil {
		return cached, nil
	}

	logging.Debug("Load photo from %q", p.Path)
	img, err := imaging.Open(p.Path)
	if err != nil {
		return nil, brochure.Wrap(err, "failed to load photo %q", p.Name)
	}

	filtered, err := ApplyFilter(c.FilterID, img)
	if err != nil {
		return nil, err
	}

	c.photos[p.ID] = filtered

	return filtered, nil
}

// color helpers ---------------------------------------------------------------

// paletteColor returns the n-th palette color, or the fallback when
// the palette is shorter.
func (c *Context) paletteColor(n int, fallback color.RGBA) color.RGBA {
	if n >= len(c.Palette.Colors) {
		return fallback
	}
	return parseHex(c.Palette.Colors[n], fallback)
}

// parseHex converts a #RRGGBB string to a color.
// Malformed values yield the fallback.
func parseHex(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}

	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi := hexDigit(s[1+i*2])
		lo := hexDigit(s[2+i*2])
		if hi < 0 || lo < 0 {
			return fallback
		}
		v[i] = uint8(hi<<4 | lo)
	}

	return color.RGBA{v[0], v[1], v[2], 255}
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}
