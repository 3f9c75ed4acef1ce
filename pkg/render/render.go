package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/propsheet/brochure"
	"github.com/propsheet/brochure/internal/logging"
)

// RenderPNG paints the given page and writes it as PNG to the given
// writer.
func RenderPNG(c *Context, page *brochure.Page, w io.Writer) error {
	img, err := renderImage(c, page)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// renderImage paints one page onto a fresh bitmap at the context's
// page size.
func renderImage(c *Context, page *brochure.Page) (*image.RGBA, error) {
	logging.Debug("Render page %v (%q)", page.ID, page.Title)

	width := int(c.PageSize.Width)
	height := int(c.PageSize.Height)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	// background
	bg := c.paletteColor(2, color.RGBA{255, 255, 255, 255})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(dst)

	// header band with an accent bar; the title text itself is
	// rendered by the PDF/SVG exporters
	if page.Layout != brochure.PhotosOnly {
		accent := c.paletteColor(1, color.RGBA{184, 134, 11, 255})
		gc.SetFillColor(accent)
		draw2dkit.Rectangle(gc, pageMargin, pageMargin+headerHeight-14, pageMargin+120, pageMargin+headerHeight-8)
		gc.Fill()
	}

	// photos
	slots := Slots(len(page.Photos), c.PageSize, page.Layout)
	for i, slot := range slots {
		photo := page.Photos[i]
		img, err := c.loadPhoto(photo)
		if err != nil {
			return nil, err
		}

		fitted := imaging.Fill(img, int(slot.W), int(slot.H), imaging.Center, imaging.Lanczos)
		r := image.Rect(int(slot.X), int(slot.Y), int(slot.X+slot.W), int(slot.Y+slot.H))
		draw.Draw(dst, r, fitted, image.Point{}, draw.Over)

		drawFrame(gc, c.Frame, slot)
	}

	return dst, nil
}

// drawFrame strokes the frame preset around a photo slot.
func drawFrame(gc *draw2dimg.GraphicContext, f brochure.FrameStyle, slot Rect) {
	if f.Width <= 0 {
		return
	}

	gc.SetStrokeColor(parseHex(f.Color, color.RGBA{44, 62, 80, 255}))
	gc.SetLineWidth(f.Width)

	draw2dkit.Rectangle(gc, slot.X, slot.Y, slot.X+slot.W, slot.Y+slot.H)
	gc.Stroke()

	if f.Double {
		in := f.Inset
		draw2dkit.Rectangle(gc, slot.X+in, slot.Y+in, slot.X+slot.W-in, slot.Y+slot.H-in)
		gc.Stroke()
	}
}
