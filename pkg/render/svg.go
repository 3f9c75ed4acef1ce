package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/disintegration/imaging"

	"github.com/propsheet/brochure"
)

// RenderSVG renders a single page as a self-contained SVG document
// with the photos embedded as data URIs.
func RenderSVG(c *Context, page *brochure.Page, w io.Writer) error {
	width := int(c.PageSize.Width)
	height := int(c.PageSize.Height)

	canvas := svg.New(w)
	canvas.Start(width, height)

	bg := c.Palette.Colors
	bgFill := "#FFFFFF"
	if len(bg) > 2 {
		bgFill = bg[2]
	}
	canvas.Rect(0, 0, width, height, "fill:"+bgFill)

	if page.Layout != brochure.PhotosOnly && page.Title != "" {
		style, err := brochure.GetTextStyle("headline")
		if err == nil {
			canvas.Text(int(pageMargin), int(pageMargin+style.Size),
				page.Title,
				fmt.Sprintf("font-family:%s;font-size:%.0fpx;font-weight:bold;fill:%s",
					style.Font, style.Size, style.Color))
		}
	}

	slots := Slots(len(page.Photos), c.PageSize, page.Layout)
	for i, slot := range slots {
		href, err := photoDataURI(c, page.Photos[i], slot)
		if err != nil {
			return err
		}
		canvas.Image(int(slot.X), int(slot.Y), int(slot.W), int(slot.H), href)

		if c.Frame.Width > 0 {
			canvas.Rect(int(slot.X), int(slot.Y), int(slot.W), int(slot.H),
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.1f", c.Frame.Color, c.Frame.Width))
		}
	}

	canvas.End()
	return nil
}

func photoDataURI(c *Context, photo *brochure.Photo, slot Rect) (string, error) {
	img, err := c.loadPhoto(photo)
	if err != nil {
		return "", err
	}

	fitted := imaging.Fill(img, int(slot.W), int(slot.H), imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	err = png.Encode(&buf, fitted)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
