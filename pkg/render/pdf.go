package render

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"github.com/propsheet/brochure"
	"github.com/propsheet/brochure/internal/logging"
)

// RenderPDF renders the complete brochure to a PDF document and
// writes it to the given writer.
func RenderPDF(c *Context, pages []*brochure.Page, title string, w io.Writer) error {
	logging.Debug("Render PDF %q with %d pages", title, len(pages))
	pdf := setupPDF("A4", title)

	for _, page := range pages {
		err := renderPDFPage(pdf, c, page)
		if err != nil {
			return err
		}
	}

	return pdf.Output(w)
}

// RenderPDFPage renders a single page to a standalone PDF.
func RenderPDFPage(c *Context, page *brochure.Page, w io.Writer) error {
	pdf := setupPDF("A4", page.Title)

	err := renderPDFPage(pdf, c, page)
	if err != nil {
		return err
	}

	return pdf.Output(w)
}

func setupPDF(pageSize, title string) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(0, 8, 0) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("brochure", true)

	if title != "" {
		pdf.SetTitle(title, true)
		now := time.Now().UTC()
		pdf.SetCreationDate(now)
		pdf.SetModificationDate(now)

		pdf.SetFooterFunc(func() {
			pdf.SetFont("helvetica", "", 8)
			pdf.SetTextColor(127, 127, 127)
			pdf.SetY(-20)
			pdf.SetX(24)
			pdf.Cellf(0, 10, "%d / {totalPages}  |  %v", pdf.PageNo(), title)
		})
	}

	return pdf
}

func renderPDFPage(pdf *gofpdf.Fpdf, c *Context, page *brochure.Page) error {
	pdf.AddPage()

	wPage, hPage := pdf.GetPageSize()
	size := brochure.Size{Width: wPage, Height: hPage}

	if page.Layout != brochure.PhotosOnly {
		renderPDFHeader(pdf, c, page)
	}

	switch page.Type {
	case brochure.CoverPage:
		renderCoverText(pdf, c, page)
	case brochure.OverviewPage:
		renderPropertyDetails(pdf, page)
	case brochure.LocationPage:
		renderLocationText(pdf, page)
	case brochure.ContactPage:
		renderAgentBlock(pdf, page)
	}

	slots := Slots(len(page.Photos), size, page.Layout)
	for i, slot := range slots {
		err := placePhoto(pdf, c, page, page.Photos[i], slot)
		if err != nil {
			return err
		}
	}

	return nil
}

func renderPDFHeader(pdf *gofpdf.Fpdf, c *Context, page *brochure.Page) {
	style, err := brochure.GetTextStyle("headline")
	if err != nil {
		return
	}
	setFont(pdf, style)

	primary := c.paletteColor(0, color.RGBA{27, 38, 49, 255})
	pdf.SetTextColor(int(primary.R), int(primary.G), int(primary.B))

	pdf.SetXY(pageMargin, pageMargin)
	pdf.CellFormat(0, style.Size+8, page.Title, "", 1, "L", false, 0, "")

	// accent bar under the title
	accent := c.paletteColor(1, color.RGBA{184, 134, 11, 255})
	pdf.SetFillColor(int(accent.R), int(accent.G), int(accent.B))
	pdf.Rect(pageMargin, pageMargin+headerHeight-14, 120, 6, "F")
}

func renderCoverText(pdf *gofpdf.Fpdf, c *Context, page *brochure.Page) {
	if page.Content == nil || page.Content.Property == nil {
		return
	}
	p := page.Content.Property

	style, err := brochure.GetTextStyle("price")
	if err != nil {
		return
	}
	setFont(pdf, style)

	if p.Price > 0 {
		pdf.SetXY(pageMargin, pageMargin+headerHeight-44)
		pdf.CellFormat(0, style.Size+6, formatPrice(p.Price), "", 1, "L", false, 0, "")
	}
}

func renderPropertyDetails(pdf *gofpdf.Fpdf, page *brochure.Page) {
	if page.Content == nil || page.Content.Property == nil {
		return
	}
	p := page.Content.Property

	details := make([]string, 0)
	if p.Bedrooms > 0 {
		details = append(details, fmt.Sprintf("%d bedrooms", p.Bedrooms))
	}
	if p.Bathrooms > 0 {
		details = append(details, fmt.Sprintf("%d bathrooms", p.Bathrooms))
	}
	if p.SizeSqFt > 0 {
		details = append(details, fmt.Sprintf("%.0f sq ft", p.SizeSqFt))
	}
	if p.Tenure != "" {
		details = append(details, p.Tenure)
	}

	style, err := brochure.GetTextStyle("body")
	if err != nil {
		return
	}
	setFont(pdf, style)
	pdf.SetXY(pageMargin, pageMargin+headerHeight-36)
	pdf.CellFormat(0, style.Size+4, strings.Join(details, "  |  "), "", 1, "L", false, 0, "")

	if p.Description != "" {
		pdf.SetX(pageMargin)
		pdf.MultiCell(0, style.Size+3, p.Description, "", "L", false)
	}
}

func renderLocationText(pdf *gofpdf.Fpdf, page *brochure.Page) {
	if page.Content == nil || page.Content.Property == nil {
		return
	}
	p := page.Content.Property

	style, err := brochure.GetTextStyle("subhead")
	if err != nil {
		return
	}
	setFont(pdf, style)
	pdf.SetXY(pageMargin, pageMargin+headerHeight-40)
	pdf.CellFormat(0, style.Size+6, fmt.Sprintf("%v, %v", p.Address, p.Postcode), "", 1, "L", false, 0, "")
}

func renderAgentBlock(pdf *gofpdf.Fpdf, page *brochure.Page) {
	if page.Content == nil || page.Content.Agent == nil {
		return
	}
	a := page.Content.Agent

	style, err := brochure.GetTextStyle("body")
	if err != nil {
		return
	}
	setFont(pdf, style)

	lines := []string{a.Name, a.Agency, a.Phone, a.Email, a.Website}
	y := pageMargin + headerHeight
	for _, line := range lines {
		if line == "" {
			continue
		}
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(0, style.Size+5, line, "", 1, "L", false, 0, "")
		y += style.Size + 5
	}
}

// placePhoto crops the photo to the slot's aspect ratio and embeds it.
func placePhoto(pdf *gofpdf.Fpdf, c *Context, page *brochure.Page, photo *brochure.Photo, slot Rect) error {
	img, err := c.loadPhoto(photo)
	if err != nil {
		return err
	}

	// crop at double resolution so print output stays sharp
	fitted := imaging.Fill(img, int(slot.W)*2, int(slot.H)*2, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	err = png.Encode(&buf, fitted)
	if err != nil {
		return err
	}

	name := fmt.Sprintf("p%d-%s", page.ID, photo.ID)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, slot.X, slot.Y, slot.W, slot.H, false, opts, 0, "")

	return nil
}

func setFont(pdf *gofpdf.Fpdf, style brochure.TextStyle) {
	variant := ""
	if style.Bold {
		variant += "B"
	}
	if style.Italic {
		variant += "I"
	}
	pdf.SetFont(style.Font, variant, style.Size)

	col := parseHex(style.Color, color.RGBA{44, 62, 80, 255})
	pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
}

// formatPrice renders a GBP price with thousands separators.
func formatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	var b strings.Builder
	b.WriteString("£")
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(r)
	}
	return b.String()
}
