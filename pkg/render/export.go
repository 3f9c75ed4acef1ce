package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/propsheet/brochure"
	"github.com/propsheet/brochure/internal/logging"
)

// ExportFormats are the supported export targets.
var ExportFormats = []string{"pdf", "png", "jpg", "svg", "gif", "webp", "html"}

// Filename builds the download name for an export.
func Filename(base, format string) string {
	return base + "." + format
}

// ExportPage writes a single page in the given format.
//
// Formats without an encoder degrade rather than fail: webp falls
// back to png. The format actually written is returned.
func ExportPage(c *Context, page *brochure.Page, format string, w io.Writer) (string, error) {
	switch format {
	case "png":
		return "png", RenderPNG(c, page, w)
	case "jpg", "jpeg":
		img, err := renderImage(c, page)
		if err != nil {
			return "", err
		}
		return "jpg", jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case "gif":
		img, err := renderImage(c, page)
		if err != nil {
			return "", err
		}
		return "gif", gif.Encode(w, img, nil)
	case "webp":
		// no WebP encoder available in pure Go
		logging.Warning("WebP export unavailable, falling back to PNG")
		return "png", RenderPNG(c, page, w)
	case "svg":
		return "svg", RenderSVG(c, page, w)
	case "pdf":
		return "pdf", RenderPDFPage(c, page, w)
	case "html":
		return "html", RenderHTML(c, []*brochure.Page{page}, page.Title, w)
	default:
		return "", brochure.NewValidationError("unsupported export format %q", format)
	}
}

// ExportPageScaled renders the page and scales the bitmap to the
// given target size before encoding it as PNG. Used when exporting a
// page for a different output format than it was designed at.
func ExportPageScaled(c *Context, page *brochure.Page, to brochure.Size, w io.Writer) error {
	err := to.Validate()
	if err != nil {
		return err
	}

	img, err := renderImage(c, page)
	if err != nil {
		return err
	}

	scaled := scaleImage(img, image.Rect(0, 0, int(to.Width), int(to.Height)))
	return png.Encode(w, scaled)
}

func scaleImage(i image.Image, r image.Rectangle) image.Image {
	dst := image.NewRGBA(r)
	s := draw.BiLinear
	s.Scale(dst, r, i, i.Bounds(), draw.Over, nil)
	return dst
}

// ExportBrochure writes the complete brochure to outDir.
//
// PDF and HTML produce one file named "{base}.{ext}"; the bitmap and
// SVG formats produce one file per page, "{base}-{n}.{ext}".
// Returns the written file paths.
func ExportBrochure(c *Context, pages []*brochure.Page, format, base, outDir string) ([]string, error) {
	written := make([]string, 0)

	single := func(render func(io.Writer) error, ext string) error {
		path := filepath.Join(outDir, Filename(base, ext))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		err = render(f)
		if err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	switch format {
	case "pdf":
		err := single(func(w io.Writer) error {
			return RenderPDF(c, pages, base, w)
		}, "pdf")
		return written, err
	case "html":
		err := single(func(w io.Writer) error {
			return RenderHTML(c, pages, base, w)
		}, "html")
		return written, err
	}

	for i, page := range pages {
		name := fmt.Sprintf("%s-%d", base, i+1)

		var buf bytes.Buffer
		actual, err := ExportPage(c, page, format, &buf)
		if err != nil {
			return written, err
		}

		path := filepath.Join(outDir, Filename(name, actual))
		err = os.WriteFile(path, buf.Bytes(), 0644)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

var htmlTemplate = template.Must(template.New("brochure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; background: #555; }
.page { display: block; margin: 16px auto; box-shadow: 0 2px 8px rgba(0,0,0,.4); }
</style>
</head>
<body>
{{- range .Pages}}
<img class="page" alt="{{.Title}}" src="data:image/png;base64,{{.Data}}">
{{- end}}
</body>
</html>
`))

type htmlPage struct {
	Title string
	Data  string
}

// RenderHTML writes a self-contained HTML document with every page
// embedded as a PNG image.
func RenderHTML(c *Context, pages []*brochure.Page, title string, w io.Writer) error {
	data := struct {
		Title string
		Pages []htmlPage
	}{Title: title}

	for _, page := range pages {
		var buf bytes.Buffer
		err := RenderPNG(c, page, &buf)
		if err != nil {
			return err
		}
		data.Pages = append(data.Pages, htmlPage{
			Title: page.Title,
			Data:  base64.StdEncoding.EncodeToString(buf.Bytes()),
		})
	}

	return htmlTemplate.Execute(w, data)
}
