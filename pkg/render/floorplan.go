package render

import (
	"os"
	"path/filepath"
	"sort"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/propsheet/brochure"
	"github.com/propsheet/brochure/internal/logging"
)

// IngestFloorPlan converts an uploaded floor-plan PDF into a library
// photo with the FloorPlan category.
//
// The embedded image of the first PDF page is extracted into workDir
// and registered in the library. Floor plans that arrive as plain
// images can be added to the library directly instead.
func IngestFloorPlan(lib *brochure.Library, pdfPath, workDir string) (*brochure.Photo, error) {
	count, err := pdfapi.PageCountFile(pdfPath)
	if err != nil {
		return nil, brochure.Wrap(err, "failed to read floor-plan PDF %q", pdfPath)
	}
	if count == 0 {
		return nil, brochure.NewValidationError("floor-plan PDF %q has no pages", pdfPath)
	}
	logging.Debug("Floor-plan PDF has %d pages, extracting first", count)

	err = os.MkdirAll(workDir, 0755)
	if err != nil {
		return nil, err
	}

	err = pdfapi.ExtractImagesFile(pdfPath, workDir, []string{"1"}, nil)
	if err != nil {
		return nil, brochure.Wrap(err, "failed to extract floor-plan image")
	}

	path, err := firstExtractedImage(workDir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	p := lib.Add(filepath.Base(path), path, info.Size())
	p.Category = brochure.FloorPlan

	return p, nil
}

func firstExtractedImage(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	names := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", brochure.NewNotFound("no image extracted from floor-plan PDF")
	}

	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}
