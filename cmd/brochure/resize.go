package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/propsheet/brochure"
)

// layoutFile is the on-disk layout exchanged with the editor frontend.
type layoutFile struct {
	Canvas   brochure.Size      `json:"canvas"`
	Elements []brochure.Element `json:"elements"`
}

func doResize(layoutPath, formatID string, width, height float64, modeName, outPath string) error {
	mode, err := brochure.ParseMode(modeName)
	if err != nil {
		return err
	}

	to, err := resizeTarget(formatID, width, height)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(layoutPath)
	if err != nil {
		return err
	}

	var layout layoutFile
	err = json.Unmarshal(data, &layout)
	if err != nil {
		return brochure.Wrap(err, "failed to parse layout %q", layoutPath)
	}

	resized, err := brochure.Resize(layout.Canvas, to, layout.Elements, mode)
	if err != nil {
		return err
	}

	out := layoutFile{Canvas: to, Elements: resized}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(&out)
	if err != nil {
		return err
	}

	if outPath != "" {
		fmt.Printf("%v %v x %v layout written to %v\n", checkmark, to.Width, to.Height, outPath)
	}
	return nil
}

// resizeTarget resolves the target size from either a format id or
// explicit pixel dimensions.
func resizeTarget(formatID string, width, height float64) (brochure.Size, error) {
	if formatID != "" {
		f, err := brochure.GetFormat(formatID)
		if err != nil {
			return brochure.Size{}, err
		}
		return f.Size(), nil
	}

	to := brochure.Size{Width: width, Height: height}
	err := to.Validate()
	if err != nil {
		return brochure.Size{}, brochure.Wrap(err, "need either --to or --width and --height")
	}
	return to, nil
}
