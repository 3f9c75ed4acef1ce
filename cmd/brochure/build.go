package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/propsheet/brochure"
	"github.com/propsheet/brochure/pkg/render"
	"github.com/propsheet/brochure/pkg/vision"
)

type buildOptions struct {
	photoDir  string
	property  string
	format    string
	outDir    string
	name      string
	palette   string
	frame     string
	filter    string
	floorplan string
	location  []string
	dataDir   string
	offline   bool
	progress  bool
}

// propertyFile is the YAML document with the listing form data.
type propertyFile struct {
	Property brochure.Property `yaml:"property"`
	Agent    brochure.Agent    `yaml:"agent"`
}

func doBuild(opts buildOptions) error {
	form, err := readPropertyFile(opts.property)
	if err != nil {
		return err
	}

	session := brochure.NewSession()
	lib := session.Library

	n, err := addPhotos(lib, opts.photoDir, opts.location)
	if err != nil {
		return err
	}
	fmt.Printf("%v %d photos from %v\n", checkmark, n, opts.photoDir)

	if opts.floorplan != "" {
		workDir := filepath.Join(opts.dataDir, "floorplan")
		_, err = render.IngestFloorPlan(lib, opts.floorplan, workDir)
		if err != nil {
			return err
		}
		fmt.Printf("%v floor plan from %v\n", checkmark, opts.floorplan)
	}

	err = categorize(lib, opts.offline, opts.progress)
	if err != nil {
		return err
	}

	pages, err := brochure.NewAssembler().Generate(lib, form.Property, form.Agent)
	if err != nil {
		return err
	}
	session.SetPages(pages)

	store := brochure.NewDirStore(opts.dataDir)
	err = store.SaveSession(session)
	if err != nil {
		return err
	}

	rc, err := renderContext(opts)
	if err != nil {
		return err
	}

	err = os.MkdirAll(opts.outDir, 0755)
	if err != nil {
		return err
	}

	written, err := export(rc, pages, opts)
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Printf("%v %v\n", checkmark, path)
	}
	fmt.Printf("%v brochure with %d pages\n", checkmark, len(pages))

	return nil
}

func readPropertyFile(path string) (*propertyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	form := &propertyFile{}
	err = yaml.Unmarshal(data, form)
	if err != nil {
		return nil, brochure.Wrap(err, "failed to parse %q", path)
	}

	return form, nil
}

// addPhotos registers every image in dir with the library and pins the
// named location photos. Returns the number of photos added.
func addPhotos(lib *brochure.Library, dir string, location []string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		default:
			continue
		}

		info, err := e.Info()
		if err != nil {
			return n, err
		}

		p := lib.Add(e.Name(), filepath.Join(dir, e.Name()), info.Size())
		n++

		for _, name := range location {
			if name == e.Name() {
				err = lib.MarkLocation(p.ID)
				if err != nil {
					return n, err
				}
			}
		}
	}

	if n == 0 {
		fmt.Printf("%v no photos found in %v\n", crossmark, dir)
	}
	return n, nil
}

func categorize(lib *brochure.Library, offline, progress bool) error {
	var client *vision.Client
	url := os.Getenv("BROCHURE_VISION_URL")
	if url != "" && !offline {
		client = vision.NewClient(url)
	}
	if client == nil {
		fmt.Printf("%v categorizing by filename\n", ellipsis)
	}

	cat := vision.NewCategorizer(client)
	cat.OnProgress = func(done, total int) {
		fmt.Printf("%v categorized %d/%d\n", ellipsis, done, total)
	}

	if progress && client != nil {
		nf := client.Notifications()
		// the handler must be registered before Connect starts the
		// read loop
		nf.OnProgress(func(e vision.ProgressEvent) {
			fmt.Printf("%v %v %d/%d\n", ellipsis, e.Stage, e.Done, e.Total)
		})
		err := nf.Connect()
		if err != nil {
			fmt.Printf("%v progress events unavailable: %v\n", crossmark, err)
		} else {
			defer nf.Disconnect()
		}
	}

	return cat.Categorize(context.Background(), lib)
}

func renderContext(opts buildOptions) (*render.Context, error) {
	rc := render.NewContext()

	p, err := brochure.GetPalette(opts.palette)
	if err != nil {
		return nil, err
	}
	rc.Palette = p

	fr, err := brochure.GetFrameStyle(opts.frame)
	if err != nil {
		return nil, err
	}
	rc.Frame = fr

	// fail early on unknown presets instead of on the first photo
	if opts.filter != "" && opts.filter != "none" {
		found := false
		for _, f := range render.AllFilters() {
			if f.ID == opts.filter {
				found = true
				break
			}
		}
		if !found {
			return nil, brochure.NewNotFound("no filter with id %q", opts.filter)
		}
	}
	rc.FilterID = opts.filter

	return rc, nil
}

// export writes the brochure in the selected format. Single-document
// formats go through ExportBrochure; the page-per-file formats are
// written concurrently.
func export(rc *render.Context, pages []*brochure.Page, opts buildOptions) ([]string, error) {
	switch opts.format {
	case "pdf", "html":
		return render.ExportBrochure(rc, pages, opts.format, opts.name, opts.outDir)
	}

	written := make([]string, len(pages))
	var group errgroup.Group

	for i, page := range pages {
		i, page := i, page
		group.Go(func() error {
			var buf bytes.Buffer
			actual, err := render.ExportPage(rc, page, opts.format, &buf)
			if err != nil {
				return err
			}

			name := fmt.Sprintf("%s-%d", opts.name, i+1)
			path := filepath.Join(opts.outDir, render.Filename(name, actual))
			err = os.WriteFile(path, buf.Bytes(), 0644)
			if err != nil {
				return err
			}

			written[i] = path
			return nil
		})
	}

	err := group.Wait()
	return written, err
}
