package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/propsheet/brochure"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	// optional .env for the vision service URL etc.
	godotenv.Load()

	app := kingpin.New("brochure", "Property Brochure Builder")
	app.HelpFlag.Short('h')

	logLevel := app.Flag("log", "Log level (debug, info, warning, error)").Default("warning").String()

	formats := app.Command("formats", "List the output format catalog").Default()
	formatsGroup := formats.Flag("group", "Show only this format group").Short('g').String()

	app.Command("assets", "List the design asset catalogs")

	resize := app.Command("resize", "Adapt a canvas layout to another format")
	var (
		resizeLayout = resize.Arg("layout", "Layout JSON file").Required().String()
		resizeTo     = resize.Flag("to", "Target format id").Short('t').String()
		resizeWidth  = resize.Flag("width", "Target width in px").Float64()
		resizeHeight = resize.Flag("height", "Target height in px").Float64()
		resizeMode   = resize.Flag("mode", "Resize mode (smart, stretch, fit)").Short('m').Default("smart").String()
		resizeOut    = resize.Flag("output", "Output file (default: stdout)").Short('o').String()
	)

	build := app.Command("build", "Assemble and export a brochure")
	var (
		buildPhotos   = build.Arg("photos", "Directory with uploaded photos").Required().String()
		buildProperty = build.Flag("property", "Property/agent YAML file").Short('p').Required().String()
		buildFormat   = build.Flag("format", "Export format").Short('f').Default("pdf").Enum("pdf", "png", "jpg", "svg", "gif", "webp", "html")
		buildOut      = build.Flag("output", "Output directory").Short('o').Default(".").String()
		buildName     = build.Flag("name", "Base name for output files").Default("brochure").String()
		buildPalette  = build.Flag("palette", "Color palette id").Default("classic").String()
		buildFrame    = build.Flag("frame", "Photo frame style id").Default("none").String()
		buildFilter   = build.Flag("filter", "Photo filter preset id").Default("none").String()
		buildPlan     = build.Flag("floorplan", "Floor-plan PDF to include").String()
		buildLocation = build.Flag("location", "Photo file name to pin to the location page").Strings()
		buildData     = build.Flag("data", "Session data directory").Default("./data").String()
		buildOffline  = build.Flag("offline", "Skip the vision service, categorize by filename").Bool()
		buildProgress = build.Flag("progress", "Subscribe to service-side progress events").Bool()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	brochure.SetLogLevel(*logLevel)

	var err error
	switch command {
	case "formats":
		err = doFormats(*formatsGroup)
	case "assets":
		err = doAssets()
	case "resize":
		err = doResize(*resizeLayout, *resizeTo, *resizeWidth, *resizeHeight, *resizeMode, *resizeOut)
	case "build":
		err = doBuild(buildOptions{
			photoDir:  *buildPhotos,
			property:  *buildProperty,
			format:    *buildFormat,
			outDir:    *buildOut,
			name:      *buildName,
			palette:   *buildPalette,
			frame:     *buildFrame,
			filter:    *buildFilter,
			floorplan: *buildPlan,
			location:  *buildLocation,
			dataDir:   *buildData,
			offline:   *buildOffline,
			progress:  *buildProgress,
		})
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func doFormats(group string) error {
	fmt.Println("Output Formats")
	fmt.Println("--------------")

	lastGroup := ""
	for _, f := range brochure.AllFormats() {
		if group != "" && f.Group != group {
			continue
		}
		if f.Group != lastGroup {
			fmt.Printf("\n%v\n", f.GroupLabel)
			lastGroup = f.Group
		}
		fmt.Printf("  %-18v %v x %v %v  (%v)\n", f.ID, f.Width, f.Height, f.Unit, f.Name)
	}

	return nil
}

func doAssets() error {
	fmt.Println("Design Assets")
	fmt.Println("-------------")

	fmt.Println("\nGraphics")
	for _, g := range brochure.AllGraphics() {
		fmt.Printf("  %-18v %v\n", g.ID, g.Name)
	}

	fmt.Println("\nText Styles")
	for _, t := range brochure.AllTextStyles() {
		fmt.Printf("  %-18v %v, %vpt\n", t.ID, t.Font, t.Size)
	}

	fmt.Println("\nPalettes")
	for _, p := range brochure.AllPalettes() {
		fmt.Printf("  %-18v %v\n", p.ID, p.Colors)
	}

	fmt.Println("\nFrames")
	for _, f := range brochure.AllFrameStyles() {
		fmt.Printf("  %-18v %v\n", f.ID, f.Name)
	}

	return nil
}
