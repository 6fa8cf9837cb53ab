// Command cardpress renders a card project and an optional CSV record set
// into a print-ready PDF.
//
//	cardpress -project deck.json -csv names.csv -o out.pdf -standard -cards 9
//
// Export settings can also come from a YAML profile (-profile), with
// command-line flags taking precedence.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/cardpress"
	"github.com/gogpu/cardpress/fontscan"
	"github.com/gogpu/cardpress/layout"
	"github.com/gogpu/cardpress/render"
)

// profile is the YAML export profile format.
type profile struct {
	Page         string    `yaml:"page"`
	StandardCard bool      `yaml:"standard_card"`
	CardsPerPage int       `yaml:"cards_per_page"`
	CustomSize   []float64 `yaml:"custom_size_inches"`
	RenderPPI    float64   `yaml:"render_ppi"`
	FontDirs     []string  `yaml:"font_dirs"`
}

func main() {
	var (
		projectPath = flag.String("project", "", "project JSON file (required)")
		csvPath     = flag.String("csv", "", "CSV record source (optional)")
		outPath     = flag.String("o", "out.pdf", "output PDF path")
		profilePath = flag.String("profile", "", "YAML export profile (optional)")
		pageName    = flag.String("page", "LETTER", "page size: LETTER or A4")
		standard    = flag.Bool("standard", false, "use standard 2.5x3.5in card cells")
		cards       = flag.Int("cards", 0, "cards per page: 8 or 9 (0 = auto-fit)")
		customSize  = flag.String("size", "", "custom cell size in inches, e.g. 5x7")
		ppi         = flag.Float64("ppi", render.DefaultPPI, "render density in pixels per inch")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		cardpress.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *projectPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	var prof profile
	if *profilePath != "" {
		data, err := os.ReadFile(*profilePath)
		if err != nil {
			log.Fatalf("reading profile: %v", err)
		}
		if err := yaml.Unmarshal(data, &prof); err != nil {
			log.Fatalf("parsing profile: %v", err)
		}
	}

	// Flags override the profile.
	opts := layout.Options{
		UseStandardCard: prof.StandardCard || *standard,
		CardsPerPage:    prof.CardsPerPage,
	}
	if *cards != 0 {
		opts.CardsPerPage = *cards
	}
	if len(prof.CustomSize) == 2 {
		opts.CustomSizeInches = &[2]float64{prof.CustomSize[0], prof.CustomSize[1]}
	}
	if *customSize != "" {
		var w, h float64
		if _, err := fmt.Sscanf(*customSize, "%fx%f", &w, &h); err != nil {
			log.Fatalf("invalid -size %q: want WxH in inches", *customSize)
		}
		opts.CustomSizeInches = &[2]float64{w, h}
	}

	name := *pageName
	if prof.Page != "" && !flagWasSet("page") {
		name = prof.Page
	}
	page, err := layout.ParsePageSize(name)
	if err != nil {
		log.Fatal(err)
	}

	density := *ppi
	if prof.RenderPPI > 0 && !flagWasSet("ppi") {
		density = prof.RenderPPI
	}

	doc, err := loadProject(*projectPath)
	if err != nil {
		log.Fatal(err)
	}

	var records []cardpress.Record
	if *csvPath != "" {
		records, err = loadRecords(*csvPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	exporter := &layout.Exporter{
		Flattener: &render.Flattener{
			PPI:   density,
			Fonts: fontscan.Scan(prof.FontDirs...),
		},
		Page:    page,
		Options: opts,
	}
	if err := exporter.Export(*outPath, doc, records); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func loadProject(path string) (*cardpress.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cardpress.LoadProject(f)
}

func loadRecords(path string) ([]cardpress.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cardpress.ReadRecords(f)
}
