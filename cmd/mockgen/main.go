package main

import (
	"agendas-mcp/cmd/mockgen/engine"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

func main() {
	now := time.Now()
	out := flag.String("out", "./dados.json", "Output file for the generated dataset")
	facilities := flag.Int("facilities", 3, "Number of facilities")
	professionals := flag.Int("professionals", 8, "Professionals per facility")
	year := flag.Int("year", now.Year(), "Year of the generated month")
	month := flag.Int("month", int(now.Month()), "Month to generate (1-12)")
	slots := flag.Int("slots", 12, "Slots per professional and working day")
	seed := flag.Uint64("seed", 42, "Random seed; the same seed yields the same dataset")
	flag.Parse()

	if *month < 1 || *month > 12 {
		fmt.Fprintf(os.Stderr, "Invalid month %d\n", *month)
		os.Exit(2)
	}

	cfg := engine.GeneratorConfig{
		Facilities:    *facilities,
		Professionals: *professionals,
		Year:          *year,
		Month:         time.Month(*month),
		SlotsPerDay:   *slots,
		Seed:          *seed,
		Now:           now,
	}

	fmt.Printf("Generating %d facilities x %d professionals for %04d-%02d (seed %d) to %s...\n",
		cfg.Facilities, cfg.Professionals, cfg.Year, cfg.Month, cfg.Seed, *out)

	bar := progressbar.NewOptions(cfg.Facilities*cfg.Professionals,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Professionals"),
		progressbar.OptionClearOnFinish(),
	)
	cfg.Progress = func() { _ = bar.Add(1) }

	doc := engine.Generate(cfg)
	_ = bar.Finish()
	if err := engine.Save(*out, doc); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. %d records.\n", len(doc.Dados))
}
