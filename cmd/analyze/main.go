package main

import (
	"finhealth/pkg/core/analysis"
	"finhealth/pkg/core/benchmark"
	"finhealth/pkg/core/ingest"
	"finhealth/pkg/core/report"
	"finhealth/pkg/models"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	filePath := flag.String("file", "", "path to a CSV or HTML financial statement")
	name := flag.String("name", "Unnamed Business", "business name")
	industry := flag.String("industry", "services", "industry code (manufacturing, retail, services, ...)")
	businessType := flag.String("type", "private_limited", "business type")
	months := flag.Int("months", analysis.DefaultHorizon, "forecast horizon in months")
	benchmarksPath := flag.String("benchmarks", "", "optional benchmark override YAML")
	html := flag.Bool("html", false, "emit HTML instead of Markdown")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *benchmarksPath != "" {
		if err := benchmark.LoadFromFile(*benchmarksPath); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	defer f.Close()

	grid, err := ingest.Read(f, *filePath)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	profile := models.BusinessProfile{
		Name:         *name,
		BusinessType: models.BusinessType(*businessType),
		Industry:     models.Industry(*industry),
	}

	a, err := analysis.AnalyzeGrid(profile, grid, *months)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	if *html {
		out, err := report.HTML(a)
		if err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		os.Stdout.Write(out)
		return
	}
	fmt.Print(report.Markdown(a))
}
