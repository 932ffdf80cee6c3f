// gendata writes a synthetic dataset so the dashboard can run without the
// real source file: go run ./cmd/gendata -out data/diabetes_clean.csv
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"diascope/internal/testkit"
)

func main() {
	out := flag.String("out", "data/diabetes_clean.csv", "output CSV path")
	count := flag.Int("count", 2000, "number of records to generate")
	seed := flag.Int64("seed", 42, "generator seed")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	gen := testkit.NewPatientGenerator(testkit.GeneratorConfig{
		RecordCount: *count,
		Seed:        *seed,
	})

	if err := testkit.WriteCSV(*out, gen.Generate()); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}

	log.Printf("Wrote %d records to %s", *count, *out)
}
