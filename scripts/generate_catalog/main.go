package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"foodie-kart/internal/catalog"
)

// Writes the built-in menu as a gzipped JSON-lines file that CATALOG_PATH
// can point at, either locally or after uploading it under S3_PREFIX.
func main() {
	dataDir := "data/menu"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	foods := catalog.DefaultMenu().List("")
	filePath := filepath.Join(dataDir, "menu.jsonl.gz")

	file, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	if err := catalog.WriteMenu(file, foods); err != nil {
		file.Close()
		log.Fatalf("Failed to write %s: %v", filePath, err)
	}

	if err := file.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d foods\n", filePath, len(foods))
}
