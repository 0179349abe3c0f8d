package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"foodie-kart/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for gzipped menu files on local disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based menu loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "menu-loader").Logger(),
	}
}

// Load reads a gzipped menu file and returns a Catalog.
// The file is expected to contain one JSON-encoded food per line.
func (l *fileLoader) Load(ctx context.Context, path string) (Catalog, error) {
	l.logger.Info().Str("file", path).Msg("loading menu file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open menu file")
		return nil, fmt.Errorf("failed to open menu file %s: %w", path, err)
	}
	defer file.Close()

	loaded, err := readMenu(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read menu file")
		return nil, fmt.Errorf("failed to read menu file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("foods_loaded", loaded.Size()).
		Msg("menu file loaded successfully")

	return loaded, nil
}

// readMenu decodes a gzipped JSON-lines stream of foods.
func readMenu(ctx context.Context, r io.Reader) (Catalog, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var foods []model.Food
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var food model.Food
		if err := json.Unmarshal([]byte(line), &food); err != nil {
			return nil, fmt.Errorf("line %d: invalid food: %w", lineNo, err)
		}
		if err := validateFood(food); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		foods = append(foods, food)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading menu: %w", err)
	}

	return NewMenu(foods), nil
}

func validateFood(f model.Food) error {
	if f.ID == "" {
		return fmt.Errorf("food ID is required")
	}
	if f.Name == "" {
		return fmt.Errorf("food %s: name is required", f.ID)
	}
	if f.Price < 0 {
		return fmt.Errorf("food %s: price must not be negative", f.ID)
	}
	if !f.Category.Valid() {
		return fmt.Errorf("food %s: unknown category %q", f.ID, f.Category)
	}
	return nil
}

// WriteMenu writes foods as a gzipped JSON-lines stream readable by a Loader.
func WriteMenu(w io.Writer, foods []model.Food) error {
	gzipWriter := gzip.NewWriter(w)
	encoder := json.NewEncoder(gzipWriter)
	for _, f := range foods {
		if err := encoder.Encode(f); err != nil {
			gzipWriter.Close()
			return fmt.Errorf("failed to encode food %s: %w", f.ID, err)
		}
	}
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return nil
}

// LoadOrDefault loads the menu at path, or returns the built-in menu when
// path is empty.
func LoadOrDefault(ctx context.Context, loader Loader, path string, logger zerolog.Logger) (Catalog, error) {
	if path == "" {
		logger.Info().Msg("no menu file configured, serving built-in menu")
		return DefaultMenu(), nil
	}
	return loader.Load(ctx, path)
}
