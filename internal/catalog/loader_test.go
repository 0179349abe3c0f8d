package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"foodie-kart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGzip writes raw content as a gzipped file and returns its path.
func writeGzip(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "menu.jsonl.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	return path
}

func TestFileLoader_Load(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "menu.jsonl.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteMenu(file, defaultFoods()))
	require.NoError(t, file.Close())

	loaded, err := NewFileLoader(logger).Load(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, 12, loaded.Size())
	assert.Equal(t, DefaultMenu().List(""), loaded.List(""))
}

func TestFileLoader_SkipsBlankLines(t *testing.T) {
	path := writeGzip(t, `{"id":"1","name":"Classic Burger","price":8.99,"category":"burgers"}

   
{"id":"9","name":"Fresh Orange Juice","price":3.99,"category":"drinks"}
`)

	loaded, err := NewFileLoader(zerolog.Nop()).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Size())
}

func TestFileLoader_Errors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		errMatch string
	}{
		{
			name:     "Missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.gz") },
			errMatch: "failed to open menu file",
		},
		{
			name: "Not gzipped",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "plain.jsonl")
				require.NoError(t, os.WriteFile(p, []byte(`{"id":"1"}`), 0o644))
				return p
			},
			errMatch: "failed to create gzip reader",
		},
		{
			name:     "Malformed JSON",
			path:     func(t *testing.T) string { return writeGzip(t, "{not json}\n") },
			errMatch: "line 1: invalid food",
		},
		{
			name:     "Negative price",
			path:     func(t *testing.T) string { return writeGzip(t, `{"id":"x","name":"X","price":-1,"category":"sides"}`) },
			errMatch: "price must not be negative",
		},
		{
			name:     "Unknown category",
			path:     func(t *testing.T) string { return writeGzip(t, `{"id":"x","name":"X","price":1,"category":"soups"}`) },
			errMatch: "unknown category",
		},
		{
			name:     "Missing ID",
			path:     func(t *testing.T) string { return writeGzip(t, `{"name":"X","price":1,"category":"sides"}`) },
			errMatch: "food ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded, err := NewFileLoader(logger).Load(ctx, tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMatch)
			assert.Nil(t, loaded)
		})
	}
}

func TestWriteMenu_RoundTrip(t *testing.T) {
	foods := []model.Food{
		{ID: "x1", Name: "Test Wrap", Description: "Wrapped", Price: 6.5, Category: model.CategorySides, IsVegan: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMenu(&buf, foods))

	loaded, err := readMenu(context.Background(), &buf)
	require.NoError(t, err)
	food, ok := loaded.Get("x1")
	require.True(t, ok)
	assert.Equal(t, foods[0], food)
}

func TestLoadOrDefault(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	loader := &mockLoader{}
	menu, err := LoadOrDefault(ctx, loader, "", logger)
	require.NoError(t, err)
	assert.Equal(t, 12, menu.Size())
	assert.Zero(t, loader.calls)

	_, err = LoadOrDefault(ctx, loader, "menu.gz", logger)
	assert.Error(t, err)
	assert.Equal(t, 1, loader.calls)
}
