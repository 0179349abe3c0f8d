package catalog

import (
	"context"

	"foodie-kart/internal/model"
)

// Catalog is a read-only menu of foods.
type Catalog interface {
	// Get returns the food with the given ID.
	Get(id string) (model.Food, bool)

	// List returns all foods in menu order, optionally filtered by category.
	// An empty category returns everything.
	List(category model.FoodCategory) []model.Food

	// Search returns foods whose name or description contains query,
	// ignoring case.
	Search(query string) []model.Food

	// Featured returns up to limit of the best rated foods in menu order.
	Featured(limit int) []model.Food

	// Size returns the number of foods in the menu.
	Size() int
}

// Loader defines the interface for loading menu files.
type Loader interface {
	// Load reads a gzipped JSON-lines menu file and returns a Catalog.
	Load(ctx context.Context, path string) (Catalog, error)
}
