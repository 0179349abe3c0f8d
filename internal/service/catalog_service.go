package service

import (
	"context"

	"foodie-kart/internal/catalog"
	"foodie-kart/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	menu   catalog.Catalog
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(menu catalog.Catalog, logger zerolog.Logger) CatalogService {
	return &catalogService{
		menu:   menu,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// ListFoods returns foods filtered by category and search query.
func (s *catalogService) ListFoods(ctx context.Context, category model.FoodCategory, query string) ([]model.Food, error) {
	var foods []model.Food
	if query != "" {
		foods = make([]model.Food, 0)
		for _, f := range s.menu.Search(query) {
			if category == "" || f.Category == category {
				foods = append(foods, f)
			}
		}
	} else {
		foods = s.menu.List(category)
	}

	s.logger.Debug().
		Str("category", string(category)).
		Str("query", query).
		Int("count", len(foods)).
		Msg("listed foods")

	return foods, nil
}

// GetFood retrieves a single food by ID.
func (s *catalogService) GetFood(ctx context.Context, id string) (*model.Food, error) {
	if id == "" {
		s.logger.Warn().Msg("food ID is empty")
		return nil, model.ErrFoodNotFound
	}

	food, ok := s.menu.Get(id)
	if !ok {
		s.logger.Debug().Str("food_id", id).Msg("food not found")
		return nil, model.ErrFoodNotFound
	}

	return &food, nil
}

// Featured returns up to limit of the best rated foods.
func (s *catalogService) Featured(ctx context.Context, limit int) ([]model.Food, error) {
	if limit <= 0 {
		limit = 6
	}
	if limit > 50 {
		limit = 50
	}
	return s.menu.Featured(limit), nil
}
