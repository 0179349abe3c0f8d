package catalog

import (
	"strings"

	"foodie-kart/internal/model"
)

// FeaturedMinRating is the rating a food needs to be featured.
const FeaturedMinRating = 4.7

// menu implements Catalog with an ordered slice and an ID index.
type menu struct {
	foods []model.Food
	index map[string]int
}

// NewMenu creates a catalog from foods. A later food replaces an earlier
// one with the same ID in place.
func NewMenu(foods []model.Food) Catalog {
	m := &menu{
		foods: make([]model.Food, 0, len(foods)),
		index: make(map[string]int, len(foods)),
	}
	for _, f := range foods {
		m.add(f)
	}
	return m
}

func (m *menu) add(f model.Food) {
	if i, ok := m.index[f.ID]; ok {
		m.foods[i] = f
		return
	}
	m.index[f.ID] = len(m.foods)
	m.foods = append(m.foods, f)
}

func (m *menu) Get(id string) (model.Food, bool) {
	i, ok := m.index[id]
	if !ok {
		return model.Food{}, false
	}
	return m.foods[i], true
}

func (m *menu) List(category model.FoodCategory) []model.Food {
	out := make([]model.Food, 0, len(m.foods))
	for _, f := range m.foods {
		if category == "" || f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func (m *menu) Search(query string) []model.Food {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Food, 0)
	for _, f := range m.foods {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Description), q) {
			out = append(out, f)
		}
	}
	return out
}

func (m *menu) Featured(limit int) []model.Food {
	if limit <= 0 {
		return []model.Food{}
	}
	out := make([]model.Food, 0, limit)
	for _, f := range m.foods {
		if len(out) >= limit {
			break
		}
		if f.Rating >= FeaturedMinRating {
			out = append(out, f)
		}
	}
	return out
}

func (m *menu) Size() int {
	return len(m.foods)
}
