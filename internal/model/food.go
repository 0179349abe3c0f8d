package model

// FoodCategory groups menu items.
type FoodCategory string

const (
	CategoryBurgers  FoodCategory = "burgers"
	CategoryPizza    FoodCategory = "pizza"
	CategorySalads   FoodCategory = "salads"
	CategoryDesserts FoodCategory = "desserts"
	CategoryDrinks   FoodCategory = "drinks"
	CategorySides    FoodCategory = "sides"
)

// Valid reports whether c is one of the known categories.
func (c FoodCategory) Valid() bool {
	switch c {
	case CategoryBurgers, CategoryPizza, CategorySalads, CategoryDesserts, CategoryDrinks, CategorySides:
		return true
	}
	return false
}

// Food represents a purchasable item in the menu catalogue.
type Food struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           float64      `json:"price"`
	Image           string       `json:"image"`
	Category        FoodCategory `json:"category"`
	Rating          float64      `json:"rating"`
	Reviews         int          `json:"reviews"`
	IsVegan         bool         `json:"isVegan"`
	IsSpicy         bool         `json:"isSpicy"`
	PreparationTime int          `json:"preparationTime"` // minutes
}
