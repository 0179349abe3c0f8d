package catalog

import "foodie-kart/internal/model"

// DefaultMenu returns the built-in menu served when no menu file is configured.
func DefaultMenu() Catalog {
	return NewMenu(defaultFoods())
}

func defaultFoods() []model.Food {
	return []model.Food{
		{ID: "1", Name: "Classic Burger", Description: "Juicy beef patty with fresh lettuce and tomato", Price: 8.99, Image: "🍔", Category: model.CategoryBurgers, Rating: 4.5, Reviews: 245, PreparationTime: 15},
		{ID: "2", Name: "Spicy Buffalo Burger", Description: "Crispy burger with spicy buffalo sauce", Price: 9.99, Image: "🌶️", Category: model.CategoryBurgers, Rating: 4.8, Reviews: 156, IsSpicy: true, PreparationTime: 15},
		{ID: "3", Name: "Margherita Pizza", Description: "Fresh mozzarella, basil, and tomato sauce", Price: 11.99, Image: "🍕", Category: model.CategoryPizza, Rating: 4.6, Reviews: 320, PreparationTime: 20},
		{ID: "4", Name: "Pepperoni Pizza", Description: "Traditional pepperoni with cheese", Price: 12.99, Image: "🍕", Category: model.CategoryPizza, Rating: 4.7, Reviews: 410, IsSpicy: true, PreparationTime: 20},
		{ID: "5", Name: "Caesar Salad", Description: "Fresh romaine lettuce with parmesan and croutons", Price: 7.99, Image: "🥗", Category: model.CategorySalads, Rating: 4.3, Reviews: 128, PreparationTime: 10},
		{ID: "6", Name: "Vegan Buddha Bowl", Description: "Quinoa, chickpeas, and seasonal vegetables", Price: 10.99, Image: "🥗", Category: model.CategorySalads, Rating: 4.9, Reviews: 89, IsVegan: true, PreparationTime: 12},
		{ID: "7", Name: "Chocolate Cake", Description: "Rich, moist chocolate cake with frosting", Price: 5.99, Image: "🍰", Category: model.CategoryDesserts, Rating: 4.8, Reviews: 567, PreparationTime: 5},
		{ID: "8", Name: "Strawberry Cheesecake", Description: "Creamy cheesecake with fresh strawberries", Price: 6.99, Image: "🍰", Category: model.CategoryDesserts, Rating: 4.9, Reviews: 423, PreparationTime: 5},
		{ID: "9", Name: "Fresh Orange Juice", Description: "Freshly squeezed orange juice", Price: 3.99, Image: "🧃", Category: model.CategoryDrinks, Rating: 4.4, Reviews: 234, IsVegan: true, PreparationTime: 3},
		{ID: "10", Name: "Iced Latte", Description: "Cold coffee with milk and ice", Price: 4.99, Image: "☕", Category: model.CategoryDrinks, Rating: 4.6, Reviews: 512, PreparationTime: 5},
		{ID: "11", Name: "French Fries", Description: "Crispy golden fries with salt", Price: 3.49, Image: "🍟", Category: model.CategorySides, Rating: 4.5, Reviews: 678, IsVegan: true, PreparationTime: 8},
		{ID: "12", Name: "Onion Rings", Description: "Crunchy onion rings with dipping sauce", Price: 4.49, Image: "🧅", Category: model.CategorySides, Rating: 4.7, Reviews: 345, PreparationTime: 10},
	}
}
