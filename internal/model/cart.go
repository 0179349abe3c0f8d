package model

import "time"

// CartItem is a food and the quantity the customer wants of it.
type CartItem struct {
	Food     Food `json:"food"`
	Quantity int  `json:"quantity"`
}

// Cart holds the items that have not been ordered yet.
type Cart struct {
	Items       []CartItem `json:"items"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// NewCart returns an empty cart stamped with now.
func NewCart(now time.Time) *Cart {
	return &Cart{
		Items:       []CartItem{},
		LastUpdated: now,
	}
}

// Find returns the index of the item for foodID, or -1.
func (c *Cart) Find(foodID string) int {
	for i := range c.Items {
		if c.Items[i].Food.ID == foodID {
			return i
		}
	}
	return -1
}

// ComputeTotal sums unit price times quantity over items.
func ComputeTotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Food.Price * float64(item.Quantity)
	}
	return total
}

// CopyItems returns a copy of items that shares no backing array with the input.
func CopyItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}

// CartAddRequest is the payload for adding a food to the cart.
type CartAddRequest struct {
	FoodID   string `json:"foodId"`
	Quantity *int   `json:"quantity,omitempty"`
}

// CartUpdateRequest is the payload for setting an item's quantity.
type CartUpdateRequest struct {
	Quantity *int `json:"quantity"`
}

// CartTotalResponse reports the cart total.
type CartTotalResponse struct {
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}
