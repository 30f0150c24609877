package domain

import "time"

// Dish is a menu entry. Thumbnail holds the primary image URL; the full
// gallery lives in dish_images.
type Dish struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Thumbnail   string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DishImage is one uploaded gallery image of a dish.
type DishImage struct {
	ID     int64
	DishID int64
	URL    string
}
