package dto

// DishImageResponse is one gallery entry.
type DishImageResponse struct {
	ImageURL string `json:"image_url"`
}

// DishResponse is the public shape of a dish, gallery included.
type DishResponse struct {
	DishID      int64               `json:"dish_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Thumbnail   string              `json:"thumbnail"`
	Category    string              `json:"category"`
	Images      []DishImageResponse `json:"images"`
}
