package validation

import "strconv"

// DishInput is the dish create/update payload as received from the form;
// price arrives as text in multipart bodies.
type DishInput struct {
	Name        string
	Description string
	Price       string
	Category    string
}

// DishPayload is the validated dish payload.
type DishPayload struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

// ValidateDish checks the dish schema and returns the typed payload on
// success.
func ValidateDish(in DishInput) (DishPayload, *FieldError) {
	if err := required("name", in.Name); err != nil {
		return DishPayload{}, err
	}
	if err := required("description", in.Description); err != nil {
		return DishPayload{}, err
	}
	if err := required("price", in.Price); err != nil {
		return DishPayload{}, err
	}
	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil {
		return DishPayload{}, &FieldError{Field: "price", Message: `"price" must be a number`}
	}
	if price < 0 {
		return DishPayload{}, &FieldError{Field: "price", Message: `"price" must be greater than or equal to 0`}
	}
	if err := required("category", in.Category); err != nil {
		return DishPayload{}, err
	}
	return DishPayload{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Category:    in.Category,
	}, nil
}
