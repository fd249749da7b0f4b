package foods

// AddFoodRequest is the body of POST /addfood.
type AddFoodRequest struct {
	Name          string  `json:"name" validate:"required,max=200" example:"Banana"`
	Calories      float64 `json:"calories" validate:"gte=0" example:"89"`
	Carbohydrates float64 `json:"carbohydrates" validate:"gte=0" example:"22.8"`
	Fat           float64 `json:"fat" validate:"gte=0" example:"0.3"`
	Protein       float64 `json:"protein" validate:"gte=0" example:"1.1"`
	Fiber         float64 `json:"fiber" validate:"gte=0" example:"2.6"`
}

// FoodListResponse is returned by GET /foods.
type FoodListResponse struct {
	Data    []Food `json:"data"`
	Message string `json:"message" example:"All foods fetched successfully"`
}

// FoodSearchResponse is returned by GET /food/{name}.
type FoodSearchResponse struct {
	Message string `json:"message" example:"Food was found"`
	Data    []Food `json:"data"`
}
