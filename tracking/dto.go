package tracking

// TrackRequest is the body of POST /track. UserID may be omitted, in which case
// the caller's own id is used; EatenDate defaults to today and Quantity to 100 g.
type TrackRequest struct {
	UserID    string   `json:"userId" example:"5f8d0d55-7c1a-4a53-9a4e-4a1b2b8c2f10"`
	FoodID    string   `json:"foodId" validate:"required" example:"8b0f3c8e-3f5a-4f0e-9d4b-0c8a3a1e5b11"`
	EatenDate string   `json:"eatenDate" example:"05-03-2024"`
	Quantity  *float64 `json:"quantity" validate:"omitempty,gt=0,lte=100000" example:"150"`
}

// TrackedFoodsResponse is returned by GET /track/{userId}/{date}.
type TrackedFoodsResponse struct {
	Message      string        `json:"message" example:"Foods tracked by user id"`
	TrackedFoods []TrackedFood `json:"trackedFoods"`
}
