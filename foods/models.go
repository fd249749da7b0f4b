// Package foods is the food catalog: the list of foods users can track, their
// nutrient values per 100 g, and the admin-only operation that extends the list.
package foods

import "time"

// Food is one catalog entry. Nutrient values are per 100 g.
type Food struct {
	ID            string    `json:"id" example:"8b0f3c8e-3f5a-4f0e-9d4b-0c8a3a1e5b11"`
	Name          string    `json:"name" example:"Banana"`
	Calories      float64   `json:"calories" example:"89"`
	Carbohydrates float64   `json:"carbohydrates" example:"22.8"`
	Fat           float64   `json:"fat" example:"0.3"`
	Protein       float64   `json:"protein" example:"1.1"`
	Fiber         float64   `json:"fiber" example:"2.6"`
	CreatedAt     time.Time `json:"createdAt"`
}
