// Package tracking records which food a user ate, how much, and on which day.
// Records are keyed by the canonical date key (d.M.yyyy) so a day's intake is a
// single equality lookup.
package tracking

import (
	"time"

	"github.com/user/nutritrack-go/foods"
)

// DefaultQuantity is the portion in grams assumed when none is given.
const DefaultQuantity = 100.0

// Record is one eaten portion.
type Record struct {
	ID        string
	UserID    string
	FoodID    string
	EatenDate string
	Quantity  float64
	CreatedAt time.Time
}

// TrackedFood is a Record with its food populated, as returned by GET /track.
type TrackedFood struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	FoodID    string      `json:"foodId"`
	Food      *foods.Food `json:"food"`
	EatenDate string      `json:"eatenDate" example:"5.3.2024"`
	Quantity  float64     `json:"quantity" example:"150"`
	CreatedAt time.Time   `json:"createdAt"`
}
