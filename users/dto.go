// Package users, as part of the user profile module.
// This file, `dto.go`, defines the Data Transfer Objects of the users module.
// DTOs are simple objects used to move data between the handler (controller) and
// service layers and to shape API responses, much like DTOs in Nest.js.
package users

import "time"

// UserProfileResponse represents the data returned for the current user's profile.
// @Description User profile information
// Struct tags like `json:"userId"` control how the struct fields are serialized to JSON.
// The password hash is deliberately absent: it is never part of any response.
type UserProfileResponse struct {
	// The ID of the user
	UserID string `json:"userId" example:"5f8d0d55-7c1a-4a53-9a4e-4a1b2b8c2f10"`
	// The display name of the user
	Name string `json:"name" example:"Jane"`
	// The age of the user in years
	Age int `json:"age" example:"29"`
	// The email address of the user, lowercased at registration
	Email string `json:"email" example:"jane@example.com"`
	// The time the user registered
	CreatedAt time.Time `json:"createdAt" example:"2024-03-05T10:30:00Z"`
}
