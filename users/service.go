// Package users, as part of the user profile module.
// This file, `service.go`, contains the business logic for profile reads.
// It acts as the "Service" layer, analogous to a Service class in Nest.js.
package users

import (
	"context"
	"errors"

	// Internal application packages.
	"github.com/user/nutritrack-go/apperror" // For standardized error handling.
	"github.com/user/nutritrack-go/auth"     // For the `auth.UserRepository` credential store, reused here.
)

// UserService provides methods for user profile management.
type UserService struct {
	// `users` is the same repository the auth module registers users into. The
	// users module only reads from it.
	users auth.UserRepository
}

// NewUserService creates a new UserService.
// This is the constructor function for `UserService`: dependencies come in as
// parameters, which is manual dependency injection.
func NewUserService(users auth.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetUserProfile retrieves a user's profile by their ID.
func (s *UserService) GetUserProfile(ctx context.Context, userID string) (*UserProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			// The token was valid but the account behind it no longer exists.
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		// For other store errors, return a database error; the cause is logged, not shown.
		return nil, apperror.NewDatabaseError("Failed to get user profile", err)
	}

	// Map the entity to the response DTO.
	return &UserProfileResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Age:       user.Age,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
