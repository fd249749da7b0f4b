// Package users encapsulates the functionality related to the user's own profile.
// This follows a modular design, similar to feature modules in Nest.js.
// This file, `handlers.go`, is responsible for handling HTTP requests related to users.
// It acts as the "Controller" layer in an MVC or similar architectural pattern.
package users

import (
	"net/http"

	// `apperror` provides standardized error types and responses.
	"github.com/user/nutritrack-go/apperror"
	// `auth` package provides the verified user ID from context and the response helpers.
	"github.com/user/nutritrack-go/auth"
)

// UserHandlers provides HTTP handlers for user profile management.
// It holds a reference to the `UserService`, which contains the business logic.
// In Nest.js, this would be analogous to a Controller class injecting a Service class.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetUserProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the profile information for the currently authenticated user.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserProfileResponse "Successfully retrieved user profile"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /users/me [get]
// `HandleGetUserProfile` returns an `http.HandlerFunc`, the standard Go type for HTTP handlers,
// so it can be passed straight to a `chi` route.
func (h *UserHandlers) HandleGetUserProfile() http.HandlerFunc {
	// The returned function is a closure capturing the `h *UserHandlers` receiver.
	return func(w http.ResponseWriter, r *http.Request) {
		// `auth.UserIDFromContext` retrieves the user ID set by the JWT middleware.
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			// Reaching this means the route was mounted without the middleware.
			auth.WriteError(w, r, apperror.NewAuthError("User ID not found in context, middleware issue?", nil))
			return
		}

		profile, err := h.service.GetUserProfile(r.Context(), userID)
		if err != nil {
			// The service layer returns `apperror` types, which `auth.WriteError` maps to a status.
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, profile)
	}
}
