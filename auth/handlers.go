// Package auth, HTTP layer. Handlers decode and validate the request, call the
// AuthService and write the response, like a Nest.js AuthController.
package auth

import (
	"net/http"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user. The email must not be registered yet.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.MessageResponse "User was registered"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 409 {object} apperror.ErrorResponse "User already registered"
// @Failure 429 {object} apperror.ErrorResponse "Too many requests"
// @Failure 500 {object} apperror.ErrorResponse "Error creating user"
// @Router /register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := DecodeAndValidate(w, r, &req); err != nil {
			WriteError(w, r, err)
			return
		}

		if err := h.service.Register(r.Context(), req); err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusCreated, MessageResponse{Message: msgUserRegistered})
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Verifies the credential and returns a bearer token plus the public profile.
// @Description When sessions are enabled a signed session cookie is set as well.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.LoginResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Password is incorrect"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 429 {object} apperror.ErrorResponse "Too many requests"
// @Failure 500 {object} apperror.ErrorResponse "Error by logging the user"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidate(w, r, &req); err != nil {
			WriteError(w, r, err)
			return
		}

		result, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		if result.Session != nil {
			h.service.Sessions().SetCookie(w, result.Session)
		}
		WriteJSON(w, http.StatusOK, result.Response)
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Deletes the server-side session named by the session cookie and clears the cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.MessageResponse "Logged out"
// @Failure 500 {object} apperror.ErrorResponse "Error logging out"
// @Router /logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions := h.service.Sessions()
		if sessions != nil {
			if id, ok := sessions.SessionIDFromRequest(r); ok {
				if err := h.service.Logout(r.Context(), id); err != nil {
					WriteError(w, r, err)
					return
				}
			}
			sessions.ClearCookie(w)
		}
		WriteJSON(w, http.StatusOK, MessageResponse{Message: msgLoggedOut})
	}
}
