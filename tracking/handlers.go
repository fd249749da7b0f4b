package tracking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/auth"
)

// Handlers exposes tracking over HTTP. Both routes sit behind auth.JWTMiddleware.
type Handlers struct {
	service *Service
}

// NewHandlers creates new Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

func callerID(r *http.Request) (string, error) {
	id, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return "", apperror.NewAuthError("Token is invalid", nil)
	}
	return id, nil
}

// HandleTrack godoc
// @Summary Track a food
// @Description Records that the caller ate a food. userId defaults to the caller and must match it.
// @Description eatenDate accepts dd-MM-yyyy or d.M.yyyy and defaults to today (UTC); quantity defaults to 100 g.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param track body tracking.TrackRequest true "What was eaten"
// @Success 201 {object} auth.MessageResponse "Food added"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Not authorized"
// @Failure 404 {object} apperror.ErrorResponse "Food not found"
// @Failure 500 {object} apperror.ErrorResponse "Error by tracking food"
// @Router /track [post]
func (h *Handlers) HandleTrack() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req TrackRequest
		if err := auth.DecodeAndValidate(w, r, &req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if _, err := h.service.Track(r.Context(), caller, req); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, auth.MessageResponse{Message: msgFoodAdded})
	}
}

// HandleListTracked godoc
// @Summary Foods eaten on a day
// @Description Returns the caller's records for the given day with the food populated.
// @Tags Tracking
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User id, must be the caller"
// @Param date path string true "Day as dd-MM-yyyy" example(05-03-2024)
// @Success 200 {object} tracking.TrackedFoodsResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid date"
// @Failure 401 {object} apperror.ErrorResponse "Not authorized"
// @Failure 404 {object} apperror.ErrorResponse "Nothing tracked on that day"
// @Failure 500 {object} apperror.ErrorResponse "Error by tracking food by userId"
// @Router /track/{userId}/{date} [get]
func (h *Handlers) HandleListTracked() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		tracked, err := h.service.ListTracked(r.Context(), caller, chi.URLParam(r, "userId"), chi.URLParam(r, "date"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, TrackedFoodsResponse{Message: msgTrackedFoods, TrackedFoods: tracked})
	}
}
