package foods

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/auth"
)

// Handlers exposes the catalog over HTTP. All routes sit behind auth.JWTMiddleware.
type Handlers struct {
	service *Service
}

// NewHandlers creates new Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleListFoods godoc
// @Summary List foods
// @Description Returns the whole food catalog.
// @Tags Foods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} foods.FoodListResponse
// @Failure 401 {object} apperror.ErrorResponse "Authorization header missing / Token is invalid"
// @Failure 500 {object} apperror.ErrorResponse "Error fetching all the foods"
// @Router /foods [get]
func (h *Handlers) HandleListFoods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		foods, err := h.service.ListFoods(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, FoodListResponse{Data: foods, Message: msgAllFetched})
	}
}

// HandleSearchFoods godoc
// @Summary Search foods by name
// @Description Case-insensitive substring search. The name is matched literally.
// @Tags Foods
// @Produce json
// @Security BearerAuth
// @Param name path string true "Name fragment"
// @Success 200 {object} foods.FoodSearchResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 500 {object} apperror.ErrorResponse "Error by fetching food by name"
// @Router /food/{name} [get]
func (h *Handlers) HandleSearchFoods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		foods, err := h.service.SearchFoods(r.Context(), name)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, FoodSearchResponse{Message: msgFound, Data: foods})
	}
}

// HandleAddFood godoc
// @Summary Add a food
// @Description Adds a food to the catalog. Only admin users may call it.
// @Tags Foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food body foods.AddFoodRequest true "Food to add"
// @Success 201 {object} auth.MessageResponse "Food added successfully"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or duplicate name"
// @Failure 401 {object} apperror.ErrorResponse "User not Authorized to add food"
// @Failure 500 {object} apperror.ErrorResponse "Error by adding food"
// @Router /addfood [post]
func (h *Handlers) HandleAddFood() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError(msgNotAdmin, nil))
			return
		}
		// Non-admins are turned away before their body is even read.
		if !h.service.IsAdmin(userID) {
			auth.WriteError(w, r, apperror.NewAuthError(msgNotAdmin, nil))
			return
		}

		var req AddFoodRequest
		if err := auth.DecodeAndValidate(w, r, &req); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if _, err := h.service.AddFood(r.Context(), userID, req); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, auth.MessageResponse{Message: msgAdded})
	}
}
