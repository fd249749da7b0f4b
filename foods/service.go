package foods

import (
	"context"
	"errors"
	"strings"

	"github.com/user/nutritrack-go/apperror"
)

// Client-facing messages.
const (
	msgAllFetched     = "All foods fetched successfully"
	msgFetchFailed    = "Error fetching all the foods"
	msgFound          = "Food was found"
	msgSearchFailed   = "Error by fetching food by name"
	msgAdded          = "Food added successfully"
	msgAddFailed      = "Error by adding food"
	msgNotAdmin       = "User not Authorized to add food"
	msgAlreadyExists  = "Food with this name already exists."
	msgLookupFailed   = "Error by fetching foods"
	msgNameIsRequired = "name is required"
)

// Service holds the catalog rules: who may add foods and what counts as a duplicate.
type Service struct {
	repo   Repository
	admins map[string]struct{}
}

// NewService creates a Service. adminUserIDs are the verified user ids allowed to
// add foods; an empty list means nobody can.
func NewService(repo Repository, adminUserIDs []string) *Service {
	admins := make(map[string]struct{}, len(adminUserIDs))
	for _, id := range adminUserIDs {
		if id = strings.TrimSpace(id); id != "" {
			admins[id] = struct{}{}
		}
	}
	return &Service{repo: repo, admins: admins}
}

// IsAdmin reports whether userID may add foods.
func (s *Service) IsAdmin(userID string) bool {
	_, ok := s.admins[userID]
	return ok
}

// ListFoods returns the whole catalog.
func (s *Service) ListFoods(ctx context.Context) ([]Food, error) {
	foods, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError(msgFetchFailed, err)
	}
	return foods, nil
}

// SearchFoods returns foods whose name contains name, ignoring case. No match is
// an empty list, not an error.
func (s *Service) SearchFoods(ctx context.Context, name string) ([]Food, error) {
	foods, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, apperror.NewDatabaseError(msgSearchFailed, err)
	}
	return foods, nil
}

// AddFood adds a food on behalf of userID, which must be an admin.
func (s *Service) AddFood(ctx context.Context, userID string, req AddFoodRequest) (*Food, error) {
	if !s.IsAdmin(userID) {
		return nil, apperror.NewAuthError(msgNotAdmin, nil)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.NewValidationError(msgNameIsRequired, nil)
	}

	_, err := s.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		return nil, apperror.NewBadRequestError(msgAlreadyExists, nil)
	case !errors.Is(err, apperror.ErrRecordNotFound):
		return nil, apperror.NewDatabaseError(msgAddFailed, err)
	}

	food := &Food{
		Name:          name,
		Calories:      req.Calories,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
		Protein:       req.Protein,
		Fiber:         req.Fiber,
	}
	if err := s.repo.Create(ctx, food); err != nil {
		if errors.Is(err, apperror.ErrDuplicateRecord) {
			return nil, apperror.NewBadRequestError(msgAlreadyExists, nil)
		}
		return nil, apperror.NewDatabaseError(msgAddFailed, err)
	}
	return food, nil
}

// FindFoods returns the foods with the given ids keyed by id. It backs the
// tracking module's food existence check and population.
func (s *Service) FindFoods(ctx context.Context, ids []string) (map[string]Food, error) {
	foods, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.NewDatabaseError(msgLookupFailed, err)
	}
	return foods, nil
}
