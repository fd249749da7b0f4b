package tracking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/foods"
)

// Client-facing messages.
const (
	msgFoodAdded     = "Food added"
	msgTrackFailed   = "Error by tracking food"
	msgFoodNotFound  = "Food not found"
	msgTrackedFoods  = "Foods tracked by user id"
	msgNothingEaten  = "No foods tracked by this user, try to eat something :)"
	msgListFailed    = "Error by tracking food by userId"
	msgNotAuthorized = "User not authorized to access these records"
	msgInvalidDate   = "Invalid date, expected dd-MM-yyyy"
	msgInvalidEaten  = "Invalid eatenDate, expected dd-MM-yyyy or d.M.yyyy"
)

// FoodFinder looks foods up by id. *foods.Service satisfies it.
type FoodFinder interface {
	FindFoods(ctx context.Context, ids []string) (map[string]foods.Food, error)
}

// Service records and lists eaten foods. Every operation is bound to the caller's
// verified user id; a record of one user is never readable or writable by another.
type Service struct {
	repo  Repository
	foods FoodFinder
	now   func() time.Time
}

// NewService creates a Service.
func NewService(repo Repository, foods FoodFinder) *Service {
	return &Service{repo: repo, foods: foods, now: time.Now}
}

// Track stores a record for callerID.
func (s *Service) Track(ctx context.Context, callerID string, req TrackRequest) (*Record, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = callerID
	}
	if userID != callerID {
		return nil, apperror.NewAuthError(msgNotAuthorized, nil)
	}

	dateKey := DateKey(s.now().UTC())
	if req.EatenDate != "" {
		key, err := CanonicalDateKey(req.EatenDate)
		if err != nil {
			return nil, apperror.NewValidationError(msgInvalidEaten, err)
		}
		dateKey = key
	}

	quantity := DefaultQuantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	food, err := s.findFood(ctx, req.FoodID)
	if err != nil {
		return nil, err
	}

	record := &Record{
		UserID:    userID,
		FoodID:    food.ID,
		EatenDate: dateKey,
		Quantity:  quantity,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(msgFoodNotFound, err)
		}
		return nil, apperror.NewDatabaseError(msgTrackFailed, err)
	}
	return record, nil
}

// findFood resolves id to a catalog entry. Backends accept several spellings of
// one id (uppercase hex, braces, no dashes) but key their result by the canonical
// form, so a single hit is the food whatever its key.
func (s *Service) findFood(ctx context.Context, id string) (*foods.Food, error) {
	found, err := s.foods.FindFoods(ctx, []string{id})
	if err != nil {
		return nil, apperror.NewDatabaseError(msgTrackFailed, err)
	}
	if f, ok := found[id]; ok {
		return &f, nil
	}
	if len(found) == 1 {
		for _, f := range found {
			return &f, nil
		}
	}
	return nil, apperror.NewNotFoundError(msgFoodNotFound, nil)
}

// ListTracked returns what userID ate on date (dd-MM-yyyy) with each food populated.
// callerID must be userID.
func (s *Service) ListTracked(ctx context.Context, callerID, userID, date string) ([]TrackedFood, error) {
	if userID != callerID {
		return nil, apperror.NewAuthError(msgNotAuthorized, nil)
	}
	dateKey, err := NormalizeDate(date)
	if err != nil {
		return nil, apperror.NewValidationError(msgInvalidDate, err)
	}

	records, err := s.repo.ListByUserAndDate(ctx, userID, dateKey)
	if err != nil {
		return nil, apperror.NewDatabaseError(msgListFailed, err)
	}
	if len(records) == 0 {
		return nil, apperror.NewNotFoundError(msgNothingEaten, nil)
	}

	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.FoodID]; !dup {
			seen[rec.FoodID] = struct{}{}
			ids = append(ids, rec.FoodID)
		}
	}
	byID, err := s.foods.FindFoods(ctx, ids)
	if err != nil {
		return nil, apperror.NewDatabaseError(msgListFailed, err)
	}

	tracked := make([]TrackedFood, 0, len(records))
	for _, rec := range records {
		tf := TrackedFood{
			ID:        rec.ID,
			UserID:    rec.UserID,
			FoodID:    rec.FoodID,
			EatenDate: rec.EatenDate,
			Quantity:  rec.Quantity,
			CreatedAt: rec.CreatedAt,
		}
		if f, ok := byID[rec.FoodID]; ok {
			food := f
			tf.Food = &food
		}
		tracked = append(tracked, tf)
	}
	return tracked, nil
}
