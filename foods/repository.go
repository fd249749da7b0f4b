package foods

import "context"

// Repository persists the food catalog. Like auth.UserRepository it has postgres,
// mongo and memory implementations, and the name uniqueness rule is enforced by
// each backend (case-insensitive).
type Repository interface {
	// List returns every food ordered by name.
	List(ctx context.Context) ([]Food, error)
	// SearchByName returns foods whose name contains fragment, ignoring case.
	// fragment is matched literally.
	SearchByName(ctx context.Context, fragment string) ([]Food, error)
	// GetByName returns the food with exactly that name, ignoring case, or
	// apperror.ErrRecordNotFound.
	GetByName(ctx context.Context, name string) (*Food, error)
	// GetByIDs returns the foods with the given ids keyed by id. Unknown ids are
	// simply absent from the map.
	GetByIDs(ctx context.Context, ids []string) (map[string]Food, error)
	// Create assigns ID and CreatedAt. It returns apperror.ErrDuplicateRecord when
	// the name is taken.
	Create(ctx context.Context, food *Food) error
}
