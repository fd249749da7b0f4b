package tracking

import "context"

// Repository persists tracking records.
type Repository interface {
	// Create assigns ID and CreatedAt and stores the record.
	Create(ctx context.Context, record *Record) error
	// ListByUserAndDate returns the records of userID under dateKey, oldest first.
	ListByUserAndDate(ctx context.Context, userID, dateKey string) ([]Record, error)
}
