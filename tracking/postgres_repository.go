package tracking

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/nutritrack-go/apperror"
)

// PostgresRepository stores records in the `tracking` table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, record *Record) error {
	userID, err := uuid.Parse(record.UserID)
	if err != nil {
		return apperror.ErrRecordNotFound
	}
	foodID, err := uuid.Parse(record.FoodID)
	if err != nil {
		return apperror.ErrRecordNotFound
	}

	id := uuid.New()
	err = r.db.QueryRow(ctx,
		`INSERT INTO tracking (id, user_id, food_id, eaten_date, quantity)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		id, userID, foodID, record.EatenDate, record.Quantity,
	).Scan(&record.CreatedAt)
	if err != nil {
		return err
	}
	record.ID = id.String()
	return nil
}

func (r *PostgresRepository) ListByUserAndDate(ctx context.Context, userID, dateKey string) ([]Record, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return []Record{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, food_id, eaten_date, quantity, created_at
		 FROM tracking
		 WHERE user_id = $1 AND eaten_date = $2
		 ORDER BY created_at, id`,
		uid, dateKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			rec          Record
			id, uID, fID uuid.UUID
		)
		if err := rows.Scan(&id, &uID, &fID, &rec.EatenDate, &rec.Quantity, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.ID, rec.UserID, rec.FoodID = id.String(), uID.String(), fID.String()
		records = append(records, rec)
	}
	return records, rows.Err()
}
