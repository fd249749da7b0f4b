package foods

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/auth"
)

// PostgresRepository stores the catalog in the `foods` table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const foodColumns = `id, name, calories, carbohydrates, fat, protein, fiber, created_at`

// likeEscaper makes user input literal inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanFood(row pgx.Row) (Food, error) {
	var f Food
	var id uuid.UUID
	err := row.Scan(&id, &f.Name, &f.Calories, &f.Carbohydrates, &f.Fat, &f.Protein, &f.Fiber, &f.CreatedAt)
	if err != nil {
		return Food{}, err
	}
	f.ID = id.String()
	return f, nil
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...interface{}) ([]Food, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context) ([]Food, error) {
	return r.query(ctx, `SELECT `+foodColumns+` FROM foods ORDER BY lower(name)`)
}

func (r *PostgresRepository) SearchByName(ctx context.Context, fragment string) ([]Food, error) {
	return r.query(ctx,
		`SELECT `+foodColumns+` FROM foods WHERE name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY lower(name)`,
		likeEscaper.Replace(fragment),
	)
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*Food, error) {
	f, err := scanFood(r.db.QueryRow(ctx, `SELECT `+foodColumns+` FROM foods WHERE lower(name) = lower($1)`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrRecordNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PostgresRepository) GetByIDs(ctx context.Context, ids []string) (map[string]Food, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	out := make(map[string]Food, len(valid))
	if len(valid) == 0 {
		return out, nil
	}

	foods, err := r.query(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = ANY($1::uuid[])`, valid)
	if err != nil {
		return nil, err
	}
	for _, f := range foods {
		out[f.ID] = f
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, food *Food) error {
	id := uuid.New()
	err := r.db.QueryRow(ctx,
		`INSERT INTO foods (id, name, calories, carbohydrates, fat, protein, fiber)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		id, food.Name, food.Calories, food.Carbohydrates, food.Fat, food.Protein, food.Fiber,
	).Scan(&food.CreatedAt)
	if err != nil {
		if auth.IsUniqueViolation(err) {
			return apperror.ErrDuplicateRecord
		}
		return err
	}
	food.ID = id.String()
	return nil
}
