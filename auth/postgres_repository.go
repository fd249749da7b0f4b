package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/nutritrack-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// PostgresUserRepository stores users in the `users` table.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a PostgresUserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, email, password_hash, name, age, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var id uuid.UUID
	if err := row.Scan(&id, &u.Email, &u.PasswordHash, &u.Name, &u.Age, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrRecordNotFound
		}
		return nil, err
	}
	u.ID = id.String()
	return &u, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	id := uuid.New()
	query := `INSERT INTO users (id, email, password_hash, name, age)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at`
	err := r.db.QueryRow(ctx, query, id, user.Email, user.PasswordHash, user.Name, user.Age).Scan(&user.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return apperror.ErrDuplicateRecord
		}
		return err
	}
	user.ID = id.String()
	return nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrRecordNotFound
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, uid))
}

// PostgresSessionRepository stores sessions in the `sessions` table.
type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

// NewPostgresSessionRepository creates a PostgresSessionRepository.
func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Create(ctx context.Context, s *Session) error {
	uid, err := uuid.Parse(s.UserID)
	if err != nil {
		return apperror.ErrRecordNotFound
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO sessions (id, token, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Token, uid, s.ExpiresAt, s.CreatedAt,
	)
	if IsUniqueViolation(err) {
		return apperror.ErrDuplicateRecord
	}
	return err
}

func (r *PostgresSessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *PostgresSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
