// Package app assembles the application: it opens the configured store, builds the
// services and handlers on top of it and mounts them on a chi router. main.go only
// parses flags, loads configuration and runs the server; tests build the same
// router against the memory store.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/user/nutritrack-go/auth"
	"github.com/user/nutritrack-go/config"
	"github.com/user/nutritrack-go/db"
	"github.com/user/nutritrack-go/foods"
	"github.com/user/nutritrack-go/tracking"
)

// Store bundles one backend's repositories with its health check and teardown.
type Store struct {
	Driver   string
	Users    auth.UserRepository
	Sessions auth.SessionRepository
	Foods    foods.Repository
	Tracking tracking.Repository

	ping  func(ctx context.Context) error
	close func()
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend's connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewMemoryStore returns a store that lives in process memory.
func NewMemoryStore() *Store {
	return &Store{
		Driver:   config.DriverMemory,
		Users:    auth.NewMemoryUserRepository(),
		Sessions: auth.NewMemorySessionRepository(),
		Foods:    foods.NewMemoryRepository(),
		Tracking: tracking.NewMemoryRepository(),
	}
}

// NewPostgresStore wraps an open pool. The schema comes from the migrations.
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Driver:   config.DriverPostgres,
		Users:    auth.NewPostgresUserRepository(pool),
		Sessions: auth.NewPostgresSessionRepository(pool),
		Foods:    foods.NewPostgresRepository(pool),
		Tracking: tracking.NewPostgresRepository(pool),
		ping:     pool.Ping,
		close:    pool.Close,
	}
}

// NewMongoStore wraps an open database and makes sure the indexes the
// repositories rely on exist.
func NewMongoStore(ctx context.Context, client *mongo.Client, database *mongo.Database) (*Store, error) {
	users := auth.NewMongoUserRepository(database)
	catalog := foods.NewMongoRepository(database)
	records := tracking.NewMongoRepository(database)

	for name, ensure := range map[string]func(context.Context) error{
		"users":     users.EnsureIndexes,
		"foods":     catalog.EnsureIndexes,
		"trackings": records.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return nil, fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}

	return &Store{
		Driver:   config.DriverMongo,
		Users:    users,
		Sessions: auth.NewMongoSessionRepository(database),
		Foods:    catalog,
		Tracking: records,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: func() {
			_ = client.Disconnect(context.Background())
		},
	}, nil
}

// OpenStore connects to the backend selected by cfg.Driver.
func OpenStore(ctx context.Context, cfg *config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := db.NewPostgresPool(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool), nil
	case config.DriverMongo:
		client, database, err := db.NewMongoDatabase(cfg.Mongo)
		if err != nil {
			return nil, err
		}
		store, err := NewMongoStore(ctx, client, database)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return store, nil
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
