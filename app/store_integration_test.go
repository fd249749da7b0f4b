package app

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/auth"
	"github.com/user/nutritrack-go/foods"
	"github.com/user/nutritrack-go/tracking"
)

// The same contract runs against every backend. Postgres and MongoDB only run when
// TEST_DATABASE_URL / TEST_MONGO_URI point at a disposable server.

func TestStoreContract_Memory(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestStoreContract_Postgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	m, err := migrate.New("file://../migrations", url)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}
	_, _ = m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	store := NewPostgresStore(pool)
	t.Cleanup(store.Close)
	require.NoError(t, store.Ping(ctx))

	exerciseStore(t, store)
}

func TestStoreContract_Mongo(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	database := client.Database("nutritrack_test_" + uuid.NewString()[:8])
	t.Cleanup(func() { _ = database.Drop(context.Background()) })

	store, err := NewMongoStore(ctx, client, database)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	require.NoError(t, store.Ping(ctx))

	exerciseStore(t, store)
}

func exerciseStore(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()
	suffix := uuid.NewString()[:8]

	// users
	email := "contract-" + suffix + "@example.com"
	user := &auth.User{Email: email, PasswordHash: "$2a$10$hash", Name: "Jane", Age: 29}
	require.NoError(t, store.Users.Create(ctx, user))
	require.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	err := store.Users.Create(ctx, &auth.User{Email: email, PasswordHash: "x", Name: "Twin"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateRecord)

	byEmail, err := store.Users.GetByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "$2a$10$hash", byEmail.PasswordHash)

	byID, err := store.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, email, byID.Email)

	_, err = store.Users.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, apperror.ErrRecordNotFound)
	_, err = store.Users.GetByEmail(ctx, "ghost-"+suffix+"@example.com")
	assert.ErrorIs(t, err, apperror.ErrRecordNotFound)

	// foods
	name := "Rye Bread (" + suffix + ")"
	food := &foods.Food{Name: name, Calories: 259, Carbohydrates: 48, Fat: 3.3, Protein: 8.5, Fiber: 5.8}
	require.NoError(t, store.Foods.Create(ctx, food))
	require.NotEmpty(t, food.ID)

	err = store.Foods.Create(ctx, &foods.Food{Name: strings.ToUpper(name)})
	assert.ErrorIs(t, err, apperror.ErrDuplicateRecord, "names are unique ignoring case")

	got, err := store.Foods.GetByName(ctx, strings.ToLower(name))
	require.NoError(t, err)
	assert.Equal(t, food.ID, got.ID)

	found, err := store.Foods.SearchByName(ctx, "BREAD ("+suffix)
	require.NoError(t, err)
	require.Len(t, found, 1, "metacharacters in the fragment match literally")
	assert.Equal(t, food.ID, found[0].ID)

	byIDs, err := store.Foods.GetByIDs(ctx, []string{food.ID, "not-an-id"})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)
	assert.Equal(t, name, byIDs[food.ID].Name)

	all, err := store.Foods.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	// tracking
	for _, qty := range []float64{100, 250} {
		require.NoError(t, store.Tracking.Create(ctx, &tracking.Record{
			UserID: user.ID, FoodID: food.ID, EatenDate: "5.3.2024", Quantity: qty,
		}))
	}
	records, err := store.Tracking.ListByUserAndDate(ctx, user.ID, "5.3.2024")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, food.ID, records[0].FoodID)
	assert.ElementsMatch(t, []float64{100, 250}, []float64{records[0].Quantity, records[1].Quantity})

	none, err := store.Tracking.ListByUserAndDate(ctx, user.ID, "6.3.2024")
	require.NoError(t, err)
	assert.Empty(t, none)

	// sessions
	past := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Sessions.Create(ctx, &auth.Session{
		ID: "sid-" + suffix, Token: "tok", UserID: user.ID, ExpiresAt: past, CreatedAt: past.Add(-time.Hour),
	}))
	n, err := store.Sessions.DeleteExpired(ctx, past)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
	assert.NoError(t, store.Sessions.Delete(ctx, "sid-"+suffix), "deleting a purged session is a no-op")
}
