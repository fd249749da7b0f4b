package tracking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/nutritrack-go/apperror"
	"github.com/user/nutritrack-go/foods"
)

type failingFinder struct{}

func (failingFinder) FindFoods(context.Context, []string) (map[string]foods.Food, error) {
	return nil, errors.New("catalog unavailable")
}

// uuidFinder resolves ids the way the postgres catalog does: any spelling uuid.Parse
// accepts finds the row, and the result is keyed by the canonical form.
type uuidFinder struct {
	catalog map[string]foods.Food
}

func (u uuidFinder) FindFoods(_ context.Context, ids []string) (map[string]foods.Food, error) {
	out := make(map[string]foods.Food)
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		if f, ok := u.catalog[parsed.String()]; ok {
			out[f.ID] = f
		}
	}
	return out, nil
}

type fixture struct {
	svc     *Service
	repo    *MemoryRepository
	banana  foods.Food
	oatmeal foods.Food
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := foods.NewMemoryRepository()
	banana := &foods.Food{Name: "Banana", Calories: 89}
	oatmeal := &foods.Food{Name: "Oatmeal", Calories: 68}
	require.NoError(t, catalog.Create(context.Background(), banana))
	require.NoError(t, catalog.Create(context.Background(), oatmeal))

	repo := NewMemoryRepository()
	svc := NewService(repo, foods.NewService(catalog, nil))
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 22, 30, 0, 0, time.UTC) }
	return &fixture{svc: svc, repo: repo, banana: *banana, oatmeal: *oatmeal}
}

func qty(v float64) *float64 { return &v }

func TestService_TrackDefaults(t *testing.T) {
	f := newFixture(t)

	rec, err := f.svc.Track(context.Background(), "u1", TrackRequest{FoodID: f.banana.ID})
	require.NoError(t, err)

	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, "5.3.2024", rec.EatenDate)
	assert.Equal(t, DefaultQuantity, rec.Quantity)
	assert.NotEmpty(t, rec.ID)
}

func TestService_TrackNormalizesEatenDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, date := range []string{"05-03-2024", "5.3.2024", "05.03.2024"} {
		rec, err := f.svc.Track(ctx, "u1", TrackRequest{UserID: "u1", FoodID: f.banana.ID, EatenDate: date, Quantity: qty(50)})
		require.NoError(t, err, date)
		assert.Equal(t, "5.3.2024", rec.EatenDate, date)
	}

	records, err := f.repo.ListByUserAndDate(ctx, "u1", "5.3.2024")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestService_TrackRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Track(ctx, "u1", TrackRequest{UserID: "u2", FoodID: f.banana.ID})
	assert.True(t, apperror.IsAuthError(err), "tracking for another user")

	_, err = f.svc.Track(ctx, "u1", TrackRequest{FoodID: "no-such-food"})
	assert.True(t, apperror.IsNotFound(err))

	_, err = f.svc.Track(ctx, "u1", TrackRequest{FoodID: f.banana.ID, EatenDate: "2024-03-05"})
	assert.True(t, apperror.IsValidationError(err))

	records, err := f.repo.ListByUserAndDate(ctx, "u1", "5.3.2024")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_TrackAcceptsAnySpellingOfTheFoodID(t *testing.T) {
	id := uuid.NewString()
	rye := foods.Food{ID: id, Name: "Rye Bread", Calories: 259}
	repo := NewMemoryRepository()
	svc := NewService(repo, uuidFinder{catalog: map[string]foods.Food{id: rye}})
	ctx := context.Background()

	spellings := []string{id, strings.ToUpper(id), "{" + id + "}", strings.ReplaceAll(id, "-", "")}
	for _, foodID := range spellings {
		rec, err := svc.Track(ctx, "u1", TrackRequest{FoodID: foodID, EatenDate: "05-03-2024"})
		require.NoError(t, err, foodID)
		assert.Equal(t, id, rec.FoodID, "stored under the canonical id")
	}

	tracked, err := svc.ListTracked(ctx, "u1", "u1", "05-03-2024")
	require.NoError(t, err)
	require.Len(t, tracked, len(spellings))
	for _, tf := range tracked {
		require.NotNil(t, tf.Food)
		assert.Equal(t, "Rye Bread", tf.Food.Name)
	}

	_, err = svc.Track(ctx, "u1", TrackRequest{FoodID: uuid.NewString()})
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_TrackCatalogFailure(t *testing.T) {
	svc := NewService(NewMemoryRepository(), failingFinder{})

	_, err := svc.Track(context.Background(), "u1", TrackRequest{FoodID: "x"})

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode())
}

func TestService_ListTracked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Track(ctx, "u1", TrackRequest{FoodID: f.banana.ID, EatenDate: "05-03-2024", Quantity: qty(120)})
	require.NoError(t, err)
	_, err = f.svc.Track(ctx, "u1", TrackRequest{FoodID: f.oatmeal.ID, EatenDate: "05-03-2024"})
	require.NoError(t, err)
	_, err = f.svc.Track(ctx, "u1", TrackRequest{FoodID: f.oatmeal.ID, EatenDate: "06-03-2024"})
	require.NoError(t, err)
	_, err = f.svc.Track(ctx, "u2", TrackRequest{FoodID: f.banana.ID, EatenDate: "05-03-2024"})
	require.NoError(t, err)

	tracked, err := f.svc.ListTracked(ctx, "u1", "u1", "05-03-2024")
	require.NoError(t, err)
	require.Len(t, tracked, 2)

	assert.Equal(t, "Banana", tracked[0].Food.Name)
	assert.Equal(t, 120.0, tracked[0].Quantity)
	assert.Equal(t, "Oatmeal", tracked[1].Food.Name)
	for _, tf := range tracked {
		assert.Equal(t, "u1", tf.UserID)
		assert.Equal(t, "5.3.2024", tf.EatenDate)
	}
}

func TestService_ListTrackedRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Track(ctx, "u1", TrackRequest{FoodID: f.banana.ID})
	require.NoError(t, err)

	_, err = f.svc.ListTracked(ctx, "u2", "u1", "05-03-2024")
	assert.True(t, apperror.IsAuthError(err), "another user's records")

	_, err = f.svc.ListTracked(ctx, "u1", "u1", "5.3.2024")
	assert.True(t, apperror.IsValidationError(err))

	_, err = f.svc.ListTracked(ctx, "u1", "u1", "01-01-2020")
	require.True(t, apperror.IsNotFound(err))
	appErr, _ := apperror.FromError(err)
	assert.Equal(t, "No foods tracked by this user, try to eat something :)", appErr.Message)
}
