package foods

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/nutritrack-go/apperror"
)

const adminID = "admin-1"

type brokenRepository struct {
	*MemoryRepository
	err error
}

func (b brokenRepository) List(context.Context) ([]Food, error) { return nil, b.err }
func (b brokenRepository) GetByName(context.Context, string) (*Food, error) {
	return nil, b.err
}

func seed(t *testing.T, repo Repository, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, repo.Create(context.Background(), &Food{Name: n, Calories: 100}))
	}
}

func TestService_ListFoods(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "banana", "Apple", "cherry")
	svc := NewService(repo, []string{adminID})

	foods, err := svc.ListFoods(context.Background())
	require.NoError(t, err)
	require.Len(t, foods, 3)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, []string{foods[0].Name, foods[1].Name, foods[2].Name})
}

func TestService_ListFoodsStoreFailure(t *testing.T) {
	svc := NewService(brokenRepository{NewMemoryRepository(), errors.New("down")}, nil)

	_, err := svc.ListFoods(context.Background())
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode())
	assert.Equal(t, "Error fetching all the foods", appErr.Message)
}

func TestService_SearchFoods(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "Banana", "Banana bread", "Apple", "a.b (test)")
	svc := NewService(repo, nil)
	ctx := context.Background()

	found, err := svc.SearchFoods(ctx, "BAN")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.SearchFoods(ctx, "(test)")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a.b (test)", found[0].Name)

	found, err = svc.SearchFoods(ctx, ".*")
	require.NoError(t, err)
	assert.Empty(t, found, "metacharacters are matched literally")
	assert.NotNil(t, found)
}

func TestService_AddFood(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, []string{" " + adminID + " "})
	ctx := context.Background()

	food, err := svc.AddFood(ctx, adminID, AddFoodRequest{Name: "  Oats ", Calories: 389, Protein: 16.9})
	require.NoError(t, err)
	assert.Equal(t, "Oats", food.Name)
	assert.NotEmpty(t, food.ID)

	stored, err := repo.GetByName(ctx, "oats")
	require.NoError(t, err)
	assert.Equal(t, 389.0, stored.Calories)
}

func TestService_AddFoodRequiresAdmin(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, []string{adminID})

	_, err := svc.AddFood(context.Background(), "someone-else", AddFoodRequest{Name: "Oats"})

	assert.True(t, apperror.IsAuthError(err))
	all, _ := repo.List(context.Background())
	assert.Empty(t, all)
}

func TestService_AddFoodNoAdminsConfigured(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	_, err := svc.AddFood(context.Background(), "", AddFoodRequest{Name: "Oats"})
	assert.True(t, apperror.IsAuthError(err))
}

func TestService_AddFoodDuplicate(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "Oats")
	svc := NewService(repo, []string{adminID})

	_, err := svc.AddFood(context.Background(), adminID, AddFoodRequest{Name: "OATS"})

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
	assert.Equal(t, "Food with this name already exists.", appErr.Message)
}

func TestService_AddFoodSimilarNameIsNotDuplicate(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "Oat milk")
	svc := NewService(repo, []string{adminID})

	_, err := svc.AddFood(context.Background(), adminID, AddFoodRequest{Name: "Oat"})
	assert.NoError(t, err)
}

func TestService_FindFoods(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "Oats")
	oats, err := repo.GetByName(context.Background(), "oats")
	require.NoError(t, err)
	svc := NewService(repo, nil)

	found, err := svc.FindFoods(context.Background(), []string{oats.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Oats", found[oats.ID].Name)
}
