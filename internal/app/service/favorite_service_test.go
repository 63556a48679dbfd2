package service

import (
	"testing"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFavoriteServiceTest(t *testing.T) (FavoriteService, *model.Cafe) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	favoriteRepo := repository.NewFavoriteRepository(testDB)
	cafeRepo := repository.NewCafeRepository(testDB)

	cafe := &model.Cafe{Name: "Save Me", Country: model.CountryBangladesh, City: "Dhaka"}
	require.NoError(t, testDB.Create(cafe).Error)

	return NewFavoriteService(favoriteRepo, cafeRepo), cafe
}

func TestFavoriteService_ToggleFavorite(t *testing.T) {
	favoriteService, cafe := setupFavoriteServiceTest(t)

	// First toggle saves
	favorited, err := favoriteService.ToggleFavorite(1, cafe.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	saved, err := favoriteService.IsFavorited(1, cafe.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	// Second toggle removes
	favorited, err = favoriteService.ToggleFavorite(1, cafe.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	saved, err = favoriteService.IsFavorited(1, cafe.ID)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestFavoriteService_ToggleFavorite_UnknownCafe(t *testing.T) {
	favoriteService, _ := setupFavoriteServiceTest(t)

	_, err := favoriteService.ToggleFavorite(1, 9999)
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestFavoriteService_TogglesAreIndependentPerUser(t *testing.T) {
	favoriteService, cafe := setupFavoriteServiceTest(t)

	_, err := favoriteService.ToggleFavorite(1, cafe.ID)
	require.NoError(t, err)

	otherSaved, err := favoriteService.IsFavorited(2, cafe.ID)
	require.NoError(t, err)
	assert.False(t, otherSaved)
}

func TestFavoriteService_GetUserFavorites(t *testing.T) {
	favoriteService, cafe := setupFavoriteServiceTest(t)

	favorites, err := favoriteService.GetUserFavorites(1)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	_, err = favoriteService.ToggleFavorite(1, cafe.ID)
	require.NoError(t, err)

	favorites, err = favoriteService.GetUserFavorites(1)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, cafe.ID, favorites[0].CafeID)
	assert.Equal(t, cafe.Name, favorites[0].Cafe.Name)
}
