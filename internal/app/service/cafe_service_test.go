package service

import (
	"fmt"
	"testing"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCafeServiceTest(t *testing.T) (CafeService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	cafeRepo := repository.NewCafeRepository(testDB)
	return NewCafeService(cafeRepo), testDB
}

func seedCityCafes(t *testing.T, testDB *gorm.DB, city string, count int) {
	for i := 0; i < count; i++ {
		cafe := model.Cafe{
			Name:    fmt.Sprintf("%s Cafe %d", city, i+1),
			Country: model.CountryUSA,
			State:   "NC",
			City:    city,
			Rating:  float64(i%5) + 0.5,
		}
		require.NoError(t, testDB.Create(&cafe).Error)
	}
}

func TestCafeService_ListByLocation_Pagination(t *testing.T) {
	cafeService, testDB := setupCafeServiceTest(t)
	seedCityCafes(t, testDB, "Cary", 25)

	page1, err := cafeService.ListByLocation("usa", "NC", "Cary", 1)
	require.NoError(t, err)
	assert.Len(t, page1.Cafes, 12)
	assert.Equal(t, int64(25), page1.TotalCount)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, CityPageSize, page1.PageSize)
	assert.Equal(t, 3, page1.TotalPages)

	page3, err := cafeService.ListByLocation("usa", "NC", "Cary", 3)
	require.NoError(t, err)
	assert.Len(t, page3.Cafes, 1)
	assert.Equal(t, 3, page3.Page)
}

func TestCafeService_ListByLocation_PagePastEndIsEmptyNotError(t *testing.T) {
	cafeService, testDB := setupCafeServiceTest(t)
	seedCityCafes(t, testDB, "Cary", 25)

	page4, err := cafeService.ListByLocation("usa", "NC", "Cary", 4)
	require.NoError(t, err)
	assert.Empty(t, page4.Cafes)
	assert.Equal(t, int64(25), page4.TotalCount)
	assert.Equal(t, 3, page4.TotalPages)
}

func TestCafeService_ListByLocation_PageBelowOneClamps(t *testing.T) {
	cafeService, testDB := setupCafeServiceTest(t)
	seedCityCafes(t, testDB, "Cary", 3)

	page, err := cafeService.ListByLocation("usa", "NC", "Cary", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Cafes, 3)
}

func TestCafeService_ListByLocation_SortedByRatingDesc(t *testing.T) {
	cafeService, testDB := setupCafeServiceTest(t)
	seedCityCafes(t, testDB, "Durham", 5)

	page, err := cafeService.ListByLocation("usa", "NC", "Durham", 1)
	require.NoError(t, err)
	require.Len(t, page.Cafes, 5)

	for i := 1; i < len(page.Cafes); i++ {
		assert.GreaterOrEqual(t, page.Cafes[i-1].Rating, page.Cafes[i].Rating)
	}
}

func TestCafeService_ListByLocation_BangladeshMatchesLegacyLocation(t *testing.T) {
	cafeService, testDB := setupCafeServiceTest(t)

	gulshan := model.Cafe{
		Name:     "North End",
		Country:  model.CountryBangladesh,
		City:     "Dhaka",
		Location: "House 5, Road 11, Gulshan 2, Dhaka",
	}
	banani := model.Cafe{
		Name:     "Crimson Cup",
		Country:  model.CountryBangladesh,
		City:     "Dhaka",
		Location: "Banani 11, Dhaka",
	}
	require.NoError(t, testDB.Create(&gulshan).Error)
	require.NoError(t, testDB.Create(&banani).Error)

	page, err := cafeService.ListByLocation("bangladesh", "", "gulshan", 1)
	require.NoError(t, err)
	require.Len(t, page.Cafes, 1)
	assert.Equal(t, "North End", page.Cafes[0].Name)
}

func TestCafeService_CreateCafe_Validation(t *testing.T) {
	cafeService, _ := setupCafeServiceTest(t)
	lat := 35.79

	tests := []struct {
		name    string
		cafe    *model.Cafe
		wantErr error
	}{
		{
			name:    "USA listing without state",
			cafe:    &model.Cafe{Name: "Cafe", Country: model.CountryUSA, City: "Cary"},
			wantErr: ErrStateRequired,
		},
		{
			name:    "Missing city",
			cafe:    &model.Cafe{Name: "Cafe", Country: model.CountryBangladesh},
			wantErr: ErrCityRequired,
		},
		{
			name:    "Latitude without longitude",
			cafe:    &model.Cafe{Name: "Cafe", Country: model.CountryBangladesh, City: "Dhaka", Latitude: &lat},
			wantErr: ErrPartialCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cafeService.CreateCafe(1, tt.cafe)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCafeService_CreateCafe_AssignsSlugAndOwner(t *testing.T) {
	cafeService, _ := setupCafeServiceTest(t)

	cafe, err := cafeService.CreateCafe(7, &model.Cafe{
		Name:    "North End Coffee",
		Country: model.CountryBangladesh,
		City:    "Dhaka",
	})
	require.NoError(t, err)
	assert.Equal(t, "dhaka-north-end-coffee", cafe.Slug)
	require.NotNil(t, cafe.OwnerID)
	assert.Equal(t, uint(7), *cafe.OwnerID)
}

func TestCafeService_UpdateCafe_OwnerOnly(t *testing.T) {
	cafeService, _ := setupCafeServiceTest(t)

	cafe, err := cafeService.CreateCafe(1, &model.Cafe{
		Name:    "Owned Cafe",
		Country: model.CountryBangladesh,
		City:    "Dhaka",
	})
	require.NoError(t, err)

	updates := &model.Cafe{Name: "Renamed", Country: model.CountryBangladesh, City: "Dhaka"}

	_, err = cafeService.UpdateCafe(cafe.ID, 2, false, updates)
	assert.ErrorIs(t, err, ErrNotCafeOwner)

	// Admin override
	updated, err := cafeService.UpdateCafe(cafe.ID, 2, true, updates)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestCafeService_ListNearby_OrderedByDistance(t *testing.T) {
	cafeService, testDB := setupCafeServiceTest(t)

	near := model.Cafe{Name: "Near", Country: model.CountryBangladesh, City: "Dhaka"}
	nearLat, nearLng := 23.80, 90.41
	near.Latitude, near.Longitude = &nearLat, &nearLng

	far := model.Cafe{Name: "Far", Country: model.CountryBangladesh, City: "Chattogram"}
	farLat, farLng := 22.35, 91.78
	far.Latitude, far.Longitude = &farLat, &farLng

	noGeo := model.Cafe{Name: "No Geo", Country: model.CountryBangladesh, City: "Dhaka"}

	require.NoError(t, testDB.Create(&near).Error)
	require.NoError(t, testDB.Create(&far).Error)
	require.NoError(t, testDB.Create(&noGeo).Error)

	nearby, err := cafeService.ListNearby(23.79, 90.40, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 2, "cafes without coordinates are excluded")
	assert.Equal(t, "Near", nearby[0].Name)
	assert.Equal(t, "Far", nearby[1].Name)
	assert.Less(t, nearby[0].DistanceKm, nearby[1].DistanceKm)
}

func TestCafeService_SearchCafes_FilterAndCount(t *testing.T) {
	cafeService, testDB := setupCafeServiceTest(t)

	cheap := model.Cafe{Name: "Budget Beans", Country: model.CountryBangladesh, City: "Dhaka", AvgPrice: 150, HasWifi: true}
	mid := model.Cafe{Name: "Middle Grounds", Country: model.CountryBangladesh, City: "Dhaka", AvgPrice: 450}
	fancy := model.Cafe{Name: "Premium Pour", Country: model.CountryBangladesh, City: "Dhaka", AvgPrice: 900, HasWifi: true}
	require.NoError(t, testDB.Create(&cheap).Error)
	require.NoError(t, testDB.Create(&mid).Error)
	require.NoError(t, testDB.Create(&fancy).Error)

	cafes, total, err := cafeService.SearchCafes(repository.CafeFilter{
		Amenities: model.Amenities{Wifi: true},
		Price:     repository.PriceBudget,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, cafes, 1)
	assert.Equal(t, "Budget Beans", cafes[0].Name)

	// "all" price with no other filters matches everything
	_, total, err = cafeService.SearchCafes(repository.CafeFilter{Price: repository.PriceAll})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
