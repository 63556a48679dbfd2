package service

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrCafeNotFound       = errors.New("cafe not found")
	ErrNotCafeOwner       = errors.New("only the owner can modify this cafe")
	ErrPartialCoordinates = errors.New("latitude and longitude must be set together")
	ErrStateRequired      = errors.New("state is required for USA listings")
	ErrCityRequired       = errors.New("city or area is required")
)

// CityPageSize is the fixed page size of the server-rendered city pages
const CityPageSize = 12

// CafeWithStatus is a cafe row plus its derived open-now state
type CafeWithStatus struct {
	model.Cafe
	OpenNow model.OpenStatus `json:"open_now"`
}

// CafePage is one page of location results with its pagination envelope.
// TotalPages of zero means the view renders no pagination controls.
type CafePage struct {
	Cafes      []CafeWithStatus `json:"cafes"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// NearbyCafe pairs a cafe with its distance from the query point
type NearbyCafe struct {
	model.Cafe
	DistanceKm float64 `json:"distance_km"`
}

type CafeService interface {
	CreateCafe(ownerID uint, cafe *model.Cafe) (*model.Cafe, error)
	UpdateCafe(cafeID, userID uint, isAdmin bool, updates *model.Cafe) (*model.Cafe, error)
	DeleteCafe(cafeID, userID uint, isAdmin bool) error
	GetCafeByID(id uint) (*model.Cafe, error)
	GetCafeBySlug(slug string) (*model.Cafe, error)
	SearchCafes(filter repository.CafeFilter) ([]model.Cafe, int64, error)
	ListByLocation(country, state, city string, page int) (*CafePage, error)
	ListFeatured(limit int) ([]model.Cafe, error)
	ListNearby(lat, lng float64, limit int) ([]NearbyCafe, error)
	ListLocations() ([]repository.CafeLocation, error)
}

type cafeService struct {
	cafeRepo repository.CafeRepository
}

func NewCafeService(cafeRepo repository.CafeRepository) CafeService {
	return &cafeService{cafeRepo: cafeRepo}
}

// validateCafe enforces the form-level invariants before any store call
func validateCafe(cafe *model.Cafe) error {
	if strings.TrimSpace(cafe.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(cafe.City) == "" {
		return ErrCityRequired
	}
	if cafe.Country == model.CountryUSA && strings.TrimSpace(cafe.State) == "" {
		return ErrStateRequired
	}
	// Coordinates are all-or-nothing; a point with one axis is useless on a map
	if (cafe.Latitude == nil) != (cafe.Longitude == nil) {
		return ErrPartialCoordinates
	}
	return nil
}

func (s *cafeService) CreateCafe(ownerID uint, cafe *model.Cafe) (*model.Cafe, error) {
	if err := validateCafe(cafe); err != nil {
		return nil, err
	}

	cafe.OwnerID = &ownerID
	if err := s.cafeRepo.Create(cafe); err != nil {
		return nil, err
	}

	logger.Info("Cafe created", map[string]interface{}{
		"cafe_id": cafe.ID,
		"slug":    cafe.Slug,
		"owner":   ownerID,
	})
	return cafe, nil
}

func (s *cafeService) UpdateCafe(cafeID, userID uint, isAdmin bool, updates *model.Cafe) (*model.Cafe, error) {
	cafe, err := s.cafeRepo.FindByID(cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}

	if !isAdmin && (cafe.OwnerID == nil || *cafe.OwnerID != userID) {
		return nil, ErrNotCafeOwner
	}

	cafe.Name = updates.Name
	cafe.Description = updates.Description
	cafe.CoverImage = updates.CoverImage
	cafe.Country = updates.Country
	cafe.State = updates.State
	cafe.City = updates.City
	cafe.AddressStreet = updates.AddressStreet
	cafe.Location = updates.Location
	cafe.Latitude = updates.Latitude
	cafe.Longitude = updates.Longitude
	cafe.OpeningTime = updates.OpeningTime
	cafe.ClosingTime = updates.ClosingTime
	cafe.AvgPrice = updates.AvgPrice
	cafe.HasWifi = updates.HasWifi
	cafe.HasAC = updates.HasAC
	cafe.HasParking = updates.HasParking
	cafe.HasSocket = updates.HasSocket
	cafe.Amenities = updates.Amenities

	if err := validateCafe(cafe); err != nil {
		return nil, err
	}

	if err := s.cafeRepo.Update(cafe); err != nil {
		return nil, err
	}
	return cafe, nil
}

func (s *cafeService) DeleteCafe(cafeID, userID uint, isAdmin bool) error {
	cafe, err := s.cafeRepo.FindByID(cafeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCafeNotFound
		}
		return err
	}

	if !isAdmin && (cafe.OwnerID == nil || *cafe.OwnerID != userID) {
		return ErrNotCafeOwner
	}

	return s.cafeRepo.Delete(cafeID)
}

func (s *cafeService) GetCafeByID(id uint) (*model.Cafe, error) {
	cafe, err := s.cafeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return cafe, nil
}

func (s *cafeService) GetCafeBySlug(slug string) (*model.Cafe, error) {
	cafe, err := s.cafeRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return cafe, nil
}

func (s *cafeService) SearchCafes(filter repository.CafeFilter) ([]model.Cafe, int64, error) {
	return s.cafeRepo.FindWithFilter(filter)
}

// ListByLocation serves a city page: 1-based page number, fixed page size,
// rating-descending rows with derived open-now status. A page past the end is
// a valid empty result, not an error.
func (s *cafeService) ListByLocation(country, state, city string, page int) (*CafePage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * CityPageSize

	loc := repository.LocationFilter{
		Country: country,
		State:   state,
		City:    city,
	}

	cafes, total, err := s.cafeRepo.FindByLocation(loc, offset, CityPageSize)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	withStatus := make([]CafeWithStatus, len(cafes))
	for i := range cafes {
		withStatus[i] = CafeWithStatus{
			Cafe:    cafes[i],
			OpenNow: cafes[i].OpenStatusAt(now),
		}
	}

	totalPages := int((total + CityPageSize - 1) / CityPageSize)

	return &CafePage{
		Cafes:      withStatus,
		TotalCount: total,
		Page:       page,
		PageSize:   CityPageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *cafeService) ListFeatured(limit int) ([]model.Cafe, error) {
	if limit <= 0 {
		limit = 6
	}
	return s.cafeRepo.FindFeatured(limit)
}

// ListNearby orders geo-tagged cafes by haversine distance from the point
func (s *cafeService) ListNearby(lat, lng float64, limit int) ([]NearbyCafe, error) {
	if limit <= 0 {
		limit = 10
	}

	cafes, err := s.cafeRepo.FindWithCoordinates(repository.CafeFilter{})
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyCafe, 0, len(cafes))
	for _, cafe := range cafes {
		if !cafe.HasCoordinates() {
			continue
		}
		nearby = append(nearby, NearbyCafe{
			Cafe:       cafe,
			DistanceKm: util.CalculateDistance(lat, lng, *cafe.Latitude, *cafe.Longitude),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

func (s *cafeService) ListLocations() ([]repository.CafeLocation, error) {
	return s.cafeRepo.ListLocations()
}
