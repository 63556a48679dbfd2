package repository

import (
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
	"gorm.io/gorm"
)

// CafeLocation is one row of the location directory: a distinct place with
// its listing count
type CafeLocation struct {
	Country   string `json:"country"`
	State     string `json:"state"`
	City      string `json:"city"`
	CafeCount int64  `json:"cafe_count"`
}

type CafeRepository interface {
	Create(cafe *model.Cafe) error
	Update(cafe *model.Cafe) error
	Delete(id uint) error
	FindByID(id uint) (*model.Cafe, error)
	FindBySlug(slug string) (*model.Cafe, error)
	FindWithFilter(filter CafeFilter) ([]model.Cafe, int64, error)
	FindByLocation(loc LocationFilter, offset, limit int) ([]model.Cafe, int64, error)
	FindTopByName(query string, limit int) ([]model.Cafe, error)
	FindWithCoordinates(filter CafeFilter) ([]model.Cafe, error)
	FindFeatured(limit int) ([]model.Cafe, error)
	ListLocations() ([]CafeLocation, error)
	ListAll() ([]model.Cafe, error)
}

type cafeRepository struct {
	db *gorm.DB
}

func NewCafeRepository(db *gorm.DB) CafeRepository {
	return &cafeRepository{db: db}
}

func (r *cafeRepository) Create(cafe *model.Cafe) error {
	logger.Debug("Creating cafe in database", map[string]interface{}{
		"name":    cafe.Name,
		"country": cafe.Country,
		"city":    cafe.City,
		"ownerID": cafe.OwnerID,
	})

	if err := r.db.Create(cafe).Error; err != nil {
		logger.Error("Failed to create cafe in database", err, map[string]interface{}{
			"name": cafe.Name,
			"city": cafe.City,
		})
		return err
	}

	logger.Debug("Cafe created in database", map[string]interface{}{
		"cafe_id": cafe.ID,
		"slug":    cafe.Slug,
	})
	return nil
}

func (r *cafeRepository) Update(cafe *model.Cafe) error {
	if err := r.db.Save(cafe).Error; err != nil {
		logger.Error("Failed to update cafe in database", err, map[string]interface{}{
			"cafe_id": cafe.ID,
		})
		return err
	}
	return nil
}

func (r *cafeRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Cafe{}, id).Error; err != nil {
		logger.Error("Failed to delete cafe from database", err, map[string]interface{}{
			"cafe_id": id,
		})
		return err
	}
	return nil
}

func (r *cafeRepository) FindByID(id uint) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := r.db.First(&cafe, id).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *cafeRepository) FindBySlug(slug string) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := r.db.Where("slug = ?", slug).First(&cafe).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

// FindWithFilter applies the compiled predicate list, counts the total match
// set, then fetches the requested window. Count is taken before the window so
// it reflects all matches regardless of pagination.
func (r *cafeRepository) FindWithFilter(filter CafeFilter) ([]model.Cafe, int64, error) {
	logger.Debug("Finding cafes with filter", map[string]interface{}{
		"search":  filter.Search,
		"price":   filter.Price,
		"sort_by": filter.SortBy,
		"limit":   filter.Limit,
		"offset":  filter.Offset,
	})

	query := r.db.Model(&model.Cafe{})
	for _, p := range BuildCafePredicates(filter) {
		query = query.Where(p.Expr, p.Args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count cafes", err, nil)
		return nil, 0, err
	}

	query = query.Order(CafeOrderClause(filter.SortBy))
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	var cafes []model.Cafe
	if err := query.Find(&cafes).Error; err != nil {
		logger.Error("Failed to find cafes", err, nil)
		return nil, 0, err
	}

	return cafes, total, nil
}

// FindByLocation serves the server-rendered city pages: location predicate,
// rating-descending order, count plus one page window.
func (r *cafeRepository) FindByLocation(loc LocationFilter, offset, limit int) ([]model.Cafe, int64, error) {
	logger.Debug("Finding cafes by location", map[string]interface{}{
		"country": loc.Country,
		"state":   loc.State,
		"city":    loc.City,
		"offset":  offset,
		"limit":   limit,
	})

	pred := BuildLocationPredicate(loc)
	query := r.db.Model(&model.Cafe{}).Where(pred.Expr, pred.Args...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count cafes by location", err, nil)
		return nil, 0, err
	}

	var cafes []model.Cafe
	if err := query.Order("rating DESC").Offset(offset).Limit(limit).Find(&cafes).Error; err != nil {
		logger.Error("Failed to find cafes by location", err, nil)
		return nil, 0, err
	}

	return cafes, total, nil
}

// FindTopByName is the bounded command-palette lookup for cafes
func (r *cafeRepository) FindTopByName(query string, limit int) ([]model.Cafe, error) {
	var cafes []model.Cafe
	like := "%" + query + "%"
	err := r.db.Model(&model.Cafe{}).
		Where("LOWER(name) LIKE LOWER(?)", like).
		Limit(limit).
		Find(&cafes).Error
	if err != nil {
		return nil, err
	}
	return cafes, nil
}

// FindWithCoordinates returns the filtered set restricted to rows that can be
// placed on the map
func (r *cafeRepository) FindWithCoordinates(filter CafeFilter) ([]model.Cafe, error) {
	query := r.db.Model(&model.Cafe{}).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL")
	for _, p := range BuildCafePredicates(filter) {
		query = query.Where(p.Expr, p.Args...)
	}

	var cafes []model.Cafe
	if err := query.Find(&cafes).Error; err != nil {
		logger.Error("Failed to find cafes with coordinates", err, nil)
		return nil, err
	}
	return cafes, nil
}

func (r *cafeRepository) FindFeatured(limit int) ([]model.Cafe, error) {
	var cafes []model.Cafe
	err := r.db.Model(&model.Cafe{}).
		Where("is_featured = ?", true).
		Order("rating DESC").
		Limit(limit).
		Find(&cafes).Error
	if err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *cafeRepository) ListLocations() ([]CafeLocation, error) {
	var locations []CafeLocation
	if err := r.db.Model(&model.Cafe{}).
		Select("country, state, city, COUNT(*) as cafe_count").
		Group("country, state, city").
		Order("country ASC, state ASC, city ASC").
		Scan(&locations).Error; err != nil {
		logger.Error("Failed to list cafe locations", err)
		return nil, err
	}
	return locations, nil
}

// ListAll returns every cafe ordered by location, used by the directory export
func (r *cafeRepository) ListAll() ([]model.Cafe, error) {
	var cafes []model.Cafe
	if err := r.db.Model(&model.Cafe{}).
		Order("country ASC, city ASC, name ASC").
		Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}
