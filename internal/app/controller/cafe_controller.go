package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	apperrors "github.com/nafiuibnemazhar/workspot-bd-sub000/internal/errors"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/geo"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/middleware"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/redis"
	"github.com/paulmach/orb"
)

const locationsCacheKey = "cafes:locations"

type CafeController struct {
	cafeService   service.CafeService
	exportService service.ExportService
}

func NewCafeController(cafeService service.CafeService, exportService service.ExportService) *CafeController {
	return &CafeController{
		cafeService:   cafeService,
		exportService: exportService,
	}
}

// parseCafeFilter reads the listing filter state from query parameters
func parseCafeFilter(c *gin.Context) repository.CafeFilter {
	filter := repository.CafeFilter{
		Search: c.Query("search"),
		Price:  repository.PriceBucket(c.DefaultQuery("price", "all")),
		SortBy: repository.CafeSort(c.DefaultQuery("sort", "newest")),
	}

	for _, name := range strings.Split(c.Query("amenities"), ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "wifi":
			filter.Amenities.Wifi = true
		case "ac":
			filter.Amenities.AC = true
		case "parking":
			filter.Amenities.Parking = true
		case "socket", "outlets":
			filter.Amenities.Socket = true
		case "generator":
			filter.Amenities.Generator = true
		}
	}

	if c.Query("shape") == "nested" {
		filter.Shape = repository.AmenityShapeNested
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize

	return filter
}

// ListCafes serves the interactive listing with search, amenity, price and
// sort filters
func (ctrl *CafeController) ListCafes(c *gin.Context) {
	filter := parseCafeFilter(c)

	cafes, total, err := ctrl.cafeService.SearchCafes(filter)
	if err != nil {
		apperrors.InternalError(c, "Failed to load cafes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      cafes,
		"total":     total,
		"page":      filter.Offset/filter.Limit + 1,
		"page_size": filter.Limit,
	})
}

// GetCafeBySlug serves the detail page, including the derived open-now state
func (ctrl *CafeController) GetCafeBySlug(c *gin.Context) {
	cafe, err := ctrl.cafeService.GetCafeBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			apperrors.NotFound(c, apperrors.CafeNotFound, "Cafe not found")
			return
		}
		apperrors.InternalError(c, "Failed to load cafe")
		return
	}

	c.JSON(http.StatusOK, service.CafeWithStatus{
		Cafe:    *cafe,
		OpenNow: cafe.OpenStatusAt(time.Now()),
	})
}

// ListByLocation serves one page of a city page
func (ctrl *CafeController) ListByLocation(c *gin.Context) {
	country := c.Param("country")
	city := c.Param("city")
	state := c.Query("state")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	if strings.TrimSpace(city) == "" {
		apperrors.BadRequest(c, apperrors.CafeInvalidLocation, "City is required")
		return
	}

	result, err := ctrl.cafeService.ListByLocation(country, state, city, page)
	if err != nil {
		apperrors.InternalError(c, "Failed to load city page")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListLocations serves the browse-by-location directory, cached in Redis
func (ctrl *CafeController) ListLocations(c *gin.Context) {
	var cached []repository.CafeLocation
	if err := redis.GetJSON(c.Request.Context(), locationsCacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{"data": cached})
		return
	}

	locations, err := ctrl.cafeService.ListLocations()
	if err != nil {
		apperrors.InternalError(c, "Failed to load locations")
		return
	}

	if err := redis.SetJSON(c.Request.Context(), locationsCacheKey, locations, 10*time.Minute); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to cache locations", map[string]interface{}{
			"error": err.Error(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": locations})
}

// ListFeatured serves the homepage featured strip
func (ctrl *CafeController) ListFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	cafes, err := ctrl.cafeService.ListFeatured(limit)
	if err != nil {
		apperrors.InternalError(c, "Failed to load featured cafes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cafes})
}

// ListNearby orders geo-tagged cafes by distance from a point
func (ctrl *CafeController) ListNearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "lat and lng are required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	nearby, err := ctrl.cafeService.ListNearby(lat, lng, limit)
	if err != nil {
		apperrors.InternalError(c, "Failed to load nearby cafes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": nearby})
}

// MapViewport computes the center and zoom that fit every matching cafe with
// coordinates. No matches returns an empty body so the map keeps its default
// view.
func (ctrl *CafeController) MapViewport(c *gin.Context) {
	filter := parseCafeFilter(c)
	filter.Limit = 0
	filter.Offset = 0

	cafes, _, err := ctrl.cafeService.SearchCafes(filter)
	if err != nil {
		apperrors.InternalError(c, "Failed to compute map viewport")
		return
	}

	var points []orb.Point
	for _, cafe := range cafes {
		if cafe.HasCoordinates() {
			points = append(points, orb.Point{*cafe.Longitude, *cafe.Latitude})
		}
	}

	viewport := geo.FitBounds(points)
	if viewport == nil {
		c.JSON(http.StatusOK, gin.H{"viewport": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"viewport": viewport})
}

type cafeInput struct {
	Name          string            `json:"name" binding:"required"`
	Description   string            `json:"description"`
	CoverImage    string            `json:"cover_image"`
	Country       string            `json:"country" binding:"required"`
	State         string            `json:"state"`
	City          string            `json:"city" binding:"required"`
	AddressStreet string            `json:"address_street"`
	Location      string            `json:"location"`
	Latitude      *float64          `json:"latitude"`
	Longitude     *float64          `json:"longitude"`
	OpeningTime   string            `json:"opening_time"`
	ClosingTime   string            `json:"closing_time"`
	AvgPrice      float64           `json:"avg_price"`
	Amenities     model.Amenities   `json:"amenities"`
	AmenityInfo   model.AmenityInfo `json:"amenity_info"`
}

func (in *cafeInput) toModel() *model.Cafe {
	return &model.Cafe{
		Name:          in.Name,
		Description:   in.Description,
		CoverImage:    in.CoverImage,
		Country:       in.Country,
		State:         in.State,
		City:          in.City,
		AddressStreet: in.AddressStreet,
		Location:      in.Location,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		OpeningTime:   in.OpeningTime,
		ClosingTime:   in.ClosingTime,
		AvgPrice:      in.AvgPrice,
		HasWifi:       in.Amenities.Wifi,
		HasAC:         in.Amenities.AC,
		HasParking:    in.Amenities.Parking,
		HasSocket:     in.Amenities.Socket,
		Amenities:     in.AmenityInfo,
	}
}

// CreateCafe adds a listing owned by the authenticated user
func (ctrl *CafeController) CreateCafe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var input cafeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid cafe details")
		return
	}

	cafe, err := ctrl.cafeService.CreateCafe(userID, input.toModel())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartialCoordinates):
			apperrors.BadRequest(c, apperrors.CafePartialCoordinate, "Latitude and longitude must be set together")
		case errors.Is(err, service.ErrStateRequired), errors.Is(err, service.ErrCityRequired):
			apperrors.BadRequest(c, apperrors.CafeInvalidLocation, err.Error())
		default:
			apperrors.InternalError(c, "Failed to create cafe")
		}
		return
	}

	c.JSON(http.StatusCreated, cafe)
}

// UpdateCafe edits a listing; owner or admin only
func (ctrl *CafeController) UpdateCafe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	existing, err := ctrl.cafeService.GetCafeBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			apperrors.NotFound(c, apperrors.CafeNotFound, "Cafe not found")
			return
		}
		apperrors.InternalError(c, "Failed to load cafe")
		return
	}

	var input cafeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid cafe details")
		return
	}

	cafe, err := ctrl.cafeService.UpdateCafe(existing.ID, userID, middleware.IsAdmin(c), input.toModel())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCafeNotFound):
			apperrors.NotFound(c, apperrors.CafeNotFound, "Cafe not found")
		case errors.Is(err, service.ErrNotCafeOwner):
			apperrors.Forbidden(c, "Only the owner can edit this cafe")
		case errors.Is(err, service.ErrPartialCoordinates):
			apperrors.BadRequest(c, apperrors.CafePartialCoordinate, "Latitude and longitude must be set together")
		case errors.Is(err, service.ErrStateRequired), errors.Is(err, service.ErrCityRequired):
			apperrors.BadRequest(c, apperrors.CafeInvalidLocation, err.Error())
		default:
			apperrors.InternalError(c, "Failed to update cafe")
		}
		return
	}

	c.JSON(http.StatusOK, cafe)
}

// DeleteCafe removes a listing; owner or admin only
func (ctrl *CafeController) DeleteCafe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	existing, err := ctrl.cafeService.GetCafeBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			apperrors.NotFound(c, apperrors.CafeNotFound, "Cafe not found")
			return
		}
		apperrors.InternalError(c, "Failed to load cafe")
		return
	}

	if err := ctrl.cafeService.DeleteCafe(existing.ID, userID, middleware.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrCafeNotFound):
			apperrors.NotFound(c, apperrors.CafeNotFound, "Cafe not found")
		case errors.Is(err, service.ErrNotCafeOwner):
			apperrors.Forbidden(c, "Only the owner can delete this cafe")
		default:
			apperrors.InternalError(c, "Failed to delete cafe")
		}
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ExportCafes streams the full directory as an xlsx workbook; admin only
func (ctrl *CafeController) ExportCafes(c *gin.Context) {
	f, filename, err := ctrl.exportService.ExportCafes()
	if err != nil {
		apperrors.InternalError(c, "Failed to export cafes")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to stream export", err, nil)
	}
}
