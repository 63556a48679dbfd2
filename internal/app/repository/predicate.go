package repository

import (
	"fmt"
	"strings"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
)

// Predicate is one WHERE fragment with its bind arguments. Filters compile to
// an ordered predicate list so the translation from UI filter state to query
// stays a pure, testable function.
type Predicate struct {
	Expr string
	Args []interface{}
}

type PriceBucket string

const (
	PriceAll     PriceBucket = "all"
	PriceBudget  PriceBucket = "budget"  // avg_price < 300
	PriceMid     PriceBucket = "mid"     // 300-600
	PricePremium PriceBucket = "premium" // > 600
)

type CafeSort string

const (
	CafeSortNewest    CafeSort = "newest"
	CafeSortPriceAsc  CafeSort = "price_asc"
	CafeSortPriceDesc CafeSort = "price_desc"
	CafeSortRating    CafeSort = "rating"
)

// AmenityShape selects which stored amenity representation a filter targets.
// Cafe rows written by older pages carry flattened has_* columns; newer rows
// carry the nested amenities JSONB object.
type AmenityShape int

const (
	AmenityShapeFlat AmenityShape = iota
	AmenityShapeNested
)

// CafeFilter is the UI filter state for the interactive cafe listing
type CafeFilter struct {
	Search    string
	Amenities model.Amenities
	Price     PriceBucket
	SortBy    CafeSort
	Shape     AmenityShape
	Limit     int
	Offset    int
}

// BuildCafePredicates translates filter state into an ordered predicate list.
// Zero-value and "all" fields contribute nothing, so the default filter is a
// no-op. Output is deterministic for a given input.
func BuildCafePredicates(f CafeFilter) []Predicate {
	var preds []Predicate

	if q := strings.TrimSpace(f.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		preds = append(preds, Predicate{
			Expr: "(LOWER(name) LIKE ? OR LOWER(address_street) LIKE ?)",
			Args: []interface{}{like, like},
		})
	}

	preds = append(preds, amenityPredicates(f.Amenities, f.Shape)...)

	switch f.Price {
	case PriceBudget:
		preds = append(preds, Predicate{Expr: "avg_price < ?", Args: []interface{}{300.0}})
	case PriceMid:
		preds = append(preds, Predicate{Expr: "avg_price >= ? AND avg_price <= ?", Args: []interface{}{300.0, 600.0}})
	case PricePremium:
		preds = append(preds, Predicate{Expr: "avg_price > ?", Args: []interface{}{600.0}})
	}

	return preds
}

// amenityPredicates emits flat-column equality or JSONB containment per shape.
// Amenities that only exist in one representation always use that one:
// parking is a flat column only, generator lives in the JSONB object only.
func amenityPredicates(a model.Amenities, shape AmenityShape) []Predicate {
	var preds []Predicate

	flat := func(column string) {
		preds = append(preds, Predicate{Expr: column + " = ?", Args: []interface{}{true}})
	}
	nested := func(key string) {
		preds = append(preds, Predicate{
			Expr: "amenities @> ?",
			Args: []interface{}{fmt.Sprintf(`{"%s":true}`, key)},
		})
	}

	if a.Wifi {
		if shape == AmenityShapeNested {
			nested("wifi")
		} else {
			flat("has_wifi")
		}
	}
	if a.AC {
		if shape == AmenityShapeNested {
			nested("ac")
		} else {
			flat("has_ac")
		}
	}
	if a.Parking {
		flat("has_parking")
	}
	if a.Socket {
		if shape == AmenityShapeNested {
			nested("outlets")
		} else {
			flat("has_socket")
		}
	}
	if a.Generator {
		nested("generator")
	}

	return preds
}

// CafeOrderClause maps a sort key to its ORDER BY clause. Unknown keys fall
// back to newest-first.
func CafeOrderClause(s CafeSort) string {
	switch s {
	case CafeSortPriceAsc:
		return "avg_price ASC"
	case CafeSortPriceDesc:
		return "avg_price DESC"
	case CafeSortRating:
		return "rating DESC"
	default:
		return "created_at DESC"
	}
}

// LocationFilter is the resolved city-page path: country, then state and
// city (already URL-decoded). Matching is case-insensitive.
type LocationFilter struct {
	Country string
	State   string
	City    string
}

// BuildLocationPredicate branches per country: Bangladesh rows predate the
// structured address columns, so they match by substring against the legacy
// combined location field; everywhere else matches the structured city and
// state columns exactly.
func BuildLocationPredicate(loc LocationFilter) Predicate {
	if strings.EqualFold(strings.TrimSpace(loc.Country), CountryBangladeshKey) {
		return Predicate{
			Expr: "LOWER(location) LIKE ?",
			Args: []interface{}{"%" + strings.ToLower(strings.TrimSpace(loc.City)) + "%"},
		}
	}

	city := strings.ToLower(strings.TrimSpace(loc.City))
	state := strings.ToLower(strings.TrimSpace(loc.State))
	if state == "" {
		return Predicate{Expr: "LOWER(city) = ?", Args: []interface{}{city}}
	}
	return Predicate{
		Expr: "LOWER(city) = ? AND LOWER(state) = ?",
		Args: []interface{}{city, state},
	}
}

// CountryBangladeshKey is the lowercase path segment for Bangladesh city pages
const CountryBangladeshKey = "bangladesh"
