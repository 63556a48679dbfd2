package repository

import (
	"testing"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildCafePredicates_EmptyFilter(t *testing.T) {
	preds := BuildCafePredicates(CafeFilter{})
	assert.Empty(t, preds, "default filter must compile to no predicates")
}

func TestBuildCafePredicates_PriceAllIsNoOp(t *testing.T) {
	preds := BuildCafePredicates(CafeFilter{Price: PriceAll})
	assert.Empty(t, preds)
}

func TestBuildCafePredicates_PriceBuckets(t *testing.T) {
	tests := []struct {
		name     string
		price    PriceBucket
		wantExpr string
		wantArgs []interface{}
	}{
		{
			name:     "Budget is below 300",
			price:    PriceBudget,
			wantExpr: "avg_price < ?",
			wantArgs: []interface{}{300.0},
		},
		{
			name:     "Mid is 300 to 600 inclusive",
			price:    PriceMid,
			wantExpr: "avg_price >= ? AND avg_price <= ?",
			wantArgs: []interface{}{300.0, 600.0},
		},
		{
			name:     "Premium is above 600",
			price:    PricePremium,
			wantExpr: "avg_price > ?",
			wantArgs: []interface{}{600.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds := BuildCafePredicates(CafeFilter{Price: tt.price})
			assert.Len(t, preds, 1)
			assert.Equal(t, tt.wantExpr, preds[0].Expr)
			assert.Equal(t, tt.wantArgs, preds[0].Args)
		})
	}
}

func TestBuildCafePredicates_Search(t *testing.T) {
	preds := BuildCafePredicates(CafeFilter{Search: "  North End  "})

	assert.Len(t, preds, 1)
	assert.Equal(t, "(LOWER(name) LIKE ? OR LOWER(address_street) LIKE ?)", preds[0].Expr)
	assert.Equal(t, []interface{}{"%north end%", "%north end%"}, preds[0].Args)
}

func TestBuildCafePredicates_WhitespaceSearchIgnored(t *testing.T) {
	preds := BuildCafePredicates(CafeFilter{Search: "   "})
	assert.Empty(t, preds)
}

func TestBuildCafePredicates_FlatAmenities(t *testing.T) {
	preds := BuildCafePredicates(CafeFilter{
		Amenities: model.Amenities{Wifi: true, AC: true, Parking: true, Socket: true},
		Shape:     AmenityShapeFlat,
	})

	var exprs []string
	for _, p := range preds {
		exprs = append(exprs, p.Expr)
	}
	assert.Equal(t, []string{
		"has_wifi = ?",
		"has_ac = ?",
		"has_parking = ?",
		"has_socket = ?",
	}, exprs)
}

func TestBuildCafePredicates_NestedAmenities(t *testing.T) {
	preds := BuildCafePredicates(CafeFilter{
		Amenities: model.Amenities{Wifi: true, Socket: true, Generator: true},
		Shape:     AmenityShapeNested,
	})

	assert.Len(t, preds, 3)
	assert.Equal(t, "amenities @> ?", preds[0].Expr)
	assert.Equal(t, []interface{}{`{"wifi":true}`}, preds[0].Args)
	assert.Equal(t, []interface{}{`{"outlets":true}`}, preds[1].Args)
	assert.Equal(t, []interface{}{`{"generator":true}`}, preds[2].Args)
}

func TestBuildCafePredicates_ParkingAlwaysFlat(t *testing.T) {
	// Parking never moved into the JSONB object, so the nested shape still
	// targets the flat column
	preds := BuildCafePredicates(CafeFilter{
		Amenities: model.Amenities{Parking: true},
		Shape:     AmenityShapeNested,
	})

	assert.Len(t, preds, 1)
	assert.Equal(t, "has_parking = ?", preds[0].Expr)
}

func TestBuildCafePredicates_GeneratorAlwaysNested(t *testing.T) {
	preds := BuildCafePredicates(CafeFilter{
		Amenities: model.Amenities{Generator: true},
		Shape:     AmenityShapeFlat,
	})

	assert.Len(t, preds, 1)
	assert.Equal(t, "amenities @> ?", preds[0].Expr)
}

func TestBuildCafePredicates_Deterministic(t *testing.T) {
	filter := CafeFilter{
		Search:    "cafe",
		Amenities: model.Amenities{Wifi: true, AC: true},
		Price:     PriceMid,
	}

	first := BuildCafePredicates(filter)
	second := BuildCafePredicates(filter)
	assert.Equal(t, first, second)
}

func TestBuildLocationPredicate(t *testing.T) {
	tests := []struct {
		name     string
		loc      LocationFilter
		wantExpr string
		wantArgs []interface{}
	}{
		{
			name:     "Bangladesh matches legacy location by substring",
			loc:      LocationFilter{Country: "bangladesh", City: "Gulshan"},
			wantExpr: "LOWER(location) LIKE ?",
			wantArgs: []interface{}{"%gulshan%"},
		},
		{
			name:     "Bangladesh country match is case-insensitive",
			loc:      LocationFilter{Country: "Bangladesh", City: "Dhanmondi"},
			wantExpr: "LOWER(location) LIKE ?",
			wantArgs: []interface{}{"%dhanmondi%"},
		},
		{
			name:     "USA matches city and state exactly",
			loc:      LocationFilter{Country: "usa", State: "NC", City: "Cary"},
			wantExpr: "LOWER(city) = ? AND LOWER(state) = ?",
			wantArgs: []interface{}{"cary", "nc"},
		},
		{
			name:     "Missing state matches city only",
			loc:      LocationFilter{Country: "usa", City: "Durham"},
			wantExpr: "LOWER(city) = ?",
			wantArgs: []interface{}{"durham"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := BuildLocationPredicate(tt.loc)
			assert.Equal(t, tt.wantExpr, pred.Expr)
			assert.Equal(t, tt.wantArgs, pred.Args)
		})
	}
}

func TestCafeOrderClause(t *testing.T) {
	assert.Equal(t, "avg_price ASC", CafeOrderClause(CafeSortPriceAsc))
	assert.Equal(t, "avg_price DESC", CafeOrderClause(CafeSortPriceDesc))
	assert.Equal(t, "rating DESC", CafeOrderClause(CafeSortRating))
	assert.Equal(t, "created_at DESC", CafeOrderClause(CafeSortNewest))
	assert.Equal(t, "created_at DESC", CafeOrderClause(CafeSort("bogus")))
}
