package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		delta                  float64
	}{
		{
			name: "Same point",
			lat1: 23.7808, lon1: 90.4125,
			lat2: 23.7808, lon2: 90.4125,
			wantKm: 0, delta: 0.001,
		},
		{
			name: "Dhaka to Chattogram",
			lat1: 23.8103, lon1: 90.4125,
			lat2: 22.3569, lon2: 91.7832,
			wantKm: 215, delta: 5,
		},
		{
			name: "Across the equator",
			lat1: 1.0, lon1: 0,
			lat2: -1.0, lon2: 0,
			wantKm: 222.4, delta: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantKm, got, tt.delta)

			// Distance is symmetric
			assert.InDelta(t, got, CalculateDistance(tt.lat2, tt.lon2, tt.lat1, tt.lon1), 0.001)
		})
	}
}
