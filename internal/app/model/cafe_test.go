package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 15, hour, minute, 0, 0, time.UTC)
}

func TestCafe_OpenStatusAt(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
		now     time.Time
		want    OpenStatus
	}{
		{
			name:    "Open during regular hours",
			opening: "08:00",
			closing: "22:00",
			now:     at(14, 30),
			want:    OpenStatusOpen,
		},
		{
			name:    "Closed before opening",
			opening: "08:00",
			closing: "22:00",
			now:     at(7, 59),
			want:    OpenStatusClosed,
		},
		{
			name:    "Closed at closing time",
			opening: "08:00",
			closing: "22:00",
			now:     at(22, 0),
			want:    OpenStatusClosed,
		},
		{
			name:    "Open exactly at opening time",
			opening: "08:00",
			closing: "22:00",
			now:     at(8, 0),
			want:    OpenStatusOpen,
		},
		{
			name:    "Midnight crossing window open after midnight",
			opening: "22:00",
			closing: "02:00",
			now:     at(1, 0),
			want:    OpenStatusOpen,
		},
		{
			name:    "Midnight crossing window open before midnight",
			opening: "22:00",
			closing: "02:00",
			now:     at(23, 30),
			want:    OpenStatusOpen,
		},
		{
			name:    "Midnight crossing window closed in the morning",
			opening: "22:00",
			closing: "02:00",
			now:     at(5, 0),
			want:    OpenStatusClosed,
		},
		{
			name:    "Missing opening time is unknown",
			opening: "",
			closing: "22:00",
			now:     at(12, 0),
			want:    OpenStatusUnknown,
		},
		{
			name:    "Missing closing time is unknown",
			opening: "08:00",
			closing: "",
			now:     at(12, 0),
			want:    OpenStatusUnknown,
		},
		{
			name:    "Unparseable time is unknown, never a guess",
			opening: "8am",
			closing: "22:00",
			now:     at(12, 0),
			want:    OpenStatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cafe := &Cafe{OpeningTime: tt.opening, ClosingTime: tt.closing}
			assert.Equal(t, tt.want, cafe.OpenStatusAt(tt.now))
		})
	}
}

func TestCafe_AmenitySet(t *testing.T) {
	// Flat columns and the nested object merge into the canonical shape
	cafe := &Cafe{
		HasWifi:    false,
		HasAC:      true,
		HasParking: true,
		HasSocket:  false,
		Amenities:  AmenityInfo{Wifi: true, Outlets: true, Generator: true},
	}

	set := cafe.AmenitySet()
	assert.True(t, set.Wifi, "nested wifi should surface")
	assert.True(t, set.AC, "flat AC should surface")
	assert.True(t, set.Parking)
	assert.True(t, set.Socket, "nested outlets maps to socket")
	assert.True(t, set.Generator)
}

func TestCafe_HasCoordinates(t *testing.T) {
	lat, lng := 23.7946, 90.4145

	assert.False(t, (&Cafe{}).HasCoordinates())
	assert.False(t, (&Cafe{Latitude: &lat}).HasCoordinates())
	assert.True(t, (&Cafe{Latitude: &lat, Longitude: &lng}).HasCoordinates())
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		city string
		cafe string
		want string
	}{
		{"Dhaka", "North End Coffee", "dhaka-north-end-coffee"},
		{"Cary", "Joe's Cafe!", "cary-joe-s-cafe"},
		{"", "Solo Name", "solo-name"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generateSlug(tt.city, tt.cafe))
	}
}
