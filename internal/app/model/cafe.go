package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Supported countries. Bangladesh addresses use hub/area names instead of
// states, which is why filtering branches per country.
const (
	CountryUSA        = "USA"
	CountryBangladesh = "Bangladesh"
)

// AmenityInfo is the nested JSONB amenity variant stored on newer cafe rows.
// Older rows carry the flattened has_* boolean columns instead.
type AmenityInfo struct {
	Wifi      bool `json:"wifi"`
	AC        bool `json:"ac"`
	Generator bool `json:"generator"`
	Outlets   bool `json:"outlets"`
}

// Value implements database/sql/driver.Valuer
func (a AmenityInfo) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements database/sql.Scanner
func (a *AmenityInfo) Scan(value interface{}) error {
	if value == nil {
		*a = AmenityInfo{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan AmenityInfo")
	}

	return json.Unmarshal(bytes, a)
}

// Amenities is the canonical in-memory amenity shape. Both stored variants
// (flat columns and the nested JSONB object) normalize into it before any
// filtering logic sees them.
type Amenities struct {
	Wifi      bool `json:"wifi"`
	AC        bool `json:"ac"`
	Parking   bool `json:"parking"`
	Socket    bool `json:"socket"`
	Generator bool `json:"generator"`
}

type Cafe struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	OwnerID       *uint       `gorm:"index" json:"owner_id"` // listing owner (nullable - imported listings have none)
	Owner         User        `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"owner,omitempty"`
	Name          string      `gorm:"not null" json:"name"`
	Slug          string      `gorm:"uniqueIndex" json:"slug"` // URL-safe unique identifier
	Description   string      `gorm:"type:text" json:"description"`
	CoverImage    string      `json:"cover_image"`
	Country       string      `gorm:"index;not null" json:"country"`
	State         string      `gorm:"index" json:"state"` // empty for Bangladesh
	City          string      `gorm:"index" json:"city"`  // hub/area name for Bangladesh
	AddressStreet string      `gorm:"type:text" json:"address_street"`
	Location      string      `gorm:"type:text" json:"location"`          // legacy combined location text
	Latitude      *float64    `gorm:"type:decimal(10,8)" json:"latitude"` // WGS84; both coordinates present or both absent
	Longitude     *float64    `gorm:"type:decimal(11,8)" json:"longitude"`
	OpeningTime   string      `gorm:"type:varchar(10)" json:"opening_time"` // "HH:MM", may be empty
	ClosingTime   string      `gorm:"type:varchar(10)" json:"closing_time"` // "HH:MM", may be empty
	AvgPrice      float64     `json:"avg_price"`                            // average spend per visit
	Rating        float64     `gorm:"index" json:"rating"`                  // 0-5
	HasWifi       bool        `gorm:"default:false" json:"has_wifi"`
	HasAC         bool        `gorm:"default:false" json:"has_ac"`
	HasParking    bool        `gorm:"default:false" json:"has_parking"`
	HasSocket     bool        `gorm:"default:false" json:"has_socket"`
	Amenities     AmenityInfo `gorm:"type:jsonb" json:"amenities"` // nested variant on newer rows
	IsFeatured    bool        `gorm:"default:false;index" json:"is_featured"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Cafe) TableName() string {
	return "cafes"
}

// HasCoordinates reports whether the cafe carries a usable geo point
func (c *Cafe) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// AmenitySet normalizes both stored amenity variants into the canonical shape
func (c *Cafe) AmenitySet() Amenities {
	return Amenities{
		Wifi:      c.HasWifi || c.Amenities.Wifi,
		AC:        c.HasAC || c.Amenities.AC,
		Parking:   c.HasParking,
		Socket:    c.HasSocket || c.Amenities.Outlets,
		Generator: c.Amenities.Generator,
	}
}

// OpenStatus is the tri-state "open now" result. Unknown means a missing or
// unparseable time, never a guess.
type OpenStatus string

const (
	OpenStatusOpen    OpenStatus = "open"
	OpenStatusClosed  OpenStatus = "closed"
	OpenStatusUnknown OpenStatus = "unknown"
)

// OpenStatusAt derives open/closed/unknown from the stored opening and
// closing times. A closing time numerically before the opening time means the
// window crosses midnight.
func (c *Cafe) OpenStatusAt(now time.Time) OpenStatus {
	openMin, ok := parseMinuteOfDay(c.OpeningTime)
	if !ok {
		return OpenStatusUnknown
	}
	closeMin, ok := parseMinuteOfDay(c.ClosingTime)
	if !ok {
		return OpenStatusUnknown
	}

	current := now.Hour()*60 + now.Minute()
	if closeMin < openMin {
		closeMin += 24 * 60
		if current < openMin {
			current += 24 * 60
		}
	}

	if current >= openMin && current < closeMin {
		return OpenStatusOpen
	}
	return OpenStatusClosed
}

// parseMinuteOfDay parses "HH:MM" into minutes since midnight
func parseMinuteOfDay(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// generateSlug builds a URL-safe slug from the city and cafe name
func generateSlug(city, name string) string {
	slug := fmt.Sprintf("%s-%s", city, name)

	reg := regexp.MustCompile(`[^\p{L}\p{N}-]+`)
	slug = reg.ReplaceAllString(slug, "-")

	reg = regexp.MustCompile(`-+`)
	slug = reg.ReplaceAllString(slug, "-")

	slug = strings.Trim(slug, "-")
	slug = strings.ToLower(slug)

	return slug
}

// BeforeCreate assigns a unique slug when none was provided
func (c *Cafe) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		baseSlug := generateSlug(c.City, c.Name)
		slug := baseSlug

		counter := 1
		for {
			var count int64
			if err := tx.Model(&Cafe{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
				return err
			}

			if count == 0 {
				break
			}

			counter++
			slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		}

		c.Slug = slug
	}
	return nil
}

// BeforeUpdate regenerates the slug when the name or city changed
func (c *Cafe) BeforeUpdate(tx *gorm.DB) error {
	var oldCafe Cafe
	if err := tx.First(&oldCafe, c.ID).Error; err != nil {
		return err
	}

	if c.Name != oldCafe.Name || c.City != oldCafe.City {
		baseSlug := generateSlug(c.City, c.Name)
		slug := baseSlug

		counter := 1
		for {
			var count int64
			if err := tx.Model(&Cafe{}).Where("slug = ? AND id != ?", slug, c.ID).Count(&count).Error; err != nil {
				return err
			}

			if count == 0 {
				break
			}

			counter++
			slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		}

		c.Slug = slug
	}
	return nil
}
