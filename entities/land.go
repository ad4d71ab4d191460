package entities

import (
	"strings"
	"time"
)

// Ownership categories for a land parcel.
const (
	OwnershipOwned    = "Owned"
	OwnershipRented   = "Rented"
	OwnershipBorrowed = "Borrowed"
	OwnershipOther    = "Other"
)

// Proximity tags for a land parcel.
const (
	NearbyRiver = "River"
	NearbyRoad  = "Road"
	NearbyLake  = "Lake"
	NearbyOther = "Other"
)

var ownershipValues = []string{OwnershipOwned, OwnershipRented, OwnershipBorrowed, OwnershipOther}
var nearbyValues = []string{NearbyRiver, NearbyRoad, NearbyLake, NearbyOther}

// ParseOwnership resolves a value against the ownership enum, case-insensitively.
// Unknown values are dropped, not rejected.
func ParseOwnership(v string) (string, bool) {
	for _, o := range ownershipValues {
		if strings.EqualFold(strings.TrimSpace(v), o) {
			return o, true
		}
	}
	return "", false
}

func ParseNearby(v string) (string, bool) {
	for _, n := range nearbyValues {
		if strings.EqualFold(strings.TrimSpace(v), n) {
			return n, true
		}
	}
	return "", false
}

type Land struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	FarmerID  uint     `gorm:"index" json:"farmer_id"`
	Size      float64  `json:"size"` // square meters
	Ownership string   `json:"ownership"`
	Crops     []string `gorm:"serializer:json" json:"crops"`
	Nearby    []string `gorm:"serializer:json" json:"nearby"`

	Locations []LandLocation `json:"locations,omitempty"`

	CreatedAt time.Time
}

// LandLocation links a land parcel to a location row.
type LandLocation struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	LandID     uint     `gorm:"index" json:"land_id"`
	LocationID uint     `gorm:"index" json:"location_id"`
	Location   Location `json:"location,omitempty"`
}
