package entities

import "time"

// Location rows belong to exactly one of a farmer, a user or a company.
type Location struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Province  string   `json:"province"`
	District  string   `json:"district"`
	Sector    string   `json:"sector"`
	Cell      string   `json:"cell"`
	Village   string   `json:"village"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	FarmerID  *uint `gorm:"index" json:"farmer_id,omitempty"`
	UserID    *uint `gorm:"index" json:"user_id,omitempty"`
	CompanyID *uint `gorm:"index" json:"company_id,omitempty"`

	CreatedAt time.Time
}
