package entities

import "time"

type Farmer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FarmerNumber string    `gorm:"uniqueIndex" json:"farmer_number"` // zero-padded, assigned at creation
	Names        string    `json:"names"`
	Phones       []string  `gorm:"serializer:json" json:"phones"`
	DOB          time.Time `json:"dob"`
	Gender       string    `json:"gender"` // Male|Female
	QRCode       string    `gorm:"index" json:"qr_code"`

	Partner   *Partner   `json:"partner,omitempty"`
	Children  []Child    `json:"children,omitempty"`
	Lands     []Land     `json:"lands,omitempty"`
	Locations []Location `gorm:"foreignKey:FarmerID" json:"location,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Partner struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	FarmerID uint      `gorm:"uniqueIndex" json:"farmer_id"`
	Name     string    `json:"name"`
	Phones   []string  `gorm:"serializer:json" json:"phones"`
	DOB      time.Time `json:"dob"`
	Gender   string    `json:"gender"`

	CreatedAt time.Time
}

type Child struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	FarmerID uint      `gorm:"index" json:"farmer_id"`
	Name     string    `json:"name"`
	DOB      time.Time `json:"dob"`
	Gender   string    `json:"gender"`

	CreatedAt time.Time
}
