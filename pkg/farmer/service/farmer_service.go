package service

import "agridev/entities"

type NewLocation struct {
	Province  string   `json:"province"`
	District  string   `json:"district"`
	Sector    string   `json:"sector"`
	Cell      string   `json:"cell"`
	Village   string   `json:"village"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type NewPartner struct {
	Name   string   `json:"name"`
	Phones []string `json:"phones"`
	DOB    string   `json:"dob"` // YYYY-MM-DD
	Gender string   `json:"gender"`
}

type NewChild struct {
	Name   string `json:"name"`
	DOB    string `json:"dob"`
	Gender string `json:"gender"`
}

type NewLand struct {
	Size      float64     `json:"size"`
	Ownership string      `json:"ownership"`
	Crops     []string    `json:"crops"`
	Nearby    []string    `json:"nearby"`
	Location  NewLocation `json:"location"`
}

type NewFarmer struct {
	Names  string   `json:"names"`
	Phones []string `json:"phones"`
	DOB    string   `json:"dob"`
	Gender string   `json:"gender"`
}

// CreateFarmerInput is the full aggregate: farmer plus optional primary
// location, partner, children and lands (each land with its own location).
type CreateFarmerInput struct {
	Farmer   *NewFarmer   `json:"farmer"`
	Location *NewLocation `json:"location,omitempty"`
	Partner  *NewPartner  `json:"partner,omitempty"`
	Children []NewChild   `json:"children,omitempty"`
	Lands    []NewLand    `json:"lands,omitempty"`
}

type FarmerPage struct {
	Data       []entities.Farmer `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int64             `json:"totalPages"`
}

type FarmerService interface {
	Create(in CreateFarmerInput) (*entities.Farmer, error)
	List(page, limit int) (*FarmerPage, error)
	ByID(id uint) (*entities.Farmer, error)
	Delete(id uint) error
	ByQRCode(code string) (*entities.Farmer, error)
}
